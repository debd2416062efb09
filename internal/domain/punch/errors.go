package punch

import "errors"

var (
	ErrEmptyFile = errors.New("punch file is empty")
)
