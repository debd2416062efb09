package workday

import "errors"

var ErrWorkdayNotFound = errors.New("workday not found")
