package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEnrollmentNoExists = errors.New("enrollment number already registered")
)
