package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmployeeInactive = errors.New("employee is inactive")
	ErrInvalidPIN       = errors.New("invalid pin")
	ErrPINMismatch      = errors.New("pin does not match")
)
