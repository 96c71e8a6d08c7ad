package employee

import "errors"

var (
	ErrInvalidID              = errors.New("employee: invalid id")
	ErrInvalidName            = errors.New("employee: invalid name")
	ErrInvalidJobRole         = errors.New("employee: invalid job role")
	ErrInvalidDailyRate       = errors.New("employee: daily rate must not be negative")
	ErrInvalidClockCode       = errors.New("employee: clock code must be 4 digits")
	ErrInvalidStatus          = errors.New("employee: invalid status")
	ErrEmployeeNotFound       = errors.New("employee: not found")
	ErrClockCodeAlreadyExists = errors.New("employee: clock code already in use by an active employee")
	ErrAlreadyInactive        = errors.New("employee: already inactive")
	ErrOpenShift              = errors.New("employee: open shift exists, employee must clock out first")
)
