package shiftreport

import "errors"

var (
	ErrInvalidLimit     = errors.New("shiftreport: invalid limit")
	ErrInvalidOffset    = errors.New("shiftreport: invalid offset")
	ErrInvalidYear      = errors.New("shiftreport: invalid year")
	ErrInvalidMonth     = errors.New("shiftreport: invalid month")
	ErrInvalidDateRange = errors.New("shiftreport: invalid date range")
)
