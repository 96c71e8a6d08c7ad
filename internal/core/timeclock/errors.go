package timeclock

import "errors"

var (
	ErrInvalidCode      = errors.New("timeclock: invalid clock code")
	ErrInvalidTimestamp = errors.New("timeclock: clock-out must be after clock-in")
	ErrInvalidPayment   = errors.New("timeclock: payment must not be negative")
	ErrNoEvents         = errors.New("timeclock: no clock events")
)
