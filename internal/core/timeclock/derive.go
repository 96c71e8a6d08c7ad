package timeclock

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DeriveShift は IN/OUT の打刻ペアと打刻時点の日給から勤務記録を導出します。
// ended_at > started_at を検証する純粋関数で、呼び出しタイミングは判断しません。
func DeriveShift(in, out *ClockEvent, dailyRate decimal.Decimal) (*Shift, error) {
	if in == nil || in.Kind != KindIn {
		return nil, fmt.Errorf("timeclock: derive shift: clock-in event of kind IN is required")
	}
	if out == nil || out.Kind != KindOut {
		return nil, fmt.Errorf("timeclock: derive shift: clock-out event of kind OUT is required")
	}
	if in.EmployeeID != out.EmployeeID {
		return nil, fmt.Errorf("timeclock: derive shift: events belong to different employees")
	}
	if !out.RecordedAt.After(in.RecordedAt) {
		return nil, ErrInvalidTimestamp
	}
	if dailyRate.IsNegative() {
		return nil, ErrInvalidPayment
	}

	return &Shift{
		EmployeeID: in.EmployeeID,
		ClockInID:  in.ID,
		ClockOutID: out.ID,
		StartedAt:  in.RecordedAt,
		EndedAt:    out.RecordedAt,
		Payment:    dailyRate,
	}, nil
}
