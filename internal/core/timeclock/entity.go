package timeclock

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind は打刻の種別を表します。
type Kind string

const (
	KindIn  Kind = "IN"
	KindOut Kind = "OUT"
)

// ClockEvent は打刻イベントです。追記専用で、一度記録されたら変更されません。
type ClockEvent struct {
	ID         string
	EmployeeID string
	Kind       Kind
	RecordedAt time.Time
	CreatedAt  time.Time
}

// Shift は IN/OUT の打刻ペアから導出される確定済みの勤務記録です。
// 打刻時点の日給をスナップショットとして保持し、後から再計算されません。
type Shift struct {
	ID         string
	EmployeeID string
	ClockInID  string
	ClockOutID string
	StartedAt  time.Time
	EndedAt    time.Time
	Payment    decimal.Decimal
	CreatedAt  time.Time
}
