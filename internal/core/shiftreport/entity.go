package shiftreport

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShiftRecord は社員名を含むレポート用の勤務記録です。
type ShiftRecord struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	ClockInID    string
	ClockOutID   string
	StartedAt    time.Time
	EndedAt      time.Time
	Payment      decimal.Decimal
	CreatedAt    time.Time
}

// MonthlyEmployeeReport は月次レポートの社員ごとの集計行です。
type MonthlyEmployeeReport struct {
	EmployeeID   string
	EmployeeName string
	TotalShifts  int
	TotalPayment decimal.Decimal
}
