package shiftreport

import (
	"context"
	"time"
)

// Reader は勤務記録への読み取り専用アクセスの抽象です。
// 勤務記録の作成は打刻ユースケースだけが行い、このパッケージは参照のみを提供します。
type Reader interface {
	ListShifts(ctx context.Context, filter ListShiftsFilter) ([]*ShiftRecord, int, error)
	// SummarizeByEmployee は期間内に開始した勤務を社員ごとに集計します。
	SummarizeByEmployee(ctx context.Context, from, until time.Time) ([]*MonthlyEmployeeReport, error)
}

// ListShiftsFilter は一覧取得用フィルタです。
type ListShiftsFilter struct {
	EmployeeID  *string
	StartedFrom *time.Time
	EndedUntil  *time.Time
	Limit       int
	Offset      int
}
