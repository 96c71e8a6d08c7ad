package shiftreport

import (
	"context"
	"time"
)

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

// Service は勤務記録レポートのユースケースをまとめます。読み取り専用です。
type Service struct {
	reader Reader
	tx     TransactionManager
}

// UseCase はレポートユースケースの公開インターフェースです。
type UseCase interface {
	ListShifts(ctx context.Context, in ListShiftsInput) (*ListShiftsResult, error)
	MonthlyReport(ctx context.Context, in MonthlyReportInput) ([]*MonthlyEmployeeReport, error)
}

// NewService は Service を生成します。
func NewService(reader Reader, tx TransactionManager) *Service {
	if tx == nil {
		tx = noopTransactionManager{}
	}
	return &Service{reader: reader, tx: tx}
}

// ListShiftsInput は一覧取得時の入力です。
type ListShiftsInput struct {
	EmployeeID  *string
	StartedFrom *time.Time
	EndedUntil  *time.Time
	Limit       int
	Offset      int
}

// ListShiftsResult は一覧取得結果を表します。
type ListShiftsResult struct {
	Shifts []*ShiftRecord
	Total  int
}

// MonthlyReportInput は月次レポート取得時の入力です。
type MonthlyReportInput struct {
	Year  int
	Month int
}

// ListShifts は勤務記録の一覧をフィルタとページネーション付きで取得します。
func (s *Service) ListShifts(ctx context.Context, in ListShiftsInput) (*ListShiftsResult, error) {
	limit := in.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		return nil, ErrInvalidLimit
	}
	if in.Offset < 0 {
		return nil, ErrInvalidOffset
	}
	if in.StartedFrom != nil && in.EndedUntil != nil && in.EndedUntil.Before(*in.StartedFrom) {
		return nil, ErrInvalidDateRange
	}

	var (
		shifts []*ShiftRecord
		total  int
	)

	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, count, err := s.reader.ListShifts(txCtx, ListShiftsFilter{
			EmployeeID:  in.EmployeeID,
			StartedFrom: in.StartedFrom,
			EndedUntil:  in.EndedUntil,
			Limit:       limit,
			Offset:      in.Offset,
		})
		if err != nil {
			return err
		}
		shifts = result
		total = count
		return nil
	}); err != nil {
		return nil, err
	}

	return &ListShiftsResult{Shifts: shifts, Total: total}, nil
}

// MonthlyReport は指定した月に開始した勤務の社員ごとの集計を返します。
func (s *Service) MonthlyReport(ctx context.Context, in MonthlyReportInput) ([]*MonthlyEmployeeReport, error) {
	if in.Year < 1 {
		return nil, ErrInvalidYear
	}
	if in.Month < 1 || in.Month > 12 {
		return nil, ErrInvalidMonth
	}

	from := time.Date(in.Year, time.Month(in.Month), 1, 0, 0, 0, 0, time.UTC)
	until := from.AddDate(0, 1, 0)

	var report []*MonthlyEmployeeReport
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, err := s.reader.SummarizeByEmployee(txCtx, from, until)
		if err != nil {
			return err
		}
		report = result
		return nil
	}); err != nil {
		return nil, err
	}

	return report, nil
}
