package timeclock

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// TransactionManager はトランザクション制御の抽象化です。
// 打刻の「最新取得 → 種別決定 → 書き込み」は単一のトランザクションで実行され、
// 勤務記録の作成に失敗した場合は打刻イベントごとロールバックされます。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

var clockCodePattern = regexp.MustCompile(`^[0-9]{4}$`)

// Service は打刻に関するユースケースをまとめます。
type Service struct {
	directory Directory
	events    EventRepository
	shifts    ShiftRepository
	clock     Clock
	tx        TransactionManager
}

// UseCase は打刻ユースケースの公開インターフェースです。
type UseCase interface {
	Clock(ctx context.Context, in ClockInput) (*ClockResult, error)
	HasOpenShift(ctx context.Context, employeeID string) (bool, error)
}

// NewService は Service を生成します。
func NewService(directory Directory, events EventRepository, shifts ShiftRepository, clock Clock, tx TransactionManager) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	return &Service{directory: directory, events: events, shifts: shifts, clock: clock, tx: tx}
}

// ClockInput は打刻時の入力です。
type ClockInput struct {
	Code string
}

// ClockResult は打刻結果を表します。
type ClockResult struct {
	Kind         Kind
	EmployeeName string
	Timestamp    time.Time
}

// Clock は打刻コードから IN/OUT を自動判定して打刻を記録します。
// 直前の打刻が IN なら OUT、それ以外(未打刻を含む)なら IN を記録し、
// OUT の場合は直前の IN とのペアから勤務記録を同一トランザクションで作成します。
func (s *Service) Clock(ctx context.Context, in ClockInput) (*ClockResult, error) {
	code, err := normalizeClockCode(in.Code)
	if err != nil {
		return nil, err
	}

	var result *ClockResult
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		emp, err := s.directory.ActiveByCode(txCtx, code)
		if err != nil {
			return err
		}

		last, err := s.events.LastByEmployee(txCtx, emp.ID)
		if err != nil && !errors.Is(err, ErrNoEvents) {
			return err
		}

		kind := nextKind(last)
		now := s.clock.Now()

		created, err := s.events.Append(txCtx, &ClockEvent{
			EmployeeID: emp.ID,
			Kind:       kind,
			RecordedAt: now,
		})
		if err != nil {
			return err
		}

		if kind == KindOut {
			shift, err := DeriveShift(last, created, emp.DailyRate)
			if err != nil {
				return err
			}
			if _, err := s.shifts.Create(txCtx, shift); err != nil {
				return err
			}
		}

		result = &ClockResult{
			Kind:         kind,
			EmployeeName: emp.Name,
			Timestamp:    created.RecordedAt,
		}
		return nil
	}); err != nil {
		return nil, err
	}

	return result, nil
}

// HasOpenShift は社員の最新打刻が IN のまま(勤務中)かどうかを返します。
// 社員台帳が無効化の可否を判断するために参照します。
func (s *Service) HasOpenShift(ctx context.Context, employeeID string) (bool, error) {
	var open bool
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		last, err := s.events.LastByEmployee(txCtx, employeeID)
		if err != nil {
			if errors.Is(err, ErrNoEvents) {
				return nil
			}
			return err
		}
		open = last.Kind == KindIn
		return nil
	}); err != nil {
		return false, err
	}
	return open, nil
}

// nextKind は直前の打刻から次の打刻種別を決定します。
// IN と OUT は厳密に交互であり、最初の打刻は必ず IN になります。
func nextKind(last *ClockEvent) Kind {
	if last != nil && last.Kind == KindIn {
		return KindOut
	}
	return KindIn
}

func normalizeClockCode(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if !clockCodePattern.MatchString(trimmed) {
		return "", ErrInvalidCode
	}
	return trimmed, nil
}
