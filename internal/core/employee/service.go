package employee

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
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

// OpenShiftChecker は社員が勤務中(最新打刻が IN)かどうかを照会します。
// 打刻側のユースケースが実装し、無効化と打刻コード変更の可否判断に使われます。
type OpenShiftChecker interface {
	HasOpenShift(ctx context.Context, employeeID string) (bool, error)
}

var clockCodePattern = regexp.MustCompile(`^[0-9]{4}$`)

// Service は社員に関するユースケースをまとめます。
type Service struct {
	repo  Repository
	guard OpenShiftChecker
	clock Clock
	tx    TransactionManager
}

// UseCase は社員ユースケースの公開インターフェースです。
type UseCase interface {
	CreateEmployee(ctx context.Context, in CreateEmployeeInput) (*Employee, error)
	GetEmployee(ctx context.Context, in GetEmployeeInput) (*Employee, error)
	ListEmployees(ctx context.Context, in ListEmployeesInput) ([]*Employee, error)
	UpdateEmployee(ctx context.Context, in UpdateEmployeeInput) (*Employee, error)
	DeactivateEmployee(ctx context.Context, in DeactivateEmployeeInput) (*Employee, error)
}

// NewService は Service を生成します。
func NewService(repo Repository, guard OpenShiftChecker, clock Clock, tx TransactionManager) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	return &Service{repo: repo, guard: guard, clock: clock, tx: tx}
}

// CreateEmployeeInput は社員作成時の入力です。
type CreateEmployeeInput struct {
	Name      string
	JobRole   string
	DailyRate decimal.Decimal
	ClockCode string
}

// UpdateEmployeeInput は社員更新時の入力です。nil のフィールドは変更されません。
type UpdateEmployeeInput struct {
	ID        string
	Name      *string
	JobRole   *string
	DailyRate *decimal.Decimal
	ClockCode *string
}

// DeactivateEmployeeInput は社員無効化時の入力です。
type DeactivateEmployeeInput struct {
	ID string
}

// GetEmployeeInput は社員取得時の入力です。
type GetEmployeeInput struct {
	ID string
}

// ListEmployeesInput は一覧取得時の入力です。
type ListEmployeesInput struct {
	Status *Status
}

// CreateEmployee は新しい社員を作成します。
// 打刻コードが他の有効な社員と重複する場合は ErrClockCodeAlreadyExists を返します。
func (s *Service) CreateEmployee(ctx context.Context, in CreateEmployeeInput) (*Employee, error) {
	name, err := normalizeName(in.Name)
	if err != nil {
		return nil, err
	}

	jobRole, err := normalizeJobRole(in.JobRole)
	if err != nil {
		return nil, err
	}

	code, err := normalizeClockCode(in.ClockCode)
	if err != nil {
		return nil, err
	}

	if in.DailyRate.IsNegative() {
		return nil, ErrInvalidDailyRate
	}

	var created *Employee
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		if err := s.ensureClockCodeNotExists(txCtx, code, ""); err != nil {
			return err
		}

		result, err := s.repo.Create(txCtx, &Employee{
			Name:      name,
			JobRole:   jobRole,
			DailyRate: in.DailyRate,
			ClockCode: code,
			Status:    StatusActive,
			CreatedAt: s.clock.Now(),
		})
		if err != nil {
			return err
		}

		created = result
		return nil
	}); err != nil {
		return nil, err
	}

	return created, nil
}

// GetEmployee は社員を取得します。
func (s *Service) GetEmployee(ctx context.Context, in GetEmployeeInput) (*Employee, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var result *Employee
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.repo.FindByID(txCtx, in.ID)
		if err != nil {
			return err
		}
		result = found
		return nil
	}); err != nil {
		return nil, err
	}

	return result, nil
}

// ListEmployees は社員の一覧を取得します。
func (s *Service) ListEmployees(ctx context.Context, in ListEmployeesInput) ([]*Employee, error) {
	var statusPtr *Status
	if in.Status != nil {
		if !isValidStatus(*in.Status) {
			return nil, ErrInvalidStatus
		}
		status := *in.Status
		statusPtr = &status
	}

	var employees []*Employee
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, err := s.repo.List(txCtx, ListEmployeesFilter{Status: statusPtr})
		if err != nil {
			return err
		}
		employees = result
		return nil
	}); err != nil {
		return nil, err
	}

	return employees, nil
}

// UpdateEmployee は社員情報を更新します。
// 打刻コードの変更は、勤務中でないこと、および他の有効な社員と重複しないことが条件です。
func (s *Service) UpdateEmployee(ctx context.Context, in UpdateEmployeeInput) (*Employee, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var updated *Employee
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, in.ID)
		if err != nil {
			return err
		}

		if in.Name != nil {
			name, err := normalizeName(*in.Name)
			if err != nil {
				return err
			}
			existing.Name = name
		}

		if in.JobRole != nil {
			jobRole, err := normalizeJobRole(*in.JobRole)
			if err != nil {
				return err
			}
			existing.JobRole = jobRole
		}

		if in.DailyRate != nil {
			if in.DailyRate.IsNegative() {
				return ErrInvalidDailyRate
			}
			existing.DailyRate = *in.DailyRate
		}

		if in.ClockCode != nil {
			code, err := normalizeClockCode(*in.ClockCode)
			if err != nil {
				return err
			}
			if code != existing.ClockCode {
				open, err := s.guard.HasOpenShift(txCtx, existing.ID)
				if err != nil {
					return err
				}
				if open {
					return ErrOpenShift
				}
				if err := s.ensureClockCodeNotExists(txCtx, code, existing.ID); err != nil {
					return err
				}
				existing.ClockCode = code
			}
		}

		result, err := s.repo.Update(txCtx, existing)
		if err != nil {
			return err
		}

		updated = result
		return nil
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

// DeactivateEmployee は社員を無効化します(論理削除)。
// 勤務中の社員は無効化できず ErrOpenShift を返します。
func (s *Service) DeactivateEmployee(ctx context.Context, in DeactivateEmployeeInput) (*Employee, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var deactivated *Employee
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, in.ID)
		if err != nil {
			return err
		}

		if existing.Status == StatusInactive {
			return ErrAlreadyInactive
		}

		open, err := s.guard.HasOpenShift(txCtx, existing.ID)
		if err != nil {
			return err
		}
		if open {
			return ErrOpenShift
		}

		existing.Status = StatusInactive

		result, err := s.repo.Update(txCtx, existing)
		if err != nil {
			return err
		}

		deactivated = result
		return nil
	}); err != nil {
		return nil, err
	}

	return deactivated, nil
}

func (s *Service) ensureClockCodeNotExists(ctx context.Context, code, excludeID string) error {
	existing, err := s.repo.FindActiveByCode(ctx, code)
	if err != nil && !errors.Is(err, ErrEmployeeNotFound) {
		return err
	}
	if existing != nil && existing.ID != excludeID {
		return ErrClockCodeAlreadyExists
	}
	return nil
}

func normalizeName(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrInvalidName
	}
	return trimmed, nil
}

func normalizeJobRole(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrInvalidJobRole
	}
	return trimmed, nil
}

func normalizeClockCode(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if !clockCodePattern.MatchString(trimmed) {
		return "", ErrInvalidClockCode
	}
	return trimmed, nil
}

func isValidStatus(status Status) bool {
	switch status {
	case StatusActive, StatusInactive:
		return true
	default:
		return false
	}
}
