package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/ogurasousui/kintai/internal/core/timeclock"
	pgdb "github.com/ogurasousui/kintai/internal/platform/db/postgres"
)

// ShiftRepository は PostgreSQL を利用した勤務記録永続化の実装です。
// 勤務記録は打刻ユースケースが OUT 打刻と同一トランザクションで作成し、以後変更されません。
type ShiftRepository struct {
	pool pgdb.Queryer
}

// NewShiftRepository は ShiftRepository を生成します。
func NewShiftRepository(pool pgdb.Queryer) *ShiftRepository {
	return &ShiftRepository{pool: pool}
}

// Create は勤務記録を作成します。
func (r *ShiftRepository) Create(ctx context.Context, s *timeclock.Shift) (*timeclock.Shift, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO shifts (employee_id, clock_in_id, clock_out_id, started_at, ended_at, payment)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, employee_id, clock_in_id, clock_out_id, started_at, ended_at, payment, created_at
    `,
		s.EmployeeID,
		s.ClockInID,
		s.ClockOutID,
		s.StartedAt,
		s.EndedAt,
		s.Payment,
	)

	var (
		id         string
		employeeID string
		clockInID  string
		clockOutID string
		startedAt  time.Time
		endedAt    time.Time
		payment    decimal.Decimal
		createdAt  time.Time
	)
	if err := row.Scan(&id, &employeeID, &clockInID, &clockOutID, &startedAt, &endedAt, &payment, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New("postgres: shift insert returned no row")
		}
		return nil, err
	}

	return &timeclock.Shift{
		ID:         id,
		EmployeeID: employeeID,
		ClockInID:  clockInID,
		ClockOutID: clockOutID,
		StartedAt:  startedAt,
		EndedAt:    endedAt,
		Payment:    payment,
		CreatedAt:  createdAt,
	}, nil
}
