package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ogurasousui/kintai/internal/core/timeclock"
	pgdb "github.com/ogurasousui/kintai/internal/platform/db/postgres"
)

// ClockEventRepository は PostgreSQL を利用した打刻イベント台帳の実装です。
// clock_events テーブルは追記専用で、UPDATE / DELETE を発行するメソッドは存在しません。
type ClockEventRepository struct {
	pool pgdb.Queryer
}

// NewClockEventRepository は ClockEventRepository を生成します。
func NewClockEventRepository(pool pgdb.Queryer) *ClockEventRepository {
	return &ClockEventRepository{pool: pool}
}

// Append は打刻イベントを追記します。
func (r *ClockEventRepository) Append(ctx context.Context, event *timeclock.ClockEvent) (*timeclock.ClockEvent, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO clock_events (employee_id, kind, recorded_at)
        VALUES ($1, $2, $3)
        RETURNING id, employee_id, kind, recorded_at, created_at
    `,
		event.EmployeeID,
		string(event.Kind),
		event.RecordedAt,
	)

	created, err := scanClockEvent(row)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// LastByEmployee は社員の時系列で最新の打刻を取得します。
// 打刻の決定ステップと同じトランザクション上で読むため、古い読み取りは起こりません。
func (r *ClockEventRepository) LastByEmployee(ctx context.Context, employeeID string) (*timeclock.ClockEvent, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT id, employee_id, kind, recorded_at, created_at
          FROM clock_events
         WHERE employee_id = $1
         ORDER BY recorded_at DESC, created_at DESC
         LIMIT 1
    `, employeeID)

	found, err := scanClockEvent(row)
	if err != nil {
		return nil, err
	}
	return found, nil
}

func scanClockEvent(row pgx.Row) (*timeclock.ClockEvent, error) {
	var (
		id         string
		employeeID string
		kind       string
		recordedAt time.Time
		createdAt  time.Time
	)

	if err := row.Scan(&id, &employeeID, &kind, &recordedAt, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, timeclock.ErrNoEvents
		}
		return nil, err
	}

	return &timeclock.ClockEvent{
		ID:         id,
		EmployeeID: employeeID,
		Kind:       timeclock.Kind(kind),
		RecordedAt: recordedAt,
		CreatedAt:  createdAt,
	}, nil
}
