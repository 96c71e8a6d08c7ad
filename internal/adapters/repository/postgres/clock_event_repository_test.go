package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"

	"github.com/ogurasousui/kintai/internal/core/timeclock"
)

func TestClockEventRepository_Append(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewClockEventRepository(mock)

	recordedAt := time.Date(2026, 2, 9, 9, 0, 0, 0, time.UTC)
	createdAt := recordedAt.Add(time.Millisecond)

	query := regexp.QuoteMeta(`
        INSERT INTO clock_events (employee_id, kind, recorded_at)
        VALUES ($1, $2, $3)
        RETURNING id, employee_id, kind, recorded_at, created_at
    `)

	mock.ExpectQuery(query).
		WithArgs("emp-1", "IN", recordedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id", "employee_id", "kind", "recorded_at", "created_at"}).
			AddRow("ev-1", "emp-1", "IN", recordedAt, createdAt))

	created, err := repo.Append(context.Background(), &timeclock.ClockEvent{
		EmployeeID: "emp-1",
		Kind:       timeclock.KindIn,
		RecordedAt: recordedAt,
	})
	if err != nil {
		t.Fatalf("Append returned error: %v", err)
	}

	if created.ID != "ev-1" {
		t.Errorf("expected id ev-1, got %s", created.ID)
	}
	if created.Kind != timeclock.KindIn {
		t.Errorf("expected kind IN, got %s", created.Kind)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestClockEventRepository_LastByEmployee(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewClockEventRepository(mock)

	recordedAt := time.Date(2026, 2, 9, 17, 30, 0, 0, time.UTC)

	query := regexp.QuoteMeta(`
        SELECT id, employee_id, kind, recorded_at, created_at
          FROM clock_events
         WHERE employee_id = $1
         ORDER BY recorded_at DESC, created_at DESC
         LIMIT 1
    `)

	mock.ExpectQuery(query).
		WithArgs("emp-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "employee_id", "kind", "recorded_at", "created_at"}).
			AddRow("ev-2", "emp-1", "OUT", recordedAt, recordedAt))

	last, err := repo.LastByEmployee(context.Background(), "emp-1")
	if err != nil {
		t.Fatalf("LastByEmployee returned error: %v", err)
	}

	if last.ID != "ev-2" || last.Kind != timeclock.KindOut {
		t.Errorf("unexpected event: %+v", last)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestClockEventRepository_LastByEmployee_NoEvents(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewClockEventRepository(mock)

	mock.ExpectQuery(`SELECT id, employee_id, kind, recorded_at, created_at`).
		WithArgs("emp-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "employee_id", "kind", "recorded_at", "created_at"}))

	_, err = repo.LastByEmployee(context.Background(), "emp-1")
	if !errors.Is(err, timeclock.ErrNoEvents) {
		t.Fatalf("expected ErrNoEvents, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
