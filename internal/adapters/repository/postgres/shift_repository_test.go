package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"

	"github.com/ogurasousui/kintai/internal/core/timeclock"
)

func TestShiftRepository_Create(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewShiftRepository(mock)

	startedAt := time.Date(2026, 2, 9, 9, 0, 0, 0, time.UTC)
	endedAt := startedAt.Add(8 * time.Hour)
	payment := decimal.RequireFromString("120.00")

	query := regexp.QuoteMeta(`
        INSERT INTO shifts (employee_id, clock_in_id, clock_out_id, started_at, ended_at, payment)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, employee_id, clock_in_id, clock_out_id, started_at, ended_at, payment, created_at
    `)

	mock.ExpectQuery(query).
		WithArgs("emp-1", "ev-1", "ev-2", startedAt, endedAt, payment).
		WillReturnRows(pgxmock.NewRows([]string{"id", "employee_id", "clock_in_id", "clock_out_id", "started_at", "ended_at", "payment", "created_at"}).
			AddRow("shift-1", "emp-1", "ev-1", "ev-2", startedAt, endedAt, payment, endedAt))

	created, err := repo.Create(context.Background(), &timeclock.Shift{
		EmployeeID: "emp-1",
		ClockInID:  "ev-1",
		ClockOutID: "ev-2",
		StartedAt:  startedAt,
		EndedAt:    endedAt,
		Payment:    payment,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if created.ID != "shift-1" {
		t.Errorf("expected id shift-1, got %s", created.ID)
	}
	if !created.Payment.Equal(payment) {
		t.Errorf("expected payment %s, got %s", payment, created.Payment)
	}
	if !created.EndedAt.After(created.StartedAt) {
		t.Errorf("expected ended_at after started_at")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
