//go:build integration

package integration

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/shopspring/decimal"

	repo "github.com/ogurasousui/kintai/internal/adapters/repository/postgres"
	"github.com/ogurasousui/kintai/internal/core/employee"
	"github.com/ogurasousui/kintai/internal/core/shiftreport"
	"github.com/ogurasousui/kintai/internal/core/timeclock"
	"github.com/ogurasousui/kintai/internal/platform/config"
	pg "github.com/ogurasousui/kintai/internal/platform/db/postgres"
)

const migrationsDir = "../assets/migrations"

func TestKioskClockIntegration(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(configPathFromEnv())
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if err := resetMigrations(cfg.Database.DSN(), migrationsDir); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	ctx := context.Background()
	pool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}
	t.Cleanup(func() { pool.Close() })

	tx := pg.NewTransactionManager(pool)
	employeeRepo := repo.NewEmployeeRepository(pool)
	eventRepo := repo.NewClockEventRepository(pool)
	shiftRepo := repo.NewShiftRepository(pool)
	reportRepo := repo.NewShiftReportRepository(pool)

	clk := &stepClock{now: time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)}
	clockSvc := timeclock.NewService(employeeRepo, eventRepo, shiftRepo, clk, tx)
	employeeSvc := employee.NewService(employeeRepo, clockSvc, clk, tx)
	reportSvc := shiftreport.NewService(reportRepo, tx)

	created, err := employeeSvc.CreateEmployee(ctx, employee.CreateEmployeeInput{
		Name:      "統合テスト太郎",
		JobRole:   "barista",
		DailyRate: decimal.NewFromInt(120),
		ClockCode: "4321",
	})
	if err != nil {
		t.Fatalf("CreateEmployee error: %v", err)
	}

	in, err := clockSvc.Clock(ctx, timeclock.ClockInput{Code: "4321"})
	if err != nil {
		t.Fatalf("clock in error: %v", err)
	}
	if in.Kind != timeclock.KindIn {
		t.Fatalf("expected first punch to be IN, got %s", in.Kind)
	}
	if in.EmployeeName != created.Name {
		t.Fatalf("expected employee name %s, got %s", created.Name, in.EmployeeName)
	}

	open, err := clockSvc.HasOpenShift(ctx, created.ID)
	if err != nil {
		t.Fatalf("HasOpenShift error: %v", err)
	}
	if !open {
		t.Fatal("expected an open shift after clock in")
	}

	if _, err := employeeSvc.DeactivateEmployee(ctx, employee.DeactivateEmployeeInput{ID: created.ID}); !errors.Is(err, employee.ErrOpenShift) {
		t.Fatalf("expected ErrOpenShift while clocked in, got %v", err)
	}

	out, err := clockSvc.Clock(ctx, timeclock.ClockInput{Code: "4321"})
	if err != nil {
		t.Fatalf("clock out error: %v", err)
	}
	if out.Kind != timeclock.KindOut {
		t.Fatalf("expected second punch to be OUT, got %s", out.Kind)
	}

	list, err := reportSvc.ListShifts(ctx, shiftreport.ListShiftsInput{EmployeeID: &created.ID})
	if err != nil {
		t.Fatalf("ListShifts error: %v", err)
	}
	if list.Total != 1 || len(list.Shifts) != 1 {
		t.Fatalf("expected exactly one shift, got total=%d len=%d", list.Total, len(list.Shifts))
	}
	shift := list.Shifts[0]
	if !shift.Payment.Equal(decimal.NewFromInt(120)) {
		t.Fatalf("expected payment 120, got %s", shift.Payment)
	}
	if !shift.EndedAt.After(shift.StartedAt) {
		t.Fatalf("shift ends before it starts: %+v", shift)
	}

	report, err := reportSvc.MonthlyReport(ctx, shiftreport.MonthlyReportInput{Year: 2026, Month: 3})
	if err != nil {
		t.Fatalf("MonthlyReport error: %v", err)
	}
	if len(report) != 1 || report[0].TotalShifts != 1 {
		t.Fatalf("unexpected monthly report: %+v", report)
	}

	if _, err := employeeSvc.DeactivateEmployee(ctx, employee.DeactivateEmployeeInput{ID: created.ID}); err != nil {
		t.Fatalf("DeactivateEmployee error: %v", err)
	}

	if _, err := clockSvc.Clock(ctx, timeclock.ClockInput{Code: "4321"}); !errors.Is(err, timeclock.ErrInvalidCode) {
		t.Fatalf("expected ErrInvalidCode after deactivation, got %v", err)
	}
}

func resetMigrations(dsn, dir string) error {
	m, err := migrate.New("file://"+dir, dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Down(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

func configPathFromEnv() string {
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return "../assets/local.yaml"
}

// stepClock は呼び出しごとに 1 分進む時計です。
type stepClock struct {
	now time.Time
}

func (s *stepClock) Now() time.Time {
	t := s.now
	s.now = s.now.Add(time.Minute)
	return t
}
