package postgres

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/ogurasousui/kintai/internal/core/employee"
	"github.com/ogurasousui/kintai/internal/core/timeclock"
	pgdb "github.com/ogurasousui/kintai/internal/platform/db/postgres"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	checkViolationCode      = "23514"
)

// EmployeeRepository は PostgreSQL を利用した社員永続化の実装です。
// timeclock.Directory も実装し、打刻時の社員解決と行ロックを提供します。
type EmployeeRepository struct {
	pool pgdb.Queryer
}

// NewEmployeeRepository は EmployeeRepository を生成します。
func NewEmployeeRepository(pool pgdb.Queryer) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

// Create は社員を新規作成します。
func (r *EmployeeRepository) Create(ctx context.Context, e *employee.Employee) (*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO employees (name, job_role, daily_rate, clock_code, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, name, job_role, daily_rate, clock_code, status, created_at
    `,
		e.Name,
		e.JobRole,
		e.DailyRate,
		e.ClockCode,
		string(e.Status),
		e.CreatedAt,
	)

	created, err := scanEmployee(row)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	return created, nil
}

// Update は社員情報を更新します。
func (r *EmployeeRepository) Update(ctx context.Context, e *employee.Employee) (*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE employees
           SET name = $1,
               job_role = $2,
               daily_rate = $3,
               clock_code = $4,
               status = $5
         WHERE id = $6
        RETURNING id, name, job_role, daily_rate, clock_code, status, created_at
    `,
		e.Name,
		e.JobRole,
		e.DailyRate,
		e.ClockCode,
		string(e.Status),
		e.ID,
	)

	updated, err := scanEmployee(row)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	return updated, nil
}

// FindByID は ID で社員を取得します。
func (r *EmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT id, name, job_role, daily_rate, clock_code, status, created_at
          FROM employees
         WHERE id = $1
         LIMIT 1
    `, id)

	found, err := scanEmployee(row)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	return found, nil
}

// FindActiveByCode は打刻コードに一致する有効な社員を取得します。
func (r *EmployeeRepository) FindActiveByCode(ctx context.Context, clockCode string) (*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT id, name, job_role, daily_rate, clock_code, status, created_at
          FROM employees
         WHERE clock_code = $1 AND status = 'active'
         LIMIT 1
    `, clockCode)

	found, err := scanEmployee(row)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	return found, nil
}

// ActiveByCode は打刻コードに一致する有効な社員を解決し、FOR UPDATE で行ロックを取得します。
// ロックはトランザクション終了まで保持され、同一社員の打刻を直列化します。
func (r *EmployeeRepository) ActiveByCode(ctx context.Context, code string) (*timeclock.DirectoryEmployee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT id, name, daily_rate
          FROM employees
         WHERE clock_code = $1 AND status = 'active'
         LIMIT 1
           FOR UPDATE
    `, code)

	var (
		id        string
		name      string
		dailyRate decimal.Decimal
	)
	if err := row.Scan(&id, &name, &dailyRate); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, timeclock.ErrInvalidCode
		}
		return nil, err
	}

	return &timeclock.DirectoryEmployee{ID: id, Name: name, DailyRate: dailyRate}, nil
}

// List は社員の一覧を作成日時の降順で取得します。
func (r *EmployeeRepository) List(ctx context.Context, filter employee.ListEmployeesFilter) ([]*employee.Employee, error) {
	args := make([]any, 0, 1)
	whereClause := ""
	if filter.Status != nil {
		whereClause = " WHERE status = $" + strconv.Itoa(len(args)+1)
		args = append(args, string(*filter.Status))
	}

	query := `
        SELECT id, name, job_role, daily_rate, clock_code, status, created_at
          FROM employees` + whereClause + `
         ORDER BY created_at DESC, id DESC
    `

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query, args...)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	defer rows.Close()

	employees := make([]*employee.Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, translateEmployeePgError(err)
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, translateEmployeePgError(err)
	}

	return employees, nil
}

func scanEmployee(row pgx.Row) (*employee.Employee, error) {
	var (
		id        string
		name      string
		jobRole   string
		dailyRate decimal.Decimal
		clockCode string
		status    string
		createdAt time.Time
	)

	if err := row.Scan(
		&id,
		&name,
		&jobRole,
		&dailyRate,
		&clockCode,
		&status,
		&createdAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}

	return &employee.Employee{
		ID:        id,
		Name:      name,
		JobRole:   jobRole,
		DailyRate: dailyRate,
		ClockCode: clockCode,
		Status:    employee.Status(status),
		CreatedAt: createdAt,
	}, nil
}

func translateEmployeePgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return employee.ErrClockCodeAlreadyExists
		case checkViolationCode:
			switch {
			case strings.Contains(pgErr.ConstraintName, "daily_rate"):
				return employee.ErrInvalidDailyRate
			case strings.Contains(pgErr.ConstraintName, "clock_code"):
				return employee.ErrInvalidClockCode
			default:
				return err
			}
		}
	}

	return err
}
