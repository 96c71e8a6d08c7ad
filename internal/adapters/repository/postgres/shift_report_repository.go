package postgres

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ogurasousui/kintai/internal/core/shiftreport"
	pgdb "github.com/ogurasousui/kintai/internal/platform/db/postgres"
)

// ShiftReportRepository はレポート用の読み取り専用クエリの実装です。
type ShiftReportRepository struct {
	pool pgdb.Queryer
}

// NewShiftReportRepository は ShiftReportRepository を生成します。
func NewShiftReportRepository(pool pgdb.Queryer) *ShiftReportRepository {
	return &ShiftReportRepository{pool: pool}
}

// ListShifts は勤務記録を社員名付きで取得し、フィルタに一致する総件数も返します。
func (r *ShiftReportRepository) ListShifts(ctx context.Context, filter shiftreport.ListShiftsFilter) ([]*shiftreport.ShiftRecord, int, error) {
	args := make([]any, 0, 5)
	conditions := make([]string, 0, 3)

	if filter.EmployeeID != nil {
		placeholder := "$" + strconv.Itoa(len(args)+1)
		conditions = append(conditions, "s.employee_id = "+placeholder)
		args = append(args, *filter.EmployeeID)
	}
	if filter.StartedFrom != nil {
		placeholder := "$" + strconv.Itoa(len(args)+1)
		conditions = append(conditions, "s.started_at >= "+placeholder)
		args = append(args, *filter.StartedFrom)
	}
	if filter.EndedUntil != nil {
		placeholder := "$" + strconv.Itoa(len(args)+1)
		conditions = append(conditions, "s.ended_at <= "+placeholder)
		args = append(args, *filter.EndedUntil)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	exec := pgdb.QueryerFromContext(ctx, r.pool)

	countQuery := `SELECT COUNT(*) FROM shifts s` + whereClause
	var total int
	if err := exec.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limitPlaceholder := "$" + strconv.Itoa(len(args)+1)
	args = append(args, filter.Limit)
	offsetPlaceholder := "$" + strconv.Itoa(len(args)+1)
	args = append(args, filter.Offset)

	query := `
        SELECT s.id,
               s.employee_id,
               e.name,
               s.clock_in_id,
               s.clock_out_id,
               s.started_at,
               s.ended_at,
               s.payment,
               s.created_at
          FROM shifts s
          JOIN employees e ON e.id = s.employee_id` + whereClause + `
         ORDER BY s.started_at DESC, s.id DESC
         LIMIT ` + limitPlaceholder + `
        OFFSET ` + offsetPlaceholder + `
    `

	rows, err := exec.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	shifts := make([]*shiftreport.ShiftRecord, 0, filter.Limit)
	for rows.Next() {
		var (
			record  shiftreport.ShiftRecord
			payment decimal.Decimal
		)
		if err := rows.Scan(
			&record.ID,
			&record.EmployeeID,
			&record.EmployeeName,
			&record.ClockInID,
			&record.ClockOutID,
			&record.StartedAt,
			&record.EndedAt,
			&payment,
			&record.CreatedAt,
		); err != nil {
			return nil, 0, err
		}
		record.Payment = payment
		shifts = append(shifts, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return shifts, total, nil
}

// SummarizeByEmployee は期間内に開始した勤務を社員ごとに集計します。
func (r *ShiftReportRepository) SummarizeByEmployee(ctx context.Context, from, until time.Time) ([]*shiftreport.MonthlyEmployeeReport, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT e.id,
               e.name,
               COUNT(s.id),
               COALESCE(SUM(s.payment), 0)
          FROM shifts s
          JOIN employees e ON e.id = s.employee_id
         WHERE s.started_at >= $1 AND s.started_at < $2
         GROUP BY e.id, e.name
         ORDER BY e.name
    `, from, until)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	report := make([]*shiftreport.MonthlyEmployeeReport, 0)
	for rows.Next() {
		var (
			row          shiftreport.MonthlyEmployeeReport
			totalShifts  int64
			totalPayment decimal.Decimal
		)
		if err := rows.Scan(&row.EmployeeID, &row.EmployeeName, &totalShifts, &totalPayment); err != nil {
			return nil, err
		}
		row.TotalShifts = int(totalShifts)
		row.TotalPayment = totalPayment
		report = append(report, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return report, nil
}
