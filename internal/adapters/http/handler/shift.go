package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ogurasousui/kintai/internal/core/shiftreport"
)

const dateLayout = "2006-01-02"

// ShiftHandler は勤務記録レポートエンドポイントの HTTP 実装です。読み取り専用です。
type ShiftHandler struct {
	svc shiftreport.UseCase
}

// NewShiftHandler は ShiftHandler を生成します。
func NewShiftHandler(svc shiftreport.UseCase) *ShiftHandler {
	return &ShiftHandler{svc: svc}
}

type shiftResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	ClockInID    string          `json:"clock_in_id"`
	ClockOutID   string          `json:"clock_out_id"`
	StartedAt    time.Time       `json:"started_at"`
	EndedAt      time.Time       `json:"ended_at"`
	Payment      decimal.Decimal `json:"payment"`
	CreatedAt    time.Time       `json:"created_at"`
}

type listShiftsResponse struct {
	Shifts []shiftResponse `json:"shifts"`
	Total  int             `json:"total"`
}

type monthlyReportRow struct {
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	TotalShifts  int             `json:"total_shifts"`
	TotalPayment decimal.Decimal `json:"total_payment"`
}

type monthlyReportResponse struct {
	Year   int                `json:"year"`
	Month  int                `json:"month"`
	Report []monthlyReportRow `json:"report"`
}

// List は勤務記録の一覧をフィルタとページネーション付きで返します。
// end_date は指定した日全体を含むよう翌日 0 時までを範囲とします。
func (h *ShiftHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var employeeID *string
	if raw := query.Get("employee_id"); raw != "" {
		employeeID = &raw
	}

	var startedFrom *time.Time
	if raw := query.Get("start_date"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			writeBadRequest(w, "start_date must be in YYYY-MM-DD format")
			return
		}
		startedFrom = &parsed
	}

	var endedUntil *time.Time
	if raw := query.Get("end_date"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			writeBadRequest(w, "end_date must be in YYYY-MM-DD format")
			return
		}
		inclusive := parsed.AddDate(0, 0, 1)
		endedUntil = &inclusive
	}

	limit, err := intQueryParam(query.Get("limit"), 0)
	if err != nil {
		writeBadRequest(w, "limit must be an integer")
		return
	}

	offset, err := intQueryParam(query.Get("offset"), 0)
	if err != nil {
		writeBadRequest(w, "offset must be an integer")
		return
	}

	result, err := h.svc.ListShifts(r.Context(), shiftreport.ListShiftsInput{
		EmployeeID:  employeeID,
		StartedFrom: startedFrom,
		EndedUntil:  endedUntil,
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	shifts := make([]shiftResponse, 0, len(result.Shifts))
	for _, s := range result.Shifts {
		shifts = append(shifts, shiftResponse{
			ID:           s.ID,
			EmployeeID:   s.EmployeeID,
			EmployeeName: s.EmployeeName,
			ClockInID:    s.ClockInID,
			ClockOutID:   s.ClockOutID,
			StartedAt:    s.StartedAt,
			EndedAt:      s.EndedAt,
			Payment:      s.Payment,
			CreatedAt:    s.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, listShiftsResponse{Shifts: shifts, Total: result.Total})
}

// MonthlyReport は指定した月の社員ごとの勤務集計を返します。
func (h *ShiftHandler) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	year, err := strconv.Atoi(query.Get("year"))
	if err != nil {
		writeBadRequest(w, "year must be an integer")
		return
	}

	month, err := strconv.Atoi(query.Get("month"))
	if err != nil {
		writeBadRequest(w, "month must be an integer")
		return
	}

	report, err := h.svc.MonthlyReport(r.Context(), shiftreport.MonthlyReportInput{Year: year, Month: month})
	if err != nil {
		writeError(w, err)
		return
	}

	rows := make([]monthlyReportRow, 0, len(report))
	for _, row := range report {
		rows = append(rows, monthlyReportRow{
			EmployeeID:   row.EmployeeID,
			EmployeeName: row.EmployeeName,
			TotalShifts:  row.TotalShifts,
			TotalPayment: row.TotalPayment,
		})
	}

	writeJSON(w, http.StatusOK, monthlyReportResponse{Year: year, Month: month, Report: rows})
}

func intQueryParam(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
