package handler

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/ogurasousui/kintai/internal/core/employee"
)

// EmployeeHandler は社員管理エンドポイントの HTTP 実装です。
type EmployeeHandler struct {
	svc employee.UseCase
}

// NewEmployeeHandler は EmployeeHandler を生成します。
func NewEmployeeHandler(svc employee.UseCase) *EmployeeHandler {
	return &EmployeeHandler{svc: svc}
}

type employeeResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	JobRole   string          `json:"job_role"`
	DailyRate decimal.Decimal `json:"daily_rate"`
	ClockCode string          `json:"clock_code"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

func toEmployeeResponse(e *employee.Employee) employeeResponse {
	return employeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		JobRole:   e.JobRole,
		DailyRate: e.DailyRate,
		ClockCode: e.ClockCode,
		Status:    string(e.Status),
		CreatedAt: e.CreatedAt,
	}
}

type createEmployeeRequest struct {
	Name      string          `json:"name"`
	JobRole   string          `json:"job_role"`
	DailyRate decimal.Decimal `json:"daily_rate"`
	ClockCode string          `json:"clock_code"`
}

type updateEmployeeRequest struct {
	Name      *string          `json:"name"`
	JobRole   *string          `json:"job_role"`
	DailyRate *decimal.Decimal `json:"daily_rate"`
	ClockCode *string          `json:"clock_code"`
}

// Create は社員を作成します。
func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEmployeeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	created, err := h.svc.CreateEmployee(r.Context(), employee.CreateEmployeeInput{
		Name:      req.Name,
		JobRole:   req.JobRole,
		DailyRate: req.DailyRate,
		ClockCode: req.ClockCode,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEmployeeResponse(created))
}

// Get は社員を取得します。
func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	found, err := h.svc.GetEmployee(r.Context(), employee.GetEmployeeInput{ID: id})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toEmployeeResponse(found))
}

// List は社員の一覧を取得します。status クエリで有効/無効を絞り込めます。
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	var statusPtr *employee.Status
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := employee.Status(raw)
		statusPtr = &status
	}

	employees, err := h.svc.ListEmployees(r.Context(), employee.ListEmployeesInput{Status: statusPtr})
	if err != nil {
		writeError(w, err)
		return
	}

	responses := make([]employeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, toEmployeeResponse(e))
	}

	writeJSON(w, http.StatusOK, responses)
}

// Update は社員情報を部分更新します。
func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req updateEmployeeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateEmployee(r.Context(), employee.UpdateEmployeeInput{
		ID:        id,
		Name:      req.Name,
		JobRole:   req.JobRole,
		DailyRate: req.DailyRate,
		ClockCode: req.ClockCode,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toEmployeeResponse(updated))
}

// Deactivate は社員を無効化します。勤務中の社員は無効化できません。
func (h *EmployeeHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	deactivated, err := h.svc.DeactivateEmployee(r.Context(), employee.DeactivateEmployeeInput{ID: id})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toEmployeeResponse(deactivated))
}
