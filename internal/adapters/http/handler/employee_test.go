package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ogurasousui/kintai/internal/core/employee"
)

type stubEmployeeUseCase struct {
	employee      *employee.Employee
	employees     []*employee.Employee
	err           error
	deactivatedID string
}

func (s *stubEmployeeUseCase) CreateEmployee(_ context.Context, in employee.CreateEmployeeInput) (*employee.Employee, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.employee, nil
}

func (s *stubEmployeeUseCase) GetEmployee(_ context.Context, in employee.GetEmployeeInput) (*employee.Employee, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.employee, nil
}

func (s *stubEmployeeUseCase) ListEmployees(_ context.Context, in employee.ListEmployeesInput) ([]*employee.Employee, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.employees, nil
}

func (s *stubEmployeeUseCase) UpdateEmployee(_ context.Context, in employee.UpdateEmployeeInput) (*employee.Employee, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.employee, nil
}

func (s *stubEmployeeUseCase) DeactivateEmployee(_ context.Context, in employee.DeactivateEmployeeInput) (*employee.Employee, error) {
	s.deactivatedID = in.ID
	if s.err != nil {
		return nil, s.err
	}
	return s.employee, nil
}

func testEmployee() *employee.Employee {
	return &employee.Employee{
		ID:        "emp-1",
		Name:      "Alice",
		JobRole:   "Warehouse Associate",
		DailyRate: decimal.RequireFromString("120.00"),
		ClockCode: "1234",
		Status:    employee.StatusActive,
		CreatedAt: time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC),
	}
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Parallel()

	stub := &stubEmployeeUseCase{employee: testEmployee()}
	handler := NewEmployeeHandler(stub)

	body := `{"name":"Alice","job_role":"Warehouse Associate","daily_rate":"120.00","clock_code":"1234"}`
	req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rec.Code)
	}

	var resp employeeResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "emp-1" || resp.Status != "active" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestEmployeeHandler_Create_Conflict(t *testing.T) {
	t.Parallel()

	stub := &stubEmployeeUseCase{err: employee.ErrClockCodeAlreadyExists}
	handler := NewEmployeeHandler(stub)

	body := `{"name":"Bob","job_role":"Driver","daily_rate":"100.00","clock_code":"1234"}`
	req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", rec.Code)
	}
}

func TestEmployeeHandler_Deactivate_OpenShiftConflict(t *testing.T) {
	t.Parallel()

	stub := &stubEmployeeUseCase{err: employee.ErrOpenShift}
	handler := NewEmployeeHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/employees/emp-1/deactivate", nil)
	rec := httptest.NewRecorder()

	handler.Deactivate(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", rec.Code)
	}
}

func TestEmployeeHandler_Get_NotFound(t *testing.T) {
	t.Parallel()

	stub := &stubEmployeeUseCase{err: employee.ErrEmployeeNotFound}
	handler := NewEmployeeHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/employees/missing", nil)
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestEmployeeHandler_List(t *testing.T) {
	t.Parallel()

	stub := &stubEmployeeUseCase{employees: []*employee.Employee{testEmployee()}}
	handler := NewEmployeeHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/employees?status=active", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp []employeeResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 1 || resp[0].Name != "Alice" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
