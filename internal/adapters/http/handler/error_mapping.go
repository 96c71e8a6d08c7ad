package handler

import (
	"errors"
	"net/http"

	"github.com/ogurasousui/kintai/internal/core/employee"
	"github.com/ogurasousui/kintai/internal/core/shiftreport"
	"github.com/ogurasousui/kintai/internal/core/timeclock"
)

// errorResponse はエラーレスポンスのボディです。
type errorResponse struct {
	Detail string `json:"detail"`
}

// キオスク利用者にはどの条件で弾かれたかを明かしません。
const invalidCodeDetail = "invalid clock code or employee is inactive"

func toHTTPError(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusOK, ""
	case errors.Is(err, timeclock.ErrInvalidCode):
		return http.StatusBadRequest, invalidCodeDetail
	case errors.Is(err, employee.ErrInvalidID),
		errors.Is(err, employee.ErrInvalidName),
		errors.Is(err, employee.ErrInvalidJobRole),
		errors.Is(err, employee.ErrInvalidDailyRate),
		errors.Is(err, employee.ErrInvalidClockCode),
		errors.Is(err, employee.ErrInvalidStatus),
		errors.Is(err, employee.ErrAlreadyInactive),
		errors.Is(err, shiftreport.ErrInvalidLimit),
		errors.Is(err, shiftreport.ErrInvalidOffset),
		errors.Is(err, shiftreport.ErrInvalidYear),
		errors.Is(err, shiftreport.ErrInvalidMonth),
		errors.Is(err, shiftreport.ErrInvalidDateRange):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, employee.ErrEmployeeNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, employee.ErrClockCodeAlreadyExists),
		errors.Is(err, employee.ErrOpenShift):
		return http.StatusConflict, err.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func writeError(w http.ResponseWriter, err error) {
	status, detail := toHTTPError(err)
	writeJSON(w, status, errorResponse{Detail: detail})
}
