package handler

import (
	"net/http"
	"time"

	"github.com/ogurasousui/kintai/internal/core/timeclock"
)

// KioskHandler はキオスク打刻エンドポイントの HTTP 実装です。認証はありません。
type KioskHandler struct {
	svc timeclock.UseCase
}

// NewKioskHandler は KioskHandler を生成します。
func NewKioskHandler(svc timeclock.UseCase) *KioskHandler {
	return &KioskHandler{svc: svc}
}

type clockRequest struct {
	ClockCode string `json:"clock_code"`
}

type clockResponse struct {
	Action       string    `json:"action"`
	EmployeeName string    `json:"employee_name"`
	Timestamp    time.Time `json:"timestamp"`
}

// Clock は打刻コードを受け取り、IN/OUT を自動判定して打刻を記録します。
func (h *KioskHandler) Clock(w http.ResponseWriter, r *http.Request) {
	var req clockRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	result, err := h.svc.Clock(r.Context(), timeclock.ClockInput{Code: req.ClockCode})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, clockResponse{
		Action:       string(result.Kind),
		EmployeeName: result.EmployeeName,
		Timestamp:    result.Timestamp,
	})
}
