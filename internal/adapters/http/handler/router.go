package handler

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter はすべてのエンドポイントを束ねたルーターを構築します。
// /kiosk 配下は認証なしの公開エンドポイントで、管理系エンドポイントの保護は
// 前段のリバースプロキシに委ねます。
func NewRouter(kiosk *KioskHandler, employees *EmployeeHandler, shifts *ShiftHandler) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestLogging)

	r.HandleFunc("/kiosk/clock", kiosk.Clock).Methods(http.MethodPost)

	r.HandleFunc("/employees", employees.Create).Methods(http.MethodPost)
	r.HandleFunc("/employees", employees.List).Methods(http.MethodGet)
	r.HandleFunc("/employees/{id}", employees.Get).Methods(http.MethodGet)
	r.HandleFunc("/employees/{id}", employees.Update).Methods(http.MethodPatch)
	r.HandleFunc("/employees/{id}/deactivate", employees.Deactivate).Methods(http.MethodPost)

	r.HandleFunc("/shifts", shifts.List).Methods(http.MethodGet)
	r.HandleFunc("/shifts/reports/monthly", shifts.MonthlyReport).Methods(http.MethodGet)

	return r
}
