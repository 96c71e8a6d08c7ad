package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// requestLogging はリクエストごとに ID を採番してアクセスログを出力します。
func requestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		w.Header().Set("X-Request-Id", requestID)

		start := time.Now()
		next.ServeHTTP(recorder, r)

		log.Printf("request_id=%s method=%s path=%s status=%d duration=%s",
			requestID, r.Method, r.URL.Path, recorder.status, time.Since(start))
	})
}
