package middleware

import (
	"encoding/json"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"
)

// Metrics stores in-process counters for the two analysis flows.
type Metrics struct {
	RequestsTotal      uint64
	RequestsInProgress uint64
	RequestsSuccess    uint64
	RequestsFailed     uint64
	URLChecksTotal     uint64
	PlagChecksTotal    uint64
	ChecksFailed       uint64
	StartTime          time.Time
}

var globalMetrics = &Metrics{
	StartTime: time.Now(),
}

// IncrementURLChecks counts one deepfake URL analysis attempt.
func IncrementURLChecks() {
	atomic.AddUint64(&globalMetrics.URLChecksTotal, 1)
}

// IncrementPlagChecks counts one plagiarism analysis attempt.
func IncrementPlagChecks() {
	atomic.AddUint64(&globalMetrics.PlagChecksTotal, 1)
}

// IncrementChecksFailed counts an analysis that ended in an error
// fragment (bad submission, collaborator or transport failure —
// not empty-input warnings).
func IncrementChecksFailed() {
	atomic.AddUint64(&globalMetrics.ChecksFailed, 1)
}

// GetMetrics returns a snapshot of all counters.
func GetMetrics() map[string]interface{} {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return map[string]interface{}{
		"requests_total":       atomic.LoadUint64(&globalMetrics.RequestsTotal),
		"requests_in_progress": atomic.LoadUint64(&globalMetrics.RequestsInProgress),
		"requests_success":     atomic.LoadUint64(&globalMetrics.RequestsSuccess),
		"requests_failed":      atomic.LoadUint64(&globalMetrics.RequestsFailed),
		"url_checks_total":     atomic.LoadUint64(&globalMetrics.URLChecksTotal),
		"plag_checks_total":    atomic.LoadUint64(&globalMetrics.PlagChecksTotal),
		"checks_failed":        atomic.LoadUint64(&globalMetrics.ChecksFailed),
		"uptime_seconds":       time.Since(globalMetrics.StartTime).Seconds(),
		"memory": map[string]interface{}{
			"alloc_bytes": m.Alloc,
			"sys_bytes":   m.Sys,
			"num_gc":      m.NumGC,
		},
		"goroutines": runtime.NumGoroutine(),
	}
}

// MetricsMiddleware tracks request counters
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddUint64(&globalMetrics.RequestsTotal, 1)
		atomic.AddUint64(&globalMetrics.RequestsInProgress, 1)
		defer atomic.AddUint64(&globalMetrics.RequestsInProgress, ^uint64(0))

		wrapped := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(wrapped, r)

		if wrapped.statusCode >= 200 && wrapped.statusCode < 400 {
			atomic.AddUint64(&globalMetrics.RequestsSuccess, 1)
		} else {
			atomic.AddUint64(&globalMetrics.RequestsFailed, 1)
		}
	})
}

// MetricsHandler returns metrics as JSON
func MetricsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(GetMetrics())
}
