package health

import (
	"context"
	"encoding/json"
	"net/http"
	"runtime"
	"time"
)

// Checker reports whether a dependency is reachable.
type Checker func(ctx context.Context) error

type HealthResponse struct {
	Status       string            `json:"status"`
	Timestamp    string            `json:"timestamp"`
	Uptime       string            `json:"uptime"`
	GoVersion    string            `json:"go_version"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}

var startTime = time.Now()

// HealthGet reports service liveness plus the state of each registered
// dependency. Any failing dependency degrades the overall status and
// the response code.
func HealthGet(checkers map[string]Checker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		health := HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Uptime:    time.Since(startTime).String(),
			GoVersion: runtime.Version(),
		}

		statusCode := http.StatusOK
		if len(checkers) > 0 {
			health.Dependencies = make(map[string]string, len(checkers))
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			for name, check := range checkers {
				if err := check(ctx); err != nil {
					health.Dependencies[name] = err.Error()
					health.Status = "degraded"
					statusCode = http.StatusServiceUnavailable
				} else {
					health.Dependencies[name] = "ok"
				}
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		json.NewEncoder(w).Encode(health)
	}
}
