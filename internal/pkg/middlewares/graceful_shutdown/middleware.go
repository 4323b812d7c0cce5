package graceful_shutdown

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"

	"parcel-service/internal/generated/dto"
)

const CodeShuttingDown = "SHUTTING_DOWN"

// Middleware после отмены ongoingCtx новые запросы получают 503, начатые дорабатывают.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-ongoingCtx.Done():
				if isShuttingDown.Load() {
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusServiceUnavailable)
					_ = json.NewEncoder(w).Encode(dto.Error{
						Code:    CodeShuttingDown,
						Message: "service is shutting down",
					})
					return
				}
			default:
			}
			next.ServeHTTP(w, r)
		})
	}
}
