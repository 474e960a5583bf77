package controllers

import (
	"context"
	"net/http"

	"github.com/angelmondragon/fireshop-backend/api/responses"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// Healthz reports liveness plus database connectivity.
func Healthz(db pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]string{"status": "ok"}
		if db != nil {
			if err := db.Ping(r.Context()); err != nil {
				status["status"] = "degraded"
				status["database"] = "unreachable"
				responses.WriteSuccessStatus(w, http.StatusServiceUnavailable, status)
				return
			}
			status["database"] = "ok"
		}
		responses.WriteSuccess(w, status)
	}
}
