// Package health exposes a liveness check that verifies the database.
package health

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// HealthInput is the Huma input for the health check.
type HealthInput struct{}

// HealthResponseBody is the response body for the health check.
type HealthResponseBody struct {
	Status   string `json:"status" doc:"Overall status"`
	Database string `json:"database" doc:"Database reachability"`
}

// HealthOutput is the Huma output for the health check.
type HealthOutput struct {
	Body HealthResponseBody
}

type dbPinger interface {
	PingContext(ctx context.Context) error
}

// Handler handles GET /v1/health.
type Handler struct {
	DB dbPinger
}

// NewHandler creates a new health Handler.
func NewHandler(db dbPinger) *Handler {
	return &Handler{DB: db}
}

// Register registers the health endpoint with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/v1/health",
		Summary:     "Health check",
		Description: "Verifies the API and its database are reachable.",
		Tags:        []string{"Health"},
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, _ *HealthInput) (*HealthOutput, error) {
	if err := h.DB.PingContext(ctx); err != nil {
		return nil, huma.NewError(http.StatusServiceUnavailable, "database unreachable", err)
	}

	return &HealthOutput{Body: HealthResponseBody{Status: "ok", Database: "reachable"}}, nil
}
