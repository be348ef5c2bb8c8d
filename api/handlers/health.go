// ABOUTME: Health check handler for the Huma API
// ABOUTME: Reports liveness and the number of open screens

package handlers

import (
	"context"
	"net/http"

	"fjapps-store/api/dto/responses"
	"github.com/danielgtaylor/huma/v2"
)

// ScreenCounter reports how many screens are open
type ScreenCounter interface {
	Len() int
}

// HealthHandler answers liveness probes
type HealthHandler struct {
	screens ScreenCounter
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(screens ScreenCounter) *HealthHandler {
	return &HealthHandler{screens: screens}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/healthz",
		Summary:     "Health check",
		Tags:        []string{"Health"},
	}, h.Health)
}

// HealthOutput defines the output for the health check
type HealthOutput struct {
	Body responses.HealthResponse
}

// Health handles GET /healthz
func (h *HealthHandler) Health(ctx context.Context, input *struct{}) (*HealthOutput, error) {
	out := &HealthOutput{Body: responses.HealthResponse{Status: "ok"}}
	if h.screens != nil {
		out.Body.Screens = h.screens.Len()
	}
	return out, nil
}
