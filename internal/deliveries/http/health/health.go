package health

import (
	nethttp "net/http"

	"github.com/ezfinancial/go-entry-engine/internal/common/http"

	"github.com/labstack/echo/v4"
)

type healthHandler struct{}

// New health handler will initialize the health/ resources endpoint
func New(app *echo.Group) {
	hh := healthHandler{}
	health := app.Group("/health")
	health.GET("", hh.liveness)
	health.GET("/liveness", hh.liveness)
	health.GET("/readiness", hh.readiness)
}

type HealthCheckResponse struct {
	Kind   string `json:"kind" example:"health"`
	Status string `json:"status" example:"server is up and running"`
}

func (hh healthHandler) liveness(c echo.Context) error {
	return http.RestSuccessResponse(c, nethttp.StatusOK, HealthCheckResponse{
		Kind:   "health",
		Status: "server is up and running",
	})
}

func (hh healthHandler) readiness(c echo.Context) error {
	return http.RestSuccessResponse(c, nethttp.StatusOK, HealthCheckResponse{
		Kind:   "health",
		Status: "ready",
	})
}
