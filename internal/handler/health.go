package handler

import (
	"net/http"
	"time"

	"github.com/deppfellow/countries-api/internal/middleware"
	"github.com/deppfellow/countries-api/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthHandler exposes a system endpoint that external systems (load
// balancers, uptime monitors) can use to verify the service is alive and its
// dataset is loaded.
type HealthHandler struct {
	Handler
}

// NewHealthHandler constructs a HealthHandler with access to shared app
// dependencies.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth returns the service health status.
//
// The only dependency of this service is the in-memory dataset, so the check
// reports its record and region counts. It returns 200 when the dataset is
// populated and 503 otherwise (which should never happen after a successful
// startup, since Load rejects an empty dataset).
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      make(map[string]interface{}),
	}

	checks := response["checks"].(map[string]interface{})

	countryCount := h.server.Store.Len()
	regionCount := len(h.server.Store.Regions())

	if countryCount == 0 {
		checks["dataset"] = map[string]interface{}{
			"status": "unhealthy",
			"error":  "no country records loaded",
		}
		response["status"] = "unhealthy"

		logger.Error().Msg("dataset health check failed")

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	checks["dataset"] = map[string]interface{}{
		"status":    "healthy",
		"countries": countryCount,
		"regions":   regionCount,
	}

	logger.Debug().
		Int("countries", countryCount).
		Int("regions", regionCount).
		Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}
