package handler

import (
	"github.com/deppfellow/countries-api/internal/server"
	"github.com/deppfellow/countries-api/internal/service"
)

// Handlers is a container that groups all HTTP handlers, so router setup
// passes one object around instead of many.
type Handlers struct {
	// Country serves the countries/regions reference endpoints.
	Country *CountryHandler

	// Health serves the service health endpoint.
	Health *HealthHandler

	// OpenAPI serves the API documentation UI.
	OpenAPI *OpenAPIHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Country: NewCountryHandler(s, services),
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
	}
}
