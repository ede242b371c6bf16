package service

import (
	"github.com/deppfellow/countries-api/internal/server"
)

// Services is a container that groups all service instances.
type Services struct {
	Country *CountryService
}

// NewServices constructs the service container from the application
// container.
func NewServices(s *server.Server) *Services {
	return &Services{
		Country: NewCountryService(s),
	}
}
