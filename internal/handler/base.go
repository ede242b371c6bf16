package handler

import (
	"time"

	"github.com/deppfellow/countries-api/internal/middleware"
	"github.com/deppfellow/countries-api/internal/server"
	"github.com/deppfellow/countries-api/internal/validation"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// validate is the shared validator instance used by request payload types.
// A single instance caches struct metadata across requests.
var validate = validator.New()

// Handler is the base handler type that holds shared application
// dependencies.
//
// Concrete handlers embed it so they can access shared resources via
// *server.Server (config, logger, store).
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler.
//
// It returns the struct by value; the struct only contains a pointer field,
// so copies are cheap and still point to the same Server.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// HandlerFunc represents a typed endpoint function that receives a validated
// request payload and returns a response or an error.
//
// Req is typically a pointer type so Echo's binder can populate its fields.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// handleRequest is the shared execution pipeline for all endpoints.
//
// It centralizes request binding + validation, structured logging with phase
// timings, and JSON response writing. Errors are returned to Echo so the
// global error handler formats the response.
func handleRequest[Req validation.Validatable](
	c echo.Context,
	req Req,
	handler func(c echo.Context, req Req) (interface{}, error),
	status int,
) error {
	start := time.Now()

	// The context-enhanced logger already carries request_id, method, path,
	// and ip.
	logger := middleware.GetLogger(c).With().
		Str("operation", "handler").
		Logger()

	logger.Debug().Msg("handling request")

	validationStart := time.Now()
	if err := validation.BindAndValidate(c, req); err != nil {
		logger.Warn().
			Err(err).
			Dur("validation_duration", time.Since(validationStart)).
			Msg("request validation failed")
		return err
	}
	validationDuration := time.Since(validationStart)

	handlerStart := time.Now()
	result, err := handler(c, req)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		logger.Warn().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", time.Since(start)).
			Msg("handler execution failed")
		return err
	}

	logger.Debug().
		Dur("validation_duration", validationDuration).
		Dur("handler_duration", handlerDuration).
		Dur("total_duration", time.Since(start)).
		Msg("request completed successfully")

	return c.JSON(status, result)
}

// Handle wraps a typed handler with binding, validation, logging, and JSON
// response writing, returning an echo.HandlerFunc ready to register on a
// route.
//
// newReq constructs a fresh request value per invocation so concurrent
// requests never bind into a shared struct.
//
// Usage:
//
//	router.GET("/countries/:code", handler.Handle(h.Handler, h.getCountry, http.StatusOK,
//		func() *GetCountryRequest { return &GetCountryRequest{} }))
func Handle[Req validation.Validatable, Res any](
	h Handler,
	handler HandlerFunc[Req, Res],
	status int,
	newReq func() Req,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, newReq(), func(c echo.Context, req Req) (interface{}, error) {
			return handler(c, req)
		}, status)
	}
}
