// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups, mapping
// specific paths to their corresponding handlers.
package router

import (
	"github.com/deppfellow/countries-api/internal/handler"
	"github.com/deppfellow/countries-api/internal/middleware"
	"github.com/labstack/echo/v4"
)

// New builds the Echo instance: global middleware in order, the global error
// handler, and all route registrations.
//
// Middleware order matters: RequestID must run before EnhanceContext (which
// reads the ID into the request logger), and EnhanceContext before
// RequestLogger (which uses the request-scoped logger).
func New(h *handler.Handlers, mw *middleware.Middlewares) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = mw.Global.GlobalErrorHandler

	e.Use(mw.Global.Recover())
	e.Use(middleware.RequestID())
	e.Use(mw.ContextEnhancer.EnhanceContext())
	e.Use(mw.Global.RequestLogger())
	e.Use(mw.Global.CORS())
	e.Use(mw.Global.Secure())

	registerCountryRoutes(e, h)
	registerSystemRoutes(e, h)

	return e
}
