package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/feirinha/feirinha/gateway/internal/middleware"
)

type Deps struct {
	ItemsURL  string
	BasketURL string
}

// Register fronts both services on one origin: produto routes go to the
// items service, everything else under /api to the basket service.
func Register(e *echo.Echo, d *Deps) error {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	for _, m := range middleware.Common() {
		e.Use(m)
	}

	itemsProxy, err := newProxy(d.ItemsURL)
	if err != nil {
		return err
	}

	basketProxy, err := newProxy(d.BasketURL)
	if err != nil {
		return err
	}

	e.Any("/api/produtos", itemsProxy)
	e.Any("/api/produtos/*", itemsProxy)
	e.Any("/api/*", basketProxy)

	return nil
}
