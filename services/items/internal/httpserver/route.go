package httpserver

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/feirinha/feirinha/services/items/internal/service"
)

type Deps struct {
	ItemsHandler *ItemsHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	api := e.Group("/api")

	api.GET("/produtos", d.ItemsHandler.GetProdutos)
	api.POST("/produtos", d.ItemsHandler.CreateProduto)
	api.GET("/produtos/:id", d.ItemsHandler.GetProduto)
	api.PUT("/produtos/:id", d.ItemsHandler.UpdateProduto)
	api.PATCH("/produtos/:id", d.ItemsHandler.PatchProduto)
	api.DELETE("/produtos/:id", d.ItemsHandler.DeleteProduto)
}

func mapWriteError(c echo.Context, l *slog.Logger, event string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		l.Warn(event, "status", 404, "error", err)
		return echo.NewHTTPError(http.StatusNotFound, "produto not found")
	}
	if errors.Is(err, service.ErrValidation) {
		l.Warn(event, "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	l.Error(event, "status", 500, "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "cannot write produto")
}
