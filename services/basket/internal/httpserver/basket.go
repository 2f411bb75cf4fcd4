package httpserver

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/feirinha/feirinha/pkg/logging"
	"github.com/feirinha/feirinha/services/basket/internal/service"
	"github.com/feirinha/feirinha/services/basket/internal/transport"
)

type BasketHTTP struct {
	Svc *service.BasketService
}

func parseID(c echo.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func mapWriteError(c echo.Context, l *slog.Logger, event, kind string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		l.Warn(event, "status", 404, "error", err)
		return echo.NewHTTPError(http.StatusNotFound, kind+" not found")
	}
	if errors.Is(err, service.ErrValidation) {
		l.Warn(event, "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	l.Error(event, "status", 500, "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "cannot write "+kind)
}

func (h *BasketHTTP) GetBasket(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "basket.get")

	id, err := parseID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	basket, err := h.Svc.GetBasket(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("get_basket_failed", "status", 404)
			return echo.NewHTTPError(http.StatusNotFound, "basket not found")
		}
		l.Error("get_basket_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get basket")
	}

	return c.JSON(http.StatusOK, basket)
}

func (h *BasketHTTP) GetBaskets(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "basket.list")

	baskets, err := h.Svc.GetBaskets(ctx)
	if err != nil {
		l.Error("list_baskets_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list baskets")
	}

	return c.JSON(http.StatusOK, baskets)
}

func (h *BasketHTTP) CreateBasket(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "basket.create")

	var req transport.CreateBasketRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_basket_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	basket, err := h.Svc.CreateBasket(ctx, req)
	if err != nil {
		return mapWriteError(c, l, "create_basket_failed", "basket", err)
	}

	l.Info("create_basket_success", "id", basket.ID)
	return c.JSON(http.StatusCreated, basket)
}

func (h *BasketHTTP) UpdateBasket(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "basket.update")

	id, err := parseID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	var req transport.CreateBasketRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_basket_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	basket, err := h.Svc.UpdateBasket(ctx, req, id)
	if err != nil {
		return mapWriteError(c, l, "update_basket_failed", "basket", err)
	}

	return c.JSON(http.StatusOK, basket)
}

func (h *BasketHTTP) PatchBasket(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "basket.patch")

	id, err := parseID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	var req transport.PatchBasketRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("patch_basket_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	basket, err := h.Svc.PatchBasket(ctx, req, id)
	if err != nil {
		return mapWriteError(c, l, "patch_basket_failed", "basket", err)
	}

	return c.JSON(http.StatusOK, basket)
}

func (h *BasketHTTP) DeleteBasket(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "basket.delete")

	id, err := parseID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	if err := h.Svc.DeleteBasket(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("delete_basket_failed", "status", 404)
			return echo.NewHTTPError(http.StatusNotFound, "basket not found")
		}
		l.Error("delete_basket_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete basket")
	}

	l.Info("delete_basket_success", "id", id)
	return c.NoContent(http.StatusNoContent)
}
