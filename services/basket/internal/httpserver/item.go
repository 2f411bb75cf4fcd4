package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/feirinha/feirinha/pkg/logging"
	"github.com/feirinha/feirinha/services/basket/internal/service"
	"github.com/feirinha/feirinha/services/basket/internal/transport"
)

type ItemHTTP struct {
	Svc *service.ItemService
}

func (h *ItemHTTP) GetItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "item.get")

	id, err := parseID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	item, err := h.Svc.GetItem(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("get_item_failed", "status", 404)
			return echo.NewHTTPError(http.StatusNotFound, "item not found")
		}
		l.Error("get_item_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get item")
	}

	return c.JSON(http.StatusOK, item)
}

func (h *ItemHTTP) GetItems(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "item.list")

	items, err := h.Svc.GetItems(ctx)
	if err != nil {
		l.Error("list_items_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list items")
	}

	return c.JSON(http.StatusOK, items)
}

func (h *ItemHTTP) CreateItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "item.create")

	var req transport.CreateItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_item_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	item, err := h.Svc.CreateItem(ctx, req)
	if err != nil {
		return mapWriteError(c, l, "create_item_failed", "item", err)
	}

	l.Info("create_item_success", "id", item.ID, "basket", item.BasketID)
	return c.JSON(http.StatusCreated, item)
}

func (h *ItemHTTP) PatchItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "item.patch")

	id, err := parseID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	var req transport.PatchItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("patch_item_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	item, err := h.Svc.PatchItem(ctx, req, id)
	if err != nil {
		return mapWriteError(c, l, "patch_item_failed", "item", err)
	}

	return c.JSON(http.StatusOK, item)
}

func (h *ItemHTTP) DeleteItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "item.delete")

	id, err := parseID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	if err := h.Svc.DeleteItem(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("delete_item_failed", "status", 404)
			return echo.NewHTTPError(http.StatusNotFound, "item not found")
		}
		l.Error("delete_item_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete item")
	}

	l.Info("delete_item_success", "id", id)
	return c.NoContent(http.StatusNoContent)
}
