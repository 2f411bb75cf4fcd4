package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/feirinha/feirinha/pkg/logging"
	"github.com/feirinha/feirinha/services/items/internal/service"
	"github.com/feirinha/feirinha/services/items/internal/transport"
)

type ItemsHTTP struct {
	Svc *service.ItemsService
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func (h *ItemsHTTP) GetProduto(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "produto.get")

	id, err := parseID(c)
	if err != nil {
		l.Warn("get_produto_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	produto, err := h.Svc.GetProduto(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("get_produto_failed", "status", 404, "reason", "produto does not exist")
			return echo.NewHTTPError(http.StatusNotFound, "produto not found")
		}
		l.Error("get_produto_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get produto")
	}

	return c.JSON(http.StatusOK, produto)
}

func (h *ItemsHTTP) GetProdutos(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "produto.list")

	produtos, err := h.Svc.GetProdutos(ctx)
	if err != nil {
		l.Error("list_produtos_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list produtos")
	}

	return c.JSON(http.StatusOK, produtos)
}

func (h *ItemsHTTP) CreateProduto(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "produto.create")

	var req transport.CreateProdutoRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_produto_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	produto, err := h.Svc.CreateProduto(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("create_produto_failed", "status", 400, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("create_produto_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot create produto")
	}

	l.Info("create_produto_success", "id", produto.ID)
	return c.JSON(http.StatusCreated, produto)
}

func (h *ItemsHTTP) UpdateProduto(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "produto.update")

	id, err := parseID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	var req transport.CreateProdutoRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_produto_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	produto, err := h.Svc.UpdateProduto(ctx, req, id)
	if err != nil {
		return mapWriteError(c, l, "update_produto_failed", err)
	}

	l.Info("update_produto_success", "id", produto.ID)
	return c.JSON(http.StatusOK, produto)
}

func (h *ItemsHTTP) PatchProduto(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "produto.patch")

	id, err := parseID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	var req transport.PatchProdutoRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("patch_produto_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	produto, err := h.Svc.PatchProduto(ctx, req, id)
	if err != nil {
		return mapWriteError(c, l, "patch_produto_failed", err)
	}

	l.Info("patch_produto_success", "id", produto.ID)
	return c.JSON(http.StatusOK, produto)
}

func (h *ItemsHTTP) DeleteProduto(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "produto.delete")

	id, err := parseID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	if err := h.Svc.DeleteProduto(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("delete_produto_failed", "status", 404)
			return echo.NewHTTPError(http.StatusNotFound, "produto not found")
		}
		l.Error("delete_produto_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete produto")
	}

	l.Info("delete_produto_success", "id", id)
	return c.NoContent(http.StatusNoContent)
}
