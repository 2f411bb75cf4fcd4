package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/feirinha/feirinha/pkg/logging"
	"github.com/feirinha/feirinha/services/basket/internal/service"
	"github.com/feirinha/feirinha/services/basket/internal/transport"
)

type SummaryHTTP struct {
	Svc *service.SummaryService
}

// GetSummary answers /api/basket-summary and
// /api/basket-summary/:basket_id. A missing basket is a 404 naming the
// id; anything unexpected out of the summary flow becomes a 500 carrying
// the error text. Per-item lookup failures never reach here, they are
// zeroed inside the valuation.
func (h *SummaryHTTP) GetSummary(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "basket.summary")

	var basketID *uint
	if c.Param("basket_id") != "" {
		id, err := parseID(c, "basket_id")
		if err != nil {
			l.Warn("summary_failed", "status", 400, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "basket_id is not an integer")
		}
		basketID = &id
	}

	summary, err := h.Svc.Summarize(ctx, basketID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("summary_failed", "status", 404, "basket_id", *basketID)
			return c.JSON(http.StatusNotFound, transport.ErrorResponse{
				Erro: fmt.Sprintf("Carrinho com ID %d não encontrado", *basketID),
			})
		}
		l.Error("summary_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.ErrorResponse{
			Erro: fmt.Sprintf("Erro ao calcular resumo do carrinho: %v", err),
		})
	}

	l.Info("summary_success", "itens", summary.TotalItensUnicos)
	return c.JSON(http.StatusOK, summary)
}
