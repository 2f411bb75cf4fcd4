package valuation

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/feirinha/feirinha/services/basket/internal/models"
)

// BasketLabel is the owning basket's display data, prefetched once per
// summary instead of being resolved per line item.
type BasketLabel struct {
	ID   uint
	Nome string
}

type SummaryItem struct {
	ProdutoID     int
	ProdutoNome   string
	Quantidade    uint
	PrecoUnitario decimal.Decimal
	Subtotal      decimal.Decimal

	// Set only when aggregating across baskets.
	BasketID   uint
	BasketNome string
}

type Summary struct {
	TotalItensUnicos int
	TotalQuantidade  uint
	ValorTotal       decimal.Decimal
	Itens            []SummaryItem
}

type Aggregator struct {
	Valuator *Valuator
}

// Aggregate values every line item in order and folds the results into
// basket-level totals. labels maps basket id to its display data; a nil
// map means single-basket mode and no basket fields on the items. Each
// produto is looked up once per line item, duplicates included.
func (a *Aggregator) Aggregate(ctx context.Context, items []models.BasketItem, labels map[uint]BasketLabel) (Summary, error) {
	summary := Summary{
		ValorTotal: decimal.Zero,
		Itens:      make([]SummaryItem, 0, len(items)),
	}

	for _, item := range items {
		val, err := a.Valuator.Valuate(ctx, item)
		if err != nil {
			return Summary{}, err
		}

		entry := SummaryItem{
			ProdutoID:     val.ProdutoID,
			ProdutoNome:   val.ProdutoNome,
			Quantidade:    val.Quantidade,
			PrecoUnitario: val.PrecoUnitario,
			Subtotal:      val.Subtotal,
		}
		if labels != nil {
			if label, ok := labels[item.BasketID]; ok {
				entry.BasketID = label.ID
				entry.BasketNome = label.Nome
			}
		}

		summary.TotalItensUnicos++
		summary.TotalQuantidade += item.Quantidade
		summary.ValorTotal = summary.ValorTotal.Add(val.Subtotal)
		summary.Itens = append(summary.Itens, entry)
	}

	summary.ValorTotal = summary.ValorTotal.Round(2)
	return summary, nil
}
