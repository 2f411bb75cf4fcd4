package valuation

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/feirinha/feirinha/services/basket/internal/models"
)

type ItemValuation struct {
	ProdutoID     int
	ProdutoNome   string
	Quantidade    uint
	PrecoUnitario decimal.Decimal
	Subtotal      decimal.Decimal
}

type Valuator struct {
	Fetcher ProdutoFetcher
}

// Valuate prices a single line item. NotFound and Failed lookups come
// back as a zero-valued result carrying the matching name, never as an
// error; only the fetcher's unexpected error propagates.
func (v *Valuator) Valuate(ctx context.Context, item models.BasketItem) (ItemValuation, error) {
	out := ItemValuation{
		ProdutoID:  item.ProdutoID,
		Quantidade: item.Quantidade,
	}

	res, err := v.Fetcher.Fetch(ctx, item.ProdutoID)
	if err != nil {
		return ItemValuation{}, err
	}

	switch res.Status {
	case StatusFound:
		out.ProdutoNome = res.Nome
		out.PrecoUnitario = res.Preco
		out.Subtotal = res.Preco.Mul(decimal.NewFromInt(int64(item.Quantidade))).Round(2)
	case StatusNotFound:
		out.ProdutoNome = NomeProdutoNaoEncontrado
	case StatusFailed:
		out.ProdutoNome = NomeErroBuscarProduto
	}

	return out, nil
}
