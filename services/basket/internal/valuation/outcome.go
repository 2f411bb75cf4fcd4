// Package valuation resolves basket line items against the items service
// and folds them into monetary summaries. Lookup failures are absorbed
// into zero-valued results so one unreachable produto never aborts the
// rest of a basket.
package valuation

import "github.com/shopspring/decimal"

// Names substituted when a produto cannot be resolved.
const (
	NomeProdutoNaoEncontrado = "Produto não encontrado"
	NomeErroBuscarProduto    = "Erro ao buscar produto"
)

type Status int

const (
	// StatusFound: the items service answered 200 with a parseable payload.
	StatusFound Status = iota
	// StatusNotFound: the items service answered with a non-200 status.
	StatusNotFound
	// StatusFailed: the call did not complete or the payload was unusable.
	StatusFailed
)

// Outcome is the result of one produto lookup, tagged by Status. Nome and
// Preco carry data only when Status is StatusFound.
type Outcome struct {
	Status Status
	Nome   string
	Preco  decimal.Decimal
}

func Found(nome string, preco decimal.Decimal) Outcome {
	return Outcome{Status: StatusFound, Nome: nome, Preco: preco}
}

func NotFound() Outcome {
	return Outcome{Status: StatusNotFound}
}

func Failed() Outcome {
	return Outcome{Status: StatusFailed}
}
