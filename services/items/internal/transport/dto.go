package transport

import "github.com/shopspring/decimal"

type CreateProdutoRequest struct {
	Nome  string          `json:"nome"`
	Preco decimal.Decimal `json:"preco"`
}

type PatchProdutoRequest struct {
	Nome  *string          `json:"nome"`
	Preco *decimal.Decimal `json:"preco"`
}
