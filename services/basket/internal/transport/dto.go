package transport

import "time"

type ErrorResponse struct {
	Erro string `json:"erro"`
}

type CreateBasketRequest struct {
	Nome            string `json:"nome"`
	Estabelecimento string `json:"estabelecimento"`
}

type PatchBasketRequest struct {
	Nome            *string `json:"nome"`
	Estabelecimento *string `json:"estabelecimento"`
}

type CreateItemRequest struct {
	Basket     uint  `json:"basket"`
	ProdutoID  int   `json:"produto_id"`
	Quantidade *uint `json:"quantidade"`
}

type PatchItemRequest struct {
	Quantidade *uint `json:"quantidade"`
}

// BasketResponse decorates a basket read with computed totals.
type BasketResponse struct {
	ID              uint      `json:"id"`
	Nome            string    `json:"nome"`
	Estabelecimento string    `json:"estabelecimento"`
	TotalItens      int       `json:"total_itens"`
	ValorTotal      float64   `json:"valor_total"`
	DataCriacao     time.Time `json:"data_criacao"`
	DataAtualizacao time.Time `json:"data_atualizacao"`
}

// ItemResponse decorates a line-item read with produto data resolved from
// the items service. ProdutoPreco keeps the items service's string wire
// format, "0.00" when the lookup did not succeed.
type ItemResponse struct {
	ID             uint      `json:"id"`
	Basket         uint      `json:"basket"`
	BasketNome     string    `json:"basket_nome"`
	ProdutoID      int       `json:"produto_id"`
	ProdutoNome    string    `json:"produto_nome"`
	ProdutoPreco   string    `json:"produto_preco"`
	Quantidade     uint      `json:"quantidade"`
	Subtotal       float64   `json:"subtotal"`
	DataAdicionado time.Time `json:"data_adicionado"`
}

type SummaryItemResponse struct {
	ProdutoID     int     `json:"produto_id"`
	ProdutoNome   string  `json:"produto_nome"`
	Quantidade    uint    `json:"quantidade"`
	PrecoUnitario float64 `json:"preco_unitario"`
	Subtotal      float64 `json:"subtotal"`

	// Cross-basket mode only.
	BasketID   uint   `json:"basket_id,omitempty"`
	BasketNome string `json:"basket_nome,omitempty"`
}

type BasketInfo struct {
	BasketID        uint      `json:"basket_id"`
	BasketNome      string    `json:"basket_nome"`
	Estabelecimento string    `json:"estabelecimento"`
	DataCriacao     time.Time `json:"data_criacao"`
}

type SummaryResponse struct {
	TotalItensUnicos int                   `json:"total_itens_unicos"`
	TotalQuantidade  uint                  `json:"total_quantidade"`
	ValorTotal       float64               `json:"valor_total"`
	Itens            []SummaryItemResponse `json:"itens"`
	BasketInfo       *BasketInfo           `json:"basket_info,omitempty"`
}
