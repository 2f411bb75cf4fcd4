package models

import "time"

type Basket struct {
	ID              uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	Nome            string       `gorm:"size:200;not null"        json:"nome"`
	Estabelecimento string       `gorm:"size:200;not null"        json:"estabelecimento"`
	DataCriacao     time.Time    `gorm:"autoCreateTime"           json:"data_criacao"`
	DataAtualizacao time.Time    `gorm:"autoUpdateTime"           json:"data_atualizacao"`
	Itens           []BasketItem `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (Basket) TableName() string {
	return "baskets"
}

// ProdutoID is a weak reference into the items service: the produto it
// names may have been deleted there, and valuation has to cope.
type BasketItem struct {
	ID             uint      `gorm:"primaryKey;autoIncrement"        json:"id"`
	BasketID       uint      `gorm:"not null;index"                  json:"basket"`
	ProdutoID      int       `gorm:"not null"                        json:"produto_id"`
	Quantidade     uint      `gorm:"default:1;check:quantidade>0"   json:"quantidade"`
	DataAdicionado time.Time `gorm:"autoCreateTime"                  json:"data_adicionado"`
}

func (BasketItem) TableName() string {
	return "basket_items"
}
