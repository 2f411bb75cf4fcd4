package models

import "github.com/shopspring/decimal"

// Preco keeps shopspring's default JSON encoding, so the wire value is a
// quoted decimal string ("29.99"), which is what basket-side lookups parse.
type Produto struct {
	ID    uint            `gorm:"primaryKey;autoIncrement"   json:"id"`
	Nome  string          `gorm:"size:255;not null"          json:"nome"`
	Preco decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"preco"`
}

func (Produto) TableName() string {
	return "produtos"
}
