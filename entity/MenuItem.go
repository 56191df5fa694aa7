package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Title    string          `gorm:"index" json:"title"`
	Price    decimal.Decimal `gorm:"type:decimal(8,2)" json:"price"`
	Featured bool            `gorm:"index" json:"featured"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"` // preload only for detail views

	CartItems  []CartItem  `json:"-"`
	OrderItems []OrderItem `json:"-"`
}
