package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one staged line of an in-progress order. No gorm.Model here:
// cart lines are hard-deleted (on clear and on order placement), and a
// soft-deleted row would keep holding the (user, menu item) unique slot.
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`

	UserID uint `gorm:"uniqueIndex:idx_cart_user_item;not null" json:"userId"`
	User   User `json:"-"`

	MenuItemID uint     `gorm:"uniqueIndex:idx_cart_user_item;not null" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(8,2)" json:"unitPrice"` // catalog price at add time
	Price     decimal.Decimal `gorm:"type:decimal(8,2)" json:"price"`     // unit_price * quantity
}
