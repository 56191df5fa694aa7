package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	// Unset until a manager assigns someone from the Delivery Crew group.
	DeliveryCrewID *uint `gorm:"index" json:"deliveryCrewId"`
	DeliveryCrew   *User `gorm:"foreignKey:DeliveryCrewID" json:"-"`

	// false = in progress, true = delivered
	Status bool            `gorm:"index" json:"status"`
	Total  decimal.Decimal `gorm:"type:decimal(8,2)" json:"total"` // frozen at creation
	Date   time.Time       `gorm:"index" json:"date"`

	OrderItems []OrderItem `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
}
