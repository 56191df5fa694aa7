package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Slug  string `gorm:"uniqueIndex" json:"slug"`
	Title string `gorm:"index" json:"title"`

	MenuItems []MenuItem `json:"-"`
}
