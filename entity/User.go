package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `json:"email"`
	Password string `json:"-"`
	IsStaff  bool   `json:"isStaff"`

	Groups []Group `gorm:"many2many:user_groups;" json:"-"`

	// Relations, preloaded only when needed
	CartItems  []CartItem `json:"-"`
	Orders     []Order    `json:"-"`
	Deliveries []Order    `gorm:"foreignKey:DeliveryCrewID" json:"-"`
}

// GroupNames flattens the preloaded memberships for role resolution.
func (u *User) GroupNames() []string {
	names := make([]string, 0, len(u.Groups))
	for _, g := range u.Groups {
		names = append(names, g.Name)
	}
	return names
}
