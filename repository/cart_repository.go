package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{DB: db}
}

func (r *CartRepository) ListByUser(db *gorm.DB, userID uint) ([]entity.CartItem, error) {
	var lines []entity.CartItem
	err := db.Where("user_id = ?", userID).
		Preload("MenuItem").
		Order("id").
		Find(&lines).Error
	return lines, err
}

// Insert relies on the (user_id, menu_item_id) unique index: a duplicate add
// comes back as gorm.ErrDuplicatedKey, there is no prior existence check.
func (r *CartRepository) Insert(line *entity.CartItem) error {
	return r.DB.Create(line).Error
}

// DeleteLine removes one line if it belongs to the user. Returns rows affected.
func (r *CartRepository) DeleteLine(userID, lineID uint) (int64, error) {
	res := r.DB.Where("id = ? AND user_id = ?", lineID, userID).Delete(&entity.CartItem{})
	return res.RowsAffected, res.Error
}

// DeleteByUser empties the cart. Idempotent: deleting nothing is fine.
func (r *CartRepository) DeleteByUser(db *gorm.DB, userID uint) error {
	return db.Where("user_id = ?", userID).Delete(&entity.CartItem{}).Error
}
