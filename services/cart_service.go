package services

import (
	"errors"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartService is the per-user staging area for an order. Every operation is
// scoped to the authenticated user; the user id is never client-supplied.
type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	Catalog  *repository.CatalogRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, cat *repository.CatalogRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, Catalog: cat}
}

type AddCartLineIn struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required"`
}

// List returns the caller's own lines plus their running subtotal.
func (s *CartService) List(userID uint) ([]entity.CartItem, decimal.Decimal, error) {
	lines, err := s.CartRepo.ListByUser(s.DB, userID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.Price)
	}
	return lines, subtotal, nil
}

// Add stages one line, snapshotting the current catalog price. A second add
// of the same item is rejected by the unique index; the caller must remove
// the existing line first, there is no implicit merge.
func (s *CartService) Add(userID uint, in *AddCartLineIn) (*entity.CartItem, error) {
	if in.Quantity < 1 {
		return nil, apperr.Validationf("quantity must be at least 1")
	}

	m, err := s.Catalog.GetMenuItem(in.MenuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("menu item %d", in.MenuItemID)
		}
		return nil, err
	}

	line := &entity.CartItem{
		UserID:     userID,
		MenuItemID: m.ID,
		Quantity:   in.Quantity,
		UnitPrice:  m.Price,
		Price:      m.Price.Mul(decimal.NewFromInt(int64(in.Quantity))),
	}
	if err := s.CartRepo.Insert(line); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Validationf("menu item %d is already in the cart", m.ID)
		}
		return nil, err
	}
	return line, nil
}

// RemoveLine deletes one of the caller's lines. Lines are private, so an id
// that isn't theirs is indistinguishable from one that doesn't exist.
func (s *CartService) RemoveLine(userID, lineID uint) error {
	affected, err := s.CartRepo.DeleteLine(userID, lineID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFoundf("cart line %d", lineID)
	}
	return nil
}

// Clear empties the cart. Idempotent.
func (s *CartService) Clear(userID uint) error {
	return s.CartRepo.DeleteByUser(s.DB, userID)
}
