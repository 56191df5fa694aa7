package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).
		Preload("MenuItem").
		Order("id").
		Find(&items).Error
	return items, err
}

// OrderScope narrows listings to what a role may see. Zero fields mean "all"
// (the manager view).
type OrderScope struct {
	UserID         uint // customer: own orders
	DeliveryCrewID uint // crew: orders assigned to them
	Page           int
	Limit          int
}

func (r *OrderRepository) ListOrders(s OrderScope) ([]entity.Order, int64, error) {
	if s.Page <= 0 {
		s.Page = 1
	}
	if s.Limit <= 0 || s.Limit > 100 {
		s.Limit = 20
	}

	q := r.DB.Model(&entity.Order{})
	if s.UserID != 0 {
		q = q.Where("user_id = ?", s.UserID)
	}
	if s.DeliveryCrewID != 0 {
		q = q.Where("delivery_crew_id = ?", s.DeliveryCrewID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []entity.Order
	err := q.Order("id DESC").
		Limit(s.Limit).Offset((s.Page - 1) * s.Limit).
		Find(&orders).Error
	return orders, total, err
}

func (r *OrderRepository) Save(o *entity.Order) error {
	return r.DB.Save(o).Error
}

// DeleteOrder removes the order and its lines together.
func (r *OrderRepository) DeleteOrder(orderID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Order{}, orderID).Error
	})
}
