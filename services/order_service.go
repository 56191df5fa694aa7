package services

import (
	"errors"
	"time"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/pkg/authz"
	"backend/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService converts carts into immutable-total orders and enforces which
// role sees and mutates which slice of the order set.
type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	UserRepo *repository.UserRepository
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	userRepo *repository.UserRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, UserRepo: userRepo}
}

// Place converts the caller's cart into an order inside one transaction.
// A failure at any step leaves the cart untouched and no partial order
// behind.
func (s *OrderService) Place(userID uint) (*entity.Order, error) {
	var placed entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		lines, err := s.CartRepo.ListByUser(tx, userID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return apperr.ErrEmptyCart
		}

		total := decimal.Zero
		for _, l := range lines {
			total = total.Add(l.Price)
		}

		order := entity.Order{
			UserID: userID,
			Status: false,
			Total:  total,
			Date:   time.Now(),
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, l := range lines {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: l.MenuItemID,
				Quantity:   l.Quantity,
				UnitPrice:  l.UnitPrice,
				Price:      l.Price,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}

		if err := s.CartRepo.DeleteByUser(tx, userID); err != nil {
			return err
		}

		placed = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &placed, nil
}

// List returns the slice of orders the requester's role is allowed to see.
func (s *OrderService) List(requesterID uint, role authz.Role, page, limit int) ([]entity.Order, int64, error) {
	scope := repository.OrderScope{Page: page, Limit: limit}
	switch {
	case authz.Can(role, authz.OpOrderListAll):
	case role == authz.RoleDeliveryCrew:
		scope.DeliveryCrewID = requesterID
	default:
		scope.UserID = requesterID
	}
	return s.Repo.ListOrders(scope)
}

// Get fetches one order with its lines. An order outside the requester's
// scope is a permission error, not a 404.
func (s *OrderService) Get(requesterID uint, role authz.Role, orderID uint) (*entity.Order, []entity.OrderItem, error) {
	o, err := s.getOrder(orderID)
	if err != nil {
		return nil, nil, err
	}
	if !s.inScope(requesterID, role, o) {
		return nil, nil, apperr.ErrPermission
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, nil, err
	}
	return o, items, nil
}

// AssignCrew sets the delivery crew on an order. Manager only; the target
// must actually be in the Delivery Crew group. Status is left alone.
func (s *OrderService) AssignCrew(role authz.Role, orderID, crewUserID uint) (*entity.Order, error) {
	if !authz.Can(role, authz.OpOrderAssignCrew) {
		return nil, apperr.ErrPermission
	}
	o, err := s.getOrder(orderID)
	if err != nil {
		return nil, err
	}
	if err := s.checkCrewMember(crewUserID); err != nil {
		return nil, err
	}

	o.DeliveryCrewID = &crewUserID
	if err := s.Repo.Save(o); err != nil {
		return nil, err
	}
	return o, nil
}

// UpdateStatus flips delivery status. Only the crew member the order is
// assigned to may do this; managers assign, they do not deliver.
func (s *OrderService) UpdateStatus(requesterID uint, role authz.Role, orderID uint, status bool) (*entity.Order, error) {
	if !authz.Can(role, authz.OpOrderSetStatus) {
		return nil, apperr.ErrPermission
	}
	o, err := s.getOrder(orderID)
	if err != nil {
		return nil, err
	}
	if o.DeliveryCrewID == nil || *o.DeliveryCrewID != requesterID {
		return nil, apperr.ErrPermission
	}

	o.Status = status
	if err := s.Repo.Save(o); err != nil {
		return nil, err
	}
	return o, nil
}

// UpdateOrderIn is the manager's full update; nil fields are unchanged.
type UpdateOrderIn struct {
	DeliveryCrewID *uint `json:"deliveryCrewId"`
	Status         *bool `json:"status"`
}

// Update lets a manager edit any order (crew assignment and status together).
func (s *OrderService) Update(role authz.Role, orderID uint, in *UpdateOrderIn) (*entity.Order, error) {
	if !authz.Can(role, authz.OpOrderAdmin) {
		return nil, apperr.ErrPermission
	}
	o, err := s.getOrder(orderID)
	if err != nil {
		return nil, err
	}

	if in.DeliveryCrewID != nil {
		if err := s.checkCrewMember(*in.DeliveryCrewID); err != nil {
			return nil, err
		}
		o.DeliveryCrewID = in.DeliveryCrewID
	}
	if in.Status != nil {
		o.Status = *in.Status
	}
	if err := s.Repo.Save(o); err != nil {
		return nil, err
	}
	return o, nil
}

// Delete removes an order and its lines. Manager only.
func (s *OrderService) Delete(role authz.Role, orderID uint) error {
	if !authz.Can(role, authz.OpOrderAdmin) {
		return apperr.ErrPermission
	}
	if _, err := s.getOrder(orderID); err != nil {
		return err
	}
	return s.Repo.DeleteOrder(orderID)
}

func (s *OrderService) getOrder(orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("order %d", orderID)
		}
		return nil, err
	}
	return o, nil
}

func (s *OrderService) inScope(requesterID uint, role authz.Role, o *entity.Order) bool {
	switch {
	case authz.Can(role, authz.OpOrderListAll):
		return true
	case role == authz.RoleDeliveryCrew:
		return o.DeliveryCrewID != nil && *o.DeliveryCrewID == requesterID
	default:
		return o.UserID == requesterID
	}
}

func (s *OrderService) checkCrewMember(userID uint) error {
	in, err := s.UserRepo.IsInGroup(userID, entity.GroupDeliveryCrew)
	if err != nil {
		return err
	}
	if !in {
		return apperr.Validationf("user %d is not in the %s group", userID, entity.GroupDeliveryCrew)
	}
	return nil
}
