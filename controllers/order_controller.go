package controllers

import (
	"strconv"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/pkg/authz"
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

type orderView struct {
	ID             uint            `json:"id"`
	UserID         uint            `json:"userId"`
	DeliveryCrewID *uint           `json:"deliveryCrewId"`
	Status         bool            `json:"status"`
	Total          decimal.Decimal `json:"total"`
	Date           string          `json:"date"`
}

func toOrderView(o *entity.Order) orderView {
	return orderView{
		ID:             o.ID,
		UserID:         o.UserID,
		DeliveryCrewID: o.DeliveryCrewID,
		Status:         o.Status,
		Total:          o.Total,
		Date:           o.Date.Format("2006-01-02"),
	}
}

type orderItemView struct {
	ID         uint            `json:"id"`
	MenuItemID uint            `json:"menuItemId"`
	Title      string          `json:"title"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	Price      decimal.Decimal `json:"price"`
}

func toOrderItemViews(items []entity.OrderItem) []orderItemView {
	out := make([]orderItemView, 0, len(items))
	for i := range items {
		it := &items[i]
		out = append(out, orderItemView{
			ID:         it.ID,
			MenuItemID: it.MenuItemID,
			Title:      it.MenuItem.Title,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			Price:      it.Price,
		})
	}
	return out
}

// POST /orders
func (oc *OrderController) Place(c *gin.Context) {
	order, err := oc.Svc.Place(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, toOrderView(order))
}

// GET /orders
func (oc *OrderController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	orders, total, err := oc.Svc.List(utils.CurrentUserID(c), utils.CurrentRole(c), page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	items := make([]orderView, 0, len(orders))
	for i := range orders {
		items = append(items, toOrderView(&orders[i]))
	}
	resp.OK(c, gin.H{"items": items, "total": total, "page": page, "limit": limit})
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	order, items, err := oc.Svc.Get(utils.CurrentUserID(c), utils.CurrentRole(c), uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	out := toOrderView(order)
	resp.OK(c, gin.H{
		"id": out.ID, "userId": out.UserID, "deliveryCrewId": out.DeliveryCrewID,
		"status": out.Status, "total": out.Total, "date": out.Date,
		"items": toOrderItemViews(items),
	})
}

type patchOrderReq struct {
	DeliveryCrewID *uint `json:"deliveryCrewId"`
	Status         *bool `json:"status"`
}

// PATCH /orders/:id. A manager assigns delivery crew; the assigned crew
// member updates delivery status. Anything else is forbidden.
func (oc *OrderController) Patch(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req patchOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	role := utils.CurrentRole(c)
	switch {
	case role == authz.RoleManager && req.DeliveryCrewID != nil:
		order, err := oc.Svc.AssignCrew(role, uint(id), *req.DeliveryCrewID)
		if err != nil {
			resp.Error(c, err)
			return
		}
		resp.OK(c, toOrderView(order))
	case role == authz.RoleDeliveryCrew && req.Status != nil:
		order, err := oc.Svc.UpdateStatus(utils.CurrentUserID(c), role, uint(id), *req.Status)
		if err != nil {
			resp.Error(c, err)
			return
		}
		resp.OK(c, toOrderView(order))
	case req.DeliveryCrewID == nil && req.Status == nil:
		resp.BadRequest(c, "nothing to update")
	default:
		resp.Error(c, apperr.ErrPermission)
	}
}

// PUT /orders/:id. Manager full update.
func (oc *OrderController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req services.UpdateOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := oc.Svc.Update(utils.CurrentRole(c), uint(id), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, toOrderView(order))
}

// DELETE /orders/:id. Manager only.
func (oc *OrderController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := oc.Svc.Delete(utils.CurrentRole(c), uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
