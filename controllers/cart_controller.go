package controllers

import (
	"strconv"

	"backend/entity"
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(svc *services.CartService) *CartController {
	return &CartController{Svc: svc}
}

type cartLineView struct {
	ID         uint            `json:"id"`
	MenuItemID uint            `json:"menuItemId"`
	Title      string          `json:"title"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	Price      decimal.Decimal `json:"price"`
}

func toCartLineView(l *entity.CartItem) cartLineView {
	return cartLineView{
		ID:         l.ID,
		MenuItemID: l.MenuItemID,
		Title:      l.MenuItem.Title,
		Quantity:   l.Quantity,
		UnitPrice:  l.UnitPrice,
		Price:      l.Price,
	}
}

// GET /cart/menu-items
func (h *CartController) List(c *gin.Context) {
	lines, subtotal, err := h.Svc.List(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	items := make([]cartLineView, 0, len(lines))
	for i := range lines {
		items = append(items, toCartLineView(&lines[i]))
	}
	resp.OK(c, gin.H{"items": items, "subtotal": subtotal})
}

// POST /cart/menu-items
func (h *CartController) Add(c *gin.Context) {
	var req services.AddCartLineIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	line, err := h.Svc.Add(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, toCartLineView(line))
}

// DELETE /cart/menu-items/:id
func (h *CartController) RemoveLine(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.Svc.RemoveLine(utils.CurrentUserID(c), uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// DELETE /cart/menu-items
func (h *CartController) Clear(c *gin.Context) {
	if err := h.Svc.Clear(utils.CurrentUserID(c)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "cart emptied"})
}
