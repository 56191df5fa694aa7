package controllers

import (
	"strconv"

	"backend/entity"
	"backend/pkg/resp"
	"backend/repository"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type MenuItemController struct{ Svc *services.CatalogService }

func NewMenuItemController(svc *services.CatalogService) *MenuItemController {
	return &MenuItemController{Svc: svc}
}

type menuItemView struct {
	ID       uint            `json:"id"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Featured bool            `json:"featured"`
	Category categoryView    `json:"category"`
}

func toMenuItemView(m *entity.MenuItem) menuItemView {
	return menuItemView{
		ID:       m.ID,
		Title:    m.Title,
		Price:    m.Price,
		Featured: m.Featured,
		Category: toCategoryView(&m.Category),
	}
}

// GET /menu-items?search=&category=&featured=&ordering=&page=&limit=
func (mc *MenuItemController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	category, _ := strconv.Atoi(c.DefaultQuery("category", "0"))

	f := repository.MenuItemFilter{
		Search:     c.Query("search"),
		CategoryID: uint(category),
		Ordering:   c.Query("ordering"),
		Page:       page,
		Limit:      limit,
	}
	if v, ok := c.GetQuery("featured"); ok {
		featured, err := strconv.ParseBool(v)
		if err != nil {
			resp.BadRequest(c, "featured must be true or false")
			return
		}
		f.Featured = &featured
	}

	items, total, err := mc.Svc.ListMenuItems(f)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	out := make([]menuItemView, 0, len(items))
	for i := range items {
		out = append(out, toMenuItemView(&items[i]))
	}
	resp.OK(c, gin.H{"items": out, "total": total, "page": f.Page, "limit": f.Limit})
}

// GET /menu-items/:id
func (mc *MenuItemController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	m, err := mc.Svc.GetMenuItem(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, toMenuItemView(m))
}

// POST /menu-items
func (mc *MenuItemController) Create(c *gin.Context) {
	var in services.MenuItemIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m, err := mc.Svc.CreateMenuItem(utils.CurrentRole(c), &in)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, toMenuItemView(m))
}

// PUT/PATCH /menu-items/:id
func (mc *MenuItemController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var patch services.MenuItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m, err := mc.Svc.UpdateMenuItem(utils.CurrentRole(c), uint(id), &patch)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, toMenuItemView(m))
}

// DELETE /menu-items/:id
func (mc *MenuItemController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := mc.Svc.DeleteMenuItem(utils.CurrentRole(c), uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
