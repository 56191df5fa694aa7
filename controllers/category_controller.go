package controllers

import (
	"strconv"

	"backend/entity"
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type CategoryController struct{ Svc *services.CatalogService }

func NewCategoryController(svc *services.CatalogService) *CategoryController {
	return &CategoryController{Svc: svc}
}

type categoryView struct {
	ID    uint   `json:"id"`
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

func toCategoryView(cat *entity.Category) categoryView {
	return categoryView{ID: cat.ID, Slug: cat.Slug, Title: cat.Title}
}

// GET /menu-categories
func (cc *CategoryController) List(c *gin.Context) {
	cats, err := cc.Svc.ListCategories()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	items := make([]categoryView, 0, len(cats))
	for i := range cats {
		items = append(items, toCategoryView(&cats[i]))
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /menu-categories
func (cc *CategoryController) Create(c *gin.Context) {
	var in services.CategoryIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := cc.Svc.CreateCategory(utils.CurrentRole(c), &in)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, toCategoryView(cat))
}

// DELETE /menu-categories/:id
func (cc *CategoryController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := cc.Svc.DeleteCategory(utils.CurrentRole(c), uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
