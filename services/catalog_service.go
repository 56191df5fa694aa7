package services

import (
	"errors"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/pkg/authz"
	"backend/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CatalogService is the read-mostly menu store. Writes are manager-gated;
// deletes are rejected while anything still references the row.
type CatalogService struct {
	Repo *repository.CatalogRepository
}

func NewCatalogService(repo *repository.CatalogRepository) *CatalogService {
	return &CatalogService{Repo: repo}
}

// ---------------- Categories ----------------

type CategoryIn struct {
	Slug  string `json:"slug" binding:"required"`
	Title string `json:"title" binding:"required"`
}

func (s *CatalogService) ListCategories() ([]entity.Category, error) {
	return s.Repo.ListCategories()
}

func (s *CatalogService) CreateCategory(role authz.Role, in *CategoryIn) (*entity.Category, error) {
	if !authz.Can(role, authz.OpCatalogWrite) {
		return nil, apperr.ErrPermission
	}
	cat := &entity.Category{Slug: in.Slug, Title: in.Title}
	if err := s.Repo.CreateCategory(cat); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Validationf("category slug %q already exists", in.Slug)
		}
		return nil, err
	}
	return cat, nil
}

func (s *CatalogService) DeleteCategory(role authz.Role, id uint) error {
	if !authz.Can(role, authz.OpCatalogWrite) {
		return apperr.ErrPermission
	}
	if _, err := s.Repo.GetCategory(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("category %d", id)
		}
		return err
	}
	refs, err := s.Repo.CountMenuItemsInCategory(id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return apperr.Protectedf("category %d has %d menu items", id, refs)
	}
	return s.Repo.DeleteCategory(id)
}

// ---------------- Menu items ----------------

type MenuItemIn struct {
	Title      string          `json:"title" binding:"required"`
	Price      decimal.Decimal `json:"price" binding:"required"`
	Featured   bool            `json:"featured"`
	CategoryID uint            `json:"categoryId" binding:"required"`
}

// MenuItemPatch carries partial updates; nil means unchanged.
type MenuItemPatch struct {
	Title      *string          `json:"title"`
	Price      *decimal.Decimal `json:"price"`
	Featured   *bool            `json:"featured"`
	CategoryID *uint            `json:"categoryId"`
}

func (s *CatalogService) ListMenuItems(f repository.MenuItemFilter) ([]entity.MenuItem, int64, error) {
	return s.Repo.ListMenuItems(f)
}

func (s *CatalogService) GetMenuItem(id uint) (*entity.MenuItem, error) {
	m, err := s.Repo.GetMenuItem(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("menu item %d", id)
		}
		return nil, err
	}
	return m, nil
}

func (s *CatalogService) CreateMenuItem(role authz.Role, in *MenuItemIn) (*entity.MenuItem, error) {
	if !authz.Can(role, authz.OpCatalogWrite) {
		return nil, apperr.ErrPermission
	}
	if in.Price.IsNegative() {
		return nil, apperr.Validationf("price must not be negative")
	}
	if _, err := s.Repo.GetCategory(in.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Validationf("category %d does not exist", in.CategoryID)
		}
		return nil, err
	}

	m := &entity.MenuItem{
		Title:      in.Title,
		Price:      in.Price,
		Featured:   in.Featured,
		CategoryID: in.CategoryID,
	}
	if err := s.Repo.CreateMenuItem(m); err != nil {
		return nil, err
	}
	return s.GetMenuItem(m.ID)
}

func (s *CatalogService) UpdateMenuItem(role authz.Role, id uint, patch *MenuItemPatch) (*entity.MenuItem, error) {
	if !authz.Can(role, authz.OpCatalogWrite) {
		return nil, apperr.ErrPermission
	}
	if _, err := s.GetMenuItem(id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Price != nil {
		if patch.Price.IsNegative() {
			return nil, apperr.Validationf("price must not be negative")
		}
		updates["price"] = *patch.Price
	}
	if patch.Featured != nil {
		updates["featured"] = *patch.Featured
	}
	if patch.CategoryID != nil {
		if _, err := s.Repo.GetCategory(*patch.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.Validationf("category %d does not exist", *patch.CategoryID)
			}
			return nil, err
		}
		updates["category_id"] = *patch.CategoryID
	}
	if len(updates) == 0 {
		return nil, apperr.Validationf("nothing to update")
	}

	if err := s.Repo.UpdateMenuItem(id, updates); err != nil {
		return nil, err
	}
	return s.GetMenuItem(id)
}

func (s *CatalogService) DeleteMenuItem(role authz.Role, id uint) error {
	if !authz.Can(role, authz.OpCatalogWrite) {
		return apperr.ErrPermission
	}
	if _, err := s.GetMenuItem(id); err != nil {
		return err
	}
	refs, err := s.Repo.CountMenuItemReferences(id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return apperr.Protectedf("menu item %d is referenced by %d cart or order lines", id, refs)
	}
	return s.Repo.DeleteMenuItem(id)
}
