package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

// CatalogRepository owns categories and menu items.
type CatalogRepository struct {
	DB *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

// ---------------- Categories ----------------

func (r *CatalogRepository) ListCategories() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Order("id").Find(&cats).Error
	return cats, err
}

func (r *CatalogRepository) GetCategory(id uint) (*entity.Category, error) {
	var cat entity.Category
	if err := r.DB.First(&cat, id).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CatalogRepository) CreateCategory(cat *entity.Category) error {
	return r.DB.Create(cat).Error
}

func (r *CatalogRepository) CountMenuItemsInCategory(categoryID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.MenuItem{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

func (r *CatalogRepository) DeleteCategory(id uint) error {
	return r.DB.Delete(&entity.Category{}, id).Error
}

// ---------------- Menu items ----------------

// MenuItemFilter carries the list-endpoint query knobs.
type MenuItemFilter struct {
	Search     string // matches item title or category title
	CategoryID uint
	Featured   *bool
	Ordering   string // "price" or "-price"
	Page       int
	Limit      int
}

func (r *CatalogRepository) ListMenuItems(f MenuItemFilter) ([]entity.MenuItem, int64, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}

	q := r.DB.Model(&entity.MenuItem{}).
		Joins("JOIN categories ON categories.id = menu_items.category_id")
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("menu_items.title LIKE ? OR categories.title LIKE ?", like, like)
	}
	if f.CategoryID != 0 {
		q = q.Where("menu_items.category_id = ?", f.CategoryID)
	}
	if f.Featured != nil {
		q = q.Where("menu_items.featured = ?", *f.Featured)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch f.Ordering {
	case "price":
		q = q.Order("menu_items.price")
	case "-price":
		q = q.Order("menu_items.price DESC")
	default:
		q = q.Order("menu_items.id")
	}

	var items []entity.MenuItem
	err := q.Preload("Category").
		Limit(f.Limit).Offset((f.Page - 1) * f.Limit).
		Find(&items).Error
	return items, total, err
}

func (r *CatalogRepository) GetMenuItem(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.Preload("Category").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *CatalogRepository) CreateMenuItem(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}

func (r *CatalogRepository) UpdateMenuItem(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(updates).Error
}

// CountMenuItemReferences counts cart and order lines pointing at the item.
// A non-zero count blocks deletion.
func (r *CatalogRepository) CountMenuItemReferences(menuItemID uint) (int64, error) {
	var carts, orders int64
	if err := r.DB.Model(&entity.CartItem{}).Where("menu_item_id = ?", menuItemID).Count(&carts).Error; err != nil {
		return 0, err
	}
	if err := r.DB.Model(&entity.OrderItem{}).Where("menu_item_id = ?", menuItemID).Count(&orders).Error; err != nil {
		return 0, err
	}
	return carts + orders, nil
}

func (r *CatalogRepository) DeleteMenuItem(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}
