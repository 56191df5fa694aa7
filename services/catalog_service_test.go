package services_test

import (
	"testing"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/pkg/authz"
	"backend/repository"
	"backend/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCatalogService(db *gorm.DB) *services.CatalogService {
	return services.NewCatalogService(repository.NewCatalogRepository(db))
}

func TestCategoryWriteGate(t *testing.T) {
	db := setupDB(t)
	svc := newCatalogService(db)

	in := &services.CategoryIn{Slug: "desserts", Title: "Desserts"}

	_, err := svc.CreateCategory(authz.RoleCustomer, in)
	assert.ErrorIs(t, err, apperr.ErrPermission)
	_, err = svc.CreateCategory(authz.RoleDeliveryCrew, in)
	assert.ErrorIs(t, err, apperr.ErrPermission)

	cat, err := svc.CreateCategory(authz.RoleManager, in)
	require.NoError(t, err)
	assert.Equal(t, "desserts", cat.Slug)

	_, err = svc.CreateCategory(authz.RoleManager, in)
	assert.ErrorIs(t, err, apperr.ErrValidation, "duplicate slug")
}

func TestCategoryProtectedDelete(t *testing.T) {
	db := setupDB(t)
	svc := newCatalogService(db)

	cat := newCategory(t, db, "mains", "Mains")
	newMenuItem(t, db, cat, "Pasta", "10.00")
	empty := newCategory(t, db, "sides", "Sides")

	t.Run("referenced category cannot be deleted", func(t *testing.T) {
		assert.ErrorIs(t, svc.DeleteCategory(authz.RoleManager, cat.ID), apperr.ErrProtected)
	})

	t.Run("unreferenced category deletes", func(t *testing.T) {
		require.NoError(t, svc.DeleteCategory(authz.RoleManager, empty.ID))
	})

	t.Run("missing category is a not-found", func(t *testing.T) {
		assert.ErrorIs(t, svc.DeleteCategory(authz.RoleManager, 9999), apperr.ErrNotFound)
	})
}

func TestMenuItemCRUD(t *testing.T) {
	db := setupDB(t)
	svc := newCatalogService(db)
	cat := newCategory(t, db, "mains", "Mains")

	t.Run("create validates the category", func(t *testing.T) {
		_, err := svc.CreateMenuItem(authz.RoleManager, &services.MenuItemIn{
			Title: "Pasta", Price: dec(t, "10.00"), CategoryID: 9999,
		})
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	m, err := svc.CreateMenuItem(authz.RoleManager, &services.MenuItemIn{
		Title: "Pasta", Price: dec(t, "10.00"), Featured: true, CategoryID: cat.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Mains", m.Category.Title)

	t.Run("partial update changes only what was sent", func(t *testing.T) {
		price := dec(t, "12.50")
		got, err := svc.UpdateMenuItem(authz.RoleManager, m.ID, &services.MenuItemPatch{Price: &price})
		require.NoError(t, err)
		assert.Equal(t, "12.50", got.Price.StringFixed(2))
		assert.Equal(t, "Pasta", got.Title)
		assert.True(t, got.Featured)
	})

	t.Run("negative price is rejected", func(t *testing.T) {
		price := dec(t, "-1.00")
		_, err := svc.UpdateMenuItem(authz.RoleManager, m.ID, &services.MenuItemPatch{Price: &price})
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("writes are manager-gated", func(t *testing.T) {
		title := "Noodles"
		_, err := svc.UpdateMenuItem(authz.RoleCustomer, m.ID, &services.MenuItemPatch{Title: &title})
		assert.ErrorIs(t, err, apperr.ErrPermission)
		assert.ErrorIs(t, svc.DeleteMenuItem(authz.RoleCustomer, m.ID), apperr.ErrPermission)
	})
}

func TestMenuItemProtectedDelete(t *testing.T) {
	db := setupDB(t)
	svc := newCatalogService(db)

	alice := newUser(t, db, "alice", false)
	cat := newCategory(t, db, "mains", "Mains")
	ordered := newMenuItem(t, db, cat, "Pasta", "10.00")
	carted := newMenuItem(t, db, cat, "Soup", "5.00")
	free := newMenuItem(t, db, cat, "Bread", "2.00")

	// reference one item from an order line and one from a cart line
	placeOrderFor(t, db, alice, ordered)
	stageCart(t, db, alice.ID, cartSpec{carted.ID, 1})

	assert.ErrorIs(t, svc.DeleteMenuItem(authz.RoleManager, ordered.ID), apperr.ErrProtected)
	assert.ErrorIs(t, svc.DeleteMenuItem(authz.RoleManager, carted.ID), apperr.ErrProtected)
	assert.NoError(t, svc.DeleteMenuItem(authz.RoleManager, free.ID))
}

func TestListMenuItemsFilters(t *testing.T) {
	db := setupDB(t)
	svc := newCatalogService(db)

	mains := newCategory(t, db, "mains", "Mains")
	drinks := newCategory(t, db, "drinks", "Drinks")
	newMenuItem(t, db, mains, "Pasta", "10.00")
	newMenuItem(t, db, mains, "Soup", "5.00")
	lemonade := newMenuItem(t, db, drinks, "Lemonade", "3.00")
	require.NoError(t, db.Model(&entity.MenuItem{}).Where("id = ?", lemonade.ID).
		Update("featured", true).Error)

	t.Run("search matches item and category titles", func(t *testing.T) {
		items, total, err := svc.ListMenuItems(repository.MenuItemFilter{Search: "Drink"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, items, 1)
		assert.Equal(t, "Lemonade", items[0].Title)
	})

	t.Run("category filter", func(t *testing.T) {
		_, total, err := svc.ListMenuItems(repository.MenuItemFilter{CategoryID: mains.ID})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})

	t.Run("featured filter", func(t *testing.T) {
		featured := true
		items, _, err := svc.ListMenuItems(repository.MenuItemFilter{Featured: &featured})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Lemonade", items[0].Title)
	})

	t.Run("price ordering", func(t *testing.T) {
		items, _, err := svc.ListMenuItems(repository.MenuItemFilter{Ordering: "price"})
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, "Lemonade", items[0].Title)
		assert.Equal(t, "Pasta", items[2].Title)
	})

	t.Run("pagination", func(t *testing.T) {
		items, total, err := svc.ListMenuItems(repository.MenuItemFilter{Page: 2, Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, items, 1)
	})
}
