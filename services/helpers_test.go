package services_test

import (
	"fmt"
	"testing"

	"backend/configs"
	"backend/entity"
	"backend/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupDB opens a fresh in-memory database per test, migrated and with the
// two role groups seeded.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, configs.Migrate(db))
	require.NoError(t, configs.SeedGroups(db))
	return db
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func newUser(t *testing.T, db *gorm.DB, username string, staff bool) *entity.User {
	t.Helper()
	u := &entity.User{Username: username, Password: "x", IsStaff: staff}
	require.NoError(t, db.Create(u).Error)
	return u
}

func addToGroup(t *testing.T, db *gorm.DB, u *entity.User, groupName string) {
	t.Helper()
	repo := repository.NewUserRepository(db)
	require.NoError(t, repo.AddToGroup(u, groupName))
}

func newCategory(t *testing.T, db *gorm.DB, slug, title string) *entity.Category {
	t.Helper()
	cat := &entity.Category{Slug: slug, Title: title}
	require.NoError(t, db.Create(cat).Error)
	return cat
}

func newMenuItem(t *testing.T, db *gorm.DB, cat *entity.Category, title, price string) *entity.MenuItem {
	t.Helper()
	m := &entity.MenuItem{Title: title, Price: dec(t, price), CategoryID: cat.ID}
	require.NoError(t, db.Create(m).Error)
	return m
}
