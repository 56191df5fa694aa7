package configs

import (
	"fmt"

	"backend/entity"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectDatabase opens the store selected by DB_DRIVER. TranslateError is
// on so unique-constraint violations surface as gorm.ErrDuplicatedKey;
// registration and the cart ledger rely on that instead of check-then-act
// lookups.
func ConnectDatabase(cfg *Config) (*gorm.DB, error) {
	gcfg := &gorm.Config{TranslateError: true}

	switch cfg.DBDriver {
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.DBSource), gcfg)
	case "postgres":
		return gorm.Open(postgres.Open(cfg.DBSource), gcfg)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

// Migrate the schema
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{}, &entity.Group{},
		&entity.Category{}, &entity.MenuItem{},
		&entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	)
}
