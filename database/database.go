package database

import (
	"fmt"
	"time"

	"github.com/alamin-islam0/artify-server-assignment/internal/domain/catalog"
	"github.com/alamin-islam0/artify-server-assignment/internal/domain/favorites"
	"github.com/alamin-islam0/artify-server-assignment/internal/domain/reports"
	"github.com/alamin-islam0/artify-server-assignment/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres connection and migrates all domain models.
// The returned handle is constructed once at startup and passed down to the
// stores; nothing in the app reaches for a package-level DB.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Connection pool
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(30 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&users.User{},
		&catalog.Artwork{},
		&favorites.Favorite{},
		&reports.Report{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
