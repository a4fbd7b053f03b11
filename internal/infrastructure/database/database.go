package database

import (
	"fmt"

	"github.com/pradyuprasad/tp/config"
	"github.com/pradyuprasad/tp/internal/domain/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewConnection opens the store selected by cfg.Storage.Driver and migrates it.
// The memory driver returns a nil *gorm.DB; callers keep records in memory only.
func NewConnection(cfg *config.Config) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	switch cfg.Storage.Driver {
	case config.StorageMemory:
		return nil, nil
	case config.StorageSQLite:
		db, err = NewSQLiteConnection(cfg.Storage.SQLitePath)
	case config.StoragePostgres:
		db, err = NewPostgresConnection(cfg.DB)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the tables backing the address book
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entity.Person{}, &entity.Appointment{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}
}
