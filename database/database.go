package database

import (
	"fmt"
	"strings"

	"github.com/7248-om/gshock12/config"
	"github.com/7248-om/gshock12/logger"
	"github.com/7248-om/gshock12/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open connects to postgres (DATABASE_URL or the DB_* fields) or, with DB_DRIVER=sqlite, a local file.
func Open(cfg *config.Configuration) (*gorm.DB, error) {
	gcfg := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)}

	var dialector gorm.Dialector
	switch strings.ToLower(cfg.DBDriver) {
	case "", "postgres", "postgresql":
		dialector = postgres.Open(cfg.PostgresDSN())
	case "sqlite":
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, gcfg)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.DBDriver, err)
	}
	logger.WithComponent("database").Infof("✅ Connected using %s driver", dialector.Name())
	return db, nil
}

// AllModels lists every table owned by the service, in migration order.
func AllModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.MenuItem{},
		&models.Artist{},
		&models.Artwork{},
		&models.Workshop{},
		&models.Order{},
		&models.OrderItem{},
		&models.Interaction{},
		&models.FranchiseLead{},
		&models.EmailTemplate{},
		&models.TableQR{},
	}
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AllModels()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
