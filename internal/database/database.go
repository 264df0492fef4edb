package database

import (
	"afftrack/config"
	"afftrack/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
		// Surface duplicate-key violations as gorm.ErrDuplicatedKey so the
		// repositories can retry code minting and detect repeat conversions.
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

// AutoMigrate runs Gorm auto-migration for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Brand{},
		&models.Affiliate{},
		&models.Referrer{},
		&models.Campaign{},
		&models.CommissionRate{},
		&models.Creative{},
		&models.Link{},
		&models.Click{},
		&models.Conversion{},
		&models.Payout{},
	)
}
