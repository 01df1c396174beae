package services

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"complaints_backend_echo/internal/models"
)

// InitDB initializes the database connection with connection pooling
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, err
	}

	// Get underlying sql.DB to configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Database connection established")
	return db, nil
}

// AutoMigrate runs database migrations for all models
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.PaymentMethod{},
		&models.Payment{},
		&models.Subscription{},
		&models.Notification{},
		&models.Setting{},
		&models.ScheduledTask{},
		&models.ScheduledTaskHistory{},
	)
	if err != nil {
		return err
	}

	if err := seedRoles(db); err != nil {
		return err
	}

	log.Println("Database migrations completed")
	return nil
}

// seedRoles makes sure the fixed role set exists
func seedRoles(db *gorm.DB) error {
	roles := []models.Role{
		{Name: models.RoleTrader, Description: "Trader submitting complaints and payments"},
		{Name: models.RoleTechnicalCommittee, Description: "Committee member reviewing complaints and payments"},
		{Name: models.RoleHigherCommittee, Description: "Committee member with full administrative access"},
	}
	for _, role := range roles {
		var existing models.Role
		err := db.Where(models.Role{Name: role.Name}).
			Attrs(models.Role{Description: role.Description}).
			FirstOrCreate(&existing).Error
		if err != nil {
			return err
		}
	}
	return nil
}
