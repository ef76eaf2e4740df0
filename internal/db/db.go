package db

import (
	"log"
	"time"

	"github.com/VTVServicesAR/inspection-scheduler/internal/config"
	"github.com/VTVServicesAR/inspection-scheduler/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Vehicle{},
		&models.Appointment{},
		&models.Inspection{},
		&models.InspectionScore{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// One live appointment per vehicle+slot, enforced by the database so
	// concurrent requests cannot both commit. Without it the conflict
	// guarantee only holds inside a single transaction, so refuse to start.
	if err := db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_vehicle_slot_live
        ON appointments (vehicle_id, scheduled_at)
        WHERE status IN ('pending', 'confirmed')
    `).Error; err != nil {
		log.Fatalf("failed to create appointment slot index: %v", err)
	}

	return db
}
