package config

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Damien-Lo/PersonalAssistantNative/models"
)

// DB is the shared database handle used by all controllers.
var DB *gorm.DB

// ConnectDB opens the postgres connection from the DATABASE_URL (or the
// individual DB_* variables) and migrates the schema.
func ConnectDB() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			getenv("DB_HOST", "localhost"),
			getenv("DB_USER", "postgres"),
			os.Getenv("DB_PASSWORD"),
			getenv("DB_NAME", "mealplanner"),
			getenv("DB_PORT", "5432"),
		)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	DB = db

	Migrate(db)
}

// Migrate runs auto-migration for all models.
func Migrate(db *gorm.DB) {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Ingredient{},
		&models.Dish{},
		&models.CalendarEvent{},
	); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
