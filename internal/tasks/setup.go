package tasks

import (
	"log"

	"github.com/QuickTask/QT-Backend/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "app_tasks"); err != nil {
		log.Fatal("Failed to ensure schema app_tasks: ", err)
	}

	if err := db.DB.AutoMigrate(&Task{}); err != nil {
		log.Fatal("Failed to auto-migrate tables: ", err)
	}
}
