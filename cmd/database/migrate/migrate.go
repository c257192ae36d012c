package migration

import (
	"fmt"
	"log"

	"github.com/Naamee/distance-backend/entities"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Alert{}); err != nil {
		log.Fatalf("Error migrating alert database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.MeetDate{}); err != nil {
		log.Fatalf("Error migrating meet date database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FridgeItem{}); err != nil {
		log.Fatalf("Error migrating fridge item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FridgeEntry{}); err != nil {
		log.Fatalf("Error migrating fridge entry database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Movie{}); err != nil {
		log.Fatalf("Error migrating movie database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
