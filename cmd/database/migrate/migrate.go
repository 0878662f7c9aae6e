package migration

import (
	"SevChefs-API/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	models := []any{
		&entities.User{},
		&entities.UserProfile{},
		&entities.UserFollow{},
		&entities.AuthToken{},
		&entities.Ingredient{},
		&entities.Recipe{},
		&entities.RecipeIngredient{},
		&entities.RecipeInstruction{},
		&entities.RecipeTag{},
		&entities.RecipeTagLink{},
		&entities.RecipeComment{},
		&entities.RecipeFavourite{},
		&entities.ActivityEntry{},
	}
	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			log.Fatalf("Error migrating database: %v", err)
			return err
		}
	}

	fmt.Println("Database migration complete")
	return nil
}
