package entities

import (
	"time"

	"github.com/google/uuid"
)

type Recipe struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UploadedByID    uuid.UUID `gorm:"type:uuid" json:"uploaded_by_id"`
	Name            string    `gorm:"not null" json:"name"`
	Description     string    `gorm:"type:text;not null" json:"description"`
	ImageURL        string    `json:"image_url,omitempty"`
	DifficultyLevel int       `gorm:"default:0" json:"difficulty_level"`

	UploadedBy *User `gorm:"foreignKey:UploadedByID"`
	Timestamp
}

type RecipeIngredient struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID     uuid.UUID `gorm:"type:uuid" json:"recipe_id"`
	IngredientID uuid.UUID `gorm:"type:uuid" json:"ingredient_id"`
	ServingSize  string    `gorm:"not null" json:"serving_size"`

	Recipe     *Recipe     `gorm:"foreignKey:RecipeID"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID"`
}

// RecipeInstruction steps stay a dense 1..N sequence per recipe; deleting one
// shifts every later step down.
type RecipeInstruction struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID        uuid.UUID `gorm:"type:uuid" json:"recipe_id"`
	StepNum         int       `gorm:"default:1" json:"step_num"`
	Instruction     string    `gorm:"type:text;not null" json:"instruction"`
	DurationMinutes int       `json:"duration_minutes"`
	ImageURL        string    `json:"image_url,omitempty"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
}

type RecipeTag struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Text string    `gorm:"uniqueIndex;not null" json:"text"`
}

type RecipeTagLink struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID uuid.UUID `gorm:"type:uuid" json:"recipe_id"`
	TagID    uuid.UUID `gorm:"type:uuid" json:"tag_id"`

	Recipe *Recipe    `gorm:"foreignKey:RecipeID"`
	Tag    *RecipeTag `gorm:"foreignKey:TagID"`
}

type RecipeComment struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID  uuid.UUID `gorm:"type:uuid" json:"recipe_id"`
	UserID    uuid.UUID `gorm:"type:uuid" json:"user_id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
	User   *User   `gorm:"foreignKey:UserID"`
}

// RecipeFavourite has no unique constraint on (profile, recipe); the service
// checks before inserting.
type RecipeFavourite struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserProfileID uuid.UUID `gorm:"type:uuid" json:"user_profile_id"`
	RecipeID      uuid.UUID `gorm:"type:uuid" json:"recipe_id"`
	CreatedAt     time.Time `gorm:"type:timestamp" json:"created_at"`

	UserProfile *UserProfile `gorm:"foreignKey:UserProfileID"`
	Recipe      *Recipe      `gorm:"foreignKey:RecipeID"`
}
