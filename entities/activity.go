package entities

import (
	"time"

	"github.com/google/uuid"
)

// Activity kinds. One variant per social action; the sentence for an entry is
// rendered per viewer at read time, never stored.
const (
	ActivityUploaded   = "uploaded"
	ActivityFavourited = "favourited"
	ActivityCommented  = "commented"
	ActivityFollowed   = "followed"
)

type ActivityEntry struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ActorID        uuid.UUID  `gorm:"type:uuid" json:"actor_id"`
	TargetUserID   *uuid.UUID `gorm:"type:uuid" json:"target_user_id,omitempty"`
	Kind           string     `gorm:"not null" json:"kind"`
	MainImageURL   string     `json:"main_image_url,omitempty"`
	TargetImageURL string     `json:"target_image_url,omitempty"`
	CreatedAt      time.Time  `gorm:"type:timestamp" json:"created_at"`

	Actor      *User `gorm:"foreignKey:ActorID"`
	TargetUser *User `gorm:"foreignKey:TargetUserID"`
}
