package entities

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`

	Timestamp
}

// UserProfile is the social-facing side of an account. Exactly one row per
// user, provisioned together with the user at signup.
type UserProfile struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"user_id"`
	Bio       string    `gorm:"type:text" json:"bio"`
	AvatarURL string    `json:"avatar_url,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

type UserFollow struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FollowerID uuid.UUID `gorm:"type:uuid" json:"follower_id"`
	FolloweeID uuid.UUID `gorm:"type:uuid" json:"followee_id"`
	CreatedAt  time.Time `gorm:"type:timestamp" json:"created_at"`

	Follower *User `gorm:"foreignKey:FollowerID"`
	Followee *User `gorm:"foreignKey:FolloweeID"`
}

// AuthToken holds the single bearer token an account keeps for its whole
// lifetime. Minted at signup, handed back on every login.
type AuthToken struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"user_id"`
	Token     string    `gorm:"uniqueIndex;not null" json:"token"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	User *User `gorm:"foreignKey:UserID"`
}
