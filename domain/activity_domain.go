package domain

import (
	"errors"
	"time"
)

var (
	ErrUnknownActivityKind = errors.New("unknown activity kind")
)

type ActivityEntryResponse struct {
	ID             string    `json:"id"`
	Summary        string    `json:"summary"`
	MainImageURL   string    `json:"main_image_url,omitempty"`
	TargetImageURL string    `json:"target_image_url,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
