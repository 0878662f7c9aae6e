package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	ErrUsernameEmpty      = errors.New("username must not be empty")
	ErrEmailEmpty         = errors.New("email must not be empty")
	ErrPasswordEmpty      = errors.New("password must not be empty")
	ErrUsernameTaken      = errors.New("the username entered already exists")
	ErrCredentialsEmpty   = errors.New("credentials not entered")
	ErrInvalidCredentials = errors.New("unable to log in with provided credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrProfileNotFound    = errors.New("user profile not found")
	ErrAlreadyFollowing   = errors.New("already followed user")
	ErrNotFollowing       = errors.New("not already a follower of the target user")
)

type (
	SignupRequest struct {
		Username string `json:"username" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
	}

	UploadAvatarRequest struct {
		Avatar *multipart.FileHeader `json:"avatar" form:"avatar" validate:"required"`
	}

	UserResponse struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
	}

	UserProfileResponse struct {
		ID             string       `json:"id"`
		User           UserResponse `json:"user"`
		Bio            string       `json:"bio"`
		AvatarURL      string       `json:"avatar_url,omitempty"`
		FollowerCount  int64        `json:"follower_count"`
		FollowingCount int64        `json:"following_count"`
		CreatedAt      time.Time    `json:"created_at"`
	}
)
