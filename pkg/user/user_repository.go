package user

import (
	"SevChefs-API/entities"
	"context"

	"gorm.io/gorm"
)

type (
	UserRepository interface {
		CreateUserWithProvisioning(ctx context.Context, user *entities.User, profile *entities.UserProfile, token *entities.AuthToken) error
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		GetUserByUsername(ctx context.Context, username string) (*entities.User, error)
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		GetProfileByUserID(ctx context.Context, userID string) (*entities.UserProfile, error)
		GetAllProfiles(ctx context.Context) ([]*entities.UserProfile, error)
		UpdateProfile(ctx context.Context, profile *entities.UserProfile) error
		GetAuthTokenByUserID(ctx context.Context, userID string) (*entities.AuthToken, error)
		IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error)
		CreateFollow(ctx context.Context, follow *entities.UserFollow) error
		DeleteFollow(ctx context.Context, followerID, followeeID string) error
		CountFollowers(ctx context.Context, userID string) (int64, error)
		CountFollowing(ctx context.Context, userID string) (int64, error)
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// CreateUserWithProvisioning persists the user together with its empty
// profile and lifetime auth token in one transaction.
func (r *userRepository) CreateUserWithProvisioning(ctx context.Context, user *entities.User, profile *entities.UserProfile, token *entities.AuthToken) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		if err := tx.Create(profile).Error; err != nil {
			return err
		}
		return tx.Create(token).Error
	})
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetProfileByUserID(ctx context.Context, userID string) (*entities.UserProfile, error) {
	var profile entities.UserProfile
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("User").
		First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *userRepository) GetAllProfiles(ctx context.Context) ([]*entities.UserProfile, error) {
	var profiles []*entities.UserProfile
	if err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at asc").
		Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, profile *entities.UserProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *userRepository) GetAuthTokenByUserID(ctx context.Context, userID string) (*entities.AuthToken, error) {
	var token entities.AuthToken
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *userRepository) IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.UserFollow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) CreateFollow(ctx context.Context, follow *entities.UserFollow) error {
	return r.db.WithContext(ctx).Create(follow).Error
}

func (r *userRepository) DeleteFollow(ctx context.Context, followerID, followeeID string) error {
	return r.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&entities.UserFollow{}).Error
}

func (r *userRepository) CountFollowers(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.UserFollow{}).
		Where("followee_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *userRepository) CountFollowing(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.UserFollow{}).
		Where("follower_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
