package user

import (
	"SevChefs-API/domain"
	"SevChefs-API/entities"
	"SevChefs-API/internal/utils/mailing"
	"SevChefs-API/internal/utils/storage"
	"SevChefs-API/pkg/activity"
	"SevChefs-API/pkg/jwt"
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var emailPattern = regexp.MustCompile(`^([\w.]+)@((?:\w+\.)+)([a-zA-Z]{2,4})$`)

type (
	UserService interface {
		Signup(ctx context.Context, req domain.SignupRequest) error
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		GetProfile(ctx context.Context, userID string) (domain.UserProfileResponse, error)
		ListProfiles(ctx context.Context) ([]domain.UserProfileResponse, error)
		Follow(ctx context.Context, actorID, targetID string) error
		Unfollow(ctx context.Context, actorID, targetID string) error
		UploadAvatar(ctx context.Context, req domain.UploadAvatarRequest, userID string) error
	}

	userService struct {
		userRepository     UserRepository
		activityRepository activity.ActivityRepository
		jwtService         jwt.JWTService
		s3                 storage.AwsS3
	}
)

func NewUserService(userRepository UserRepository, activityRepository activity.ActivityRepository, jwtService jwt.JWTService, s3 storage.AwsS3) UserService {
	return &userService{
		userRepository:     userRepository,
		activityRepository: activityRepository,
		jwtService:         jwtService,
		s3:                 s3,
	}
}

func (s *userService) Signup(ctx context.Context, req domain.SignupRequest) error {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)

	if username == "" {
		return domain.ErrUsernameEmpty
	}
	if email == "" {
		return domain.ErrEmailEmpty
	}
	if req.Password == "" {
		return domain.ErrPasswordEmpty
	}

	if _, err := s.userRepository.GetUserByUsername(ctx, username); err == nil {
		return domain.ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	userID := uuid.New()
	token, err := s.jwtService.GenerateLifetimeToken(userID.String())
	if err != nil {
		return err
	}

	user := &entities.User{
		ID:           userID,
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	profile := &entities.UserProfile{
		ID:     uuid.New(),
		UserID: userID,
	}
	authToken := &entities.AuthToken{
		ID:        uuid.New(),
		UserID:    userID,
		Token:     token,
		CreatedAt: time.Now(),
	}

	if err := s.userRepository.CreateUserWithProvisioning(ctx, user, profile, authToken); err != nil {
		return err
	}

	go func() {
		if err := mailing.SendWelcomeMail(email, username); err != nil {
			log.Printf("failed to send welcome mail to %s: %v", email, err)
		}
	}()

	return nil
}

// Login accepts an email or a username in the email field, the way the
// mobile client sends it, and always answers with the account's stored
// lifetime token.
func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return domain.LoginResponse{}, domain.ErrCredentialsEmpty
	}

	username := req.Email
	if emailPattern.MatchString(req.Email) {
		if byEmail, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
			username = byEmail.Username
		}
	}

	user, err := s.userRepository.GetUserByUsername(ctx, username)
	if err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	token, err := s.userRepository.GetAuthTokenByUserID(ctx, user.ID.String())
	if err != nil {
		return domain.LoginResponse{}, err
	}

	return domain.LoginResponse{Token: token.Token}, nil
}

func (s *userService) buildProfileResponse(ctx context.Context, profile *entities.UserProfile) (domain.UserProfileResponse, error) {
	res := domain.UserProfileResponse{
		ID:        profile.ID.String(),
		Bio:       profile.Bio,
		AvatarURL: profile.AvatarURL,
		CreatedAt: profile.CreatedAt,
	}

	if profile.User != nil {
		res.User = domain.UserResponse{
			ID:       profile.User.ID.String(),
			Username: profile.User.Username,
			Email:    profile.User.Email,
		}
	}

	followers, err := s.userRepository.CountFollowers(ctx, profile.UserID.String())
	if err != nil {
		return domain.UserProfileResponse{}, err
	}
	following, err := s.userRepository.CountFollowing(ctx, profile.UserID.String())
	if err != nil {
		return domain.UserProfileResponse{}, err
	}

	res.FollowerCount = followers
	res.FollowingCount = following
	return res, nil
}

func (s *userService) GetProfile(ctx context.Context, userID string) (domain.UserProfileResponse, error) {
	profile, err := s.userRepository.GetProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserProfileResponse{}, domain.ErrProfileNotFound
		}
		return domain.UserProfileResponse{}, err
	}

	return s.buildProfileResponse(ctx, profile)
}

func (s *userService) ListProfiles(ctx context.Context) ([]domain.UserProfileResponse, error) {
	profiles, err := s.userRepository.GetAllProfiles(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.UserProfileResponse, 0, len(profiles))
	for _, profile := range profiles {
		pr, err := s.buildProfileResponse(ctx, profile)
		if err != nil {
			return nil, err
		}
		res = append(res, pr)
	}
	return res, nil
}

func (s *userService) Follow(ctx context.Context, actorID, targetID string) error {
	target, err := s.userRepository.GetUserByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	following, err := s.userRepository.IsFollowing(ctx, actorID, targetID)
	if err != nil {
		return err
	}
	if following {
		return domain.ErrAlreadyFollowing
	}

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return domain.ErrParseUUID
	}

	if err := s.userRepository.CreateFollow(ctx, &entities.UserFollow{
		ID:         uuid.New(),
		FollowerID: actorUUID,
		FolloweeID: target.ID,
		CreatedAt:  time.Now(),
	}); err != nil {
		return err
	}

	targetUserID := target.ID
	entry := &entities.ActivityEntry{
		ID:           uuid.New(),
		ActorID:      actorUUID,
		TargetUserID: &targetUserID,
		Kind:         entities.ActivityFollowed,
		CreatedAt:    time.Now(),
	}
	if actorProfile, err := s.userRepository.GetProfileByUserID(ctx, actorID); err == nil {
		entry.MainImageURL = actorProfile.AvatarURL
	}
	if targetProfile, err := s.userRepository.GetProfileByUserID(ctx, targetID); err == nil {
		entry.TargetImageURL = targetProfile.AvatarURL
	}

	return s.activityRepository.CreateEntry(ctx, entry)
}

func (s *userService) Unfollow(ctx context.Context, actorID, targetID string) error {
	if _, err := s.userRepository.GetUserByID(ctx, targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	following, err := s.userRepository.IsFollowing(ctx, actorID, targetID)
	if err != nil {
		return err
	}
	if !following {
		return domain.ErrNotFollowing
	}

	return s.userRepository.DeleteFollow(ctx, actorID, targetID)
}

func (s *userService) UploadAvatar(ctx context.Context, req domain.UploadAvatarRequest, userID string) error {
	profile, err := s.userRepository.GetProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProfileNotFound
		}
		return err
	}

	if profile.AvatarURL != "" {
		if objectKey := s.s3.GetObjectKeyFromLink(profile.AvatarURL); objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	fileName := fmt.Sprintf("avatar-%s", profile.ID.String())
	objectKey, err := s.s3.UploadFile(fileName, req.Avatar, "avatars", storage.AllowImage...)
	if err != nil {
		return err
	}

	profile.AvatarURL = s.s3.GetPublicLinkKey(objectKey)
	return s.userRepository.UpdateProfile(ctx, profile)
}
