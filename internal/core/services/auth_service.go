package services

import (
	"context"
	"errors"
	"log"
	"time"

	"embox/internal/adapters/persistence/models"
	"embox/internal/adapters/persistence/repositories"
	"embox/internal/config"
	"embox/internal/core/domain"
	"embox/internal/pkg/jwt"
	"embox/internal/pkg/password"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResetTokenTTL is how long a password reset token stays valid.
const ResetTokenTTL = time.Hour

// AuthService handles authentication business logic
type AuthService struct {
	userRepo repositories.UserRepository
	cfg      *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// RegisterInput represents registration input
type RegisterInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginInput represents login input
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	User        *models.UserResponse `json:"user"`
	AccessToken string               `json:"access_token"`
}

// Register registers a new staff user
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*models.UserResponse, error) {
	exists, err := s.userRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUserAlreadyExists
	}

	if !password.Validate(input.Password) {
		return nil, domain.ErrWeakPassword
	}

	hashedPassword, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: input.Username,
		Password: hashedPassword,
		Role:     domain.RoleAdmin,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("User registered: %s", user.Username)
	return user.ToResponse(), nil
}

// Login authenticates a user and issues an access token
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(input.Password, user.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	accessToken, err := jwt.GenerateToken(
		user.ID,
		user.Username,
		user.Role,
		s.cfg.JWT.Secret,
		s.cfg.JWT.ExpiryHours,
	)
	if err != nil {
		return nil, err
	}

	log.Printf("User logged in: %s", user.Username)

	return &AuthResponse{
		User:        user.ToResponse(),
		AccessToken: accessToken,
	}, nil
}

// ForgotPassword generates a reset token for a user. The token and its
// expiry are stored on the user row and returned to the caller, which
// decides how to deliver it.
func (s *AuthService) ForgotPassword(ctx context.Context, username string) (string, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrUserNotFound
		}
		return "", err
	}

	token := uuid.New().String()
	expires := time.Now().Add(ResetTokenTTL)

	user.ResetToken = &token
	user.ResetTokenExpires = &expires

	if err := s.userRepo.Update(ctx, user); err != nil {
		return "", err
	}

	log.Printf("Reset token issued for user: %s", user.Username)
	return token, nil
}

// ResetPassword verifies a reset token and sets a new password. Token
// fields are cleared after use, single-shot.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if !password.Validate(newPassword) {
		return domain.ErrWeakPassword
	}

	user, err := s.userRepo.GetByResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrResetTokenInvalid
		}
		return err
	}

	if user.ResetTokenExpires == nil || time.Now().After(*user.ResetTokenExpires) {
		return domain.ErrResetTokenExpired
	}

	hashedPassword, err := password.Hash(newPassword)
	if err != nil {
		return err
	}

	user.Password = hashedPassword
	user.ResetToken = nil
	user.ResetTokenExpires = nil

	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	log.Printf("Password reset for user: %s", user.Username)
	return nil
}

// UserCount returns the number of registered users
func (s *AuthService) UserCount(ctx context.Context) (int64, error) {
	return s.userRepo.Count(ctx)
}

// GetUserByID gets a user by ID
func (s *AuthService) GetUserByID(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// ValidateAccessToken validates an access token
func (s *AuthService) ValidateAccessToken(accessToken string) (*jwt.Claims, error) {
	return jwt.ValidateToken(accessToken, s.cfg.JWT.Secret)
}
