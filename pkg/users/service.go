package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/summitfg/summit-api/pkg/auth"
	"github.com/summitfg/summit-api/pkg/models"
	"gorm.io/gorm"
)

var (
	// ErrEmailTaken is returned when registering with an existing email
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned on a failed login
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Service manages team member accounts
type Service struct {
	db *gorm.DB
}

// NewService creates a new users service
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Register creates a new account with a hashed password
func (s *Service) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = models.RoleAssociate
	}

	user := models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}

	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// Authenticate verifies credentials and returns the account
func (s *Service) Authenticate(ctx context.Context, req models.LoginRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// GetByEmail fetches an account by email, nil when unknown
func (s *Service) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", strings.ToLower(email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}
