package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/summitfg/summit-api/pkg/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	return db
}

func TestRegister(t *testing.T) {
	svc := NewService(setupTestDB(t))
	ctx := context.Background()

	user, err := svc.Register(ctx, models.RegisterRequest{
		Name:     "Alex Founder",
		Email:    "Alex@Example.com",
		Password: "super-secret-1",
		Role:     models.RoleFounder,
	})
	require.NoError(t, err)

	assert.Equal(t, "alex@example.com", user.Email)
	assert.Equal(t, models.RoleFounder, user.Role)
	assert.NotEqual(t, "super-secret-1", user.PasswordHash)

	t.Run("duplicate email rejected", func(t *testing.T) {
		_, err := svc.Register(ctx, models.RegisterRequest{
			Name:     "Imposter",
			Email:    "alex@example.com",
			Password: "whatever-123",
		})
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("default role is associate", func(t *testing.T) {
		u, err := svc.Register(ctx, models.RegisterRequest{
			Name:     "New Associate",
			Email:    "assoc@example.com",
			Password: "super-secret-1",
		})
		require.NoError(t, err)
		assert.Equal(t, models.RoleAssociate, u.Role)
	})
}

func TestAuthenticate(t *testing.T) {
	svc := NewService(setupTestDB(t))
	ctx := context.Background()

	_, err := svc.Register(ctx, models.RegisterRequest{
		Name:     "Alex Founder",
		Email:    "alex@example.com",
		Password: "super-secret-1",
	})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.Authenticate(ctx, models.LoginRequest{
			Email:    "alex@example.com",
			Password: "super-secret-1",
		})
		require.NoError(t, err)
		assert.Equal(t, "alex@example.com", user.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, models.LoginRequest{
			Email:    "alex@example.com",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, models.LoginRequest{
			Email:    "ghost@example.com",
			Password: "whatever",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
