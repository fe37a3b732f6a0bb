package inquiry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/summitfg/summit-api/pkg/models"
	"github.com/summitfg/summit-api/pkg/phone"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Inquiry{}))
	return db
}

func TestCreate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db, nil, phone.NewValidator("US"), "team@example.com", nil)
	ctx := context.Background()

	inquiry, err := svc.Create(ctx, models.CreateInquiryRequest{
		Name:    "Curious Visitor",
		Email:   "visitor@example.com",
		Phone:   "(415) 555-2671",
		Message: "Tell me about the team",
	})
	require.NoError(t, err)
	assert.NotZero(t, inquiry.ID)
	assert.Equal(t, "+14155552671", inquiry.Phone)
}

func TestList_NewestFirst(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db, nil, nil, "", nil)
	ctx := context.Background()

	for _, name := range []string{"First", "Second"} {
		_, err := svc.Create(ctx, models.CreateInquiryRequest{
			Name:    name,
			Email:   "x@example.com",
			Message: "hi",
		})
		require.NoError(t, err)
	}

	got, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
}
