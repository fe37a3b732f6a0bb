package leads

import (
	"context"
	"testing"
	"time"

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
	require.NoError(t, db.AutoMigrate(&models.Lead{}))
	return db
}

func newTestService(t *testing.T) *Service {
	return NewService(setupTestDB(t), phone.NewValidator("US"))
}

func TestCreate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	lead, err := svc.Create(ctx, models.CreateLeadRequest{
		Name:  "Jane Prospect",
		Email: "jane@example.com",
		Phone: "(415) 555-2671",
	})
	require.NoError(t, err)
	assert.NotZero(t, lead.ID)
	assert.Equal(t, models.LeadStatusNew, lead.Status)
	assert.Equal(t, "+14155552671", lead.Phone)
	assert.Empty(t, lead.OwnerEmail)
}

func TestList_VisibilityScoping(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.CreateLeadRequest{Name: "Lead One", OwnerEmail: "x@example.com"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, models.CreateLeadRequest{Name: "Lead Two", OwnerEmail: "x@example.com"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, models.CreateLeadRequest{Name: "Lead Three", OwnerEmail: "y@example.com"})
	require.NoError(t, err)

	t.Run("associate sees only own leads", func(t *testing.T) {
		got, err := svc.List(ctx, "x@example.com", models.RoleAssociate)
		require.NoError(t, err)
		require.Len(t, got, 2)
		for _, l := range got {
			assert.Equal(t, "x@example.com", l.OwnerEmail)
		}
	})

	t.Run("founder sees all leads", func(t *testing.T) {
		got, err := svc.List(ctx, "whoever@example.com", models.RoleFounder)
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("missing identity fails closed", func(t *testing.T) {
		got, err := svc.List(ctx, "", "")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestUpdate_IsPartial(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	lead, err := svc.Create(ctx, models.CreateLeadRequest{
		Name:   "Jane Prospect",
		Email:  "jane@example.com",
		Notes:  "met at seminar",
		Status: models.LeadStatusNew,
	})
	require.NoError(t, err)
	createdUpdatedAt := lead.UpdatedAt

	time.Sleep(10 * time.Millisecond)

	status := models.LeadStatusContacted
	updated, err := svc.Update(ctx, lead.ID, models.UpdateLeadRequest{Status: &status})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, models.LeadStatusContacted, updated.Status)
	assert.Equal(t, "Jane Prospect", updated.Name)
	assert.Equal(t, "jane@example.com", updated.Email)
	assert.Equal(t, "met at seminar", updated.Notes)
	assert.True(t, updated.UpdatedAt.After(createdUpdatedAt),
		"updated_at should be refreshed: %v vs %v", updated.UpdatedAt, createdUpdatedAt)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := newTestService(t)

	status := models.LeadStatusLost
	updated, err := svc.Update(context.Background(), 9999, models.UpdateLeadRequest{Status: &status})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestDelete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	lead, err := svc.Create(ctx, models.CreateLeadRequest{Name: "Short Lived"})
	require.NoError(t, err)

	t.Run("deleting existing lead returns true", func(t *testing.T) {
		deleted, err := svc.Delete(ctx, lead.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		got, err := svc.GetByID(ctx, lead.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("deleting missing lead returns false", func(t *testing.T) {
		deleted, err := svc.Delete(ctx, lead.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestAssignOwner(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	lead, err := svc.Create(ctx, models.CreateLeadRequest{Name: "Unowned"})
	require.NoError(t, err)

	require.NoError(t, svc.AssignOwner(ctx, lead.ID, "a@example.com"))

	got, err := svc.GetByID(ctx, lead.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "a@example.com", got.OwnerEmail)

	assert.Error(t, svc.AssignOwner(ctx, 9999, "a@example.com"))
}

func TestListUnassignedSince(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.CreateLeadRequest{Name: "Unowned"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, models.CreateLeadRequest{Name: "Owned", OwnerEmail: "a@example.com"})
	require.NoError(t, err)

	got, err := svc.ListUnassignedSince(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Unowned", got[0].Name)
}
