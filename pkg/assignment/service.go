package assignment

import (
	"context"
	"errors"
	"fmt"

	"github.com/summitfg/summit-api/pkg/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// maxAdvanceRetries bounds how many times a caller re-reads the cursor after
// losing a conditional advance to a concurrent caller.
const maxAdvanceRetries = 5

// ErrRotationContended is returned when the cursor could not be advanced
// after maxAdvanceRetries attempts.
var ErrRotationContended = errors.New("round-robin rotation contended, retry")

// Service cycles lead ownership through a configured list of team members.
// The rotation state lives in a single well-known row; the read-and-advance
// is a conditional update so two concurrent callers can never hand out the
// same slot.
type Service struct {
	db *gorm.DB
}

// NewService creates a new assignment service
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// GetNextOwner returns the next owner email in the rotation and advances the
// cursor. It returns "" with a nil error when no configuration exists or the
// owner list is empty; callers must treat that as "unassigned", not a failure.
func (s *Service) GetNextOwner(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxAdvanceRetries; attempt++ {
		var cfg models.RoundRobinConfig
		err := s.db.WithContext(ctx).First(&cfg, models.RoundRobinConfigID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to load round-robin config: %w", err)
		}

		if len(cfg.OwnerEmails) == 0 {
			return "", nil
		}

		// A shrunken owner list can leave the stored cursor past the end;
		// clamp to the start of the rotation.
		idx := cfg.CurrentIndex
		if idx < 0 || idx >= len(cfg.OwnerEmails) {
			idx = 0
		}

		owner := cfg.OwnerEmails[idx]
		next := (idx + 1) % len(cfg.OwnerEmails)

		// Conditional advance keyed on the index we read. If a concurrent
		// caller advanced first, no row matches and we re-read.
		res := s.db.WithContext(ctx).
			Model(&models.RoundRobinConfig{}).
			Where("id = ? AND current_index = ?", models.RoundRobinConfigID, cfg.CurrentIndex).
			Update("current_index", next)
		if res.Error != nil {
			return "", fmt.Errorf("failed to advance round-robin cursor: %w", res.Error)
		}
		if res.RowsAffected == 1 {
			return owner, nil
		}
	}

	return "", ErrRotationContended
}

// GetConfig returns the current rotation configuration, or nil when none
// has been set up yet.
func (s *Service) GetConfig(ctx context.Context) (*models.RoundRobinConfig, error) {
	var cfg models.RoundRobinConfig
	err := s.db.WithContext(ctx).First(&cfg, models.RoundRobinConfigID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load round-robin config: %w", err)
	}
	return &cfg, nil
}

// SetOwners replaces the rotation list and resets the cursor to the start.
// Editing the list mid-cycle intentionally restarts the rotation rather than
// inheriting a cursor that may no longer point at the same person.
func (s *Service) SetOwners(ctx context.Context, ownerEmails []string) (*models.RoundRobinConfig, error) {
	cfg := models.RoundRobinConfig{
		ID:           models.RoundRobinConfigID,
		OwnerEmails:  models.StringList(ownerEmails),
		CurrentIndex: 0,
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"owner_emails", "current_index", "updated_at"}),
		}).
		Create(&cfg).Error
	if err != nil {
		return nil, fmt.Errorf("failed to save round-robin config: %w", err)
	}

	return &cfg, nil
}
