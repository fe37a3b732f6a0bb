package leads

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/summitfg/summit-api/pkg/models"
	"github.com/summitfg/summit-api/pkg/phone"
	"gorm.io/gorm"
)

// Service handles lead persistence and visibility scoping. Owner assignment
// is composed by callers (handlers, webhook, digest job), never inside Create.
type Service struct {
	db     *gorm.DB
	phones *phone.Validator
}

// NewService creates a new lead service
func NewService(db *gorm.DB, phones *phone.Validator) *Service {
	return &Service{db: db, phones: phones}
}

// Create inserts a new lead
func (s *Service) Create(ctx context.Context, req models.CreateLeadRequest) (*models.Lead, error) {
	status := req.Status
	if status == "" {
		status = models.LeadStatusNew
	}

	lead := models.Lead{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      s.normalizePhone(req.Phone),
		Source:     req.Source,
		Status:     status,
		Category:   req.Category,
		Notes:      req.Notes,
		OwnerEmail: req.OwnerEmail,
	}

	if err := s.db.WithContext(ctx).Create(&lead).Error; err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	return &lead, nil
}

// GetByID fetches a single lead, returning nil when it does not exist
func (s *Service) GetByID(ctx context.Context, id uint) (*models.Lead, error) {
	var lead models.Lead
	err := s.db.WithContext(ctx).First(&lead, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lead: %w", err)
	}
	return &lead, nil
}

// List returns the leads visible to the requester, newest first. Founders see
// everything; everyone else sees only leads they own. A requester with
// neither an email nor a role gets an empty list, not the full table.
func (s *Service) List(ctx context.Context, requesterEmail, requesterRole string) ([]models.Lead, error) {
	leads := []models.Lead{}

	query := s.db.WithContext(ctx).Order("created_at DESC")
	switch {
	case requesterRole == models.RoleFounder:
		// no owner filter
	case requesterEmail != "":
		query = query.Where("owner_email = ?", requesterEmail)
	default:
		return leads, nil
	}

	if err := query.Find(&leads).Error; err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	return leads, nil
}

// Update merges the provided fields into an existing lead and refreshes
// updated_at. Fields left nil in the request are untouched. A missing id
// yields (nil, nil).
func (s *Service) Update(ctx context.Context, id uint, req models.UpdateLeadRequest) (*models.Lead, error) {
	var lead models.Lead
	err := s.db.WithContext(ctx).First(&lead, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lead: %w", err)
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Phone != nil {
		updates["phone"] = s.normalizePhone(*req.Phone)
	}
	if req.Source != nil {
		updates["source"] = *req.Source
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.OwnerEmail != nil {
		updates["owner_email"] = *req.OwnerEmail
	}
	updates["updated_at"] = time.Now()

	if err := s.db.WithContext(ctx).Model(&lead).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update lead: %w", err)
	}

	// Re-read so the caller sees exactly what was persisted
	var updated models.Lead
	if err := s.db.WithContext(ctx).First(&updated, id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload lead: %w", err)
	}
	return &updated, nil
}

// Delete physically removes a lead. The boolean reports whether a row was
// actually deleted; an unknown id is not an error.
func (s *Service) Delete(ctx context.Context, id uint) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.Lead{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete lead: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// ListUnassignedSince returns leads created after the given time that still
// have no owner. Used by the daily digest job.
func (s *Service) ListUnassignedSince(ctx context.Context, since time.Time) ([]models.Lead, error) {
	leads := []models.Lead{}
	err := s.db.WithContext(ctx).
		Where("owner_email = '' AND created_at >= ?", since).
		Order("created_at DESC").
		Find(&leads).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list unassigned leads: %w", err)
	}
	return leads, nil
}

// AssignOwner sets the owner of a lead, refreshing updated_at
func (s *Service) AssignOwner(ctx context.Context, id uint, ownerEmail string) error {
	res := s.db.WithContext(ctx).
		Model(&models.Lead{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"owner_email": ownerEmail, "updated_at": time.Now()})
	if res.Error != nil {
		return fmt.Errorf("failed to assign lead owner: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("lead %d not found", id)
	}
	return nil
}

func (s *Service) normalizePhone(raw string) string {
	if s.phones == nil {
		return raw
	}
	return s.phones.NormalizeOrKeep(raw)
}
