package inquiry

import (
	"context"
	"fmt"
	"log"

	"github.com/summitfg/summit-api/pkg/email"
	"github.com/summitfg/summit-api/pkg/models"
	"github.com/summitfg/summit-api/pkg/phone"
	"gorm.io/gorm"
)

// Service persists contact-form inquiries and notifies the team inbox
type Service struct {
	db        *gorm.DB
	emails    *email.Service
	phones    *phone.Validator
	teamInbox string
	logger    *log.Logger
}

// NewService creates a new inquiry service. The email service may be nil,
// in which case no notification is attempted.
func NewService(db *gorm.DB, emails *email.Service, phones *phone.Validator, teamInbox string, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{db: db, emails: emails, phones: phones, teamInbox: teamInbox, logger: logger}
}

// Create stores an inquiry and sends a best-effort notification email.
// A notification failure is logged, never surfaced to the submitter.
func (s *Service) Create(ctx context.Context, req models.CreateInquiryRequest) (*models.Inquiry, error) {
	phoneField := req.Phone
	if s.phones != nil {
		phoneField = s.phones.NormalizeOrKeep(req.Phone)
	}

	inquiry := models.Inquiry{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   phoneField,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := s.db.WithContext(ctx).Create(&inquiry).Error; err != nil {
		return nil, fmt.Errorf("failed to create inquiry: %w", err)
	}

	if s.emails != nil && s.teamInbox != "" {
		if err := s.emails.SendInquiryNotification(s.teamInbox, inquiry); err != nil {
			s.logger.Printf("⚠️ Failed to send inquiry notification: %v", err)
		}
	}

	return &inquiry, nil
}

// List returns all inquiries, newest first
func (s *Service) List(ctx context.Context) ([]models.Inquiry, error) {
	inquiries := []models.Inquiry{}
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&inquiries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}
	return inquiries, nil
}
