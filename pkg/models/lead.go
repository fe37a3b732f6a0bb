package models

import "time"

// Lead statuses used by the frontend pipeline view. Stored as free-form
// strings, these are the conventional values.
const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusQualified = "qualified"
	LeadStatusConverted = "converted"
	LeadStatusLost      = "lost"
)

// Lead represents a captured prospect
type Lead struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	Email      string    `gorm:"size:255;index" json:"email"`
	Phone      string    `gorm:"size:64" json:"phone"`
	Source     string    `gorm:"size:64" json:"source"`
	Status     string    `gorm:"size:32;default:new;index" json:"status"`
	Category   string    `gorm:"size:64" json:"category"`
	Notes      string    `gorm:"type:text" json:"notes"`
	OwnerEmail string    `gorm:"size:255;index" json:"owner_email"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateLeadRequest is the payload for creating a lead
type CreateLeadRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=255"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone" validate:"omitempty,max=64"`
	Source     string `json:"source" validate:"omitempty,max=64"`
	Status     string `json:"status" validate:"omitempty,max=32"`
	Category   string `json:"category" validate:"omitempty,max=64"`
	Notes      string `json:"notes"`
	OwnerEmail string `json:"owner_email" validate:"omitempty,email"`
	AutoAssign bool   `json:"auto_assign"`
}

// UpdateLeadRequest is a partial update; nil fields are left untouched
type UpdateLeadRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=2,max=255"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Phone      *string `json:"phone" validate:"omitempty,max=64"`
	Source     *string `json:"source" validate:"omitempty,max=64"`
	Status     *string `json:"status" validate:"omitempty,max=32"`
	Category   *string `json:"category" validate:"omitempty,max=64"`
	Notes      *string `json:"notes"`
	OwnerEmail *string `json:"owner_email" validate:"omitempty,email"`
}

// LeadListResponse wraps a list of leads
type LeadListResponse struct {
	Leads []Lead `json:"leads"`
	Total int    `json:"total"`
}

// RoundRobinConfig is the singleton rotation state for auto-assignment.
// Exactly one row exists, with RoundRobinConfigID as its primary key.
type RoundRobinConfig struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	OwnerEmails  StringList `gorm:"type:text" json:"owner_emails"`
	CurrentIndex int        `gorm:"default:0" json:"current_index"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// RoundRobinConfigID is the well-known primary key of the singleton row
const RoundRobinConfigID uint = 1

// UpdateRoundRobinRequest replaces the owner rotation list
type UpdateRoundRobinRequest struct {
	OwnerEmails []string `json:"owner_emails" validate:"required,dive,email"`
}
