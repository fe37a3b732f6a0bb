package models

import "time"

// Inquiry is a contact-form submission
type Inquiry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Phone     string    `gorm:"size:64" json:"phone"`
	Subject   string    `gorm:"size:255" json:"subject"`
	Message   string    `gorm:"type:text" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateInquiryRequest is the contact-form payload
type CreateInquiryRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=255"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,max=64"`
	Subject string `json:"subject" validate:"omitempty,max=255"`
	Message string `json:"message" validate:"required,max=5000"`
}

// Resource describes a downloadable marketing/recruiting asset.
// Resources are defined in code and served read-only.
type Resource struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	FileType    string `json:"file_type"`
	URL         string `json:"url"`
}
