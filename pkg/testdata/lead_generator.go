package testdata

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/summitfg/summit-api/pkg/models"
	"gorm.io/gorm"
)

// LeadGeneratorConfig configures lead generation parameters
type LeadGeneratorConfig struct {
	Count       int
	Source      string  // fixed source, random when empty
	EmailChance float64 // 0.0-1.0 (probability of having email)
	PhoneChance float64
	NotesChance float64
}

var leadSources = []string{
	"landing_page", "webhook", "referral", "career_quiz", "event", "manual",
}

var leadCategories = []string{
	"life_insurance", "retirement_planning", "college_savings",
	"debt_management", "career_opportunity",
}

var leadStatuses = []string{
	models.LeadStatusNew, models.LeadStatusNew, models.LeadStatusNew,
	models.LeadStatusContacted, models.LeadStatusQualified,
}

// GenerateLead creates a single lead with realistic data
func GenerateLead(config LeadGeneratorConfig) models.Lead {
	lead := models.Lead{
		Name:     gofakeit.Name(),
		Source:   config.Source,
		Status:   leadStatuses[rand.Intn(len(leadStatuses))],
		Category: leadCategories[rand.Intn(len(leadCategories))],
	}

	if lead.Source == "" {
		lead.Source = leadSources[rand.Intn(len(leadSources))]
	}

	if rand.Float64() < config.EmailChance {
		lead.Email = gofakeit.Email()
	}
	if rand.Float64() < config.PhoneChance {
		lead.Phone = gofakeit.Phone()
	}
	if rand.Float64() < config.NotesChance {
		lead.Notes = gofakeit.Sentence(12)
	}

	return lead
}

// GenerateLeads creates multiple leads with the given config
func GenerateLeads(config LeadGeneratorConfig) []models.Lead {
	leads := make([]models.Lead, config.Count)
	for i := 0; i < config.Count; i++ {
		leads[i] = GenerateLead(config)
	}
	return leads
}

// GenerateLeadsWithDefaults generates leads with a realistic completeness mix:
// most have a phone, some have no email, a third carry notes.
func GenerateLeadsWithDefaults(count int) []models.Lead {
	return GenerateLeads(LeadGeneratorConfig{
		Count:       count,
		EmailChance: 0.7,
		PhoneChance: 0.85,
		NotesChance: 0.35,
	})
}

// BulkInsertLeads inserts leads in batches for performance
func BulkInsertLeads(ctx context.Context, db *gorm.DB, leads []models.Lead, batchSize int) error {
	if err := db.WithContext(ctx).CreateInBatches(leads, batchSize).Error; err != nil {
		return fmt.Errorf("failed to bulk insert leads: %w", err)
	}
	return nil
}
