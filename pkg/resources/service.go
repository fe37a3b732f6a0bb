package resources

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/summitfg/summit-api/pkg/cache"
	"github.com/summitfg/summit-api/pkg/models"
)

const (
	cacheKey = "resources:list"
	cacheTTL = 1 * time.Hour
)

// catalog is the fixed set of downloadable assets served by the site
var catalog = []models.Resource{
	{
		Name:        "Career Opportunity Overview",
		Description: "A one-page introduction to the business model and career paths.",
		FileType:    "pdf",
		URL:         "/downloads/career-opportunity-overview.pdf",
	},
	{
		Name:        "Financial Needs Analysis Workbook",
		Description: "The workbook we walk through with every new client family.",
		FileType:    "pdf",
		URL:         "/downloads/fna-workbook.pdf",
	},
	{
		Name:        "Licensing Study Guide",
		Description: "State licensing exam preparation checklist and study plan.",
		FileType:    "pdf",
		URL:         "/downloads/licensing-study-guide.pdf",
	},
	{
		Name:        "Team Meeting Calendar",
		Description: "Weekly trainings, business overviews and recognition events.",
		FileType:    "ics",
		URL:         "/downloads/team-calendar.ics",
	},
	{
		Name:        "Compensation Plan Summary",
		Description: "How contracts, promotions and overrides work at each rank.",
		FileType:    "pdf",
		URL:         "/downloads/compensation-summary.pdf",
	},
}

// Service serves the static resource catalog, caching the rendered list in
// Redis so the hot path skips re-encoding on every request.
type Service struct {
	cache  *cache.Client
	logger *log.Logger
}

// NewService creates a new resources service. The cache may be nil.
func NewService(cacheClient *cache.Client, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{cache: cacheClient, logger: logger}
}

// List returns all resource descriptors. Cache failures degrade to serving
// straight from the in-code catalog.
func (s *Service) List(ctx context.Context) []models.Resource {
	if s.cache == nil {
		return catalog
	}

	if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
		var resources []models.Resource
		if err := json.Unmarshal([]byte(cached), &resources); err == nil {
			return resources
		}
	}

	encoded, err := json.Marshal(catalog)
	if err == nil {
		if err := s.cache.Set(ctx, cacheKey, string(encoded), cacheTTL); err != nil {
			s.logger.Printf("⚠️ Failed to cache resource list: %v", err)
		}
	}

	return catalog
}
