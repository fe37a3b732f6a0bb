package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/summitfg/summit-api/pkg/assignment"
	"github.com/summitfg/summit-api/pkg/email"
	"github.com/summitfg/summit-api/pkg/leads"
	"github.com/summitfg/summit-api/pkg/metrics"
)

// CronManager manages scheduled jobs
type CronManager struct {
	cron         *cron.Cron
	leads        *leads.Service
	assignment   *assignment.Service
	emails       *email.Service
	metrics      *metrics.Metrics
	founderEmail string
	logger       *log.Logger
}

// NewCronManager creates a new cron manager
func NewCronManager(
	leadService *leads.Service,
	assignmentService *assignment.Service,
	emailService *email.Service,
	m *metrics.Metrics,
	founderEmail string,
	logger *log.Logger,
) *CronManager {
	if logger == nil {
		logger = log.Default()
	}

	return &CronManager{
		cron:         cron.New(),
		leads:        leadService,
		assignment:   assignmentService,
		emails:       emailService,
		metrics:      m,
		founderEmail: founderEmail,
		logger:       logger,
	}
}

// SetupJobs configures all scheduled jobs
func (cm *CronManager) SetupJobs() error {
	cm.logger.Println("Setting up cron jobs...")

	// Daily at 8 AM: sweep unassigned leads from the last day
	_, err := cm.cron.AddFunc("0 8 * * *", func() {
		cm.logger.Println("🕐 Running daily unassigned lead sweep...")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		stillUnassigned, err := cm.SweepUnassignedLeads(ctx)
		if err != nil {
			cm.logger.Printf("❌ Unassigned lead sweep failed: %v", err)
			return
		}

		if len(stillUnassigned) == 0 {
			cm.logger.Println("✅ No unassigned leads left after sweep")
			return
		}

		if cm.emails != nil && cm.founderEmail != "" {
			if err := cm.emails.SendUnassignedLeadsDigest(cm.founderEmail, stillUnassigned); err != nil {
				cm.logger.Printf("⚠️ Failed to send unassigned leads digest: %v", err)
				return
			}
		}

		cm.logger.Printf("✅ Daily sweep completed, %d leads remain unassigned", len(stillUnassigned))
	})

	if err != nil {
		return err
	}

	cm.logger.Println("✅ Cron jobs configured successfully")
	cm.logger.Println("  - Daily at 8 AM: Sweep unassigned leads")

	return nil
}

// SweepUnassignedLeads finds leads captured in the last 24 hours that have no
// owner, runs each through the rotation, and returns the names of leads that
// could not be assigned.
func (cm *CronManager) SweepUnassignedLeads(ctx context.Context) ([]string, error) {
	since := time.Now().Add(-24 * time.Hour)

	unassigned, err := cm.leads.ListUnassignedSince(ctx, since)
	if err != nil {
		return nil, err
	}

	stillUnassigned := []string{}
	for _, lead := range unassigned {
		owner, err := cm.assignment.GetNextOwner(ctx)
		if err != nil || owner == "" {
			stillUnassigned = append(stillUnassigned, lead.Name)
			continue
		}

		if err := cm.leads.AssignOwner(ctx, lead.ID, owner); err != nil {
			cm.logger.Printf("⚠️ Failed to assign lead %d to %s: %v", lead.ID, owner, err)
			stillUnassigned = append(stillUnassigned, lead.Name)
			continue
		}

		if cm.metrics != nil {
			cm.metrics.RecordLeadAssigned()
		}
	}

	return stillUnassigned, nil
}

// Start starts the cron scheduler
func (cm *CronManager) Start() {
	cm.logger.Println("🚀 Starting cron scheduler...")
	cm.cron.Start()
}

// Stop stops the cron scheduler
func (cm *CronManager) Stop() {
	cm.logger.Println("🛑 Stopping cron scheduler...")
	cm.cron.Stop()
}
