package domain

import "time"

// DefaultRetryDelay is the fixed pause between posting attempts.
const DefaultRetryDelay = 30 * time.Second

// SchedulerConfig controls the daily posting run.
type SchedulerConfig struct {
	Enabled         bool          `json:"enabled"`
	Timezone        string        `json:"timezone" validate:"required,timezone"`
	TargetTime      string        `json:"target_time" validate:"required,datetime=15:04"`
	OrganizationIDs []string      `json:"organization_ids"`
	RetryAttempts   int           `json:"retry_attempts" validate:"min=1,max=10"`
	RetryDelay      time.Duration `json:"retry_delay" validate:"min=0"`
}
