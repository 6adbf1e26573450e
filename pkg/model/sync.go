package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	SyncStatusPending   = "pending"
	SyncStatusRunning   = "running"
	SyncStatusCompleted = "completed"
	SyncStatusFailed    = "failed"
)

// SyncJob tracks one scrape run on the external platform. RunID is the
// platform's actor-run identifier and is how inbound webhooks find the job.
type SyncJob struct {
	gorm.Model
	Source      string `gorm:"index"`
	Status      string `gorm:"index;default:pending"`
	RunID       *string `gorm:"index"`
	Error       *string
	Stats       datatypes.JSON
	StartedAt   *time.Time
	CompletedAt *time.Time
}

// RestaurantSyncMeta records when each category of data was last refreshed
// for a restaurant. The scheduler compares these against the configured
// cooldown intervals to decide between a full re-scrape and a cheap
// reviews-only one.
type RestaurantSyncMeta struct {
	gorm.Model
	RestaurantID      uint `gorm:"uniqueIndex"`
	LastBasicInfoSync *time.Time
	LastReviewsSync   *time.Time
	LastPhotosSync    *time.Time
	LastHoursSync     *time.Time
}

func (RestaurantSyncMeta) TableName() string {
	return "restaurant_sync_meta"
}

type ScheduledTask struct {
	gorm.Model
	Source         string
	SearchQuery    string
	Location       string
	MaxResults     int `gorm:"default:100"`
	CronExpression string
	IsActive       bool `gorm:"default:true"`
	LastRun        *time.Time
	NextRun        *time.Time
}

type WebhookConfig struct {
	gorm.Model
	Name      string
	URL       string
	Secret    *string
	Events    datatypes.JSONSlice[string]
	IsActive  bool `gorm:"default:true"`
	LastSent  *time.Time
	FailCount int `gorm:"default:0"`
}
