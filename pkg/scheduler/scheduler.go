// Package scheduler decides when recurring scrape tasks run and how much of
// a restaurant's data a sync needs to refresh.
package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/gastromap/gastromap-backend/pkg/model"
)

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// NextRun computes the next firing of a standard five-field cron expression
// after the given time.
func NextRun(expression string, from time.Time) (time.Time, error) {
	schedule, err := cronParser.Parse(expression)
	if err != nil {
		return time.Time{}, err
	}

	return schedule.Next(from), nil
}

// ShouldRun reports whether a task is due. A task with no recorded next run
// is due immediately on first sight.
func ShouldRun(task *model.ScheduledTask, now time.Time) bool {
	if !task.IsActive {
		return false
	}

	if task.NextRun == nil {
		return true
	}

	return !task.NextRun.After(now)
}

// Mode is the scope of a sync run for one restaurant.
type Mode string

const (
	// ModeFull re-scrapes everything: basic info, photos, hours, reviews.
	ModeFull Mode = "full"
	// ModeReviewsOnly refreshes just reviews, the fastest-moving data.
	ModeReviewsOnly Mode = "reviews_only"
	// ModeUpToDate requires no scrape at all.
	ModeUpToDate Mode = "up_to_date"
)

// Intervals holds the per-category cooldowns. Data younger than its
// interval is considered fresh.
type Intervals struct {
	BasicInfo time.Duration
	Reviews   time.Duration
	Photos    time.Duration
	Hours     time.Duration
}

// DefaultIntervals mirrors how quickly each category actually drifts:
// reviews arrive daily, the rest changes rarely.
func DefaultIntervals() Intervals {
	return Intervals{
		BasicInfo: 30 * 24 * time.Hour,
		Reviews:   24 * time.Hour,
		Photos:    14 * 24 * time.Hour,
		Hours:     7 * 24 * time.Hour,
	}
}

// DetermineMode picks the cheapest sync that still refreshes every stale
// category. Restaurants never synced before always get a full run.
func DetermineMode(meta *model.RestaurantSyncMeta, intervals Intervals, now time.Time) Mode {
	if meta == nil {
		return ModeFull
	}

	if stale(meta.LastBasicInfoSync, intervals.BasicInfo, now) ||
		stale(meta.LastPhotosSync, intervals.Photos, now) ||
		stale(meta.LastHoursSync, intervals.Hours, now) {
		return ModeFull
	}

	if stale(meta.LastReviewsSync, intervals.Reviews, now) {
		return ModeReviewsOnly
	}

	return ModeUpToDate
}

func stale(last *time.Time, interval time.Duration, now time.Time) bool {
	if last == nil {
		return true
	}

	return now.Sub(*last) >= interval
}
