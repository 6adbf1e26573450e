package scheduler_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gastromap/gastromap-backend/pkg/model"
	"github.com/gastromap/gastromap-backend/pkg/scheduler"
)

func TestNextRun(t *testing.T) {
	from := time.Date(2025, 3, 10, 2, 30, 0, 0, time.UTC)

	next, err := scheduler.NextRun("0 3 * * *", from)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 3, 0, 0, 0, time.UTC), next)

	_, err = scheduler.NextRun("not a cron", from)
	require.Error(t, err)
}

func TestShouldRun(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.True(t, scheduler.ShouldRun(&model.ScheduledTask{IsActive: true}, now))
	assert.True(t, scheduler.ShouldRun(&model.ScheduledTask{IsActive: true, NextRun: &past}, now))
	assert.False(t, scheduler.ShouldRun(&model.ScheduledTask{IsActive: true, NextRun: &future}, now))
	assert.False(t, scheduler.ShouldRun(&model.ScheduledTask{IsActive: false, NextRun: &past}, now))
}

func timePtr(t time.Time) *time.Time { return &t }

func TestDetermineMode(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	intervals := scheduler.DefaultIntervals()

	fresh := &model.RestaurantSyncMeta{
		LastBasicInfoSync: timePtr(now.Add(-time.Hour)),
		LastReviewsSync:   timePtr(now.Add(-time.Hour)),
		LastPhotosSync:    timePtr(now.Add(-time.Hour)),
		LastHoursSync:     timePtr(now.Add(-time.Hour)),
	}

	assert.Equal(t, scheduler.ModeUpToDate, scheduler.DetermineMode(fresh, intervals, now))
	assert.Equal(t, scheduler.ModeFull, scheduler.DetermineMode(nil, intervals, now))

	staleReviews := *fresh
	staleReviews.LastReviewsSync = timePtr(now.Add(-48 * time.Hour))
	assert.Equal(t, scheduler.ModeReviewsOnly, scheduler.DetermineMode(&staleReviews, intervals, now))

	staleHours := *fresh
	staleHours.LastHoursSync = timePtr(now.Add(-8 * 24 * time.Hour))
	assert.Equal(t, scheduler.ModeFull, scheduler.DetermineMode(&staleHours, intervals, now))

	neverSyncedPhotos := *fresh
	neverSyncedPhotos.LastPhotosSync = nil
	assert.Equal(t, scheduler.ModeFull, scheduler.DetermineMode(&neverSyncedPhotos, intervals, now))
}
