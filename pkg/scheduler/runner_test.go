package scheduler_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"github.com/gastromap/gastromap-backend/pkg/integrations/apify"
	"github.com/gastromap/gastromap-backend/pkg/model"
	"github.com/gastromap/gastromap-backend/pkg/scheduler"
)

type fakeTasks struct {
	tasks  []model.ScheduledTask
	marked map[uint]*time.Time
}

func (f *fakeTasks) ListTasks(_ context.Context, _ bool) ([]model.ScheduledTask, error) {
	return f.tasks, nil
}

func (f *fakeTasks) MarkTaskRun(_ context.Context, id uint, _ time.Time, nextRun *time.Time) error {
	if f.marked == nil {
		f.marked = map[uint]*time.Time{}
	}

	f.marked[id] = nextRun

	return nil
}

type fakeJobs struct {
	running map[string]*model.SyncJob
	created []*model.SyncJob
}

func (f *fakeJobs) CreateSyncJob(_ context.Context, job *model.SyncJob) error {
	f.created = append(f.created, job)

	return nil
}

func (f *fakeJobs) GetRunningSyncJob(_ context.Context, source string) (*model.SyncJob, error) {
	return f.running[source], nil
}

type fakeStarter struct {
	started []string
	err     error
}

func (f *fakeStarter) StartRun(_ context.Context, actorID string, _ map[string]any) (*apify.Run, error) {
	if f.err != nil {
		return nil, f.err
	}

	f.started = append(f.started, actorID)

	return &apify.Run{ID: "run-" + actorID, Status: apify.StatusRunning}, nil
}

var actors = map[string]string{"google": "compass~crawler-google-places"}

func task(id uint, source string, nextRun *time.Time) model.ScheduledTask {
	return model.ScheduledTask{
		Model:          gorm.Model{ID: id},
		Source:         source,
		SearchQuery:    "рестораны",
		Location:       "Ташкент",
		MaxResults:     100,
		CronExpression: "0 3 * * *",
		IsActive:       true,
		NextRun:        nextRun,
	}
}

func TestRunDue_LaunchesDueTasks(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Minute)
	future := now.Add(time.Hour)

	tasks := &fakeTasks{tasks: []model.ScheduledTask{
		task(1, "google", &past),
		task(2, "google", &future),
	}}
	jobs := &fakeJobs{}
	starter := &fakeStarter{}

	runner := scheduler.NewRunner(tasks, jobs, starter, actors, zaptest.NewLogger(t))

	started, err := runner.RunDue(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 1, started)
	assert.Equal(t, []string{"compass~crawler-google-places"}, starter.started)

	require.Len(t, jobs.created, 1)
	assert.Equal(t, model.SyncStatusRunning, jobs.created[0].Status)
	require.NotNil(t, jobs.created[0].RunID)
	assert.Equal(t, "run-compass~crawler-google-places", *jobs.created[0].RunID)

	// Task rescheduled to the next cron slot.
	require.NotNil(t, tasks.marked[1])
	assert.True(t, tasks.marked[1].After(now))
}

func TestRunDue_SkipsSourceWithRunningSync(t *testing.T) {
	now := time.Now()

	tasks := &fakeTasks{tasks: []model.ScheduledTask{task(1, "google", nil)}}
	jobs := &fakeJobs{running: map[string]*model.SyncJob{"google": {Status: model.SyncStatusRunning}}}
	starter := &fakeStarter{}

	runner := scheduler.NewRunner(tasks, jobs, starter, actors, zaptest.NewLogger(t))

	started, err := runner.RunDue(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 1, started)
	assert.Empty(t, starter.started)
	// Still pushed forward so it does not retry every tick.
	assert.NotNil(t, tasks.marked[1])
}

func TestRunDue_StartFailureDoesNotStopOthers(t *testing.T) {
	now := time.Now()

	tasks := &fakeTasks{tasks: []model.ScheduledTask{task(1, "yandex", nil), task(2, "google", nil)}}
	jobs := &fakeJobs{}
	starter := &fakeStarter{}

	all := map[string]string{"google": "compass~crawler-google-places", "yandex": "broken"}
	runner := scheduler.NewRunner(tasks, jobs, starter, all, zaptest.NewLogger(t))

	starter.err = errors.New("quota exceeded")

	started, err := runner.RunDue(context.Background(), now)
	require.Error(t, err)
	assert.Zero(t, started)

	starter.err = nil

	// Failed tasks stay due and launch on the next tick.
	started, err = runner.RunDue(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 2, started)
}
