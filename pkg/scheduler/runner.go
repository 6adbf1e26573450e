package scheduler

import (
	"context"
	"time"

	"go.openly.dev/pointy"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/gastromap/gastromap-backend/pkg/integrations/apify"
	"github.com/gastromap/gastromap-backend/pkg/model"
)

type TaskStore interface {
	ListTasks(ctx context.Context, activeOnly bool) ([]model.ScheduledTask, error)
	MarkTaskRun(ctx context.Context, id uint, ranAt time.Time, nextRun *time.Time) error
}

type JobStore interface {
	CreateSyncJob(ctx context.Context, job *model.SyncJob) error
	GetRunningSyncJob(ctx context.Context, source string) (*model.SyncJob, error)
}

type RunStarter interface {
	StartRun(ctx context.Context, actorID string, input map[string]any) (*apify.Run, error)
}

// Runner fires due scheduled tasks by launching their scrape actors.
type Runner struct {
	tasks  TaskStore
	jobs   JobStore
	apify  RunStarter
	actors map[string]string
	logger *zap.Logger
}

func NewRunner(tasks TaskStore, jobs JobStore, starter RunStarter, actors map[string]string, logger *zap.Logger) *Runner {
	return &Runner{tasks: tasks, jobs: jobs, apify: starter, actors: actors, logger: logger}
}

// RunDue starts every due task and returns how many were launched. A source
// with a sync already in flight is skipped instead of doubled up; failures
// on one task do not keep the rest from running.
func (r *Runner) RunDue(ctx context.Context, now time.Time) (int, error) {
	tasks, err := r.tasks.ListTasks(ctx, true)
	if err != nil {
		return 0, err
	}

	var (
		started int
		errs    error
	)

	for index := range tasks {
		task := tasks[index]
		if !ShouldRun(&task, now) {
			continue
		}

		if err := r.runTask(ctx, &task, now); err != nil {
			errs = multierr.Append(errs, err)

			continue
		}

		started++
	}

	return started, errs
}

func (r *Runner) runTask(ctx context.Context, task *model.ScheduledTask, now time.Time) error {
	running, err := r.jobs.GetRunningSyncJob(ctx, task.Source)
	if err != nil {
		return err
	}

	if running != nil {
		r.logger.Info("skipping task, sync already in flight",
			zap.Uint("task_id", task.ID),
			zap.String("source", task.Source),
			zap.Uint("job_id", running.ID))

		return r.reschedule(ctx, task, now)
	}

	actorID, found := r.actors[task.Source]
	if !found {
		r.logger.Warn("no actor configured for source", zap.String("source", task.Source))

		return r.reschedule(ctx, task, now)
	}

	run, err := r.apify.StartRun(ctx, actorID, map[string]any{
		"searchStringsArray": []string{task.SearchQuery},
		"locationQuery":      task.Location,
		"maxCrawledPlaces":   task.MaxResults,
		"language":           "ru",
	})
	if err != nil {
		return err
	}

	job := &model.SyncJob{
		Source:    task.Source,
		Status:    model.SyncStatusRunning,
		RunID:     pointy.String(run.ID),
		StartedAt: &now,
	}

	if err := r.jobs.CreateSyncJob(ctx, job); err != nil {
		return err
	}

	r.logger.Info("launched scheduled scrape",
		zap.Uint("task_id", task.ID),
		zap.String("source", task.Source),
		zap.String("run_id", run.ID))

	return r.reschedule(ctx, task, now)
}

func (r *Runner) reschedule(ctx context.Context, task *model.ScheduledTask, now time.Time) error {
	var next *time.Time

	if task.CronExpression != "" {
		computed, err := NextRun(task.CronExpression, now)
		if err != nil {
			r.logger.Warn("invalid cron expression",
				zap.Uint("task_id", task.ID),
				zap.String("expression", task.CronExpression),
				zap.Error(err))
		} else {
			next = &computed
		}
	}

	return r.tasks.MarkTaskRun(ctx, task.ID, now, next)
}
