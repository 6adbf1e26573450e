package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gastromap/gastromap-backend/pkg/model"
)

var (
	ErrSyncJobNotFound = errors.New("sync job not found")
	ErrTaskNotFound    = errors.New("scheduled task not found")
	ErrWebhookNotFound = errors.New("webhook config not found")
)

// SyncRepository covers scrape-run bookkeeping and per-restaurant sync
// freshness.
type SyncRepository interface {
	CreateSyncJob(ctx context.Context, job *model.SyncJob) error
	GetSyncJobByID(ctx context.Context, id uint) (*model.SyncJob, error)
	GetSyncJobByRunID(ctx context.Context, runID string) (*model.SyncJob, error)
	GetRunningSyncJob(ctx context.Context, source string) (*model.SyncJob, error)
	UpdateSyncJob(ctx context.Context, job *model.SyncJob) error
	ListSyncJobs(ctx context.Context, limit int) ([]model.SyncJob, error)
	GetSyncMeta(ctx context.Context, restaurantID uint) (*model.RestaurantSyncMeta, error)
	TouchSyncMeta(ctx context.Context, restaurantID uint, touch func(*model.RestaurantSyncMeta)) error
}

func (r *Repository) CreateSyncJob(ctx context.Context, job *model.SyncJob) error {
	if result := r.DB.WithContext(ctx).Create(job); result.Error != nil {
		return result.Error
	}

	return nil
}

func (r *Repository) GetSyncJobByID(ctx context.Context, id uint) (*model.SyncJob, error) {
	var job model.SyncJob

	result := r.DB.WithContext(ctx).First(&job, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSyncJobNotFound
		}

		return nil, result.Error
	}

	return &job, nil
}

func (r *Repository) GetSyncJobByRunID(ctx context.Context, runID string) (*model.SyncJob, error) {
	var job model.SyncJob

	result := r.DB.WithContext(ctx).Where("run_id = ?", runID).First(&job)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSyncJobNotFound
		}

		return nil, result.Error
	}

	return &job, nil
}

// GetRunningSyncJob reports the in-flight job for a source, or nil when the
// source is idle. Used to refuse overlapping syncs.
func (r *Repository) GetRunningSyncJob(ctx context.Context, source string) (*model.SyncJob, error) {
	var job model.SyncJob

	result := r.DB.WithContext(ctx).
		Where("source = ? AND status IN (?)", source, []string{model.SyncStatusPending, model.SyncStatusRunning}).
		Order("id DESC").
		First(&job)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, result.Error
	}

	return &job, nil
}

func (r *Repository) UpdateSyncJob(ctx context.Context, job *model.SyncJob) error {
	if result := r.DB.WithContext(ctx).Save(job); result.Error != nil {
		return result.Error
	}

	return nil
}

func (r *Repository) ListSyncJobs(ctx context.Context, limit int) ([]model.SyncJob, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	var jobs []model.SyncJob

	result := r.DB.WithContext(ctx).Order("id DESC").Limit(limit).Find(&jobs)
	if result.Error != nil {
		return nil, result.Error
	}

	return jobs, nil
}

func (r *Repository) GetSyncMeta(ctx context.Context, restaurantID uint) (*model.RestaurantSyncMeta, error) {
	var meta model.RestaurantSyncMeta

	result := r.DB.WithContext(ctx).Where("restaurant_id = ?", restaurantID).First(&meta)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, result.Error
	}

	return &meta, nil
}

// TouchSyncMeta upserts the freshness row for a restaurant and applies the
// caller's stamp to it.
func (r *Repository) TouchSyncMeta(ctx context.Context, restaurantID uint, touch func(*model.RestaurantSyncMeta)) error {
	meta, err := r.GetSyncMeta(ctx, restaurantID)
	if err != nil {
		return err
	}

	if meta == nil {
		meta = &model.RestaurantSyncMeta{RestaurantID: restaurantID}
	}

	touch(meta)

	result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "restaurant_id"}},
		UpdateAll: true,
	}).Create(meta)

	return result.Error
}

// TaskRepository manages the recurring scrape schedule.
type TaskRepository interface {
	CreateTask(ctx context.Context, task *model.ScheduledTask) error
	UpdateTask(ctx context.Context, task *model.ScheduledTask) error
	DeleteTask(ctx context.Context, id uint) error
	GetTaskByID(ctx context.Context, id uint) (*model.ScheduledTask, error)
	ListTasks(ctx context.Context, activeOnly bool) ([]model.ScheduledTask, error)
	MarkTaskRun(ctx context.Context, id uint, ranAt time.Time, nextRun *time.Time) error
}

func (r *Repository) CreateTask(ctx context.Context, task *model.ScheduledTask) error {
	if result := r.DB.WithContext(ctx).Create(task); result.Error != nil {
		return result.Error
	}

	return nil
}

func (r *Repository) UpdateTask(ctx context.Context, task *model.ScheduledTask) error {
	if result := r.DB.WithContext(ctx).Save(task); result.Error != nil {
		return result.Error
	}

	return nil
}

func (r *Repository) DeleteTask(ctx context.Context, id uint) error {
	result := r.DB.WithContext(ctx).Delete(&model.ScheduledTask{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}

	return nil
}

func (r *Repository) GetTaskByID(ctx context.Context, id uint) (*model.ScheduledTask, error) {
	var task model.ScheduledTask

	result := r.DB.WithContext(ctx).First(&task, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}

		return nil, result.Error
	}

	return &task, nil
}

func (r *Repository) ListTasks(ctx context.Context, activeOnly bool) ([]model.ScheduledTask, error) {
	query := r.DB.WithContext(ctx).Order("id")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var tasks []model.ScheduledTask

	if result := query.Find(&tasks); result.Error != nil {
		return nil, result.Error
	}

	return tasks, nil
}

func (r *Repository) MarkTaskRun(ctx context.Context, id uint, ranAt time.Time, nextRun *time.Time) error {
	result := r.DB.WithContext(ctx).Model(&model.ScheduledTask{}).
		Where("id = ?", id).
		Updates(map[string]any{"last_run": ranAt, "next_run": nextRun})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}

	return nil
}

// WebhookRepository manages outbound notification targets.
type WebhookRepository interface {
	CreateWebhook(ctx context.Context, config *model.WebhookConfig) error
	DeleteWebhook(ctx context.Context, id uint) error
	GetWebhookByID(ctx context.Context, id uint) (*model.WebhookConfig, error)
	ListWebhooks(ctx context.Context, activeOnly bool) ([]model.WebhookConfig, error)
	MarkWebhookResult(ctx context.Context, id uint, sentAt time.Time, failed bool) error
	UpdateWebhook(ctx context.Context, config *model.WebhookConfig) error
}

func (r *Repository) CreateWebhook(ctx context.Context, config *model.WebhookConfig) error {
	if result := r.DB.WithContext(ctx).Create(config); result.Error != nil {
		return result.Error
	}

	return nil
}

func (r *Repository) GetWebhookByID(ctx context.Context, id uint) (*model.WebhookConfig, error) {
	var config model.WebhookConfig

	result := r.DB.WithContext(ctx).First(&config, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrWebhookNotFound
		}

		return nil, result.Error
	}

	return &config, nil
}

func (r *Repository) UpdateWebhook(ctx context.Context, config *model.WebhookConfig) error {
	if result := r.DB.WithContext(ctx).Save(config); result.Error != nil {
		return result.Error
	}

	return nil
}

func (r *Repository) DeleteWebhook(ctx context.Context, id uint) error {
	result := r.DB.WithContext(ctx).Delete(&model.WebhookConfig{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrWebhookNotFound
	}

	return nil
}

func (r *Repository) ListWebhooks(ctx context.Context, activeOnly bool) ([]model.WebhookConfig, error) {
	query := r.DB.WithContext(ctx).Order("id")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var configs []model.WebhookConfig

	if result := query.Find(&configs); result.Error != nil {
		return nil, result.Error
	}

	return configs, nil
}

// MarkWebhookResult records a delivery attempt; failures accumulate so a
// broken endpoint is visible to the operator.
func (r *Repository) MarkWebhookResult(ctx context.Context, id uint, sentAt time.Time, failed bool) error {
	updates := map[string]any{"last_sent": sentAt}
	if failed {
		updates["fail_count"] = gorm.Expr("fail_count + 1")
	} else {
		updates["fail_count"] = 0
	}

	result := r.DB.WithContext(ctx).Model(&model.WebhookConfig{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrWebhookNotFound
	}

	return nil
}
