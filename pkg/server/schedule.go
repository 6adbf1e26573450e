package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gastromap/gastromap-backend/pkg/model"
	"github.com/gastromap/gastromap-backend/pkg/repository"
	"github.com/gastromap/gastromap-backend/pkg/scheduler"
)

// TaskRunner triggers due scheduled tasks outside their cron tick.
type TaskRunner interface {
	RunDue(ctx context.Context, now time.Time) (int, error)
}

type ScheduleServer struct {
	tasks  repository.TaskRepository
	runner TaskRunner
	logger *zap.Logger
}

func NewScheduleServer(tasks repository.TaskRepository, runner TaskRunner, logger *zap.Logger) *ScheduleServer {
	return &ScheduleServer{tasks: tasks, runner: runner, logger: logger}
}

func (s *ScheduleServer) List(ctx *gin.Context) {
	tasks, err := s.tasks.ListTasks(ctx.Request.Context(), ctx.Query("active") == "true")
	if err != nil {
		respondMappedError(ctx, err)

		return
	}

	respondOK(ctx, gin.H{"tasks": tasks})
}

type taskRequest struct {
	Source         string `json:"source" binding:"required"`
	SearchQuery    string `json:"searchQuery" binding:"required"`
	Location       string `json:"location"`
	MaxResults     int    `json:"maxResults"`
	CronExpression string `json:"cronExpression" binding:"required"`
	IsActive       *bool  `json:"isActive"`
}

func (s *ScheduleServer) Create(ctx *gin.Context) {
	var request taskRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondError(ctx, http.StatusBadRequest, err)

		return
	}

	next, err := scheduler.NextRun(request.CronExpression, time.Now())
	if err != nil {
		respondError(ctx, http.StatusBadRequest, err)

		return
	}

	task := &model.ScheduledTask{
		Source:         request.Source,
		SearchQuery:    request.SearchQuery,
		Location:       request.Location,
		MaxResults:     request.MaxResults,
		CronExpression: request.CronExpression,
		IsActive:       request.IsActive == nil || *request.IsActive,
		NextRun:        &next,
	}
	if task.MaxResults <= 0 {
		task.MaxResults = 100
	}

	if err := s.tasks.CreateTask(ctx.Request.Context(), task); err != nil {
		respondMappedError(ctx, err)

		return
	}

	s.logger.Info("scheduled task created",
		zap.Uint("id", task.ID), zap.String("source", task.Source), zap.String("cron", task.CronExpression))

	respondOK(ctx, gin.H{"task": task})
}

func (s *ScheduleServer) Update(ctx *gin.Context) {
	id, err := pathID(ctx)
	if err != nil {
		respondError(ctx, http.StatusBadRequest, err)

		return
	}

	var request taskRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondError(ctx, http.StatusBadRequest, err)

		return
	}

	task, err := s.tasks.GetTaskByID(ctx.Request.Context(), id)
	if err != nil {
		respondMappedError(ctx, err)

		return
	}

	if request.CronExpression != task.CronExpression {
		next, err := scheduler.NextRun(request.CronExpression, time.Now())
		if err != nil {
			respondError(ctx, http.StatusBadRequest, err)

			return
		}

		task.NextRun = &next
	}

	task.Source = request.Source
	task.SearchQuery = request.SearchQuery
	task.Location = request.Location
	task.CronExpression = request.CronExpression

	if request.MaxResults > 0 {
		task.MaxResults = request.MaxResults
	}

	if request.IsActive != nil {
		task.IsActive = *request.IsActive
	}

	if err := s.tasks.UpdateTask(ctx.Request.Context(), task); err != nil {
		respondMappedError(ctx, err)

		return
	}

	respondOK(ctx, gin.H{"task": task})
}

func (s *ScheduleServer) Delete(ctx *gin.Context) {
	id, err := pathID(ctx)
	if err != nil {
		respondError(ctx, http.StatusBadRequest, err)

		return
	}

	if err := s.tasks.DeleteTask(ctx.Request.Context(), id); err != nil {
		respondMappedError(ctx, err)

		return
	}

	respondOK(ctx, gin.H{"id": id})
}

// RunNow fires every due task immediately instead of waiting for the next
// cron tick.
func (s *ScheduleServer) RunNow(ctx *gin.Context) {
	started, err := s.runner.RunDue(ctx.Request.Context(), time.Now())
	if err != nil {
		s.logger.Warn("manual schedule run finished with failures", zap.Error(err))
	}

	respondOK(ctx, gin.H{"started": started})
}
