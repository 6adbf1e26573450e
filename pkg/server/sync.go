package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.openly.dev/pointy"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/gastromap/gastromap-backend/pkg/importer"
	"github.com/gastromap/gastromap-backend/pkg/integrations/apify"
	"github.com/gastromap/gastromap-backend/pkg/model"
	"github.com/gastromap/gastromap-backend/pkg/repository"
	"github.com/gastromap/gastromap-backend/pkg/scheduler"
	"github.com/gastromap/gastromap-backend/pkg/webhook"
)

const defaultJobListLimit = 20

// ActorClient is the scrape platform surface the sync handlers use.
type ActorClient interface {
	StartRun(ctx context.Context, actorID string, input map[string]any) (*apify.Run, error)
	GetRun(ctx context.Context, runID string) (*apify.Run, error)
	AllDatasetItems(ctx context.Context, datasetID string, pageSize int) ([]importer.RawPlace, error)
}

type SyncServer struct {
	jobs        repository.SyncRepository
	restaurants repository.RestaurantRepository
	client      ActorClient
	saver       RecordSaver
	notifier    EventNotifier
	actors      map[string]string
	intervals   scheduler.Intervals
	logger      *zap.Logger
}

func NewSyncServer(jobs repository.SyncRepository, restaurants repository.RestaurantRepository,
	client ActorClient, saver RecordSaver, notifier EventNotifier, actors map[string]string,
	intervals scheduler.Intervals, logger *zap.Logger,
) *SyncServer {
	return &SyncServer{
		jobs:        jobs,
		restaurants: restaurants,
		client:      client,
		saver:       saver,
		notifier:    notifier,
		actors:      actors,
		intervals:   intervals,
		logger:      logger,
	}
}

type syncRequest struct {
	Source      string `json:"source" binding:"required"`
	SearchQuery string `json:"searchQuery"`
	Location    string `json:"location"`
	MaxResults  int    `json:"maxResults"`
}

// Start launches a scrape run for one source. A source with a run already in
// flight is rejected so concurrent imports cannot race each other.
func (s *SyncServer) Start(ctx *gin.Context) {
	var request syncRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondError(ctx, http.StatusBadRequest, err)

		return
	}

	actorID, known := s.actors[request.Source]
	if !known || actorID == "" {
		respondError(ctx, http.StatusBadRequest,
			fmt.Errorf("no scrape actor configured for source %q", request.Source))

		return
	}

	running, err := s.jobs.GetRunningSyncJob(ctx.Request.Context(), request.Source)
	if err != nil {
		respondMappedError(ctx, err)

		return
	}

	if running != nil {
		ctx.JSON(http.StatusConflict, gin.H{
			"success": false,
			"error":   "sync already running for source",
			"jobId":   running.ID,
		})

		return
	}

	if request.MaxResults <= 0 {
		request.MaxResults = 100
	}

	run, err := s.client.StartRun(ctx.Request.Context(), actorID, map[string]any{
		"searchStringsArray": []string{request.SearchQuery},
		"locationQuery":      request.Location,
		"maxCrawledPlaces":   request.MaxResults,
		"language":           "ru",
	})
	if err != nil {
		respondMappedError(ctx, err)

		return
	}

	job := &model.SyncJob{
		Source:    request.Source,
		Status:    model.SyncStatusRunning,
		RunID:     pointy.String(run.ID),
		StartedAt: pointy.Pointer(time.Now()),
	}
	if err := s.jobs.CreateSyncJob(ctx.Request.Context(), job); err != nil {
		respondMappedError(ctx, err)

		return
	}

	s.logger.Info("sync started",
		zap.String("source", request.Source),
		zap.String("runId", run.ID),
		zap.Uint("jobId", job.ID))

	s.notify(ctx.Request.Context(), webhook.EventSyncStarted, gin.H{
		"jobId":  job.ID,
		"source": job.Source,
		"runId":  run.ID,
	})

	respondOK(ctx, gin.H{"jobId": job.ID, "runId": run.ID, "status": job.Status})
}

// Status returns one job when jobId is given, otherwise the recent jobs.
func (s *SyncServer) Status(ctx *gin.Context) {
	if raw := ctx.Query("jobId"); raw != "" {
		id := queryInt(ctx, "jobId", 0)

		job, err := s.jobs.GetSyncJobByID(ctx.Request.Context(), uint(id))
		if err != nil {
			respondMappedError(ctx, err)

			return
		}

		respondOK(ctx, gin.H{"job": job})

		return
	}

	jobs, err := s.jobs.ListSyncJobs(ctx.Request.Context(), defaultJobListLimit)
	if err != nil {
		respondMappedError(ctx, err)

		return
	}

	respondOK(ctx, gin.H{"jobs": jobs})
}

// SmartStatus reports how much of the directory is due for a refresh under
// the configured cooldowns, split by how expensive that refresh would be.
func (s *SyncServer) SmartStatus(ctx *gin.Context) {
	restaurants, err := s.restaurants.ListActiveRestaurants(ctx.Request.Context())
	if err != nil {
		respondMappedError(ctx, err)

		return
	}

	now := time.Now()
	counts := make(map[scheduler.Mode]int, 3)

	for i := range restaurants {
		meta, err := s.jobs.GetSyncMeta(ctx.Request.Context(), restaurants[i].ID)
		if err != nil {
			respondMappedError(ctx, err)

			return
		}

		counts[scheduler.DetermineMode(meta, s.intervals, now)]++
	}

	respondOK(ctx, gin.H{
		"total":           len(restaurants),
		"needFullSync":    counts[scheduler.ModeFull],
		"needReviewsOnly": counts[scheduler.ModeReviewsOnly],
		"upToDate":        counts[scheduler.ModeUpToDate],
		"intervals": gin.H{
			"basicInfo": s.intervals.BasicInfo.String(),
			"reviews":   s.intervals.Reviews.String(),
			"photos":    s.intervals.Photos.String(),
			"hours":     s.intervals.Hours.String(),
		},
	})
}

type actorCallback struct {
	EventType string `json:"eventType"`
	Resource  struct {
		ID               string `json:"id"`
		Status           string `json:"status"`
		DefaultDatasetID string `json:"defaultDatasetId"`
	} `json:"resource"`
}

// HandleActorCallback ingests the platform's run-finished notification:
// successful runs have their dataset pulled and consolidated, failed runs
// close the job with the failure recorded. Callbacks for runs we never
// started are acknowledged and dropped.
func (s *SyncServer) HandleActorCallback(ctx *gin.Context) {
	var callback actorCallback
	if err := ctx.ShouldBindJSON(&callback); err != nil {
		respondError(ctx, http.StatusBadRequest, err)

		return
	}

	job, err := s.jobs.GetSyncJobByRunID(ctx.Request.Context(), callback.Resource.ID)
	if err != nil {
		s.logger.Warn("callback for unknown run", zap.String("runId", callback.Resource.ID))
		respondOK(ctx, gin.H{"ignored": true})

		return
	}

	if callback.Resource.Status != apify.StatusSucceeded {
		s.closeJob(ctx.Request.Context(), job, nil,
			fmt.Errorf("actor run finished with status %s", callback.Resource.Status))
		respondOK(ctx, gin.H{"jobId": job.ID, "status": job.Status})

		return
	}

	items, err := s.client.AllDatasetItems(ctx.Request.Context(), callback.Resource.DefaultDatasetID, 0)
	if err != nil {
		s.closeJob(ctx.Request.Context(), job, nil, err)
		respondMappedError(ctx, err)

		return
	}

	imp := importer.New(&saverAdapter{saver: s.saver, notifier: s.notifier, meta: s.jobs}, s.logger)

	stats, err := imp.ImportBatch(ctx.Request.Context(), items, job.Source)
	if err != nil {
		s.logger.Warn("sync import finished with failures",
			zap.String("source", job.Source), zap.Error(err))
	}

	s.closeJob(ctx.Request.Context(), job, stats, nil)

	respondOK(ctx, gin.H{"jobId": job.ID, "status": job.Status, "stats": stats})
}

// closeJob finalizes the job row and fires the matching outbound event.
func (s *SyncServer) closeJob(ctx context.Context, job *model.SyncJob, stats *importer.Stats, runErr error) {
	job.CompletedAt = pointy.Pointer(time.Now())

	if runErr != nil {
		job.Status = model.SyncStatusFailed
		job.Error = pointy.String(runErr.Error())
	} else {
		job.Status = model.SyncStatusCompleted
	}

	if stats != nil {
		if encoded, err := json.Marshal(stats); err == nil {
			job.Stats = datatypes.JSON(encoded)
		}
	}

	if err := s.jobs.UpdateSyncJob(ctx, job); err != nil {
		s.logger.Error("failed to update sync job", zap.Uint("jobId", job.ID), zap.Error(err))
	}

	event := webhook.EventSyncCompleted
	data := gin.H{"jobId": job.ID, "source": job.Source, "stats": stats}

	if runErr != nil {
		event = webhook.EventSyncFailed
		data["error"] = runErr.Error()
	}

	s.notify(ctx, event, data)
}

func (s *SyncServer) notify(ctx context.Context, event string, data any) {
	if s.notifier == nil {
		return
	}

	if err := s.notifier.Notify(ctx, event, data); err != nil {
		s.logger.Warn("outbound webhook delivery failed", zap.String("event", event), zap.Error(err))
	}
}
