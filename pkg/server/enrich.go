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

	"github.com/gastromap/gastromap-backend/pkg/consolidate"
	"github.com/gastromap/gastromap-backend/pkg/importer"
	"github.com/gastromap/gastromap-backend/pkg/model"
	"github.com/gastromap/gastromap-backend/pkg/repository"
)

// GapFiller is the enrichment surface the apply endpoint needs.
type GapFiller interface {
	Apply(ctx context.Context, items []importer.RawPlace, source string) (*consolidate.EnrichStats, error)
}

type EnrichServer struct {
	jobs     repository.SyncRepository
	client   ActorClient
	enricher GapFiller
	logger   *zap.Logger
}

func NewEnrichServer(jobs repository.SyncRepository, client ActorClient, enricher GapFiller,
	logger *zap.Logger,
) *EnrichServer {
	return &EnrichServer{jobs: jobs, client: client, enricher: enricher, logger: logger}
}

type enrichApplyRequest struct {
	JobID uint `json:"jobId" binding:"required"`
}

// Apply pulls the dataset of a finished enrichment run and folds it into the
// records still missing photos, then closes the job with the outcome.
func (s *EnrichServer) Apply(ctx *gin.Context) {
	var request enrichApplyRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondError(ctx, http.StatusBadRequest, err)

		return
	}

	job, err := s.jobs.GetSyncJobByID(ctx.Request.Context(), request.JobID)
	if err != nil {
		respondMappedError(ctx, err)

		return
	}

	if job.RunID == nil {
		respondError(ctx, http.StatusBadRequest, fmt.Errorf("job %d has no run attached", job.ID))

		return
	}

	run, err := s.client.GetRun(ctx.Request.Context(), *job.RunID)
	if err != nil {
		respondMappedError(ctx, err)

		return
	}

	items, err := s.client.AllDatasetItems(ctx.Request.Context(), run.DefaultDatasetID, 0)
	if err != nil {
		respondMappedError(ctx, err)

		return
	}

	stats, err := s.enricher.Apply(ctx.Request.Context(), items, job.Source)
	if err != nil {
		respondMappedError(ctx, err)

		return
	}

	job.Status = model.SyncStatusCompleted
	job.CompletedAt = pointy.Pointer(time.Now())

	if encoded, marshalErr := json.Marshal(stats); marshalErr == nil {
		job.Stats = datatypes.JSON(encoded)
	}

	if err := s.jobs.UpdateSyncJob(ctx.Request.Context(), job); err != nil {
		s.logger.Error("failed to update sync job", zap.Uint("jobId", job.ID), zap.Error(err))
	}

	s.logger.Info("enrichment applied",
		zap.Uint("jobId", job.ID),
		zap.Int("updated", stats.Updated),
		zap.Int("unmatched", stats.Unmatched))

	respondOK(ctx, gin.H{"jobId": job.ID, "stats": stats})
}
