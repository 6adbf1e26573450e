package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gastromap/gastromap-backend/pkg/consolidate"
	"github.com/gastromap/gastromap-backend/pkg/importer"
	"github.com/gastromap/gastromap-backend/pkg/model"
	"github.com/gastromap/gastromap-backend/pkg/webhook"
)

// RecordSaver is the consolidation entry point the import surface needs.
type RecordSaver interface {
	Save(ctx context.Context, record importer.Record) (*consolidate.Result, error)
}

type ImportServer struct {
	saver    RecordSaver
	notifier EventNotifier
	logger   *zap.Logger
}

func NewImportServer(saver RecordSaver, notifier EventNotifier, logger *zap.Logger) *ImportServer {
	return &ImportServer{saver: saver, notifier: notifier, logger: logger}
}

type importRequest struct {
	Source string              `json:"source" binding:"required"`
	Items  []importer.RawPlace `json:"items"`
	Data   []importer.RawPlace `json:"data"`
}

func (r importRequest) places() []importer.RawPlace {
	if len(r.Items) > 0 {
		return r.Items
	}

	return r.Data
}

// Import ingests a raw scraped batch. Item level failures are reported in
// the stats, not as an HTTP error; the request only fails outright when the
// body is unusable.
func (s *ImportServer) Import(ctx *gin.Context) {
	var request importRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondError(ctx, http.StatusBadRequest, err)

		return
	}

	stats, err := s.run(ctx.Request.Context(), request.places(), request.Source)
	if err != nil {
		s.logger.Warn("import batch finished with failures",
			zap.String("source", request.Source), zap.Error(err))
	}

	respondOK(ctx, gin.H{
		"message": "import finished",
		"stats":   stats,
	})
}

func (s *ImportServer) run(ctx context.Context, items []importer.RawPlace, source string) (*importer.Stats, error) {
	imp := importer.New(&saverAdapter{saver: s.saver, notifier: s.notifier}, s.logger)

	return imp.ImportBatch(ctx, items, source)
}

// syncMetaRecorder stamps per-restaurant data freshness.
type syncMetaRecorder interface {
	TouchSyncMeta(ctx context.Context, restaurantID uint, touch func(*model.RestaurantSyncMeta)) error
}

// saverAdapter bridges the consolidator to the importer interface, emits an
// outbound event for every record that lands, and, when a meta recorder is
// attached, stamps the record's freshness so the smart-sync status can tell
// it is up to date.
type saverAdapter struct {
	saver    RecordSaver
	notifier EventNotifier
	meta     syncMetaRecorder
}

func (a *saverAdapter) Save(ctx context.Context, record importer.Record) (*importer.SaveOutcome, error) {
	result, err := a.saver.Save(ctx, record)
	if err != nil {
		return nil, err
	}

	if a.meta != nil {
		// A scrape carries every category, so all four stamps move.
		now := time.Now()
		_ = a.meta.TouchSyncMeta(ctx, result.ID, func(meta *model.RestaurantSyncMeta) {
			meta.LastBasicInfoSync = &now
			meta.LastReviewsSync = &now
			meta.LastPhotosSync = &now
			meta.LastHoursSync = &now
		})
	}

	if a.notifier != nil {
		event := webhook.EventRestaurantUpdated
		switch result.Action {
		case consolidate.ActionCreated:
			event = webhook.EventRestaurantCreated
		case consolidate.ActionMerged:
			event = webhook.EventRestaurantMerged
		}

		_ = a.notifier.Notify(ctx, event, gin.H{"id": result.ID, "name": record.Restaurant.Name})
	}

	return &importer.SaveOutcome{Action: string(result.Action), ID: result.ID}, nil
}
