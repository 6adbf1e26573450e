package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gastromap/gastromap-backend/pkg/repository"
)

var errMissingArchiveTarget = errors.New("archive needs ids or a filter")

type QualityServer struct {
	restaurants repository.RestaurantRepository
	logger      *zap.Logger
}

func NewQualityServer(restaurants repository.RestaurantRepository, logger *zap.Logger) *QualityServer {
	return &QualityServer{restaurants: restaurants, logger: logger}
}

// Report returns the completeness summary plus a page of records matching
// the requested gap filter.
func (s *QualityServer) Report(ctx *gin.Context) {
	report, err := s.restaurants.QualityReport(ctx.Request.Context())
	if err != nil {
		respondMappedError(ctx, err)

		return
	}

	filter := repository.QualityFilter{
		Issue:           ctx.Query("filter"),
		Limit:           queryInt(ctx, "limit", 0),
		Offset:          queryInt(ctx, "offset", 0),
		IncludeArchived: ctx.Query("includeArchived") == "true",
	}

	issues, total, err := s.restaurants.ListQualityIssues(ctx.Request.Context(), filter)
	if err != nil {
		respondMappedError(ctx, err)

		return
	}

	respondOK(ctx, gin.H{
		"report": report,
		"issues": issues,
		"pagination": gin.H{
			"total":  total,
			"limit":  filter.Limit,
			"offset": filter.Offset,
		},
	})
}

type archiveRequest struct {
	Action string `json:"action" binding:"required,oneof=archive restore"`
	IDs    []uint `json:"ids"`
	Filter string `json:"filter"`
}

// SetArchived hides records from the public listing or restores them, either
// by explicit ids or by a gap filter. The consolidation pipeline skips
// archived rows, so archiving is also how an operator pins a false positive
// out of the duplicate scan.
func (s *QualityServer) SetArchived(ctx *gin.Context) {
	var request archiveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondError(ctx, http.StatusBadRequest, err)

		return
	}

	archived := request.Action == "archive"

	if len(request.IDs) > 0 {
		for _, id := range request.IDs {
			if err := s.restaurants.SetArchived(ctx.Request.Context(), id, archived); err != nil {
				respondMappedError(ctx, err)

				return
			}
		}

		s.logger.Info("restaurant archive state changed",
			zap.Uints("ids", request.IDs), zap.Bool("archived", archived))

		respondOK(ctx, gin.H{"count": len(request.IDs), "archived": archived})

		return
	}

	if archived && request.Filter == "" {
		respondError(ctx, http.StatusBadRequest, errMissingArchiveTarget)

		return
	}

	count, err := s.restaurants.ArchiveMatching(ctx.Request.Context(), request.Filter, archived)
	if err != nil {
		respondMappedError(ctx, err)

		return
	}

	s.logger.Info("restaurants bulk archived",
		zap.String("filter", request.Filter), zap.Bool("archived", archived), zap.Int64("count", count))

	respondOK(ctx, gin.H{"count": count, "archived": archived})
}
