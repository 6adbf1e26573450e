package server

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gastromap/gastromap-backend/pkg/consolidate"
	"github.com/gastromap/gastromap-backend/pkg/repository"
)

const defaultGroupLimit = 20

// DuplicateScanner finds and collapses duplicate groups.
type DuplicateScanner interface {
	Scan(ctx context.Context) ([]consolidate.Group, error)
	Merge(ctx context.Context, keepID uint, mergeIDs []uint) (*consolidate.MergeResult, error)
}

type DuplicateServer struct {
	scanner     DuplicateScanner
	restaurants repository.RestaurantRepository
	logger      *zap.Logger
}

func NewDuplicateServer(scanner DuplicateScanner, restaurants repository.RestaurantRepository, logger *zap.Logger) *DuplicateServer {
	return &DuplicateServer{scanner: scanner, restaurants: restaurants, logger: logger}
}

// List runs a full duplicate scan and pages through the resulting groups.
// The scan is recomputed on every call; group membership shifts as merges
// happen, so cached pages would lie.
func (s *DuplicateServer) List(ctx *gin.Context) {
	limit := queryInt(ctx, "limit", defaultGroupLimit)
	offset := queryInt(ctx, "offset", 0)

	groups, err := s.scanner.Scan(ctx.Request.Context())
	if err != nil {
		respondMappedError(ctx, err)

		return
	}

	_, total, err := s.restaurants.ListRestaurants(ctx.Request.Context(), repository.RestaurantFilter{Limit: 1})
	if err != nil {
		respondMappedError(ctx, err)

		return
	}

	var page []consolidate.Group
	if offset < len(groups) {
		page = groups[offset:]
	}

	hasMore := len(page) > limit
	if hasMore {
		page = page[:limit]
	}

	if page == nil {
		page = []consolidate.Group{}
	}

	respondOK(ctx, gin.H{
		"groups":           page,
		"total":            len(groups),
		"totalRestaurants": total,
		"pagination": gin.H{
			"limit":   limit,
			"offset":  offset,
			"hasMore": hasMore,
		},
	})
}

type mergeRequest struct {
	KeepID   uint   `json:"keepId" binding:"required"`
	MergeIDs []uint `json:"mergeIds" binding:"required"`
}

// Merge collapses the listed records into the keeper.
func (s *DuplicateServer) Merge(ctx *gin.Context) {
	var request mergeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondError(ctx, http.StatusBadRequest, err)

		return
	}

	result, err := s.scanner.Merge(ctx.Request.Context(), request.KeepID, request.MergeIDs)
	if err != nil {
		respondMappedError(ctx, err)

		return
	}

	s.logger.Info("merged duplicate group",
		zap.Uint("kept", result.KeptID),
		zap.Uints("merged", result.MergedIDs))

	respondOK(ctx, gin.H{
		"message":    "duplicates merged",
		"keptId":     result.KeptID,
		"deletedIds": result.MergedIDs,
		"movedHours": result.MovedHours,
	})
}

func queryInt(ctx *gin.Context, name string, fallback int) int {
	value, err := strconv.Atoi(ctx.Query(name))
	if err != nil || value < 0 {
		return fallback
	}

	return value
}
