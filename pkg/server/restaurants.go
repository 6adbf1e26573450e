package server

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gastromap/gastromap-backend/pkg/model"
	"github.com/gastromap/gastromap-backend/pkg/repository"
)

const defaultRestaurantLimit = 50

// RestaurantServer serves the public read side of the directory.
type RestaurantServer struct {
	restaurants repository.RestaurantRepository
	logger      *zap.Logger
}

func NewRestaurantServer(restaurants repository.RestaurantRepository, logger *zap.Logger) *RestaurantServer {
	return &RestaurantServer{restaurants: restaurants, logger: logger}
}

// List pages through the non-archived directory, narrowed by the query
// filters.
func (s *RestaurantServer) List(ctx *gin.Context) {
	filter := repository.RestaurantFilter{
		City:    ctx.Query("city"),
		Source:  ctx.Query("source"),
		Cuisine: ctx.Query("cuisine"),
		Search:  ctx.Query("search"),
		Limit:   queryInt(ctx, "limit", defaultRestaurantLimit),
		Offset:  queryInt(ctx, "offset", 0),
	}

	restaurants, total, err := s.restaurants.ListRestaurants(ctx.Request.Context(), filter)
	if err != nil {
		respondMappedError(ctx, err)

		return
	}

	respondOK(ctx, gin.H{
		"restaurants": restaurants,
		"pagination": gin.H{
			"total":  total,
			"limit":  filter.Limit,
			"offset": filter.Offset,
		},
	})
}

// Get resolves one restaurant by numeric id, falling back to slug lookup so
// both /restaurants/42 and /restaurants/plov-center-g1 work.
func (s *RestaurantServer) Get(ctx *gin.Context) {
	key := ctx.Param("id")

	var (
		restaurant *model.Restaurant
		err        error
	)

	if id, convErr := strconv.ParseUint(key, 10, 32); convErr == nil {
		restaurant, err = s.restaurants.GetRestaurantByID(ctx.Request.Context(), uint(id))
	} else {
		restaurant, err = s.restaurants.GetRestaurantBySlug(ctx.Request.Context(), key)
	}

	if err != nil {
		respondMappedError(ctx, err)

		return
	}

	respondOK(ctx, gin.H{"restaurant": restaurant})
}
