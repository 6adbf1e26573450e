package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/gastromap/gastromap-backend/pkg/consolidate"
	"github.com/gastromap/gastromap-backend/pkg/repository"
)

// Router assembles the HTTP surface. The health endpoint stays public; the
// /api group takes whatever middleware the caller passes, so a deployment
// without an auth secret can run the API open.
func Router(restaurants *RestaurantServer, imports *ImportServer, duplicates *DuplicateServer,
	quality *QualityServer, syncs *SyncServer, enrich *EnrichServer, schedules *ScheduleServer,
	webhooks *WebhookServer, middleware ...gin.HandlerFunc,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
	}))

	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// The scrape platform calls this back without our auth token.
	router.POST("/api/webhooks/apify", syncs.HandleActorCallback)

	api := router.Group("/api", middleware...)
	{
		api.GET("/restaurants", restaurants.List)
		api.GET("/restaurants/:id", restaurants.Get)

		api.POST("/import", imports.Import)

		api.GET("/duplicates", duplicates.List)
		api.POST("/duplicates", duplicates.Merge)

		api.GET("/quality", quality.Report)
		api.POST("/quality", quality.SetArchived)

		api.POST("/sync", syncs.Start)
		api.GET("/sync", syncs.Status)
		api.GET("/sync/smart", syncs.SmartStatus)

		api.POST("/enrich/apply", enrich.Apply)

		api.GET("/schedule", schedules.List)
		api.POST("/schedule", schedules.Create)
		api.PUT("/schedule/:id", schedules.Update)
		api.DELETE("/schedule/:id", schedules.Delete)
		api.POST("/schedule/run", schedules.RunNow)

		api.GET("/webhooks", webhooks.List)
		api.POST("/webhooks", webhooks.Create)
		api.PUT("/webhooks/:id", webhooks.Update)
		api.DELETE("/webhooks/:id", webhooks.Delete)
		api.POST("/webhooks/:id/test", webhooks.Test)
	}

	return router
}

func respondOK(ctx *gin.Context, payload gin.H) {
	payload["success"] = true
	ctx.JSON(http.StatusOK, payload)
}

func respondError(ctx *gin.Context, status int, err error) {
	ctx.JSON(status, gin.H{"success": false, "error": err.Error()})
}

// respondMappedError translates the domain sentinels into HTTP status codes;
// anything unrecognized is a 500.
func respondMappedError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, consolidate.ErrInvalidInput),
		errors.Is(err, repository.ErrBadQualityFilter):
		respondError(ctx, http.StatusBadRequest, err)
	case errors.Is(err, consolidate.ErrNotFound),
		errors.Is(err, repository.ErrRestaurantNotFound),
		errors.Is(err, repository.ErrSyncJobNotFound),
		errors.Is(err, repository.ErrTaskNotFound),
		errors.Is(err, repository.ErrWebhookNotFound):
		respondError(ctx, http.StatusNotFound, err)
	default:
		respondError(ctx, http.StatusInternalServerError, err)
	}
}

func pathID(ctx *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		return 0, errors.New("invalid id")
	}

	return uint(id), nil
}
