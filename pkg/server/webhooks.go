package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.openly.dev/pointy"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/gastromap/gastromap-backend/pkg/model"
	"github.com/gastromap/gastromap-backend/pkg/repository"
)

// EventNotifier fans events out to the configured receivers. Deliver targets
// a single config and is what the test endpoint uses.
type EventNotifier interface {
	Notify(ctx context.Context, event string, data any) error
	Deliver(ctx context.Context, config *model.WebhookConfig, event string, data any) error
}

type WebhookServer struct {
	webhooks repository.WebhookRepository
	notifier EventNotifier
	logger   *zap.Logger
}

func NewWebhookServer(webhooks repository.WebhookRepository, notifier EventNotifier, logger *zap.Logger) *WebhookServer {
	return &WebhookServer{webhooks: webhooks, notifier: notifier, logger: logger}
}

func (s *WebhookServer) List(ctx *gin.Context) {
	configs, err := s.webhooks.ListWebhooks(ctx.Request.Context(), false)
	if err != nil {
		respondMappedError(ctx, err)

		return
	}

	// Secrets never leave the server.
	for i := range configs {
		configs[i].Secret = nil
	}

	respondOK(ctx, gin.H{"webhooks": configs})
}

type webhookRequest struct {
	Name   string   `json:"name" binding:"required"`
	URL    string   `json:"url" binding:"required,url"`
	Secret string   `json:"secret"`
	Events []string `json:"events"`
}

func (s *WebhookServer) Create(ctx *gin.Context) {
	var request webhookRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondError(ctx, http.StatusBadRequest, err)

		return
	}

	config := &model.WebhookConfig{
		Name:     request.Name,
		URL:      request.URL,
		Events:   datatypes.JSONSlice[string](request.Events),
		IsActive: true,
	}
	if request.Secret != "" {
		config.Secret = pointy.String(request.Secret)
	}

	if err := s.webhooks.CreateWebhook(ctx.Request.Context(), config); err != nil {
		respondMappedError(ctx, err)

		return
	}

	s.logger.Info("webhook registered", zap.Uint("id", config.ID), zap.String("url", config.URL))

	config.Secret = nil
	respondOK(ctx, gin.H{"webhook": config})
}

type webhookUpdateRequest struct {
	Name     string    `json:"name"`
	URL      string    `json:"url" binding:"omitempty,url"`
	Secret   *string   `json:"secret"`
	Events   *[]string `json:"events"`
	IsActive *bool     `json:"isActive"`
}

func (s *WebhookServer) Update(ctx *gin.Context) {
	id, err := pathID(ctx)
	if err != nil {
		respondError(ctx, http.StatusBadRequest, err)

		return
	}

	var request webhookUpdateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondError(ctx, http.StatusBadRequest, err)

		return
	}

	config, err := s.webhooks.GetWebhookByID(ctx.Request.Context(), id)
	if err != nil {
		respondMappedError(ctx, err)

		return
	}

	if request.Name != "" {
		config.Name = request.Name
	}

	if request.URL != "" {
		config.URL = request.URL
	}

	if request.Secret != nil {
		config.Secret = request.Secret
	}

	if request.Events != nil {
		config.Events = datatypes.JSONSlice[string](*request.Events)
	}

	if request.IsActive != nil {
		config.IsActive = *request.IsActive
	}

	if err := s.webhooks.UpdateWebhook(ctx.Request.Context(), config); err != nil {
		respondMappedError(ctx, err)

		return
	}

	config.Secret = nil
	respondOK(ctx, gin.H{"webhook": config})
}

func (s *WebhookServer) Delete(ctx *gin.Context) {
	id, err := pathID(ctx)
	if err != nil {
		respondError(ctx, http.StatusBadRequest, err)

		return
	}

	if err := s.webhooks.DeleteWebhook(ctx.Request.Context(), id); err != nil {
		respondMappedError(ctx, err)

		return
	}

	respondOK(ctx, gin.H{"id": id})
}

// Test sends a ping event to one receiver so an operator can verify the
// endpoint and its signature check end to end.
func (s *WebhookServer) Test(ctx *gin.Context) {
	id, err := pathID(ctx)
	if err != nil {
		respondError(ctx, http.StatusBadRequest, err)

		return
	}

	config, err := s.webhooks.GetWebhookByID(ctx.Request.Context(), id)
	if err != nil {
		respondMappedError(ctx, err)

		return
	}

	err = s.notifier.Deliver(ctx.Request.Context(), config, "ping", gin.H{"sentAt": time.Now()})
	if err != nil {
		respondError(ctx, http.StatusBadGateway, err)

		return
	}

	respondOK(ctx, gin.H{"id": id, "delivered": true})
}
