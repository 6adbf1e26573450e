// Package webhook delivers outbound event notifications to configured
// endpoints, signing each payload so receivers can verify origin.
package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/gastromap/gastromap-backend/pkg/model"
)

// Event names receivers can subscribe to. A config with an empty event list
// receives everything.
const (
	EventSyncStarted       = "sync.started"
	EventSyncCompleted     = "sync.completed"
	EventSyncFailed        = "sync.failed"
	EventRestaurantCreated = "restaurant.created"
	EventRestaurantUpdated = "restaurant.updated"
	EventRestaurantMerged  = "restaurant.merged"
)

const deliveryTimeout = 10 * time.Second

// ConfigStore is the slice of the repository the notifier needs.
type ConfigStore interface {
	ListWebhooks(ctx context.Context, activeOnly bool) ([]model.WebhookConfig, error)
	MarkWebhookResult(ctx context.Context, id uint, sentAt time.Time, failed bool) error
}

type Payload struct {
	Event     string    `json:"event"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

type Notifier struct {
	store      ConfigStore
	httpClient *http.Client
	logger     *zap.Logger
}

func NewNotifier(store ConfigStore, logger *zap.Logger) *Notifier {
	return &Notifier{
		store:      store,
		httpClient: &http.Client{Timeout: deliveryTimeout},
		logger:     logger,
	}
}

// WithHTTPClient swaps the transport, for tests.
func (n *Notifier) WithHTTPClient(client *http.Client) *Notifier {
	n.httpClient = client

	return n
}

// Notify fans an event out to every active subscribed config. Delivery
// failures are recorded per config and do not stop the fan-out.
func (n *Notifier) Notify(ctx context.Context, event string, data any) error {
	configs, err := n.store.ListWebhooks(ctx, true)
	if err != nil {
		return err
	}

	var errs error

	for index := range configs {
		config := configs[index]
		if !subscribed(config, event) {
			continue
		}

		if err := n.Deliver(ctx, &config, event, data); err != nil {
			n.logger.Warn("webhook delivery failed",
				zap.String("name", config.Name),
				zap.String("event", event),
				zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", config.Name, err))
		}
	}

	return errs
}

// Deliver sends one event to one config and records the attempt. Used for
// fan-out and for the operator's test-fire endpoint.
func (n *Notifier) Deliver(ctx context.Context, config *model.WebhookConfig, event string, data any) error {
	body, err := json.Marshal(Payload{Event: event, Timestamp: time.Now().UTC(), Data: data})
	if err != nil {
		return err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, config.URL, bytes.NewReader(body))
	if err != nil {
		return err
	}

	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("X-Webhook-Event", event)
	request.Header.Set("X-Webhook-Delivery", uuid.NewString())

	if config.Secret != nil && *config.Secret != "" {
		request.Header.Set("X-Webhook-Signature", Sign(body, *config.Secret))
	}

	response, err := n.httpClient.Do(request)

	failed := err != nil
	if response != nil {
		_ = response.Body.Close()

		if response.StatusCode >= http.StatusBadRequest {
			failed = true
			err = fmt.Errorf("endpoint returned %d", response.StatusCode)
		}
	}

	if markErr := n.store.MarkWebhookResult(ctx, config.ID, time.Now(), failed); markErr != nil {
		n.logger.Error("failed to record webhook result", zap.Uint("id", config.ID), zap.Error(markErr))
	}

	return err
}

// Sign computes the hex HMAC-SHA256 signature receivers verify.
func Sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)

	return hex.EncodeToString(mac.Sum(nil))
}

func subscribed(config model.WebhookConfig, event string) bool {
	if len(config.Events) == 0 {
		return true
	}

	for _, e := range config.Events {
		if e == event {
			return true
		}
	}

	return false
}
