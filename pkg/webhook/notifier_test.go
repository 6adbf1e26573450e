package webhook_test

import (
	"context"
	"crypto/hmac"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.openly.dev/pointy"
	"go.uber.org/zap/zaptest"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/gastromap/gastromap-backend/pkg/model"
	"github.com/gastromap/gastromap-backend/pkg/webhook"
)

type fakeStore struct {
	mu      sync.Mutex
	configs []model.WebhookConfig
	results map[uint]bool
}

func (f *fakeStore) ListWebhooks(_ context.Context, _ bool) ([]model.WebhookConfig, error) {
	return f.configs, nil
}

func (f *fakeStore) MarkWebhookResult(_ context.Context, id uint, _ time.Time, failed bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.results == nil {
		f.results = map[uint]bool{}
	}

	f.results[id] = failed

	return nil
}

func config(id uint, url string, events ...string) model.WebhookConfig {
	c := model.WebhookConfig{
		Model:    gorm.Model{ID: id},
		Name:     "hook",
		URL:      url,
		Secret:   pointy.String("s3cret"),
		Events:   datatypes.JSONSlice[string](events),
		IsActive: true,
	}

	return c
}

func TestNotify_SignsAndDelivers(t *testing.T) {
	var (
		gotEvent     string
		gotSignature string
		gotDelivery  string
		gotBody      []byte
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotEvent = r.Header.Get("X-Webhook-Event")
		gotSignature = r.Header.Get("X-Webhook-Signature")
		gotDelivery = r.Header.Get("X-Webhook-Delivery")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	store := &fakeStore{configs: []model.WebhookConfig{config(1, server.URL, webhook.EventSyncCompleted)}}
	notifier := webhook.NewNotifier(store, zaptest.NewLogger(t))

	err := notifier.Notify(context.Background(), webhook.EventSyncCompleted, map[string]any{"jobId": 7})
	require.NoError(t, err)

	assert.Equal(t, webhook.EventSyncCompleted, gotEvent)
	assert.NotEmpty(t, gotDelivery)
	assert.True(t, hmac.Equal([]byte(webhook.Sign(gotBody, "s3cret")), []byte(gotSignature)))

	var payload webhook.Payload
	require.NoError(t, json.Unmarshal(gotBody, &payload))
	assert.Equal(t, webhook.EventSyncCompleted, payload.Event)

	assert.False(t, store.results[1])
}

func TestNotify_SkipsUnsubscribedConfigs(t *testing.T) {
	calls := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	store := &fakeStore{configs: []model.WebhookConfig{config(1, server.URL, webhook.EventSyncFailed)}}
	notifier := webhook.NewNotifier(store, zaptest.NewLogger(t))

	require.NoError(t, notifier.Notify(context.Background(), webhook.EventRestaurantCreated, nil))
	assert.Zero(t, calls)
}

func TestNotify_EmptyEventListReceivesEverything(t *testing.T) {
	calls := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	store := &fakeStore{configs: []model.WebhookConfig{config(1, server.URL)}}
	notifier := webhook.NewNotifier(store, zaptest.NewLogger(t))

	require.NoError(t, notifier.Notify(context.Background(), webhook.EventRestaurantMerged, nil))
	assert.Equal(t, 1, calls)
}

func TestNotify_FailureRecordedAndReported(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	store := &fakeStore{configs: []model.WebhookConfig{config(3, server.URL)}}
	notifier := webhook.NewNotifier(store, zaptest.NewLogger(t))

	err := notifier.Notify(context.Background(), webhook.EventSyncFailed, nil)
	require.Error(t, err)
	assert.True(t, store.results[3])
}
