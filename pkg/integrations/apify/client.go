// Package apify is a minimal client for the Apify actor-run API: start a
// scrape run, poll its status and page through the resulting dataset.
package apify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/gastromap/gastromap-backend/pkg/importer"
)

const (
	defaultBaseURL = "https://api.apify.com"
	defaultTimeout = 30 * time.Second
)

// Run statuses as reported by the platform.
const (
	StatusReady     = "READY"
	StatusRunning   = "RUNNING"
	StatusSucceeded = "SUCCEEDED"
	StatusFailed    = "FAILED"
	StatusAborted   = "ABORTED"
	StatusTimedOut  = "TIMED-OUT"
)

var ErrRunNotFound = errors.New("actor run not found")

type Run struct {
	ID               string     `json:"id"`
	ActorID          string     `json:"actId"`
	Status           string     `json:"status"`
	DefaultDatasetID string     `json:"defaultDatasetId"`
	StartedAt        *time.Time `json:"startedAt"`
	FinishedAt       *time.Time `json:"finishedAt"`
}

func (r *Run) Finished() bool {
	switch r.Status {
	case StatusSucceeded, StatusFailed, StatusAborted, StatusTimedOut:
		return true
	default:
		return false
	}
}

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *zap.Logger
}

type Option func(*Client)

// WithBaseURL points the client at a different API host. Used by tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

func NewClient(token string, logger *zap.Logger, opts ...Option) *Client {
	client := &Client{
		baseURL:    defaultBaseURL,
		token:      token,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// StartRun launches an actor with the given input and returns the run
// descriptor without waiting for it to finish.
func (c *Client) StartRun(ctx context.Context, actorID string, input map[string]any) (*Run, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/v2/acts/%s/runs", c.baseURL, url.PathEscape(actorID))

	var envelope struct {
		Data Run `json:"data"`
	}

	if err := c.do(ctx, http.MethodPost, endpoint, bytes.NewReader(body), &envelope); err != nil {
		return nil, err
	}

	c.logger.Info("started actor run",
		zap.String("actor_id", actorID),
		zap.String("run_id", envelope.Data.ID))

	return &envelope.Data, nil
}

func (c *Client) GetRun(ctx context.Context, runID string) (*Run, error) {
	endpoint := fmt.Sprintf("%s/v2/actor-runs/%s", c.baseURL, url.PathEscape(runID))

	var envelope struct {
		Data Run `json:"data"`
	}

	if err := c.do(ctx, http.MethodGet, endpoint, nil, &envelope); err != nil {
		return nil, err
	}

	return &envelope.Data, nil
}

// DatasetItems fetches one page of scraped places from a run's dataset.
func (c *Client) DatasetItems(ctx context.Context, datasetID string, offset, limit int) ([]importer.RawPlace, error) {
	endpoint := fmt.Sprintf("%s/v2/datasets/%s/items?format=json&offset=%d&limit=%d",
		c.baseURL, url.PathEscape(datasetID), offset, limit)

	var items []importer.RawPlace
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &items); err != nil {
		return nil, err
	}

	return items, nil
}

// AllDatasetItems pages through the whole dataset.
func (c *Client) AllDatasetItems(ctx context.Context, datasetID string, pageSize int) ([]importer.RawPlace, error) {
	if pageSize <= 0 {
		pageSize = 500
	}

	var all []importer.RawPlace

	for offset := 0; ; offset += pageSize {
		page, err := c.DatasetItems(ctx, datasetID, offset, pageSize)
		if err != nil {
			return nil, err
		}

		all = append(all, page...)

		if len(page) < pageSize {
			return all, nil
		}
	}
}

func (c *Client) do(ctx context.Context, method, endpoint string, body io.Reader, out any) error {
	request, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}

	request.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return err
	}
	defer func() { _ = response.Body.Close() }()

	if response.StatusCode == http.StatusNotFound {
		return ErrRunNotFound
	}

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		message, _ := io.ReadAll(io.LimitReader(response.Body, 512))

		return fmt.Errorf("apify: %s %s returned %d: %s", method, endpoint, response.StatusCode, message)
	}

	return json.NewDecoder(response.Body).Decode(out)
}
