// Package tripmenuweb scrapes the TripMenu restaurant directory. Listing
// pages yield basic cards; each card links to a detail page carrying a
// schema.org Restaurant JSON-LD block with coordinates and hours.
package tripmenuweb

import "go.uber.org/zap"

const IntegrationName = "tripmenu_web"

const defaultBaseURL = "https://tripmenu.uz"

type TripMenuWebIntegration struct {
	baseURL string
	logger  *zap.Logger
}

type Option func(*TripMenuWebIntegration)

// WithBaseURL retargets the scraper, for tests.
func WithBaseURL(baseURL string) Option {
	return func(t *TripMenuWebIntegration) { t.baseURL = baseURL }
}

func NewTripMenuWebIntegration(logger *zap.Logger, opts ...Option) *TripMenuWebIntegration {
	integration := &TripMenuWebIntegration{baseURL: defaultBaseURL, logger: logger}

	for _, opt := range opts {
		opt(integration)
	}

	return integration
}
