package consolidate

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/gastromap/gastromap-backend/pkg/geo"
	"github.com/gastromap/gastromap-backend/pkg/importer"
	"github.com/gastromap/gastromap-backend/pkg/match"
	"github.com/gastromap/gastromap-backend/pkg/model"
)

const (
	// Enrichment matching is looser than ingest matching: items come from
	// targeted per-restaurant searches, so a wide radius and a soft name
	// gate are enough.
	enrichRadiusMeter = 100
	enrichNameGate    = 0.5
)

// EnrichStats reports what an enrichment batch did.
type EnrichStats struct {
	Total     int `json:"total"`
	Updated   int `json:"updated"`
	Unmatched int `json:"unmatched"`
}

// Enricher folds gap-filling scrape results into existing photo-less
// records. Unlike ingestion it never creates new rows: an item that matches
// no candidate is counted and dropped.
type Enricher struct {
	store  Store
	logger *zap.Logger
}

func NewEnricher(store Store, logger *zap.Logger) *Enricher {
	return &Enricher{store: store, logger: logger}
}

// Apply matches each scraped item against the active restaurants still
// missing photos and fills the best match's gaps. Matching requires the item
// to land within the radius of a candidate whose name contains, is contained
// by, or sits above the edit-distance gate against the item's name; among
// those the nearest candidate wins.
func (e *Enricher) Apply(ctx context.Context, items []importer.RawPlace, source string) (*EnrichStats, error) {
	restaurants, err := e.store.ListActiveRestaurants(ctx)
	if err != nil {
		return nil, err
	}

	candidates := make([]model.Restaurant, 0, len(restaurants))

	for i := range restaurants {
		if len(restaurants[i].Images) == 0 {
			candidates = append(candidates, restaurants[i])
		}
	}

	stats := &EnrichStats{Total: len(items)}

	for _, item := range items {
		record, err := importer.Normalize(item, source)
		if err != nil {
			stats.Unmatched++

			continue
		}

		target := bestEnrichTarget(&record.Restaurant, candidates)
		if target == nil {
			stats.Unmatched++

			continue
		}

		if err := e.store.UpdateRestaurantFields(ctx, target.ID, FillFields(target, &record.Restaurant)); err != nil {
			e.logger.Warn("failed to enrich restaurant", zap.Uint("id", target.ID), zap.Error(err))

			continue
		}

		appendChildren(ctx, e.store, e.logger, target.ID, record)
		stats.Updated++

		e.logger.Info("enriched restaurant",
			zap.Uint("id", target.ID),
			zap.String("name", target.Name),
			zap.String("source", source))
	}

	return stats, nil
}

func bestEnrichTarget(incoming *model.Restaurant, candidates []model.Restaurant) *model.Restaurant {
	if !incoming.HasCoordinates() {
		return nil
	}

	incomingName := match.NormalizeName(incoming.Name)

	var (
		best         *model.Restaurant
		bestDistance float64
	)

	for i := range candidates {
		candidate := &candidates[i]

		distance := geo.DistanceMeters(incoming.Latitude, incoming.Longitude,
			candidate.Latitude, candidate.Longitude)
		if distance >= enrichRadiusMeter {
			continue
		}

		if !enrichNameMatches(incomingName, match.NormalizeName(candidate.Name)) {
			continue
		}

		if best == nil || distance < bestDistance {
			best = candidate
			bestDistance = distance
		}
	}

	return best
}

func enrichNameMatches(a, b string) bool {
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}

	return match.LevenshteinRatio(a, b) > enrichNameGate
}
