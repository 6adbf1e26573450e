// Package consolidate implements the restaurant consolidation pipeline:
// saving ingested records with duplicate matching, and scanning/merging
// duplicates that earlier batches let through.
package consolidate

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/gastromap/gastromap-backend/pkg/geo"
	"github.com/gastromap/gastromap-backend/pkg/importer"
	"github.com/gastromap/gastromap-backend/pkg/match"
	"github.com/gastromap/gastromap-backend/pkg/model"
)

var (
	ErrNotFound     = errors.New("restaurant not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Store is the persistence surface the pipeline needs. It is implemented by
// the gorm repository; lookups that find nothing return a nil record rather
// than an error so the save flow can branch without sentinel checks.
type Store interface {
	ListMatchCandidates(ctx context.Context, box *geo.BoundingBox) ([]model.Restaurant, error)
	ListActiveRestaurants(ctx context.Context) ([]model.Restaurant, error)
	ListRestaurantsByIDs(ctx context.Context, ids []uint) ([]model.Restaurant, error)
	FindRestaurantBySource(ctx context.Context, source, sourceID string) (*model.Restaurant, error)
	CreateRestaurant(ctx context.Context, restaurant *model.Restaurant) error
	UpdateRestaurantFields(ctx context.Context, id uint, fields map[string]any) error
	AddReviews(ctx context.Context, restaurantID uint, reviews []model.Review) error
	CountWorkingHours(ctx context.Context, restaurantID uint) (int64, error)
	AddWorkingHours(ctx context.Context, restaurantID uint, hours []model.WorkingHours) error
	ReparentReviews(ctx context.Context, fromIDs []uint, toID uint) error
	MoveWorkingHours(ctx context.Context, fromID, toID uint) error
	DeleteRestaurants(ctx context.Context, ids []uint) error
	Transaction(ctx context.Context, fn func(Store) error) error
}

type Action string

const (
	ActionCreated Action = "created"
	ActionMerged  Action = "merged"
	ActionUpdated Action = "updated"
)

// Result reports what Save did with a record.
type Result struct {
	Action Action
	ID     uint
}

// Consolidator is the ingestion entry point: each incoming normalized record
// is either merged into a matching existing record or inserted as new.
type Consolidator struct {
	store    Store
	resolver *match.Resolver
	boxMeter float64
	logger   *zap.Logger
}

func NewConsolidator(store Store, resolver *match.Resolver, candidateBoxMeters float64, logger *zap.Logger) *Consolidator {
	if candidateBoxMeters <= 0 {
		candidateBoxMeters = match.DefaultThresholds().CandidateBoxMeter
	}

	return &Consolidator{store: store, resolver: resolver, boxMeter: candidateBoxMeters, logger: logger}
}

// Save consolidates one normalized record. No locking is applied across
// concurrent calls; two simultaneous imports of the same place can both pass
// the resolver and create two rows, which the duplicate scan catches later.
func (c *Consolidator) Save(ctx context.Context, record importer.Record) (*Result, error) {
	restaurant := record.Restaurant

	if restaurant.Name == "" || !restaurant.HasCoordinates() {
		return nil, importer.ErrInvalidRecord
	}

	box := geo.BoxAround(restaurant.Latitude, restaurant.Longitude, c.boxMeter)

	candidates, err := c.store.ListMatchCandidates(ctx, &box)
	if err != nil {
		return nil, err
	}

	if matched, ok := c.resolver.FindMatch(toMatchCandidate(&restaurant), toMatchCandidates(candidates)); ok {
		existing := findByID(candidates, matched.ID)
		if existing != nil && !(existing.Source == restaurant.Source && existing.SourceID == restaurant.SourceID) {
			return c.mergeInto(ctx, existing, record, matched)
		}
	}

	// No cross-source match; a repeat scrape of the same (source, sourceId)
	// still updates its own row.
	existing, err := c.store.FindRestaurantBySource(ctx, restaurant.Source, restaurant.SourceID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		if err := c.store.UpdateRestaurantFields(ctx, existing.ID, FillFields(existing, &restaurant)); err != nil {
			return nil, err
		}

		appendChildren(ctx, c.store, c.logger, existing.ID, record)

		return &Result{Action: ActionUpdated, ID: existing.ID}, nil
	}

	if err := c.store.CreateRestaurant(ctx, &restaurant); err != nil {
		return nil, err
	}

	appendChildren(ctx, c.store, c.logger, restaurant.ID, record)
	c.logger.Info("created restaurant",
		zap.Uint("id", restaurant.ID),
		zap.String("name", restaurant.Name),
		zap.String("source", restaurant.Source))

	return &Result{Action: ActionCreated, ID: restaurant.ID}, nil
}

func (c *Consolidator) mergeInto(ctx context.Context, existing *model.Restaurant, record importer.Record, matched match.Match) (*Result, error) {
	if err := c.store.UpdateRestaurantFields(ctx, existing.ID, FillFields(existing, &record.Restaurant)); err != nil {
		return nil, err
	}

	appendChildren(ctx, c.store, c.logger, existing.ID, record)
	c.logger.Info("merged restaurant into existing record",
		zap.Uint("id", existing.ID),
		zap.String("name", record.Restaurant.Name),
		zap.String("source", record.Restaurant.Source),
		zap.String("reason", string(matched.Reason)),
		zap.Float64("distance_m", matched.Distance))

	return &Result{Action: ActionMerged, ID: existing.ID}, nil
}

// appendChildren adds reviews and working hours to a restaurant. Reviews are
// append-only and deduplicated by the store; hours are only written when the
// restaurant has none. Child failures are logged and swallowed so a bad
// review never fails the parent save.
func appendChildren(ctx context.Context, store Store, logger *zap.Logger, restaurantID uint, record importer.Record) {
	if len(record.Reviews) > 0 {
		if err := store.AddReviews(ctx, restaurantID, record.Reviews); err != nil {
			logger.Warn("failed to append reviews", zap.Uint("restaurant_id", restaurantID), zap.Error(err))
		}
	}

	if len(record.Hours) == 0 {
		return
	}

	count, err := store.CountWorkingHours(ctx, restaurantID)
	if err != nil {
		logger.Warn("failed to count working hours", zap.Uint("restaurant_id", restaurantID), zap.Error(err))

		return
	}

	if count > 0 {
		return
	}

	if err := store.AddWorkingHours(ctx, restaurantID, record.Hours); err != nil {
		logger.Warn("failed to append working hours", zap.Uint("restaurant_id", restaurantID), zap.Error(err))
	}
}

func toMatchCandidate(r *model.Restaurant) match.Candidate {
	candidate := match.Candidate{
		ID:        r.ID,
		Name:      r.Name,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
	}

	if r.Phone != nil {
		candidate.Phone = *r.Phone
	}

	return candidate
}

func toMatchCandidates(restaurants []model.Restaurant) []match.Candidate {
	candidates := make([]match.Candidate, 0, len(restaurants))
	for i := range restaurants {
		candidates = append(candidates, toMatchCandidate(&restaurants[i]))
	}

	return candidates
}

func findByID(restaurants []model.Restaurant, id uint) *model.Restaurant {
	for i := range restaurants {
		if restaurants[i].ID == id {
			return &restaurants[i]
		}
	}

	return nil
}
