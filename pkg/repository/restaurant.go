package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gastromap/gastromap-backend/pkg/consolidate"
	"github.com/gastromap/gastromap-backend/pkg/geo"
	"github.com/gastromap/gastromap-backend/pkg/model"
)

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrBadQualityFilter   = errors.New("unknown quality filter")
)

// RestaurantRepository is the persistence surface the HTTP layer depends on.
type RestaurantRepository interface {
	GetRestaurantByID(ctx context.Context, id uint) (*model.Restaurant, error)
	GetRestaurantBySlug(ctx context.Context, slug string) (*model.Restaurant, error)
	ListRestaurants(ctx context.Context, filter RestaurantFilter) ([]model.Restaurant, int64, error)
	ListActiveRestaurants(ctx context.Context) ([]model.Restaurant, error)
	QualityReport(ctx context.Context) (*QualityReport, error)
	ListQualityIssues(ctx context.Context, filter QualityFilter) ([]model.Restaurant, int64, error)
	SetArchived(ctx context.Context, id uint, archived bool) error
	ArchiveMatching(ctx context.Context, issue string, archived bool) (int64, error)
}

// RestaurantFilter narrows the public listing. Zero values mean "no filter".
type RestaurantFilter struct {
	City    string
	Source  string
	Cuisine string
	Search  string
	Offset  int
	Limit   int
}

const defaultListLimit = 50

func (r *Repository) GetRestaurantByID(ctx context.Context, id uint) (*model.Restaurant, error) {
	var restaurant model.Restaurant

	result := r.DB.WithContext(ctx).
		Preload("WorkingHours").
		Preload("Reviews").
		First(&restaurant, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}

		return nil, result.Error
	}

	return &restaurant, nil
}

func (r *Repository) GetRestaurantBySlug(ctx context.Context, slug string) (*model.Restaurant, error) {
	var restaurant model.Restaurant

	result := r.DB.WithContext(ctx).
		Preload("WorkingHours").
		Preload("Reviews").
		Where("slug = ?", slug).
		First(&restaurant)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}

		return nil, result.Error
	}

	return &restaurant, nil
}

func (r *Repository) ListRestaurants(ctx context.Context, filter RestaurantFilter) ([]model.Restaurant, int64, error) {
	query := r.DB.WithContext(ctx).Model(&model.Restaurant{}).Where("is_archived = ?", false)

	if filter.City != "" {
		query = query.Where("city = ?", filter.City)
	}

	if filter.Source != "" {
		query = query.Where("source = ?", filter.Source)
	}

	if filter.Cuisine != "" {
		query = query.Where("cuisine::text LIKE ?", "%"+filter.Cuisine+"%")
	}

	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if result := query.Count(&total); result.Error != nil {
		return nil, 0, result.Error
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	var restaurants []model.Restaurant

	result := query.Order("id").Offset(filter.Offset).Limit(limit).Find(&restaurants)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return restaurants, total, nil
}

// ListMatchCandidates returns non-archived restaurants inside the bounding
// box that carry usable coordinates. A nil box returns every candidate.
func (r *Repository) ListMatchCandidates(ctx context.Context, box *geo.BoundingBox) ([]model.Restaurant, error) {
	query := r.DB.WithContext(ctx).
		Where("is_archived = ?", false).
		Where("latitude <> 0 OR longitude <> 0")

	if box != nil {
		query = query.
			Where("latitude BETWEEN ? AND ?", box.MinLat, box.MaxLat).
			Where("longitude BETWEEN ? AND ?", box.MinLon, box.MaxLon)
	}

	var restaurants []model.Restaurant

	if result := query.Find(&restaurants); result.Error != nil {
		r.Logger.Error("error listing match candidates", zap.Error(result.Error))

		return nil, result.Error
	}

	return restaurants, nil
}

func (r *Repository) ListActiveRestaurants(ctx context.Context) ([]model.Restaurant, error) {
	var restaurants []model.Restaurant

	result := r.DB.WithContext(ctx).
		Where("is_archived = ?", false).
		Order("id").
		Find(&restaurants)
	if result.Error != nil {
		return nil, result.Error
	}

	return restaurants, nil
}

func (r *Repository) ListRestaurantsByIDs(ctx context.Context, ids []uint) ([]model.Restaurant, error) {
	var restaurants []model.Restaurant

	result := r.DB.WithContext(ctx).Where("id IN (?)", ids).Find(&restaurants)
	if result.Error != nil {
		return nil, result.Error
	}

	return restaurants, nil
}

// FindRestaurantBySource looks up a record by its scrape identity. Absence
// is not an error here; the consolidation flow branches on a nil result.
func (r *Repository) FindRestaurantBySource(ctx context.Context, source, sourceID string) (*model.Restaurant, error) {
	var restaurant model.Restaurant

	result := r.DB.WithContext(ctx).
		Where("source = ? AND source_id = ?", source, sourceID).
		First(&restaurant)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, result.Error
	}

	return &restaurant, nil
}

func (r *Repository) CreateRestaurant(ctx context.Context, restaurant *model.Restaurant) error {
	if result := r.DB.WithContext(ctx).Create(restaurant); result.Error != nil {
		return result.Error
	}

	return nil
}

func (r *Repository) UpdateRestaurantFields(ctx context.Context, id uint, fields map[string]any) error {
	result := r.DB.WithContext(ctx).Model(&model.Restaurant{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrRestaurantNotFound
	}

	return nil
}

// AddReviews appends reviews to a restaurant. Reviews carrying an external
// id are deduplicated by the unique index; the rest are skipped when an
// identical author and text already exist.
func (r *Repository) AddReviews(ctx context.Context, restaurantID uint, reviews []model.Review) error {
	for index := range reviews {
		review := reviews[index]
		review.RestaurantID = restaurantID

		if review.ExternalID == nil {
			var count int64

			result := r.DB.WithContext(ctx).Model(&model.Review{}).
				Where("restaurant_id = ? AND author = ? AND text = ?", restaurantID, review.Author, review.Text).
				Count(&count)
			if result.Error != nil {
				return result.Error
			}

			if count > 0 {
				continue
			}
		}

		result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&review)
		if result.Error != nil {
			return result.Error
		}
	}

	return nil
}

func (r *Repository) CountWorkingHours(ctx context.Context, restaurantID uint) (int64, error) {
	var count int64

	result := r.DB.WithContext(ctx).Model(&model.WorkingHours{}).
		Where("restaurant_id = ?", restaurantID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

func (r *Repository) AddWorkingHours(ctx context.Context, restaurantID uint, hours []model.WorkingHours) error {
	if len(hours) == 0 {
		return nil
	}

	for index := range hours {
		hours[index].RestaurantID = restaurantID
	}

	if result := r.DB.WithContext(ctx).Create(&hours); result.Error != nil {
		return result.Error
	}

	return nil
}

func (r *Repository) ReparentReviews(ctx context.Context, fromIDs []uint, toID uint) error {
	result := r.DB.WithContext(ctx).Model(&model.Review{}).
		Where("restaurant_id IN (?)", fromIDs).
		Update("restaurant_id", toID)

	return result.Error
}

func (r *Repository) MoveWorkingHours(ctx context.Context, fromID, toID uint) error {
	result := r.DB.WithContext(ctx).Model(&model.WorkingHours{}).
		Where("restaurant_id = ?", fromID).
		Update("restaurant_id", toID)

	return result.Error
}

// DeleteRestaurants hard-deletes merged-away records. Their remaining
// children go with them through the cascade.
func (r *Repository) DeleteRestaurants(ctx context.Context, ids []uint) error {
	result := r.DB.WithContext(ctx).Unscoped().Where("id IN (?)", ids).Delete(&model.Restaurant{})

	return result.Error
}

// Transaction runs fn against a transaction-scoped copy of the repository.
func (r *Repository) Transaction(ctx context.Context, fn func(consolidate.Store) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repository{DB: tx, Logger: r.Logger})
	})
}

// QualityReport summarizes how complete the directory data is.
type QualityReport struct {
	Total              int64 `json:"total"`
	MissingPhone       int64 `json:"missingPhone"`
	MissingHours       int64 `json:"missingHours"`
	MissingImages      int64 `json:"missingImages"`
	MissingDescription int64 `json:"missingDescription"`
	Archived           int64 `json:"archived"`
}

func (r *Repository) QualityReport(ctx context.Context) (*QualityReport, error) {
	report := &QualityReport{}
	base := func() *gorm.DB {
		return r.DB.WithContext(ctx).Model(&model.Restaurant{}).Where("is_archived = ?", false)
	}

	counts := []struct {
		target *int64
		query  *gorm.DB
	}{
		{&report.Total, base()},
		{&report.MissingPhone, base().Where("phone IS NULL OR phone = ''")},
		{&report.MissingHours, base().Where("id NOT IN (?)",
			r.DB.Model(&model.WorkingHours{}).Select("restaurant_id"))},
		{&report.MissingImages, base().Where("images IS NULL OR images::text IN ('[]', 'null')")},
		{&report.MissingDescription, base().Where("description IS NULL OR description = ''")},
		{&report.Archived, r.DB.WithContext(ctx).Model(&model.Restaurant{}).Where("is_archived = ?", true)},
	}

	for _, c := range counts {
		if result := c.query.Count(c.target); result.Error != nil {
			return nil, result.Error
		}
	}

	return report, nil
}

// QualityFilter narrows the issue listing. Issue takes the filter names the
// admin panel sends: no_photos, no_reviews, no_rating, no_phone, no_hours,
// low_rating, low_quality, archived; empty means "any gap".
type QualityFilter struct {
	Issue           string
	Limit           int
	Offset          int
	IncludeArchived bool
}

const lowRatingCutoff = 3.5

func (r *Repository) qualityIssueScope(query *gorm.DB, issue string) (*gorm.DB, error) {
	switch issue {
	case "", "all":
		return query.Where(r.DB.
			Where("phone IS NULL OR phone = ''").
			Or("description IS NULL OR description = ''").
			Or("images IS NULL OR images::text IN ('[]', 'null')")), nil
	case "no_photos":
		return query.Where("images IS NULL OR images::text IN ('[]', 'null')"), nil
	case "no_reviews":
		return query.Where("rating_count = 0"), nil
	case "no_rating":
		return query.Where("rating IS NULL"), nil
	case "no_phone":
		return query.Where("phone IS NULL OR phone = ''"), nil
	case "no_hours":
		return query.Where("id NOT IN (?)",
			r.DB.Model(&model.WorkingHours{}).Select("restaurant_id")), nil
	case "low_rating":
		return query.Where("rating IS NOT NULL AND rating < ?", lowRatingCutoff), nil
	case "low_quality":
		return query.
			Where("images IS NULL OR images::text IN ('[]', 'null')").
			Where("rating IS NULL OR rating_count = 0"), nil
	default:
		return nil, ErrBadQualityFilter
	}
}

// ListQualityIssues returns restaurants with fixable gaps, worst first, plus
// the total matching the filter so the caller can paginate.
func (r *Repository) ListQualityIssues(ctx context.Context, filter QualityFilter) ([]model.Restaurant, int64, error) {
	query := r.DB.WithContext(ctx).Model(&model.Restaurant{})

	if filter.Issue == "archived" {
		query = query.Where("is_archived = ?", true)
	} else {
		if !filter.IncludeArchived {
			query = query.Where("is_archived = ?", false)
		}

		var err error

		query, err = r.qualityIssueScope(query, filter.Issue)
		if err != nil {
			return nil, 0, err
		}
	}

	var total int64
	if result := query.Count(&total); result.Error != nil {
		return nil, 0, result.Error
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	var restaurants []model.Restaurant

	result := query.
		Order("rating ASC NULLS FIRST, rating_count ASC").
		Offset(filter.Offset).
		Limit(limit).
		Find(&restaurants)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return restaurants, total, nil
}

// ArchiveMatching flips is_archived for every restaurant the filter selects
// and reports how many rows changed. Restoring with an empty issue restores
// everything that is currently archived.
func (r *Repository) ArchiveMatching(ctx context.Context, issue string, archived bool) (int64, error) {
	query := r.DB.WithContext(ctx).Model(&model.Restaurant{}).
		Where("is_archived = ?", !archived)

	if archived || issue != "" {
		var err error

		query, err = r.qualityIssueScope(query, issue)
		if err != nil {
			return 0, err
		}
	}

	result := query.Update("is_archived", archived)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func (r *Repository) SetArchived(ctx context.Context, id uint, archived bool) error {
	result := r.DB.WithContext(ctx).Model(&model.Restaurant{}).
		Where("id = ?", id).
		Update("is_archived", archived)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrRestaurantNotFound
	}

	return nil
}
