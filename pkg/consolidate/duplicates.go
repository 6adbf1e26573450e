package consolidate

import (
	"context"
	"math"
	"sort"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/gastromap/gastromap-backend/pkg/match"
	"github.com/gastromap/gastromap-backend/pkg/model"
)

// Entry is one restaurant inside a duplicate group, carrying enough detail
// for an operator to decide which record to keep.
type Entry struct {
	ID       uint     `json:"id"`
	Name     string   `json:"name"`
	Address  string   `json:"address"`
	Source   string   `json:"source"`
	SourceID string   `json:"sourceId"`
	Rating   *float64 `json:"rating"`
	Reviews  int      `json:"reviews"`
	Images   int      `json:"images"`
}

// Group is a set of restaurants believed to be the same physical place.
// Similarity and Distance are the strongest name score and the widest gap
// seen across the group's matched pairs.
type Group struct {
	Restaurants []Entry  `json:"restaurants"`
	Similarity  float64  `json:"similarity"`
	Distance    float64  `json:"distance"`
	Reasons     []string `json:"reasons"`
}

// Scanner finds duplicate groups among already persisted restaurants and
// merges them on request.
type Scanner struct {
	store    Store
	resolver *match.Resolver
	logger   *zap.Logger
}

func NewScanner(store Store, resolver *match.Resolver, logger *zap.Logger) *Scanner {
	return &Scanner{store: store, resolver: resolver, logger: logger}
}

// Scan compares every active restaurant pair and clusters matches with a
// union-find pass, so transitively linked records land in one group. Same
// source pairs are eligible here, unlike during ingest.
func (s *Scanner) Scan(ctx context.Context) ([]Group, error) {
	restaurants, err := s.store.ListActiveRestaurants(ctx)
	if err != nil {
		return nil, err
	}

	return s.group(restaurants), nil
}

func (s *Scanner) group(restaurants []model.Restaurant) []Group {
	parent := make([]int, len(restaurants))
	for i := range parent {
		parent[i] = i
	}

	var find func(int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}

		return parent[i]
	}

	type matchedPair struct {
		index int
		match match.Match
		phone string
	}

	var matchedPairs []matchedPair

	for i := 0; i < len(restaurants); i++ {
		for j := i + 1; j < len(restaurants); j++ {
			a, b := toMatchCandidate(&restaurants[i]), toMatchCandidate(&restaurants[j])

			matched, ok := s.resolver.Compare(a, b)
			if !ok {
				continue
			}

			ri, rj := find(i), find(j)
			if ri != rj {
				parent[rj] = ri
			}

			matchedPairs = append(matchedPairs, matchedPair{index: i, match: matched, phone: b.Phone})
		}
	}

	reasons := make(map[int][]string)
	similarity := make(map[int]float64)
	distance := make(map[int]float64)

	for _, pair := range matchedPairs {
		root := find(pair.index)
		reasons[root] = append(reasons[root], pair.match.Describe(pair.phone))
		similarity[root] = math.Max(similarity[root], pair.match.Similarity)
		distance[root] = math.Max(distance[root], pair.match.Distance)
	}

	members := make(map[int][]int)

	for i := range restaurants {
		root := find(i)
		members[root] = append(members[root], i)
	}

	groups := make([]Group, 0)

	for root, indexes := range members {
		if len(indexes) < 2 {
			continue
		}

		group := Group{
			Similarity: similarity[root],
			Distance:   distance[root],
			Reasons:    dedupeStrings(reasons[root]),
		}
		for _, idx := range indexes {
			group.Restaurants = append(group.Restaurants, toEntry(&restaurants[idx]))
		}

		sort.Slice(group.Restaurants, func(a, b int) bool {
			return group.Restaurants[a].ID < group.Restaurants[b].ID
		})

		groups = append(groups, group)
	}

	// Largest groups first; ties broken by lowest member id so the output
	// is stable across runs.
	sort.Slice(groups, func(a, b int) bool {
		if len(groups[a].Restaurants) != len(groups[b].Restaurants) {
			return len(groups[a].Restaurants) > len(groups[b].Restaurants)
		}

		return groups[a].Restaurants[0].ID < groups[b].Restaurants[0].ID
	})

	return groups
}

// MergeResult reports the outcome of merging a duplicate group.
type MergeResult struct {
	KeptID     uint   `json:"keptId"`
	MergedIDs  []uint `json:"mergedIds"`
	MovedHours bool   `json:"movedHours"`
}

// Merge collapses mergeIDs into keepID inside one transaction: the keeper is
// enriched field by field, reviews are re-parented, hours copied only when
// the keeper has none, and the losers are hard-deleted. A failure at any
// step rolls the whole group back.
func (s *Scanner) Merge(ctx context.Context, keepID uint, mergeIDs []uint) (*MergeResult, error) {
	mergeIDs = filterIDs(mergeIDs, keepID)
	if keepID == 0 || len(mergeIDs) == 0 {
		return nil, ErrInvalidInput
	}

	result := &MergeResult{KeptID: keepID, MergedIDs: mergeIDs}

	err := s.store.Transaction(ctx, func(tx Store) error {
		records, err := tx.ListRestaurantsByIDs(ctx, append([]uint{keepID}, mergeIDs...))
		if err != nil {
			return err
		}

		keep := findByID(records, keepID)
		if keep == nil {
			return ErrNotFound
		}

		doomed := make([]*model.Restaurant, 0, len(mergeIDs))

		for _, id := range mergeIDs {
			record := findByID(records, id)
			if record == nil {
				return ErrNotFound
			}

			doomed = append(doomed, record)
		}

		if err := tx.UpdateRestaurantFields(ctx, keepID, mergeFields(keep, doomed)); err != nil {
			return err
		}

		if err := tx.ReparentReviews(ctx, mergeIDs, keepID); err != nil {
			return err
		}

		hoursCount, err := tx.CountWorkingHours(ctx, keepID)
		if err != nil {
			return err
		}

		if hoursCount == 0 {
			for _, record := range doomed {
				count, err := tx.CountWorkingHours(ctx, record.ID)
				if err != nil {
					return err
				}

				if count == 0 {
					continue
				}

				if err := tx.MoveWorkingHours(ctx, record.ID, keepID); err != nil {
					return err
				}

				result.MovedHours = true

				break
			}
		}

		return tx.DeleteRestaurants(ctx, mergeIDs)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("merged duplicate group",
		zap.Uint("kept_id", keepID),
		zap.Uints("merged_ids", mergeIDs),
		zap.Bool("moved_hours", result.MovedHours))

	return result, nil
}

// mergeFields builds the keeper's update set from the doomed records:
// unions for images (capped) and cuisine, a review-count weighted rating,
// and keep-existing-else-first-found for scalar gaps.
func mergeFields(keep *model.Restaurant, doomed []*model.Restaurant) map[string]any {
	fields := make(map[string]any)

	images := []string(keep.Images)
	cuisine := []string(keep.Cuisine)
	parts := make([]RatingPart, 0, len(doomed)+1)
	parts = append(parts, RatingPart{Rating: keep.Rating, Count: keep.RatingCount})

	for _, record := range doomed {
		images = unionStrings(images, record.Images, maxImagesOnMerge)
		cuisine = unionStrings(cuisine, record.Cuisine, 0)
		parts = append(parts, RatingPart{Rating: record.Rating, Count: record.RatingCount})

		fillPtr(fields, "phone", keep.Phone, record.Phone)
		fillPtr(fields, "website", keep.Website, record.Website)
		fillPtr(fields, "email", keep.Email, record.Email)
		fillPtr(fields, "description", keep.Description, record.Description)
		fillPtr(fields, "brand", keep.Brand, record.Brand)
		fillPtr(fields, "price_range", keep.PriceRange, record.PriceRange)
		fillPtr(fields, "country", keep.Country, record.Country)
		fillPtr(fields, "region", keep.Region, record.Region)
		fillPtr(fields, "district", keep.District, record.District)

		fillString(fields, "address", keep.Address, record.Address)
		fillString(fields, "city", nonPlaceholder(keep.City), nonPlaceholder(record.City))
	}

	fields["images"] = datatypes.JSONSlice[string](images)
	fields["cuisine"] = datatypes.JSONSlice[string](cuisine)

	rating, count := WeightedRating(parts, keep.Rating)
	fields["rating"] = rating
	fields["rating_count"] = count

	return fields
}

func toEntry(r *model.Restaurant) Entry {
	return Entry{
		ID:       r.ID,
		Name:     r.Name,
		Address:  r.Address,
		Source:   r.Source,
		SourceID: r.SourceID,
		Rating:   r.Rating,
		Reviews:  r.RatingCount,
		Images:   len(r.Images),
	}
}

func filterIDs(ids []uint, drop uint) []uint {
	seen := make(map[uint]bool)
	out := make([]uint, 0, len(ids))

	for _, id := range ids {
		if id == 0 || id == drop || seen[id] {
			continue
		}

		seen[id] = true
		out = append(out, id)
	}

	return out
}

func dedupeStrings(values []string) []string {
	seen := make(map[string]bool)
	out := make([]string, 0, len(values))

	for _, v := range values {
		if seen[v] {
			continue
		}

		seen[v] = true
		out = append(out, v)
	}

	return out
}
