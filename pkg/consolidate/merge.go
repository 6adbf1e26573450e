package consolidate

import (
	"math"
	"time"

	"gorm.io/datatypes"

	"github.com/gastromap/gastromap-backend/pkg/model"
)

const (
	// Image caps: imports keep a short list, operator merges may keep more
	// because they combine several sources at once.
	maxImagesOnIngest = 10
	maxImagesOnMerge  = 15
)

// FillFields computes the column updates for folding an incoming record into
// an existing one at ingestion time. Policy: never downgrade a non-null
// value to null, only fill gaps; rating and last-synced always prefer the
// fresh scrape; the rating count keeps the larger of the two values; images
// and cuisines are unioned.
func FillFields(existing *model.Restaurant, incoming *model.Restaurant) map[string]any {
	fields := make(map[string]any)

	fillString(fields, "address", existing.Address, incoming.Address)
	fillString(fields, "city", nonPlaceholder(existing.City), nonPlaceholder(incoming.City))
	fillPtr(fields, "country", existing.Country, incoming.Country)
	fillPtr(fields, "region", existing.Region, incoming.Region)
	fillPtr(fields, "district", existing.District, incoming.District)
	fillPtr(fields, "phone", existing.Phone, incoming.Phone)
	fillPtr(fields, "website", existing.Website, incoming.Website)
	fillPtr(fields, "email", existing.Email, incoming.Email)
	fillPtr(fields, "description", existing.Description, incoming.Description)
	fillPtr(fields, "brand", existing.Brand, incoming.Brand)
	fillPtr(fields, "price_range", existing.PriceRange, incoming.PriceRange)
	fillPtr(fields, "source_url", existing.SourceURL, incoming.SourceURL)

	if incoming.Rating != nil {
		fields["rating"] = roundRating(*incoming.Rating)
	}

	if incoming.RatingCount > existing.RatingCount {
		fields["rating_count"] = incoming.RatingCount
	}

	if images := unionStrings(existing.Images, incoming.Images, maxImagesOnIngest); len(images) > len(existing.Images) {
		fields["images"] = datatypes.JSONSlice[string](images)
	}

	if cuisine := unionStrings(existing.Cuisine, incoming.Cuisine, 0); len(cuisine) > len(existing.Cuisine) {
		fields["cuisine"] = datatypes.JSONSlice[string](cuisine)
	}

	fields["last_synced"] = time.Now()

	return fields
}

// RatingPart is one constituent of a weighted rating merge.
type RatingPart struct {
	Rating *float64
	Count  int
}

// WeightedRating combines constituent ratings weighted by review count.
// Constituents without a rating contribute nothing; a zero total weight
// keeps the fallback rating untouched.
func WeightedRating(parts []RatingPart, fallback *float64) (*float64, int) {
	var (
		weighted   float64
		totalCount int
	)

	for _, p := range parts {
		if p.Rating == nil {
			continue
		}

		weighted += *p.Rating * float64(p.Count)
		totalCount += p.Count
	}

	if totalCount == 0 {
		return fallback, 0
	}

	rounded := roundRating(weighted / float64(totalCount))

	return &rounded, totalCount
}

func roundRating(r float64) float64 {
	return math.Round(r*10) / 10
}

func unionStrings(base, extra []string, limit int) []string {
	seen := make(map[string]struct{}, len(base)+len(extra))
	union := make([]string, 0, len(base)+len(extra))

	appendAll := func(values []string) {
		for _, v := range values {
			if v == "" {
				continue
			}

			if _, found := seen[v]; found {
				continue
			}

			seen[v] = struct{}{}
			union = append(union, v)
		}
	}

	appendAll(base)
	appendAll(extra)

	if limit > 0 && len(union) > limit {
		union = union[:limit]
	}

	return union
}

// The fill helpers are first-write-wins: when several donors could fill the
// same gap, the earliest one found sticks.
func fillString(fields map[string]any, column, existing, incoming string) {
	if _, done := fields[column]; done {
		return
	}

	if existing == "" && incoming != "" {
		fields[column] = incoming
	}
}

func fillPtr(fields map[string]any, column string, existing, incoming *string) {
	if _, done := fields[column]; done {
		return
	}

	if existing == nil && incoming != nil && *incoming != "" {
		fields[column] = *incoming
	}
}

// nonPlaceholder treats the importer's unknown-city marker as absent so a
// later batch with a real city can fill it.
func nonPlaceholder(city string) string {
	if city == "Неизвестно" {
		return ""
	}

	return city
}
