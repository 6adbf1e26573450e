package tripmenuweb

import (
	"encoding/json"
	"strings"

	"github.com/gocolly/colly/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/gastromap/gastromap-backend/pkg/importer"
)

// RestaurantJSON is the schema.org Restaurant block embedded in detail
// pages.
type RestaurantJSON struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Telephone     string `json:"telephone"`
	URL           string `json:"url"`
	PriceRange    string `json:"priceRange"`
	ServesCuisine importer.StringList `json:"servesCuisine"`
	Image         importer.StringList `json:"image"`
	OpeningHours  importer.StringList `json:"openingHours"`
	Geo           struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"geo"`
	Address struct {
		StreetAddress   string `json:"streetAddress"`
		AddressLocality string `json:"addressLocality"`
		AddressCountry  string `json:"addressCountry"`
	} `json:"address"`
	AggregateRating struct {
		RatingValue float64 `json:"ratingValue"`
		ReviewCount int     `json:"reviewCount"`
	} `json:"aggregateRating"`
}

// FindRestaurants walks the directory listing for a city and returns raw
// places ready for the importer.
func (t *TripMenuWebIntegration) FindRestaurants(city string) ([]importer.RawPlace, error) {
	collector := colly.NewCollector()

	var (
		errs    error
		results []importer.RawPlace
	)

	collector.OnHTML(".restaurant-card", func(element *colly.HTMLElement) {
		detailURL := element.ChildAttr("a.restaurant-link", "href")
		if detailURL == "" {
			return
		}

		place, err := t.getRestaurantFromURI(element.Request.AbsoluteURL(detailURL), collector)
		if multierr.AppendInto(&errs, err) {
			return
		}

		if place.Name == "" {
			t.logger.Warn("detail page carried no restaurant data", zap.String("url", detailURL))

			return
		}

		results = append(results, place)
	})

	multierr.AppendInto(&errs, collector.Visit(t.baseURL+"/"+strings.ToLower(strings.TrimSpace(city))+"/restaurants"))

	return results, errs
}

func (t *TripMenuWebIntegration) getRestaurantFromURI(uri string, collector *colly.Collector) (importer.RawPlace, error) {
	var place importer.RawPlace

	detail := collector.Clone()

	detail.OnHTML("script[type='application/ld+json']", func(element *colly.HTMLElement) {
		var restaurant RestaurantJSON
		if err := json.Unmarshal([]byte(element.Text), &restaurant); err != nil {
			t.logger.Error("failed to parse restaurant json-ld", zap.String("url", uri), zap.Error(err))

			return
		}

		if restaurant.Name == "" {
			return
		}

		hours, _ := json.Marshal([]string(restaurant.OpeningHours))

		place = importer.RawPlace{
			Name:         restaurant.Name,
			ID:           importer.FlexString(slugFromURI(uri)),
			URL:          uri,
			Phone:        restaurant.Telephone,
			Address:      restaurant.Address.StreetAddress,
			City:         restaurant.Address.AddressLocality,
			CountryCode:  restaurant.Address.AddressCountry,
			Price:        restaurant.PriceRange,
			Category:     importer.StringList(restaurant.ServesCuisine),
			ImageURLs:    restaurant.Image,
			OpeningHours: hours,
			Location: &importer.RawPoint{
				Lat: restaurant.Geo.Latitude,
				Lng: restaurant.Geo.Longitude,
			},
			ReviewsCount: restaurant.AggregateRating.ReviewCount,
		}

		if restaurant.AggregateRating.RatingValue > 0 {
			rating := restaurant.AggregateRating.RatingValue
			place.Rating = &rating
		}
	})

	if err := detail.Visit(uri); err != nil {
		return importer.RawPlace{}, err
	}

	detail.Wait()

	return place, nil
}

// slugFromURI keeps the last path segment as the stable source id.
func slugFromURI(uri string) string {
	trimmed := strings.TrimRight(uri, "/")

	return trimmed[strings.LastIndex(trimmed, "/")+1:]
}
