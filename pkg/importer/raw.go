// Package importer maps provider-specific scrape payloads onto the canonical
// restaurant schema. Every maps provider names the same facts differently
// (title/name, location.lat/coordinates.latitude, imageUrls/photos), so the
// raw shape is a superset and normalization picks the first populated
// variant, the way the providers' own exports do.
package importer

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.openly.dev/pointy"

	"github.com/gastromap/gastromap-backend/pkg/model"
)

var ErrInvalidRecord = errors.New("record is missing a name or coordinates")

// FlexString unmarshals from either a JSON string or a number; 2GIS exposes
// numeric ids where Google uses strings.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}

	*f = FlexString(n.String())

	return nil
}

// RawImage accepts either a bare URL string or an {url: ...} object.
type RawImage string

func (r *RawImage) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*r = RawImage(s)

		return nil
	}

	var obj struct {
		URL      string `json:"url"`
		PhotoURL string `json:"photoUrl"`
	}

	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	if obj.URL != "" {
		*r = RawImage(obj.URL)
	} else {
		*r = RawImage(obj.PhotoURL)
	}

	return nil
}

// StringList accepts a single string or an array of strings.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = StringList{s}

		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}

	*l = StringList(list)

	return nil
}

type RawPoint struct {
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Lon       float64 `json:"lon"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type RawReview struct {
	ReviewID        FlexString `json:"reviewId"`
	Name            string     `json:"name"`
	Author          string     `json:"author"`
	Stars           float64    `json:"stars"`
	Rating          float64    `json:"rating"`
	Text            string     `json:"text"`
	Snippet         string     `json:"snippet"`
	PublishedAtDate string     `json:"publishedAtDate"`
	ProfilePhotoURL string     `json:"profilePhotoUrl"`
	LikesCount      int        `json:"likesCount"`
}

// RawPlace is the union of the record shapes produced by the supported
// scraping actors (Google Maps, Yandex Maps, 2GIS).
type RawPlace struct {
	Title string `json:"title"`
	Name  string `json:"name"`

	PlaceID FlexString `json:"placeId"`
	CID     FlexString `json:"cid"`
	ID      FlexString `json:"id"`

	Location    *RawPoint `json:"location"`
	Coordinates *RawPoint `json:"coordinates"`
	Point       *RawPoint `json:"point"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`

	Address     string `json:"address"`
	AddressName string `json:"address_name"`
	Street      string `json:"street"`
	City        string `json:"city"`
	State       string `json:"state"`
	CountryCode string `json:"countryCode"`

	Phone            string     `json:"phone"`
	PhoneUnformatted string     `json:"phoneUnformatted"`
	Phones           StringList `json:"phones"`
	Website          string     `json:"website"`
	URL              string     `json:"url"`
	GoogleMapsURL    string     `json:"googleMapsUrl"`
	Email            string     `json:"email"`

	TotalScore       *float64 `json:"totalScore"`
	Rating           *float64 `json:"rating"`
	Stars            *float64 `json:"stars"`
	ReviewsCount     int      `json:"reviewsCount"`
	UserRatingsTotal int      `json:"userRatingsTotal"`

	Price      string `json:"price"`
	PriceLevel int    `json:"priceLevel"`

	ImageURLs []string   `json:"imageUrls"`
	Images    []RawImage `json:"images"`
	Photos    []RawImage `json:"photos"`
	ImageURL  string     `json:"imageUrl"`
	Thumbnail string     `json:"thumbnail"`

	Categories   []string   `json:"categories"`
	CategoryName string     `json:"categoryName"`
	Category     StringList `json:"category"`
	Rubrics      []string   `json:"rubrics"`

	OpeningHours json.RawMessage `json:"openingHours"`
	WorkingHours json.RawMessage `json:"workingHours"`

	Reviews     []RawReview `json:"reviews"`
	ReviewsData []RawReview `json:"reviewsData"`
}

// Record is a normalized place plus the child rows that ride along with it.
type Record struct {
	Restaurant model.Restaurant
	Hours      []model.WorkingHours
	Reviews    []model.Review
}

const (
	maxImportImages  = 10
	maxImportReviews = 10
	maxSlugLength    = 50
)

// Normalize maps a raw scrape item onto the canonical schema. Records
// without a usable name or coordinates are rejected with ErrInvalidRecord so
// batch callers can skip rather than abort.
func Normalize(item RawPlace, source string) (Record, error) {
	name := firstNonEmpty(item.Title, item.Name)
	lat, lon := item.coordinates()

	if name == "" || lat == 0 || lon == 0 {
		return Record{}, ErrInvalidRecord
	}

	sourceID := string(firstNonEmpty(item.PlaceID, item.CID, item.ID))
	if sourceID == "" {
		sourceID = "import-" + uuid.NewString()
	}

	now := time.Now()
	city := normalizeCity(item.City, item.State, item.Address)

	restaurant := model.Restaurant{
		Name:        name,
		Slug:        GenerateSlug(name, sourceID),
		Source:      source,
		SourceID:    sourceID,
		SourceURL:   optional(firstNonEmpty(item.URL, item.GoogleMapsURL)),
		Address:     firstNonEmpty(item.Address, item.AddressName, item.Street),
		City:        city,
		Country:     normalizeCountry(item.CountryCode),
		Latitude:    lat,
		Longitude:   lon,
		Phone:       optional(firstPhone(item)),
		Website:     optional(firstNonEmpty(item.Website, item.URL)),
		Email:       optional(item.Email),
		Rating:      firstRating(item),
		RatingCount: maxInt(item.ReviewsCount, item.UserRatingsTotal),
		PriceRange:  optional(priceRange(item)),
		Images:      collectImages(item, maxImportImages),
		Cuisine:     collectCuisine(item),
		IsActive:    true,
		IsVerified:  false,
		LastSynced:  &now,
	}

	hoursRaw := item.OpeningHours
	if len(hoursRaw) == 0 {
		hoursRaw = item.WorkingHours
	}

	reviews := item.Reviews
	if len(reviews) == 0 {
		reviews = item.ReviewsData
	}

	return Record{
		Restaurant: restaurant,
		Hours:      ParseOpeningHours(hoursRaw),
		Reviews:    normalizeReviews(reviews, source),
	}, nil
}

func (item RawPlace) coordinates() (float64, float64) {
	for _, p := range []*RawPoint{item.Location, item.Coordinates, item.Point} {
		if p == nil {
			continue
		}

		lat := firstNonZero(p.Lat, p.Latitude)
		lon := firstNonZero(p.Lng, p.Lon, p.Longitude)

		if lat != 0 && lon != 0 {
			return lat, lon
		}
	}

	return firstNonZero(item.Latitude, item.Lat), firstNonZero(item.Longitude, item.Lng)
}

func firstPhone(item RawPlace) string {
	phone := firstNonEmpty(item.Phone, item.PhoneUnformatted)
	if phone == "" && len(item.Phones) > 0 {
		phone = item.Phones[0]
	}

	if strings.Contains(phone, "null") {
		return ""
	}

	return phone
}

func firstRating(item RawPlace) *float64 {
	for _, r := range []*float64{item.TotalScore, item.Rating, item.Stars} {
		if r != nil && *r > 0 {
			return pointy.Float64(*r)
		}
	}

	return nil
}

func priceRange(item RawPlace) string {
	if item.Price != "" {
		return item.Price
	}

	if item.PriceLevel > 0 {
		return strings.Repeat("$", item.PriceLevel)
	}

	return ""
}

func collectImages(item RawPlace, limit int) []string {
	var candidates []string

	switch {
	case len(item.ImageURLs) > 0:
		candidates = item.ImageURLs
	case len(item.Images) > 0:
		candidates = imageStrings(item.Images)
	case len(item.Photos) > 0:
		candidates = imageStrings(item.Photos)
	case item.ImageURL != "":
		candidates = []string{item.ImageURL}
	case item.Thumbnail != "":
		candidates = []string{item.Thumbnail}
	}

	images := make([]string, 0, len(candidates))

	for _, url := range candidates {
		if url == "" {
			continue
		}

		images = append(images, url)
		if len(images) == limit {
			break
		}
	}

	return images
}

func imageStrings(images []RawImage) []string {
	urls := make([]string, 0, len(images))
	for _, img := range images {
		urls = append(urls, string(img))
	}

	return urls
}

func collectCuisine(item RawPlace) []string {
	var candidates []string

	switch {
	case len(item.Categories) > 0:
		candidates = item.Categories
	case item.CategoryName != "":
		candidates = []string{item.CategoryName}
	case len(item.Category) > 0:
		candidates = item.Category
	case len(item.Rubrics) > 0:
		candidates = item.Rubrics
	}

	cuisine := make([]string, 0, len(candidates))

	for _, c := range candidates {
		if c != "" {
			cuisine = append(cuisine, c)
		}
	}

	return cuisine
}

func normalizeReviews(raw []RawReview, source string) []model.Review {
	reviews := make([]model.Review, 0, minInt(len(raw), maxImportReviews))

	for _, r := range raw {
		if len(reviews) == maxImportReviews {
			break
		}

		review := model.Review{
			Source: source,
			Author: firstNonEmpty(r.Name, r.Author),
			Rating: firstNonZero(r.Stars, r.Rating),
			Text:   firstNonEmpty(r.Text, r.Snippet),
			Likes:  r.LikesCount,
		}

		if review.Author == "" {
			review.Author = "Аноним"
		}

		if r.ReviewID != "" {
			review.ExternalID = pointy.String(string(r.ReviewID))
		}

		if r.ProfilePhotoURL != "" {
			review.AvatarURL = pointy.String(r.ProfilePhotoURL)
		}

		if r.PublishedAtDate != "" {
			if published, err := time.Parse(time.RFC3339, r.PublishedAtDate); err == nil {
				review.PublishedAt = &published
			}
		}

		reviews = append(reviews, review)
	}

	return reviews
}

var slugStrip = regexp.MustCompile(`[^a-zа-яё0-9\s]`)

// GenerateSlug builds a URL slug from the name plus a sourceId prefix for
// uniqueness across providers.
func GenerateSlug(name, sourceID string) string {
	base := strings.ToLower(name)
	base = slugStrip.ReplaceAllString(base, "")
	base = strings.Join(strings.Fields(base), "-")

	if runes := []rune(base); len(runes) > maxSlugLength {
		base = string(runes[:maxSlugLength])
	}

	suffix := sourceID
	if len(suffix) > 8 {
		suffix = suffix[:8]
	}

	return base + "-" + suffix
}

func normalizeCity(city, state, address string) string {
	if city == "" || city == "null" {
		if strings.Contains(state, "Tashkent") || strings.Contains(address, "Tashkent") {
			return "Ташкент"
		}

		return "Неизвестно"
	}

	switch city {
	case "Tashkent", "Toshkent", "Тоshkent":
		return "Ташкент"
	}

	return city
}

func normalizeCountry(code string) *string {
	switch code {
	case "":
		return nil
	case "UZ":
		return pointy.String("Узбекистан")
	default:
		return pointy.String(code)
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}

	return pointy.String(s)
}

func firstNonEmpty[T ~string](values ...T) T {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

func firstNonZero(values ...float64) float64 {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}

	return 0
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
