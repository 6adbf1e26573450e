package tripmenuweb_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	tripmenuweb "github.com/gastromap/gastromap-backend/pkg/integrations/tripmenu-web"
)

const listingHTML = `<html><body>
<div class="restaurant-card">
  <a class="restaurant-link" href="/tashkent/restaurants/plov-center">Plov Center</a>
</div>
<div class="restaurant-card">
  <span>card without a link</span>
</div>
</body></html>`

const detailHTML = `<html><head>
<script type="application/ld+json">
{
  "@type": "Restaurant",
  "name": "Plov Center",
  "telephone": "+998 71 200-50-50",
  "priceRange": "$$",
  "servesCuisine": ["узбекская"],
  "image": ["https://img/1.jpg"],
  "openingHours": ["Monday: 9:00 – 22:00"],
  "geo": {"latitude": 41.311, "longitude": 69.24},
  "address": {"streetAddress": "ул. Навои 15", "addressLocality": "Ташкент", "addressCountry": "UZ"},
  "aggregateRating": {"ratingValue": 4.6, "reviewCount": 1500}
}
</script>
</head><body></body></html>`

func TestFindRestaurants(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/tashkent/restaurants", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(listingHTML))
	})
	mux.HandleFunc("/tashkent/restaurants/plov-center", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(detailHTML))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	integration := tripmenuweb.NewTripMenuWebIntegration(zaptest.NewLogger(t), tripmenuweb.WithBaseURL(server.URL))

	results, err := integration.FindRestaurants("Tashkent")
	require.NoError(t, err)
	require.Len(t, results, 1)

	place := results[0]
	assert.Equal(t, "Plov Center", place.Name)
	assert.Equal(t, "plov-center", string(place.ID))
	assert.Equal(t, "+998 71 200-50-50", place.Phone)
	assert.Equal(t, "ул. Навои 15", place.Address)
	assert.Equal(t, "Ташкент", place.City)
	assert.Equal(t, "UZ", place.CountryCode)
	assert.Equal(t, []string{"узбекская"}, []string(place.Category))
	assert.Equal(t, []string{"https://img/1.jpg"}, place.ImageURLs)
	require.NotNil(t, place.Location)
	assert.Equal(t, 41.311, place.Location.Lat)
	require.NotNil(t, place.Rating)
	assert.Equal(t, 4.6, *place.Rating)
	assert.Equal(t, 1500, place.ReviewsCount)
	assert.NotEmpty(t, place.OpeningHours)
}

func TestFindRestaurants_ListingUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(server.Close)

	integration := tripmenuweb.NewTripMenuWebIntegration(zaptest.NewLogger(t), tripmenuweb.WithBaseURL(server.URL))

	_, err := integration.FindRestaurants("Tashkent")
	require.Error(t, err)
}
