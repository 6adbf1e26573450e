package consolidate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/gastromap/gastromap-backend/mocks"
	"github.com/gastromap/gastromap-backend/pkg/consolidate"
	"github.com/gastromap/gastromap-backend/pkg/importer"
	"github.com/gastromap/gastromap-backend/pkg/model"
)

type EnrichTestSuite struct {
	suite.Suite
	store    *mocks.Store
	enricher *consolidate.Enricher
}

func TestEnrichTestSuite(t *testing.T) {
	suite.Run(t, new(EnrichTestSuite))
}

func (suite *EnrichTestSuite) SetupTest() {
	suite.store = mocks.NewStore(suite.T())
	suite.enricher = consolidate.NewEnricher(suite.store, zap.NewNop())
}

func photoless(id uint, name string, lat, lon float64) model.Restaurant {
	r := model.Restaurant{Name: name, Source: "import", SourceID: "import-x", Latitude: lat, Longitude: lon}
	r.ID = id

	return r
}

func (suite *EnrichTestSuite) TestApply_FillsNearestPhotolessMatch() {
	withPhotos := photoless(2, "Plov Center", 41.31101, 69.24)
	withPhotos.Images = datatypes.JSONSlice[string]{"a.jpg"}

	restaurants := []model.Restaurant{
		photoless(1, "Plov Center", 41.311, 69.24),
		withPhotos,
		photoless(3, "Чайхона Навруз", 41.35, 69.3),
	}
	suite.store.EXPECT().ListActiveRestaurants(mock.Anything).Return(restaurants, nil)

	var captured map[string]any

	suite.store.EXPECT().UpdateRestaurantFields(mock.Anything, uint(1), mock.Anything).
		Run(func(_ context.Context, _ uint, fields map[string]any) { captured = fields }).
		Return(nil)

	items := []importer.RawPlace{{
		Title:     "Plov Center",
		PlaceID:   "g-1",
		Latitude:  41.31102,
		Longitude: 69.24,
		Phone:     "+998712005050",
		ImageURLs: []string{"fresh.jpg"},
	}}

	stats, err := suite.enricher.Apply(context.Background(), items, "google")
	suite.Require().NoError(err)
	suite.Equal(1, stats.Updated)
	suite.Equal(0, stats.Unmatched)
	suite.Equal("+998712005050", captured["phone"])
	suite.Equal(datatypes.JSONSlice[string]{"fresh.jpg"}, captured["images"])
}

func (suite *EnrichTestSuite) TestApply_EditDistanceBridgesSpellingVariants() {
	restaurants := []model.Restaurant{
		photoless(1, "Чайхана Навруз", 41.311, 69.24),
	}
	suite.store.EXPECT().ListActiveRestaurants(mock.Anything).Return(restaurants, nil)
	suite.store.EXPECT().UpdateRestaurantFields(mock.Anything, uint(1), mock.Anything).Return(nil)

	items := []importer.RawPlace{{
		Title:     "Чайхона Навруз",
		Latitude:  41.31101,
		Longitude: 69.24,
		ImageURLs: []string{"x.jpg"},
	}}

	stats, err := suite.enricher.Apply(context.Background(), items, "google")
	suite.Require().NoError(err)
	suite.Equal(1, stats.Updated)
}

func (suite *EnrichTestSuite) TestApply_DistantOrUnrelatedItemsStayUnmatched() {
	restaurants := []model.Restaurant{
		photoless(1, "Plov Center", 41.311, 69.24),
	}
	suite.store.EXPECT().ListActiveRestaurants(mock.Anything).Return(restaurants, nil)

	items := []importer.RawPlace{
		// Same name, 500m off.
		{Title: "Plov Center", Latitude: 41.3155, Longitude: 69.24},
		// Next door, different place.
		{Title: "Суши Мастер", Latitude: 41.31101, Longitude: 69.24},
		// No coordinates at all.
		{Title: "Plov Center"},
	}

	stats, err := suite.enricher.Apply(context.Background(), items, "google")
	suite.Require().NoError(err)
	suite.Equal(0, stats.Updated)
	suite.Equal(3, stats.Unmatched)
	suite.store.AssertNotCalled(suite.T(), "CreateRestaurant", mock.Anything, mock.Anything)
}

func (suite *EnrichTestSuite) TestApply_NeverTargetsRestaurantsWithPhotos() {
	covered := photoless(1, "Plov Center", 41.311, 69.24)
	covered.Images = datatypes.JSONSlice[string]{"a.jpg"}

	suite.store.EXPECT().ListActiveRestaurants(mock.Anything).Return([]model.Restaurant{covered}, nil)

	items := []importer.RawPlace{{
		Title:     "Plov Center",
		Latitude:  41.31101,
		Longitude: 69.24,
		ImageURLs: []string{"fresh.jpg"},
	}}

	stats, err := suite.enricher.Apply(context.Background(), items, "google")
	suite.Require().NoError(err)
	suite.Equal(0, stats.Updated)
	suite.Equal(1, stats.Unmatched)
}
