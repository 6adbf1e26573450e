package consolidate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/gastromap/gastromap-backend/mocks"
	"github.com/gastromap/gastromap-backend/pkg/consolidate"
	"github.com/gastromap/gastromap-backend/pkg/importer"
	"github.com/gastromap/gastromap-backend/pkg/match"
	"github.com/gastromap/gastromap-backend/pkg/model"
)

type ConsolidateTestSuite struct {
	suite.Suite
	store        *mocks.Store
	consolidator *consolidate.Consolidator
	observedLogs *observer.ObservedLogs
}

func TestConsolidateTestSuite(t *testing.T) {
	suite.Run(t, new(ConsolidateTestSuite))
}

func (suite *ConsolidateTestSuite) SetupTest() {
	suite.store = mocks.NewStore(suite.T())
	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs
	resolver := match.NewResolver(match.DefaultThresholds())
	suite.consolidator = consolidate.NewConsolidator(suite.store, resolver, 150, zap.New(observedZapCore))
}

func record(name, source, sourceID string, lat, lon float64) importer.Record {
	return importer.Record{
		Restaurant: model.Restaurant{
			Name:      name,
			Source:    source,
			SourceID:  sourceID,
			Latitude:  lat,
			Longitude: lon,
		},
	}
}

func (suite *ConsolidateTestSuite) TestSave_CreatesWhenNoMatch() {
	suite.store.EXPECT().ListMatchCandidates(mock.Anything, mock.Anything).Return(nil, nil)
	suite.store.EXPECT().FindRestaurantBySource(mock.Anything, "google", "g-1").Return(nil, nil)
	suite.store.EXPECT().CreateRestaurant(mock.Anything, mock.Anything).
		Run(func(_ context.Context, restaurant *model.Restaurant) { restaurant.ID = 42 }).
		Return(nil)

	result, err := suite.consolidator.Save(context.Background(), record("Plov Center", "google", "g-1", 41.311, 69.24))
	suite.Require().NoError(err)
	suite.Equal(consolidate.ActionCreated, result.Action)
	suite.Equal(uint(42), result.ID)
	suite.Equal(1, suite.observedLogs.FilterMessage("created restaurant").Len())
}

func (suite *ConsolidateTestSuite) TestSave_MergesIntoCrossSourceMatch() {
	// ~11m north of the incoming record: same-spot territory.
	existing := model.Restaurant{Name: "Плов Центр", Source: "yandex", SourceID: "y-9", Latitude: 41.3111, Longitude: 69.24}
	existing.ID = 7

	suite.store.EXPECT().ListMatchCandidates(mock.Anything, mock.Anything).Return([]model.Restaurant{existing}, nil)
	suite.store.EXPECT().UpdateRestaurantFields(mock.Anything, uint(7), mock.Anything).Return(nil)

	result, err := suite.consolidator.Save(context.Background(), record("Plov Center", "google", "g-1", 41.311, 69.24))
	suite.Require().NoError(err)
	suite.Equal(consolidate.ActionMerged, result.Action)
	suite.Equal(uint(7), result.ID)
	suite.Equal(1, suite.observedLogs.FilterMessage("merged restaurant into existing record").Len())
}

func (suite *ConsolidateTestSuite) TestSave_RescrapeUpdatesOwnRow() {
	// The only nearby record is the restaurant's own previous scrape, so
	// this is a refresh rather than a cross-source merge.
	existing := model.Restaurant{Name: "Plov Center", Source: "google", SourceID: "g-1", Latitude: 41.311, Longitude: 69.24}
	existing.ID = 5

	suite.store.EXPECT().ListMatchCandidates(mock.Anything, mock.Anything).Return([]model.Restaurant{existing}, nil)
	suite.store.EXPECT().FindRestaurantBySource(mock.Anything, "google", "g-1").Return(&existing, nil)
	suite.store.EXPECT().UpdateRestaurantFields(mock.Anything, uint(5), mock.Anything).Return(nil)

	result, err := suite.consolidator.Save(context.Background(), record("Plov Center", "google", "g-1", 41.311, 69.24))
	suite.Require().NoError(err)
	suite.Equal(consolidate.ActionUpdated, result.Action)
	suite.Equal(uint(5), result.ID)
}

func (suite *ConsolidateTestSuite) TestSave_AppendsChildrenOnCreate() {
	rec := record("Plov Center", "google", "g-1", 41.311, 69.24)
	rec.Reviews = []model.Review{{Author: "Аноним", Rating: 5, Text: "Вкусно"}}
	rec.Hours = []model.WorkingHours{{DayOfWeek: 1, OpensAt: "09:00", ClosesAt: "22:00"}}

	suite.store.EXPECT().ListMatchCandidates(mock.Anything, mock.Anything).Return(nil, nil)
	suite.store.EXPECT().FindRestaurantBySource(mock.Anything, "google", "g-1").Return(nil, nil)
	suite.store.EXPECT().CreateRestaurant(mock.Anything, mock.Anything).
		Run(func(_ context.Context, restaurant *model.Restaurant) { restaurant.ID = 42 }).
		Return(nil)
	suite.store.EXPECT().AddReviews(mock.Anything, uint(42), rec.Reviews).Return(nil)
	suite.store.EXPECT().CountWorkingHours(mock.Anything, uint(42)).Return(int64(0), nil)
	suite.store.EXPECT().AddWorkingHours(mock.Anything, uint(42), rec.Hours).Return(nil)

	_, err := suite.consolidator.Save(context.Background(), rec)
	suite.Require().NoError(err)
}

func (suite *ConsolidateTestSuite) TestSave_HoursKeptWhenTargetAlreadyHasThem() {
	rec := record("Plov Center", "google", "g-1", 41.311, 69.24)
	rec.Hours = []model.WorkingHours{{DayOfWeek: 1, OpensAt: "09:00", ClosesAt: "22:00"}}

	existing := model.Restaurant{Name: "Плов Центр", Source: "yandex", SourceID: "y-9", Latitude: 41.3111, Longitude: 69.24}
	existing.ID = 7

	suite.store.EXPECT().ListMatchCandidates(mock.Anything, mock.Anything).Return([]model.Restaurant{existing}, nil)
	suite.store.EXPECT().UpdateRestaurantFields(mock.Anything, uint(7), mock.Anything).Return(nil)
	suite.store.EXPECT().CountWorkingHours(mock.Anything, uint(7)).Return(int64(7), nil)

	_, err := suite.consolidator.Save(context.Background(), rec)
	suite.Require().NoError(err)
	suite.store.AssertNotCalled(suite.T(), "AddWorkingHours", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ConsolidateTestSuite) TestSave_ReviewFailureDoesNotFailSave() {
	rec := record("Plov Center", "google", "g-1", 41.311, 69.24)
	rec.Reviews = []model.Review{{Author: "Аноним", Rating: 5}}

	suite.store.EXPECT().ListMatchCandidates(mock.Anything, mock.Anything).Return(nil, nil)
	suite.store.EXPECT().FindRestaurantBySource(mock.Anything, "google", "g-1").Return(nil, nil)
	suite.store.EXPECT().CreateRestaurant(mock.Anything, mock.Anything).Return(nil)
	suite.store.EXPECT().AddReviews(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("constraint violation"))

	result, err := suite.consolidator.Save(context.Background(), rec)
	suite.Require().NoError(err)
	suite.Equal(consolidate.ActionCreated, result.Action)
	suite.Equal(1, suite.observedLogs.FilterMessage("failed to append reviews").Len())
}

func (suite *ConsolidateTestSuite) TestSave_RejectsRecordWithoutCoordinates() {
	rec := importer.Record{Restaurant: model.Restaurant{Name: "Кафе", Source: "google", SourceID: "g-2"}}

	result, err := suite.consolidator.Save(context.Background(), rec)
	suite.Require().ErrorIs(err, importer.ErrInvalidRecord)
	suite.Nil(result)
}

func (suite *ConsolidateTestSuite) TestSave_PhoneMatchBeatsDistance() {
	// 2km away but sharing a phone number: merged, not created.
	existing := model.Restaurant{
		Name:      "Filial Plov Center",
		Source:    "twogis",
		SourceID:  "t-3",
		Phone:     pointy.String("+998 71 200-50-50"),
		Latitude:  41.329,
		Longitude: 69.24,
	}
	existing.ID = 11

	rec := record("Plov Center", "google", "g-1", 41.311, 69.24)
	rec.Restaurant.Phone = pointy.String("998712005050")

	suite.store.EXPECT().ListMatchCandidates(mock.Anything, mock.Anything).Return([]model.Restaurant{existing}, nil)
	suite.store.EXPECT().UpdateRestaurantFields(mock.Anything, uint(11), mock.Anything).Return(nil)

	result, err := suite.consolidator.Save(context.Background(), rec)
	suite.Require().NoError(err)
	suite.Equal(consolidate.ActionMerged, result.Action)
}
