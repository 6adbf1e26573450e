package consolidate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/gastromap/gastromap-backend/mocks"
	"github.com/gastromap/gastromap-backend/pkg/consolidate"
	"github.com/gastromap/gastromap-backend/pkg/match"
	"github.com/gastromap/gastromap-backend/pkg/model"
)

type DuplicatesTestSuite struct {
	suite.Suite
	store   *mocks.Store
	scanner *consolidate.Scanner
}

func TestDuplicatesTestSuite(t *testing.T) {
	suite.Run(t, new(DuplicatesTestSuite))
}

func (suite *DuplicatesTestSuite) SetupTest() {
	suite.store = mocks.NewStore(suite.T())
	suite.scanner = consolidate.NewScanner(suite.store, match.NewResolver(match.DefaultThresholds()), zap.NewNop())
}

func active(id uint, name, source string, lat, lon float64) model.Restaurant {
	r := model.Restaurant{Name: name, Source: source, SourceID: source + "-x", Latitude: lat, Longitude: lon}
	r.ID = id

	return r
}

func (suite *DuplicatesTestSuite) TestScan_GroupsTransitively() {
	// A-B and B-C are each within 20m; A-C links through B into one group.
	restaurants := []model.Restaurant{
		active(1, "Plov Center", "google", 41.31100, 69.24000),
		active(2, "Плов Центр", "yandex", 41.31113, 69.24000),
		active(3, "Plov Centre", "twogis", 41.31126, 69.24000),
		active(9, "Другое Кафе", "google", 41.35000, 69.30000),
	}
	suite.store.EXPECT().ListActiveRestaurants(mock.Anything).Return(restaurants, nil)

	groups, err := suite.scanner.Scan(context.Background())
	suite.Require().NoError(err)
	suite.Require().Len(groups, 1)
	suite.Len(groups[0].Restaurants, 3)
	suite.Equal(uint(1), groups[0].Restaurants[0].ID)
	suite.Equal(uint(3), groups[0].Restaurants[2].ID)
	suite.NotEmpty(groups[0].Reasons)
}

func (suite *DuplicatesTestSuite) TestScan_SameSourcePairsEligible() {
	restaurants := []model.Restaurant{
		active(1, "Кафе Дружба", "google", 41.311, 69.24),
		active(2, "Кафе Дружба", "google", 41.31105, 69.24),
	}
	suite.store.EXPECT().ListActiveRestaurants(mock.Anything).Return(restaurants, nil)

	groups, err := suite.scanner.Scan(context.Background())
	suite.Require().NoError(err)
	suite.Require().Len(groups, 1)
}

func (suite *DuplicatesTestSuite) TestScan_LargestGroupFirst() {
	restaurants := []model.Restaurant{
		active(1, "Plov Center", "google", 41.311, 69.24),
		active(2, "Plov Center", "yandex", 41.31105, 69.24),
		active(3, "Plov Center", "twogis", 41.3111, 69.24),
		active(7, "Чайхона Навруз", "google", 41.35, 69.3),
		active(8, "Чайхона Навруз", "yandex", 41.35005, 69.3),
	}
	suite.store.EXPECT().ListActiveRestaurants(mock.Anything).Return(restaurants, nil)

	groups, err := suite.scanner.Scan(context.Background())
	suite.Require().NoError(err)
	suite.Require().Len(groups, 2)
	suite.Len(groups[0].Restaurants, 3)
	suite.Len(groups[1].Restaurants, 2)
}

func (suite *DuplicatesTestSuite) TestScan_ReportsStrongestSimilarityAndWidestDistance() {
	// Identical names a few meters apart; the group should carry the 1.0
	// name score and the widest of the pair distances (about 11m for 1-3).
	restaurants := []model.Restaurant{
		active(1, "Plov Center", "google", 41.311, 69.24),
		active(2, "Plov Center", "yandex", 41.31105, 69.24),
		active(3, "Plov Center", "twogis", 41.3111, 69.24),
	}
	suite.store.EXPECT().ListActiveRestaurants(mock.Anything).Return(restaurants, nil)

	groups, err := suite.scanner.Scan(context.Background())
	suite.Require().NoError(err)
	suite.Require().Len(groups, 1)
	suite.InDelta(1.0, groups[0].Similarity, 0.001)
	suite.Greater(groups[0].Distance, 8.0)
	suite.Less(groups[0].Distance, 20.0)
}

func (suite *DuplicatesTestSuite) TestScan_Deterministic() {
	restaurants := []model.Restaurant{
		active(1, "Plov Center", "google", 41.311, 69.24),
		active(2, "Plov Center", "yandex", 41.31105, 69.24),
		active(7, "Чайхона Навруз", "google", 41.35, 69.3),
		active(8, "Чайхона Навруз", "yandex", 41.35005, 69.3),
	}
	suite.store.EXPECT().ListActiveRestaurants(mock.Anything).Return(restaurants, nil).Twice()

	first, err := suite.scanner.Scan(context.Background())
	suite.Require().NoError(err)

	second, err := suite.scanner.Scan(context.Background())
	suite.Require().NoError(err)
	suite.Equal(first, second)
}

func (suite *DuplicatesTestSuite) TestScan_NoDuplicatesYieldsEmptySlice() {
	restaurants := []model.Restaurant{
		active(1, "Plov Center", "google", 41.311, 69.24),
		active(2, "Чайхона Навруз", "yandex", 41.35, 69.3),
	}
	suite.store.EXPECT().ListActiveRestaurants(mock.Anything).Return(restaurants, nil)

	groups, err := suite.scanner.Scan(context.Background())
	suite.Require().NoError(err)
	suite.Empty(groups)
}

func (suite *DuplicatesTestSuite) expectTransaction() {
	suite.store.EXPECT().Transaction(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(consolidate.Store) error) error {
			return fn(suite.store)
		})
}

func (suite *DuplicatesTestSuite) TestMerge_EnrichesKeeperAndDeletesLosers() {
	keep := active(1, "Plov Center", "google", 41.311, 69.24)
	keep.Rating = pointy.Float64(4.0)
	keep.RatingCount = 100
	keep.Images = datatypes.JSONSlice[string]{"a.jpg"}

	loser := active(2, "Плов Центр", "yandex", 41.31105, 69.24)
	loser.Rating = pointy.Float64(5.0)
	loser.RatingCount = 50
	loser.Images = datatypes.JSONSlice[string]{"b.jpg"}
	loser.Phone = pointy.String("+998712005050")

	var captured map[string]any

	suite.expectTransaction()
	suite.store.EXPECT().ListRestaurantsByIDs(mock.Anything, []uint{1, 2}).Return([]model.Restaurant{keep, loser}, nil)
	suite.store.EXPECT().UpdateRestaurantFields(mock.Anything, uint(1), mock.Anything).
		Run(func(_ context.Context, _ uint, fields map[string]any) { captured = fields }).
		Return(nil)
	suite.store.EXPECT().ReparentReviews(mock.Anything, []uint{2}, uint(1)).Return(nil)
	suite.store.EXPECT().CountWorkingHours(mock.Anything, uint(1)).Return(int64(7), nil)
	suite.store.EXPECT().DeleteRestaurants(mock.Anything, []uint{2}).Return(nil)

	result, err := suite.scanner.Merge(context.Background(), 1, []uint{2})
	suite.Require().NoError(err)
	suite.Equal(uint(1), result.KeptID)
	suite.Equal([]uint{2}, result.MergedIDs)
	suite.False(result.MovedHours)

	rating, ok := captured["rating"].(*float64)
	suite.Require().True(ok)
	suite.InDelta(4.3, *rating, 0.001)
	suite.Equal(150, captured["rating_count"])
	suite.Equal(datatypes.JSONSlice[string]{"a.jpg", "b.jpg"}, captured["images"])
	suite.Equal("+998712005050", captured["phone"])
}

func (suite *DuplicatesTestSuite) TestMerge_MovesHoursWhenKeeperHasNone() {
	keep := active(1, "Plov Center", "google", 41.311, 69.24)
	loserA := active(2, "Плов Центр", "yandex", 41.31105, 69.24)
	loserB := active(3, "Plov Centre", "twogis", 41.3111, 69.24)

	suite.expectTransaction()
	suite.store.EXPECT().ListRestaurantsByIDs(mock.Anything, []uint{1, 2, 3}).
		Return([]model.Restaurant{keep, loserA, loserB}, nil)
	suite.store.EXPECT().UpdateRestaurantFields(mock.Anything, uint(1), mock.Anything).Return(nil)
	suite.store.EXPECT().ReparentReviews(mock.Anything, []uint{2, 3}, uint(1)).Return(nil)
	suite.store.EXPECT().CountWorkingHours(mock.Anything, uint(1)).Return(int64(0), nil)
	suite.store.EXPECT().CountWorkingHours(mock.Anything, uint(2)).Return(int64(0), nil)
	suite.store.EXPECT().CountWorkingHours(mock.Anything, uint(3)).Return(int64(5), nil)
	suite.store.EXPECT().MoveWorkingHours(mock.Anything, uint(3), uint(1)).Return(nil)
	suite.store.EXPECT().DeleteRestaurants(mock.Anything, []uint{2, 3}).Return(nil)

	result, err := suite.scanner.Merge(context.Background(), 1, []uint{2, 3})
	suite.Require().NoError(err)
	suite.True(result.MovedHours)
}

func (suite *DuplicatesTestSuite) TestMerge_MissingKeeperRollsBack() {
	suite.expectTransaction()
	suite.store.EXPECT().ListRestaurantsByIDs(mock.Anything, []uint{1, 2}).Return(nil, nil)

	result, err := suite.scanner.Merge(context.Background(), 1, []uint{2})
	suite.Require().ErrorIs(err, consolidate.ErrNotFound)
	suite.Nil(result)
	suite.store.AssertNotCalled(suite.T(), "DeleteRestaurants", mock.Anything, mock.Anything)
}

func (suite *DuplicatesTestSuite) TestMerge_FailedDeleteAbortsTransaction() {
	keep := active(1, "Plov Center", "google", 41.311, 69.24)
	loser := active(2, "Плов Центр", "yandex", 41.31105, 69.24)

	suite.expectTransaction()
	suite.store.EXPECT().ListRestaurantsByIDs(mock.Anything, []uint{1, 2}).Return([]model.Restaurant{keep, loser}, nil)
	suite.store.EXPECT().UpdateRestaurantFields(mock.Anything, uint(1), mock.Anything).Return(nil)
	suite.store.EXPECT().ReparentReviews(mock.Anything, []uint{2}, uint(1)).Return(nil)
	suite.store.EXPECT().CountWorkingHours(mock.Anything, uint(1)).Return(int64(1), nil)
	suite.store.EXPECT().DeleteRestaurants(mock.Anything, []uint{2}).Return(errors.New("deadlock detected"))

	result, err := suite.scanner.Merge(context.Background(), 1, []uint{2})
	suite.Require().Error(err)
	suite.Nil(result)
}

func (suite *DuplicatesTestSuite) TestMerge_RejectsEmptyOrSelfMerge() {
	_, err := suite.scanner.Merge(context.Background(), 1, nil)
	suite.Require().ErrorIs(err, consolidate.ErrInvalidInput)

	_, err = suite.scanner.Merge(context.Background(), 1, []uint{1})
	suite.Require().ErrorIs(err, consolidate.ErrInvalidInput)
}
