package configs_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"github.com/gastromap/gastromap-backend/configs"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) TestGetConfig_GetsNamedFile() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("testdata/config.toml", logger)

	suite.Require().NoError(err)
	suite.Equal("test.local", config.DB.Host)
	suite.Equal(1234, config.DB.Port)
	suite.Equal("testuser", config.DB.User)
	suite.Equal("test123", config.DB.Password)
	suite.Equal("testdb", config.DB.Database)
	suite.Equal(5, config.DB.MaxIdleConnections)
	suite.Equal(7, config.DB.MaxOpenConnections)
	suite.Equal(666, config.Server.Port)
	suite.Equal("secret", config.Auth.SecretKey)
	suite.Equal("apify-test-token", config.Apify.Token)
	suite.Equal("test~google-actor", config.Apify.GoogleActor)
	suite.Equal(25.0, config.Consolidation.SameSpotMeters)
	suite.Equal(0.6, config.Consolidation.NearSimilarity)
	suite.Equal(12, config.Sync.ReviewsHours)
	suite.Equal([]string{"tripmenu_web"}, config.Integrations.Restaurants)
}

func (suite *ConfigTestSuite) TestGetConfig_DefaultsApplied() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("testdata/config.toml", logger)

	suite.Require().NoError(err)
	// Unset keys fall back to their defaults.
	suite.Equal(50.0, config.Consolidation.NearMeters)
	suite.Equal(100.0, config.Consolidation.LooseMeters)
	suite.Equal(0.8, config.Consolidation.LooseSimilarity)
	suite.Equal(150.0, config.Consolidation.CandidateBoxMeters)
	suite.Equal(720, config.Sync.BasicInfoHours)
	suite.Equal(24*time.Hour*30, config.Sync.BasicInfoInterval())
	suite.Equal(12*time.Hour, config.Sync.ReviewsInterval())
}

func (suite *ConfigTestSuite) TestGetConfig_GetsEnv() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("GASTROMAP_DB_HOST", "env.local")
	suite.T().Setenv("GASTROMAP_DB_PASSWORD", "env123")
	suite.T().Setenv("GASTROMAP_APIFY_TOKEN", "env-token")

	config, err := configs.GetConfig("", logger)

	suite.Require().NoError(err)
	suite.Equal("env.local", config.DB.Host)
	suite.Equal("env123", config.DB.Password)
	suite.Equal("env-token", config.Apify.Token)
	suite.Equal(5432, config.DB.Port)
}

func (suite *ConfigTestSuite) TestGetConfig_EnvOverridesFile() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("GASTROMAP_DB_HOST", "env.local")
	suite.T().Setenv("GASTROMAP_AUTH_SECRETKEY", "envsecret")

	config, err := configs.GetConfig("testdata/config.toml", logger)

	suite.Require().NoError(err)
	suite.Equal("env.local", config.DB.Host)
	suite.Equal("envsecret", config.Auth.SecretKey)
	suite.Equal("testdb", config.DB.Database)
}

func (suite *ConfigTestSuite) TestGetConfig_MissingValues() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("", logger)

	suite.Nil(config)
	suite.EqualError(err, "DB.Host: required validation failed, DB.Password: required validation failed")
}
