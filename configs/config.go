package configs

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/kkyr/fig"
	"go.uber.org/zap"
)

type DB struct {
	Host               string `validate:"required"`
	Port               int    `default:"5432"`
	User               string `default:"postgres"`
	Password           string `validate:"required"`
	Database           string `default:"postgres"`
	MaxIdleConnections int    `default:"10"`
	MaxOpenConnections int    `default:"10"`
}

type Server struct {
	Port int `default:"8080"`
}

type Auth struct {
	SecretKey string
	Audience  string
	Domain    string
}

// Apify holds the actor-platform credentials and the actor ids used per
// scrape source.
type Apify struct {
	Token       string
	GoogleActor string `default:"compass~crawler-google-places"`
	YandexActor string `default:"ultimate~yandex-maps-scraper"`
	TwoGISActor string `default:"krasnoludkowie~2gis-scraper"`
}

// Actors maps source names onto actor ids, skipping unconfigured ones.
func (a Apify) Actors() map[string]string {
	actors := make(map[string]string, 3)

	for source, actor := range map[string]string{
		"google": a.GoogleActor,
		"yandex": a.YandexActor,
		"2gis":   a.TwoGISActor,
	} {
		if actor != "" {
			actors[source] = actor
		}
	}

	return actors
}

// Consolidation carries the duplicate-matching thresholds.
type Consolidation struct {
	SameSpotMeters     float64 `default:"20"`
	NearMeters         float64 `default:"50"`
	NearSimilarity     float64 `default:"0.5"`
	LooseMeters        float64 `default:"100"`
	LooseSimilarity    float64 `default:"0.8"`
	CandidateBoxMeters float64 `default:"150"`
}

// Sync holds the smart-sync cooldowns, in hours.
type Sync struct {
	BasicInfoHours int `default:"720"`
	ReviewsHours   int `default:"24"`
	PhotosHours    int `default:"336"`
	HoursHours     int `default:"168"`
}

func (s Sync) BasicInfoInterval() time.Duration { return time.Duration(s.BasicInfoHours) * time.Hour }
func (s Sync) ReviewsInterval() time.Duration   { return time.Duration(s.ReviewsHours) * time.Hour }
func (s Sync) PhotosInterval() time.Duration    { return time.Duration(s.PhotosHours) * time.Hour }
func (s Sync) HoursInterval() time.Duration     { return time.Duration(s.HoursHours) * time.Hour }

type Integrations struct {
	Restaurants []string `default:"tripmenu_web"`
}

type Config struct {
	DB            DB
	Server        Server
	Auth          Auth
	Apify         Apify
	Consolidation Consolidation
	Sync          Sync
	Integrations  Integrations
}

const envPrefix = "GASTROMAP" // env prefix for env vars

var ErrConfiguration = errors.New("configuration error")

func GetConfig(configFileName string, logger *zap.Logger) (*Config, error) {
	config := Config{}
	homeDir, _ := os.UserHomeDir()

	logger.Info("Loading config", zap.String("file", configFileName))

	err := fig.Load(&config, fig.File(configFileName), fig.Dirs(".", homeDir), fig.UseEnv(envPrefix))
	if err != nil {
		if strings.Contains(err.Error(), "file not found") {
			logger.Warn("Could not find config file", zap.String("file", configFileName))

			err = fig.Load(&config, fig.IgnoreFile(), fig.UseEnv(envPrefix))
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	return &config, nil
}
