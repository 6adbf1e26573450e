package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/gastromap/gastromap-backend/configs"
	"github.com/gastromap/gastromap-backend/pkg/consolidate"
	"github.com/gastromap/gastromap-backend/pkg/importer"
	"github.com/gastromap/gastromap-backend/pkg/integrations"
	"github.com/gastromap/gastromap-backend/pkg/match"
	"github.com/gastromap/gastromap-backend/pkg/repository"
)

type ImportCmd struct {
	ConfigFile string `default:".gastromap.toml" help:"Path to config file" short:"c"`
	Source     string `required:"" help:"Source name (google, yandex, 2gis, tripmenu_web)"`
	File       string `help:"Path to a JSON array of scraped places" type:"existingfile" optional:""`
	City       string `help:"Scrape the source's website for this city instead of reading a file" optional:""`
}

func (i *ImportCmd) Run(_ *Context) error {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.DisableStacktrace = true

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(i.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	items, err := i.loadPlaces(logger)
	if err != nil {
		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	resolver := match.NewResolver(thresholdsFromConfig(conf))
	consolidator := consolidate.NewConsolidator(repo, resolver, conf.Consolidation.CandidateBoxMeters, logger)

	imp := importer.New(&consolidatorSaver{consolidator: consolidator}, logger)

	stats, err := imp.ImportBatch(context.Background(), items, i.Source)
	if err != nil {
		logger.Warn("import finished with failures", zap.Error(err))
	}

	logger.Info("import done",
		zap.Int("total", stats.Total),
		zap.Int("created", stats.Created),
		zap.Int("merged", stats.Merged),
		zap.Int("updated", stats.Updated),
		zap.Int("skipped", stats.Skipped),
		zap.Int("errors", stats.Errors))

	return nil
}

func (i *ImportCmd) loadPlaces(logger *zap.Logger) ([]importer.RawPlace, error) {
	if i.File != "" {
		raw, err := os.ReadFile(i.File)
		if err != nil {
			return nil, err
		}

		var items []importer.RawPlace
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", i.File, err)
		}

		return items, nil
	}

	if i.City == "" {
		return nil, fmt.Errorf("either --file or --city is required")
	}

	integration := integrations.GetIntegration(i.Source, logger)
	if integration == nil {
		return nil, fmt.Errorf("source %q has no direct scraper, import a dataset file instead", i.Source)
	}

	return integration.FindRestaurants(i.City)
}

// consolidatorSaver adapts the consolidation pipeline to the importer.
type consolidatorSaver struct {
	consolidator *consolidate.Consolidator
}

func (s *consolidatorSaver) Save(ctx context.Context, record importer.Record) (*importer.SaveOutcome, error) {
	result, err := s.consolidator.Save(ctx, record)
	if err != nil {
		return nil, err
	}

	return &importer.SaveOutcome{Action: string(result.Action), ID: result.ID}, nil
}
