package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/gastromap/gastromap-backend/configs"
	"github.com/gastromap/gastromap-backend/pkg/auth"
	"github.com/gastromap/gastromap-backend/pkg/consolidate"
	"github.com/gastromap/gastromap-backend/pkg/integrations/apify"
	"github.com/gastromap/gastromap-backend/pkg/match"
	"github.com/gastromap/gastromap-backend/pkg/repository"
	"github.com/gastromap/gastromap-backend/pkg/scheduler"
	"github.com/gastromap/gastromap-backend/pkg/server"
	"github.com/gastromap/gastromap-backend/pkg/webhook"
)

const timeout = 5 * time.Second

type ServeCmd struct {
	ConfigFile string `default:".gastromap.toml" help:"Path to config file" short:"c"`
}

func (s *ServeCmd) Run(_ *Context) error {
	logConfig := zap.NewProductionConfig()

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

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
	scanner := consolidate.NewScanner(repo, resolver, logger)
	enricher := consolidate.NewEnricher(repo, logger)
	notifier := webhook.NewNotifier(repo, logger)
	apifyClient := apify.NewClient(conf.Apify.Token, logger)
	runner := scheduler.NewRunner(repo, repo, apifyClient, conf.Apify.Actors(), logger)

	// One cron entry drives the whole schedule table; per-task cron
	// expressions are evaluated against next_run inside RunDue.
	ticker := cron.New()

	_, err = ticker.AddFunc("@every 1m", func() {
		if _, runErr := runner.RunDue(context.Background(), time.Now()); runErr != nil {
			logger.Warn("scheduled run finished with failures", zap.Error(runErr))
		}
	})
	if err != nil {
		return err
	}

	ticker.Start()
	defer ticker.Stop()

	var middleware []gin.HandlerFunc
	if conf.Auth.SecretKey != "" {
		middleware = append(middleware, auth.NewAuthManager(conf, logger).Middleware())
	} else {
		logger.Warn("no auth secret configured, API is open")
	}

	router := server.Router(
		server.NewRestaurantServer(repo, logger),
		server.NewImportServer(consolidator, notifier, logger),
		server.NewDuplicateServer(scanner, repo, logger),
		server.NewQualityServer(repo, logger),
		server.NewSyncServer(repo, repo, apifyClient, consolidator, notifier,
			conf.Apify.Actors(), intervalsFromConfig(conf), logger),
		server.NewEnrichServer(repo, apifyClient, enricher, logger),
		server.NewScheduleServer(repo, runner, logger),
		server.NewWebhookServer(repo, notifier, logger),
		middleware...,
	)

	address := fmt.Sprintf(":%d", conf.Server.Port)
	logger.Info("starting server", zap.String("address", address))

	svr := &http.Server{
		Addr:              address,
		ReadHeaderTimeout: timeout,
		Handler:           router,
	}

	err = svr.ListenAndServe()
	if err != nil {
		logger.Error("failed to start server", zap.Error(err))

		return err
	}

	return nil
}

func intervalsFromConfig(conf *configs.Config) scheduler.Intervals {
	return scheduler.Intervals{
		BasicInfo: conf.Sync.BasicInfoInterval(),
		Reviews:   conf.Sync.ReviewsInterval(),
		Photos:    conf.Sync.PhotosInterval(),
		Hours:     conf.Sync.HoursInterval(),
	}
}

func thresholdsFromConfig(conf *configs.Config) match.Thresholds {
	return match.Thresholds{
		SameSpotMeters:    conf.Consolidation.SameSpotMeters,
		NearMeters:        conf.Consolidation.NearMeters,
		NearSimilarity:    conf.Consolidation.NearSimilarity,
		LooseMeters:       conf.Consolidation.LooseMeters,
		LooseSimilarity:   conf.Consolidation.LooseSimilarity,
		CandidateBoxMeter: conf.Consolidation.CandidateBoxMeters,
	}
}
