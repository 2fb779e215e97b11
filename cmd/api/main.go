package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "github.com/hungtvu113/WebsiteTimE-sub000/internal/adapter/db"
	httpadapter "github.com/hungtvu113/WebsiteTimE-sub000/internal/adapter/http"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/adapter/http/handlers"
	httpmiddleware "github.com/hungtvu113/WebsiteTimE-sub000/internal/adapter/http/middleware"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/adapter/rest"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/app/service"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/cache"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/config"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/ports"
	"github.com/hungtvu113/WebsiteTimE-sub000/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	cfg := config.LoadConfig()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	store, closeStore := openStore(cfg, logger)
	defer closeStore()

	cacheOpts := []cache.Option{
		cache.WithTTL(cfg.CacheTTL),
		cache.WithErrorHook(func(name string, err error) {
			logger.Debug("cache served stale data", zap.String("cache", name), zap.Error(err))
		}),
	}

	taskService := service.NewTaskService(store, cacheOpts...)
	timeBlockService := service.NewTimeBlockService(store, taskService, time.Local, cacheOpts...)
	preferenceService := service.NewPreferenceService(store, cacheOpts...)
	calendarService := service.NewCalendarService(taskService, timeBlockService, preferenceService)
	statsService := service.NewStatsService(taskService, timeBlockService, preferenceService, time.Now)
	sessionService := service.NewSessionService(taskService, timeBlockService, preferenceService)

	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	httpadapter.RegisterRoutes(r, httpadapter.Handlers{
		Health:      handlers.NewHealthHandler(store),
		Tasks:       handlers.NewTaskHandler(taskService),
		TimeBlocks:  handlers.NewTimeBlockHandler(timeBlockService),
		Calendar:    handlers.NewCalendarHandler(calendarService),
		Stats:       handlers.NewStatsHandler(statsService),
		Preferences: handlers.NewPreferenceHandler(preferenceService),
		Maintenance: handlers.NewMaintenanceHandler(timeBlockService, sessionService),
	})

	addr := ":" + cfg.AppPort
	logger.Info("starting server",
		zap.String("addr", addr),
		zap.String("store", store.Name()),
		zap.Duration("cache_ttl", cfg.CacheTTL),
	)
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}

func openStore(cfg *config.Config, logger *zap.Logger) (ports.Store, func()) {
	if cfg.StoreDriver == config.StoreDriverMySQL {
		db, err := dbadapter.ConnectDB(cfg)
		if err != nil {
			logger.Fatal("failed to connect to mysql", zap.Error(err))
		}
		return dbadapter.NewStore(db), func() {
			if err := db.Close(); err != nil {
				logger.Warn("failed to close mysql connection", zap.Error(err))
			}
		}
	}

	client := rest.NewClient(cfg.APIBaseURL, rest.StaticToken(cfg.APIToken), cfg.APITimeout)
	return client, func() {}
}
