package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/studysaathi/studysaathi/internal/bootstrap"
	"github.com/studysaathi/studysaathi/internal/cache"
	"github.com/studysaathi/studysaathi/internal/config"
	"github.com/studysaathi/studysaathi/internal/database"
	"github.com/studysaathi/studysaathi/internal/inference/openai"
	"github.com/studysaathi/studysaathi/internal/logger"
	"github.com/studysaathi/studysaathi/internal/motivation"
	"github.com/studysaathi/studysaathi/internal/notes"
	"github.com/studysaathi/studysaathi/internal/progress"
	"github.com/studysaathi/studysaathi/internal/server"
	"github.com/studysaathi/studysaathi/internal/streak"
	"github.com/studysaathi/studysaathi/internal/strength"
	"github.com/studysaathi/studysaathi/internal/studyplan"
	"github.com/studysaathi/studysaathi/internal/user"
	"github.com/studysaathi/studysaathi/schemas"
)

var (
	configFile string
	debugMode  bool
	migrate    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "studysaathi-server",
		Short:         "StudySaathi progress and study assistant HTTP server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
	flags := rootCmd.Flags()
	flags.StringVar(&configFile, "config", "", "config file path")
	flags.BoolVar(&debugMode, "debug", false, "Enable debug logging")
	flags.BoolVar(&migrate, "migrate", false, "Apply pending database migrations before serving")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}

	log, err := logger.New(cfg.Env, debugMode)
	if err != nil {
		return fmt.Errorf("logger.New() > %w", err)
	}
	app := bootstrap.New(log)
	app.AddShutdownHook("logger", func(context.Context) error {
		_ = log.Sync()
		return nil
	})

	if cfg.OpenAI.APIKey == "" {
		log.Warn("OPENAI_API_KEY is not set, AI routes will fail")
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("database.Open() > %w", err)
	}
	app.AddCloser("database", db.Close)

	if migrate {
		applied, err := database.Migrate(ctx, db, schemas.Migrations, "migrations")
		if err != nil {
			return fmt.Errorf("database.Migrate() > %w", err)
		}
		log.Info("applied migrations", zap.Strings("versions", applied))
	}

	location, err := time.LoadLocation(cfg.Streak.Timezone)
	if err != nil {
		return fmt.Errorf("time.LoadLocation(%s) > %w", cfg.Streak.Timezone, err)
	}

	client := openai.NewClient(cfg.OpenAI, log)
	app.AddCloser("openai", client.Close)

	var store cache.Store = cache.NopStore{}
	if cfg.Redis.Enabled() {
		redisStore := cache.NewRedisStore(cfg.Redis)
		if err := redisStore.Ping(ctx); err != nil {
			log.Warn("redis is unreachable, generated content will not be cached", zap.Error(err))
			_ = redisStore.Close()
		} else {
			store = redisStore
		}
	}
	contentCache := cache.NewContentCache(store, time.Duration(cfg.Redis.TTLSeconds)*time.Second, log)
	app.AddCloser("cache", contentCache.Close)

	profiles := user.NewDBRepository(db)
	scorer := strength.NewScorer(cfg.Scoring)
	logComponents(log, client.GetModel(), scorer.Config())
	progressTracker := progress.NewTracker(progress.NewDBRepository(db), scorer)
	streakTracker := streak.NewTracker(
		streak.NewDBRepository(db),
		profiles,
		motivation.NewGenerator(client, log),
		location,
		log,
	)
	noteService := notes.NewService(notes.NewDBRepository(db), progressTracker, log)
	planService := studyplan.NewService(studyplan.NewDBRepository(db), profiles, progressTracker, client, location, log)

	handler := server.New(server.Dependencies{
		Progress: progressTracker,
		Streaks:  streakTracker,
		Notes:    noteService,
		Plans:    planService,
		Profiles: profiles,
		Client:   client,
		Cache:    contentCache,
		Logger:   log,
	}).Router(cfg.Server)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}
	app.AddShutdownHook("http server", srv.Shutdown)
	return app.Run(ctx, func(ctx context.Context) error {
		log.Info("starting server", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("srv.ListenAndServe() > %w", err)
		}
		return nil
	})
}

// logComponents reports the model and scoring constants the server runs with.
func logComponents(log *zap.Logger, model string, scoring strength.Config) {
	log.Info("inference configured", zap.String("model", model))
	log.Info("strength scoring configured",
		zap.Int("strong_threshold", scoring.StrongThreshold),
		zap.Int("medium_threshold", scoring.MediumThreshold),
		zap.Float64("weight_time", scoring.Weights.Time),
		zap.Float64("weight_notes", scoring.Weights.Notes),
		zap.Float64("weight_confidence", scoring.Weights.Confidence),
		zap.Float64("weight_quiz", scoring.Weights.Quiz),
	)
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}
