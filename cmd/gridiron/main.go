package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"github.com/keelan/gridiron/internal/adapters/feeds"
	"github.com/keelan/gridiron/internal/adapters/http/api"
	"github.com/keelan/gridiron/internal/adapters/repository"
	"github.com/keelan/gridiron/internal/app"
	"github.com/keelan/gridiron/internal/config"
	"github.com/keelan/gridiron/internal/domain/board"
	"github.com/keelan/gridiron/internal/domain/tier"
	"github.com/keelan/gridiron/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info",
			logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	slots, err := cfg.Slots()
	if err != nil {
		os.Stderr.WriteString("invalid starter slots: " + err.Error() + "\n")
		return
	}

	source := feeds.NewClient(cfg.FeedBaseURL,
		feeds.WithTimeout(time.Duration(cfg.FeedTimeoutMS)*time.Millisecond),
	)
	classifier := tier.New(
		tier.WithGapThreshold(cfg.TierGapThreshold),
		tier.WithMinTierSize(cfg.TierMinSize),
	)

	svc := app.New(
		app.WithLogger(log.Named("service")),
		app.WithSource(source),
		app.WithStore(repository.NewMemoryStore()),
		app.WithAssembler(board.New(board.WithClassifier(classifier))),
		app.WithLeague(cfg.NumTeams, slots),
		app.WithByeExcludeThreshold(cfg.ByeExcludeThreshold),
		app.WithPlayoffWeeks(cfg.PlayoffWeeks),
		app.WithFetchWindow(cfg.Season, cfg.Week),
		app.WithExpert(cfg.Expert),
		app.WithADPQuery(cfg.ADPDays, cfg.ADPType),
		app.WithFeedTimeout(time.Duration(cfg.FeedTimeoutMS)*time.Millisecond),
	)
	if err := svc.Start(ctx); err != nil {
		os.Stderr.WriteString("failed to start service: " + err.Error() + "\n")
		return
	}
	defer svc.Stop()

	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)

	apiServer := api.NewServer(svc, svc, cfg.MaxBoardLimit)
	apiServer.Register(ctx, r)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
		}
	}()

	<-ctx.Done()
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "server stopped")
}
