package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"newswire/internal/config"
	"newswire/internal/db"
	"newswire/internal/httpserver"
	articlerepo "newswire/internal/repository/article"
	categoryrepo "newswire/internal/repository/category"
	commentrepo "newswire/internal/repository/comment"
	articlesvc "newswire/internal/service/article"
	categorysvc "newswire/internal/service/category"
	commentsvc "newswire/internal/service/comment"
)

func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	logger := newLogger(cfg.LogLevel)

	ctx := context.Background()

	var (
		pool         *pgxpool.Pool
		articleRepo  articlerepo.Repository
		commentRepo  commentrepo.Repository
		categoryRepo categoryrepo.Repository
	)
	if cfg.DBConnString != "" {
		var err error
		pool, err = db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			logger.Fatal().Err(err).Msg("connect to db")
		}
		defer pool.Close()

		articleRepo = articlerepo.NewPostgres(pool, logger)
		commentRepo = commentrepo.NewPostgres(pool, logger)
		categoryRepo = categoryrepo.NewPostgres(pool, logger)
		logger.Info().Msg("using postgres store")
	} else {
		articleRepo = articlerepo.NewMemory()
		commentRepo = commentrepo.NewMemory()
		categoryRepo = categoryrepo.NewMemory()
		logger.Warn().Msg("DB_DSN not set, using in-memory store; data will not survive restarts")
	}

	articleService := articlesvc.New(articleRepo)
	commentService := commentsvc.New(commentRepo, articleRepo)
	categoryService := categorysvc.New(categoryRepo)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, pool, httpserver.Deps{
		ArticleSvc:  articleService,
		CommentSvc:  commentService,
		CategorySvc: categoryService,
		SiteURL:     cfg.SiteURL,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("init server")
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Msg("starting http server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	case err := <-serverErr:
		logger.Error().Err(err).Msg("server error")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	} else {
		logger.Info().Msg("server stopped")
	}
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stdout).Level(lvl).With().Timestamp().Str("service", "newswire-api").Logger()
}
