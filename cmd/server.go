package cmd

import (
	"errors"
	"fmt"
	"memoarc/internal/config"
	"memoarc/internal/core"
	"memoarc/internal/db"
	"memoarc/internal/http/handler"
	"memoarc/internal/http/handler/middleware"
	"memoarc/internal/http/payload"
	"memoarc/internal/http/server"
	"memoarc/internal/metrics"
	"memoarc/internal/preview"
	"memoarc/internal/repository"
	"memoarc/pkg/jwt"
	"memoarc/pkg/log"
	"memoarc/pkg/random"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap/zapcore"
)

func Start() error {
	config, err := config.NewApp()
	if err != nil {
		log.NewZapLogger("memoarc", zapcore.InfoLevel).Errorw("failed to create config", "error", err)
		return err
	}

	logger := log.NewZapLogger("memoarc", log.ParseLevel(config.LogLevel))
	defer logger.Sync()

	dbConn, err := db.NewGormDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// repository
	repo := repository.NewBookmarkRepository(dbConn)
	if err = repo.Migrate(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// bookmarks
	bookmarks := core.NewBookmarks(
		logger,
		repo,
		jwtService,
		random.Generator{},
		core.Options{
			BcryptCost:      config.BcryptCost,
			ShareHashLength: config.ShareHashLength,
			TokenTTL:        config.TokenTTL,
		})

	collectors := metrics.New()

	// previews
	extractor := preview.NewExtractor(
		logger,
		preview.Config{
			Timeout:         config.PreviewTimeout,
			UserAgent:       config.PreviewUserAgent,
			FaviconTemplate: config.FaviconTemplate,
		},
		collectors)

	// handler
	bookmarkHlr := handler.NewBookmarkHandler(
		logger,
		payload.DecodeValidator{},
		bookmarks,
		extractor,
		config.Version)

	auth := middleware.NewAuthMiddleware(logger, jwtService)

	// register routes
	mux := http.NewServeMux()
	bookmarkHlr.RegisterRoutes(mux, auth, collectors.Handler())

	// middleware
	hdlr := middleware.NewMetricsMiddleware(collectors).Metrics(mux)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewCORSMiddleware(config.CORSOrigin).CORS(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if errors.Is(err, http.ErrServerClosed) || err == nil {
		return sdErr
	}

	return fmt.Errorf("server run: %w", err)
}
