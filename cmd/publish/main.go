package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"
	_ "time/tzdata"

	"events.xdoubleu.com/internal/config"
	"github.com/joho/godotenv"
	"github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"github.com/xdoubleu/essentia/v2/pkg/sentrytools"
)

type Application struct {
	logger *slog.Logger
	config config.Config
	apps   *Apps
}

func main() {
	bootLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// a missing .env is fine, the environment is used as is
	if err := godotenv.Load(); err != nil {
		bootLogger.Debug("no .env file loaded", logging.ErrAttr(err))
	}

	cfg := config.New(bootLogger)

	logger := slog.New(sentrytools.NewLogHandler(cfg.Env,
		slog.NewTextHandler(os.Stdout, nil)))

	app := NewApplication(logger, cfg)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,  //nolint:mnd //no magic number
		WriteTimeout: 10 * time.Second, //nolint:mnd //no magic number
	}
	err := httptools.Serve(logger, srv, cfg.Env)
	if err != nil {
		logger.Error("failed to serve server", logging.ErrAttr(err))
	}
}

func NewApplication(logger *slog.Logger, config config.Config) *Application {
	return &Application{
		logger: logger,
		config: config,
		apps:   NewApps(logger, config),
	}
}
