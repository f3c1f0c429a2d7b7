//nolint:mnd //no magic number
package config

import (
	"log/slog"
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/config"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"github.com/xhit/go-str2duration/v2"
)

type Config struct {
	Env        string
	Port       int
	WebURL     string
	SentryDsn  string
	SampleRate float64
	Release    string
	APIURL     string
	APITimeout time.Duration
	DebugMode  bool
}

func New(logger *slog.Logger) Config {
	var cfg Config

	parser := config.New(logger)

	cfg.Env = parser.EnvStr("ENV", config.ProdEnv)
	cfg.Port = parser.EnvInt("PORT", 3000)
	cfg.WebURL = parser.EnvStr("WEB_URL", "http://localhost:3000")
	cfg.SentryDsn = parser.EnvStr("SENTRY_DSN", "")
	cfg.SampleRate = parser.EnvFloat("SAMPLE_RATE", 1.0)
	cfg.Release = parser.EnvStr("RELEASE", config.DevEnv)

	cfg.APIURL = parser.EnvStr("API_URL", "http://localhost:8000")
	cfg.DebugMode = parser.EnvBool("DEBUG_MODE", false)

	// zero means the upstream API is never cut off
	apiTimeout := parser.EnvStr("API_TIMEOUT", "0s")
	timeout, err := str2duration.ParseDuration(apiTimeout)
	if err != nil {
		logger.Warn(
			"invalid API_TIMEOUT, falling back to no timeout",
			slog.String("value", apiTimeout),
			logging.ErrAttr(err),
		)
		timeout = 0
	}
	cfg.APITimeout = timeout

	return cfg
}
