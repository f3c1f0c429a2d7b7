package events

import (
	"embed"
	"html/template"
	"io/fs"
	"log/slog"

	"events.xdoubleu.com/apps/events/internal/services"
	"events.xdoubleu.com/apps/events/pkg/eventsapi"
	"events.xdoubleu.com/internal/config"
)

//go:embed templates/html/**/*html
var htmlTemplates embed.FS

//go:embed static/*
var staticFiles embed.FS

type Events struct {
	logger   *slog.Logger
	config   config.Config
	clients  Clients
	static   fs.FS
	tpl      *template.Template
	Services *services.Services
}

func New(logger *slog.Logger, cfg config.Config) *Events {
	clients := Clients{
		Events: eventsapi.New(logger, cfg.APIURL, cfg.APITimeout),
	}

	return NewInner(logger, cfg, clients)
}

func NewInner(logger *slog.Logger, cfg config.Config, clients Clients) *Events {
	tpl := template.Must(
		template.New("events").
			Funcs(templateFuncs()).
			ParseFS(htmlTemplates, "templates/html/**/*.html"),
	)

	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}

	return &Events{
		logger:   logger,
		config:   cfg,
		clients:  clients,
		static:   static,
		tpl:      tpl,
		Services: services.New(logger, clients.Events),
	}
}

func (app *Events) GetName() string {
	return "events"
}
