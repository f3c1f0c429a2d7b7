package main

import (
	"log/slog"
	"net/http"

	"events.xdoubleu.com/apps/events"
	"events.xdoubleu.com/internal/config"
)

type Apps struct {
	apps []App
}

type App interface {
	Routes(prefix string, mux *http.ServeMux)
	GetName() string
}

func NewApps(logger *slog.Logger, cfg config.Config) *Apps {
	apps := &Apps{
		apps: []App{},
	}

	apps.addApp(events.New(logger, cfg))

	return apps
}

func (apps *Apps) Routes(mux *http.ServeMux) http.Handler {
	for _, app := range apps.apps {
		app.Routes(app.GetName(), mux)
	}
	return mux
}

// Home is where the root redirects to, the first registered app.
func (apps *Apps) Home() string {
	return "/" + apps.apps[0].GetName()
}

func (apps *Apps) addApp(app App) {
	apps.apps = append(apps.apps, app)
}
