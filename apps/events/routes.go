package events

import (
	"fmt"
	"net/http"

	"events.xdoubleu.com/internal/boundary"
)

func (app *Events) Routes(prefix string, mux *http.ServeMux) {
	basePath := fmt.Sprintf("/%s", prefix)
	guard := boundary.Middleware(
		app.logger,
		fmt.Sprintf("%s/static/styles.css", basePath),
		app.config.DebugMode,
	)

	mux.Handle(
		fmt.Sprintf("GET %s/static/", basePath),
		http.StripPrefix(
			fmt.Sprintf("%s/static/", basePath),
			http.FileServerFS(app.static),
		),
	)

	app.templateRoutes(basePath, mux, guard)
	app.filterRoutes(basePath, mux)
	app.calendarRoutes(basePath, mux, guard)
}
