package events

import (
	"errors"
	"fmt"
	"mime"
	"net/http"

	"events.xdoubleu.com/apps/events/pkg/eventsapi"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"github.com/xdoubleu/essentia/v2/pkg/parse"
)

func (app *Events) calendarRoutes(
	basePath string,
	mux *http.ServeMux,
	guard func(http.Handler) http.Handler,
) {
	mux.Handle(
		fmt.Sprintf("GET %s/calendar/{id}", basePath),
		guard(app.calendarHandler(basePath)),
	)
}

func (app *Events) calendarHandler(basePath string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parse.URLParam[string](r, "id", nil)
		if err != nil {
			panic(err)
		}

		detailURL := fmt.Sprintf("%s%s/%s", app.config.WebURL, basePath, id)

		data, err := app.Services.Calendar.ExportEvent(r.Context(), id, detailURL, r.Host)
		if errors.Is(err, eventsapi.ErrNotFound) {
			app.notFound(w, basePath)
			return
		}
		if err != nil {
			panic(err)
		}

		w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
		w.Header().Set(
			"Content-Disposition",
			mime.FormatMediaType(
				"attachment",
				map[string]string{"filename": fmt.Sprintf("event-%s.ics", id)},
			),
		)

		_, err = w.Write(data)
		if err != nil {
			app.logger.Error("failed to write calendar", logging.ErrAttr(err))
		}
	}
}
