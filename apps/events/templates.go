package events

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"events.xdoubleu.com/apps/events/internal/helper"
	"events.xdoubleu.com/apps/events/pkg/eventsapi"
	"github.com/xdoubleu/essentia/v2/pkg/parse"
	tpltools "github.com/xdoubleu/essentia/v2/pkg/tpl"
)

const skeletonCards = 6

//nolint:stylecheck,revive //shown to the user as is
var errTest = errors.New("This is a test error to demonstrate the error boundary!")

func (app *Events) templateRoutes(
	basePath string,
	mux *http.ServeMux,
	guard func(http.Handler) http.Handler,
) {
	mux.Handle(
		fmt.Sprintf("GET %s", basePath),
		guard(app.listHandler(basePath)),
	)
	mux.Handle(
		fmt.Sprintf("GET %s/{id}", basePath),
		guard(app.detailHandler(basePath)),
	)
	mux.Handle(
		fmt.Sprintf("GET %s/loading", basePath),
		guard(app.loadingHandler(basePath)),
	)
	mux.Handle(
		fmt.Sprintf("GET %s/loading/detail", basePath),
		guard(app.loadingDetailHandler(basePath)),
	)
	mux.Handle(
		fmt.Sprintf("GET %s/error-test", basePath),
		guard(app.errorTestHandler()),
	)
}

type Page struct {
	Title    string
	BasePath string
	Debug    bool
	Started  time.Time
}

func (app *Events) newPage(title string, basePath string) Page {
	return Page{
		Title:    title,
		BasePath: basePath,
		Debug:    app.config.DebugMode,
		Started:  time.Now(),
	}
}

type Card struct {
	URL   string
	Event eventsapi.Event
}

type FilterBar struct {
	Action           string
	ClearURL         string
	Draft            helper.Draft
	Categories       []helper.CategoryOption
	HasActiveFilters bool
}

type ListData struct {
	Page       Page
	Filters    FilterBar
	Cards      []Card
	Pagination helper.Pagination
}

func (app *Events) listHandler(basePath string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := app.newPage("Events", basePath)
		query := r.URL.Query()

		events, err := app.Services.Events.ListEvents(r.Context(), query)
		if err != nil {
			panic(err)
		}

		// the form is rebuilt from the URL on every navigation
		draft := helper.DraftFromQuery(query)

		cards := []Card{}
		for _, event := range events.Results {
			cards = append(cards, Card{
				URL:   fmt.Sprintf("%s/%d", basePath, event.ID),
				Event: event,
			})
		}

		tpltools.RenderWithPanic(app.tpl, w, "list.html", ListData{
			Page: page,
			Filters: FilterBar{
				Action:           fmt.Sprintf("%s/filters", basePath),
				ClearURL:         fmt.Sprintf("%s/filters/clear", basePath),
				Draft:            draft,
				Categories:       draft.CategoryOptions(),
				HasActiveFilters: helper.HasActiveFilters(query),
			},
			Cards: cards,
			Pagination: helper.NewPagination(
				basePath,
				query,
				helper.CurrentPage(query),
				events.Count,
				events.HasNext(),
				events.HasPrevious(),
			),
		})
	}
}

type DetailData struct {
	Page        Page
	Event       eventsapi.Event
	IsUpcoming  bool
	CalendarURL string
}

func (app *Events) detailHandler(basePath string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parse.URLParam[string](r, "id", nil)
		if err != nil {
			panic(err)
		}

		event, err := app.Services.Events.GetEvent(r.Context(), id)
		if errors.Is(err, eventsapi.ErrNotFound) {
			app.logger.Debug("event not found", "id", id)
			app.notFound(w, basePath)
			return
		}
		if err != nil {
			panic(err)
		}

		tpltools.RenderWithPanic(app.tpl, w, "detail.html", DetailData{
			Page:        app.newPage(event.Title, basePath),
			Event:       *event,
			IsUpcoming:  event.IsUpcoming(time.Now()),
			CalendarURL: fmt.Sprintf("%s/calendar/%s", basePath, id),
		})
	}
}

type NotFoundData struct {
	Page Page
}

func (app *Events) notFound(w http.ResponseWriter, basePath string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)

	tpltools.RenderWithPanic(app.tpl, w, "notfound.html", NotFoundData{
		Page: app.newPage("Event Not Found", basePath),
	})
}

type LoadingData struct {
	Page         Page
	Placeholders []struct{}
}

func (app *Events) loadingHandler(basePath string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		tpltools.RenderWithPanic(app.tpl, w, "loading.html", LoadingData{
			Page:         app.newPage("Loading events", basePath),
			Placeholders: make([]struct{}, skeletonCards),
		})
	}
}

func (app *Events) loadingDetailHandler(basePath string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		//nolint:exhaustruct //no placeholders on the detail shell
		tpltools.RenderWithPanic(app.tpl, w, "loading-detail.html", LoadingData{
			Page: app.newPage("Loading event", basePath),
		})
	}
}

// errorTestHandler only exists in debug mode, it fails on purpose so the
// boundary can be seen at work.
func (app *Events) errorTestHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !app.config.DebugMode {
			http.NotFound(w, r)
			return
		}

		panic(errTest)
	}
}
