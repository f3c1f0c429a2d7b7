package events

import (
	"fmt"
	"net/http"

	"events.xdoubleu.com/apps/events/internal/helper"
	"events.xdoubleu.com/apps/events/pkg/eventsapi"
)

//nolint:gochecknoglobals //fields the filter form submits
var draftFields = []string{
	eventsapi.ParamCategory,
	eventsapi.ParamStartDate,
	eventsapi.ParamEndDate,
	eventsapi.ParamUpcoming,
}

func (app *Events) filterRoutes(basePath string, mux *http.ServeMux) {
	mux.HandleFunc(
		fmt.Sprintf("GET %s/filters", basePath),
		app.applyFiltersHandler(basePath),
	)
	mux.HandleFunc(
		fmt.Sprintf("GET %s/filters/clear", basePath),
		app.clearFiltersHandler(basePath),
	)
}

// applyFiltersHandler receives the submitted form and navigates to the
// listing with the draft as its query.
func (app *Events) applyFiltersHandler(basePath string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		submitted := r.URL.Query()

		var draft helper.Draft
		for _, field := range draftFields {
			draft.UpdateDraftField(field, submitted.Get(field))
		}

		http.Redirect(w, r, helper.ApplyFilters(basePath, draft), http.StatusSeeOther)
	}
}

func (app *Events) clearFiltersHandler(basePath string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, location := helper.ClearFilters(basePath)
		http.Redirect(w, r, location, http.StatusSeeOther)
	}
}
