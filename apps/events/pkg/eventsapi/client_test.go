package eventsapi_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"events.xdoubleu.com/apps/events/pkg/eventsapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
)

const eventJSON = `{
	"id": 1,
	"title": "Test Concert",
	"description": "A great concert in the park",
	"start_date": "2024-07-15T19:00:00Z",
	"end_date": "2024-07-15T22:00:00Z",
	"location": "Central Park",
	"category": {"id": 1, "name": "Music", "description": "Music events"},
	"venue": null,
	"organizer": "ignored"
}`

func newServer(t *testing.T, handler http.HandlerFunc) eventsapi.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return eventsapi.New(logging.NewNopLogger(), srv.URL+"/", 0)
}

func TestGetEventsSendsOnlyNonEmptyParams(t *testing.T) {
	var rawQuery, path, cacheControl string

	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		path = r.URL.Path
		cacheControl = r.Header.Get("Cache-Control")
		fmt.Fprintf(
			w,
			`{"count": 12, "next": "http://api/?page=3", "previous": null, "results": [%s]}`,
			eventJSON,
		)
	})

	page, err := client.GetEvents(context.Background(), eventsapi.Query{
		Category: "Food & Drink",
		EndDate:  "2024-08-01",
		Page:     "2",
	})
	require.NoError(t, err)

	assert.Equal(t, "/api/events/", path)
	assert.Equal(t, "category=Food+%26+Drink&end_date=2024-08-01&page=2", rawQuery)
	assert.Contains(t, cacheControl, "no-cache")

	assert.Equal(t, 12, page.Count)
	assert.True(t, page.HasNext())
	assert.False(t, page.HasPrevious())
	require.Len(t, page.Results, 1)
	assert.Equal(t, "Test Concert", page.Results[0].Title)
	assert.Equal(t, "Music", page.Results[0].Category.Name)
}

func TestGetEventsEmptyQuery(t *testing.T) {
	var rawQuery string

	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		fmt.Fprint(w, `{"count": 0, "next": null, "previous": null, "results": []}`)
	})

	page, err := client.GetEvents(context.Background(), eventsapi.Query{})
	require.NoError(t, err)

	assert.Empty(t, rawQuery)
	assert.Empty(t, page.Results)
}

func TestGetEventsFailure(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.GetEvents(context.Background(), eventsapi.Query{})

	assert.ErrorIs(t, err, eventsapi.ErrFetchFailed)
	assert.NotErrorIs(t, err, eventsapi.ErrNotFound)
}

func TestGetEventsMalformedBody(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `<html>not json</html>`)
	})

	_, err := client.GetEvents(context.Background(), eventsapi.Query{})

	assert.ErrorIs(t, err, eventsapi.ErrFetchFailed)
}

func TestGetEvent(t *testing.T) {
	var path string

	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		fmt.Fprint(w, eventJSON)
	})

	event, err := client.GetEvent(context.Background(), "1")
	require.NoError(t, err)

	assert.Equal(t, "/api/events/1/", path)
	assert.Equal(t, int64(1), event.ID)
	assert.Nil(t, event.Venue)
	assert.Equal(t, "Central Park", event.DisplayLocation())
	assert.Equal(t, 2024, event.StartDate.Year())
}

func TestGetEventNotFound(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"detail": "Not found."}`, http.StatusNotFound)
	})

	_, err := client.GetEvent(context.Background(), "999")

	assert.ErrorIs(t, err, eventsapi.ErrNotFound)
}

func TestGetEventServerErrorIsNotFound(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.GetEvent(context.Background(), "1")

	assert.ErrorIs(t, err, eventsapi.ErrNotFound)
}

func TestGetEventIgnoresUnknownFields(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, eventJSON)
	})

	event, err := client.GetEvent(context.Background(), "1")
	require.NoError(t, err)

	assert.Equal(t, "Test Concert", event.Title)
	assert.Equal(t, "Music", event.Category.Name)
	assert.Nil(t, event.Venue)
}

func TestGetEventEmptyBody(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	_, err := client.GetEvent(context.Background(), "1")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, eventsapi.ErrNotFound)
}
