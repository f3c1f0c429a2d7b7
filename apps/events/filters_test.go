package events_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xdoubleu/essentia/v2/pkg/test"
)

func TestApplyFiltersHandler(t *testing.T) {
	rs := get(
		getRoutes(),
		"/events/filters?category=Music&start_date=2024-07-01&end_date=&page=3",
	)

	assert.Equal(t, http.StatusSeeOther, rs.StatusCode)
	assert.Equal(
		t,
		"/events?category=Music&start_date=2024-07-01&end_date=",
		rs.Header.Get("Location"),
	)
}

func TestApplyFiltersHandlerAmpersand(t *testing.T) {
	rs := get(
		getRoutes(),
		"/events/filters?category=Art+%26+Culture&start_date=&end_date=&upcoming=true",
	)

	assert.Equal(t, http.StatusSeeOther, rs.StatusCode)
	assert.Equal(
		t,
		"/events?category=Art+%26+Culture&start_date=&end_date=&upcoming=true",
		rs.Header.Get("Location"),
	)
}

func TestClearFiltersHandler(t *testing.T) {
	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodGet,
		"/events/filters/clear",
	)

	tReq.SetFollowRedirect(false)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusSeeOther, rs.StatusCode)
	assert.Equal(t, "/events", rs.Header.Get("Location"))
}
