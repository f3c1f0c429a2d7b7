package helper_test

import (
	"net/url"
	"testing"

	"events.xdoubleu.com/apps/events/internal/helper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pageNumbers(pagination helper.Pagination) []int {
	numbers := []int{}
	for _, page := range pagination.Pages {
		numbers = append(numbers, page.Number)
	}
	return numbers
}

func TestPaginationHiddenForSinglePage(t *testing.T) {
	for _, total := range []int{0, 1, 8, helper.PageSize} {
		pagination := helper.NewPagination("/events", url.Values{}, 1, total, false, false)
		assert.False(t, pagination.Visible, total)
	}

	pagination := helper.NewPagination(
		"/events",
		url.Values{},
		1,
		helper.PageSize+1,
		true,
		false,
	)
	assert.True(t, pagination.Visible)
	assert.Equal(t, 2, pagination.TotalPages)
}

func TestPaginationWindowMiddle(t *testing.T) {
	total := 10 * helper.PageSize

	pagination := helper.NewPagination("/events", url.Values{}, 5, total, true, true)

	assert.Equal(t, 10, pagination.TotalPages)
	assert.Equal(t, []int{3, 4, 5, 6, 7}, pageNumbers(pagination))

	require.NotNil(t, pagination.First)
	assert.Equal(t, 1, pagination.First.Number)
	assert.True(t, pagination.LeadingEllipsis)

	require.NotNil(t, pagination.Last)
	assert.Equal(t, 10, pagination.Last.Number)
	assert.True(t, pagination.TrailingEllipsis)

	assert.True(t, pagination.Pages[2].Current)
	assert.Equal(t, 37, pagination.From)
	assert.Equal(t, 45, pagination.To)
}

func TestPaginationWindowEdges(t *testing.T) {
	total := 10 * helper.PageSize

	first := helper.NewPagination("/events", url.Values{}, 1, total, true, false)
	assert.Equal(t, []int{1, 2, 3}, pageNumbers(first))
	assert.Nil(t, first.First)
	assert.False(t, first.LeadingEllipsis)
	assert.True(t, first.TrailingEllipsis)
	assert.Equal(t, 10, first.Last.Number)

	last := helper.NewPagination("/events", url.Values{}, 10, total, false, true)
	assert.Equal(t, []int{8, 9, 10}, pageNumbers(last))
	assert.Nil(t, last.Last)
	assert.False(t, last.TrailingEllipsis)
	assert.True(t, last.LeadingEllipsis)
	assert.Equal(t, 82, last.From)
	assert.Equal(t, 90, last.To)
}

func TestPaginationNoEllipsisForAdjacentPage(t *testing.T) {
	total := 7 * helper.PageSize

	pagination := helper.NewPagination("/events", url.Values{}, 4, total, true, true)

	assert.Equal(t, []int{2, 3, 4, 5, 6}, pageNumbers(pagination))
	assert.Equal(t, 1, pagination.First.Number)
	assert.False(t, pagination.LeadingEllipsis)
	assert.Equal(t, 7, pagination.Last.Number)
	assert.False(t, pagination.TrailingEllipsis)
}

func TestPaginationTrustsAPIFlags(t *testing.T) {
	total := 3 * helper.PageSize

	pagination := helper.NewPagination("/events", url.Values{}, 3, total, true, false)

	assert.False(t, pagination.Next.Disabled)
	assert.True(t, pagination.Previous.Disabled)
}

func TestPageURLFirstPageHasNoPageParam(t *testing.T) {
	query, err := url.ParseQuery("category=Food+%26+Drink&page=4")
	require.NoError(t, err)

	location := helper.PageURL("/events", query, 1)
	assert.Equal(t, "/events?category=Food+%26+Drink", location)
	assert.NotContains(t, location, "page")

	assert.Equal(t, "/events", helper.PageURL("/events", url.Values{"page": {"2"}}, 1))
	assert.Equal(t, "/events", helper.PageURL("/events", url.Values{}, 0))

	assert.Equal(t, "4", query.Get("page"))
}

func TestPageURLKeepsFilters(t *testing.T) {
	query, err := url.ParseQuery("category=Music&upcoming=true")
	require.NoError(t, err)

	assert.Equal(
		t,
		"/events?category=Music&page=3&upcoming=true",
		helper.PageURL("/events", query, 3),
	)
}

func TestPaginationFirstPageLinksOmitPage(t *testing.T) {
	total := 10 * helper.PageSize

	pagination := helper.NewPagination("/events", url.Values{}, 2, total, true, true)

	assert.Equal(t, "/events", pagination.Previous.URL)
	assert.Equal(t, "/events", pagination.Pages[0].URL)
	assert.Equal(t, "/events?page=3", pagination.Next.URL)
}

func TestCurrentPage(t *testing.T) {
	cases := map[string]int{
		"":        1,
		"page=":   1,
		"page=x":  1,
		"page=-2": 1,
		"page=0":  1,
		"page=7":  7,
	}

	for rawQuery, expected := range cases {
		values, err := url.ParseQuery(rawQuery)
		require.NoError(t, err)

		assert.Equal(t, expected, helper.CurrentPage(values), rawQuery)
	}
}
