package helper

import (
	"net/url"
	"strings"

	"events.xdoubleu.com/apps/events/pkg/eventsapi"
)

const upcomingTrue = "true"

// Draft is the not yet applied state of the filter form.
type Draft struct {
	Category  string
	StartDate string
	EndDate   string
	Upcoming  bool
}

type CategoryOption struct {
	Value    string
	Label    string
	Selected bool
}

//nolint:gochecknoglobals //fixed option list
var categories = []string{
	"Music",
	"Food & Drink",
	"Outdoor",
	"Art & Culture",
	"Sports",
	"Community",
}

// DraftFromQuery seeds a draft from the current URL. The URL is never
// written back from here.
func DraftFromQuery(values url.Values) Draft {
	return Draft{
		Category:  values.Get(eventsapi.ParamCategory),
		StartDate: values.Get(eventsapi.ParamStartDate),
		EndDate:   values.Get(eventsapi.ParamEndDate),
		Upcoming:  values.Get(eventsapi.ParamUpcoming) == upcomingTrue,
	}
}

// UpdateDraftField only touches the draft. Unknown keys are ignored.
func (draft *Draft) UpdateDraftField(key string, value string) {
	switch key {
	case eventsapi.ParamCategory:
		draft.Category = value
	case eventsapi.ParamStartDate:
		draft.StartDate = value
	case eventsapi.ParamEndDate:
		draft.EndDate = value
	case eventsapi.ParamUpcoming:
		draft.Upcoming = value == upcomingTrue
	}
}

// Encode writes every field, empty ones included, except upcoming which
// is only present when set. The page is never written.
func (draft Draft) Encode() string {
	parts := []string{
		encodeParam(eventsapi.ParamCategory, draft.Category),
		encodeParam(eventsapi.ParamStartDate, draft.StartDate),
		encodeParam(eventsapi.ParamEndDate, draft.EndDate),
	}

	if draft.Upcoming {
		parts = append(parts, encodeParam(eventsapi.ParamUpcoming, upcomingTrue))
	}

	return strings.Join(parts, "&")
}

func (draft Draft) CategoryOptions() []CategoryOption {
	options := []CategoryOption{}
	known := false

	for _, category := range categories {
		selected := category == draft.Category
		known = known || selected

		options = append(options, CategoryOption{
			Value:    category,
			Label:    category,
			Selected: selected,
		})
	}

	// keep the form in line with whatever the URL carries
	if !known && draft.Category != "" {
		options = append(options, CategoryOption{
			Value:    draft.Category,
			Label:    draft.Category,
			Selected: true,
		})
	}

	return options
}

// ApplyFilters returns the location to navigate to for the given draft.
// Pagination restarts at the first page.
func ApplyFilters(path string, draft Draft) string {
	return path + "?" + draft.Encode()
}

func ClearFilters(path string) (Draft, string) {
	return Draft{}, path
}

func HasActiveFilters(values url.Values) bool {
	for key, vals := range values {
		if key == eventsapi.ParamPage {
			continue
		}

		for _, val := range vals {
			if val != "" {
				return true
			}
		}
	}

	return false
}

func encodeParam(key string, value string) string {
	return url.QueryEscape(key) + "=" + url.QueryEscape(value)
}
