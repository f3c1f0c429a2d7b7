package eventsapi

import (
	"net/url"
	"strings"
)

const (
	ParamCategory  = "category"
	ParamStartDate = "start_date"
	ParamEndDate   = "end_date"
	ParamUpcoming  = "upcoming"
	ParamPage      = "page"
)

// Query holds the listing filters exactly as they appear in the URL.
type Query struct {
	Category  string
	StartDate string
	EndDate   string
	Upcoming  string
	Page      string
}

func QueryFromValues(values url.Values) Query {
	return Query{
		Category:  values.Get(ParamCategory),
		StartDate: values.Get(ParamStartDate),
		EndDate:   values.Get(ParamEndDate),
		Upcoming:  values.Get(ParamUpcoming),
		Page:      values.Get(ParamPage),
	}
}

// Encode drops empty parameters and keeps a fixed parameter order.
func (query Query) Encode() string {
	params := [][2]string{
		{ParamCategory, query.Category},
		{ParamStartDate, query.StartDate},
		{ParamEndDate, query.EndDate},
		{ParamUpcoming, query.Upcoming},
		{ParamPage, query.Page},
	}

	parts := []string{}
	for _, param := range params {
		if param[1] == "" {
			continue
		}
		parts = append(parts, url.QueryEscape(param[0])+"="+url.QueryEscape(param[1]))
	}

	return strings.Join(parts, "&")
}
