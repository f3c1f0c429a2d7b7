package mocks

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"events.xdoubleu.com/apps/events/internal/helper"
	"events.xdoubleu.com/apps/events/pkg/eventsapi"
)

type MockEventsClient struct {
	Count   int
	Events  []eventsapi.Event
	Queries []eventsapi.Query
}

func NewMockEventsClient() *MockEventsClient {
	capacity := 500
	start := time.Date(2024, 7, 15, 19, 0, 0, 0, time.UTC)

	return &MockEventsClient{
		Count: 3,
		Events: []eventsapi.Event{
			{
				ID:          1,
				Title:       "Test Concert",
				Description: "A great concert in the park",
				StartDate:   start,
				EndDate:     start.Add(3 * time.Hour),
				Location:    "Central Park",
				Category: &eventsapi.Category{
					ID:          1,
					Name:        "Music",
					Description: "Music events",
				},
				Venue: &eventsapi.Venue{
					ID:       1,
					Name:     "Park Amphitheater",
					Address:  "123 Park Ave",
					Capacity: &capacity,
				},
			},
			{
				ID:          2,
				Title:       "Street Food Festival",
				Description: "Food trucks on the waterfront",
				StartDate:   start.AddDate(0, 0, 7),
				EndDate:     start.AddDate(0, 0, 7).Add(5 * time.Hour),
				Location:    "Waterfront Pier 62",
				Category: &eventsapi.Category{
					ID:          2,
					Name:        "Food & Drink",
					Description: "Food and beverage events",
				},
				Venue: nil,
			},
			{
				ID:          3,
				Title:       "Trail Cleanup",
				Description: "",
				StartDate:   time.Now().AddDate(1, 0, 0),
				EndDate:     time.Now().AddDate(1, 0, 0).Add(2 * time.Hour),
				Location:    "",
				Category:    nil,
				Venue: &eventsapi.Venue{
					ID:       2,
					Name:     "Discovery Park",
					Address:  "",
					Capacity: nil,
				},
			},
		},
		Queries: []eventsapi.Query{},
	}
}

func (client *MockEventsClient) GetEvents(
	_ context.Context,
	query eventsapi.Query,
) (*eventsapi.EventPage, error) {
	client.Queries = append(client.Queries, query)

	page := 1
	if query.Page != "" {
		var err error
		page, err = strconv.Atoi(query.Page)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid page", eventsapi.ErrFetchFailed)
		}
	}

	results := []eventsapi.Event{}
	for _, event := range client.Events {
		if query.Category != "" &&
			(event.Category == nil || event.Category.Name != query.Category) {
			continue
		}
		results = append(results, event)
	}

	count := client.Count
	if query.Category != "" {
		count = len(results)
	}

	//nolint:exhaustruct //next and previous are set below
	response := eventsapi.EventPage{
		Count:   count,
		Results: results,
	}

	if page*helper.PageSize < count {
		next := fmt.Sprintf("http://localhost:8000/api/events/?page=%d", page+1)
		response.Next = &next
	}
	if page > 1 {
		previous := fmt.Sprintf("http://localhost:8000/api/events/?page=%d", page-1)
		response.Previous = &previous
	}

	return &response, nil
}

func (client *MockEventsClient) GetEvent(
	_ context.Context,
	id string,
) (*eventsapi.Event, error) {
	for _, event := range client.Events {
		if strconv.FormatInt(event.ID, 10) == id {
			return &event, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", eventsapi.ErrNotFound, id)
}

type FailingEventsClient struct{}

func NewFailingEventsClient() eventsapi.Client {
	return FailingEventsClient{}
}

func (client FailingEventsClient) GetEvents(
	_ context.Context,
	_ eventsapi.Query,
) (*eventsapi.EventPage, error) {
	return nil, fmt.Errorf(
		"%w: %w",
		eventsapi.ErrFetchFailed,
		eventsapi.StatusError{StatusCode: 500},
	)
}

func (client FailingEventsClient) GetEvent(
	_ context.Context,
	id string,
) (*eventsapi.Event, error) {
	return nil, fmt.Errorf("%w: %s", eventsapi.ErrNotFound, id)
}
