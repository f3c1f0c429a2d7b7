package eventsapi

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"
)

const EventsEndpoint = "api/events/"

type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Venue struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Capacity *int   `json:"capacity"`
}

type Event struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Location    string    `json:"location"`
	Category    *Category `json:"category"`
	Venue       *Venue    `json:"venue"`
}

// DisplayLocation prefers the venue name and falls back to the free-text
// location when the event has no venue.
func (event Event) DisplayLocation() string {
	if event.Venue != nil && event.Venue.Name != "" {
		return event.Venue.Name
	}
	return event.Location
}

func (event Event) IsUpcoming(now time.Time) bool {
	return event.StartDate.After(now)
}

type EventPost struct {
	ID        int64     `json:"id"`
	Event     int64     `json:"event"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type EventPage struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []Event `json:"results"`
}

func (page EventPage) HasNext() bool {
	return page.Next != nil && *page.Next != ""
}

func (page EventPage) HasPrevious() bool {
	return page.Previous != nil && *page.Previous != ""
}

func (client client) GetEvents(ctx context.Context, query Query) (*EventPage, error) {
	var page EventPage
	err := client.sendRequest(ctx, EventsEndpoint, query.Encode(), &page)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	return &page, nil
}

func (client client) GetEvent(ctx context.Context, id string) (*Event, error) {
	endpoint := fmt.Sprintf("%s%s/", EventsEndpoint, url.PathEscape(id))

	var event Event
	err := client.sendRequest(ctx, endpoint, "", &event)

	var statusErr StatusError
	if errors.As(err, &statusErr) {
		return nil, fmt.Errorf("%w: %s (%w)", ErrNotFound, id, err)
	}
	if err != nil {
		return nil, err
	}

	return &event, nil
}
