package services

import (
	"context"
	"log/slog"
	"net/url"

	"events.xdoubleu.com/apps/events/pkg/eventsapi"
)

type EventService struct {
	logger *slog.Logger
	client eventsapi.Client
}

// ListEvents forwards the URL filters to the API as they are. Failures are
// returned as eventsapi.ErrFetchFailed.
func (service *EventService) ListEvents(
	ctx context.Context,
	values url.Values,
) (*eventsapi.EventPage, error) {
	query := eventsapi.QueryFromValues(values)

	page, err := service.client.GetEvents(ctx, query)
	if err != nil {
		return nil, err
	}

	service.logger.Debug(
		"fetched events",
		slog.String("query", query.Encode()),
		slog.Int("count", page.Count),
		slog.Int("results", len(page.Results)),
	)

	return page, nil
}

// GetEvent returns eventsapi.ErrNotFound for any non-success response.
func (service *EventService) GetEvent(
	ctx context.Context,
	id string,
) (*eventsapi.Event, error) {
	return service.client.GetEvent(ctx, id)
}
