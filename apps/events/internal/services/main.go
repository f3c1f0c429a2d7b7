package services

import (
	"log/slog"

	"events.xdoubleu.com/apps/events/pkg/eventsapi"
)

type Services struct {
	Events   *EventService
	Calendar *CalendarService
}

func New(logger *slog.Logger, eventsClient eventsapi.Client) *Services {
	events := &EventService{
		logger: logger,
		client: eventsClient,
	}

	return &Services{
		Events:   events,
		Calendar: &CalendarService{events: events},
	}
}
