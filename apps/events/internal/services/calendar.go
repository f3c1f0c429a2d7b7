package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"events.xdoubleu.com/apps/events/pkg/eventsapi"
	ics "github.com/arran4/golang-ical"
)

const productID = "-//xdoubleu//local-events//EN"

type CalendarService struct {
	events *EventService
}

// ExportEvent fetches a single event and renders it as an iCalendar
// document. detailURL is linked from the VEVENT.
func (service *CalendarService) ExportEvent(
	ctx context.Context,
	id string,
	detailURL string,
	host string,
) ([]byte, error) {
	event, err := service.events.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	return BuildCalendar(event, detailURL, host, time.Now().UTC()), nil
}

func BuildCalendar(
	event *eventsapi.Event,
	detailURL string,
	host string,
	stamp time.Time,
) []byte {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)

	ev := cal.AddEvent(fmt.Sprintf("event-%d@%s", event.ID, host))
	ev.SetDtStampTime(stamp)
	ev.SetStartAt(event.StartDate)
	ev.SetEndAt(event.EndDate)
	ev.SetSummary(event.Title)

	if event.Description != "" {
		ev.SetDescription(event.Description)
	}

	if location := calendarLocation(event); location != "" {
		ev.SetLocation(location)
	}

	if event.Category != nil && event.Category.Name != "" {
		ev.AddProperty(ics.ComponentPropertyCategories, event.Category.Name)
	}

	if detailURL != "" {
		ev.SetURL(detailURL)
	}

	return []byte(cal.Serialize())
}

func calendarLocation(event *eventsapi.Event) string {
	if event.Venue == nil {
		return event.Location
	}

	parts := []string{}
	for _, part := range []string{event.Venue.Name, event.Venue.Address} {
		if part != "" {
			parts = append(parts, part)
		}
	}

	return strings.Join(parts, ", ")
}
