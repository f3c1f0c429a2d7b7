package events

import "events.xdoubleu.com/apps/events/pkg/eventsapi"

type Clients struct {
	Events eventsapi.Client
}
