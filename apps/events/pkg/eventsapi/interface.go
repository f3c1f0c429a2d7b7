package eventsapi

import "context"

type Client interface {
	GetEvents(ctx context.Context, query Query) (*EventPage, error)
	GetEvent(ctx context.Context, id string) (*Event, error)
}
