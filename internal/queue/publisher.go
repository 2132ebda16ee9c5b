package queue

import (
    "context"
    "fmt"

    "github.com/iliyamo/cinema-console/internal/config"
)

// Publisher announces ticket reservations to downstream consumers.
// Callers treat a publish error as non-fatal: the ticket row already
// exists when the event is sent.
type Publisher interface {
    PublishTicketReserved(ctx context.Context, ev TicketReservedEvent) error
    Close() error
}

// NopPublisher drops every event.  It is used when EVENTS_BACKEND=none.
type NopPublisher struct{}

func (NopPublisher) PublishTicketReserved(context.Context, TicketReservedEvent) error { return nil }
func (NopPublisher) Close() error                                                  { return nil }

// NewPublisher returns the publisher selected by cfg.Backend.
func NewPublisher(cfg config.EventsConfig) (Publisher, error) {
    switch cfg.Backend {
    case config.EventsAMQP:
        return NewAMQPPublisher(cfg.AMQPURL, cfg.Queue), nil
    case config.EventsRedis:
        client, err := config.NewRedisClient(cfg)
        if err != nil {
            return nil, err
        }
        return NewRedisPublisher(client, cfg.Stream), nil
    case config.EventsNone, "":
        return NopPublisher{}, nil
    }
    return nil, fmt.Errorf("unknown events backend %q", cfg.Backend)
}
