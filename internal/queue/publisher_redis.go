package queue

import (
    "context"
    "encoding/json"
    "fmt"

    "github.com/redis/go-redis/v9"
)

// streamMaxLen caps the event stream; older entries are trimmed
// approximately.
const streamMaxLen = 10000

// RedisPublisher appends events to a Redis stream.  Each entry carries
// the event id and the JSON payload.
type RedisPublisher struct {
    client *redis.Client
    stream string
}

// NewRedisPublisher returns a publisher writing to stream.  The publisher
// owns client and closes it on Close.
func NewRedisPublisher(client *redis.Client, stream string) *RedisPublisher {
    return &RedisPublisher{client: client, stream: stream}
}

func (p *RedisPublisher) PublishTicketReserved(ctx context.Context, ev TicketReservedEvent) error {
    body, err := json.Marshal(ev)
    if err != nil {
        return err
    }
    if err := p.client.XAdd(ctx, &redis.XAddArgs{
        Stream: p.stream,
        MaxLen: streamMaxLen,
        Approx: true,
        Values: map[string]any{
            "event_id": ev.EventID,
            "payload":  string(body),
        },
    }).Err(); err != nil {
        return fmt.Errorf("xadd %s: %w", p.stream, err)
    }
    return nil
}

func (p *RedisPublisher) Close() error { return p.client.Close() }
