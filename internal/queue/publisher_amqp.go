package queue

import (
    "context"
    "encoding/json"
    "fmt"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPPublisher publishes events to a durable RabbitMQ queue through the
// default exchange.  A connection is opened per publish.
type AMQPPublisher struct {
    url   string
    queue string
}

// DialTimeout bounds the TCP connect and handshake of each publish so an
// unreachable broker cannot stall the menu.
const DialTimeout = 2 * time.Second

// NewAMQPPublisher returns a publisher for queue on the broker at url.
func NewAMQPPublisher(url, queue string) *AMQPPublisher {
    return &AMQPPublisher{url: url, queue: queue}
}

// PublishTicketReserved publishes ev to the configured queue.  Errors are
// returned unlogged; the caller decides whether they matter.  Messages are
// marked as persistent.
func (p *AMQPPublisher) PublishTicketReserved(ctx context.Context, ev TicketReservedEvent) error {
    conn, err := amqp.DialConfig(p.url, amqp.Config{
        Heartbeat: 10 * time.Second,
        Locale:    "en_US",
        Dial:      amqp.DefaultDial(DialTimeout),
    })
    if err != nil {
        return fmt.Errorf("dial %s: %w", p.queue, err)
    }
    defer func() { _ = conn.Close() }()

    ch, err := conn.Channel()
    if err != nil {
        return fmt.Errorf("open channel: %w", err)
    }
    defer func() { _ = ch.Close() }()

    // Ensure the queue exists (idempotent). Durable so messages survive broker restarts.
    if err := declareQueue(ch, p.queue); err != nil {
        return fmt.Errorf("declare %s: %w", p.queue, err)
    }

    body, err := json.Marshal(ev)
    if err != nil {
        return err
    }

    pub := amqp.Publishing{
        ContentType:  "application/json",
        DeliveryMode: amqp.Persistent, // store on disk
        MessageId:    ev.EventID,
        Timestamp:    time.Now().UTC(),
        Body:         body,
    }

    if err := ch.PublishWithContext(ctx,
        "",      // default exchange
        p.queue, // routing key = queue name
        false,   // mandatory
        false,   // immediate
        pub,
    ); err != nil {
        return fmt.Errorf("publish %s: %w", p.queue, err)
    }
    return nil
}

// Close is a no-op; connections do not outlive a publish.
func (p *AMQPPublisher) Close() error { return nil }

func declareQueue(ch *amqp.Channel, name string) error {
    _, err := ch.QueueDeclare(
        name,  // name
        true,  // durable
        false, // autoDelete
        false, // exclusive
        false, // noWait
        nil,   // args
    )
    return err
}
