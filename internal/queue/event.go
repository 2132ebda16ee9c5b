// Package queue defines message payloads exchanged over the message broker.
package queue

import (
    "time"

    "github.com/google/uuid"

    "github.com/iliyamo/cinema-console/internal/model"
)

// TicketReservedEvent is published when a ticket is successfully reserved.
// It contains enough information for downstream consumers to log, notify,
// or trigger analytics without querying the primary database.
type TicketReservedEvent struct {
    EventID         string  `json:"event_id"`
    TicketID        uint64  `json:"ticket_id"`
    SeanceID        uint64  `json:"seance_id"`
    SpectateurID    uint64  `json:"spectateur_id"`
    FilmTitle       string  `json:"film_title"`
    Room            string  `json:"room"`
    StartsAt        string  `json:"starts_at"`
    SpectateurName  string  `json:"spectateur_name"`
    SpectateurEmail string  `json:"spectateur_email"`
    Price           float64 `json:"price"`
    ReservedAt      string  `json:"reserved_at"`
}

// NewTicketReservedEvent assembles the event for a freshly reserved ticket.
// Timestamps are RFC3339 in UTC.
func NewTicketReservedEvent(t model.Ticket, s model.Seance, sp model.Spectateur, now time.Time) TicketReservedEvent {
    return TicketReservedEvent{
        EventID:         uuid.NewString(),
        TicketID:        t.ID,
        SeanceID:        t.SeanceID,
        SpectateurID:    t.SpectateurID,
        FilmTitle:       s.Film.Title,
        Room:            s.Room,
        StartsAt:        s.StartsAt.UTC().Format(time.RFC3339),
        SpectateurName:  sp.Name,
        SpectateurEmail: sp.Email,
        Price:           t.Price,
        ReservedAt:      now.UTC().Format(time.RFC3339),
    }
}
