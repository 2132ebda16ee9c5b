package model

import "fmt"

// Ticket links one spectateur to one seance at a price.  Seat numbers are
// not tracked and several tickets may exist for the same pair.
//
// Fields:
//  ID           – primary key identifier.
//  SeanceID     – seance the ticket is valid for.
//  SpectateurID – patron holding the ticket.
//  Price        – amount paid, as entered by the operator.
type Ticket struct {
    ID           uint64  // tickets.id
    SeanceID     uint64  // tickets.seance_id
    SpectateurID uint64  // tickets.spectateur_id
    Price        float64 // tickets.price (DECIMAL(10,2))
}

// NewTicket builds a Ticket from all of its attributes.
func NewTicket(id, seanceID, spectateurID uint64, price float64) Ticket {
    return Ticket{ID: id, SeanceID: seanceID, SpectateurID: spectateurID, Price: price}
}

func (t Ticket) String() string {
    return fmt.Sprintf("%d | seance %d | spectateur %d | %.2f", t.ID, t.SeanceID, t.SpectateurID, t.Price)
}
