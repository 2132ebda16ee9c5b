package repository

import (
	"context"
	"database/sql"
	"errors"
	"math"

	"github.com/iliyamo/cinema-console/internal/model"
)

// ErrTicketNotFound indicates that a ticket was not located in the DB.
var ErrTicketNotFound = errors.New("ticket not found")

// TicketRepo provides persistence for tickets.  A ticket references one
// seance and one spectateur; both references are checked by the store's
// foreign keys at insert time.  There is no seat accounting: the same
// spectateur may reserve the same seance any number of times and the
// seance capacity is never compared with the ticket count.
type TicketRepo struct {
	db *sql.DB
}

// NewTicketRepo returns a new TicketRepo bound to the given database.
func NewTicketRepo(db *sql.DB) *TicketRepo { return &TicketRepo{db: db} }

// Reserve inserts a ticket for the given seance and spectateur.  It
// returns either a ticket with a positive ID or a non-nil error, never
// both.  A missing seance or spectateur yields a StoreError matching
// ErrReferenceNotFound.  The price is rounded to cents, the precision of
// tickets.price, so the returned ticket matches the stored row.
func (r *TicketRepo) Reserve(ctx context.Context, seanceID, spectateurID uint64, price float64) (model.Ticket, error) {
	price = math.Round(price*100) / 100
	const q = `INSERT INTO tickets (seance_id, spectateur_id, price) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, seanceID, spectateurID, price)
	if err != nil {
		return model.Ticket{}, storeErr("reserve ticket", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Ticket{}, storeErr("reserve ticket", err)
	}
	if id <= 0 {
		return model.Ticket{}, ErrReservationFailed
	}
	return model.NewTicket(uint64(id), seanceID, spectateurID, price), nil
}

// Create persists t through Reserve so tickets share the uniform
// repository contract.  t.ID is ignored.
func (r *TicketRepo) Create(ctx context.Context, t model.Ticket) (model.Ticket, error) {
	return r.Reserve(ctx, t.SeanceID, t.SpectateurID, t.Price)
}

// GetByID retrieves a ticket by its ID.  It returns ErrTicketNotFound if
// there is no matching row.
func (r *TicketRepo) GetByID(ctx context.Context, id uint64) (*model.Ticket, error) {
	const q = `SELECT id, seance_id, spectateur_id, price FROM tickets WHERE id = ?`
	var t model.Ticket
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&t.ID, &t.SeanceID, &t.SpectateurID, &t.Price); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTicketNotFound
		}
		return nil, storeErr("get ticket", err)
	}
	return &t, nil
}

// ListAll returns every ticket ordered by id.
func (r *TicketRepo) ListAll(ctx context.Context) ([]model.Ticket, error) {
	const q = `SELECT id, seance_id, spectateur_id, price FROM tickets ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, storeErr("list tickets", err)
	}
	defer rows.Close()

	out := []model.Ticket{}
	for rows.Next() {
		var t model.Ticket
		if err := rows.Scan(&t.ID, &t.SeanceID, &t.SpectateurID, &t.Price); err != nil {
			return nil, storeErr("list tickets", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list tickets", err)
	}
	return out, nil
}
