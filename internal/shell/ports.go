package shell

import (
	"context"

	"github.com/iliyamo/cinema-console/internal/model"
	"github.com/iliyamo/cinema-console/internal/queue"
)

// FilmStore is the film catalogue.  GetByID reports a missing film as
// repository.ErrFilmNotFound.
type FilmStore interface {
	ListAll(ctx context.Context) ([]model.Film, error)
	GetByID(ctx context.Context, id uint64) (*model.Film, error)
	Create(ctx context.Context, f model.Film) (model.Film, error)
}

// SeanceStore lists and schedules seances.  Create expects s.Film to
// reference an existing film.
type SeanceStore interface {
	ListAll(ctx context.Context) ([]model.Seance, error)
	GetByID(ctx context.Context, id uint64) (*model.Seance, error)
	Create(ctx context.Context, s model.Seance) (model.Seance, error)
}

// SpectateurStore holds the registered spectateurs.
type SpectateurStore interface {
	ListAll(ctx context.Context) ([]model.Spectateur, error)
	GetByID(ctx context.Context, id uint64) (*model.Spectateur, error)
	Create(ctx context.Context, s model.Spectateur) (model.Spectateur, error)
}

// TicketStore reserves tickets.  Reserve returns a ticket with a
// positive ID or an error, never both.
type TicketStore interface {
	Reserve(ctx context.Context, seanceID, spectateurID uint64, price float64) (model.Ticket, error)
}

// Publisher is satisfied by every queue publisher.
type Publisher interface {
	PublishTicketReserved(ctx context.Context, ev queue.TicketReservedEvent) error
}
