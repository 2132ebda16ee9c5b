package shell

import (
	"context"
	"errors"
	"fmt"

	"github.com/iliyamo/cinema-console/internal/model"
	"github.com/iliyamo/cinema-console/internal/queue"
	"github.com/iliyamo/cinema-console/internal/repository"
)

// memDB backs the fake stores.  IDs start at 1 per table like an
// auto-increment column.
type memDB struct {
	films       []model.Film
	seances     []model.Seance
	spectateurs []model.Spectateur
	tickets     []model.Ticket

	listErr    error // returned by every ListAll when set
	reserveErr error // returned by Reserve when set
	panicOn    string
}

func (db *memDB) fail(op string) error {
	if db.panicOn == op {
		panic("boom in " + op)
	}
	return db.listErr
}

func fkErr(op string) error {
	return &repository.StoreError{Op: op, Err: fmt.Errorf("%w: fk", repository.ErrReferenceNotFound)}
}

type fakeFilms struct{ db *memDB }

func (f fakeFilms) ListAll(context.Context) ([]model.Film, error) {
	if err := f.db.fail("list films"); err != nil {
		return nil, err
	}
	return append([]model.Film{}, f.db.films...), nil
}

func (f fakeFilms) GetByID(_ context.Context, id uint64) (*model.Film, error) {
	for _, film := range f.db.films {
		if film.ID == id {
			return &film, nil
		}
	}
	return nil, repository.ErrFilmNotFound
}

func (f fakeFilms) Create(_ context.Context, film model.Film) (model.Film, error) {
	film.ID = uint64(len(f.db.films) + 1)
	f.db.films = append(f.db.films, film)
	return film, nil
}

type fakeSeances struct{ db *memDB }

func (f fakeSeances) ListAll(context.Context) ([]model.Seance, error) {
	if err := f.db.fail("list seances"); err != nil {
		return nil, err
	}
	return append([]model.Seance{}, f.db.seances...), nil
}

func (f fakeSeances) GetByID(_ context.Context, id uint64) (*model.Seance, error) {
	for _, s := range f.db.seances {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, repository.ErrSeanceNotFound
}

func (f fakeSeances) Create(ctx context.Context, s model.Seance) (model.Seance, error) {
	if _, err := (fakeFilms{f.db}).GetByID(ctx, s.Film.ID); err != nil {
		return model.Seance{}, fkErr("create seance")
	}
	s.ID = uint64(len(f.db.seances) + 1)
	f.db.seances = append(f.db.seances, s)
	return s, nil
}

type fakeSpectateurs struct{ db *memDB }

func (f fakeSpectateurs) ListAll(context.Context) ([]model.Spectateur, error) {
	if err := f.db.fail("list spectateurs"); err != nil {
		return nil, err
	}
	return append([]model.Spectateur{}, f.db.spectateurs...), nil
}

func (f fakeSpectateurs) GetByID(_ context.Context, id uint64) (*model.Spectateur, error) {
	for _, s := range f.db.spectateurs {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, repository.ErrSpectateurNotFound
}

func (f fakeSpectateurs) Create(_ context.Context, s model.Spectateur) (model.Spectateur, error) {
	s.ID = uint64(len(f.db.spectateurs) + 1)
	f.db.spectateurs = append(f.db.spectateurs, s)
	return s, nil
}

type fakeTickets struct{ db *memDB }

func (f fakeTickets) Reserve(ctx context.Context, seanceID, spectateurID uint64, price float64) (model.Ticket, error) {
	if f.db.reserveErr != nil {
		return model.Ticket{}, f.db.reserveErr
	}
	if _, err := (fakeSeances{f.db}).GetByID(ctx, seanceID); err != nil {
		return model.Ticket{}, fkErr("reserve ticket")
	}
	if _, err := (fakeSpectateurs{f.db}).GetByID(ctx, spectateurID); err != nil {
		return model.Ticket{}, fkErr("reserve ticket")
	}
	t := model.NewTicket(uint64(len(f.db.tickets)+1), seanceID, spectateurID, price)
	f.db.tickets = append(f.db.tickets, t)
	return t, nil
}

type recordingPublisher struct {
	events []queue.TicketReservedEvent
	err    error
}

func (p *recordingPublisher) PublishTicketReserved(_ context.Context, ev queue.TicketReservedEvent) error {
	p.events = append(p.events, ev)
	return p.err
}

var errDown = &repository.StoreError{Op: "list films", Err: errors.New("connection refused")}
