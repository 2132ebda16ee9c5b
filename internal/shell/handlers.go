package shell

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/iliyamo/cinema-console/internal/model"
	"github.com/iliyamo/cinema-console/internal/queue"
	"github.com/iliyamo/cinema-console/internal/repository"
)

func (s *Shell) listFilms(ctx context.Context) error {
	films, err := s.films.ListAll(ctx)
	if err != nil {
		return err
	}
	s.section("Films")
	if len(films) == 0 {
		s.empty(" (no films)")
	}
	for _, f := range films {
		fmt.Fprintln(s.out, f)
	}
	return nil
}

func (s *Shell) addFilm(ctx context.Context) error {
	title, err := s.in.Line("Title: ")
	if err != nil {
		return err
	}
	if title == "" {
		fmt.Fprintln(s.out, "Empty title. Cancelled.")
		return nil
	}
	duration, err := s.in.Int("Duration (minutes): ")
	if err != nil {
		return err
	}
	category, err := s.in.Line("Category: ")
	if err != nil {
		return err
	}

	f, err := s.films.Create(ctx, model.NewFilm(0, title, duration, category))
	if err != nil {
		return err
	}
	s.log.Info("film created", "film_id", f.ID)
	fmt.Fprintf(s.out, "Added: %s\n", f)
	return nil
}

func (s *Shell) listSeances(ctx context.Context) error {
	seances, err := s.seances.ListAll(ctx)
	if err != nil {
		return err
	}
	s.section("Seances")
	if len(seances) == 0 {
		s.empty(" (no seances)")
	}
	for _, se := range seances {
		fmt.Fprintln(s.out, se)
	}
	return nil
}

// addSeance lists the films first so the operator can pick a valid id.
// An unknown film or a malformed start time cancels the action before
// anything is written.
func (s *Shell) addSeance(ctx context.Context) error {
	if err := s.listFilms(ctx); err != nil {
		return err
	}
	n, err := s.in.Int("Film ID: ")
	if err != nil {
		return err
	}
	film, err := s.findFilm(ctx, n)
	if err != nil || film == nil {
		return err
	}

	room, err := s.in.Line("Room: ")
	if err != nil {
		return err
	}
	capacity, err := s.in.Int("Capacity: ")
	if err != nil {
		return err
	}
	raw, err := s.in.Line("Start time (yyyy-MM-dd HH:mm): ")
	if err != nil {
		return err
	}
	start, perr := model.ParseStartTime(raw)
	if perr != nil {
		fmt.Fprintln(s.out, "Invalid start time format. Expected: yyyy-MM-dd HH:mm. Cancelled.")
		return nil
	}

	created, err := s.seances.Create(ctx, model.NewSeance(0, *film, start, room, capacity))
	if err != nil {
		return err
	}
	s.log.Info("seance created", "seance_id", created.ID, "film_id", film.ID)
	fmt.Fprintf(s.out, "Seance created: %s\n", created)
	return nil
}

func (s *Shell) listSpectateurs(ctx context.Context) error {
	list, err := s.spectateurs.ListAll(ctx)
	if err != nil {
		return err
	}
	s.section("Spectateurs")
	if len(list) == 0 {
		s.empty(" (no spectateurs)")
	}
	for _, sp := range list {
		fmt.Fprintln(s.out, sp)
	}
	return nil
}

func (s *Shell) addSpectateur(ctx context.Context) error {
	name, err := s.in.Line("Name: ")
	if err != nil {
		return err
	}
	if name == "" {
		fmt.Fprintln(s.out, "Empty name. Cancelled.")
		return nil
	}
	email, err := s.in.Line("Email: ")
	if err != nil {
		return err
	}

	sp, err := s.spectateurs.Create(ctx, model.NewSpectateur(0, name, email))
	if err != nil {
		return err
	}
	s.log.Info("spectateur created", "spectateur_id", sp.ID)
	fmt.Fprintf(s.out, "Added: %s\n", sp)
	return nil
}

// reserveTicket resolves the seance and the spectateur before asking for
// a price.  A failed reservation is reported here rather than by the
// loop; a failed event publish is only logged.
func (s *Shell) reserveTicket(ctx context.Context) error {
	if err := s.listSeances(ctx); err != nil {
		return err
	}
	n, err := s.in.Int("Seance ID: ")
	if err != nil {
		return err
	}
	seance, err := s.findSeance(ctx, n)
	if err != nil || seance == nil {
		return err
	}

	if err := s.listSpectateurs(ctx); err != nil {
		return err
	}
	n, err = s.in.Int("Spectateur ID: ")
	if err != nil {
		return err
	}
	spect, err := s.findSpectateur(ctx, n)
	if err != nil || spect == nil {
		return err
	}

	price, err := s.in.Float("Price (e.g. 45.0): ")
	if err != nil {
		return err
	}

	t, err := s.tickets.Reserve(ctx, seance.ID, spect.ID, price)
	if err != nil {
		s.log.Warn("reservation failed", "seance_id", seance.ID, "spectateur_id", spect.ID, "err", err)
		s.errorf("Reservation failed: %v", err)
		return nil
	}
	fmt.Fprintf(s.out, "Ticket reserved: id=%d price=%s\n", t.ID, strconv.FormatFloat(t.Price, 'f', -1, 64))

	ev := queue.NewTicketReservedEvent(t, *seance, *spect, s.now())
	if err := s.events.PublishTicketReserved(ctx, ev); err != nil {
		s.log.Warn("publish ticket event failed", "ticket_id", t.ID, "event_id", ev.EventID, "err", err)
	}
	return nil
}

// The find helpers return (nil, nil) after telling the operator the id
// did not resolve; non-positive ids never reach the store.

func (s *Shell) findFilm(ctx context.Context, n int) (*model.Film, error) {
	var f *model.Film
	err := repository.ErrFilmNotFound
	if n > 0 {
		f, err = s.films.GetByID(ctx, uint64(n))
	}
	if errors.Is(err, repository.ErrFilmNotFound) {
		fmt.Fprintf(s.out, "Film not found (id=%d). Cancelled.\n", n)
		return nil, nil
	}
	return f, err
}

func (s *Shell) findSeance(ctx context.Context, n int) (*model.Seance, error) {
	var se *model.Seance
	err := repository.ErrSeanceNotFound
	if n > 0 {
		se, err = s.seances.GetByID(ctx, uint64(n))
	}
	if errors.Is(err, repository.ErrSeanceNotFound) {
		fmt.Fprintf(s.out, "Seance not found (id=%d). Cancelled.\n", n)
		return nil, nil
	}
	return se, err
}

func (s *Shell) findSpectateur(ctx context.Context, n int) (*model.Spectateur, error) {
	var sp *model.Spectateur
	err := repository.ErrSpectateurNotFound
	if n > 0 {
		sp, err = s.spectateurs.GetByID(ctx, uint64(n))
	}
	if errors.Is(err, repository.ErrSpectateurNotFound) {
		fmt.Fprintf(s.out, "Spectateur not found (id=%d). Cancelled.\n", n)
		return nil, nil
	}
	return sp, err
}
