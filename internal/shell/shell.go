// Package shell implements the interactive cinema console: a numbered
// menu read from the operator, one handler per entry, and the error
// reporting that keeps the loop alive whatever a handler does.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/iliyamo/cinema-console/internal/queue"
	"github.com/iliyamo/cinema-console/internal/repository"
)

// Menu choices.
const (
	choiceQuit = iota
	choiceListFilms
	choiceAddFilm
	choiceListSeances
	choiceAddSeance
	choiceListSpectateurs
	choiceAddSpectateur
	choiceReserveTicket
)

// Deps groups the collaborators of a Shell.  The four stores and In/Out
// are required; Err defaults to Out, Events to a no-op publisher, Log to
// a discarding logger and Now to time.Now.
type Deps struct {
	Films       FilmStore
	Seances     SeanceStore
	Spectateurs SpectateurStore
	Tickets     TicketStore
	Events      Publisher
	Log         *slog.Logger
	In          io.Reader
	Out         io.Writer
	Err         io.Writer
	Now         func() time.Time
}

// Shell is the operator console.  It processes one action at a time and
// holds no state between actions.
type Shell struct {
	films       FilmStore
	seances     SeanceStore
	spectateurs SpectateurStore
	tickets     TicketStore
	events      Publisher
	log         *slog.Logger
	now         func() time.Time

	in     *Prompter
	out    io.Writer
	errOut io.Writer
	st     styles
	errSt  styles
}

// New builds a Shell from d, filling in optional dependencies.
func New(d Deps) *Shell {
	if d.Err == nil {
		d.Err = d.Out
	}
	if d.Events == nil {
		d.Events = queue.NopPublisher{}
	}
	if d.Log == nil {
		d.Log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return &Shell{
		films:       d.Films,
		seances:     d.Seances,
		spectateurs: d.Spectateurs,
		tickets:     d.Tickets,
		events:      d.Events,
		log:         d.Log.With("component", "shell"),
		now:         d.Now,
		in:          NewPrompter(d.In, d.Out),
		out:         d.Out,
		errOut:      d.Err,
		st:          newStyles(d.Out),
		errSt:       newStyles(d.Err),
	}
}

// Run loops over the menu until the operator picks 0 or input ends.  Only
// a failure to read input ends the loop with an error; handler failures
// are reported and the menu is shown again.
func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, s.st.title.Render("Cinema Console App"))
	for {
		s.printMenu()
		choice, err := s.in.Int("Choice: ")
		if err == nil && choice == choiceQuit {
			fmt.Fprintln(s.out, "Bye")
			return nil
		}
		if err == nil {
			err = s.dispatch(ctx, choice)
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out, "\nBye")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *Shell) printMenu() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, s.st.section.Render("=== MENU ==="))
	fmt.Fprintln(s.out, "1  - List films")
	fmt.Fprintln(s.out, "2  - Add film")
	fmt.Fprintln(s.out, "3  - List seances")
	fmt.Fprintln(s.out, "4  - Add seance")
	fmt.Fprintln(s.out, "5  - List spectateurs")
	fmt.Fprintln(s.out, "6  - Add spectateur")
	fmt.Fprintln(s.out, "7  - Reserve ticket")
	fmt.Fprintln(s.out, "0  - Quit")
}

// dispatch runs the handler for choice.  It returns only input errors;
// everything else, panics included, is reported here.
func (s *Shell) dispatch(ctx context.Context, choice int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("handler panicked", "choice", choice, "panic", r)
			s.errorf("Unexpected error: %v", r)
			fmt.Fprintf(s.errOut, "%s", debug.Stack())
			err = nil
		}
	}()

	var handle func(context.Context) error
	switch choice {
	case choiceListFilms:
		handle = s.listFilms
	case choiceAddFilm:
		handle = s.addFilm
	case choiceListSeances:
		handle = s.listSeances
	case choiceAddSeance:
		handle = s.addSeance
	case choiceListSpectateurs:
		handle = s.listSpectateurs
	case choiceAddSpectateur:
		handle = s.addSpectateur
	case choiceReserveTicket:
		handle = s.reserveTicket
	default:
		fmt.Fprintln(s.out, "Invalid choice")
		return nil
	}
	return s.report(choice, handle(ctx))
}

func (s *Shell) report(choice int, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, io.EOF) || errors.Is(err, errInput) {
		return err
	}
	var se *repository.StoreError
	if errors.As(err, &se) {
		s.log.Warn("store error", "choice", choice, "op", se.Op, "err", se.Err)
		s.errorf("DB error: %v", err)
		return nil
	}
	s.log.Error("unexpected error", "choice", choice, "err", err)
	s.errorf("Unexpected error: %+v", err)
	return nil
}

func (s *Shell) errorf(format string, args ...any) {
	fmt.Fprintln(s.errOut, s.errSt.errText.Render(fmt.Sprintf(format, args...)))
}

func (s *Shell) section(name string) {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, s.st.section.Render("--- "+name+" ---"))
}

func (s *Shell) empty(msg string) {
	fmt.Fprintln(s.out, s.st.muted.Render(msg))
}
