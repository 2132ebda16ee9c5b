package shell

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/cinema-console/internal/model"
)

type harness struct {
	db     *memDB
	events *recordingPublisher
	out    *bytes.Buffer
	errOut *bytes.Buffer
}

// run feeds lines to a fresh shell over db and returns what it printed.
func run(t *testing.T, db *memDB, lines ...string) harness {
	t.Helper()
	h := harness{db: db, events: &recordingPublisher{}, out: &bytes.Buffer{}, errOut: &bytes.Buffer{}}
	sh := New(Deps{
		Films:       fakeFilms{db},
		Seances:     fakeSeances{db},
		Spectateurs: fakeSpectateurs{db},
		Tickets:     fakeTickets{db},
		Events:      h.events,
		In:          strings.NewReader(strings.Join(lines, "\n") + "\n"),
		Out:         h.out,
		Err:         h.errOut,
		Now:         func() time.Time { return time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC) },
	})
	require.NoError(t, sh.Run(context.Background()))
	return h
}

func seeded() *memDB {
	film := model.NewFilm(1, "Dune", 155, "SciFi")
	return &memDB{
		films:       []model.Film{film},
		seances:     []model.Seance{model.NewSeance(1, film, time.Date(2024, time.March, 15, 19, 30, 0, 0, time.UTC), "Room 1", 100)},
		spectateurs: []model.Spectateur{model.NewSpectateur(1, "Alice", "a@x.com")},
	}
}

func TestShell_FullScenario(t *testing.T) {
	db := &memDB{}
	h := run(t, db,
		"2", "Dune", "155", "SciFi",
		"1",
		"4", "1", "Room 1", "100", "2024-03-15 19:30",
		"3",
		"6", "Alice", "a@x.com",
		"7", "1", "1", "12.5",
		"0",
	)

	out := h.out.String()
	assert.Contains(t, out, "Added: 1 | Dune | 155 min | SciFi")
	assert.Contains(t, out, "1 | Dune (155 min, SciFi) | 2024-03-15 19:30 | room Room 1 | capacity 100")
	assert.Contains(t, out, "Added: 1 | Alice | a@x.com")
	assert.Contains(t, out, "Ticket reserved: id=1 price=12.5")
	assert.True(t, strings.HasSuffix(out, "Bye\n"))
	assert.Empty(t, h.errOut.String())

	require.Len(t, db.tickets, 1)
	assert.Equal(t, model.NewTicket(1, 1, 1, 12.5), db.tickets[0])
	require.Len(t, h.events.events, 1)
	assert.Equal(t, "Dune", h.events.events[0].FilmTitle)
	assert.Equal(t, "Alice", h.events.events[0].SpectateurName)
}

func TestShell_ListEmpty(t *testing.T) {
	h := run(t, &memDB{}, "1", "3", "5", "0")

	out := h.out.String()
	assert.Contains(t, out, "(no films)")
	assert.Contains(t, out, "(no seances)")
	assert.Contains(t, out, "(no spectateurs)")
}

func TestShell_AddFilm_EmptyTitleCancels(t *testing.T) {
	db := &memDB{}
	h := run(t, db, "2", "   ", "0")

	assert.Contains(t, h.out.String(), "Empty title. Cancelled.")
	assert.NotContains(t, h.out.String(), "Duration")
	assert.Empty(t, db.films)
}

func TestShell_AddSpectateur_EmptyNameCancels(t *testing.T) {
	db := &memDB{}
	h := run(t, db, "6", "", "0")

	assert.Contains(t, h.out.String(), "Empty name. Cancelled.")
	assert.Empty(t, db.spectateurs)
}

func TestShell_AddSeance_UnknownFilmCancelsBeforeCreate(t *testing.T) {
	db := seeded()
	h := run(t, db, "4", "9", "0")

	assert.Contains(t, h.out.String(), "Film not found (id=9). Cancelled.")
	assert.NotContains(t, h.out.String(), "Room: ")
	assert.Len(t, db.seances, 1)
}

func TestShell_AddSeance_BadDateCancels(t *testing.T) {
	db := seeded()
	h := run(t, db, "4", "1", "Room 2", "80", "15/03/2024", "0")

	assert.Contains(t, h.out.String(), "Invalid start time format. Expected: yyyy-MM-dd HH:mm. Cancelled.")
	assert.Len(t, db.seances, 1)
}

func TestShell_NumericRetry(t *testing.T) {
	db := &memDB{}
	h := run(t, db, "abc", "2", "Alien", "long", "117", "Horror", "0")

	assert.Equal(t, 2, strings.Count(h.out.String(), "Invalid input. Try again: "))
	require.Len(t, db.films, 1)
	assert.Equal(t, 117, db.films[0].DurationMin)
}

func TestShell_InvalidChoice(t *testing.T) {
	h := run(t, &memDB{}, "9", "-1", "0")

	assert.Equal(t, 2, strings.Count(h.out.String(), "Invalid choice"))
}

func TestShell_EndOfInputExits(t *testing.T) {
	h := run(t, &memDB{}, "1")

	assert.True(t, strings.HasSuffix(h.out.String(), "Bye\n"))
}

func TestShell_VeryLongLineDoesNotStopLoop(t *testing.T) {
	db := &memDB{}
	title := strings.Repeat("x", 70000)
	h := run(t, db, "2", title, "1", "Drama", "0")

	require.Len(t, db.films, 1)
	assert.Len(t, db.films[0].Title, len(title))
	assert.True(t, strings.HasSuffix(h.out.String(), "Bye\n"))
	assert.Empty(t, h.errOut.String())
}

func TestShell_EndOfInputMidActionExits(t *testing.T) {
	db := &memDB{}
	h := run(t, db, "2", "Dune")

	assert.Contains(t, h.out.String(), "Duration (minutes): ")
	assert.True(t, strings.HasSuffix(h.out.String(), "Bye\n"))
	assert.Empty(t, db.films)
}

func TestShell_Reserve_UnknownSeance(t *testing.T) {
	db := seeded()
	h := run(t, db, "7", "42", "0")

	assert.Contains(t, h.out.String(), "Seance not found (id=42). Cancelled.")
	assert.NotContains(t, h.out.String(), "Spectateur ID")
	assert.Empty(t, db.tickets)
	assert.Empty(t, h.events.events)
}

func TestShell_Reserve_UnknownSpectateur(t *testing.T) {
	db := seeded()
	h := run(t, db, "7", "1", "0", "0")

	assert.Contains(t, h.out.String(), "Spectateur not found (id=0). Cancelled.")
	assert.Empty(t, db.tickets)
}

func TestShell_Reserve_StoreRejects(t *testing.T) {
	db := seeded()
	db.reserveErr = fkErr("reserve ticket")
	h := run(t, db, "7", "1", "1", "10", "0")

	assert.Contains(t, h.errOut.String(), "Reservation failed: reserve ticket: referenced row not found")
	assert.NotContains(t, h.out.String(), "Ticket reserved")
	assert.Empty(t, db.tickets)
	assert.Empty(t, h.events.events)
}

func TestShell_Reserve_PublishFailureIsNotFatal(t *testing.T) {
	db := seeded()
	events := &recordingPublisher{err: errors.New("broker down")}
	out, logs := &bytes.Buffer{}, &bytes.Buffer{}
	sh := New(Deps{
		Films: fakeFilms{db}, Seances: fakeSeances{db}, Spectateurs: fakeSpectateurs{db}, Tickets: fakeTickets{db},
		Events: events,
		Log:    slog.New(slog.NewJSONHandler(logs, nil)),
		In:     strings.NewReader("7\n1\n1\n8\n0\n"),
		Out:    out,
	})

	require.NoError(t, sh.Run(context.Background()))

	assert.Contains(t, out.String(), "Ticket reserved: id=1 price=8")
	assert.NotContains(t, out.String(), "broker down")
	assert.Len(t, db.tickets, 1)
	assert.Len(t, events.events, 1)
	assert.Equal(t, 1, strings.Count(logs.String(), "broker down"))
}

func TestShell_Reserve_SameSeatTwice(t *testing.T) {
	db := seeded()
	run(t, db, "7", "1", "1", "10", "7", "1", "1", "10", "0")

	assert.Len(t, db.tickets, 2)
}

func TestShell_StoreErrorIsReportedAndLoopContinues(t *testing.T) {
	db := seeded()
	db.listErr = errDown
	h := run(t, db, "1", "6", "Bob", "b@x.com", "0")

	assert.Contains(t, h.errOut.String(), "DB error: list films: connection refused")
	assert.Contains(t, h.out.String(), "Added: 2 | Bob | b@x.com")
}

func TestShell_UnexpectedErrorIsReported(t *testing.T) {
	db := seeded()
	db.listErr = errors.New("weird")
	h := run(t, db, "5", "0")

	assert.Contains(t, h.errOut.String(), "Unexpected error: weird")
	assert.True(t, strings.HasSuffix(h.out.String(), "Bye\n"))
}

func TestShell_PanicIsRecovered(t *testing.T) {
	db := seeded()
	db.panicOn = "list seances"
	h := run(t, db, "3", "1", "0")

	assert.Contains(t, h.errOut.String(), "Unexpected error: boom in list seances")
	assert.Contains(t, h.errOut.String(), "goroutine")
	assert.Contains(t, h.out.String(), "1 | Dune | 155 min | SciFi")
}
