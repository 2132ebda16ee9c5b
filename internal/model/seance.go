package model

import (
    "errors"
    "fmt"
    "time"
)

// StartTimeLayout is the only accepted textual form of a seance start
// time: four-digit year, two-digit month and day, 24h hour:minute.
const StartTimeLayout = "2006-01-02 15:04"

// ErrStartTimeFormat is returned by ParseStartTime when the input does not
// match StartTimeLayout.
var ErrStartTimeFormat = errors.New("start time must match yyyy-MM-dd HH:mm")

// Seance represents a scheduled screening of a film in a room.  The film
// is an owned copy of the referenced row, loaded together with the seance.
//
// Fields:
//  ID       – primary key identifier.
//  Film     – the film being screened (seances.film_id joined to films).
//  StartsAt – when the screening begins (UTC).
//  Room     – room name.
//  Capacity – number of seats in the room. Not enforced on reservation.
type Seance struct {
    ID       uint64    // seances.id
    Film     Film      // seances.film_id -> films
    StartsAt time.Time // seances.starts_at
    Room     string    // seances.room
    Capacity int       // seances.capacity
}

// NewSeance builds a Seance from all of its attributes.
func NewSeance(id uint64, film Film, startsAt time.Time, room string, capacity int) Seance {
    return Seance{ID: id, Film: film, StartsAt: startsAt, Room: room, Capacity: capacity}
}

// String renders the seance and its film on one line.
func (s Seance) String() string {
    return fmt.Sprintf("%d | %s (%d min, %s) | %s | room %s | capacity %d",
        s.ID, s.Film.Title, s.Film.DurationMin, s.Film.Category,
        s.StartsAt.Format(StartTimeLayout), s.Room, s.Capacity)
}

// ParseStartTime parses operator input against StartTimeLayout.  Every
// field is fixed width, so "2024-03-15 9:30" is rejected.  The result is in
// UTC, matching how the store is configured.
func ParseStartTime(s string) (time.Time, error) {
    t, err := time.ParseInLocation(StartTimeLayout, s, time.UTC)
    if err != nil || t.Format(StartTimeLayout) != s {
        return time.Time{}, fmt.Errorf("%w: %q", ErrStartTimeFormat, s)
    }
    return t, nil
}
