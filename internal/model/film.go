package model

import "fmt"

// Film represents a movie that can be scheduled in seances.  The ID is
// assigned by the store on creation; before that it is zero.
//
// Fields:
//  ID          – primary key identifier.
//  Title       – display title, never empty once persisted.
//  DurationMin – running time in minutes.
//  Category    – free-form genre label.
type Film struct {
    ID          uint64 // films.id
    Title       string // films.title
    DurationMin int    // films.duration_min
    Category    string // films.category
}

// NewFilm builds a Film from all of its attributes.
func NewFilm(id uint64, title string, durationMin int, category string) Film {
    return Film{ID: id, Title: title, DurationMin: durationMin, Category: category}
}

// String renders the film as a single pipe-delimited line.
func (f Film) String() string {
    return fmt.Sprintf("%d | %s | %d min | %s", f.ID, f.Title, f.DurationMin, f.Category)
}
