// Package repository contains data access logic separated from the
// interactive shell. This file defines the repository methods for films.
// A Film is the parent row of every seance.
package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"errors"       // errors is used to define custom error values

	"github.com/iliyamo/cinema-console/internal/model"
)

// ErrFilmNotFound is returned when a film cannot be found in the DB.
var ErrFilmNotFound = errors.New("film not found")

// FilmRepo encapsulates all database queries related to films.  It
// depends on a sql.DB connection which should be configured elsewhere.
type FilmRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewFilmRepo constructs a FilmRepo with the provided DB handle.
func NewFilmRepo(db *sql.DB) *FilmRepo {
	return &FilmRepo{db: db}
}

// Create inserts a new film and returns a copy carrying the
// auto-generated ID.  The given value is left untouched.
func (r *FilmRepo) Create(ctx context.Context, f model.Film) (model.Film, error) {
	const q = "INSERT INTO films (title, duration_min, category) VALUES (?, ?, ?)"
	res, err := r.db.ExecContext(ctx, q, f.Title, f.DurationMin, f.Category)
	if err != nil {
		return model.Film{}, storeErr("create film", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Film{}, storeErr("create film", err)
	}
	f.ID = uint64(id)
	return f, nil
}

// GetByID fetches a film by its ID.  It returns ErrFilmNotFound if no
// row is found.
func (r *FilmRepo) GetByID(ctx context.Context, id uint64) (*model.Film, error) {
	const q = "SELECT id, title, duration_min, category FROM films WHERE id = ?"
	var f model.Film
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&f.ID, &f.Title, &f.DurationMin, &f.Category); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFilmNotFound
		}
		return nil, storeErr("get film", err)
	}
	return &f, nil
}

// ListAll returns every film ordered by id.  An empty table yields an
// empty slice and a nil error.
func (r *FilmRepo) ListAll(ctx context.Context) ([]model.Film, error) {
	const q = `SELECT id, title, duration_min, category FROM films ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, storeErr("list films", err)
	}
	defer rows.Close()

	out := []model.Film{}
	for rows.Next() {
		var f model.Film
		if err := rows.Scan(&f.ID, &f.Title, &f.DurationMin, &f.Category); err != nil {
			return nil, storeErr("list films", err)
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list films", err)
	}
	return out, nil
}
