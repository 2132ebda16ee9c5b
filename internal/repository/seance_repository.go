// Package repository contains data access logic for seances. A Seance is
// a scheduled screening of a film; it is always loaded together with its
// film so callers can render it without a second lookup.
package repository

import (
	"context"      // context for controlling query lifetime
	"database/sql" // sql provides DB abstraction
	"errors"       // errors for sentinel definitions

	"github.com/iliyamo/cinema-console/internal/model"
)

// ErrSeanceNotFound indicates that a seance was not located in the DB.
var ErrSeanceNotFound = errors.New("seance not found")

// seanceSelect joins each seance with its film.  Column order matches
// scanSeance.
const seanceSelect = `SELECT s.id, s.starts_at, s.room, s.capacity,
                             f.id, f.title, f.duration_min, f.category
                      FROM seances s
                      JOIN films f ON f.id = s.film_id`

// SeanceRepo manages persistence for seances.
type SeanceRepo struct {
	db *sql.DB
}

// NewSeanceRepo constructs a SeanceRepo with the given DB handle.
func NewSeanceRepo(db *sql.DB) *SeanceRepo {
	return &SeanceRepo{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSeance(row rowScanner) (model.Seance, error) {
	var s model.Seance
	err := row.Scan(
		&s.ID, &s.StartsAt, &s.Room, &s.Capacity,
		&s.Film.ID, &s.Film.Title, &s.Film.DurationMin, &s.Film.Category,
	)
	return s, err
}

// Create inserts a new seance for s.Film.ID and returns it with the
// generated ID.  The film must already exist; a missing film surfaces as
// a StoreError matching ErrReferenceNotFound.
func (r *SeanceRepo) Create(ctx context.Context, s model.Seance) (model.Seance, error) {
	const q = `INSERT INTO seances (film_id, starts_at, room, capacity) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, s.Film.ID, s.StartsAt.UTC(), s.Room, s.Capacity)
	if err != nil {
		return model.Seance{}, storeErr("create seance", err)
	}
	id, err := res.LastInsertId() // obtain the auto-incremented ID
	if err != nil {
		return model.Seance{}, storeErr("create seance", err)
	}
	s.ID = uint64(id)
	return s, nil
}

// GetByID retrieves a seance and its film by the seance ID.  It returns
// ErrSeanceNotFound if there is no matching row.
func (r *SeanceRepo) GetByID(ctx context.Context, id uint64) (*model.Seance, error) {
	s, err := scanSeance(r.db.QueryRowContext(ctx, seanceSelect+` WHERE s.id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSeanceNotFound
		}
		return nil, storeErr("get seance", err)
	}
	return &s, nil
}

// ListAll returns all seances ordered by id.  When no seances exist it
// returns an empty slice and nil error.
func (r *SeanceRepo) ListAll(ctx context.Context) ([]model.Seance, error) {
	rows, err := r.db.QueryContext(ctx, seanceSelect+` ORDER BY s.id`)
	if err != nil {
		return nil, storeErr("list seances", err)
	}
	defer rows.Close()
	result := []model.Seance{}
	for rows.Next() {
		s, err := scanSeance(rows)
		if err != nil {
			return nil, storeErr("list seances", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list seances", err)
	}
	return result, nil
}
