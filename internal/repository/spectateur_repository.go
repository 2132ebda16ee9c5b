package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/cinema-console/internal/model"
)

// ErrSpectateurNotFound indicates that a spectateur was not located in the DB.
var ErrSpectateurNotFound = errors.New("spectateur not found")

// SpectateurRepo manages persistence for spectateurs (patrons).
type SpectateurRepo struct {
	db *sql.DB
}

// NewSpectateurRepo constructs a SpectateurRepo with the given DB handle.
func NewSpectateurRepo(db *sql.DB) *SpectateurRepo {
	return &SpectateurRepo{db: db}
}

// Create inserts a new spectateur and returns it with the generated ID.
func (r *SpectateurRepo) Create(ctx context.Context, s model.Spectateur) (model.Spectateur, error) {
	const q = `INSERT INTO spectateurs (name, email) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, q, s.Name, s.Email)
	if err != nil {
		return model.Spectateur{}, storeErr("create spectateur", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Spectateur{}, storeErr("create spectateur", err)
	}
	s.ID = uint64(id)
	return s, nil
}

// GetByID retrieves a spectateur by its ID.  It returns
// ErrSpectateurNotFound if there is no matching row.
func (r *SpectateurRepo) GetByID(ctx context.Context, id uint64) (*model.Spectateur, error) {
	const q = `SELECT id, name, email FROM spectateurs WHERE id = ?`
	var s model.Spectateur
	err := r.db.QueryRowContext(ctx, q, id).Scan(&s.ID, &s.Name, &s.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSpectateurNotFound
		}
		return nil, storeErr("get spectateur", err)
	}
	return &s, nil
}

// ListAll returns every spectateur ordered by id.
func (r *SpectateurRepo) ListAll(ctx context.Context) ([]model.Spectateur, error) {
	const q = `SELECT id, name, email FROM spectateurs ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, storeErr("list spectateurs", err)
	}
	defer rows.Close()
	result := []model.Spectateur{}
	for rows.Next() {
		var s model.Spectateur
		if err := rows.Scan(&s.ID, &s.Name, &s.Email); err != nil {
			return nil, storeErr("list spectateurs", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list spectateurs", err)
	}
	return result, nil
}
