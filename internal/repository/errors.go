// Package repository defines error types that are reused across multiple
// repositories. Not-found sentinels let the shell branch on absence without
// treating it as a failure, while StoreError marks anything the database
// itself rejected or could not serve.
package repository

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
)

// mysqlErrNoReferencedRow is the server error raised when an insert points
// at a parent row that does not exist (ER_NO_REFERENCED_ROW_2).
const mysqlErrNoReferencedRow = 1452

// ErrReferenceNotFound is matched (via errors.Is) by a StoreError caused by
// a foreign key violation, e.g. reserving a ticket for an unknown seance.
var ErrReferenceNotFound = errors.New("referenced row not found")

// ErrReservationFailed is returned by Reserve when the insert succeeded
// but the store did not report an identity for the new ticket.
var ErrReservationFailed = errors.New("reservation failed: no ticket id assigned")

// StoreError wraps a failure reported by the database driver: lost
// connectivity, a constraint violation or a failed write. Op names the
// repository operation so the shell can print a useful message.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *StoreError) Unwrap() error { return e.Err }

// storeErr wraps err into a StoreError. Foreign key violations are also
// tagged with ErrReferenceNotFound.
func storeErr(op string, err error) error {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlErrNoReferencedRow {
		err = fmt.Errorf("%w: %w", ErrReferenceNotFound, err)
	}
	return &StoreError{Op: op, Err: err}
}
