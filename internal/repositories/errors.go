package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Typed store errors so callers can tell business failures apart from
// connectivity problems.
var (
	ErrNotFound          = errors.New("record not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrDuplicateInvoice  = errors.New("duplicate invoice number")
	ErrConstraint        = errors.New("constraint violation")
)

// classify maps a pgx error onto one of the sentinel errors above.
// Unknown errors (including connectivity failures) pass through unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			if pgErr.ConstraintName == "sales_invoice_no_key" {
				return ErrDuplicateInvoice
			}
			return ErrConstraint
		case "23503", "23502", "23514": // fk, not-null, check violations
			return ErrConstraint
		}
	}
	return err
}
