package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/oksasatya/careertrack/internal/domain/repository"
)

const (
	uniqueViolation = "23505"
	invalidTextRepr = "22P02"
)

// classify maps driver-level failures onto the repository error taxonomy.
// Anything unclassified passes through and is treated as a storage error at
// the handler boundary.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return repository.ErrDuplicate
		case invalidTextRepr:
			// Path ids bind straight into uuid columns; a malformed id can
			// never match a row, so it reads the same as a missing one.
			return repository.ErrNotFound
		}
	}
	return err
}
