package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/oksasatya/careertrack/internal/domain/repository"
)

func TestClassify_NoRowsIsNotFound(t *testing.T) {
	t.Parallel()
	assert.ErrorIs(t, classify(pgx.ErrNoRows), repository.ErrNotFound)
	assert.ErrorIs(t, classify(fmt.Errorf("scan: %w", pgx.ErrNoRows)), repository.ErrNotFound)
}

func TestClassify_UniqueViolationIsDuplicate(t *testing.T) {
	t.Parallel()
	err := &pgconn.PgError{Code: "23505", ConstraintName: "uq_skills_user_name"}
	assert.ErrorIs(t, classify(err), repository.ErrDuplicate)
}

// A non-uuid path id like "999" reaches the uuid column and fails with
// SQLSTATE 22P02; callers must see a plain not-found, not a storage error.
func TestClassify_MalformedUUIDIsNotFound(t *testing.T) {
	t.Parallel()
	err := &pgconn.PgError{Code: "22P02", Message: `invalid input syntax for type uuid: "999"`}
	assert.ErrorIs(t, classify(err), repository.ErrNotFound)
}

func TestClassify_UnknownErrorPassesThrough(t *testing.T) {
	t.Parallel()
	boom := errors.New("connection refused")
	assert.Equal(t, boom, classify(boom))
	assert.NoError(t, classify(nil))
}
