package repo

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/finleyross14/PeakOrderApp/internal/domain"
	"github.com/finleyross14/PeakOrderApp/internal/infra"
)

// PG implements domain.Store on PostgreSQL. Every statement goes through the
// SQLExecutor so markers are validated and queries are logged uniformly.
//
// The invariants the in-memory ledger enforces with its mutex are pushed into
// SQL here: the unique index on guesses(user_id, event_id) rejects duplicate
// guesses, and the activate/finalize updates are guarded so concurrent admins
// cannot race past each other.
type PG struct {
	db infra.SQLExecutor
}

var _ domain.Store = (*PG)(nil)

// NewPG creates a PostgreSQL-backed store.
func NewPG(db infra.SQLExecutor) *PG {
	return &PG{db: db}
}

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func translateNoRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}
