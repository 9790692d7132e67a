package storage

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/ledger-server/internal/config"
)

type Storage struct {
	DB *sql.DB
	*Reader

	bdb bob.DB
}

func NewStorage(env *config.Config) *Storage {
	db, err := sql.Open("postgres", env.ConnectionString())
	if err != nil {
		log.Fatal(err)
	}

	bdb := bob.NewDB(db)

	return &Storage{
		DB:     db,
		Reader: NewReader(bdb),
		bdb:    bdb,
	}
}

// Write begins a storage transaction. Every mutating operation runs inside
// exactly one Writer; all row changes it triggers commit or roll back
// together.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bdb.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	writer := NewWriter(tx)
	return &writer, nil
}

// IsUniqueViolation reports whether err is a postgres unique-constraint
// violation. Callers surface these as conflicts, not crashes.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
