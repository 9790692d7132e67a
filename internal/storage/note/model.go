package note

import (
	"context"
	"time"
)

// Note is a free-form annotation on one transaction, keyed 1:1 by txn id.
type Note struct {
	TxnID     int64     `db:"txn_id"`
	Note      string    `db:"note"`
	UpdatedAt time.Time `db:"updated_at"`
}

// INoteReader defines read operations over transaction notes.
type INoteReader interface {
	FindByTxn(ctx context.Context, txnID int64) (*Note, error)
}

// INoteWriter defines mutations over transaction notes.
type INoteWriter interface {
	INoteReader
	Insert(ctx context.Context, txnID int64, text string, updatedAt time.Time) error
	Update(ctx context.Context, txnID int64, text string, updatedAt time.Time) error
	Delete(ctx context.Context, txnID int64) (bool, error)
}
