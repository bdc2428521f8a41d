package tx

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

type key string

const KeyTx = key("tx")

// Querier is the subset of sqlx shared by *sqlx.DB and *sqlx.Tx.
type Querier interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

type Tx struct {
	Tx *sqlx.Tx
}

func Inject(ctx context.Context, t *sqlx.Tx) context.Context {
	return context.WithValue(ctx, KeyTx, Tx{Tx: t})
}

// Extract returns the transaction started further up the call chain, if any.
func Extract(ctx context.Context) (*sqlx.Tx, bool) {
	t, ok := ctx.Value(KeyTx).(Tx)
	if !ok || t.Tx == nil {
		return nil, false
	}
	return t.Tx, true
}
