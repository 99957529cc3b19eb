package db

import "github.com/jackc/pgx/v5"

// NewTx binds Queries to a transaction. It has the shape sqlutil.Run expects.
func NewTx(tx pgx.Tx) *Queries {
	return New(tx)
}
