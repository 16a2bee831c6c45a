// Package repo maps the order/shipment domain onto relational rows.
// Every statement runs against the caller's transaction when the context
// carries one (see pkg/trm), otherwise against the pool, so the same
// mapping logic serves both standalone and transactional calls.
package repo

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/mvegadev/order-shipment-service/pkg/trm"
)

type database struct {
	db *sqlx.DB
}

func (d database) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return d.db.ExecContext(ctx, query, args...)
}

func (d database) getContext(ctx context.Context, dest any, query string, args ...any) error {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return d.db.GetContext(ctx, dest, query, args...)
}

func (d database) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return d.db.SelectContext(ctx, dest, query, args...)
}
