// Package db carries the gorm transaction-in-context plumbing. Repositories
// read the transaction from the context so that a usecase can span several
// repository calls with one transaction without the repositories knowing.
package db

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// WithTransaction runs fn inside a single gorm transaction. The transaction
// handle travels in the context; any error rolls the whole unit back.
func WithTransaction(ctx context.Context, db *gorm.DB, fn func(ctx context.Context) error) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// GetTxFromContext returns the transaction bound to ctx, or fallback when the
// call is not part of a transaction.
func GetTxFromContext(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return fallback
}
