package xcontext

import (
	"context"

	"gorm.io/gorm"
)

type dbTransactionKey struct{}

type dbTransaction struct {
	tx       *gorm.DB
	finished bool
}

// DB returns the current database handle: the open transaction if one was
// started on this context, otherwise the root connection.
func DB(ctx context.Context) *gorm.DB {
	if txn, ok := ctx.Value(dbTransactionKey{}).(*dbTransaction); ok && !txn.finished {
		return txn.tx
	}

	db, ok := ctx.Value(dbKey{}).(*gorm.DB)
	if !ok {
		panic("no database in context")
	}

	return db
}

// WithDBTransaction begins a transaction scoped to the returned context.
// Pair it with a deferred WithRollbackDBTransaction; the rollback is a
// no-op once WithCommitDBTransaction ran.
func WithDBTransaction(ctx context.Context) context.Context {
	return context.WithValue(ctx, dbTransactionKey{}, &dbTransaction{tx: DB(ctx).Begin()})
}

func WithCommitDBTransaction(ctx context.Context) context.Context {
	if txn, ok := ctx.Value(dbTransactionKey{}).(*dbTransaction); ok && !txn.finished {
		txn.tx.Commit()
		txn.finished = true
	}

	return ctx
}

func WithRollbackDBTransaction(ctx context.Context) {
	if txn, ok := ctx.Value(dbTransactionKey{}).(*dbTransaction); ok && !txn.finished {
		txn.tx.Rollback()
		txn.finished = true
	}
}
