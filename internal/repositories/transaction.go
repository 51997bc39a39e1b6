package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "task-marketplace.com/task-marketplace/internal/errors"
)

type txKey struct{}

// Transactor runs a unit of work inside one database transaction. Repositories
// pick the transaction up from the context, so callers never handle *gorm.DB.
type Transactor struct {
	db *gorm.DB
}

func NewTransactor(db *gorm.DB) *Transactor {
	return &Transactor{db: db}
}

// WithinTransaction commits when fn returns nil and rolls back otherwise.
// Nested calls join the outer transaction.
func (t *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}

	var fnErr error
	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(context.WithValue(ctx, txKey{}, tx))
		return fnErr
	})
	if err == nil {
		return nil
	}
	if fnErr != nil {
		return fnErr
	}
	return wrapStorageError("transaction failed", err)
}

func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}

func wrapStorageError(message string, err error) error {
	var appErr *apperrors.Exception
	if errors.As(err, &appErr) {
		return err
	}
	return apperrors.Wrap(apperrors.ErrStorageUnavailable, message, err)
}

func findError(err error, notFound error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return wrapStorageError(message, err)
}
