package database

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type txKey struct{}

// TxFromContext returns the transaction attached to ctx, or nil.
func TxFromContext(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return nil
}

func ContextWithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// Conn returns the transaction carried by ctx if any, otherwise db bound to ctx.
// Repositories must go through it so their queries join an ongoing transaction.
func Conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx := TxFromContext(ctx); tx != nil {
		return tx
	}
	return db.WithContext(ctx)
}

// ForUpdate adds a row lock to the query on engines that support SELECT ... FOR UPDATE.
func ForUpdate(db *gorm.DB) *gorm.DB {
	switch db.Dialector.Name() {
	case DriverPostgres, DriverMySQL:
		return db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	default:
		return db
	}
}

// Transactor runs units of work inside a single database transaction.
type Transactor struct {
	db *gorm.DB
}

func NewTransactor(db *gorm.DB) *Transactor {
	return &Transactor{db: db}
}

// Execute calls fn with a context carrying the transaction. The transaction is
// committed when fn returns nil and rolled back otherwise. Nested calls reuse
// the outer transaction.
func (t *Transactor) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	if TxFromContext(ctx) != nil {
		return fn(ctx)
	}

	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ContextWithTx(ctx, tx))
	})
}
