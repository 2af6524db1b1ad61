package repositories

import "context"

// TxFn is a function executed within a transaction
type TxFn func(ctx context.Context) error

// TransactionManager executes functions within database transactions
type TransactionManager interface {
	// ExecTx runs fn inside a transaction. The transaction is committed when
	// fn returns nil and rolled back otherwise. Repositories called with the
	// ctx passed to fn automatically participate in the transaction.
	ExecTx(ctx context.Context, fn TxFn) error
}
