package memory

import (
	"context"

	"lumen/internal/domain/repositories"
)

// TransactionManager is a pass-through TransactionManager: the in-memory
// repositories mutate under their own locks, so fn runs directly.
type TransactionManager struct{}

// NewTransactionManager creates a pass-through transaction manager
func NewTransactionManager() repositories.TransactionManager {
	return &TransactionManager{}
}

// ExecTx runs fn with the unchanged context
func (tm *TransactionManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	return fn(ctx)
}
