package repositories

import (
	"context"

	"github.com/muhasibpro/muhasib_app/internal/core/domain"
)

// SalaryTransactionReader defines read operations for salary transactions
type SalaryTransactionReader interface {
	// FindTransactionByID retrieves a specific transaction.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.SalaryTransaction, error)

	// ListTransactionsByEmployee retrieves all transactions for one employee.
	ListTransactionsByEmployee(ctx context.Context, employeeID string) ([]domain.SalaryTransaction, error)

	// ListTransactions retrieves all transactions, newest first.
	ListTransactions(ctx context.Context) ([]domain.SalaryTransaction, error)
}

// SalaryTransactionWriter defines write operations for salary transactions.
// Transactions are immutable once created; there is no update.
type SalaryTransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.SalaryTransaction) error

	// DeleteTransaction removes a transaction.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// SalaryTransactionRepositoryFacade combines reader and writer
type SalaryTransactionRepositoryFacade interface {
	SalaryTransactionReader
	SalaryTransactionWriter
}
