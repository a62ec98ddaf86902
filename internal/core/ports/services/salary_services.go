package services

import (
	"context"

	"github.com/muhasibpro/muhasib_app/internal/core/domain"
	"github.com/muhasibpro/muhasib_app/internal/dto"
)

// SalaryCalculatorSvc computes derived pay positions. Every call reloads the
// source records and recomputes; there is no cached state.
type SalaryCalculatorSvc interface {
	// ComputeStatement folds one employee's transactions and custody
	// exposure into a net payable amount. An unknown employee yields a
	// not-found error, never a zero-salary default.
	ComputeStatement(ctx context.Context, employeeID string) (*domain.SalaryStatement, error)

	// ComputeAllStatements computes a statement per employee, each from its
	// own fetch.
	ComputeAllStatements(ctx context.Context) ([]domain.SalaryStatement, error)
}

// SalaryTransactionSvc manages the wage-affecting records themselves.
type SalaryTransactionSvc interface {
	AddTransaction(ctx context.Context, req dto.CreateSalaryTransactionRequest, userID string) (*domain.SalaryTransaction, error)
	DeleteTransaction(ctx context.Context, transactionID string, userID string) error
	ListTransactions(ctx context.Context, employeeID string) ([]domain.SalaryTransaction, error)
}

// SalarySvcFacade combines the salary engine interfaces
type SalarySvcFacade interface {
	SalaryCalculatorSvc
	SalaryTransactionSvc
}
