package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/muhasibpro/muhasib_app/internal/apperrors"
	"github.com/muhasibpro/muhasib_app/internal/core/domain"
	portsrepo "github.com/muhasibpro/muhasib_app/internal/core/ports/repositories"
	portssvc "github.com/muhasibpro/muhasib_app/internal/core/ports/services"
	"github.com/muhasibpro/muhasib_app/internal/dto"
)

// salaryService implements the SalarySvcFacade interface
type salaryService struct {
	BaseService
	txnRepo      portsrepo.SalaryTransactionRepositoryFacade
	employeeRepo portsrepo.EmployeeReader
	custodyRepo  portsrepo.CustodyReader
}

// NewSalaryService creates a new salary service
func NewSalaryService(txnRepo portsrepo.SalaryTransactionRepositoryFacade, employeeRepo portsrepo.EmployeeReader, custodyRepo portsrepo.CustodyReader) portssvc.SalarySvcFacade {
	return &salaryService{
		txnRepo:      txnRepo,
		employeeRepo: employeeRepo,
		custodyRepo:  custodyRepo,
	}
}

var _ portssvc.SalarySvcFacade = (*salaryService)(nil)

func (s *salaryService) AddTransaction(ctx context.Context, req dto.CreateSalaryTransactionRequest, userID string) (*domain.SalaryTransaction, error) {
	if !req.Amount.IsPositive() {
		err := apperrors.ErrValidation
		s.LogError(ctx, err, "Transaction amount must be positive",
			slog.String("amount", req.Amount.String()))
		return nil, fmt.Errorf("transaction amount must be positive: %w", err)
	}
	if !domain.ValidSalaryTransactionType(req.Type) {
		err := apperrors.ErrValidation
		s.LogError(ctx, err, "Unknown transaction type",
			slog.String("type", string(req.Type)))
		return nil, fmt.Errorf("unknown transaction type %q: %w", req.Type, err)
	}

	if _, err := s.employeeRepo.FindEmployeeByID(ctx, req.EmployeeID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find employee for transaction",
				slog.String("employee_id", req.EmployeeID))
		}
		return nil, fmt.Errorf("invalid employee: %w", err)
	}

	now := time.Now()
	date := req.Date
	if date == "" {
		date = now.Format(domain.DateLayout)
	} else if !domain.ValidDate(date) {
		err := apperrors.ErrValidation
		s.LogError(ctx, err, "Malformed transaction date",
			slog.String("date", date))
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	txn := domain.SalaryTransaction{
		TransactionID: uuid.NewString(),
		EmployeeID:    req.EmployeeID,
		Type:          req.Type,
		Amount:        req.Amount,
		Date:          date,
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save salary transaction",
			slog.String("transaction_id", txn.TransactionID),
			slog.String("employee_id", txn.EmployeeID))
		return nil, err
	}

	s.LogInfo(ctx, "Salary transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("employee_id", txn.EmployeeID),
		slog.String("type", string(txn.Type)))
	return &txn, nil
}

func (s *salaryService) DeleteTransaction(ctx context.Context, transactionID string, userID string) error {
	if _, err := s.txnRepo.FindTransactionByID(ctx, transactionID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find salary transaction",
				slog.String("transaction_id", transactionID))
		}
		return err
	}

	if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete salary transaction",
			slog.String("transaction_id", transactionID))
		return err
	}

	s.LogInfo(ctx, "Salary transaction deleted",
		slog.String("transaction_id", transactionID),
		slog.String("deleted_by", userID))
	return nil
}

func (s *salaryService) ListTransactions(ctx context.Context, employeeID string) ([]domain.SalaryTransaction, error) {
	var (
		txns []domain.SalaryTransaction
		err  error
	)
	if employeeID != "" {
		txns, err = s.txnRepo.ListTransactionsByEmployee(ctx, employeeID)
	} else {
		txns, err = s.txnRepo.ListTransactions(ctx)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to list salary transactions",
			slog.String("employee_id", employeeID))
		return nil, fmt.Errorf("failed to list salary transactions: %w", err)
	}
	if txns == nil {
		return []domain.SalaryTransaction{}, nil
	}
	return txns, nil
}

// ComputeStatement recomputes the employee's pay position from a fresh fetch
// of their transactions and custody records.
func (s *salaryService) ComputeStatement(ctx context.Context, employeeID string) (*domain.SalaryStatement, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find employee for statement",
				slog.String("employee_id", employeeID))
		}
		return nil, err
	}

	txns, err := s.txnRepo.ListTransactionsByEmployee(ctx, employeeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for statement",
			slog.String("employee_id", employeeID))
		return nil, err
	}
	custodies, err := s.custodyRepo.ListCustodiesByEmployee(ctx, employeeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list custodies for statement",
			slog.String("employee_id", employeeID))
		return nil, err
	}

	st := domain.FoldStatement(*employee, txns, custodies)
	s.LogDebug(ctx, "Salary statement computed",
		slog.String("employee_id", employeeID),
		slog.String("net_salary", st.NetSalary.String()))
	return &st, nil
}

func (s *salaryService) ComputeAllStatements(ctx context.Context) ([]domain.SalaryStatement, error) {
	// Unpaginated on purpose; the roster is small
	employees, err := s.employeeRepo.ListEmployees(ctx, 1000, 0)
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees for statements")
		return nil, err
	}

	statements := make([]domain.SalaryStatement, 0, len(employees))
	for _, emp := range employees {
		st, err := s.ComputeStatement(ctx, emp.EmployeeID)
		if err != nil {
			return nil, fmt.Errorf("statement for employee %s: %w", emp.EmployeeID, err)
		}
		statements = append(statements, *st)
	}
	return statements, nil
}
