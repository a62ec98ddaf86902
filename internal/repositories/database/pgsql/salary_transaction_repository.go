package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/muhasibpro/muhasib_app/internal/apperrors"
	"github.com/muhasibpro/muhasib_app/internal/core/domain"
	portsrepo "github.com/muhasibpro/muhasib_app/internal/core/ports/repositories"
)

type PgxSalaryTransactionRepository struct {
	BaseRepository
}

// newPgxSalaryTransactionRepository creates a new repository for salary transactions.
func newPgxSalaryTransactionRepository(pool *pgxpool.Pool) portsrepo.SalaryTransactionRepositoryFacade {
	return &PgxSalaryTransactionRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.SalaryTransactionRepositoryFacade = (*PgxSalaryTransactionRepository)(nil)

const salaryTxnColumns = `transaction_id, employee_id, type, amount, date, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanSalaryTransaction(row pgx.Row) (domain.SalaryTransaction, error) {
	var t domain.SalaryTransaction
	var date time.Time
	err := row.Scan(
		&t.TransactionID,
		&t.EmployeeID,
		&t.Type,
		&t.Amount,
		&date,
		&t.Notes,
		&t.CreatedAt,
		&t.CreatedBy,
		&t.LastUpdatedAt,
		&t.LastUpdatedBy,
	)
	if err != nil {
		return domain.SalaryTransaction{}, err
	}
	t.Date = fromDBDate(date)
	return t, nil
}

// SaveTransaction inserts a new salary transaction.
func (r *PgxSalaryTransactionRepository) SaveTransaction(ctx context.Context, txn domain.SalaryTransaction) error {
	query := `
		INSERT INTO salary_transactions (transaction_id, employee_id, type, amount, date, notes, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		txn.TransactionID,
		txn.EmployeeID,
		txn.Type,
		txn.Amount,
		toDBDate(txn.Date),
		txn.Notes,
		txn.CreatedAt,
		txn.CreatedBy,
		txn.LastUpdatedAt,
		txn.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: transaction with ID %s already exists", apperrors.ErrDuplicate, txn.TransactionID)
		}
		return fmt.Errorf("failed to save salary transaction %s: %w", txn.TransactionID, err)
	}
	return nil
}

// FindTransactionByID retrieves a salary transaction by its ID.
func (r *PgxSalaryTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.SalaryTransaction, error) {
	query := `SELECT ` + salaryTxnColumns + ` FROM salary_transactions WHERE transaction_id = $1;`

	txn, err := scanSalaryTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find salary transaction by ID %s: %w", transactionID, err)
	}
	return &txn, nil
}

// ListTransactionsByEmployee retrieves all transactions for one employee.
func (r *PgxSalaryTransactionRepository) ListTransactionsByEmployee(ctx context.Context, employeeID string) ([]domain.SalaryTransaction, error) {
	query := `SELECT ` + salaryTxnColumns + ` FROM salary_transactions WHERE employee_id = $1 ORDER BY date DESC, created_at DESC;`
	return r.listTransactions(ctx, query, employeeID)
}

// ListTransactions retrieves all transactions, newest first.
func (r *PgxSalaryTransactionRepository) ListTransactions(ctx context.Context) ([]domain.SalaryTransaction, error) {
	query := `SELECT ` + salaryTxnColumns + ` FROM salary_transactions ORDER BY date DESC, created_at DESC;`
	return r.listTransactions(ctx, query)
}

func (r *PgxSalaryTransactionRepository) listTransactions(ctx context.Context, query string, args ...any) ([]domain.SalaryTransaction, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query salary transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.SalaryTransaction{}
	for rows.Next() {
		t, err := scanSalaryTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary transaction row: %w", err)
		}
		txns = append(txns, t)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating salary transaction rows: %w", rows.Err())
	}
	return txns, nil
}

// DeleteTransaction removes a salary transaction.
func (r *PgxSalaryTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	query := `DELETE FROM salary_transactions WHERE transaction_id = $1;`

	cmdTag, err := r.Pool.Exec(ctx, query, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete salary transaction %s: %w", transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
