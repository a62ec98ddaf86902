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

type PgxCustodyRepository struct {
	BaseRepository
}

// newPgxCustodyRepository creates a new repository for custody data.
func newPgxCustodyRepository(pool *pgxpool.Pool) portsrepo.CustodyRepositoryFacade {
	return &PgxCustodyRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.CustodyRepositoryFacade = (*PgxCustodyRepository)(nil)

const custodyColumns = `custody_id, employee_id, amount, date_given, status, expenses, return_amount, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanCustody(row pgx.Row) (domain.Custody, error) {
	var c domain.Custody
	var dateGiven time.Time
	err := row.Scan(
		&c.CustodyID,
		&c.EmployeeID,
		&c.Amount,
		&dateGiven,
		&c.Status,
		&c.Expenses,
		&c.ReturnAmount,
		&c.Notes,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	if err != nil {
		return domain.Custody{}, err
	}
	c.DateGiven = fromDBDate(dateGiven)
	return c, nil
}

// SaveCustody inserts a newly opened custody.
func (r *PgxCustodyRepository) SaveCustody(ctx context.Context, custody domain.Custody) error {
	query := `
		INSERT INTO custody (custody_id, employee_id, amount, date_given, status, expenses, return_amount, notes, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		custody.CustodyID,
		custody.EmployeeID,
		custody.Amount,
		toDBDate(custody.DateGiven),
		custody.Status,
		custody.Expenses,
		custody.ReturnAmount,
		custody.Notes,
		custody.CreatedAt,
		custody.CreatedBy,
		custody.LastUpdatedAt,
		custody.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: custody with ID %s already exists", apperrors.ErrDuplicate, custody.CustodyID)
		}
		return fmt.Errorf("failed to save custody %s: %w", custody.CustodyID, err)
	}
	return nil
}

// FindCustodyByID retrieves a custody record by its ID.
func (r *PgxCustodyRepository) FindCustodyByID(ctx context.Context, custodyID string) (*domain.Custody, error) {
	query := `SELECT ` + custodyColumns + ` FROM custody WHERE custody_id = $1;`

	custody, err := scanCustody(r.Pool.QueryRow(ctx, query, custodyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find custody by ID %s: %w", custodyID, err)
	}
	return &custody, nil
}

// ListCustodiesByEmployee retrieves all custody records for one employee.
func (r *PgxCustodyRepository) ListCustodiesByEmployee(ctx context.Context, employeeID string) ([]domain.Custody, error) {
	query := `SELECT ` + custodyColumns + ` FROM custody WHERE employee_id = $1 ORDER BY date_given DESC, created_at DESC;`
	return r.listCustodies(ctx, query, employeeID)
}

// ListCustodies retrieves all custody records, newest first.
func (r *PgxCustodyRepository) ListCustodies(ctx context.Context) ([]domain.Custody, error) {
	query := `SELECT ` + custodyColumns + ` FROM custody ORDER BY date_given DESC, created_at DESC;`
	return r.listCustodies(ctx, query)
}

func (r *PgxCustodyRepository) listCustodies(ctx context.Context, query string, args ...any) ([]domain.Custody, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query custody records: %w", err)
	}
	defer rows.Close()

	custodies := []domain.Custody{}
	for rows.Next() {
		c, err := scanCustody(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan custody row: %w", err)
		}
		custodies = append(custodies, c)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating custody rows: %w", rows.Err())
	}
	return custodies, nil
}

// CloseCustody writes the settlement, conditioned on the record still being
// active. When the guarded update hits no row, a follow-up read distinguishes
// a missing record from one that lost the race to another close.
func (r *PgxCustodyRepository) CloseCustody(ctx context.Context, custody domain.Custody) error {
	query := `
		UPDATE custody
		SET status = $2, expenses = $3, return_amount = $4, notes = $5, last_updated_at = $6, last_updated_by = $7
		WHERE custody_id = $1 AND status = 'active';
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		custody.CustodyID,
		custody.Status,
		custody.Expenses,
		custody.ReturnAmount,
		custody.Notes,
		custody.LastUpdatedAt,
		custody.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to close custody %s: %w", custody.CustodyID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		if _, findErr := r.FindCustodyByID(ctx, custody.CustodyID); findErr != nil {
			return findErr
		}
		return fmt.Errorf("custody %s is not active: %w", custody.CustodyID, apperrors.ErrConflict)
	}
	return nil
}
