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

type PgxClosingRepository struct {
	BaseRepository
}

// newPgxClosingRepository creates a new repository for daily closings.
func newPgxClosingRepository(pool *pgxpool.Pool) portsrepo.ClosingRepositoryFacade {
	return &PgxClosingRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ClosingRepositoryFacade = (*PgxClosingRepository)(nil)

const closingColumns = `closing_id, date, cash_actual, card_actual, total_actual, cash_system, card_system, total_system, variance, gross_sales, net_sales, vat_amount, discount_amount, tips, details, created_at, created_by, last_updated_at, last_updated_by`

func scanClosing(row pgx.Row) (domain.DailyClosing, error) {
	var c domain.DailyClosing
	var date time.Time
	var details []byte
	err := row.Scan(
		&c.ClosingID,
		&date,
		&c.CashActual,
		&c.CardActual,
		&c.TotalActual,
		&c.CashSystem,
		&c.CardSystem,
		&c.TotalSystem,
		&c.Variance,
		&c.GrossSales,
		&c.NetSales,
		&c.VATAmount,
		&c.DiscountAmount,
		&c.Tips,
		&details,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	if err != nil {
		return domain.DailyClosing{}, err
	}
	c.Date = fromDBDate(date)
	c.Details = details
	return c, nil
}

// SaveClosing inserts a new daily closing. The details payload goes into a
// JSONB column unmodified.
func (r *PgxClosingRepository) SaveClosing(ctx context.Context, closing domain.DailyClosing) error {
	query := `
		INSERT INTO daily_closings (closing_id, date, cash_actual, card_actual, total_actual, cash_system, card_system, total_system, variance, gross_sales, net_sales, vat_amount, discount_amount, tips, details, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	var details []byte
	if len(closing.Details) > 0 {
		details = closing.Details
	}

	_, err := r.Pool.Exec(ctx, query,
		closing.ClosingID,
		toDBDate(closing.Date),
		closing.CashActual,
		closing.CardActual,
		closing.TotalActual,
		closing.CashSystem,
		closing.CardSystem,
		closing.TotalSystem,
		closing.Variance,
		closing.GrossSales,
		closing.NetSales,
		closing.VATAmount,
		closing.DiscountAmount,
		closing.Tips,
		details,
		closing.CreatedAt,
		closing.CreatedBy,
		closing.LastUpdatedAt,
		closing.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: closing with ID %s already exists", apperrors.ErrDuplicate, closing.ClosingID)
		}
		return fmt.Errorf("failed to save closing %s: %w", closing.ClosingID, err)
	}
	return nil
}

// FindClosingByID retrieves a daily closing by its ID.
func (r *PgxClosingRepository) FindClosingByID(ctx context.Context, closingID string) (*domain.DailyClosing, error) {
	query := `SELECT ` + closingColumns + ` FROM daily_closings WHERE closing_id = $1;`

	closing, err := scanClosing(r.Pool.QueryRow(ctx, query, closingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find closing by ID %s: %w", closingID, err)
	}
	return &closing, nil
}

// ListClosings retrieves a paginated list of closings, newest date first.
func (r *PgxClosingRepository) ListClosings(ctx context.Context, limit int, offset int) ([]domain.DailyClosing, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + closingColumns + ` FROM daily_closings ORDER BY date DESC, created_at DESC LIMIT $1 OFFSET $2;`
	return r.listClosings(ctx, query, limit, offset)
}

// ListAllClosings retrieves every closing.
func (r *PgxClosingRepository) ListAllClosings(ctx context.Context) ([]domain.DailyClosing, error) {
	query := `SELECT ` + closingColumns + ` FROM daily_closings ORDER BY date DESC, created_at DESC;`
	return r.listClosings(ctx, query)
}

func (r *PgxClosingRepository) listClosings(ctx context.Context, query string, args ...any) ([]domain.DailyClosing, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query closings: %w", err)
	}
	defer rows.Close()

	closings := []domain.DailyClosing{}
	for rows.Next() {
		c, err := scanClosing(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan closing row: %w", err)
		}
		closings = append(closings, c)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating closing rows: %w", rows.Err())
	}
	return closings, nil
}
