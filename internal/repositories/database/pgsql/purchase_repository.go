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

type PgxPurchaseRepository struct {
	BaseRepository
}

// newPgxPurchaseRepository creates a new repository for purchase invoices.
func newPgxPurchaseRepository(pool *pgxpool.Pool) portsrepo.PurchaseRepositoryFacade {
	return &PgxPurchaseRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.PurchaseRepositoryFacade = (*PgxPurchaseRepository)(nil)

const purchaseColumns = `purchase_id, supplier_id, invoice_number, date, amount, currency, tax_number, description, payment_method, created_at, created_by, last_updated_at, last_updated_by`

func scanPurchase(row pgx.Row) (domain.Purchase, error) {
	var p domain.Purchase
	var date time.Time
	err := row.Scan(
		&p.PurchaseID,
		&p.SupplierID,
		&p.InvoiceNumber,
		&date,
		&p.Amount,
		&p.Currency,
		&p.TaxNumber,
		&p.Description,
		&p.PaymentMethod,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
	)
	if err != nil {
		return domain.Purchase{}, err
	}
	p.Date = fromDBDate(date)
	return p, nil
}

// SavePurchase inserts the invoice and its line items in one transaction.
func (r *PgxPurchaseRepository) SavePurchase(ctx context.Context, purchase domain.Purchase) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	purchaseQuery := `
		INSERT INTO purchases (purchase_id, supplier_id, invoice_number, date, amount, currency, tax_number, description, payment_method, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = tx.Exec(ctx, purchaseQuery,
		purchase.PurchaseID,
		purchase.SupplierID,
		purchase.InvoiceNumber,
		toDBDate(purchase.Date),
		purchase.Amount,
		purchase.Currency,
		purchase.TaxNumber,
		purchase.Description,
		purchase.PaymentMethod,
		purchase.CreatedAt,
		purchase.CreatedBy,
		purchase.LastUpdatedAt,
		purchase.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: purchase with ID %s already exists", apperrors.ErrDuplicate, purchase.PurchaseID)
		}
		return fmt.Errorf("failed to insert purchase %s: %w", purchase.PurchaseID, err)
	}

	itemQuery := `
		INSERT INTO purchase_items (item_id, purchase_id, code, description, quantity, unit_price, line_total)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for _, item := range purchase.Items {
		_, err = tx.Exec(ctx, itemQuery,
			item.ItemID,
			item.PurchaseID,
			item.Code,
			item.Description,
			item.Quantity,
			item.UnitPrice,
			item.LineTotal,
		)
		if err != nil {
			return fmt.Errorf("failed to insert purchase item %s: %w", item.ItemID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// FindPurchaseByID retrieves a purchase together with its line items.
func (r *PgxPurchaseRepository) FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE purchase_id = $1;`

	purchase, err := scanPurchase(r.Pool.QueryRow(ctx, query, purchaseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find purchase by ID %s: %w", purchaseID, err)
	}

	itemQuery := `
		SELECT item_id, purchase_id, code, description, quantity, unit_price, line_total
		FROM purchase_items
		WHERE purchase_id = $1
		ORDER BY description;
	`
	rows, err := r.Pool.Query(ctx, itemQuery, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchase items for %s: %w", purchaseID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.PurchaseItem
		err := rows.Scan(
			&item.ItemID,
			&item.PurchaseID,
			&item.Code,
			&item.Description,
			&item.Quantity,
			&item.UnitPrice,
			&item.LineTotal,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase item row: %w", err)
		}
		purchase.Items = append(purchase.Items, item)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating purchase item rows: %w", rows.Err())
	}

	return &purchase, nil
}

// ListPurchasesBySupplier retrieves one supplier's purchases, newest date
// first, without line items.
func (r *PgxPurchaseRepository) ListPurchasesBySupplier(ctx context.Context, supplierID string) ([]domain.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE supplier_id = $1 ORDER BY date DESC, created_at DESC;`
	return r.listPurchases(ctx, query, supplierID)
}

// ListPurchases retrieves a paginated list of purchases, newest date first,
// without line items.
func (r *PgxPurchaseRepository) ListPurchases(ctx context.Context, limit int, offset int) ([]domain.Purchase, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + purchaseColumns + ` FROM purchases ORDER BY date DESC, created_at DESC LIMIT $1 OFFSET $2;`
	return r.listPurchases(ctx, query, limit, offset)
}

// ListAllPurchases retrieves every purchase without line items.
func (r *PgxPurchaseRepository) ListAllPurchases(ctx context.Context) ([]domain.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases ORDER BY date DESC, created_at DESC;`
	return r.listPurchases(ctx, query)
}

func (r *PgxPurchaseRepository) listPurchases(ctx context.Context, query string, args ...any) ([]domain.Purchase, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchases: %w", err)
	}
	defer rows.Close()

	purchases := []domain.Purchase{}
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase row: %w", err)
		}
		purchases = append(purchases, p)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating purchase rows: %w", rows.Err())
	}
	return purchases, nil
}

// DeletePurchase removes the invoice and its line items in one transaction.
func (r *PgxPurchaseRepository) DeletePurchase(ctx context.Context, purchaseID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM purchase_items WHERE purchase_id = $1;`, purchaseID); err != nil {
		return fmt.Errorf("failed to delete purchase items for %s: %w", purchaseID, err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM purchases WHERE purchase_id = $1;`, purchaseID)
	if err != nil {
		return fmt.Errorf("failed to delete purchase %s: %w", purchaseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}
