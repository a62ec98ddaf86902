package repositories

import (
	"context"

	"github.com/muhasibpro/muhasib_app/internal/core/domain"
)

// CustodyReader defines read operations for custody data
type CustodyReader interface {
	// FindCustodyByID retrieves a specific custody record.
	FindCustodyByID(ctx context.Context, custodyID string) (*domain.Custody, error)

	// ListCustodiesByEmployee retrieves all custody records for one employee.
	ListCustodiesByEmployee(ctx context.Context, employeeID string) ([]domain.Custody, error)

	// ListCustodies retrieves all custody records, newest first.
	ListCustodies(ctx context.Context) ([]domain.Custody, error)
}

// CustodyWriter defines write operations for custody data
type CustodyWriter interface {
	// SaveCustody persists a newly opened custody.
	SaveCustody(ctx context.Context, custody domain.Custody) error

	// CloseCustody records the close of an active custody. The write must be
	// conditioned on the record still being active; closing a closed record
	// returns apperrors.ErrConflict, a missing record apperrors.ErrNotFound.
	CloseCustody(ctx context.Context, custody domain.Custody) error
}

// CustodyRepositoryFacade combines all custody-related repository interfaces
type CustodyRepositoryFacade interface {
	CustodyReader
	CustodyWriter
}
