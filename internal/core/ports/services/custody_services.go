package services

import (
	"context"

	"github.com/muhasibpro/muhasib_app/internal/core/domain"
	"github.com/muhasibpro/muhasib_app/internal/dto"
	"github.com/shopspring/decimal"
)

// CustodyReaderSvc defines read operations on the custody ledger
type CustodyReaderSvc interface {
	GetCustodyByID(ctx context.Context, custodyID string) (*domain.Custody, error)

	// ListCustodies returns all custody records, or only one employee's when
	// employeeID is non-empty.
	ListCustodies(ctx context.Context, employeeID string) ([]domain.Custody, error)

	// ExposureForEmployee sums amount - returnAmount - expenses over the
	// employee's custody records.
	ExposureForEmployee(ctx context.Context, employeeID string) (decimal.Decimal, error)
}

// CustodyWriterSvc defines the custody lifecycle transitions
type CustodyWriterSvc interface {
	// OpenCustody hands out a new advance (status=active).
	OpenCustody(ctx context.Context, req dto.OpenCustodyRequest, userID string) (*domain.Custody, error)

	// CloseCustody settles an active custody exactly once. A second close on
	// the same record fails with a state-conflict error.
	CloseCustody(ctx context.Context, custodyID string, req dto.CloseCustodyRequest, userID string) (*domain.Custody, error)
}

// CustodySvcFacade combines all custody-related service interfaces
type CustodySvcFacade interface {
	CustodyReaderSvc
	CustodyWriterSvc
}
