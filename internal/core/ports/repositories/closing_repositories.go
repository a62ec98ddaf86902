package repositories

import (
	"context"

	"github.com/muhasibpro/muhasib_app/internal/core/domain"
)

// ClosingReader defines read operations for daily closings
type ClosingReader interface {
	// FindClosingByID retrieves a specific closing, including its verbatim
	// details payload.
	FindClosingByID(ctx context.Context, closingID string) (*domain.DailyClosing, error)

	// ListClosings retrieves a paginated list of closings, newest date first.
	ListClosings(ctx context.Context, limit int, offset int) ([]domain.DailyClosing, error)

	// ListAllClosings retrieves every closing; used by the dashboard roll-up.
	ListAllClosings(ctx context.Context) ([]domain.DailyClosing, error)
}

// ClosingWriter defines write operations for daily closings. Closings are
// immutable once created; corrections are new records.
type ClosingWriter interface {
	// SaveClosing persists a new closing.
	SaveClosing(ctx context.Context, closing domain.DailyClosing) error
}

// ClosingRepositoryFacade combines reader and writer
type ClosingRepositoryFacade interface {
	ClosingReader
	ClosingWriter
}
