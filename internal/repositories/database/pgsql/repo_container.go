package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/muhasibpro/muhasib_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	employeeRepo := newPgxEmployeeRepository(dbPool)
	custodyRepo := newPgxCustodyRepository(dbPool)
	salaryTxnRepo := newPgxSalaryTransactionRepository(dbPool)
	closingRepo := newPgxClosingRepository(dbPool)
	purchaseRepo := newPgxPurchaseRepository(dbPool)
	supplierRepo := newPgxSupplierRepository(dbPool)
	productRepo := newPgxProductRepository(dbPool)

	return portsrepo.RepositoryProvider{
		EmployeeRepo:          employeeRepo,
		CustodyRepo:           custodyRepo,
		SalaryTransactionRepo: salaryTxnRepo,
		ClosingRepo:           closingRepo,
		PurchaseRepo:          purchaseRepo,
		SupplierRepo:          supplierRepo,
		ProductRepo:           productRepo,
	}
}
