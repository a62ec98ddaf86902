package services

import (
	portsrepo "github.com/muhasibpro/muhasib_app/internal/core/ports/repositories"
	portssvc "github.com/muhasibpro/muhasib_app/internal/core/ports/services"
	"github.com/muhasibpro/muhasib_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Employee = NewEmployeeService(repos.EmployeeRepo)
	container.Custody = NewCustodyService(repos.CustodyRepo, repos.EmployeeRepo)
	container.Salary = NewSalaryService(repos.SalaryTransactionRepo, repos.EmployeeRepo, repos.CustodyRepo)
	container.Closing = NewClosingService(repos.ClosingRepo)
	container.Supplier = NewSupplierService(repos.SupplierRepo, repos.PurchaseRepo)
	container.Purchase = NewPurchaseService(repos.PurchaseRepo, repos.SupplierRepo)
	container.Product = NewProductService(repos.ProductRepo)
	container.Dashboard = NewDashboardService(repos.ClosingRepo, repos.PurchaseRepo, repos.ProductRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.EmployeeSvcFacade  = (*employeeService)(nil)
	_ portssvc.CustodySvcFacade   = (*custodyService)(nil)
	_ portssvc.SalarySvcFacade    = (*salaryService)(nil)
	_ portssvc.ClosingSvcFacade   = (*closingService)(nil)
	_ portssvc.SupplierSvcFacade  = (*supplierService)(nil)
	_ portssvc.PurchaseSvcFacade  = (*purchaseService)(nil)
	_ portssvc.ProductSvcFacade   = (*productService)(nil)
	_ portssvc.DashboardSvcFacade = (*dashboardService)(nil)
)
