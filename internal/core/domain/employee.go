package domain

import "github.com/shopspring/decimal"

// Employee is a staff member drawing a basic salary. Wage-affecting
// transactions and custody advances reference the employee by ID; deleting an
// employee does not cascade to its historical records.
type Employee struct {
	EmployeeID  string          `json:"employeeID"`
	Code        string          `json:"code"` // Job number, optional
	Name        string          `json:"name"`
	Role        string          `json:"role"`
	Phone       string          `json:"phone"`
	BasicSalary decimal.Decimal `json:"basicSalary"` // >= 0
	JoinDate    string          `json:"joinDate"`    // YYYY-MM-DD, optional
	AuditFields
}
