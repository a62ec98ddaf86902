package dto

import (
	"time"

	"github.com/muhasibpro/muhasib_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest defines the data needed to register an employee.
type CreateEmployeeRequest struct {
	Code        string          `json:"code"`
	Name        string          `json:"name" binding:"required"`
	Role        string          `json:"role"`
	Phone       string          `json:"phone"`
	BasicSalary decimal.Decimal `json:"basicSalary"`
	JoinDate    string          `json:"joinDate"` // YYYY-MM-DD, optional
}

// UpdateEmployeeRequest defines the fields allowed for updating an employee.
// Pointers distinguish zero-value updates from fields not provided.
type UpdateEmployeeRequest struct {
	Code        *string          `json:"code"`
	Name        *string          `json:"name"`
	Role        *string          `json:"role"`
	Phone       *string          `json:"phone"`
	BasicSalary *decimal.Decimal `json:"basicSalary"`
	JoinDate    *string          `json:"joinDate"`
}

// EmployeeResponse defines the data returned for an employee.
type EmployeeResponse struct {
	EmployeeID  string          `json:"employeeID"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Role        string          `json:"role"`
	Phone       string          `json:"phone"`
	BasicSalary decimal.Decimal `json:"basicSalary"`
	JoinDate    string          `json:"joinDate"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"lastUpdatedAt"`
}

// ToEmployeeResponse converts a domain.Employee to its response DTO.
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:  e.EmployeeID,
		Code:        e.Code,
		Name:        e.Name,
		Role:        e.Role,
		Phone:       e.Phone,
		BasicSalary: e.BasicSalary,
		JoinDate:    e.JoinDate,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.LastUpdatedAt,
	}
}

// ListEmployeesParams defines query parameters for listing employees.
type ListEmployeesParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListEmployeesResponse wraps the list of employees.
type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}
