package employee

import (
	"context"
)

// EmployeeService defines business logic for the employee registry
type EmployeeService interface {
	// GetEmployee retrieves a single employee by ID
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// CreateEmployee registers a new hire with status ACTIVE
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// UpdateEmployee updates administrative fields; status is never touched
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// ListEmployees lists employees matching filter
	ListEmployees(ctx context.Context, filter ListFilter) ([]EmployeeResponse, error)

	// CountBySector counts employees for each configured sector
	CountBySector(ctx context.Context) ([]SectorCountResponse, error)
}
