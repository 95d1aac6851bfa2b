package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bluespark/hospital-hr-backend-go/internal/domain/employee"
	"github.com/bluespark/hospital-hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

const employeeColumns = `id, first_name, surname, birth_date, identity_number, province, naturality, residence,
			gender, start_date, start_year, sector, department, specialty, category, nuit, career, age_band,
			status, created_at, updated_at`

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1
	`

	return scanEmployee(q.QueryRow(ctx, query, id))
}

// GetByIDForUpdate implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByIDForUpdate(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1
		FOR UPDATE
	`

	return scanEmployee(q.QueryRow(ctx, query, id))
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (
			id, first_name, surname, birth_date, identity_number, province, naturality, residence,
			gender, start_date, start_year, sector, department, specialty, category, nuit, career, age_band,
			status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8,
			$9, $10, $11, $12, $13, $14, $15, $16, $17, $18,
			$19
		)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		newEmployee.ID, newEmployee.FirstName, newEmployee.Surname, nullableDate(newEmployee.BirthDate),
		newEmployee.IdentityNumber, newEmployee.Province, newEmployee.Naturality, newEmployee.Residence,
		string(newEmployee.Gender), nullableDate(newEmployee.StartDate), newEmployee.StartYear,
		newEmployee.Sector, newEmployee.Department, newEmployee.Specialty, newEmployee.Category,
		newEmployee.NUIT, newEmployee.Career, newEmployee.AgeBand,
		string(newEmployee.Status),
	))
	if err != nil {
		return employee.Employee{}, translateEmployeePgError(err)
	}
	return created, nil
}

// Update implements employee.EmployeeRepository. The status column is never written here.
func (e *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET first_name = $2, surname = $3, identity_number = $4, province = $5, naturality = $6,
			residence = $7, gender = $8, sector = $9, department = $10, specialty = $11,
			category = $12, nuit = $13, career = $14, age_band = $15, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + employeeColumns

	updated, err := scanEmployee(q.QueryRow(ctx, query,
		emp.ID, emp.FirstName, emp.Surname, emp.IdentityNumber, emp.Province, emp.Naturality,
		emp.Residence, string(emp.Gender), emp.Sector, emp.Department, emp.Specialty,
		emp.Category, emp.NUIT, emp.Career, emp.AgeBand,
	))
	if err != nil {
		return employee.Employee{}, translateEmployeePgError(err)
	}
	return updated, nil
}

// UpdateStatus implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) UpdateStatus(ctx context.Context, id string, status employee.Status) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`

	tag, err := q.Exec(ctx, query, string(status), id)
	if err != nil {
		return fmt.Errorf("failed to update status for employee with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	var (
		conditions []string
		args       []interface{}
	)
	where := func(clause string, arg interface{}) {
		args = append(args, arg)
		conditions = append(conditions, fmt.Sprintf(clause, len(args)))
	}

	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		where("status = ANY($%d)", statuses)
	}
	if filter.Search != "" {
		where("(first_name || ' ' || surname) ILIKE $%d", containsPattern(filter.Search))
	}
	if filter.Sector != "" {
		where("sector = $%d", filter.Sector)
	}
	if filter.Department != "" {
		where("department = $%d", filter.Department)
	}
	if filter.Province != "" {
		where("province = $%d", filter.Province)
	}
	if filter.Naturality != "" {
		where("naturality = $%d", filter.Naturality)
	}
	if filter.Gender != "" {
		where("gender = $%d", filter.Gender)
	}
	if filter.StartYear != 0 {
		where("start_year = $%d", filter.StartYear)
	}

	query := `SELECT ` + employeeColumns + `
		FROM employees`
	if len(conditions) > 0 {
		query += "\n\t\tWHERE " + strings.Join(conditions, " AND ")
	}
	query += "\n\t\tORDER BY first_name, surname, id"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// CountBySectors implements employee.EmployeeRepository. Sectors without employees count as zero
// and rows come back in the order of the argument.
func (e *employeeRepositoryImpl) CountBySectors(ctx context.Context, sectors []string) ([]employee.SectorCount, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT s.sector, COUNT(e.id)
		FROM unnest($1::text[]) WITH ORDINALITY AS s(sector, ord)
		LEFT JOIN employees e ON e.sector = s.sector
		GROUP BY s.sector, s.ord
		ORDER BY s.ord
	`

	rows, err := q.Query(ctx, query, sectors)
	if err != nil {
		return nil, fmt.Errorf("failed to count employees by sector: %w", err)
	}
	defer rows.Close()

	counts := make([]employee.SectorCount, 0, len(sectors))
	for rows.Next() {
		var c employee.SectorCount
		if err := rows.Scan(&c.Sector, &c.Total); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var (
		emp       employee.Employee
		birthDate sql.NullTime
		startDate sql.NullTime
		gender    string
		status    string
	)

	err := row.Scan(
		&emp.ID, &emp.FirstName, &emp.Surname, &birthDate, &emp.IdentityNumber, &emp.Province,
		&emp.Naturality, &emp.Residence, &gender, &startDate, &emp.StartYear, &emp.Sector,
		&emp.Department, &emp.Specialty, &emp.Category, &emp.NUIT, &emp.Career, &emp.AgeBand,
		&status, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	if birthDate.Valid {
		t := birthDate.Time
		emp.BirthDate = &t
	}
	if startDate.Valid {
		t := startDate.Time
		emp.StartDate = &t
	}
	emp.Gender = employee.Gender(gender)
	emp.Status = employee.Status(status)

	return emp, nil
}

func translateEmployeePgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		switch pgErr.ConstraintName {
		case "employees_identity_number_key":
			return employee.ErrIdentityNumberUsed
		case "employees_nuit_key":
			return employee.ErrNUITExists
		}
	}
	return err
}

func nullableDate(value *time.Time) interface{} {
	if value == nil {
		return nil
	}
	return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, time.UTC)
}

// containsPattern builds an unanchored ILIKE pattern, escaping LIKE metacharacters in s.
func containsPattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}
