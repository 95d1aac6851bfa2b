package employee

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/bluespark/hospital-hr-backend-go/internal/domain/employee"
	"github.com/bluespark/hospital-hr-backend-go/internal/pkg/database"
	"github.com/bluespark/hospital-hr-backend-go/internal/pkg/validator"
	"github.com/bluespark/hospital-hr-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEmployeeID = "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b"

var (
	employeeColumns = []string{
		"id", "first_name", "surname", "birth_date", "identity_number", "province", "naturality", "residence",
		"gender", "start_date", "start_year", "sector", "department", "specialty", "category", "nuit", "career", "age_band",
		"status", "created_at", "updated_at",
	}
	createdAt = time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC)
)

func employeeRow(rows *pgxmock.Rows, id, firstName, sector string, status employee.Status) *pgxmock.Rows {
	return rows.AddRow(
		id, firstName, "Machava", nil, "110100123456A", "Maputo", "Xai-Xai", "Matola",
		"F", nil, 1995, sector, "", "", "", "123456789", "", "",
		string(status), createdAt, createdAt,
	)
}

func newTestService(t *testing.T) (pgxmock.PgxPoolIface, employee.EmployeeService) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	db := database.NewWithPool(mock)
	return mock, NewEmployeeService(db, postgresql.NewEmployeeRepository(db), nil)
}

func TestCreateEmployee_StartsActive(t *testing.T) {
	mock, svc := newTestService(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO employees")).
		WithArgs(pgxmock.AnyArg(), "Ana", "Machava", time.Date(1970, 3, 14, 0, 0, 0, 0, time.UTC),
			"110100123456A", "Maputo", "Xai-Xai", "Matola", "F", time.Date(1995, 6, 1, 0, 0, 0, 0, time.UTC), 1995,
			"Maternidade", "", "", "", "123456789", "", "", "ACTIVE").
		WillReturnRows(employeeRow(pgxmock.NewRows(employeeColumns), testEmployeeID, "Ana", "Maternidade", employee.StatusActive))

	resp, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		FirstName:      "Ana",
		Surname:        "Machava",
		BirthDate:      "1970-03-14",
		IdentityNumber: "110100123456A",
		Province:       "Maputo",
		Naturality:     "Xai-Xai",
		Residence:      "Matola",
		Gender:         "f",
		StartDate:      "1995-06-01",
		Sector:         "Maternidade",
		NUIT:           "123456789",
	})

	require.NoError(t, err)
	assert.Equal(t, "ACTIVE", resp.Status)
	assert.Equal(t, "Ana Machava", resp.FullName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEmployee_DuplicateNUIT(t *testing.T) {
	mock, svc := newTestService(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO employees")).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "employees_nuit_key"})

	_, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		FirstName: "Ana",
		Surname:   "Machava",
		BirthDate: "1970-03-14",
		Gender:    "F",
		StartDate: "1995-06-01",
		Sector:    "Maternidade",
		NUIT:      "123456789",
	})

	assert.ErrorIs(t, err, employee.ErrNUITExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEmployee_Invalid(t *testing.T) {
	mock, svc := newTestService(t)

	_, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{})

	_, ok := err.(validator.ValidationErrors)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateEmployee_KeepsStatus(t *testing.T) {
	mock, svc := newTestService(t)

	sector := "Psiquiatria"
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM employees WHERE id = $1 FOR UPDATE")).
		WithArgs(testEmployeeID).
		WillReturnRows(employeeRow(pgxmock.NewRows(employeeColumns), testEmployeeID, "Ana", "Maternidade", employee.StatusOnLeave))
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE employees SET first_name = $2")).
		WithArgs(testEmployeeID, "Ana", "Machava", "110100123456A", "Maputo", "Xai-Xai", "Matola", "F",
			"Psiquiatria", "", "", "", "123456789", "", "").
		WillReturnRows(employeeRow(pgxmock.NewRows(employeeColumns), testEmployeeID, "Ana", "Psiquiatria", employee.StatusOnLeave))
	mock.ExpectCommit()

	resp, err := svc.UpdateEmployee(context.Background(), employee.UpdateEmployeeRequest{ID: testEmployeeID, Sector: &sector})

	require.NoError(t, err)
	assert.Equal(t, "Psiquiatria", resp.Sector)
	assert.Equal(t, "ON_LEAVE", resp.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateEmployee_NotFound(t *testing.T) {
	mock, svc := newTestService(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM employees WHERE id = $1 FOR UPDATE")).
		WithArgs(testEmployeeID).
		WillReturnRows(pgxmock.NewRows(employeeColumns))
	mock.ExpectRollback()

	_, err := svc.UpdateEmployee(context.Background(), employee.UpdateEmployeeRequest{ID: testEmployeeID})

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEmployee(t *testing.T) {
	mock, svc := newTestService(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM employees WHERE id = $1")).
		WithArgs(testEmployeeID).
		WillReturnRows(employeeRow(pgxmock.NewRows(employeeColumns), testEmployeeID, "Ana", "Maternidade", employee.StatusSuspended))

	resp, err := svc.GetEmployee(context.Background(), testEmployeeID)

	require.NoError(t, err)
	assert.Equal(t, testEmployeeID, resp.ID)
	assert.Equal(t, "SUSPENDED", resp.Status)
	assert.Nil(t, resp.BirthDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEmployee_NotFound(t *testing.T) {
	mock, svc := newTestService(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM employees WHERE id = $1")).
		WithArgs(testEmployeeID).
		WillReturnRows(pgxmock.NewRows(employeeColumns))

	_, err := svc.GetEmployee(context.Background(), testEmployeeID)

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListEmployees_ByStatusAndSearch(t *testing.T) {
	mock, svc := newTestService(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE status = ANY($1) AND (first_name || ' ' || surname) ILIKE $2 ORDER BY first_name, surname, id")).
		WithArgs([]string{"ON_LEAVE"}, "%ana%").
		WillReturnRows(employeeRow(pgxmock.NewRows(employeeColumns), testEmployeeID, "Ana", "Maternidade", employee.StatusOnLeave))

	resp, err := svc.ListEmployees(context.Background(), employee.ListFilter{
		Statuses: []employee.Status{employee.StatusOnLeave},
		Search:   "ana",
	})

	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "ON_LEAVE", resp[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListEmployees_BySectorAndDepartment(t *testing.T) {
	mock, svc := newTestService(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE sector = $1 AND department = $2 ORDER BY first_name, surname, id")).
		WithArgs("Maternidade", "Obstetrícia").
		WillReturnRows(pgxmock.NewRows(employeeColumns))

	resp, err := svc.ListEmployees(context.Background(), employee.ListFilter{
		Sector:     "Maternidade",
		Department: "Obstetrícia",
	})

	require.NoError(t, err)
	assert.Empty(t, resp)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListEmployees_EscapesLikeMetacharacters(t *testing.T) {
	mock, svc := newTestService(t)

	mock.ExpectQuery(regexp.QuoteMeta("ILIKE $1")).
		WithArgs(`%50\%%`).
		WillReturnRows(pgxmock.NewRows(employeeColumns))

	resp, err := svc.ListEmployees(context.Background(), employee.ListFilter{Search: "50%"})

	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Empty(t, resp)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountBySector_DefaultSectors(t *testing.T) {
	mock, svc := newTestService(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM unnest($1::text[])")).
		WithArgs(DefaultSectors).
		WillReturnRows(pgxmock.NewRows([]string{"sector", "count"}).
			AddRow("Maternidade", int64(12)).
			AddRow("Laboratório", int64(4)).
			AddRow("Psiquiatria", int64(0)).
			AddRow("Medicina 1", int64(7)))

	resp, err := svc.CountBySector(context.Background())

	require.NoError(t, err)
	require.Len(t, resp, 4)
	assert.Equal(t, employee.SectorCountResponse{Sector: "Psiquiatria", Total: 0}, resp[2])
	assert.Equal(t, int64(7), resp[3].Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}
