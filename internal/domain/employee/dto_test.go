package employee

import (
	"strings"
	"testing"

	"github.com/bluespark/hospital-hr-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() CreateEmployeeRequest {
	return CreateEmployeeRequest{
		FirstName:      "Ana",
		Surname:        "Machava",
		BirthDate:      "1970-03-14",
		IdentityNumber: "110100123456A",
		Province:       "Maputo",
		Naturality:     "Xai-Xai",
		Residence:      "Matola",
		Gender:         "F",
		StartDate:      "1995-06-01",
		Sector:         "Maternidade",
		NUIT:           "123456789",
	}
}

func TestCreateEmployeeRequest_Validate(t *testing.T) {
	req := validCreateRequest()
	assert.NoError(t, req.Validate())

	req = validCreateRequest()
	req.FirstName = " "
	req.Gender = "X"
	req.NUIT = "12"
	req.StartDate = "1960-01-01"
	err := req.Validate()
	require.Error(t, err)

	fields := err.(validator.ValidationErrors).ToMap()
	assert.Contains(t, fields, "first_name")
	assert.Contains(t, fields, "gender")
	assert.Contains(t, fields, "nuit")
	assert.Contains(t, fields, "start_date")
}

func TestCreateEmployeeRequest_LengthsCountCharacters(t *testing.T) {
	req := validCreateRequest()
	req.FirstName = strings.Repeat("é", 50)
	req.Sector = strings.Repeat("ó", 200)
	req.Department = strings.Repeat("ã", 100)
	req.Residence = "Maputo, Bairro da Malhangalene, Rua da Resistência"
	assert.NoError(t, req.Validate())

	req.FirstName = strings.Repeat("é", 51)
	req.Department = strings.Repeat("ã", 101)
	err := req.Validate()
	require.Error(t, err)
	fields := err.(validator.ValidationErrors).ToMap()
	assert.Contains(t, fields, "first_name")
	assert.Contains(t, fields, "department")
	assert.NotContains(t, fields, "sector")
}

func TestCreateEmployeeRequest_StartYearRange(t *testing.T) {
	req := validCreateRequest()
	year := 1800
	req.StartYear = &year
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.(validator.ValidationErrors).ToMap(), "start_year")
}

func TestUpdateEmployeeRequest_ValidateAndApply(t *testing.T) {
	sector := "Laboratório"
	gender := "m"
	req := UpdateEmployeeRequest{ID: "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", Sector: &sector, Gender: &gender}
	require.NoError(t, req.Validate())

	emp := Employee{FirstName: "Ana", Sector: "Maternidade", Gender: Female, Status: StatusOnLeave}
	req.Apply(&emp)
	assert.Equal(t, "Laboratório", emp.Sector)
	assert.Equal(t, Male, emp.Gender)
	assert.Equal(t, "Ana", emp.FirstName)
	assert.Equal(t, StatusOnLeave, emp.Status)

	bad := UpdateEmployeeRequest{ID: "not-a-uuid"}
	assert.Error(t, bad.Validate())
}

func TestListEmployeeRequest_ToFilter(t *testing.T) {
	filter, err := ListEmployeeRequest{Status: "active,on-leave", Search: " ana ", Department: " Pediatria ", StartYear: "2020", Gender: "f"}.ToFilter()
	require.NoError(t, err)
	assert.Equal(t, []Status{StatusActive, StatusOnLeave}, filter.Statuses)
	assert.Equal(t, "ana", filter.Search)
	assert.Equal(t, "Pediatria", filter.Department)
	assert.Equal(t, 2020, filter.StartYear)
	assert.Equal(t, "F", filter.Gender)

	_, err = ListEmployeeRequest{Status: "ACTIVO", StartYear: "x"}.ToFilter()
	require.Error(t, err)
	fields := err.(validator.ValidationErrors).ToMap()
	assert.Contains(t, fields, "status")
	assert.Contains(t, fields, "start_year")
}
