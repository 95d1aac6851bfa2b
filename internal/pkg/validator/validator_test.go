package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // v7
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B", // v7 (uppercase)
		"123e4567-e89b-42d3-a456-426614174000", // v4
	}
	invalid := []string{
		"123e4567-e89b-02d3-a456-426614174000", // version 0
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"",                                     // empty
	}
	for _, uuid := range valid {
		if !IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = false, want true", uuid)
		}
	}
	for _, uuid := range invalid {
		if IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = true, want false", uuid)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "0", "9876543210"}
	invalid := []string{"abc", "123a", "", "-123"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31", "2024-01-10"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidNUIT(t *testing.T) {
	valid := []string{"123456789"}
	invalid := []string{"12345678", "1234567890", "12345678a", ""}
	for _, nuit := range valid {
		if !IsValidNUIT(nuit) {
			t.Errorf("IsValidNUIT(%q) = false, want true", nuit)
		}
	}
	for _, nuit := range invalid {
		if IsValidNUIT(nuit) {
			t.Errorf("IsValidNUIT(%q) = true, want false", nuit)
		}
	}
}

func TestIsValidContact(t *testing.T) {
	valid := []string{"841234567", "821234567", "871234567", "861234567", "851234567", "831234567"}
	invalid := []string{"811234567", "84123456", "8412345678", "84123456a", "+258841234567", ""}
	for _, c := range valid {
		if !IsValidContact(c) {
			t.Errorf("IsValidContact(%q) = false, want true", c)
		}
	}
	for _, c := range invalid {
		if IsValidContact(c) {
			t.Errorf("IsValidContact(%q) = true, want false", c)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"a", "b", "c"}
	if !IsInSlice("a", slice) {
		t.Errorf("IsInSlice('a') = false, want true")
	}
	if IsInSlice("d", slice) {
		t.Errorf("IsInSlice('d') = true, want false")
	}
}

func TestAtoi(t *testing.T) {
	if got := Atoi("2020"); got != 2020 {
		t.Errorf("Atoi(%q) = %d, want 2020", "2020", got)
	}
	if got := Atoi("x"); got != 0 {
		t.Errorf("Atoi(%q) = %d, want 0", "x", got)
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "employee_id", Message: "invalid"},
		{Field: "age", Message: "required"},
	}
	got := errs.Error()
	want := "employee_id: invalid; age: required"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "employee_id", Message: "invalid"},
		{Field: "age", Message: "required"},
	}
	got := errs.ToMap()
	want := map[string]string{"employee_id": "invalid", "age": "required"}
	if len(got) != len(want) {
		t.Errorf("ValidationErrors.ToMap() length = %d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("ValidationErrors.ToMap()[%q] = %q, want %q", k, got[k], v)
		}
	}
}
