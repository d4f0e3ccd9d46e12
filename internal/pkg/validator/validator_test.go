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

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"123e4567-e89b-12d3-a456-426614174000",
		"123E4567-E89B-12D3-A456-426614174000",
	}
	invalid := []string{
		"123e4567e89b12d3a456426614174000",     // missing dashes
		"g23e4567-e89b-12d3-a456-426614174000", // invalid hex
		"123e4567-e89b-12d3-a456-42661417400",  // too short
		"",
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

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-03-14"); !ok {
		t.Error("IsValidDate(2025-03-14) = false, want true")
	}
	for _, bad := range []string{"2025-13-01", "2025-02-30", "14/03/2025", "2025-3-1", ""} {
		if _, ok := IsValidDate(bad); ok {
			t.Errorf("IsValidDate(%q) = true, want false", bad)
		}
	}
}

func TestNormalizeCNPJ(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"11.222.333/0001-81", "11222333000181"},
		{"11222333000181", "11222333000181"},
		{"11 222 333 / 0001 - 81", "11222333000181"},
	}
	for _, c := range cases {
		if got := NormalizeCNPJ(c.input); got != c.want {
			t.Errorf("NormalizeCNPJ(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestIsValidCNPJ(t *testing.T) {
	valid := []string{
		"11.222.333/0001-81",
		"11222333000181",
		"45.997.418/0001-53",
	}
	invalid := []string{
		"11.222.333/0001-80", // wrong check digit
		"11111111111111",     // repeated digits
		"1122233300018",      // 13 digits
		"",
	}
	for _, cnpj := range valid {
		if !IsValidCNPJ(cnpj) {
			t.Errorf("IsValidCNPJ(%q) = false, want true", cnpj)
		}
	}
	for _, cnpj := range invalid {
		if IsValidCNPJ(cnpj) {
			t.Errorf("IsValidCNPJ(%q) = true, want false", cnpj)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	valid := []string{
		"2024-01-15T10:30:00Z",
		"2024-01-15T10:30:00-03:00",
		"2024-01-15T10:30:00.123456789Z",
	}
	invalid := []string{"2024-01-15 10:30:00", "2024-01-15", ""}
	for _, s := range valid {
		if _, ok := IsValidDateTime(s); !ok {
			t.Errorf("IsValidDateTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDateTime(s); ok {
			t.Errorf("IsValidDateTime(%q) = true, want false", s)
		}
	}
}
