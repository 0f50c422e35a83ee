package validation

import "testing"

func TestIsValidCPF(t *testing.T) {
	tests := []struct {
		name string
		cpf  string
		want bool
	}{
		{"eleven digits", "12345678901", true},
		{"all zeros still well-formed", "00000000000", true},
		{"too short", "1234567890", false},
		{"too long", "123456789012", false},
		{"formatted with separators", "123.456.789-01", false},
		{"letters", "1234567890a", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidCPF(tt.cpf); got != tt.want {
				t.Errorf("IsValidCPF(%q) = %v, want %v", tt.cpf, got, tt.want)
			}
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"plain", "ada@x.test", true},
		{"subdomain", "a.b@mail.example.com", true},
		{"missing at", "ada.x.test", false},
		{"missing tld", "ada@x", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidEmail(tt.email); got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestIsBlank(t *testing.T) {
	if !IsBlank("   ") {
		t.Error("whitespace-only string should be blank")
	}
	if IsBlank(" a ") {
		t.Error("string with content should not be blank")
	}
}
