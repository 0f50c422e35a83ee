package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// CPF: exactly 11 digits, no separators. Formatted variants (dots,
	// dashes) are rejected rather than normalized.
	CPFPattern = `^[0-9]{11}$`

	// Email validation pattern
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// Field length limits
	NameMaxLength           = 150
	EmailMaxLength          = 150
	SpecializationMaxLength = 100
	BioMaxLength            = 500
	ClassCodeMaxLength      = 50
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	CPF   *regexp.Regexp
	Email *regexp.Regexp
}{
	CPF:   regexp.MustCompile(CPFPattern),
	Email: regexp.MustCompile(EmailPattern),
}

// IsValidCPF reports whether s is a well-formed CPF (11 digits).
func IsValidCPF(s string) bool {
	return CompiledPatterns.CPF.MatchString(s)
}

// IsValidEmail reports whether s is a well-formed email address within the
// column length limit.
func IsValidEmail(s string) bool {
	return len(s) <= EmailMaxLength && CompiledPatterns.Email.MatchString(s)
}

// IsBlank reports whether s is empty or whitespace only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
