package helpers

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"valid date", "2026-02-01", time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), false},
		{"leap day", "2024-02-29", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), false},
		{"empty", "", time.Time{}, true},
		{"wrong layout", "01/02/2026", time.Time{}, true},
		{"datetime rejected", "2026-02-01T10:00:00Z", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatDateRoundTrip(t *testing.T) {
	parsed, err := ParseDate("2026-06-30")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if got := FormatDate(parsed); got != "2026-06-30" {
		t.Errorf("FormatDate = %q, want %q", got, "2026-06-30")
	}
}

func TestFormatDatePtr(t *testing.T) {
	if got := FormatDatePtr(nil); got != nil {
		t.Errorf("FormatDatePtr(nil) = %v, want nil", got)
	}

	d := time.Date(1815, 12, 10, 0, 0, 0, 0, time.UTC)
	got := FormatDatePtr(&d)
	if got == nil || *got != "1815-12-10" {
		t.Errorf("FormatDatePtr = %v, want 1815-12-10", got)
	}
}

func TestParseDuration(t *testing.T) {
	if got := ParseDuration("90s", time.Minute); got != 90*time.Second {
		t.Errorf("ParseDuration(90s) = %v", got)
	}
	if got := ParseDuration("bogus", time.Minute); got != time.Minute {
		t.Errorf("ParseDuration fallback = %v, want 1m", got)
	}
}
