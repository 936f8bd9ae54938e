package utils

import "testing"

func TestCleanCEP(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"01001-000", "01001000"},
		{"01001000", "01001000"},
		{" 01.001-000 ", "01001000"},
		{"0100100", ""},
		{"010010000", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := CleanCEP(tt.in); got != tt.want {
			t.Errorf("CleanCEP(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatCEP(t *testing.T) {
	if got := FormatCEP("01001000"); got != "01001-000" {
		t.Errorf("FormatCEP = %q", got)
	}
	if got := FormatCEP("123"); got != "" {
		t.Errorf("FormatCEP(invalid) = %q, want empty", got)
	}
}
