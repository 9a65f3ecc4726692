package errors

import (
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "Gamma Ray (API)", false},
		{"unicode", "Dichte ρ", false},
		{"empty", "", true},
		{"whitespace", "   ", true},
		{"control", "gamma\x07ray", true},
		{"newline", "gamma\nray", true},
		{"too long", strings.Repeat("a", 129), true},
		{"max length", strings.Repeat("a", 128), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeUnknownTrackSpec) {
				t.Errorf("ValidateName(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeUnknownTrackSpec)
			}
		})
	}
}

func TestValidateFilename(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"welllog.svg", false},
		{"two.png", false},
		{"", true},
		{"dir/file.svg", true},
		{`dir\file.svg`, true},
		{".hidden.svg", true},
	}

	for _, tt := range tests {
		err := ValidateFilename(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFilename(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"out/welllog.svg", false},
		{"/tmp/welllog.svg", false},
		{"welllog.svg", false},
		{"out/../welllog.svg", false},
		{"", true},
		{"../welllog.svg", true},
		{"..", true},
		{"out/../../x.svg", true},
		{"bad\x00name", true},
		{strings.Repeat("a", 501), true},
	}

	for _, tt := range tests {
		err := ValidatePath(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}
