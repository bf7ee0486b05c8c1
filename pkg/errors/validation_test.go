package errors

import (
	"strings"
	"testing"
)

func TestValidateID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"upper snake", "HIRE_3", false},
		{"lower dash", "sales-process", false},
		{"dotted", "r30.inner", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 200), true},
		{"space", "NEW BIZ", true},
		{"leading dash", "-x", true},
		{"quote", `a"b`, true},
		{"angle bracket", "<script>", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	var v ValidationError
	if v.OrNil() != nil {
		t.Fatal("empty ValidationError should be nil")
	}

	v.Add(ErrCodeUnknownTier, "nodes[0].tier", "tier %q does not exist", "R999")
	if got := v.Error(); got != `UNKNOWN_TIER: nodes[0].tier: tier "R999" does not exist` {
		t.Errorf("Error() = %q", got)
	}

	v.Add(ErrCodeUnknownNode, "", "dangling edge")
	if !strings.HasPrefix(v.Error(), "2 validation issues:") {
		t.Errorf("Error() = %q", v.Error())
	}
	if v.OrNil() == nil {
		t.Error("OrNil() = nil, want error")
	}
}
