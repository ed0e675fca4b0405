package hygiene

import "testing"

// carrier exposes its severity through the SeverityCarrier interface.
type carrier struct {
	label string
}

func (c carrier) Severity() string { return c.label }

func TestExtractSeverity(t *testing.T) {
	tests := []struct {
		name string
		item any
		want string
	}{
		{"keyed any", map[string]any{"severity": "high", "line": 4}, "high"},
		{"keyed string map", map[string]string{"severity": "low"}, "low"},
		{"keyed non-string value", map[string]any{"severity": 42}, "42"},
		{"keyed without severity", map[string]any{"level": "high"}, "unknown"},
		{"carrier", carrier{label: "critical"}, "critical"},
		{"bare string", "medium", "medium"},
		{"empty string", "", ""},
		{"int", 7, "unknown"},
		{"nil", nil, "unknown"},
		{"plain struct", struct{ Severity string }{"high"}, "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractSeverity(tt.item)
			if got != tt.want {
				t.Errorf("ExtractSeverity(%v) = %q, want %q", tt.item, got, tt.want)
			}
		})
	}
}

func TestExtractSeverityKeyedWinsOverCarrier(t *testing.T) {
	// A map is checked before the carrier interface; a map that lacks
	// the severity key still degrades to unknown rather than erroring.
	if got := ExtractSeverity(map[string]any{}); got != "unknown" {
		t.Errorf("empty map = %q, want unknown", got)
	}
}
