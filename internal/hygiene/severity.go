package hygiene

import "fmt"

// SeverityCarrier is implemented by result types that expose their own
// severity label.
type SeverityCarrier interface {
	Severity() string
}

// ExtractSeverity pulls a severity label from a validator result without
// depending on validator-specific shapes. Accepted, in order: a keyed
// structure with a "severity" entry, a SeverityCarrier, a bare string.
// Anything else degrades to "unknown". Never fails.
func ExtractSeverity(item any) string {
	switch v := item.(type) {
	case map[string]any:
		if s, ok := v["severity"]; ok {
			return fmt.Sprint(s)
		}
	case map[string]string:
		if s, ok := v["severity"]; ok {
			return s
		}
	}

	switch v := item.(type) {
	case SeverityCarrier:
		return v.Severity()
	case string:
		return v
	}

	return "unknown"
}
