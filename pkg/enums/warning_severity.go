package enums

import "fmt"

// WarningSeverity labels a disciplinary warning. Severity is informational;
// it never gates any operation.
type WarningSeverity string

const (
	WarningSeverityNormal   WarningSeverity = "normal"
	WarningSeverityElevated WarningSeverity = "elevated"
	WarningSeverityCritical WarningSeverity = "critical"
)

var validWarningSeverities = []WarningSeverity{
	WarningSeverityNormal,
	WarningSeverityElevated,
	WarningSeverityCritical,
}

// String implements fmt.Stringer.
func (w WarningSeverity) String() string {
	return string(w)
}

// IsValid reports whether the value is a known WarningSeverity.
func (w WarningSeverity) IsValid() bool {
	for _, candidate := range validWarningSeverities {
		if candidate == w {
			return true
		}
	}
	return false
}

// ParseWarningSeverity converts raw input into a WarningSeverity.
func ParseWarningSeverity(value string) (WarningSeverity, error) {
	for _, candidate := range validWarningSeverities {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid warning severity %q", value)
}
