package diag

// Severity ranks a diagnostic; rendering and the checker's exit status key
// off it.
type Severity uint8

const (
	SevInfo    Severity = iota // informational, never fails a check
	SevWarning                 // suspicious but accepted
	SevError                   // structural violation, fails the check
)

var severityNames = [...]string{"INFO", "WARNING", "ERROR"}

// String returns the upper-case label shown in rendered diagnostics.
func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "UNKNOWN"
}
