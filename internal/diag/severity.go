package diag

// Severity ranks how serious a diagnostic is. Errors fail the run;
// warnings and infos are advisory.
type Severity uint8

const (
	// SevInfo marks purely informational diagnostics.
	SevInfo Severity = iota
	// SevWarning marks suspicious but non-fatal findings.
	SevWarning
	// SevError marks diagnostics that make the phase fail.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
