package diag

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SevInfo is for tolerated anomalies.
	SevInfo Severity = iota
	// SevWarning is for anomalies worth a look.
	SevWarning
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
