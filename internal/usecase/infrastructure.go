package usecase

// Severity of a user-facing notification.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// Notifier surfaces non-fatal signals to the user. The View renders them;
// the domain layer never blocks on them.
type Notifier interface {
	Notify(message string, severity Severity)
}
