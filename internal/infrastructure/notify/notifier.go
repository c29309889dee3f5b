package notify

import (
	"github.com/inventory-pro/backend/internal/usecase"
	"github.com/inventory-pro/backend/pkg/logger"
)

// LogNotifier records user-facing notifications in the application log.
// The toast rendering itself lives in the View.
type LogNotifier struct {
	logger logger.Logger
}

func NewLogNotifier(logger logger.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(message string, severity usecase.Severity) {
	switch severity {
	case usecase.SeverityWarning, usecase.SeverityDanger:
		n.logger.Warnf("[%s] %s", severity, message)
	default:
		n.logger.Infof("[%s] %s", severity, message)
	}
}
