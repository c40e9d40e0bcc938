package notify

import (
	"context"
	"parimutuel-engine/internal/metrics"
	"parimutuel-engine/internal/model"
	"parimutuel-engine/internal/service"

	"github.com/rs/zerolog"
)

// LogAlerter writes operator alerts to the structured log and counts them
type LogAlerter struct {
	logger zerolog.Logger
}

var _ service.OperatorAlerter = (*LogAlerter)(nil)

func NewLogAlerter(logger zerolog.Logger) *LogAlerter {
	return &LogAlerter{logger: logger}
}

func (a *LogAlerter) Alert(ctx context.Context, alert model.OperatorAlert) {
	metrics.OperatorAlerts.WithLabelValues(alert.Kind).Inc()

	event := a.logger.Warn()
	if alert.Severity == model.AlertCritical {
		event = a.logger.Error()
	}
	event.
		Str("alert", alert.Kind).
		Str("severity", string(alert.Severity)).
		Str("market_id", alert.MarketID).
		Str("user_id", alert.UserID).
		Msg(alert.Message)
}
