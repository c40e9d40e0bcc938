// Package metrics provides Prometheus instrumentation for the settlement engine.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// StakesPlaced counts admitted stakes, partitioned by side.
	StakesPlaced = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "parimutuel_stakes_placed_total",
		Help: "Total number of stakes admitted",
	}, []string{"side"})

	// StakesRejected counts rejected stake attempts by error code.
	StakesRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "parimutuel_stakes_rejected_total",
		Help: "Total number of rejected stake attempts",
	}, []string{"reason"})

	// StakeVolume tracks cumulative staked minor units per side.
	StakeVolume = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "parimutuel_stake_volume_total",
		Help: "Cumulative staked amount in minor units",
	}, []string{"side"})

	// LedgerEntries counts ledger entries written, by kind.
	LedgerEntries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "parimutuel_ledger_entries_total",
		Help: "Total ledger entries applied",
	}, []string{"kind"})

	// Resolutions counts finished settlements by terminal state.
	Resolutions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "parimutuel_resolutions_total",
		Help: "Total markets settled",
	}, []string{"state"})

	// PayoutsDistributed tracks minor units credited to winners.
	PayoutsDistributed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "parimutuel_payouts_distributed_total",
		Help: "Cumulative payouts credited in minor units",
	})

	// ResidueForfeited tracks rounding residue retained by the platform.
	ResidueForfeited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "parimutuel_residue_forfeited_total",
		Help: "Cumulative undistributed residue in minor units",
	})

	// FeesCollected tracks fees taken off resolved pots.
	FeesCollected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "parimutuel_fees_collected_total",
		Help: "Cumulative fees in minor units",
	})

	// SettlementLatency tracks the wall time of one settlement pass.
	SettlementLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "parimutuel_settlement_duration_seconds",
		Help:    "Settlement pass duration in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// ExternalEvents counts imported external events by status.
	ExternalEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "parimutuel_external_events_total",
		Help: "Imported external settlement events",
	}, []string{"status"})

	// AuditDrifts reports drift found by the last audit run.
	AuditDrifts = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "parimutuel_audit_drifts",
		Help: "Drifts found by the last audit run",
	}, []string{"kind"})

	// OperatorAlerts counts alerts raised, by kind.
	OperatorAlerts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "parimutuel_operator_alerts_total",
		Help: "Operator alerts raised",
	}, []string{"kind"})

	// WebSocketClients tracks connected WebSocket clients.
	WebSocketClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "parimutuel_websocket_clients",
		Help: "Number of connected WebSocket clients",
	})

	// HTTPRequestsTotal counts HTTP requests by method, route, and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "parimutuel_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "path", "status"})

	// HTTPRequestDuration tracks request duration by method and route.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "parimutuel_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
	}, []string{"method", "path"})
)

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware records request metrics labelled by route template.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// Use the route pattern for path label to avoid high cardinality.
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
