package metrics

import (
	"bearer-auth-api/internal/app/config"
	"bearer-auth-api/internal/app/ports"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type AuthActionMetrics struct {
	cfg                     config.MetricsContext
	BuildInfo               *prometheus.GaugeVec
	ActionDurationHistogram *prometheus.HistogramVec
	AuthAttemptsTotal       *prometheus.CounterVec
}

// Enforce compile-time conformance to the interface
var _ ports.ActionMetrics = (*AuthActionMetrics)(nil)

func NewAuthActionMetrics(programName, programVersion string, cfg config.MetricsContext, reg prometheus.Registerer) (*AuthActionMetrics, error) {
	constLabels := prometheus.Labels{
		"environment":     cfg.Environment,
		"program_name":    programName,
		"program_version": programVersion,
	}

	var strategyLabels = []string{string(ports.MALabelStrategy), string(ports.MALabelResult)}
	var routeLabels = []string{string(ports.MALabelRoute), string(ports.MALabelStrategy), string(ports.MALabelResult)}
	pa := promauto.With(reg)
	m := &AuthActionMetrics{
		cfg: cfg,
		BuildInfo: pa.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace:   cfg.Namespace,
				Name:        "build_info",
				Help:        "Build information for this binary; constant value 1.",
				ConstLabels: constLabels,
			},
			[]string{},
		),

		ActionDurationHistogram: pa.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace:   cfg.Namespace,
				Name:        "auth_attempt_duration_seconds",
				Help:        "Distribution of authentication attempt durations in seconds, validator call included.",
				Buckets:     []float64{0.001, 0.005, 0.010, 0.050, 0.100, 0.500, 1.0, 3.0},
				ConstLabels: prometheus.Labels{"environment": cfg.Environment},
			},
			strategyLabels,
		),

		AuthAttemptsTotal: pa.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   cfg.Namespace,
				Name:        "auth_attempts_total",
				Help:        "Total number of authentication attempts partitioned by route, strategy and result.",
				ConstLabels: prometheus.Labels{"environment": cfg.Environment},
			},
			routeLabels,
		),
	}

	m.BuildInfo.With(nil).Set(1)
	return m, nil
}

// OnActionDone updates all metrics for a single strategy attempt.
func (m *AuthActionMetrics) OnActionDone(ma ports.MeasuredAction) {
	mal := ma.Labels()
	labels := prometheus.Labels{
		string(ports.MALabelStrategy): mal[ports.MALabelStrategy],
		string(ports.MALabelResult):   mal[ports.MALabelResult],
	}
	routeLabels := prometheus.Labels{
		string(ports.MALabelRoute):    mal[ports.MALabelRoute],
		string(ports.MALabelStrategy): mal[ports.MALabelStrategy],
		string(ports.MALabelResult):   mal[ports.MALabelResult],
	}
	m.ActionDurationHistogram.With(labels).Observe(ma.Duration())
	m.AuthAttemptsTotal.With(routeLabels).Inc()
}
