// Package metrics records conversion and failure counts for the fixed-point
// converter.
//
//go:generate mockgen -source=recorder.go -destination=mocks/mock_recorder.go -package=mocks
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Conversion directions used as the direction label.
const (
	DirectionToDecimal = "to_decimal"
	DirectionToBinary  = "to_binary"
)

// Recorder receives one observation per converter call.
type Recorder interface {
	// ObserveConversion records a completed conversion and the digit or
	// bit count it settled on.
	ObserveConversion(direction string, exact bool, precision int)
	// ObserveFailure records a conversion that returned an error.
	ObserveFailure(op, kind string)
}

// NopRecorder discards every observation.
type NopRecorder struct{}

func (NopRecorder) ObserveConversion(string, bool, int) {}
func (NopRecorder) ObserveFailure(string, string)       {}

// PrometheusRecorder exports observations as Prometheus metrics.
type PrometheusRecorder struct {
	conversions *prometheus.CounterVec
	precision   *prometheus.HistogramVec
	failures    *prometheus.CounterVec
}

// NewPrometheusRecorder creates the widemath collectors and registers them
// with reg. Collectors already registered by an earlier recorder are
// reused, so several converters may share one registry.
func NewPrometheusRecorder(reg prometheus.Registerer) (*PrometheusRecorder, error) {
	conversions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "widemath",
		Subsystem: "fixedpoint",
		Name:      "conversions_total",
		Help:      "Fixed-point conversions, by direction and whether the result is exact.",
	}, []string{"direction", "exact"})

	precision := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "widemath",
		Subsystem: "fixedpoint",
		Name:      "precision",
		Help:      "Digit or bit count chosen by each conversion.",
		Buckets:   []float64{1, 2, 4, 8, 16, 32, 64, 128, 512, 2466},
	}, []string{"direction"})

	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "widemath",
		Name:      "failures_total",
		Help:      "Failed operations, by operation and error kind.",
	}, []string{"op", "kind"})

	var err error
	if conversions, err = register(reg, conversions); err != nil {
		return nil, err
	}
	if precision, err = register(reg, precision); err != nil {
		return nil, err
	}
	if failures, err = register(reg, failures); err != nil {
		return nil, err
	}
	return &PrometheusRecorder{conversions: conversions, precision: precision, failures: failures}, nil
}

// register registers c, returning the existing collector of the same
// type when one is already registered under the same descriptor.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func (r *PrometheusRecorder) ObserveConversion(direction string, exact bool, precision int) {
	label := "false"
	if exact {
		label = "true"
	}
	r.conversions.WithLabelValues(direction, label).Inc()
	r.precision.WithLabelValues(direction).Observe(float64(precision))
}

func (r *PrometheusRecorder) ObserveFailure(op, kind string) {
	r.failures.WithLabelValues(op, kind).Inc()
}
