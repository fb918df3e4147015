// Package observability implements the observability port with
// zerolog structured logging and prometheus metrics.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/picoscope-go/picoscope/internal/ports"
)

type Obs struct {
	log      zerolog.Logger
	counters map[string]prometheus.Counter
	gauges   map[string]prometheus.Gauge
	histos   map[string]prometheus.Observer
}

// New registers the engine's metric set against reg and wraps the
// given logger. Pass prometheus.NewRegistry() in tests to avoid
// default-registry collisions.
func New(log zerolog.Logger, reg prometheus.Registerer) *Obs {
	captures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pico_captures_total",
		Help: "Completed block captures.",
	})
	samples := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pico_samples_retrieved_total",
		Help: "Samples retrieved from the device across all channels.",
	})
	driverErrors := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pico_driver_errors_total",
		Help: "Fatal native-call statuses; each one force-closes the session.",
	})
	warnings := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pico_status_warnings_total",
		Help: "Non-fatal native statuses such as power-source caveats.",
	})
	archived := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pico_captures_archived_total",
		Help: "Captures written to the archive sink.",
	})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "pico_capture_seconds",
		Help:    "End-to-end duration of composite block captures.",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 14),
	})

	reg.MustRegister(captures, samples, driverErrors, warnings, archived, duration)

	return &Obs{
		log: log,
		counters: map[string]prometheus.Counter{
			"pico_captures_total":          captures,
			"pico_samples_retrieved_total": samples,
			"pico_driver_errors_total":     driverErrors,
			"pico_status_warnings_total":   warnings,
			"pico_captures_archived_total": archived,
		},
		gauges: map[string]prometheus.Gauge{},
		histos: map[string]prometheus.Observer{
			"pico_capture_seconds": duration,
		},
	}
}

func (o *Obs) LogInfo(msg string, fields ...ports.Field) {
	o.emit(o.log.Info(), fields).Msg(msg)
}

func (o *Obs) LogWarn(msg string, fields ...ports.Field) {
	o.emit(o.log.Warn(), fields).Msg(msg)
}

func (o *Obs) LogError(msg string, err error, fields ...ports.Field) {
	o.emit(o.log.Error().Err(err), fields).Msg(msg)
}

func (o *Obs) emit(ev *zerolog.Event, fields []ports.Field) *zerolog.Event {
	for _, f := range fields {
		ev = ev.Interface(f.Key, f.Value)
	}
	return ev
}

func (o *Obs) IncCounter(name string, v float64) {
	if c, ok := o.counters[name]; ok {
		c.Add(v)
	}
}

func (o *Obs) ObserveLatency(name string, seconds float64) {
	if h, ok := o.histos[name]; ok {
		h.Observe(seconds)
	}
}

func (o *Obs) SetGauge(name string, v float64) {
	if g, ok := o.gauges[name]; ok {
		g.Set(v)
	}
}

var _ ports.Observability = (*Obs)(nil)
