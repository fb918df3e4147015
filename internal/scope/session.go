package scope

import (
	"time"

	"github.com/picoscope-go/picoscope/internal/domain"
	"github.com/picoscope-go/picoscope/internal/ports"
)

const defaultPollInterval = time.Millisecond

// Options tunes session behavior at open time.
type Options struct {
	// Serial selects a specific unit; empty opens the first available.
	Serial string
	// Resolution is fixed for the lifetime of the session.
	Resolution domain.Resolution
	// PollInterval paces the readiness poll. Zero means 1ms.
	PollInterval time.Duration
	// WaitTimeout bounds WaitReady. Zero means wait until the context
	// is cancelled.
	WaitTimeout time.Duration
}

// Session owns one device handle and all per-device state: the
// selected resolution, the discovered ADC code limits, and the range
// table for currently enabled channels. Exactly one capture may be in
// flight per session; callers must not invoke capture operations
// concurrently on the same session.
type Session struct {
	drv ports.Driver
	obs ports.Observability

	handle domain.Handle
	open   bool

	resolution domain.Resolution
	minADC     int32
	maxADC     int32

	ranges map[domain.Channel]domain.VoltageRange

	pollInterval time.Duration
	waitTimeout  time.Duration
}

// Open acquires a device handle through the driver and discovers the
// ADC code limits for the selected resolution. A nil obs disables
// logging and metrics.
func Open(drv ports.Driver, obs ports.Observability, opts Options) (*Session, error) {
	if obs == nil {
		obs = nopObs{}
	}
	s := &Session{
		drv:          drv,
		obs:          obs,
		resolution:   opts.Resolution,
		ranges:       make(map[domain.Channel]domain.VoltageRange),
		pollInterval: opts.PollInterval,
		waitTimeout:  opts.WaitTimeout,
	}
	if s.pollInterval <= 0 {
		s.pollInterval = defaultPollInterval
	}

	h, st := drv.OpenUnit(opts.Serial, opts.Resolution)
	if st == domain.StatusNotFound {
		return nil, ErrDeviceNotFound
	}
	s.handle = h
	s.open = true
	if err := s.check("open unit", st); err != nil {
		return nil, err
	}

	min, max, st := drv.ADCLimits(h, opts.Resolution)
	if err := s.check("adc limits", st); err != nil {
		return nil, err
	}
	s.minADC, s.maxADC = min, max

	s.obs.LogInfo("session opened",
		ports.Field{Key: "generation", Value: drv.Generation().String()},
		ports.Field{Key: "resolution", Value: int32(opts.Resolution)},
		ports.Field{Key: "min_adc", Value: min},
		ports.Field{Key: "max_adc", Value: max},
	)
	return s, nil
}

// Close releases the device handle. It is idempotent: closing an
// already-closed session is a no-op. The native close status is
// deliberately ignored so teardown paths can always run it.
func (s *Session) Close() {
	if !s.open {
		return
	}
	s.open = false
	s.drv.CloseUnit(s.handle)
	s.obs.LogInfo("session closed")
}

// IsOpen reports whether the handle is still valid.
func (s *Session) IsOpen() bool { return s.open }

// Generation reports the protocol generation behind this session.
func (s *Session) Generation() domain.Generation { return s.drv.Generation() }

// Resolution returns the resolution fixed at open time.
func (s *Session) Resolution() domain.Resolution { return s.resolution }

// ADCLimits returns the discovered ADC code bounds.
func (s *Session) ADCLimits() (min, max int32) { return s.minADC, s.maxADC }

// ChannelRange returns the recorded range of a channel, false if the
// channel is not currently enabled.
func (s *Session) ChannelRange(ch domain.Channel) (domain.VoltageRange, bool) {
	r, ok := s.ranges[ch]
	return r, ok
}

// EnabledChannels lists enabled channels in fixed A..H order.
func (s *Session) EnabledChannels() []domain.Channel {
	out := make([]domain.Channel, 0, len(s.ranges))
	for _, ch := range domain.AllChannels {
		if _, ok := s.ranges[ch]; ok {
			out = append(out, ch)
		}
	}
	return out
}

// UnitInfo returns a descriptive string for the given field. The native
// layer writes into a fixed 16-byte buffer; longer values arrive
// truncated.
func (s *Session) UnitInfo(info domain.UnitInfo) (string, error) {
	if !s.open {
		return "", ErrSessionClosed
	}
	v, st := s.drv.UnitInfo(s.handle, info)
	if err := s.check("get unit info", st); err != nil {
		return "", err
	}
	return v, nil
}

// UnitSerial returns the batch and serial string, e.g. "JR628/0017".
func (s *Session) UnitSerial() (string, error) {
	return s.UnitInfo(domain.InfoBatchAndSerial)
}

// ChangePowerSource switches the device between USB-only and DC power.
// Only some generations expose this entry point.
func (s *Session) ChangePowerSource(state domain.PowerSource) error {
	if !s.open {
		return ErrSessionClosed
	}
	psc, ok := s.drv.(ports.PowerSourceControl)
	if !ok {
		return ErrNotImplemented
	}
	return s.check("change power source", psc.ChangePowerSource(s.handle, state))
}

// check funnels every native status through the translator. Warnings
// are logged and execution continues; any other non-zero status
// force-closes the session so no half-configured hardware claim is
// left behind, and surfaces as a DriverError.
func (s *Session) check(op string, st domain.Status) error {
	switch st.Classify() {
	case domain.SeverityOK:
		return nil
	case domain.SeverityWarning:
		s.obs.LogWarn("driver warning",
			ports.Field{Key: "op", Value: op},
			ports.Field{Key: "status", Value: st.Message()},
		)
		s.obs.IncCounter("pico_status_warnings_total", 1)
		return nil
	default:
		err := &DriverError{Op: op, Status: st}
		s.obs.IncCounter("pico_driver_errors_total", 1)
		s.obs.LogError("driver call failed", err, ports.Field{Key: "op", Value: op})
		s.Close()
		return err
	}
}

type nopObs struct{}

func (nopObs) LogInfo(string, ...ports.Field)         {}
func (nopObs) LogWarn(string, ...ports.Field)         {}
func (nopObs) LogError(string, error, ...ports.Field) {}
func (nopObs) IncCounter(string, float64)             {}
func (nopObs) ObserveLatency(string, float64)         {}
func (nopObs) SetGauge(string, float64)               {}
