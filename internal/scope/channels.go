package scope

import (
	"math"

	"github.com/picoscope-go/picoscope/internal/domain"
	"github.com/picoscope-go/picoscope/internal/ports"
)

// TriggerConfig is a simple level/edge trigger in caller units. The
// threshold is converted to ADC codes against the source channel's
// current range immediately before submission, so it must be re-set if
// that range changes.
type TriggerConfig struct {
	Source        domain.Channel
	ThresholdMV   float64
	Direction     domain.TriggerDirection
	DelaySamples  uint64
	AutoTriggerMS int32
	Enabled       bool
}

// SetChannel submits a channel configuration and keeps the session's
// range table in sync with what was actually accepted. Disabling a
// channel removes it from the buffer-allocation set.
func (s *Session) SetChannel(ch domain.Channel, cfg ports.ChannelSettings) error {
	if !s.open {
		return ErrSessionClosed
	}
	if _, ok := cfg.Range.SpanMillivolts(); !ok {
		return configErrorf("voltage range %d outside the fixed range table", int32(cfg.Range))
	}
	if err := s.check("set channel", s.drv.SetChannel(s.handle, ch, cfg)); err != nil {
		return err
	}
	if cfg.Enabled {
		s.ranges[ch] = cfg.Range
	} else {
		delete(s.ranges, ch)
	}
	return nil
}

// EnableChannel enables a channel with DC coupling, zero offset and
// full bandwidth, the common bench setup.
func (s *Session) EnableChannel(ch domain.Channel, r domain.VoltageRange) error {
	return s.SetChannel(ch, ports.ChannelSettings{
		Enabled:  true,
		Range:    r,
		Coupling: domain.CouplingDC,
	})
}

// DisableChannel turns a channel off and forgets its range.
func (s *Session) DisableChannel(ch domain.Channel) error {
	return s.SetChannel(ch, ports.ChannelSettings{Enabled: false})
}

// SetSimpleTrigger arms a level/edge trigger on an enabled channel.
// The mV threshold is converted using the channel's current range; a
// trigger on a channel with no recorded range is rejected before any
// native call.
func (s *Session) SetSimpleTrigger(t TriggerConfig) error {
	if !s.open {
		return ErrSessionClosed
	}
	r, ok := s.ranges[t.Source]
	if !ok {
		return configErrorf("trigger source channel %s is not enabled", t.Source)
	}
	adc, err := s.MillivoltsToADC(t.ThresholdMV, r)
	if err != nil {
		return err
	}
	if adc > math.MaxInt16 || adc < math.MinInt16 {
		return configErrorf("trigger threshold %.1f mV maps to ADC code %d, outside the int16 trigger range", t.ThresholdMV, adc)
	}
	return s.check("set simple trigger", s.drv.SetSimpleTrigger(s.handle, ports.TriggerSettings{
		Enabled:       t.Enabled,
		Source:        t.Source,
		ThresholdADC:  int16(adc),
		Direction:     t.Direction,
		DelaySamples:  t.DelaySamples,
		AutoTriggerMS: t.AutoTriggerMS,
	}))
}
