// Package legacy marshals the generation-abstracted capability set
// onto the fixed-layout native calling convention of older devices.
package legacy

import (
	"bytes"

	"github.com/picoscope-go/picoscope/internal/domain"
	"github.com/picoscope-go/picoscope/internal/ports"
)

const infoBufferLen = 16

type Driver struct {
	fn Functions
}

func New(fn Functions) *Driver {
	return &Driver{fn: fn}
}

func (d *Driver) Generation() domain.Generation { return domain.GenerationLegacy }

func (d *Driver) OpenUnit(serial string, resolution domain.Resolution) (domain.Handle, domain.Status) {
	var handle int16
	st := d.fn.OpenUnit(&handle, serialArg(serial), int32(resolution))
	return domain.Handle(handle), domain.Status(st)
}

func (d *Driver) CloseUnit(h domain.Handle) domain.Status {
	return domain.Status(d.fn.CloseUnit(int16(h)))
}

// ADCLimits widens the generation's single maximum-value query. The
// ADC is symmetric, so the implied minimum is -max; the resolution
// argument is unused because the query is not parameterized here.
func (d *Driver) ADCLimits(h domain.Handle, _ domain.Resolution) (int32, int32, domain.Status) {
	var max int16
	st := d.fn.MaximumValue(int16(h), &max)
	return -int32(max), int32(max), domain.Status(st)
}

func (d *Driver) UnitInfo(h domain.Handle, info domain.UnitInfo) (string, domain.Status) {
	var buf [infoBufferLen]byte
	var required int16
	st := d.fn.GetUnitInfo(int16(h), &buf[0], infoBufferLen, &required, uint32(info))
	return infoString(buf[:]), domain.Status(st)
}

// SetChannel always goes through the single enable-flag entry point;
// this generation has no bandwidth argument, so the setting is
// dropped at this boundary.
func (d *Driver) SetChannel(h domain.Handle, ch domain.Channel, cfg ports.ChannelSettings) domain.Status {
	var enabled int16
	if cfg.Enabled {
		enabled = 1
	}
	return domain.Status(d.fn.SetChannel(
		int16(h),
		int32(ch),
		enabled,
		int32(cfg.Coupling),
		int32(cfg.Range),
		float32(cfg.OffsetVolts),
	))
}

func (d *Driver) SetSimpleTrigger(h domain.Handle, t ports.TriggerSettings) domain.Status {
	var enable int16
	if t.Enabled {
		enable = 1
	}
	return domain.Status(d.fn.SetSimpleTrigger(
		int16(h),
		enable,
		int32(t.Source),
		t.ThresholdADC,
		int32(t.Direction),
		t.DelaySamples,
		int16(t.AutoTriggerMS),
	))
}

// Timebase widens the generation's narrow float32/int32 pair into the
// common shape.
func (d *Driver) Timebase(h domain.Handle, timebase uint32, samples int, segment uint32) (ports.TimebaseInfo, domain.Status) {
	var (
		intervalNS float32
		maxSamples int32
	)
	st := d.fn.GetTimebase2(int16(h), timebase, int32(samples), &intervalNS, &maxSamples, segment)
	return ports.TimebaseInfo{
		IntervalNS: float64(intervalNS),
		MaxSamples: uint64(maxSamples),
	}, domain.Status(st)
}

// SetDataBuffer registers the int16 backing slice. The engine has
// already rejected any other width for this generation, so a non-int16
// buffer here is a programming error and reports as a null parameter.
func (d *Driver) SetDataBuffer(h domain.Handle, ch domain.Channel, buf *domain.Buffer, req ports.BufferRequest) domain.Status {
	samples := buf.Int16s()
	if samples == nil {
		return domain.StatusNullParameter
	}
	return domain.Status(d.fn.SetDataBuffer(
		int16(h),
		int32(ch),
		samples,
		int32(req.Samples),
		req.Segment,
		legacyRatioMode(req.RatioMode),
	))
}

func (d *Driver) RunBlock(h domain.Handle, preSamples, postSamples int, timebase uint32, segment uint32) (int32, domain.Status) {
	var busyMS int32
	st := d.fn.RunBlock(int16(h), int32(preSamples), int32(postSamples), timebase, &busyMS, segment, 0, 0)
	return busyMS, domain.Status(st)
}

func (d *Driver) Ready(h domain.Handle) (bool, domain.Status) {
	var ready int16
	st := d.fn.IsReady(int16(h), &ready)
	return ready != 0, domain.Status(st)
}

func (d *Driver) GetValues(h domain.Handle, req ports.ValuesRequest) (uint32, domain.Overflow, domain.Status) {
	samples := req.Samples
	var overflow int16
	st := d.fn.GetValues(
		int16(h),
		req.StartIndex,
		&samples,
		req.Ratio,
		legacyRatioMode(req.RatioMode),
		req.Segment,
		&overflow,
	)
	return samples, domain.Overflow(uint16(overflow)), domain.Status(st)
}

func (d *Driver) ChangePowerSource(h domain.Handle, state domain.PowerSource) domain.Status {
	return domain.Status(d.fn.ChangePowerSource(int16(h), uint32(state)))
}

// legacyRatioMode maps the shared ratio-mode space onto this
// generation's encoding, where raw retrieval is zero rather than a
// high bit.
func legacyRatioMode(m domain.RatioMode) int32 {
	if m == domain.RatioRaw {
		return 0
	}
	return int32(m)
}

func serialArg(serial string) *byte {
	if serial == "" {
		return nil
	}
	b := append([]byte(serial), 0)
	return &b[0]
}

func infoString(buf []byte) string {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return string(buf)
}

var (
	_ ports.Driver             = (*Driver)(nil)
	_ ports.PowerSourceControl = (*Driver)(nil)
)
