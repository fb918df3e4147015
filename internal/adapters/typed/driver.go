// Package typed marshals the generation-abstracted capability set onto
// the newer native calling convention: wide timebase pair, explicit
// channel on/off entry points, typed segmented buffers, and a
// resolution-parameterized ADC limit query.
package typed

import (
	"bytes"
	"unsafe"

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

func (d *Driver) Generation() domain.Generation { return domain.GenerationTyped }

func (d *Driver) OpenUnit(serial string, resolution domain.Resolution) (domain.Handle, domain.Status) {
	var handle int16
	st := d.fn.OpenUnit(&handle, serialArg(serial), int32(resolution))
	return domain.Handle(handle), domain.Status(st)
}

func (d *Driver) CloseUnit(h domain.Handle) domain.Status {
	return domain.Status(d.fn.CloseUnit(int16(h)))
}

func (d *Driver) ADCLimits(h domain.Handle, resolution domain.Resolution) (int32, int32, domain.Status) {
	var min, max int32
	st := d.fn.GetAdcLimits(int16(h), int32(resolution), &min, &max)
	return min, max, domain.Status(st)
}

func (d *Driver) UnitInfo(h domain.Handle, info domain.UnitInfo) (string, domain.Status) {
	var buf [infoBufferLen]byte
	var required int16
	st := d.fn.GetUnitInfo(int16(h), &buf[0], infoBufferLen, &required, uint32(info))
	return infoString(buf[:]), domain.Status(st)
}

func (d *Driver) SetChannel(h domain.Handle, ch domain.Channel, cfg ports.ChannelSettings) domain.Status {
	if !cfg.Enabled {
		return domain.Status(d.fn.SetChannelOff(int16(h), int32(ch)))
	}
	return domain.Status(d.fn.SetChannelOn(
		int16(h),
		int32(ch),
		int32(cfg.Coupling),
		int32(cfg.Range),
		cfg.OffsetVolts,
		int32(cfg.Bandwidth),
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
		uint32(t.AutoTriggerMS),
	))
}

func (d *Driver) Timebase(h domain.Handle, timebase uint32, samples int, segment uint32) (ports.TimebaseInfo, domain.Status) {
	var (
		intervalNS float64
		maxSamples uint64
	)
	st := d.fn.GetTimebase(int16(h), timebase, uint64(samples), &intervalNS, &maxSamples, uint64(segment))
	return ports.TimebaseInfo{IntervalNS: intervalNS, MaxSamples: maxSamples}, domain.Status(st)
}

func (d *Driver) SetDataBuffer(h domain.Handle, ch domain.Channel, buf *domain.Buffer, req ports.BufferRequest) domain.Status {
	return domain.Status(d.fn.SetDataBuffer(
		int16(h),
		int32(ch),
		bufferPointer(buf),
		int32(req.Samples),
		int32(req.DataType),
		uint64(req.Segment),
		uint32(req.RatioMode),
		uint32(req.Action),
	))
}

func (d *Driver) RunBlock(h domain.Handle, preSamples, postSamples int, timebase uint32, segment uint32) (int32, domain.Status) {
	var busyMS int32
	st := d.fn.RunBlock(int16(h), uint64(preSamples), uint64(postSamples), timebase, &busyMS, uint64(segment), 0, 0)
	return busyMS, domain.Status(st)
}

func (d *Driver) Ready(h domain.Handle) (bool, domain.Status) {
	var ready int16
	st := d.fn.IsReady(int16(h), &ready)
	return ready != 0, domain.Status(st)
}

func (d *Driver) GetValues(h domain.Handle, req ports.ValuesRequest) (uint32, domain.Overflow, domain.Status) {
	samples := uint64(req.Samples)
	var overflow int16
	st := d.fn.GetValues(
		int16(h),
		uint64(req.StartIndex),
		&samples,
		uint64(req.Ratio),
		uint32(req.RatioMode),
		uint64(req.Segment),
		&overflow,
	)
	return uint32(samples), domain.Overflow(uint16(overflow)), domain.Status(st)
}

func (d *Driver) SigGenApply(h domain.Handle, req ports.SigGenApplyRequest) (ports.SigGenResult, domain.Status) {
	var freq, stopFreq, freqIncr, dwell float64
	st := d.fn.SigGenApply(
		int16(h),
		boolArg(req.Enabled),
		boolArg(req.SweepEnabled),
		boolArg(req.TriggerEnabled),
		boolArg(req.AutoClockOptimise),
		boolArg(req.OverridePrescale),
		&freq, &stopFreq, &freqIncr, &dwell,
	)
	return ports.SigGenResult{
		Frequency:     freq,
		StopFrequency: stopFreq,
		FrequencyIncr: freqIncr,
		DwellTime:     dwell,
	}, domain.Status(st)
}

func (d *Driver) SigGenFrequency(h domain.Handle, hz float64) domain.Status {
	return domain.Status(d.fn.SigGenFrequency(int16(h), hz))
}

// SigGenRange takes mV at the port boundary; the native entry point
// wants volts.
func (d *Driver) SigGenRange(h domain.Handle, pk2pkMV, offsetMV float64) domain.Status {
	return domain.Status(d.fn.SigGenRange(int16(h), pk2pkMV/1000, offsetMV/1000))
}

func (d *Driver) SigGenWaveform(h domain.Handle, w domain.WaveformType) domain.Status {
	// No arbitrary-waveform table upload; the buffer is nil.
	return domain.Status(d.fn.SigGenWaveform(int16(h), int32(w), nil, 0))
}

// bufferPointer returns the base address of the buffer's backing
// slice. The engine keeps the buffer alive from registration through
// retrieval, so the address stays valid for the native layer.
func bufferPointer(buf *domain.Buffer) unsafe.Pointer {
	switch buf.DataType() {
	case domain.Int8:
		if s := buf.Int8s(); len(s) > 0 {
			return unsafe.Pointer(&s[0])
		}
	case domain.Int16:
		if s := buf.Int16s(); len(s) > 0 {
			return unsafe.Pointer(&s[0])
		}
	case domain.Int32:
		if s := buf.Int32s(); len(s) > 0 {
			return unsafe.Pointer(&s[0])
		}
	case domain.UInt32:
		if s := buf.UInt32s(); len(s) > 0 {
			return unsafe.Pointer(&s[0])
		}
	case domain.Int64:
		if s := buf.Int64s(); len(s) > 0 {
			return unsafe.Pointer(&s[0])
		}
	}
	return nil
}

func serialArg(serial string) *byte {
	if serial == "" {
		return nil
	}
	b := append([]byte(serial), 0)
	return &b[0]
}

func boolArg(v bool) int16 {
	if v {
		return 1
	}
	return 0
}

func infoString(buf []byte) string {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return string(buf)
}

var (
	_ ports.Driver          = (*Driver)(nil)
	_ ports.SignalGenerator = (*Driver)(nil)
)
