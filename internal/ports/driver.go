package ports

import "github.com/picoscope-go/picoscope/internal/domain"

// ChannelSettings carries everything one channel submission needs. The
// two generations marshal it differently: legacy passes Enabled as a
// flag on a single call, typed issues explicit on/off calls and adds
// the bandwidth limit.
type ChannelSettings struct {
	Enabled     bool
	Range       domain.VoltageRange
	Coupling    domain.Coupling
	OffsetVolts float64
	Bandwidth   domain.Bandwidth
}

// TriggerSettings is a simple level/edge trigger, threshold already
// converted to ADC codes by the engine.
type TriggerSettings struct {
	Enabled       bool
	Source        domain.Channel
	ThresholdADC  int16
	Direction     domain.TriggerDirection
	DelaySamples  uint64
	AutoTriggerMS int32
}

// TimebaseInfo is the resolved sampling description for a timebase
// index. The legacy generation reports a narrower native pair; its
// adapter widens into this shape.
type TimebaseInfo struct {
	IntervalNS float64
	MaxSamples uint64
}

// BufferRequest describes a buffer registration. DataType and Action
// only exist on the typed generation; the engine rejects non-int16
// requests for legacy devices before they reach the adapter.
type BufferRequest struct {
	Samples   int
	Segment   uint32
	DataType  domain.DataType
	RatioMode domain.RatioMode
	Action    domain.Action
}

// ValuesRequest describes one retrieval of captured samples into the
// previously registered buffers.
type ValuesRequest struct {
	StartIndex uint32
	Samples    uint32
	Ratio      uint32
	RatioMode  domain.RatioMode
	Segment    uint32
}

// SigGenResult reports the values the signal generator actually
// achieved, which may differ from what was requested.
type SigGenResult struct {
	Frequency     float64
	StopFrequency float64
	FrequencyIncr float64
	DwellTime     float64
}

// SigGenApplyRequest commits previously-set generator parameters.
type SigGenApplyRequest struct {
	Enabled           bool
	SweepEnabled      bool
	TriggerEnabled    bool
	AutoClockOptimise bool
	OverridePrescale  bool
}

// Driver is the generation-abstracted capability set over the native
// library. Each method marshals one entry point and returns its raw
// status; translation into the error taxonomy happens in the session,
// never here. Implementations hold no state beyond their symbol table,
// so a session can be tested against a fake.
type Driver interface {
	Generation() domain.Generation

	// OpenUnit acquires a handle. An empty serial selects the first
	// available unit.
	OpenUnit(serial string, resolution domain.Resolution) (domain.Handle, domain.Status)
	CloseUnit(h domain.Handle) domain.Status

	// ADCLimits reports the device's ADC code bounds for the given
	// resolution, using whichever query shape the generation exposes.
	ADCLimits(h domain.Handle, resolution domain.Resolution) (min, max int32, st domain.Status)

	UnitInfo(h domain.Handle, info domain.UnitInfo) (string, domain.Status)

	SetChannel(h domain.Handle, ch domain.Channel, cfg ChannelSettings) domain.Status
	SetSimpleTrigger(h domain.Handle, t TriggerSettings) domain.Status

	Timebase(h domain.Handle, timebase uint32, samples int, segment uint32) (TimebaseInfo, domain.Status)

	// SetDataBuffer registers buf's backing memory for the channel.
	// The region must stay live and unmoved until values have been
	// retrieved.
	SetDataBuffer(h domain.Handle, ch domain.Channel, buf *domain.Buffer, req BufferRequest) domain.Status

	RunBlock(h domain.Handle, preSamples, postSamples int, timebase uint32, segment uint32) (busyMS int32, st domain.Status)
	Ready(h domain.Handle) (bool, domain.Status)
	GetValues(h domain.Handle, req ValuesRequest) (samples uint32, overflow domain.Overflow, st domain.Status)
}

// SignalGenerator is the optional capability exposed by generations
// with an auxiliary output. The engine type-asserts for it and returns
// ErrNotImplemented when absent.
type SignalGenerator interface {
	SigGenApply(h domain.Handle, req SigGenApplyRequest) (SigGenResult, domain.Status)
	SigGenFrequency(h domain.Handle, hz float64) domain.Status
	SigGenRange(h domain.Handle, pk2pkMV, offsetMV float64) domain.Status
	SigGenWaveform(h domain.Handle, w domain.WaveformType) domain.Status
}

// PowerSourceControl is the optional capability for switching between
// USB-only and DC power, present on the legacy generation.
type PowerSourceControl interface {
	ChangePowerSource(h domain.Handle, state domain.PowerSource) domain.Status
}
