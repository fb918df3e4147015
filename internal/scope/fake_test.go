package scope

import (
	"github.com/picoscope-go/picoscope/internal/domain"
	"github.com/picoscope-go/picoscope/internal/ports"
)

// fakeDriver is a scriptable ports.Driver. Every method returns
// StatusOK unless a status is queued for its name, and records the
// call so tests can assert what reached the native boundary.
type fakeDriver struct {
	generation domain.Generation
	statuses   map[string]domain.Status
	calls      []string

	maxADC int32

	channels map[domain.Channel]ports.ChannelSettings
	trigger  ports.TriggerSettings
	buffers  map[domain.Channel]*domain.Buffer

	readyAfter int
	polls      int

	valuesOverflow domain.Overflow
	fillValue      int64
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		generation: domain.GenerationTyped,
		statuses:   map[string]domain.Status{},
		maxADC:     32512,
		channels:   map[domain.Channel]ports.ChannelSettings{},
		buffers:    map[domain.Channel]*domain.Buffer{},
	}
}

func (f *fakeDriver) status(op string) domain.Status {
	f.calls = append(f.calls, op)
	if st, ok := f.statuses[op]; ok {
		return st
	}
	return domain.StatusOK
}

func (f *fakeDriver) called(op string) int {
	n := 0
	for _, c := range f.calls {
		if c == op {
			n++
		}
	}
	return n
}

func (f *fakeDriver) Generation() domain.Generation { return f.generation }

func (f *fakeDriver) OpenUnit(string, domain.Resolution) (domain.Handle, domain.Status) {
	return 1, f.status("open")
}

func (f *fakeDriver) CloseUnit(domain.Handle) domain.Status {
	return f.status("close")
}

func (f *fakeDriver) ADCLimits(_ domain.Handle, _ domain.Resolution) (int32, int32, domain.Status) {
	return -f.maxADC, f.maxADC, f.status("limits")
}

func (f *fakeDriver) UnitInfo(_ domain.Handle, _ domain.UnitInfo) (string, domain.Status) {
	return "FAKE0/0001", f.status("info")
}

func (f *fakeDriver) SetChannel(_ domain.Handle, ch domain.Channel, cfg ports.ChannelSettings) domain.Status {
	st := f.status("set channel")
	if st == domain.StatusOK {
		f.channels[ch] = cfg
	}
	return st
}

func (f *fakeDriver) SetSimpleTrigger(_ domain.Handle, t ports.TriggerSettings) domain.Status {
	st := f.status("set trigger")
	if st == domain.StatusOK {
		f.trigger = t
	}
	return st
}

func (f *fakeDriver) Timebase(_ domain.Handle, timebase uint32, _ int, _ uint32) (ports.TimebaseInfo, domain.Status) {
	return ports.TimebaseInfo{IntervalNS: float64(timebase) * 8, MaxSamples: 1 << 20}, f.status("timebase")
}

func (f *fakeDriver) SetDataBuffer(_ domain.Handle, ch domain.Channel, buf *domain.Buffer, _ ports.BufferRequest) domain.Status {
	st := f.status("set buffer")
	if st == domain.StatusOK {
		f.buffers[ch] = buf
	}
	return st
}

func (f *fakeDriver) RunBlock(domain.Handle, int, int, uint32, uint32) (int32, domain.Status) {
	f.polls = 0
	return 5, f.status("run block")
}

func (f *fakeDriver) Ready(domain.Handle) (bool, domain.Status) {
	st := f.status("ready")
	f.polls++
	return f.polls > f.readyAfter, st
}

func (f *fakeDriver) GetValues(_ domain.Handle, req ports.ValuesRequest) (uint32, domain.Overflow, domain.Status) {
	st := f.status("get values")
	if st != domain.StatusOK {
		return 0, 0, st
	}
	for _, buf := range f.buffers {
		for i := 0; i < buf.Len(); i++ {
			buf.Set(i, f.fillValue)
		}
	}
	return req.Samples, f.valuesOverflow, st
}

var _ ports.Driver = (*fakeDriver)(nil)

// sigGenDriver extends the fake with the optional generator capability.
type sigGenDriver struct {
	*fakeDriver
	frequency float64
	waveform  domain.WaveformType
	applied   bool
}

func (s *sigGenDriver) SigGenApply(domain.Handle, ports.SigGenApplyRequest) (ports.SigGenResult, domain.Status) {
	s.applied = true
	return ports.SigGenResult{Frequency: s.frequency}, s.status("siggen apply")
}

func (s *sigGenDriver) SigGenFrequency(_ domain.Handle, hz float64) domain.Status {
	s.frequency = hz
	return s.status("siggen frequency")
}

func (s *sigGenDriver) SigGenRange(domain.Handle, float64, float64) domain.Status {
	return s.status("siggen range")
}

func (s *sigGenDriver) SigGenWaveform(_ domain.Handle, w domain.WaveformType) domain.Status {
	s.waveform = w
	return s.status("siggen waveform")
}

var _ ports.SignalGenerator = (*sigGenDriver)(nil)

// powerDriver extends the fake with power-source switching.
type powerDriver struct {
	*fakeDriver
	powerState domain.PowerSource
}

func (p *powerDriver) ChangePowerSource(_ domain.Handle, state domain.PowerSource) domain.Status {
	p.powerState = state
	return p.status("power source")
}

var _ ports.PowerSourceControl = (*powerDriver)(nil)

// recordingObs counts metric increments so tests can assert the
// warning and error funnels fired.
type recordingObs struct {
	counters map[string]float64
	warns    int
	errors   int
}

func newRecordingObs() *recordingObs {
	return &recordingObs{counters: map[string]float64{}}
}

func (r *recordingObs) LogInfo(string, ...ports.Field) {}

func (r *recordingObs) LogWarn(string, ...ports.Field) { r.warns++ }

func (r *recordingObs) LogError(string, error, ...ports.Field) { r.errors++ }

func (r *recordingObs) IncCounter(name string, v float64) { r.counters[name] += v }

func (r *recordingObs) ObserveLatency(string, float64) {}

func (r *recordingObs) SetGauge(string, float64) {}
