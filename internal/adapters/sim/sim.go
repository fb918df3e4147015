// Package sim is an in-process stand-in for the native driver. It
// speaks the same capability set as the real generations and fills
// registered buffers with a deterministic sine, so the CLI, the
// examples, and integration-style tests can run the full block-capture
// lifecycle without hardware.
package sim

import (
	"math"

	"github.com/picoscope-go/picoscope/internal/domain"
	"github.com/picoscope-go/picoscope/internal/ports"
)

const simSerial = "SIM000/0001"

// Driver simulates one typed-generation unit.
type Driver struct {
	// CyclesPerCapture is how many full sine periods fit in one
	// capture buffer. Zero means 4.
	CyclesPerCapture float64
	// Amplitude scales the sine against the ADC ceiling, in (0,1].
	// Zero means 0.8.
	Amplitude float64

	open       bool
	resolution domain.Resolution
	serial     string

	enabled  map[domain.Channel]bool
	buffers  map[domain.Channel]*domain.Buffer
	armed    bool
	armPolls int

	siggenHz float64
}

func New() *Driver {
	return &Driver{
		enabled: make(map[domain.Channel]bool),
		buffers: make(map[domain.Channel]*domain.Buffer),
	}
}

func (d *Driver) Generation() domain.Generation { return domain.GenerationTyped }

func (d *Driver) OpenUnit(serial string, resolution domain.Resolution) (domain.Handle, domain.Status) {
	if serial != "" && serial != simSerial {
		return 0, domain.StatusNotFound
	}
	d.open = true
	d.resolution = resolution
	d.serial = simSerial
	return 1, domain.StatusOK
}

func (d *Driver) CloseUnit(domain.Handle) domain.Status {
	d.open = false
	return domain.StatusOK
}

func (d *Driver) ADCLimits(_ domain.Handle, resolution domain.Resolution) (int32, int32, domain.Status) {
	max := maxCode(resolution)
	return -max, max, domain.StatusOK
}

func (d *Driver) UnitInfo(_ domain.Handle, info domain.UnitInfo) (string, domain.Status) {
	switch info {
	case domain.InfoBatchAndSerial:
		return d.serial, domain.StatusOK
	case domain.InfoVariant:
		return "SIM6000A", domain.StatusOK
	case domain.InfoDriverVersion:
		return "1.0.0.0", domain.StatusOK
	default:
		return "n/a", domain.StatusOK
	}
}

func (d *Driver) SetChannel(_ domain.Handle, ch domain.Channel, cfg ports.ChannelSettings) domain.Status {
	if cfg.Enabled {
		d.enabled[ch] = true
	} else {
		delete(d.enabled, ch)
		delete(d.buffers, ch)
	}
	return domain.StatusOK
}

func (d *Driver) SetSimpleTrigger(domain.Handle, ports.TriggerSettings) domain.Status {
	return domain.StatusOK
}

// Timebase mimics the typed-generation formula: 2^n / 5 GHz for the
// first five indices, then (n-4) / 156.25 MHz.
func (d *Driver) Timebase(_ domain.Handle, timebase uint32, samples int, _ uint32) (ports.TimebaseInfo, domain.Status) {
	var intervalNS float64
	if timebase <= 4 {
		intervalNS = math.Pow(2, float64(timebase)) / 5e9 * 1e9
	} else {
		intervalNS = float64(timebase-4) / 156_250_000 * 1e9
	}
	return ports.TimebaseInfo{IntervalNS: intervalNS, MaxSamples: 1 << 28}, domain.StatusOK
}

func (d *Driver) SetDataBuffer(_ domain.Handle, ch domain.Channel, buf *domain.Buffer, req ports.BufferRequest) domain.Status {
	if req.Action&domain.ActionClearAll != 0 {
		d.buffers = make(map[domain.Channel]*domain.Buffer)
	}
	d.buffers[ch] = buf
	return domain.StatusOK
}

func (d *Driver) RunBlock(_ domain.Handle, _, _ int, _ uint32, _ uint32) (int32, domain.Status) {
	d.armed = true
	d.armPolls = 0
	return 1, domain.StatusOK
}

// Ready signals ready on the second poll so WaitReady loops at least
// once, like real hardware does.
func (d *Driver) Ready(domain.Handle) (bool, domain.Status) {
	if !d.armed {
		return false, domain.StatusOK
	}
	d.armPolls++
	return d.armPolls > 1, domain.StatusOK
}

func (d *Driver) GetValues(_ domain.Handle, req ports.ValuesRequest) (uint32, domain.Overflow, domain.Status) {
	if !d.armed {
		return 0, 0, domain.StatusDataNotAvailable
	}
	d.armed = false

	cycles := d.CyclesPerCapture
	if cycles <= 0 {
		cycles = 4
	}
	amp := d.Amplitude
	if amp <= 0 || amp > 1 {
		amp = 0.8
	}
	peak := amp * float64(maxCode(d.resolution))

	got := req.Samples
	for ch, buf := range d.buffers {
		n := buf.Len()
		if uint32(n) < got {
			got = uint32(n)
		}
		// Phase-shift channels so multi-channel captures are
		// distinguishable.
		phase := float64(ch) * math.Pi / 8
		for i := 0; i < n; i++ {
			theta := 2*math.Pi*cycles*float64(i)/float64(n) + phase
			buf.Set(i, int64(peak*math.Sin(theta)))
		}
	}
	return got, 0, domain.StatusOK
}

func (d *Driver) SigGenApply(_ domain.Handle, _ ports.SigGenApplyRequest) (ports.SigGenResult, domain.Status) {
	return ports.SigGenResult{Frequency: d.siggenHz, StopFrequency: d.siggenHz}, domain.StatusOK
}

func (d *Driver) SigGenFrequency(_ domain.Handle, hz float64) domain.Status {
	d.siggenHz = hz
	return domain.StatusOK
}

func (d *Driver) SigGenRange(domain.Handle, float64, float64) domain.Status {
	return domain.StatusOK
}

func (d *Driver) SigGenWaveform(domain.Handle, domain.WaveformType) domain.Status {
	return domain.StatusOK
}

func maxCode(res domain.Resolution) int32 {
	switch res {
	case domain.Resolution8Bit:
		return 32512
	case domain.Resolution10Bit, domain.Resolution12Bit:
		return 32767
	default:
		return 32767
	}
}

var (
	_ ports.Driver          = (*Driver)(nil)
	_ ports.SignalGenerator = (*Driver)(nil)
)
