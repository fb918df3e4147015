package legacy

import (
	"testing"

	"github.com/picoscope-go/picoscope/internal/domain"
	"github.com/picoscope-go/picoscope/internal/ports"
)

func TestADCLimitsSymmetric(t *testing.T) {
	d := New(Functions{
		MaximumValue: func(_ int16, value *int16) uint32 {
			*value = 32767
			return 0
		},
	})

	min, max, st := d.ADCLimits(1, domain.Resolution12Bit)
	if st != domain.StatusOK {
		t.Fatalf("expected OK, got %v", st)
	}
	if min != -32767 || max != 32767 {
		t.Fatalf("expected [-32767, 32767], got [%d, %d]", min, max)
	}
}

func TestSetChannelUsesEnableFlag(t *testing.T) {
	var gotEnabled int16
	var gotOffset float32
	var calls int
	d := New(Functions{
		SetChannel: func(_ int16, _ int32, enabled int16, _, _ int32, offsetVolts float32) uint32 {
			calls++
			gotEnabled = enabled
			gotOffset = offsetVolts
			return 0
		},
	})

	d.SetChannel(1, domain.ChannelA, ports.ChannelSettings{
		Enabled:     true,
		Range:       domain.Range1V,
		Coupling:    domain.CouplingDC,
		OffsetVolts: 0.25,
	})
	if gotEnabled != 1 {
		t.Fatalf("expected enabled flag 1, got %d", gotEnabled)
	}
	if gotOffset != 0.25 {
		t.Fatalf("expected offset narrowed to float32 0.25, got %v", gotOffset)
	}

	d.SetChannel(1, domain.ChannelA, ports.ChannelSettings{Enabled: false})
	if gotEnabled != 0 {
		t.Fatalf("expected enabled flag 0, got %d", gotEnabled)
	}
	if calls != 2 {
		t.Fatalf("expected both submissions through the single entry point, got %d", calls)
	}
}

func TestTimebaseWidensNarrowPair(t *testing.T) {
	d := New(Functions{
		GetTimebase2: func(_ int16, timebase uint32, samples int32, intervalNS *float32, maxSamples *int32, _ uint32) uint32 {
			if timebase != 8 || samples != 500 {
				t.Fatalf("unexpected arguments %d/%d", timebase, samples)
			}
			*intervalNS = 16
			*maxSamples = 1 << 20
			return 0
		},
	})

	info, st := d.Timebase(1, 8, 500, 0)
	if st != domain.StatusOK {
		t.Fatalf("expected OK, got %v", st)
	}
	if info.IntervalNS != 16 || info.MaxSamples != 1<<20 {
		t.Fatalf("unexpected timebase info %+v", info)
	}
}

func TestSetDataBufferInt16Only(t *testing.T) {
	var gotLen int
	d := New(Functions{
		SetDataBuffer: func(_ int16, _ int32, buffer []int16, samples int32, _ uint32, _ int32) uint32 {
			gotLen = len(buffer)
			if samples != int32(len(buffer)) {
				t.Fatalf("samples %d does not match buffer length %d", samples, len(buffer))
			}
			return 0
		},
	})

	buf, _ := domain.NewBuffer(domain.Int16, 200)
	if st := d.SetDataBuffer(1, domain.ChannelA, buf, ports.BufferRequest{Samples: 200}); st != domain.StatusOK {
		t.Fatalf("expected OK, got %v", st)
	}
	if gotLen != 200 {
		t.Fatalf("expected 200-element slice registered, got %d", gotLen)
	}

	wide, _ := domain.NewBuffer(domain.Int32, 200)
	if st := d.SetDataBuffer(1, domain.ChannelA, wide, ports.BufferRequest{Samples: 200}); st != domain.StatusNullParameter {
		t.Fatalf("expected null parameter for non-int16 buffer, got %v", st)
	}
}

func TestRatioModeMapping(t *testing.T) {
	if got := legacyRatioMode(domain.RatioRaw); got != 0 {
		t.Fatalf("expected raw to map to 0, got %d", got)
	}
	if got := legacyRatioMode(domain.RatioAverage); got != int32(domain.RatioAverage) {
		t.Fatalf("expected average to pass through, got %d", got)
	}
}

func TestGetValuesPassesRatioMode(t *testing.T) {
	var gotRatioMode int32
	d := New(Functions{
		GetValues: func(_ int16, _ uint32, samples *uint32, _ uint32, ratioMode int32, _ uint32, overflow *int16) uint32 {
			gotRatioMode = ratioMode
			*samples = 100
			*overflow = 0b0001
			return 0
		},
	})

	got, overflow, st := d.GetValues(1, ports.ValuesRequest{
		Samples:   100,
		RatioMode: domain.RatioRaw,
	})
	if st != domain.StatusOK {
		t.Fatalf("expected OK, got %v", st)
	}
	if gotRatioMode != 0 {
		t.Fatalf("expected raw mode encoded as 0, got %d", gotRatioMode)
	}
	if got != 100 || !overflow.Channel(domain.ChannelA) {
		t.Fatalf("unexpected result %d/%#x", got, uint16(overflow))
	}
}

func TestChangePowerSource(t *testing.T) {
	var gotState uint32
	d := New(Functions{
		ChangePowerSource: func(_ int16, state uint32) uint32 {
			gotState = state
			return 0
		},
	})

	if st := d.ChangePowerSource(1, domain.PowerSupplyNotConnected); st != domain.StatusOK {
		t.Fatalf("expected OK, got %v", st)
	}
	if gotState != uint32(domain.PowerSupplyNotConnected) {
		t.Fatalf("expected state %#x, got %#x", uint32(domain.PowerSupplyNotConnected), gotState)
	}
}

func TestSetSimpleTriggerNarrowsAutoTrigger(t *testing.T) {
	var gotAuto int16
	d := New(Functions{
		SetSimpleTrigger: func(_ int16, _ int16, _ int32, _ int16, _ int32, _ uint64, autoTriggerMS int16) uint32 {
			gotAuto = autoTriggerMS
			return 0
		},
	})

	d.SetSimpleTrigger(1, ports.TriggerSettings{
		Enabled:       true,
		Source:        domain.ChannelA,
		ThresholdADC:  1000,
		AutoTriggerMS: 3000,
	})
	if gotAuto != 3000 {
		t.Fatalf("expected auto-trigger 3000ms, got %d", gotAuto)
	}
}
