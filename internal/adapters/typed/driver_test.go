package typed

import (
	"testing"
	"unsafe"

	"github.com/picoscope-go/picoscope/internal/domain"
	"github.com/picoscope-go/picoscope/internal/ports"
)

func TestOpenUnitMarshalsSerial(t *testing.T) {
	var gotSerial string
	var gotResolution int32
	d := New(Functions{
		OpenUnit: func(handle *int16, serial *byte, resolution int32) uint32 {
			*handle = 7
			gotResolution = resolution
			if serial != nil {
				// Walk to the NUL terminator.
				p := unsafe.Pointer(serial)
				var out []byte
				for i := 0; ; i++ {
					c := *(*byte)(unsafe.Add(p, i))
					if c == 0 {
						break
					}
					out = append(out, c)
				}
				gotSerial = string(out)
			}
			return 0
		},
	})

	h, st := d.OpenUnit("JR628/0017", domain.Resolution12Bit)
	if st != domain.StatusOK {
		t.Fatalf("expected OK, got %v", st)
	}
	if h != 7 {
		t.Fatalf("expected handle 7, got %d", h)
	}
	if gotSerial != "JR628/0017" {
		t.Fatalf("expected serial JR628/0017, got %q", gotSerial)
	}
	if gotResolution != int32(domain.Resolution12Bit) {
		t.Fatalf("expected resolution %d, got %d", domain.Resolution12Bit, gotResolution)
	}
}

func TestOpenUnitEmptySerialPassesNil(t *testing.T) {
	var gotNil bool
	d := New(Functions{
		OpenUnit: func(handle *int16, serial *byte, _ int32) uint32 {
			*handle = 1
			gotNil = serial == nil
			return 0
		},
	})
	if _, st := d.OpenUnit("", 0); st != domain.StatusOK {
		t.Fatalf("expected OK, got %v", st)
	}
	if !gotNil {
		t.Fatal("expected nil serial pointer for first-available open")
	}
}

func TestSetChannelSplitsOnOff(t *testing.T) {
	var onCalls, offCalls int
	var gotRange, gotCoupling, gotBandwidth int32
	var gotOffset float64
	d := New(Functions{
		SetChannelOn: func(_ int16, _ int32, coupling, voltageRange int32, offsetVolts float64, bandwidth int32) uint32 {
			onCalls++
			gotCoupling, gotRange = coupling, voltageRange
			gotOffset = offsetVolts
			gotBandwidth = bandwidth
			return 0
		},
		SetChannelOff: func(int16, int32) uint32 {
			offCalls++
			return 0
		},
	})

	d.SetChannel(1, domain.ChannelA, ports.ChannelSettings{
		Enabled:     true,
		Range:       domain.Range5V,
		Coupling:    domain.CouplingAC,
		OffsetVolts: 0.5,
		Bandwidth:   domain.Bandwidth20MHz,
	})
	d.SetChannel(1, domain.ChannelA, ports.ChannelSettings{Enabled: false})

	if onCalls != 1 || offCalls != 1 {
		t.Fatalf("expected one on and one off call, got %d/%d", onCalls, offCalls)
	}
	if gotRange != int32(domain.Range5V) || gotCoupling != int32(domain.CouplingAC) {
		t.Fatalf("unexpected range/coupling %d/%d", gotRange, gotCoupling)
	}
	if gotOffset != 0.5 || gotBandwidth != int32(domain.Bandwidth20MHz) {
		t.Fatalf("unexpected offset/bandwidth %v/%d", gotOffset, gotBandwidth)
	}
}

func TestTimebaseWidePair(t *testing.T) {
	d := New(Functions{
		GetTimebase: func(_ int16, timebase uint32, samples uint64, intervalNS *float64, maxSamples *uint64, segment uint64) uint32 {
			if timebase != 3 || samples != 1000 || segment != 2 {
				t.Fatalf("unexpected arguments %d/%d/%d", timebase, samples, segment)
			}
			*intervalNS = 1.6
			*maxSamples = 1 << 30
			return 0
		},
	})

	info, st := d.Timebase(1, 3, 1000, 2)
	if st != domain.StatusOK {
		t.Fatalf("expected OK, got %v", st)
	}
	if info.IntervalNS != 1.6 || info.MaxSamples != 1<<30 {
		t.Fatalf("unexpected timebase info %+v", info)
	}
}

func TestSetDataBufferPassesTypedArguments(t *testing.T) {
	buf, err := domain.NewBuffer(domain.Int32, 100)
	if err != nil {
		t.Fatalf("new buffer: %v", err)
	}

	var gotPtr unsafe.Pointer
	var gotDataType, gotSamples int32
	var gotAction uint32
	d := New(Functions{
		SetDataBuffer: func(_ int16, _ int32, buffer unsafe.Pointer, samples int32, dataType int32, _ uint64, _ uint32, action uint32) uint32 {
			gotPtr = buffer
			gotSamples = samples
			gotDataType = dataType
			gotAction = action
			return 0
		},
	})

	st := d.SetDataBuffer(1, domain.ChannelB, buf, ports.BufferRequest{
		Samples:  100,
		DataType: domain.Int32,
		Action:   domain.ActionClearAll | domain.ActionAdd,
	})
	if st != domain.StatusOK {
		t.Fatalf("expected OK, got %v", st)
	}
	if gotPtr != unsafe.Pointer(&buf.Int32s()[0]) {
		t.Fatal("expected the buffer's backing address registered")
	}
	if gotDataType != int32(domain.Int32) || gotSamples != 100 {
		t.Fatalf("unexpected datatype/samples %d/%d", gotDataType, gotSamples)
	}
	if gotAction != uint32(domain.ActionClearAll|domain.ActionAdd) {
		t.Fatalf("unexpected action %d", gotAction)
	}
}

func TestGetValuesWidensOverflow(t *testing.T) {
	d := New(Functions{
		GetValues: func(_ int16, _ uint64, samples *uint64, _ uint64, _ uint32, _ uint64, overflow *int16) uint32 {
			*samples = 400
			*overflow = 0b0101
			return 0
		},
	})

	got, overflow, st := d.GetValues(1, ports.ValuesRequest{Samples: 500})
	if st != domain.StatusOK {
		t.Fatalf("expected OK, got %v", st)
	}
	if got != 400 {
		t.Fatalf("expected 400 samples, got %d", got)
	}
	if !overflow.Channel(domain.ChannelA) || !overflow.Channel(domain.ChannelC) {
		t.Fatalf("unexpected overflow mask %#x", uint16(overflow))
	}
}

func TestUnitInfoTrimsAtNUL(t *testing.T) {
	d := New(Functions{
		GetUnitInfo: func(_ int16, str *byte, strLen int16, required *int16, _ uint32) uint32 {
			payload := []byte("JR628/0017")
			p := unsafe.Pointer(str)
			for i, c := range payload {
				*(*byte)(unsafe.Add(p, i)) = c
			}
			*(*byte)(unsafe.Add(p, len(payload))) = 0
			*required = int16(len(payload))
			return 0
		},
	})

	v, st := d.UnitInfo(1, domain.InfoBatchAndSerial)
	if st != domain.StatusOK {
		t.Fatalf("expected OK, got %v", st)
	}
	if v != "JR628/0017" {
		t.Fatalf("expected JR628/0017, got %q", v)
	}
}

func TestSigGenRangeConvertsToVolts(t *testing.T) {
	var gotPk2Pk, gotOffset float64
	d := New(Functions{
		SigGenRange: func(_ int16, peakToPeakVolts, offsetVolts float64) uint32 {
			gotPk2Pk, gotOffset = peakToPeakVolts, offsetVolts
			return 0
		},
	})

	if st := d.SigGenRange(1, 1800, 250); st != domain.StatusOK {
		t.Fatalf("expected OK, got %v", st)
	}
	if gotPk2Pk != 1.8 || gotOffset != 0.25 {
		t.Fatalf("expected 1.8V/0.25V, got %v/%v", gotPk2Pk, gotOffset)
	}
}

func TestSigGenApplyMarshalsBools(t *testing.T) {
	var gotEnabled, gotSweep int16
	d := New(Functions{
		SigGenApply: func(_ int16, enabled, sweepEnabled, _, _, _ int16, frequency, _, _, _ *float64) uint32 {
			gotEnabled, gotSweep = enabled, sweepEnabled
			*frequency = 10_000
			return 0
		},
	})

	res, st := d.SigGenApply(1, ports.SigGenApplyRequest{Enabled: true})
	if st != domain.StatusOK {
		t.Fatalf("expected OK, got %v", st)
	}
	if gotEnabled != 1 || gotSweep != 0 {
		t.Fatalf("expected enabled=1 sweep=0, got %d/%d", gotEnabled, gotSweep)
	}
	if res.Frequency != 10_000 {
		t.Fatalf("expected achieved frequency 10000, got %v", res.Frequency)
	}
}
