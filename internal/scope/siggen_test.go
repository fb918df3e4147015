package scope

import (
	"errors"
	"testing"

	"github.com/picoscope-go/picoscope/internal/domain"
	"github.com/picoscope-go/picoscope/internal/ports"
)

func TestSigGenNotImplementedOnPlainDriver(t *testing.T) {
	sess := openTestSession(t, newFakeDriver())

	if err := sess.SigGenSetFrequency(1000); !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("expected ErrNotImplemented, got %v", err)
	}
	if err := sess.SigGenSetWaveform(domain.WaveSine); !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("expected ErrNotImplemented, got %v", err)
	}
	if _, err := sess.SigGenApply(ports.SigGenApplyRequest{Enabled: true}); !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("expected ErrNotImplemented, got %v", err)
	}
}

func TestSigGenSetAndApply(t *testing.T) {
	drv := &sigGenDriver{fakeDriver: newFakeDriver()}
	sess := openTestSession(t, drv)

	if err := sess.SigGenSetWaveform(domain.WaveSquare); err != nil {
		t.Fatalf("set waveform: %v", err)
	}
	if err := sess.SigGenSetRange(1800, 0); err != nil {
		t.Fatalf("set range: %v", err)
	}
	if err := sess.SigGenSetFrequency(25_000); err != nil {
		t.Fatalf("set frequency: %v", err)
	}

	res, err := sess.SigGenApply(ports.SigGenApplyRequest{Enabled: true})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !drv.applied {
		t.Fatal("expected apply to reach the driver")
	}
	if drv.waveform != domain.WaveSquare {
		t.Fatalf("expected square waveform submitted, got %v", drv.waveform)
	}
	if res.Frequency != 25_000 {
		t.Fatalf("expected achieved frequency 25000, got %v", res.Frequency)
	}
}

func TestSigGenFatalStatusClosesSession(t *testing.T) {
	drv := &sigGenDriver{fakeDriver: newFakeDriver()}
	drv.statuses["siggen frequency"] = domain.StatusFrequencyOutOfRange
	sess := openTestSession(t, drv)

	err := sess.SigGenSetFrequency(1e12)
	var de *DriverError
	if !errors.As(err, &de) {
		t.Fatalf("expected DriverError, got %v", err)
	}
	if sess.IsOpen() {
		t.Fatal("expected session force-closed")
	}
}

func TestSigGenClosedSession(t *testing.T) {
	drv := &sigGenDriver{fakeDriver: newFakeDriver()}
	sess, err := Open(drv, nil, Options{})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	sess.Close()

	if err := sess.SigGenSetFrequency(1000); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("expected ErrSessionClosed, got %v", err)
	}
}
