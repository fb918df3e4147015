package domain

import "testing"

func TestParseChannelCaseInsensitive(t *testing.T) {
	for _, s := range []string{"a", "A", " a "} {
		ch, err := ParseChannel(s)
		if err != nil {
			t.Fatalf("parse %q: %v", s, err)
		}
		if ch != ChannelA {
			t.Fatalf("parse %q: expected channel A, got %s", s, ch)
		}
	}
	if _, err := ParseChannel("Z"); err == nil {
		t.Fatal("expected error for unknown channel")
	}
}

func TestParseRange(t *testing.T) {
	r, err := ParseRange("500mv")
	if err != nil || r != Range500MV {
		t.Fatalf("expected 500mV range, got %v err=%v", r, err)
	}
	r, err = ParseRange("±2V")
	if err != nil || r != Range2V {
		t.Fatalf("expected 2V range with sign prefix, got %v err=%v", r, err)
	}
	if _, err := ParseRange("3v"); err == nil {
		t.Fatal("expected error for range outside the table")
	}
}

func TestParseDataTypeDefault(t *testing.T) {
	d, err := ParseDataType("")
	if err != nil || d != Int16 {
		t.Fatalf("expected empty datatype to default to int16, got %v err=%v", d, err)
	}
}

func TestParseResolution(t *testing.T) {
	r, err := ParseResolution("12bit")
	if err != nil || r != Resolution12Bit {
		t.Fatalf("expected 12-bit resolution, got %v err=%v", r, err)
	}
	if _, err := ParseResolution("24bit"); err == nil {
		t.Fatal("expected error for unsupported resolution")
	}
}

func TestParseTriggerDirection(t *testing.T) {
	d, err := ParseTriggerDirection("either")
	if err != nil || d != TriggerRisingOrFalling {
		t.Fatalf("expected rising-or-falling for either, got %v err=%v", d, err)
	}
}

func TestParseWaveform(t *testing.T) {
	w, err := ParseWaveform("square")
	if err != nil || w != WaveSquare {
		t.Fatalf("expected square wave, got %v err=%v", w, err)
	}
	if _, err := ParseWaveform("sawtooth"); err == nil {
		t.Fatal("expected error for unknown waveform")
	}
}
