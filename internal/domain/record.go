package domain

import "time"

// CaptureRecord is one channel's converted waveform from a completed
// block capture, shaped for the archive sink. CaptureID groups the
// channels of a single acquisition.
type CaptureRecord struct {
	CaptureID    string    `json:"capture_id"`
	DeviceSerial string    `json:"device_serial"`
	Channel      Channel   `json:"channel"`
	CapturedAt   time.Time `json:"captured_at"`
	IntervalNS   float64   `json:"interval_ns"`
	Range        VoltageRange `json:"range"`
	Overflow     bool      `json:"overflow"`
	Millivolts   []float64 `json:"millivolts"`
}
