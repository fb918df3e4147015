package scope

import (
	"context"
	"time"

	"github.com/picoscope-go/picoscope/internal/domain"
	"github.com/picoscope-go/picoscope/internal/ports"
)

// SplitPreTrigger divides a total sample count into pre- and
// post-trigger shares using integer truncation of
// samples*percent/100. Percent 0 and 100 are valid and yield an empty
// pre- or post-trigger segment.
func SplitPreTrigger(samples, preTriggerPercent int) (pre, post int) {
	pre = samples * preTriggerPercent / 100
	post = samples - pre
	return pre, post
}

// BlockRequest describes one block capture.
type BlockRequest struct {
	Timebase          uint32
	Samples           int
	PreTriggerPercent int
	Segment           uint32
	StartIndex        uint32
	DataType          domain.DataType
	Ratio             uint32
	RatioMode         domain.RatioMode
	Action            domain.Action
}

// BlockResult is the outcome of a composite block capture.
type BlockResult struct {
	Buffers domain.ChannelBuffers
	// Samples is the count actually retrieved, which may be less than
	// requested.
	Samples int
	// Overflow flags channels whose ADC saturated during the capture.
	// The data is surfaced as-is, not clipped.
	Overflow domain.Overflow
	// BusyEstimateMS is the driver's estimate of capture duration.
	BusyEstimateMS int32
}

// RunBlock splits the sample count around the trigger point and arms
// the capture. It does not block; callers poll readiness before
// retrieving values. The return value is the driver-estimated busy
// time in milliseconds.
func (s *Session) RunBlock(timebase uint32, samples, preTriggerPercent int, segment uint32) (int32, error) {
	if !s.open {
		return 0, ErrSessionClosed
	}
	if preTriggerPercent < 0 || preTriggerPercent > 100 {
		return 0, configErrorf("pre-trigger percent %d outside [0,100]", preTriggerPercent)
	}
	if samples <= 0 {
		return 0, configErrorf("sample count %d must be positive", samples)
	}
	pre, post := SplitPreTrigger(samples, preTriggerPercent)
	busyMS, st := s.drv.RunBlock(s.handle, pre, post, timebase, segment)
	if err := s.check("run block", st); err != nil {
		return 0, err
	}
	return busyMS, nil
}

// Ready performs a single readiness poll.
func (s *Session) Ready() (bool, error) {
	if !s.open {
		return false, ErrSessionClosed
	}
	ready, st := s.drv.Ready(s.handle)
	if err := s.check("is ready", st); err != nil {
		return false, err
	}
	return ready, nil
}

// WaitReady polls the driver's readiness query at the configured
// interval until the device signals ready, the context is cancelled,
// or the session's wait timeout elapses. An elapsed timeout reports
// ErrWaitTimeout so a missing trigger event is a diagnosable condition
// rather than a hang.
func (s *Session) WaitReady(ctx context.Context) error {
	var deadline <-chan time.Time
	if s.waitTimeout > 0 {
		timer := time.NewTimer(s.waitTimeout)
		defer timer.Stop()
		deadline = timer.C
	}
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		ready, err := s.Ready()
		if err != nil {
			return err
		}
		if ready {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-deadline:
			return ErrWaitTimeout
		case <-ticker.C:
		}
	}
}

// GetValues waits for readiness and then retrieves up to samples
// captured values into the already-registered buffers, starting at
// startIndex. It returns the count actually retrieved and the overflow
// bitmask.
func (s *Session) GetValues(ctx context.Context, samples int, startIndex uint32, segment uint32, ratio uint32, ratioMode domain.RatioMode) (int, domain.Overflow, error) {
	if !s.open {
		return 0, 0, ErrSessionClosed
	}
	if ratioMode == 0 {
		ratioMode = domain.RatioRaw
	}
	if err := s.WaitReady(ctx); err != nil {
		return 0, 0, err
	}
	got, overflow, st := s.drv.GetValues(s.handle, ports.ValuesRequest{
		StartIndex: startIndex,
		Samples:    uint32(samples),
		Ratio:      ratio,
		RatioMode:  ratioMode,
		Segment:    segment,
	})
	if err := s.check("get values", st); err != nil {
		return 0, 0, err
	}
	s.obs.IncCounter("pico_samples_retrieved_total", float64(got))
	return int(got), overflow, nil
}

// RunSimpleBlockCapture is the composite convenience path: register
// fresh buffers for every enabled channel, arm, wait, retrieve. It is
// safe to call repeatedly with stable configuration; each call
// allocates new buffers.
func (s *Session) RunSimpleBlockCapture(ctx context.Context, req BlockRequest) (*BlockResult, error) {
	start := time.Now()
	buffers, err := s.SetDataBuffersForEnabledChannels(ports.BufferRequest{
		Samples:   req.Samples,
		Segment:   req.Segment,
		DataType:  req.DataType,
		RatioMode: req.RatioMode,
		Action:    req.Action,
	})
	if err != nil {
		return nil, err
	}
	busyMS, err := s.RunBlock(req.Timebase, req.Samples, req.PreTriggerPercent, req.Segment)
	if err != nil {
		return nil, err
	}
	got, overflow, err := s.GetValues(ctx, req.Samples, req.StartIndex, req.Segment, req.Ratio, req.RatioMode)
	if err != nil {
		return nil, err
	}
	s.obs.IncCounter("pico_captures_total", 1)
	s.obs.ObserveLatency("pico_capture_seconds", time.Since(start).Seconds())
	return &BlockResult{
		Buffers:        buffers,
		Samples:        got,
		Overflow:       overflow,
		BusyEstimateMS: busyMS,
	}, nil
}
