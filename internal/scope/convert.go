package scope

import "github.com/picoscope-go/picoscope/internal/domain"

// adcToMV and mvToADC are the two calibration primitives. Both scale
// against the session's discovered maximum ADC code, which varies by
// device family and resolution; nothing here is hardcoded.
func adcToMV(code int64, spanMV float64, maxADC int32) float64 {
	return float64(code) / float64(maxADC) * spanMV
}

// mvToADC truncates toward zero, matching integer-division semantics.
func mvToADC(mv, spanMV float64, maxADC int32) int64 {
	return int64(mv / spanMV * float64(maxADC))
}

// ADCToMillivolts converts a raw code to millivolts for the given
// voltage range.
func (s *Session) ADCToMillivolts(code int64, r domain.VoltageRange) (float64, error) {
	span, ok := r.SpanMillivolts()
	if !ok {
		return 0, configErrorf("voltage range %d outside the fixed range table", int32(r))
	}
	return adcToMV(code, span, s.maxADC), nil
}

// MillivoltsToADC converts a millivolt value to the nearest ADC code
// toward zero for the given voltage range.
func (s *Session) MillivoltsToADC(mv float64, r domain.VoltageRange) (int64, error) {
	span, ok := r.SpanMillivolts()
	if !ok {
		return 0, configErrorf("voltage range %d outside the fixed range table", int32(r))
	}
	return mvToADC(mv, span, s.maxADC), nil
}

// BufferToMillivolts converts a capture buffer element-wise using the
// recorded range of the channel it was captured on.
func (s *Session) BufferToMillivolts(buf *domain.Buffer, ch domain.Channel) ([]float64, error) {
	r, ok := s.ranges[ch]
	if !ok {
		return nil, configErrorf("channel %s has no recorded range; enable it before converting", ch)
	}
	span, ok := r.SpanMillivolts()
	if !ok {
		return nil, configErrorf("voltage range %d outside the fixed range table", int32(r))
	}
	out := make([]float64, buf.Len())
	for i := range out {
		out[i] = adcToMV(buf.At(i), span, s.maxADC)
	}
	return out, nil
}

// BuffersToMillivolts converts a channel→buffer mapping element-wise,
// preserving channel association and sample order.
func (s *Session) BuffersToMillivolts(buffers domain.ChannelBuffers) (map[domain.Channel][]float64, error) {
	out := make(map[domain.Channel][]float64, len(buffers))
	for _, ch := range buffers.Channels() {
		mv, err := s.BufferToMillivolts(buffers[ch], ch)
		if err != nil {
			return nil, err
		}
		out[ch] = mv
	}
	return out, nil
}
