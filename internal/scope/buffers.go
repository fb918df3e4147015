package scope

import (
	"github.com/picoscope-go/picoscope/internal/domain"
	"github.com/picoscope-go/picoscope/internal/ports"
)

// normalize fills the request defaults the original capture path uses:
// raw retrieval and a clear-all-then-add registration.
func normalizeBufferRequest(req ports.BufferRequest) ports.BufferRequest {
	if req.RatioMode == 0 {
		req.RatioMode = domain.RatioRaw
	}
	if req.Action == 0 {
		req.Action = domain.ActionClearAll | domain.ActionAdd
	}
	return req
}

// SetDataBuffer allocates a zero-initialized region of the requested
// width and registers it with the driver for the channel. Ownership of
// the returned buffer passes to the caller, but the backing memory
// must remain live and unmoved until values have been retrieved.
//
// The legacy generation only supports 16-bit buffers; anything else is
// rejected here rather than submitted.
func (s *Session) SetDataBuffer(ch domain.Channel, req ports.BufferRequest) (*domain.Buffer, error) {
	if !s.open {
		return nil, ErrSessionClosed
	}
	req = normalizeBufferRequest(req)
	if s.drv.Generation() == domain.GenerationLegacy && req.DataType != domain.Int16 {
		return nil, configErrorf("datatype %s not supported on the legacy generation, only int16", req.DataType)
	}
	buf, err := domain.NewBuffer(req.DataType, req.Samples)
	if err != nil {
		return nil, &ConfigError{Reason: err.Error()}
	}
	if err := s.check("set data buffer", s.drv.SetDataBuffer(s.handle, ch, buf, req)); err != nil {
		return nil, err
	}
	return buf, nil
}

// SetDataBuffersForEnabledChannels registers one fresh buffer per
// enabled channel and returns the channel→buffer mapping. This is the
// common path exercised by block captures.
func (s *Session) SetDataBuffersForEnabledChannels(req ports.BufferRequest) (domain.ChannelBuffers, error) {
	if !s.open {
		return nil, ErrSessionClosed
	}
	buffers := make(domain.ChannelBuffers, len(s.ranges))
	for _, ch := range s.EnabledChannels() {
		buf, err := s.SetDataBuffer(ch, req)
		if err != nil {
			return nil, err
		}
		buffers[ch] = buf
	}
	return buffers, nil
}
