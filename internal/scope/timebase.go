package scope

import "github.com/picoscope-go/picoscope/internal/ports"

// ResolveTimebase converts a timebase index and requested sample count
// into the achievable sample interval and the maximum feasible sample
// count. The result is never cached: feasibility depends on the
// currently enabled channels and the resolution, so callers must
// re-resolve after any configuration change.
func (s *Session) ResolveTimebase(timebase uint32, samples int, segment uint32) (ports.TimebaseInfo, error) {
	if !s.open {
		return ports.TimebaseInfo{}, ErrSessionClosed
	}
	info, st := s.drv.Timebase(s.handle, timebase, samples, segment)
	if err := s.check("get timebase", st); err != nil {
		return ports.TimebaseInfo{}, err
	}
	return info, nil
}
