package scope

import (
	"github.com/picoscope-go/picoscope/internal/domain"
	"github.com/picoscope-go/picoscope/internal/ports"
)

// The signal generator shares the session and status funnel but is
// independent of the capture path. The setters perform no
// cross-validation; invalid combinations surface when Apply commits
// them.

func (s *Session) siggen() (ports.SignalGenerator, error) {
	if !s.open {
		return nil, ErrSessionClosed
	}
	sg, ok := s.drv.(ports.SignalGenerator)
	if !ok {
		return nil, ErrNotImplemented
	}
	return sg, nil
}

// SigGenSetFrequency sets the output frequency in Hz.
func (s *Session) SigGenSetFrequency(hz float64) error {
	sg, err := s.siggen()
	if err != nil {
		return err
	}
	return s.check("siggen frequency", sg.SigGenFrequency(s.handle, hz))
}

// SigGenSetRange sets the peak-to-peak amplitude and offset in mV.
func (s *Session) SigGenSetRange(pk2pkMV, offsetMV float64) error {
	sg, err := s.siggen()
	if err != nil {
		return err
	}
	return s.check("siggen range", sg.SigGenRange(s.handle, pk2pkMV, offsetMV))
}

// SigGenSetWaveform selects the output waveform shape.
func (s *Session) SigGenSetWaveform(w domain.WaveformType) error {
	sg, err := s.siggen()
	if err != nil {
		return err
	}
	return s.check("siggen waveform", sg.SigGenWaveform(s.handle, w))
}

// SigGenApply commits the previously-set parameters and starts
// generation. The driver may adjust requested values to achievable
// ones; callers should read the result back rather than assume the
// request was honored exactly.
func (s *Session) SigGenApply(req ports.SigGenApplyRequest) (ports.SigGenResult, error) {
	sg, err := s.siggen()
	if err != nil {
		return ports.SigGenResult{}, err
	}
	res, st := sg.SigGenApply(s.handle, req)
	if err := s.check("siggen apply", st); err != nil {
		return ports.SigGenResult{}, err
	}
	return res, nil
}
