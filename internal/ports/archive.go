package ports

import "github.com/picoscope-go/picoscope/internal/domain"

// Archive persists converted capture waveforms to a downstream store.
type Archive interface {
	WriteCaptures(records []domain.CaptureRecord) error
	Name() string
}
