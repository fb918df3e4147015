package picoscope

import (
	base "github.com/picoscope-go/picoscope/pkg/picoscope"
)

// Re-exported errors for convenience.
var (
	ErrDeviceNotFound = base.ErrDeviceNotFound
	ErrSessionClosed  = base.ErrSessionClosed
	ErrNotImplemented = base.ErrNotImplemented
	ErrWaitTimeout    = base.ErrWaitTimeout
)

// Type aliases so consumers can import github.com/picoscope-go/picoscope directly.
type (
	Session         = base.Session
	Options         = base.Options
	Rig             = base.Rig
	RigOption       = base.RigOption
	CaptureSet      = base.CaptureSet
	BlockRequest    = base.BlockRequest
	BlockResult     = base.BlockResult
	TriggerConfig   = base.TriggerConfig
	ChannelSettings = base.ChannelSettings
	DriverError     = base.DriverError
	ConfigError     = base.ConfigError

	Driver             = base.Driver
	SignalGenerator    = base.SignalGenerator
	PowerSourceControl = base.PowerSourceControl
	Observability      = base.Observability
	Field              = base.Field
	Archive            = base.Archive
	TimebaseInfo       = base.TimebaseInfo
	BufferRequest      = base.BufferRequest
	SigGenApplyRequest = base.SigGenApplyRequest
	SigGenResult       = base.SigGenResult

	Generation       = base.Generation
	Handle           = base.Handle
	Channel          = base.Channel
	VoltageRange     = base.VoltageRange
	Coupling         = base.Coupling
	Bandwidth        = base.Bandwidth
	TriggerDirection = base.TriggerDirection
	DataType         = base.DataType
	RatioMode        = base.RatioMode
	Action           = base.Action
	Resolution       = base.Resolution
	PowerSource      = base.PowerSource
	UnitInfoField    = base.UnitInfoField
	WaveformType     = base.WaveformType
	Status           = base.Status
	Buffer           = base.Buffer
	ChannelBuffers   = base.ChannelBuffers
	Overflow         = base.Overflow
	CaptureRecord    = base.CaptureRecord

	Config = base.Config
)

// Commonly used enumeration values.
const (
	GenerationLegacy = base.GenerationLegacy
	GenerationTyped  = base.GenerationTyped

	ChannelA = base.ChannelA
	ChannelB = base.ChannelB
	ChannelC = base.ChannelC
	ChannelD = base.ChannelD

	Range10MV  = base.Range10MV
	Range20MV  = base.Range20MV
	Range50MV  = base.Range50MV
	Range100MV = base.Range100MV
	Range200MV = base.Range200MV
	Range500MV = base.Range500MV
	Range1V    = base.Range1V
	Range2V    = base.Range2V
	Range5V    = base.Range5V
	Range10V   = base.Range10V
	Range20V   = base.Range20V
	Range50V   = base.Range50V

	CouplingAC = base.CouplingAC
	CouplingDC = base.CouplingDC

	TriggerRising  = base.TriggerRising
	TriggerFalling = base.TriggerFalling

	Resolution8Bit  = base.Resolution8Bit
	Resolution12Bit = base.Resolution12Bit

	InfoVariant        = base.InfoVariant
	InfoBatchAndSerial = base.InfoBatchAndSerial

	WaveSine   = base.WaveSine
	WaveSquare = base.WaveSquare
)

// Open opens a device session over the given driver.
func Open(drv Driver, obs Observability, opts Options) (*Session, error) {
	return base.Open(drv, obs, opts)
}

// NewRig opens a session and applies a full bench configuration.
func NewRig(cfg *Config, drv Driver, obs Observability, opts ...RigOption) (*Rig, error) {
	return base.NewRig(cfg, drv, obs, opts...)
}

// WithArchive attaches an archive sink to a rig.
func WithArchive(a Archive) RigOption {
	return base.WithArchive(a)
}

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	return base.LoadConfig(path)
}
