package picoscope

import (
	"github.com/picoscope-go/picoscope/internal/app/config"
	"github.com/picoscope-go/picoscope/internal/domain"
	"github.com/picoscope-go/picoscope/internal/ports"
	"github.com/picoscope-go/picoscope/internal/scope"
)

// Type aliases so consumers work entirely through this package.
type (
	Session         = scope.Session
	Options         = scope.Options
	BlockRequest    = scope.BlockRequest
	BlockResult     = scope.BlockResult
	TriggerConfig   = scope.TriggerConfig
	DriverError     = scope.DriverError
	ConfigError     = scope.ConfigError
	ChannelSettings = ports.ChannelSettings

	Driver             = ports.Driver
	SignalGenerator    = ports.SignalGenerator
	PowerSourceControl = ports.PowerSourceControl
	Observability      = ports.Observability
	Field              = ports.Field
	Archive            = ports.Archive
	TimebaseInfo       = ports.TimebaseInfo
	BufferRequest      = ports.BufferRequest
	SigGenApplyRequest = ports.SigGenApplyRequest
	SigGenResult       = ports.SigGenResult

	Generation       = domain.Generation
	Handle           = domain.Handle
	Channel          = domain.Channel
	VoltageRange     = domain.VoltageRange
	Coupling         = domain.Coupling
	Bandwidth        = domain.Bandwidth
	TriggerDirection = domain.TriggerDirection
	DataType         = domain.DataType
	RatioMode        = domain.RatioMode
	Action           = domain.Action
	Resolution       = domain.Resolution
	PowerSource      = domain.PowerSource
	UnitInfoField    = domain.UnitInfo
	WaveformType     = domain.WaveformType
	Status           = domain.Status
	Buffer           = domain.Buffer
	ChannelBuffers   = domain.ChannelBuffers
	Overflow         = domain.Overflow
	CaptureRecord    = domain.CaptureRecord

	Config = config.Config
)

// Re-exported sentinel errors.
var (
	ErrDeviceNotFound = scope.ErrDeviceNotFound
	ErrSessionClosed  = scope.ErrSessionClosed
	ErrNotImplemented = scope.ErrNotImplemented
	ErrWaitTimeout    = scope.ErrWaitTimeout
)

// Commonly used enumeration values.
const (
	GenerationLegacy = domain.GenerationLegacy
	GenerationTyped  = domain.GenerationTyped

	ChannelA = domain.ChannelA
	ChannelB = domain.ChannelB
	ChannelC = domain.ChannelC
	ChannelD = domain.ChannelD
	ChannelE = domain.ChannelE
	ChannelF = domain.ChannelF
	ChannelG = domain.ChannelG
	ChannelH = domain.ChannelH

	Range10MV  = domain.Range10MV
	Range20MV  = domain.Range20MV
	Range50MV  = domain.Range50MV
	Range100MV = domain.Range100MV
	Range200MV = domain.Range200MV
	Range500MV = domain.Range500MV
	Range1V    = domain.Range1V
	Range2V    = domain.Range2V
	Range5V    = domain.Range5V
	Range10V   = domain.Range10V
	Range20V   = domain.Range20V
	Range50V   = domain.Range50V

	CouplingAC      = domain.CouplingAC
	CouplingDC      = domain.CouplingDC
	CouplingDC50Ohm = domain.CouplingDC50Ohm

	BandwidthFull   = domain.BandwidthFull
	Bandwidth20MHz  = domain.Bandwidth20MHz
	Bandwidth200MHz = domain.Bandwidth200MHz

	TriggerAbove           = domain.TriggerAbove
	TriggerBelow           = domain.TriggerBelow
	TriggerRising          = domain.TriggerRising
	TriggerFalling         = domain.TriggerFalling
	TriggerRisingOrFalling = domain.TriggerRisingOrFalling

	Int8   = domain.Int8
	Int16  = domain.Int16
	Int32  = domain.Int32
	UInt32 = domain.UInt32
	Int64  = domain.Int64

	RatioRaw     = domain.RatioRaw
	RatioAverage = domain.RatioAverage

	ActionClearAll = domain.ActionClearAll
	ActionAdd      = domain.ActionAdd

	Resolution8Bit  = domain.Resolution8Bit
	Resolution10Bit = domain.Resolution10Bit
	Resolution12Bit = domain.Resolution12Bit
	Resolution14Bit = domain.Resolution14Bit
	Resolution15Bit = domain.Resolution15Bit
	Resolution16Bit = domain.Resolution16Bit

	InfoVariant        = domain.InfoVariant
	InfoBatchAndSerial = domain.InfoBatchAndSerial
	InfoDriverVersion  = domain.InfoDriverVersion

	WaveSine     = domain.WaveSine
	WaveSquare   = domain.WaveSquare
	WaveTriangle = domain.WaveTriangle
	WaveRampUp   = domain.WaveRampUp
	WaveRampDown = domain.WaveRampDown
)

// Open opens a device session over the given driver.
func Open(drv Driver, obs Observability, opts Options) (*Session, error) {
	return scope.Open(drv, obs, opts)
}

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	return config.Load(path)
}
