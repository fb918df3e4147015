package domain

import "fmt"

// Generation identifies which native calling convention a driver speaks.
type Generation int

const (
	// GenerationLegacy is the fixed-layout convention: narrow timebase
	// pair, enable-flag channel call, int16-only buffers.
	GenerationLegacy Generation = iota
	// GenerationTyped is the newer convention: wide timebase pair,
	// explicit channel on/off calls, typed segmented buffers.
	GenerationTyped
)

func (g Generation) String() string {
	switch g {
	case GenerationLegacy:
		return "legacy"
	case GenerationTyped:
		return "typed"
	default:
		return fmt.Sprintf("generation(%d)", int(g))
	}
}

// Handle is the opaque device handle returned by the native open call.
type Handle int16

// Channel identifies one analog input.
type Channel int32

const (
	ChannelA Channel = iota
	ChannelB
	ChannelC
	ChannelD
	ChannelE
	ChannelF
	ChannelG
	ChannelH
)

var channelNames = [...]string{"A", "B", "C", "D", "E", "F", "G", "H"}

func (c Channel) String() string {
	if c >= 0 && int(c) < len(channelNames) {
		return channelNames[c]
	}
	return fmt.Sprintf("channel(%d)", int32(c))
}

// AllChannels lists every channel identifier in fixed order. Buffer
// fanout and conversion iterate in this order so results are
// deterministic.
var AllChannels = []Channel{
	ChannelA, ChannelB, ChannelC, ChannelD,
	ChannelE, ChannelF, ChannelG, ChannelH,
}

// VoltageRange selects the full-scale input span of a channel.
type VoltageRange int32

const (
	Range10MV VoltageRange = iota
	Range20MV
	Range50MV
	Range100MV
	Range200MV
	Range500MV
	Range1V
	Range2V
	Range5V
	Range10V
	Range20V
	Range50V
)

// rangeSpansMV maps each range to its span in millivolts. Order matches
// the enum values above.
var rangeSpansMV = [...]float64{10, 20, 50, 100, 200, 500, 1000, 2000, 5000, 10000, 20000, 50000}

// SpanMillivolts returns the full-scale span of the range in mV.
// Returns false for a value outside the fixed table.
func (r VoltageRange) SpanMillivolts() (float64, bool) {
	if r < 0 || int(r) >= len(rangeSpansMV) {
		return 0, false
	}
	return rangeSpansMV[r], true
}

func (r VoltageRange) String() string {
	mv, ok := r.SpanMillivolts()
	if !ok {
		return fmt.Sprintf("range(%d)", int32(r))
	}
	if mv < 1000 {
		return fmt.Sprintf("±%gmV", mv)
	}
	return fmt.Sprintf("±%gV", mv/1000)
}

// Coupling selects the channel input coupling.
type Coupling int32

const (
	CouplingAC Coupling = iota
	CouplingDC
	CouplingDC50Ohm
)

// Bandwidth limits the analog bandwidth of a channel.
type Bandwidth int32

const (
	BandwidthFull Bandwidth = iota
	Bandwidth20MHz
	Bandwidth200MHz
)

// TriggerDirection selects the edge or level condition that fires a
// simple trigger.
type TriggerDirection int32

const (
	TriggerAbove TriggerDirection = iota
	TriggerBelow
	TriggerRising
	TriggerFalling
	TriggerRisingOrFalling
)

// DataType selects the element width of a capture buffer.
type DataType int32

const (
	Int8 DataType = iota
	Int16
	Int32
	UInt32
	Int64
)

func (d DataType) String() string {
	switch d {
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case UInt32:
		return "uint32"
	case Int64:
		return "int64"
	default:
		return fmt.Sprintf("datatype(%d)", int32(d))
	}
}

// RatioMode selects the downsampling strategy applied on retrieval.
type RatioMode uint32

const (
	RatioAggregate    RatioMode = 1
	RatioDecimate     RatioMode = 2
	RatioAverage      RatioMode = 4
	RatioDistribution RatioMode = 8
	RatioSum          RatioMode = 16
	RatioTrigger      RatioMode = 0x40000000
	RatioRaw          RatioMode = 0x80000000
)

// Action tells the driver what to do with previously registered buffers
// when a new one is submitted.
type Action uint32

const (
	ActionClearAll            Action = 0x00000001
	ActionAdd                 Action = 0x00000002
	ActionClearThisDataBuffer Action = 0x00001000
)

// Resolution selects the ADC vertical resolution, fixed at open time.
type Resolution int32

const (
	Resolution8Bit  Resolution = 0
	Resolution12Bit Resolution = 1
	Resolution14Bit Resolution = 2
	Resolution15Bit Resolution = 3
	Resolution16Bit Resolution = 4
	Resolution10Bit Resolution = 10
)

// PowerSource states reported or requested through the power-source
// entry point. The values live in the vendor status space.
type PowerSource uint32

const (
	PowerSupplyConnected    PowerSource = 0x00000119
	PowerSupplyNotConnected PowerSource = 0x0000011A
	PowerUSB3DeviceNonUSB3  PowerSource = 0x0000011E
)

// UnitInfo selects a device info string.
type UnitInfo uint32

const (
	InfoDriverVersion UnitInfo = iota
	InfoUSBVersion
	InfoHardwareVersion
	InfoVariant
	InfoBatchAndSerial
	InfoCalDate
	InfoKernelVersion
	InfoDigitalHardwareVersion
	InfoAnalogueHardwareVersion
	InfoFirmwareVersion1
	InfoFirmwareVersion2
)

// WaveformType selects the signal generator output shape.
type WaveformType uint32

const (
	WaveSine      WaveformType = 0x00000011
	WaveSquare    WaveformType = 0x00000012
	WaveTriangle  WaveformType = 0x00000013
	WaveRampUp    WaveformType = 0x00000014
	WaveRampDown  WaveformType = 0x00000015
	WaveSinc      WaveformType = 0x00000016
	WaveGaussian  WaveformType = 0x00000017
	WaveHalfSine  WaveformType = 0x00000018
	WaveDCVoltage WaveformType = 0x00000400
	WaveWhiteNoise WaveformType = 0x00002001
	WavePRBS      WaveformType = 0x00002002
)
