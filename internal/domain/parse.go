package domain

import (
	"fmt"
	"strings"
)

// Parse helpers used by the YAML configuration layer. Matching is
// case-insensitive on the canonical short names.

func ParseGeneration(s string) (Generation, error) {
	switch strings.ToLower(s) {
	case "legacy":
		return GenerationLegacy, nil
	case "typed":
		return GenerationTyped, nil
	default:
		return 0, fmt.Errorf("unknown generation %q", s)
	}
}

func ParseChannel(s string) (Channel, error) {
	up := strings.ToUpper(strings.TrimSpace(s))
	for i, name := range channelNames {
		if up == name {
			return Channel(i), nil
		}
	}
	return 0, fmt.Errorf("unknown channel %q", s)
}

var rangeNames = map[string]VoltageRange{
	"10mv": Range10MV, "20mv": Range20MV, "50mv": Range50MV,
	"100mv": Range100MV, "200mv": Range200MV, "500mv": Range500MV,
	"1v": Range1V, "2v": Range2V, "5v": Range5V,
	"10v": Range10V, "20v": Range20V, "50v": Range50V,
}

func ParseRange(s string) (VoltageRange, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.TrimPrefix(key, "±")
	if r, ok := rangeNames[key]; ok {
		return r, nil
	}
	return 0, fmt.Errorf("unknown voltage range %q", s)
}

func ParseCoupling(s string) (Coupling, error) {
	switch strings.ToLower(s) {
	case "ac":
		return CouplingAC, nil
	case "dc", "":
		return CouplingDC, nil
	case "dc50", "dc_50ohm", "dc50ohm":
		return CouplingDC50Ohm, nil
	default:
		return 0, fmt.Errorf("unknown coupling %q", s)
	}
}

func ParseBandwidth(s string) (Bandwidth, error) {
	switch strings.ToLower(s) {
	case "full", "":
		return BandwidthFull, nil
	case "20mhz":
		return Bandwidth20MHz, nil
	case "200mhz":
		return Bandwidth200MHz, nil
	default:
		return 0, fmt.Errorf("unknown bandwidth %q", s)
	}
}

func ParseTriggerDirection(s string) (TriggerDirection, error) {
	switch strings.ToLower(s) {
	case "above":
		return TriggerAbove, nil
	case "below":
		return TriggerBelow, nil
	case "rising", "":
		return TriggerRising, nil
	case "falling":
		return TriggerFalling, nil
	case "rising_or_falling", "either":
		return TriggerRisingOrFalling, nil
	default:
		return 0, fmt.Errorf("unknown trigger direction %q", s)
	}
}

func ParseDataType(s string) (DataType, error) {
	switch strings.ToLower(s) {
	case "int8":
		return Int8, nil
	case "int16", "":
		return Int16, nil
	case "int32":
		return Int32, nil
	case "uint32":
		return UInt32, nil
	case "int64":
		return Int64, nil
	default:
		return 0, fmt.Errorf("unknown datatype %q", s)
	}
}

func ParseResolution(s string) (Resolution, error) {
	switch strings.ToLower(s) {
	case "8bit", "":
		return Resolution8Bit, nil
	case "10bit":
		return Resolution10Bit, nil
	case "12bit":
		return Resolution12Bit, nil
	case "14bit":
		return Resolution14Bit, nil
	case "15bit":
		return Resolution15Bit, nil
	case "16bit":
		return Resolution16Bit, nil
	default:
		return 0, fmt.Errorf("unknown resolution %q", s)
	}
}

func ParseWaveform(s string) (WaveformType, error) {
	switch strings.ToLower(s) {
	case "sine", "":
		return WaveSine, nil
	case "square":
		return WaveSquare, nil
	case "triangle":
		return WaveTriangle, nil
	case "ramp_up":
		return WaveRampUp, nil
	case "ramp_down":
		return WaveRampDown, nil
	case "sinc":
		return WaveSinc, nil
	case "gaussian":
		return WaveGaussian, nil
	case "half_sine":
		return WaveHalfSine, nil
	case "dc":
		return WaveDCVoltage, nil
	case "white_noise", "whitenoise":
		return WaveWhiteNoise, nil
	case "prbs":
		return WavePRBS, nil
	default:
		return 0, fmt.Errorf("unknown waveform %q", s)
	}
}
