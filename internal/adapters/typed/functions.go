package typed

import "unsafe"

// Functions is the resolved symbol table of the newer-generation
// native library. Each field mirrors one entry point's fixed native
// signature: integer status return, results through output pointers.
// Consumers populate the table with their loader of choice (purego,
// cgo); tests populate it with plain Go functions. Holding the table
// explicitly keeps library lifecycle with the caller instead of in
// package globals.
type Functions struct {
	OpenUnit    func(handle *int16, serial *byte, resolution int32) uint32
	CloseUnit   func(handle int16) uint32
	GetUnitInfo func(handle int16, str *byte, strLen int16, requiredSize *int16, info uint32) uint32
	GetAdcLimits func(handle int16, resolution int32, min *int32, max *int32) uint32

	SetChannelOn  func(handle int16, channel, coupling, voltageRange int32, offsetVolts float64, bandwidth int32) uint32
	SetChannelOff func(handle int16, channel int32) uint32

	SetSimpleTrigger func(handle int16, enable int16, source int32, threshold int16, direction int32, delaySamples uint64, autoTriggerMS uint32) uint32

	GetTimebase func(handle int16, timebase uint32, samples uint64, intervalNS *float64, maxSamples *uint64, segment uint64) uint32

	SetDataBuffer func(handle int16, channel int32, buffer unsafe.Pointer, samples int32, dataType int32, segment uint64, ratioMode uint32, action uint32) uint32

	RunBlock  func(handle int16, preSamples, postSamples uint64, timebase uint32, timeIndisposedMS *int32, segment uint64, ready, param uintptr) uint32
	IsReady   func(handle int16, ready *int16) uint32
	GetValues func(handle int16, startIndex uint64, samples *uint64, ratio uint64, ratioMode uint32, segment uint64, overflow *int16) uint32

	SigGenApply     func(handle int16, enabled, sweepEnabled, triggerEnabled, autoClockOptimise, overridePrescale int16, frequency, stopFrequency, frequencyIncrement, dwellTime *float64) uint32
	SigGenFrequency func(handle int16, frequencyHz float64) uint32
	SigGenRange     func(handle int16, peakToPeakVolts, offsetVolts float64) uint32
	SigGenWaveform  func(handle int16, waveType int32, buffer *int16, bufferLength uint64) uint32
}
