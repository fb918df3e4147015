package legacy

// Functions is the resolved symbol table of the legacy-generation
// native library. The shapes differ from the typed generation: a
// single enable-flag channel call, a narrower timebase pair, int16
// buffers with no datatype or action arguments, and a plain
// maximum-value query instead of resolution-parameterized limits.
type Functions struct {
	OpenUnit    func(handle *int16, serial *byte, resolution int32) uint32
	CloseUnit   func(handle int16) uint32
	GetUnitInfo func(handle int16, str *byte, strLen int16, requiredSize *int16, info uint32) uint32
	MaximumValue func(handle int16, value *int16) uint32

	SetChannel func(handle int16, channel int32, enabled int16, coupling, voltageRange int32, offsetVolts float32) uint32

	SetSimpleTrigger func(handle int16, enable int16, source int32, threshold int16, direction int32, delaySamples uint64, autoTriggerMS int16) uint32

	GetTimebase2 func(handle int16, timebase uint32, samples int32, intervalNS *float32, maxSamples *int32, segment uint32) uint32

	SetDataBuffer func(handle int16, channel int32, buffer []int16, samples int32, segment uint32, ratioMode int32) uint32

	RunBlock  func(handle int16, preSamples, postSamples int32, timebase uint32, timeIndisposedMS *int32, segment uint32, ready, param uintptr) uint32
	IsReady   func(handle int16, ready *int16) uint32
	GetValues func(handle int16, startIndex uint32, samples *uint32, ratio uint32, ratioMode int32, segment uint32, overflow *int16) uint32

	ChangePowerSource func(handle int16, state uint32) uint32
}
