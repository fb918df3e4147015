package domain

import "fmt"

// Status is a raw status code returned by every native entry point.
type Status uint32

const (
	StatusOK                       Status = 0x00000000
	StatusMaxUnitsOpened           Status = 0x00000001
	StatusMemoryFail               Status = 0x00000002
	StatusNotFound                 Status = 0x00000003
	StatusFirmwareFail             Status = 0x00000004
	StatusOpenOperationInProgress  Status = 0x00000005
	StatusOperationFailed          Status = 0x00000006
	StatusNotResponding            Status = 0x00000007
	StatusConfigFail               Status = 0x00000008
	StatusKernelDriverTooOld       Status = 0x00000009
	StatusEEPROMCorrupt            Status = 0x0000000A
	StatusOSNotSupported           Status = 0x0000000B
	StatusInvalidHandle            Status = 0x0000000C
	StatusInvalidParameter         Status = 0x0000000D
	StatusInvalidTimebase          Status = 0x0000000E
	StatusInvalidVoltageRange      Status = 0x0000000F
	StatusInvalidChannel           Status = 0x00000010
	StatusInvalidTriggerChannel    Status = 0x00000011
	StatusInvalidConditionChannel  Status = 0x00000012
	StatusNoSignalGenerator        Status = 0x00000013
	StatusStreamingFailed          Status = 0x00000014
	StatusBlockModeFailed          Status = 0x00000015
	StatusNullParameter            Status = 0x00000016
	StatusDataNotAvailable         Status = 0x00000019
	StatusStringBufferTooSmall     Status = 0x0000001A
	StatusVDCOutOfRange            Status = 0x0000001C
	StatusFrequencyOutOfRange      Status = 0x0000001E
	StatusAmplitudeOutOfRange      Status = 0x0000001F
	StatusDelayOutOfRange          Status = 0x00000022
	StatusBusy                     Status = 0x00000027
	StatusDeviceSampling           Status = 0x00000032
	StatusNoSamplesAvailable       Status = 0x00000033
	StatusSegmentOutOfRange        Status = 0x00000034
	StatusInvalidCall              Status = 0x00000036
	StatusNotResponding2           Status = 0x0000003A
	StatusTriggerError             Status = 0x0000003C
	StatusMemory                   Status = 0x00000041
	StatusSigGenParam              Status = 0x00000042
	StatusWarningAuxOutputConflict Status = 0x00000048
	StatusCancelled                Status = 0x0000004C
	StatusDriverFunction           Status = 0x0000004F
	StatusInvalidSampleInterval    Status = 0x00000052
	StatusInvalidDeviceResolution  Status = 0x000000E1
	StatusPowerSupplyConnected     Status = 0x00000119
	StatusPowerSupplyNotConnected  Status = 0x0000011A
	StatusUSB3DeviceNonUSB3Port    Status = 0x0000011E
)

// statusMessages is the fixed code→meaning table. Unknown codes must
// not crash; Message falls back to a generic description.
var statusMessages = map[Status]string{
	StatusOK:                       "PICO_OK",
	StatusMaxUnitsOpened:           "PICO_MAX_UNITS_OPENED: attempted to open more units than allowed",
	StatusMemoryFail:               "PICO_MEMORY_FAIL: not enough memory on the host machine",
	StatusNotFound:                 "PICO_NOT_FOUND: no matching device found",
	StatusFirmwareFail:             "PICO_FW_FAIL: unable to download firmware",
	StatusOpenOperationInProgress:  "PICO_OPEN_OPERATION_IN_PROGRESS",
	StatusOperationFailed:          "PICO_OPERATION_FAILED",
	StatusNotResponding:            "PICO_NOT_RESPONDING: device not responding",
	StatusConfigFail:               "PICO_CONFIG_FAIL: unable to download configuration",
	StatusKernelDriverTooOld:       "PICO_KERNEL_DRIVER_TOO_OLD",
	StatusEEPROMCorrupt:            "PICO_EEPROM_CORRUPT",
	StatusOSNotSupported:           "PICO_OS_NOT_SUPPORTED",
	StatusInvalidHandle:            "PICO_INVALID_HANDLE: handle does not refer to an open device",
	StatusInvalidParameter:         "PICO_INVALID_PARAMETER",
	StatusInvalidTimebase:          "PICO_INVALID_TIMEBASE: timebase not supported by this device",
	StatusInvalidVoltageRange:      "PICO_INVALID_VOLTAGE_RANGE",
	StatusInvalidChannel:           "PICO_INVALID_CHANNEL",
	StatusInvalidTriggerChannel:    "PICO_INVALID_TRIGGER_CHANNEL",
	StatusInvalidConditionChannel:  "PICO_INVALID_CONDITION_CHANNEL",
	StatusNoSignalGenerator:        "PICO_NO_SIGNAL_GENERATOR: device has no signal generator",
	StatusStreamingFailed:          "PICO_STREAMING_FAILED",
	StatusBlockModeFailed:          "PICO_BLOCK_MODE_FAILED",
	StatusNullParameter:            "PICO_NULL_PARAMETER",
	StatusDataNotAvailable:         "PICO_DATA_NOT_AVAILABLE: no samples available for retrieval",
	StatusStringBufferTooSmall:     "PICO_STRING_BUFFER_TOO_SMALL",
	StatusVDCOutOfRange:            "PICO_SIG_GEN_PARAM: DC offset out of range",
	StatusFrequencyOutOfRange:      "PICO_FREQUENCY_OUT_OF_RANGE",
	StatusAmplitudeOutOfRange:      "PICO_AMPLITUDE_OUT_OF_RANGE",
	StatusDelayOutOfRange:          "PICO_DELAY_OUT_OF_RANGE",
	StatusBusy:                     "PICO_BUSY: device busy, data not returned",
	StatusDeviceSampling:           "PICO_DEVICE_SAMPLING: device is still sampling",
	StatusNoSamplesAvailable:       "PICO_NO_SAMPLES_AVAILABLE: no captures requested",
	StatusSegmentOutOfRange:        "PICO_SEGMENT_OUT_OF_RANGE",
	StatusInvalidCall:              "PICO_INVALID_CALL: call sequence invalid for current state",
	StatusNotResponding2:           "PICO_NOT_RESPONDING",
	StatusTriggerError:             "PICO_TRIGGER_ERROR",
	StatusMemory:                   "PICO_MEMORY: driver memory allocation failed",
	StatusSigGenParam:              "PICO_SIG_GEN_PARAM",
	StatusWarningAuxOutputConflict: "PICO_WARNING_AUX_OUTPUT_CONFLICT",
	StatusCancelled:                "PICO_CANCELLED: operation cancelled",
	StatusDriverFunction:           "PICO_DRIVER_FUNCTION: another thread is inside the driver",
	StatusInvalidSampleInterval:    "PICO_INVALID_SAMPLE_INTERVAL",
	StatusInvalidDeviceResolution:  "PICO_INVALID_DEVICE_RESOLUTION",
	StatusPowerSupplyConnected:     "PICO_POWER_SUPPLY_CONNECTED",
	StatusPowerSupplyNotConnected:  "PICO_POWER_SUPPLY_NOT_CONNECTED: power supply not connected",
	StatusUSB3DeviceNonUSB3Port:    "PICO_USB3_0_DEVICE_NON_USB3_0_PORT: device connected to a non-USB3 port",
}

// Message returns the vendor description for the code. A code missing
// from the table reports itself as unrecognized rather than failing.
func (s Status) Message() string {
	if msg, ok := statusMessages[s]; ok {
		return msg
	}
	return fmt.Sprintf("unrecognized status 0x%08X", uint32(s))
}

func (s Status) String() string { return s.Message() }

// warningStatuses are non-zero codes that indicate the operation
// succeeded with a caveat: the device is connected but degraded. The
// session logs these and continues.
var warningStatuses = map[Status]bool{
	StatusPowerSupplyConnected:    true,
	StatusPowerSupplyNotConnected: true,
	StatusUSB3DeviceNonUSB3Port:   true,
}

// Severity of a translated status outcome.
type Severity int

const (
	SeverityOK Severity = iota
	SeverityWarning
	SeverityFatal
)

// Classify maps a raw status into the three-way outcome taxonomy.
func (s Status) Classify() Severity {
	switch {
	case s == StatusOK:
		return SeverityOK
	case warningStatuses[s]:
		return SeverityWarning
	default:
		return SeverityFatal
	}
}
