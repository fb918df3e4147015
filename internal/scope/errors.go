package scope

import (
	"errors"
	"fmt"

	"github.com/picoscope-go/picoscope/internal/domain"
)

// ErrDeviceNotFound indicates open could not locate a matching unit.
var ErrDeviceNotFound = errors.New("picoscope: device not found")

// ErrSessionClosed indicates an operation was attempted before open or
// after close.
var ErrSessionClosed = errors.New("picoscope: session is not open")

// ErrNotImplemented indicates the operation exists on another device
// generation but not on the one behind this session.
var ErrNotImplemented = errors.New("picoscope: operation not available on this device generation")

// ErrWaitTimeout indicates the device did not signal ready before the
// configured wait timeout elapsed.
var ErrWaitTimeout = errors.New("picoscope: device not ready before wait timeout")

// DriverError is a fatal native-call failure. By the time the caller
// sees one, the session has already been force-closed.
type DriverError struct {
	Op     string
	Status domain.Status
}

func (e *DriverError) Error() string {
	return fmt.Sprintf("picoscope: %s: %s", e.Op, e.Status.Message())
}

// ConfigError reports a caller-supplied value the engine refuses to
// submit to the native layer.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "picoscope: invalid configuration: " + e.Reason
}

func configErrorf(format string, args ...any) *ConfigError {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}
