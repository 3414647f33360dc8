package errors

// Common error codes
const (
	// System errors
	ErrInternal        ErrorCode = "internal_error"
	ErrInvalidArgument ErrorCode = "invalid_argument"
	ErrCancelled       ErrorCode = "operation_cancelled"

	// Configuration errors
	ErrInvalidConfig   ErrorCode = "invalid_configuration"
	ErrReadConfig      ErrorCode = "read_config_failed"
	ErrBindFlags       ErrorCode = "bind_flags_failed"
	ErrInvalidInterval ErrorCode = "invalid_interval"

	// Provider errors
	ErrProviderUnavailable ErrorCode = "provider_unavailable"
	ErrProviderFailed      ErrorCode = "provider_failed"
	ErrNoBattery           ErrorCode = "no_battery"
	ErrNoFans              ErrorCode = "no_fans"
	ErrNoGPU               ErrorCode = "no_gpu"

	// Output errors
	ErrEncodeOutput ErrorCode = "encode_output_failed"
)

// Common error messages
var errorMessages = map[ErrorCode]string{
	ErrInternal:            "Internal error occurred",
	ErrInvalidArgument:     "Invalid argument provided",
	ErrCancelled:           "Operation cancelled",
	ErrInvalidConfig:       "Invalid configuration",
	ErrReadConfig:          "Failed to read configuration",
	ErrBindFlags:           "Failed to bind flags",
	ErrInvalidInterval:     "Invalid interval value",
	ErrProviderUnavailable: "Sensor provider unavailable",
	ErrProviderFailed:      "Sensor provider failed",
	ErrNoBattery:           "No battery found",
	ErrNoFans:              "No fan information",
	ErrNoGPU:               "No GPU found",
	ErrEncodeOutput:        "Failed to encode output",
}

// GetErrorMessage returns the message for a given error code
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}

	return string(code)
}
