// Package fare - error taxonomy for fare computation
package fare

// ErrorCode classifies a fare computation failure
type ErrorCode string

const (
	// CodeInvalidRequest means a required field is missing or mistyped
	CodeInvalidRequest ErrorCode = "INVALID_REQUEST"

	// CodeInvalidParameters means a field is present but semantically
	// invalid (non-positive distance or eta)
	CodeInvalidParameters ErrorCode = "INVALID_PARAMETERS"

	// CodeUnknownVehicleClass is returned only when the rate table is
	// strict; the default table falls back to the neutral multiplier
	CodeUnknownVehicleClass ErrorCode = "UNKNOWN_VEHICLE_CLASS"

	// CodeCalculationFailed marks an engine invariant violation.
	// It should not occur with a validated configuration.
	CodeCalculationFailed ErrorCode = "CALCULATION_FAILED"
)

// Error is a structured fare computation failure
type Error struct {
	Code    ErrorCode
	Message string
}

// Error implements the error interface
func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

func newError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}
