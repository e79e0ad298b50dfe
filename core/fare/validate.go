// Package fare - request validation
package fare

import (
	"fmt"
	"math"
)

// Upper bounds on trip parameters. Anything beyond them is not a real
// trip, and unbounded magnitudes would overflow the whole-ruble price.
const (
	MaxDistanceMeters = 1_000_000
	MaxEtaSeconds     = 86_400
)

// Request is a validated, immutable fare request
type Request struct {
	DistanceMeters float64
	EtaSeconds     float64
	VehicleClass   string
}

// RawRequest is the decoded but unvalidated input. Fields are pointers
// so absent and zero values are distinguishable.
type RawRequest struct {
	DistanceMeters *float64
	EtaSeconds     *float64
	VehicleClass   *string
}

// Validate checks structural then semantic validity of a raw request.
// The vehicle class is taken verbatim; membership in the rate table is
// the engine's concern, not the validator's. Pure function, no side
// effects.
func Validate(raw RawRequest) (Request, *Error) {
	if raw.DistanceMeters == nil {
		return Request{}, newError(CodeInvalidRequest, "distanceM is required")
	}
	if raw.EtaSeconds == nil {
		return Request{}, newError(CodeInvalidRequest, "etaSec is required")
	}
	if raw.VehicleClass == nil {
		return Request{}, newError(CodeInvalidRequest, "class is required")
	}

	distance := *raw.DistanceMeters
	eta := *raw.EtaSeconds

	if math.IsNaN(distance) || math.IsInf(distance, 0) {
		return Request{}, newError(CodeInvalidParameters, "distanceM must be a finite number")
	}
	if math.IsNaN(eta) || math.IsInf(eta, 0) {
		return Request{}, newError(CodeInvalidParameters, "etaSec must be a finite number")
	}
	if distance <= 0 {
		return Request{}, newError(CodeInvalidParameters, "distanceM must be positive")
	}
	if eta <= 0 {
		return Request{}, newError(CodeInvalidParameters, "etaSec must be positive")
	}
	if distance > MaxDistanceMeters {
		return Request{}, newError(CodeInvalidParameters,
			fmt.Sprintf("distanceM must not exceed %d", MaxDistanceMeters))
	}
	if eta > MaxEtaSeconds {
		return Request{}, newError(CodeInvalidParameters,
			fmt.Sprintf("etaSec must not exceed %d", MaxEtaSeconds))
	}

	return Request{
		DistanceMeters: distance,
		EtaSeconds:     eta,
		VehicleClass:   *raw.VehicleClass,
	}, nil
}
