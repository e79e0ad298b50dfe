// Package api - /price handler
package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"ride-pricing/core/fare"
	"ride-pricing/internal/logging"
	"ride-pricing/internal/metrics"
)

// Error codes owned by the transport layer; the engine's own taxonomy
// lives in core/fare.
const (
	codeJSONParseError = "JSON_PARSE_ERROR"
	codeInternalError  = "INTERNAL_ERROR"
)

// handlePrice handles POST /price: decode, validate, quote, serialize.
// Failures never escape the handler; every outcome is an envelope.
func (s *Server) handlePrice(w http.ResponseWriter, r *http.Request) {
	traceID := traceIDFrom(r.Context())

	var req PriceRequest
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&req); err != nil {
		code, msg := classifyDecodeError(err)
		s.writeErrorEnvelope(w, traceID, code, msg, http.StatusBadRequest)
		return
	}
	if dec.More() {
		s.writeErrorEnvelope(w, traceID, codeJSONParseError, "unexpected data after JSON body", http.StatusBadRequest)
		return
	}

	validated, ferr := fare.Validate(fare.RawRequest{
		DistanceMeters: req.DistanceM,
		EtaSeconds:     req.EtaSec,
		VehicleClass:   req.Class,
	})
	if ferr != nil {
		s.writeErrorEnvelope(w, traceID, string(ferr.Code), ferr.Message, http.StatusBadRequest)
		return
	}

	breakdown, ferr := s.engine.Quote(validated)
	if ferr != nil {
		s.writeErrorEnvelope(w, traceID, string(ferr.Code), ferr.Message, statusForCode(ferr.Code))
		return
	}

	metrics.QuotesTotal.WithLabelValues(validated.VehicleClass).Inc()
	logging.Info("fare quoted",
		zap.String("trace_id", traceID),
		zap.String("vehicle_class", validated.VehicleClass),
		zap.Float64("distance_m", validated.DistanceMeters),
		zap.Float64("eta_sec", validated.EtaSeconds),
		zap.Int64("price", breakdown.FinalPrice),
	)

	s.writeEnvelope(w, traceID, s.priceData(breakdown), http.StatusOK)
}

// priceData converts the decimal breakdown to the wire payload.
// Surcharge multipliers appear only when the feature is enabled.
func (s *Server) priceData(breakdown fare.Breakdown) PriceData {
	payload := PriceData{
		Price:    breakdown.FinalPrice,
		Currency: breakdown.Currency.String(),
		Breakdown: BreakdownPayload{
			Base:            breakdown.Base.InexactFloat64(),
			Distance:        breakdown.DistanceComponent.InexactFloat64(),
			Time:            breakdown.TimeComponent.InexactFloat64(),
			ClassMultiplier: breakdown.ClassMultiplier.InexactFloat64(),
			DemandCoeff:     breakdown.DemandCoefficient.InexactFloat64(),
		},
	}
	pricing := s.engine.Pricing()
	if pricing.LongRideDiscount {
		v := breakdown.DistanceMultiplier.InexactFloat64()
		payload.Breakdown.DistanceMultiplier = &v
	}
	if pricing.TimeOfDayPricing {
		v := breakdown.TimeMultiplier.InexactFloat64()
		payload.Breakdown.TimeMultiplier = &v
	}
	return payload
}

// classifyDecodeError separates malformed JSON from type mismatches.
// A syntactically valid body with a mistyped field is a structural
// request error, not a parse error.
func classifyDecodeError(err error) (code, msg string) {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return string(fare.CodeInvalidRequest), "field " + field + " has wrong type"
	}
	if errors.Is(err, io.EOF) {
		return codeJSONParseError, "request body is empty"
	}
	return codeJSONParseError, "malformed JSON: " + err.Error()
}

// statusForCode maps engine error codes to HTTP statuses
func statusForCode(code fare.ErrorCode) int {
	if code == fare.CodeCalculationFailed {
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}

func (s *Server) writeEnvelope(w http.ResponseWriter, traceID string, data any, status int) {
	s.writeJSON(w, Envelope{Data: data, TraceID: traceID}, status)
}

func (s *Server) writeErrorEnvelope(w http.ResponseWriter, traceID, code, message string, status int) {
	s.writeJSON(w, Envelope{
		Error:   &ErrorBody{Code: code, Message: message},
		TraceID: traceID,
	}, status)
}
