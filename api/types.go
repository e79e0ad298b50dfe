// Package api - API types for fare quoting
// These types define the contract for the /price endpoint. Every
// response is wrapped in the same envelope: data on success, a
// structured error otherwise, and a trace id in both cases.
package api

// PriceRequest is the input to POST /price. Fields are pointers so the
// validator can tell an absent field from a zero value.
type PriceRequest struct {
	DistanceM *float64 `json:"distanceM"`
	EtaSec    *float64 `json:"etaSec"`
	Class     *string  `json:"class"`
}

// Envelope wraps every API response
type Envelope struct {
	Data    any       `json:"data"`
	Error   *ErrorBody `json:"error"`
	TraceID string    `json:"traceId"`
}

// ErrorBody is the structured error payload
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PriceData is the success payload of POST /price
type PriceData struct {
	Price     int64            `json:"price"`
	Currency  string           `json:"currency"`
	Breakdown BreakdownPayload `json:"breakdown"`
}

// BreakdownPayload itemizes the quote. The surcharge multipliers are
// emitted only when the corresponding feature is enabled.
type BreakdownPayload struct {
	Base               float64  `json:"base"`
	Distance           float64  `json:"distance"`
	Time               float64  `json:"time"`
	ClassMultiplier    float64  `json:"classMultiplier"`
	DemandCoeff        float64  `json:"demandCoeff"`
	DistanceMultiplier *float64 `json:"distanceMultiplier,omitempty"`
	TimeMultiplier     *float64 `json:"timeMultiplier,omitempty"`
}

// HealthResponse is the body of GET /healthz
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
}

// ReadyResponse is the body of GET /readyz
type ReadyResponse struct {
	Status    string      `json:"status"`
	Timestamp string      `json:"timestamp"`
	Config    ReadyConfig `json:"config"`
}

// ReadyConfig echoes the economic parameters for readiness probes
type ReadyConfig struct {
	BasePrice      float64 `json:"basePrice"`
	PricePerKm     float64 `json:"pricePerKm"`
	PricePerMinute float64 `json:"pricePerMinute"`
}

// VersionResponse is the body of GET /version
type VersionResponse struct {
	Version string `json:"version"`
	Service string `json:"service"`
}
