// Package fare - fare computation engine
// The engine is the composition root: it turns a validated request plus
// pricing parameters, the vehicle class table, and a demand draw into a
// final price with an itemized breakdown. All money math is decimal;
// conversion to float happens only at the serialization boundary.
package fare

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"ride-pricing/core/demand"
	"ride-pricing/core/rates"
	"ride-pricing/core/types"
)

// Long-ride discount parameters (applied only when enabled)
const longRideThresholdM = 10000.0

var (
	longRideMultiplier  = decimal.NewFromFloat(0.8)
	peakHourMultiplier  = decimal.NewFromFloat(1.3)
	nightHourMultiplier = decimal.NewFromFloat(1.2)
	neutral             = decimal.NewFromInt(1)

	// maxFinalPrice bounds the rounded price; beyond it the int64
	// conversion would wrap
	maxFinalPrice = decimal.NewFromInt(math.MaxInt64)
)

// Pricing holds the tunable economic parameters. Built once at startup,
// read-only afterwards.
type Pricing struct {
	BaseFare       decimal.Decimal
	PricePerKm     decimal.Decimal
	PricePerMinute decimal.Decimal

	// DemandMin/DemandMax bound the surge coefficient draw
	DemandMin float64
	DemandMax float64

	// LongRideDiscount applies a 0.8 multiplier to trips over 10 km
	LongRideDiscount bool

	// TimeOfDayPricing applies peak (07-09, 17-19) and night (22-06)
	// multipliers based on the engine clock
	TimeOfDayPricing bool
}

// Breakdown itemizes a computed fare. Produced fresh per quote and
// never mutated afterwards.
type Breakdown struct {
	Base              decimal.Decimal
	DistanceComponent decimal.Decimal
	TimeComponent     decimal.Decimal
	ClassMultiplier   decimal.Decimal
	DemandCoefficient decimal.Decimal

	// DistanceMultiplier and TimeMultiplier stay neutral unless the
	// corresponding surcharge is enabled
	DistanceMultiplier decimal.Decimal
	TimeMultiplier     decimal.Decimal

	FinalPrice int64
	Currency   types.Currency
}

// Engine computes fares. Stateless across calls except for the
// sampler's generator state; safe for concurrent use.
type Engine struct {
	pricing Pricing
	classes *rates.Table
	sampler demand.Sampler
	now     func() time.Time
}

// NewEngine creates an engine
func NewEngine(pricing Pricing, classes *rates.Table, sampler demand.Sampler) *Engine {
	return &Engine{
		pricing: pricing,
		classes: classes,
		sampler: sampler,
		now:     time.Now,
	}
}

// WithClock overrides the engine clock, used by time-of-day pricing
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// Pricing returns the engine's pricing parameters
func (e *Engine) Pricing() Pricing {
	return e.pricing
}

// Quote computes the fare for a validated request. The demand sampler
// is consulted exactly once per call. The final price is rounded half
// away from zero to whole rubles; breakdown intermediates are emitted
// unrounded.
func (e *Engine) Quote(req Request) (Breakdown, *Error) {
	// Configuration bounds are validated at startup; a violation
	// reaching this point is an invariant break, not a client error.
	if e.pricing.DemandMin <= 0 || e.pricing.DemandMax < e.pricing.DemandMin {
		return Breakdown{}, newError(CodeCalculationFailed, "demand coefficient range is invalid")
	}

	distanceKm := decimal.NewFromFloat(req.DistanceMeters).Div(decimal.NewFromInt(1000))
	distanceComponent := distanceKm.Mul(e.pricing.PricePerKm)

	etaMinutes := decimal.NewFromFloat(req.EtaSeconds).Div(decimal.NewFromInt(60))
	timeComponent := etaMinutes.Mul(e.pricing.PricePerMinute)

	subtotal := e.pricing.BaseFare.Add(distanceComponent).Add(timeComponent)

	classMultiplier, err := e.classes.Resolve(req.VehicleClass)
	if err != nil {
		return Breakdown{}, newError(CodeUnknownVehicleClass, err.Error())
	}

	coeff := e.sampler.Sample(e.pricing.DemandMin, e.pricing.DemandMax)
	demandCoefficient := decimal.NewFromFloat(coeff)

	distanceMultiplier := neutral
	if e.pricing.LongRideDiscount && req.DistanceMeters > longRideThresholdM {
		distanceMultiplier = longRideMultiplier
	}

	timeMultiplier := neutral
	if e.pricing.TimeOfDayPricing {
		timeMultiplier = timeOfDayMultiplier(e.now())
	}

	price := subtotal.
		Mul(classMultiplier).
		Mul(demandCoefficient).
		Mul(distanceMultiplier).
		Mul(timeMultiplier)

	// The validator bounds request magnitudes, so this only trips on
	// pathological pricing parameters.
	if price.Abs().GreaterThanOrEqual(maxFinalPrice) {
		return Breakdown{}, newError(CodeCalculationFailed, "final price exceeds the representable range")
	}

	return Breakdown{
		Base:               e.pricing.BaseFare,
		DistanceComponent:  distanceComponent,
		TimeComponent:      timeComponent,
		ClassMultiplier:    classMultiplier,
		DemandCoefficient:  demandCoefficient,
		DistanceMultiplier: distanceMultiplier,
		TimeMultiplier:     timeMultiplier,
		FinalPrice:         types.RoundWhole(price),
		Currency:           types.CurrencyRUB,
	}, nil
}

// timeOfDayMultiplier returns the surcharge for the given hour:
// peak hours 07-09 and 17-19, night hours 22-06, all inclusive.
func timeOfDayMultiplier(t time.Time) decimal.Decimal {
	hour := t.Hour()
	if (hour >= 7 && hour <= 9) || (hour >= 17 && hour <= 19) {
		return peakHourMultiplier
	}
	if hour >= 22 || hour <= 6 {
		return nightHourMultiplier
	}
	return neutral
}
