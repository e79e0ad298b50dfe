// Package config provides configuration management.
// All parameters come from the environment with fixed defaults and are
// read once at process start; the resulting Config is immutable for
// the process lifetime.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"

	"ride-pricing/core/fare"
)

// ServiceName identifies this service in health payloads and logs
const ServiceName = "pricing-service"

// Config is the main application configuration
type Config struct {
	// Port is the HTTP listen port
	Port int `envconfig:"PORT" default:"8003"`

	// BasePrice is the flat fare component in rubles
	BasePrice float64 `envconfig:"BASE_PRICE" default:"100.0"`

	// PricePerKm is the per-kilometer rate in rubles
	PricePerKm float64 `envconfig:"PRICE_PER_KM" default:"15.0"`

	// PricePerMinute is the per-minute rate in rubles
	PricePerMinute float64 `envconfig:"PRICE_PER_MINUTE" default:"3.0"`

	// DemandCoeffMin/DemandCoeffMax bound the surge coefficient
	DemandCoeffMin float64 `envconfig:"DEMAND_COEFF_MIN" default:"1.0"`
	DemandCoeffMax float64 `envconfig:"DEMAND_COEFF_MAX" default:"1.4"`

	// RatesFile optionally points at an HCL rates file that replaces
	// the canonical vehicle class table
	RatesFile string `envconfig:"RATES_FILE"`

	// LongRideDiscount enables the 0.8 multiplier for trips over 10 km
	LongRideDiscount bool `envconfig:"LONG_RIDE_DISCOUNT" default:"false"`

	// TimeOfDayPricing enables peak and night hour multipliers
	TimeOfDayPricing bool `envconfig:"TIME_OF_DAY_PRICING" default:"false"`

	// LogLevel is the minimum log level
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// LogFormat is the log output format (json, console)
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`
}

// Load reads configuration from the environment and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration invariants
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT must be in (0, 65535], got %d", c.Port)
	}
	if c.BasePrice < 0 {
		return fmt.Errorf("BASE_PRICE must not be negative, got %v", c.BasePrice)
	}
	if c.PricePerKm < 0 {
		return fmt.Errorf("PRICE_PER_KM must not be negative, got %v", c.PricePerKm)
	}
	if c.PricePerMinute < 0 {
		return fmt.Errorf("PRICE_PER_MINUTE must not be negative, got %v", c.PricePerMinute)
	}
	if c.DemandCoeffMin <= 0 {
		return fmt.Errorf("DEMAND_COEFF_MIN must be positive, got %v", c.DemandCoeffMin)
	}
	if c.DemandCoeffMax < c.DemandCoeffMin {
		return fmt.Errorf("DEMAND_COEFF_MAX (%v) must not be below DEMAND_COEFF_MIN (%v)",
			c.DemandCoeffMax, c.DemandCoeffMin)
	}
	return nil
}

// Addr returns the HTTP listen address
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Pricing builds the engine pricing parameters
func (c *Config) Pricing() fare.Pricing {
	return fare.Pricing{
		BaseFare:         decimal.NewFromFloat(c.BasePrice),
		PricePerKm:       decimal.NewFromFloat(c.PricePerKm),
		PricePerMinute:   decimal.NewFromFloat(c.PricePerMinute),
		DemandMin:        c.DemandCoeffMin,
		DemandMax:        c.DemandCoeffMax,
		LongRideDiscount: c.LongRideDiscount,
		TimeOfDayPricing: c.TimeOfDayPricing,
	}
}
