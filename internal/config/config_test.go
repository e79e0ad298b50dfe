// Package config - configuration tests
package config

import (
	"os"
	"testing"

	"github.com/shopspring/decimal"
)

var allKeys = []string{
	"PORT", "BASE_PRICE", "PRICE_PER_KM", "PRICE_PER_MINUTE",
	"DEMAND_COEFF_MIN", "DEMAND_COEFF_MAX", "RATES_FILE",
	"LONG_RIDE_DISCOUNT", "TIME_OF_DAY_PRICING", "LOG_LEVEL", "LOG_FORMAT",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range allKeys {
		if v, ok := os.LookupEnv(key); ok {
			t.Setenv(key, v) // registers restore
			os.Unsetenv(key)
		}
	}
}

// TestLoadDefaults checks every parameter has its documented default
func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != 8003 {
		t.Errorf("Port: expected 8003, got %d", cfg.Port)
	}
	if cfg.BasePrice != 100.0 {
		t.Errorf("BasePrice: expected 100.0, got %v", cfg.BasePrice)
	}
	if cfg.PricePerKm != 15.0 {
		t.Errorf("PricePerKm: expected 15.0, got %v", cfg.PricePerKm)
	}
	if cfg.PricePerMinute != 3.0 {
		t.Errorf("PricePerMinute: expected 3.0, got %v", cfg.PricePerMinute)
	}
	if cfg.DemandCoeffMin != 1.0 || cfg.DemandCoeffMax != 1.4 {
		t.Errorf("demand range: expected [1.0, 1.4], got [%v, %v]", cfg.DemandCoeffMin, cfg.DemandCoeffMax)
	}
	if cfg.LongRideDiscount || cfg.TimeOfDayPricing {
		t.Error("surcharges must be disabled by default")
	}
	if cfg.Addr() != ":8003" {
		t.Errorf("Addr: expected :8003, got %s", cfg.Addr())
	}
}

// TestLoadOverrides checks environment values win over defaults
func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "7010")
	t.Setenv("BASE_PRICE", "50")
	t.Setenv("DEMAND_COEFF_MAX", "2.0")
	t.Setenv("LONG_RIDE_DISCOUNT", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 7010 {
		t.Errorf("Port: expected 7010, got %d", cfg.Port)
	}
	if cfg.BasePrice != 50 {
		t.Errorf("BasePrice: expected 50, got %v", cfg.BasePrice)
	}
	if cfg.DemandCoeffMax != 2.0 {
		t.Errorf("DemandCoeffMax: expected 2.0, got %v", cfg.DemandCoeffMax)
	}
	if !cfg.LongRideDiscount {
		t.Error("LongRideDiscount: expected true")
	}
}

// TestLoadRejectsInvalidDemandRange checks the range invariant fails
// startup instead of surfacing at request time
func TestLoadRejectsInvalidDemandRange(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEMAND_COEFF_MIN", "2.0")
	t.Setenv("DEMAND_COEFF_MAX", "1.4")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for an inverted demand range")
	}

	clearEnv(t)
	t.Setenv("DEMAND_COEFF_MIN", "0")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for a non-positive demand minimum")
	}
}

// TestLoadRejectsNegativeRates checks negative economic parameters fail
func TestLoadRejectsNegativeRates(t *testing.T) {
	clearEnv(t)
	t.Setenv("PRICE_PER_KM", "-1")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for a negative per-km rate")
	}
}

// TestPricingConversion checks float parameters become exact decimals
func TestPricingConversion(t *testing.T) {
	cfg := &Config{
		BasePrice:      100,
		PricePerKm:     15,
		PricePerMinute: 3,
		DemandCoeffMin: 1.0,
		DemandCoeffMax: 1.4,
	}

	pricing := cfg.Pricing()
	if !pricing.BaseFare.Equal(decimal.NewFromInt(100)) {
		t.Errorf("BaseFare: expected 100, got %s", pricing.BaseFare)
	}
	if !pricing.PricePerKm.Equal(decimal.NewFromInt(15)) {
		t.Errorf("PricePerKm: expected 15, got %s", pricing.PricePerKm)
	}
	if pricing.DemandMin != 1.0 || pricing.DemandMax != 1.4 {
		t.Errorf("demand range: expected [1.0, 1.4], got [%v, %v]", pricing.DemandMin, pricing.DemandMax)
	}
}
