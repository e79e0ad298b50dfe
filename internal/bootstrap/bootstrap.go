// Package bootstrap wires configuration into a ready fare engine.
package bootstrap

import (
	"go.uber.org/zap"

	"ride-pricing/core/demand"
	"ride-pricing/core/fare"
	"ride-pricing/core/rates"
	"ride-pricing/internal/config"
	"ride-pricing/internal/logging"
)

// Rates resolves the class table and pricing parameters: the canonical
// table unless a rates file is configured, with the demand range
// optionally overridden by the file's demand block.
func Rates(cfg *config.Config) (*rates.Table, fare.Pricing, error) {
	table := rates.Canonical()
	pricing := cfg.Pricing()

	if cfg.RatesFile != "" {
		fileTable, demandRange, err := rates.LoadFile(cfg.RatesFile)
		if err != nil {
			return nil, fare.Pricing{}, err
		}
		table = fileTable
		if demandRange != nil {
			pricing.DemandMin = demandRange.Min
			pricing.DemandMax = demandRange.Max
		}
		logging.Info("loaded rates file",
			zap.String("path", cfg.RatesFile),
			zap.Int("classes", table.Len()),
		)
	}
	return table, pricing, nil
}

// Engine builds the fare engine with the default pseudo-random sampler
func Engine(cfg *config.Config) (*fare.Engine, error) {
	table, pricing, err := Rates(cfg)
	if err != nil {
		return nil, err
	}
	return fare.NewEngine(pricing, table, demand.NewUniformSampler()), nil
}
