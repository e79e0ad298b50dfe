// Package rates - HCL rates file loading
package rates

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclsimple"
)

// DemandRange is the configured surge coefficient range
type DemandRange struct {
	Min float64
	Max float64
}

// ratesFile is the HCL schema of a rates file:
//
//	demand {
//	  min = 1.0
//	  max = 1.4
//	}
//
//	vehicle_class "comfort" {
//	  multiplier = 1.3
//	}
type ratesFile struct {
	Demand  *demandBlock `hcl:"demand,block"`
	Classes []classBlock `hcl:"vehicle_class,block"`
}

type demandBlock struct {
	Min float64 `hcl:"min"`
	Max float64 `hcl:"max"`
}

type classBlock struct {
	Name       string  `hcl:"name,label"`
	Multiplier float64 `hcl:"multiplier"`
}

// LoadFile parses an HCL rates file. Declared vehicle classes replace
// the canonical table entirely; the demand block is optional and, when
// present, overrides the environment-supplied coefficient range.
// Failures here are configuration errors and must abort startup.
func LoadFile(path string) (*Table, *DemandRange, error) {
	var file ratesFile
	if err := hclsimple.DecodeFile(path, nil, &file); err != nil {
		return nil, nil, fmt.Errorf("failed to parse rates file %s: %w", path, err)
	}

	if len(file.Classes) == 0 {
		return nil, nil, fmt.Errorf("rates file %s declares no vehicle classes", path)
	}

	multipliers := make(map[string]float64, len(file.Classes))
	for _, c := range file.Classes {
		if c.Name == "" {
			return nil, nil, fmt.Errorf("rates file %s: vehicle_class with empty name", path)
		}
		if c.Multiplier <= 0 {
			return nil, nil, fmt.Errorf("rates file %s: class %q multiplier must be positive, got %v", path, c.Name, c.Multiplier)
		}
		if _, dup := multipliers[c.Name]; dup {
			return nil, nil, fmt.Errorf("rates file %s: class %q declared twice", path, c.Name)
		}
		multipliers[c.Name] = c.Multiplier
	}

	var dr *DemandRange
	if file.Demand != nil {
		if file.Demand.Min <= 0 || file.Demand.Max < file.Demand.Min {
			return nil, nil, fmt.Errorf("rates file %s: demand range must satisfy 0 < min <= max", path)
		}
		dr = &DemandRange{Min: file.Demand.Min, Max: file.Demand.Max}
	}

	return New(multipliers), dr, nil
}
