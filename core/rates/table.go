// Package rates - vehicle class rate table
// The table maps a vehicle class name to its price multiplier. Class
// names are matched case-sensitively. Unknown classes resolve to the
// neutral multiplier 1.0 unless the table was built in strict mode.
package rates

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// ErrUnknownClass is returned by strict tables for classes they do not know
var ErrUnknownClass = fmt.Errorf("unknown vehicle class")

// neutralMultiplier is applied when a class has no configured rate
var neutralMultiplier = decimal.NewFromInt(1)

// Table maps vehicle class names to price multipliers
type Table struct {
	multipliers map[string]decimal.Decimal
	strict      bool
}

// Canonical returns the default multiplier table
func Canonical() *Table {
	return New(map[string]float64{
		"economy":  1.0,
		"comfort":  1.3,
		"business": 1.8,
		"premium":  2.5,
	})
}

// New builds a table from class name -> multiplier
func New(multipliers map[string]float64) *Table {
	t := &Table{multipliers: make(map[string]decimal.Decimal, len(multipliers))}
	for name, m := range multipliers {
		t.multipliers[name] = decimal.NewFromFloat(m)
	}
	return t
}

// Strict returns a copy of the table that rejects unknown classes
// instead of falling back to the neutral multiplier
func (t *Table) Strict() *Table {
	return &Table{multipliers: t.multipliers, strict: true}
}

// Resolve returns the multiplier for a vehicle class. Unknown classes
// yield the neutral multiplier 1.0, or ErrUnknownClass in strict mode.
func (t *Table) Resolve(class string) (decimal.Decimal, error) {
	if m, ok := t.multipliers[class]; ok {
		return m, nil
	}
	if t.strict {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrUnknownClass, class)
	}
	return neutralMultiplier, nil
}

// Classes returns the known class names in sorted order
func (t *Table) Classes() []string {
	names := make([]string, 0, len(t.multipliers))
	for name := range t.multipliers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of configured classes
func (t *Table) Len() int {
	return len(t.multipliers)
}
