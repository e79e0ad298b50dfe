// Package rates - HCL rates file tests
package rates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

func writeRatesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rates.hcl")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write rates file: %v", err)
	}
	return path
}

// TestLoadFile checks a well-formed rates file replaces the table and
// overrides the demand range
func TestLoadFile(t *testing.T) {
	path := writeRatesFile(t, `
demand {
  min = 1.1
  max = 1.5
}

vehicle_class "standard" {
  multiplier = 1.0
}

vehicle_class "comfort" {
  multiplier = 1.3
}
`)

	table, demandRange, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if table.Len() != 2 {
		t.Errorf("expected 2 classes, got %d", table.Len())
	}
	got, err := table.Resolve("comfort")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(decimal.NewFromFloat(1.3)) {
		t.Errorf("comfort: expected 1.3, got %s", got)
	}

	// Canonical classes not declared in the file must be gone
	if _, ok := table.multipliers["premium"]; ok {
		t.Error("file table unexpectedly retained canonical classes")
	}

	if demandRange == nil {
		t.Fatal("expected a demand range")
	}
	if demandRange.Min != 1.1 || demandRange.Max != 1.5 {
		t.Errorf("expected demand range [1.1, 1.5], got %+v", demandRange)
	}
}

// TestLoadFileWithoutDemandBlock checks the demand block is optional
func TestLoadFileWithoutDemandBlock(t *testing.T) {
	path := writeRatesFile(t, `
vehicle_class "economy" {
  multiplier = 1.0
}
`)

	_, demandRange, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if demandRange != nil {
		t.Errorf("expected no demand range, got %+v", demandRange)
	}
}

// TestLoadFileRejectsBadInput checks malformed or invalid files fail
// at load time
func TestLoadFileRejectsBadInput(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"no classes", `
demand {
  min = 1.0
  max = 1.4
}`},
		{"non-positive multiplier", `
vehicle_class "economy" {
  multiplier = 0
}`},
		{"duplicate class", `
vehicle_class "economy" {
  multiplier = 1.0
}
vehicle_class "economy" {
  multiplier = 1.1
}`},
		{"inverted demand range", `
demand {
  min = 2.0
  max = 1.0
}
vehicle_class "economy" {
  multiplier = 1.0
}`},
		{"malformed syntax", `vehicle_class "economy" {`},
	}

	for _, tc := range cases {
		path := writeRatesFile(t, tc.content)
		if _, _, err := LoadFile(path); err == nil {
			t.Errorf("%s: expected an error", tc.name)
		}
	}
}

// TestLoadFileMissing checks a missing file is an error, not a silent
// fallback
func TestLoadFileMissing(t *testing.T) {
	if _, _, err := LoadFile(filepath.Join(t.TempDir(), "absent.hcl")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
