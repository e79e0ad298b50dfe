// Package rates - class table tests
package rates

import (
	"errors"
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
)

// TestCanonicalTable checks the default multiplier ladder
func TestCanonicalTable(t *testing.T) {
	table := Canonical()

	expected := map[string]float64{
		"economy":  1.0,
		"comfort":  1.3,
		"business": 1.8,
		"premium":  2.5,
	}
	for class, want := range expected {
		got, err := table.Resolve(class)
		if err != nil {
			t.Fatalf("class %s: unexpected error: %v", class, err)
		}
		if !got.Equal(decimal.NewFromFloat(want)) {
			t.Errorf("class %s: expected %v, got %s", class, want, got)
		}
	}
}

// TestResolveUnknownClassFallsBack checks the neutral fallback
func TestResolveUnknownClassFallsBack(t *testing.T) {
	table := Canonical()

	got, err := table.Resolve("ultra")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(decimal.NewFromInt(1)) {
		t.Errorf("expected neutral multiplier 1, got %s", got)
	}
}

// TestResolveIsCaseSensitive checks class names match exactly
func TestResolveIsCaseSensitive(t *testing.T) {
	table := Canonical()

	got, err := table.Resolve("Comfort")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(decimal.NewFromInt(1)) {
		t.Errorf("expected fallback for case-mismatched class, got %s", got)
	}
}

// TestStrictTableRejectsUnknownClass checks the strict variant
func TestStrictTableRejectsUnknownClass(t *testing.T) {
	table := Canonical().Strict()

	if _, err := table.Resolve("comfort"); err != nil {
		t.Fatalf("known class should resolve in strict mode: %v", err)
	}

	_, err := table.Resolve("ultra")
	if err == nil {
		t.Fatal("expected an error for unknown class in strict mode")
	}
	if !errors.Is(err, ErrUnknownClass) {
		t.Errorf("expected ErrUnknownClass, got %v", err)
	}
}

// TestClassesSorted checks Classes returns a stable sorted listing
func TestClassesSorted(t *testing.T) {
	got := Canonical().Classes()
	want := []string{"business", "comfort", "economy", "premium"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
