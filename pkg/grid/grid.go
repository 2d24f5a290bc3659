// Package grid builds the ordered wage sequences a supply curve is swept over.
package grid

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrTooFewPoints is returned when a grid would hold fewer than two wages.
	ErrTooFewPoints = errors.New("wage grid requires at least 2 points")
	// ErrNonIncreasing is returned when the upper bound does not exceed the lower bound.
	ErrNonIncreasing = errors.New("wage grid bounds must be strictly increasing")
	// ErrNonPositiveWage is returned when the grid would contain a wage <= 0.
	ErrNonPositiveWage = errors.New("wage grid must contain only positive wages")
	// ErrAmbiguousSpacing is returned when both a count and a step are given.
	ErrAmbiguousSpacing = errors.New("wage grid accepts either count or step, not both")
)

// Spec describes a wage grid. Exactly one of Count or Step is used.
type Spec struct {
	Min   float64
	Max   float64
	Count int
	Step  float64
}

// Validate checks the spec without building it.
func (s Spec) Validate() error {
	if math.IsNaN(s.Min) || math.IsNaN(s.Max) || math.IsInf(s.Min, 0) || math.IsInf(s.Max, 0) {
		return fmt.Errorf("wage grid bounds must be finite: %w", ErrNonIncreasing)
	}
	if s.Min <= 0 {
		return fmt.Errorf("minimum wage %g: %w", s.Min, ErrNonPositiveWage)
	}
	if s.Max <= s.Min {
		return fmt.Errorf("minimum %g, maximum %g: %w", s.Min, s.Max, ErrNonIncreasing)
	}
	if s.Count != 0 && s.Step != 0 {
		return ErrAmbiguousSpacing
	}
	if s.Step != 0 {
		if s.Step < 0 || math.IsNaN(s.Step) {
			return fmt.Errorf("step %g: %w", s.Step, ErrNonIncreasing)
		}
		return nil
	}
	if s.Count < 2 {
		return fmt.Errorf("count %d: %w", s.Count, ErrTooFewPoints)
	}
	return nil
}

// Build returns the wages described by the spec.
func Build(s Spec) ([]float64, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.Step != 0 {
		return Arithmetic(s.Min, s.Max, s.Step)
	}
	return Linear(s.Min, s.Max, s.Count)
}

// Linear returns count evenly spaced wages from min to max inclusive.
func Linear(min, max float64, count int) ([]float64, error) {
	if count < 2 {
		return nil, fmt.Errorf("count %d: %w", count, ErrTooFewPoints)
	}
	if max <= min {
		return nil, fmt.Errorf("minimum %g, maximum %g: %w", min, max, ErrNonIncreasing)
	}
	wages := make([]float64, count)
	step := (max - min) / float64(count-1)
	for i := range wages {
		wages[i] = min + float64(i)*step
	}
	wages[count-1] = max
	return wages, nil
}

// Arithmetic returns min, min+step, ... up to and including max when max lies
// on the lattice within a small relative tolerance.
func Arithmetic(min, max, step float64) ([]float64, error) {
	if step <= 0 {
		return nil, fmt.Errorf("step %g: %w", step, ErrNonIncreasing)
	}
	if max <= min {
		return nil, fmt.Errorf("minimum %g, maximum %g: %w", min, max, ErrNonIncreasing)
	}
	n := int(math.Floor((max-min)/step+1e-9)) + 1
	if n < 2 {
		return nil, fmt.Errorf("step %g over [%g, %g]: %w", step, min, max, ErrTooFewPoints)
	}
	wages := make([]float64, n)
	for i := range wages {
		wages[i] = min + float64(i)*step
	}
	return wages, nil
}

// Clone returns an independent copy so callers cannot mutate a shared grid.
func Clone(wages []float64) []float64 {
	return append([]float64(nil), wages...)
}

// IsStrictlyIncreasing reports whether every wage exceeds its predecessor.
func IsStrictlyIncreasing(wages []float64) bool {
	for i := 1; i < len(wages); i++ {
		if !(wages[i] > wages[i-1]) {
			return false
		}
	}
	return true
}
