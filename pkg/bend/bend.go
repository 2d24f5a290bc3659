// Package bend locates the stretches of a labor supply curve where optimal
// work hours fall as the wage rises.
package bend

import (
	"fmt"
)

// Scheme selects how the slope of hours with respect to wage is estimated.
type Scheme int

const (
	// ForwardScheme uses one slope per grid segment: (h[i+1]-h[i])/(w[i+1]-w[i]).
	ForwardScheme Scheme = iota
	// CenteredScheme uses second order centered differences at interior
	// points and one-sided differences at the two edges.
	CenteredScheme
)

// String implements fmt.Stringer.
func (s Scheme) String() string {
	switch s {
	case ForwardScheme:
		return "forward"
	case CenteredScheme:
		return "centered"
	default:
		return fmt.Sprintf("scheme(%d)", int(s))
	}
}

// Interval is a maximal run of the wage axis over which hours decrease.
type Interval struct {
	StartWage  float64 `json:"startWage" yaml:"startWage"`
	EndWage    float64 `json:"endWage" yaml:"endWage"`
	StartIndex int     `json:"startIndex" yaml:"startIndex"`
	EndIndex   int     `json:"endIndex" yaml:"endIndex"`
}

func checkInputs(wages, hours []float64) error {
	if len(wages) != len(hours) {
		return fmt.Errorf("wage grid has %d points but hours has %d", len(wages), len(hours))
	}
	if len(wages) < 2 {
		return fmt.Errorf("slope estimation requires at least 2 points, got %d", len(wages))
	}
	for i := 1; i < len(wages); i++ {
		if !(wages[i] > wages[i-1]) {
			return fmt.Errorf("wage grid is not strictly increasing at index %d (%g after %g)", i, wages[i], wages[i-1])
		}
	}
	return nil
}

// Forward returns the n-1 segment slopes of hours over wages.
func Forward(wages, hours []float64) ([]float64, error) {
	if err := checkInputs(wages, hours); err != nil {
		return nil, err
	}
	slopes := make([]float64, len(wages)-1)
	for i := range slopes {
		slopes[i] = (hours[i+1] - hours[i]) / (wages[i+1] - wages[i])
	}
	return slopes, nil
}

// Centered returns one slope per grid point. Interior points use the second
// order formula for uneven spacing; edges fall back to one-sided differences.
func Centered(wages, hours []float64) ([]float64, error) {
	if err := checkInputs(wages, hours); err != nil {
		return nil, err
	}
	n := len(wages)
	slopes := make([]float64, n)
	slopes[0] = (hours[1] - hours[0]) / (wages[1] - wages[0])
	slopes[n-1] = (hours[n-1] - hours[n-2]) / (wages[n-1] - wages[n-2])
	for i := 1; i < n-1; i++ {
		hd := wages[i] - wages[i-1]
		hs := wages[i+1] - wages[i]
		slopes[i] = (hd*hd*hours[i+1] - hs*hs*hours[i-1] + (hs*hs-hd*hd)*hours[i]) / (hs * hd * (hd + hs))
	}
	return slopes, nil
}

// Slopes dispatches to the estimator for the scheme.
func Slopes(scheme Scheme, wages, hours []float64) ([]float64, error) {
	switch scheme {
	case ForwardScheme:
		return Forward(wages, hours)
	case CenteredScheme:
		return Centered(wages, hours)
	default:
		return nil, fmt.Errorf("unsupported slope scheme %s", scheme)
	}
}

// Classify partitions the wage axis into backward-bending intervals using
// forward segment slopes.
func Classify(wages, hours []float64) ([]Interval, error) {
	return ClassifyWith(ForwardScheme, wages, hours)
}

// ClassifyWith partitions the wage axis using the given slope scheme.
func ClassifyWith(scheme Scheme, wages, hours []float64) ([]Interval, error) {
	slopes, err := Slopes(scheme, wages, hours)
	if err != nil {
		return nil, err
	}
	return Runs(wages, slopes), nil
}

// Runs scans slopes left to right and emits one interval per maximal run of
// negative slopes. slopes[i] is attributed to wages[i]. A zero slope ends a
// run. A run still open after the last slope closes at the last wage.
func Runs(wages, slopes []float64) []Interval {
	var intervals []Interval
	inside := false
	start := 0
	for i, slope := range slopes {
		switch {
		case !inside && slope < 0:
			inside = true
			start = i
		case inside && slope >= 0:
			inside = false
			intervals = append(intervals, Interval{
				StartWage:  wages[start],
				EndWage:    wages[i],
				StartIndex: start,
				EndIndex:   i,
			})
		}
	}
	if inside {
		last := len(wages) - 1
		intervals = append(intervals, Interval{
			StartWage:  wages[start],
			EndWage:    wages[last],
			StartIndex: start,
			EndIndex:   last,
		})
	}
	return intervals
}
