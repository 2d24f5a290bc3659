package testutil

import (
	"testing"

	"github.com/iwvelando/labor-supply/internal/optimizer"
	"github.com/iwvelando/labor-supply/internal/supply"
)

func curve(name string, wages, hours []float64) supply.Curve {
	c := supply.Curve{Name: name, Wages: wages}
	for i, wage := range wages {
		c.Responses = append(c.Responses, optimizer.Response{Wage: wage, Hours: hours[i]})
	}
	return c
}

func TestFindCurve(t *testing.T) {
	results := []supply.Curve{
		curve("Scenario A", []float64{10}, []float64{1}),
		curve("Scenario B", []float64{10}, []float64{2}),
		curve("Another Scenario", []float64{10}, []float64{3}),
	}

	tests := []struct {
		name          string
		searchName    string
		expectFound   bool
		expectedHours float64
	}{
		{name: "Find existing scenario A", searchName: "Scenario A", expectFound: true, expectedHours: 1},
		{name: "Find existing scenario B", searchName: "Scenario B", expectFound: true, expectedHours: 2},
		{name: "Find scenario with longer name", searchName: "Another Scenario", expectFound: true, expectedHours: 3},
		{name: "Search for non-existent scenario", searchName: "Non-existent", expectFound: false},
		{name: "Empty search name", searchName: "", expectFound: false},
		{name: "Case sensitive search", searchName: "scenario a", expectFound: false},
		{name: "Partial name match", searchName: "Scenario", expectFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FindCurve(results, tt.searchName)

			if tt.expectFound {
				if result == nil {
					t.Fatalf("FindCurve() expected to find curve '%s' but got nil", tt.searchName)
				}
				if result.Name != tt.searchName {
					t.Errorf("FindCurve() returned curve '%s', expected '%s'", result.Name, tt.searchName)
				}
				if result.Responses[0].Hours != tt.expectedHours {
					t.Errorf("FindCurve() returned hours %v, expected %v", result.Responses[0].Hours, tt.expectedHours)
				}
			} else if result != nil {
				t.Errorf("FindCurve() expected nil for '%s' but got '%s'", tt.searchName, result.Name)
			}
		})
	}
}

func TestFindCurveReturnsFirstMatchByPointer(t *testing.T) {
	results := []supply.Curve{
		curve("Duplicate", []float64{10}, []float64{1}),
		curve("Duplicate", []float64{10}, []float64{2}),
	}

	found := FindCurve(results, "Duplicate")
	if found != &results[0] {
		t.Fatalf("FindCurve() should return a pointer to the first matching element")
	}
	if FindCurve(nil, "Duplicate") != nil {
		t.Fatalf("FindCurve() with nil results should return nil")
	}
}

func TestHoursAt(t *testing.T) {
	c := curve("A", []float64{10, 20, 30}, []float64{1, 2, 3})

	tests := []struct {
		wage     float64
		expected float64
	}{
		{wage: 10, expected: 1},
		{wage: 16, expected: 2},
		{wage: 100, expected: 3},
		{wage: 0, expected: 1},
	}
	for _, tt := range tests {
		got, ok := HoursAt(&c, tt.wage)
		if !ok || got != tt.expected {
			t.Errorf("HoursAt(%v) = %v, %v; expected %v", tt.wage, got, ok, tt.expected)
		}
	}

	if _, ok := HoursAt(nil, 10); ok {
		t.Errorf("HoursAt(nil) should report false")
	}
}
