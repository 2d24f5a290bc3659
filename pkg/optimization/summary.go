// Package optimization provides shared data structures for optimization results.
package optimization

// Summary captures the headline numbers of one supply curve.
type Summary struct {
	Strategy        string  `json:"strategy" yaml:"strategy"`
	Points          int     `json:"points" yaml:"points"`
	FirstHours      float64 `json:"firstHours" yaml:"firstHours"`
	LastHours       float64 `json:"lastHours" yaml:"lastHours"`
	Change          float64 `json:"change" yaml:"change"`
	MinHours        float64 `json:"minHours" yaml:"minHours"`
	MaxHours        float64 `json:"maxHours" yaml:"maxHours"`
	PeakWage        float64 `json:"peakWage" yaml:"peakWage"`
	PeakIndex       int     `json:"peakIndex" yaml:"peakIndex"`
	InteriorPeak    bool    `json:"interiorPeak" yaml:"interiorPeak"`
	Bends           int     `json:"bends" yaml:"bends"`
	NonConverged    int     `json:"nonConverged" yaml:"nonConverged"`
	TotalIterations int     `json:"totalIterations" yaml:"totalIterations"`
}

// Converged reports whether every point of the curve converged.
func (s Summary) Converged() bool {
	return s.NonConverged == 0
}

// Summarize builds a Summary from parallel wage, hours, convergence and
// iteration slices. The peak is the first wage at which hours are largest; it
// is interior when it sits strictly inside the grid and strictly above both
// end points.
func Summarize(strategy string, wages, hours []float64, converged []bool, iterations []int, bends int) Summary {
	summary := Summary{
		Strategy: strategy,
		Points:   len(hours),
		Bends:    bends,
	}
	for i, ok := range converged {
		if !ok {
			summary.NonConverged++
		}
		if i < len(iterations) {
			summary.TotalIterations += iterations[i]
		}
	}
	if len(hours) == 0 || len(wages) != len(hours) {
		return summary
	}

	last := len(hours) - 1
	summary.FirstHours = hours[0]
	summary.LastHours = hours[last]
	summary.Change = hours[last] - hours[0]
	summary.MinHours = hours[0]
	summary.MaxHours = hours[0]
	for i, h := range hours {
		if h < summary.MinHours {
			summary.MinHours = h
		}
		if h > summary.MaxHours {
			summary.MaxHours = h
			summary.PeakIndex = i
		}
	}
	summary.PeakWage = wages[summary.PeakIndex]
	summary.InteriorPeak = summary.PeakIndex > 0 && summary.PeakIndex < last &&
		summary.MaxHours > hours[0] && summary.MaxHours > hours[last]
	return summary
}
