// Package utility evaluates preference scores over income and leisure for a
// worker who splits a fixed time budget between labor and leisure.
package utility

import (
	"fmt"
	"math"
	"strings"

	"github.com/iwvelando/labor-supply/pkg/constants"
	"github.com/iwvelando/labor-supply/pkg/mathutil"
)

// Kind selects the functional form of the score.
type Kind string

const (
	// AdditiveLog scores ln(income) + leisureWeight*ln(leisure).
	AdditiveLog Kind = "additive-log"
	// LinearProduct scores income*leisure.
	LinearProduct Kind = "linear-product"
	// CobbDouglas scores income^alpha * leisure^beta.
	CobbDouglas Kind = "cobb-douglas"
	// CES scores (alpha*income^rho + beta*leisure^rho)^(1/rho).
	CES Kind = "ces"
)

// Kinds lists every supported form.
var Kinds = []Kind{AdditiveLog, LinearProduct, CobbDouglas, CES}

// ParseKind returns the canonical Kind for a user supplied name.
func ParseKind(value string) (Kind, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	normalized = strings.NewReplacer("_", "-", " ", "-").Replace(normalized)
	switch normalized {
	case "additive-log", "additivelog", "log", "ln":
		return AdditiveLog, nil
	case "linear-product", "linearproduct", "product", "linear":
		return LinearProduct, nil
	case "cobb-douglas", "cobbdouglas", "cd":
		return CobbDouglas, nil
	case "ces", "constant-elasticity":
		return CES, nil
	default:
		return "", fmt.Errorf("utility kind %q is not supported", value)
	}
}

// Params holds the preference constants for one scenario. Values are passed
// by value and never mutated once built.
type Params struct {
	Kind          Kind
	TotalTime     float64
	BaseIncome    float64
	LeisureWeight float64
	Alpha         float64
	Beta          float64
	Rho           float64
}

// Validate reports parameter combinations the evaluator cannot score.
func (p Params) Validate() error {
	if p.TotalTime <= 2*constants.InteriorEpsilon {
		return fmt.Errorf("total time %.4f must be positive", p.TotalTime)
	}
	switch p.Kind {
	case AdditiveLog:
		if p.LeisureWeight <= 0 {
			return fmt.Errorf("leisure weight %.4f must be positive", p.LeisureWeight)
		}
	case LinearProduct:
	case CobbDouglas:
		if p.Alpha <= 0 || p.Beta <= 0 {
			return fmt.Errorf("cobb-douglas exponents alpha=%.4f beta=%.4f must be positive", p.Alpha, p.Beta)
		}
	case CES:
		if p.Alpha <= 0 || p.Beta <= 0 {
			return fmt.Errorf("ces shares alpha=%.4f beta=%.4f must be positive", p.Alpha, p.Beta)
		}
		if p.Rho >= 1 || p.Rho == 0 {
			return fmt.Errorf("ces rho %.4f must be below 1 and non-zero", p.Rho)
		}
	default:
		return fmt.Errorf("utility kind %q is not supported", p.Kind)
	}
	return nil
}

// ClampHours moves hours into the interior of the feasible interval so that
// neither leisure nor earned income degenerates to zero.
func ClampHours(hours float64, p Params) float64 {
	lo := constants.InteriorEpsilon
	hi := p.TotalTime - constants.InteriorEpsilon
	if math.IsNaN(hours) {
		return lo
	}
	return mathutil.Clamp(hours, lo, hi)
}

// Income is base income plus wage times hours.
func Income(hours, wage float64, p Params) float64 {
	return p.BaseIncome + wage*hours
}

// Leisure is the part of the time budget not spent working.
func Leisure(hours float64, p Params) float64 {
	return p.TotalTime - hours
}

// Evaluate scores a work-hours choice at the given wage. It never returns NaN:
// out of range hours are clamped and undefined scores become the sentinel.
func Evaluate(hours, wage float64, p Params) float64 {
	h := ClampHours(hours, p)
	income := Income(h, wage, p)
	leisure := Leisure(h, p)

	var score float64
	switch p.Kind {
	case LinearProduct:
		score = income * leisure
	case AdditiveLog:
		if income <= 0 || leisure <= 0 {
			return constants.UtilitySentinel
		}
		score = math.Log(income) + p.LeisureWeight*math.Log(leisure)
	case CobbDouglas:
		if income <= 0 || leisure <= 0 {
			return constants.UtilitySentinel
		}
		score = math.Pow(income, p.Alpha) * math.Pow(leisure, p.Beta)
	case CES:
		if income <= 0 || leisure <= 0 {
			return constants.UtilitySentinel
		}
		inner := p.Alpha*math.Pow(income, p.Rho) + p.Beta*math.Pow(leisure, p.Rho)
		score = math.Pow(inner, 1/p.Rho)
	default:
		return constants.UtilitySentinel
	}

	if !mathutil.IsFinite(score) {
		return constants.UtilitySentinel
	}
	return score
}

// ClosedForm returns the exact maximizing hours for forms with a known
// interior solution, clamped to [0, TotalTime].
func ClosedForm(wage float64, p Params) (float64, bool) {
	if wage <= 0 {
		return 0, false
	}
	t, m := p.TotalTime, p.BaseIncome
	var hours float64
	switch p.Kind {
	case LinearProduct:
		hours = t/2 - m/(2*wage)
	case AdditiveLog:
		a := p.LeisureWeight
		hours = (wage*t - a*m) / (wage * (1 + a))
	case CobbDouglas:
		hours = (p.Alpha*wage*t - p.Beta*m) / (wage * (p.Alpha + p.Beta))
	default:
		return 0, false
	}
	return mathutil.Clamp(hours, 0, t), true
}

// ClosedFormSlope returns d(hours)/d(wage) of the closed form solution. The
// slope is zero where the solution sits on a bound.
func ClosedFormSlope(wage float64, p Params) (float64, bool) {
	hours, ok := ClosedForm(wage, p)
	if !ok {
		return 0, false
	}
	if hours <= 0 || hours >= p.TotalTime {
		return 0, true
	}
	m := p.BaseIncome
	w2 := wage * wage
	switch p.Kind {
	case LinearProduct:
		return m / (2 * w2), true
	case AdditiveLog:
		a := p.LeisureWeight
		return a * m / (w2 * (1 + a)), true
	case CobbDouglas:
		return p.Beta * m / (w2 * (p.Alpha + p.Beta)), true
	}
	return 0, false
}

// HasClosedForm reports whether ClosedForm can solve the kind.
func HasClosedForm(kind Kind) bool {
	switch kind {
	case LinearProduct, AdditiveLog, CobbDouglas:
		return true
	default:
		return false
	}
}
