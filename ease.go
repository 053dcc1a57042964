package pixellab

import (
	"fmt"

	"github.com/tanema/gween/ease"
)

// EaseCurve selects the remapping curve applied by an easing node.
type EaseCurve uint8

const (
	EaseCubicIn    EaseCurve = iota // accelerate from rest
	EaseCubicOut                    // decelerate to rest
	EaseElasticIn                   // spring wind-up, dips below zero
	EaseElasticOut                  // spring settle, overshoots one
)

// curveFuncs maps each curve to its gween implementation.
var curveFuncs = [...]ease.TweenFunc{
	EaseCubicIn:    ease.InCubic,
	EaseCubicOut:   ease.OutCubic,
	EaseElasticIn:  ease.InElastic,
	EaseElasticOut: ease.OutElastic,
}

// curveNames holds the document tag per curve.
var curveNames = [...]string{
	EaseCubicIn:    "cubic-in",
	EaseCubicOut:   "cubic-out",
	EaseElasticIn:  "elastic-in",
	EaseElasticOut: "elastic-out",
}

// Apply remaps k through the curve.
// Endpoints are exact: Apply(0) == 0 and Apply(1) == 1 for every curve.
func (c EaseCurve) Apply(k float64) float64 {
	if k == 0 || k == 1 {
		return k
	}
	if int(c) >= len(curveFuncs) {
		return k
	}
	return float64(curveFuncs[c](float32(k), 0, 1, 1))
}

// String returns the curve's document tag.
func (c EaseCurve) String() string {
	if int(c) < len(curveNames) {
		return curveNames[c]
	}
	return fmt.Sprintf("EaseCurve(%d)", uint8(c))
}

// ParseEaseCurve maps a document tag back to its curve.
func ParseEaseCurve(s string) (EaseCurve, error) {
	for i, name := range curveNames {
		if name == s {
			return EaseCurve(i), nil
		}
	}
	return 0, fmt.Errorf("pixellab: unknown ease curve %q", s)
}
