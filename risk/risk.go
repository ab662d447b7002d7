// SPDX-License-Identifier: MIT

package risk

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrBadRate indicates a hazard rate outside [0, +Inf).
	ErrBadRate = errors.New("risk: hazard rate must be finite and non-negative")

	// ErrBadDuration indicates an elapsed time outside [0, +Inf).
	ErrBadDuration = errors.New("risk: duration must be finite and non-negative")
)

// Segment is one leg of a route as seen by the failure model.
type Segment struct {
	// Rate is the hazard rate in failures per hour.
	Rate float64 `json:"rate"`

	// Hours is the time spent on the segment.
	Hours float64 `json:"hours"`
}

// FailureProbability returns 1 - e^(-rate·hours).
//
// For finite non-negative input the result lies in [0, 1). Input outside that
// domain is not checked; use FailureProbabilityE when the values come from an
// untrusted source.
func FailureProbability(rate, hours float64) float64 {
	// -expm1(-x) keeps precision for the tiny exponents typical of λt.
	return -math.Expm1(-rate * hours)
}

// FailureProbabilityE is FailureProbability with domain validation.
func FailureProbabilityE(rate, hours float64) (float64, error) {
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate < 0 {
		return 0, fmt.Errorf("%w: %v", ErrBadRate, rate)
	}
	if math.IsNaN(hours) || math.IsInf(hours, 0) || hours < 0 {
		return 0, fmt.Errorf("%w: %v", ErrBadDuration, hours)
	}

	return FailureProbability(rate, hours), nil
}

// Compose combines independent failure probabilities: 1 - Π(1 - p_i).
// Compose() is 0.
func Compose(p ...float64) float64 {
	survival := 1.0
	for _, pi := range p {
		survival *= 1 - pi
	}

	return 1 - survival
}

// PathProbability returns the composed failure probability of segments.
// The first invalid segment aborts with its index in the error.
func PathProbability(segments []Segment) (float64, error) {
	ps := make([]float64, 0, len(segments))
	for i, s := range segments {
		p, err := FailureProbabilityE(s.Rate, s.Hours)
		if err != nil {
			return 0, fmt.Errorf("segment #%d: %w", i, err)
		}
		ps = append(ps, p)
	}

	return Compose(ps...), nil
}
