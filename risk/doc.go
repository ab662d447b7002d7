// SPDX-License-Identifier: MIT
//
// Package risk implements the exponential-survival failure model used to
// report the probability that a flight segment (or a whole route) suffers a
// failure.
//
// A segment flown for t hours at a constant hazard rate λ (failures per hour)
// fails with probability
//
//	P(t) = 1 - e^(-λt)
//
// Independent segments compose through their survival probabilities:
//
//	P(route) = 1 - Π(1 - P_i)
//
// The package is pure and stateless. It is not used by the route search,
// which keeps its own additive approximation (see dijkstra.Result); callers
// use it to present a probabilistic figure next to the additive one.
//
// Errors:
//
//	ErrBadRate     - hazard rate negative, NaN or infinite.
//	ErrBadDuration - elapsed time negative, NaN or infinite.
package risk
