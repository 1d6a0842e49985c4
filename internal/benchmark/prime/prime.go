// Package prime provides the candidate sequence and primality predicate
// shared by all benchmark strategies.
package prime

import (
	"iter"
	"math"
)

// Candidates returns a lazy, restartable sequence of odd integers starting
// at 3 and advancing by 2, up to (not including) bound. A bound of 3 or
// less yields an empty sequence.
func Candidates(bound int64) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for n := int64(3); n < bound; n += 2 {
			if !yield(n) {
				return
			}
		}
	}
}

// CandidateCount returns the length of the sequence Candidates(bound)
// without iterating it.
func CandidateCount(bound int64) int64 {
	if bound <= 3 {
		return 0
	}
	return (bound - 2) / 2
}

// IsPrime reports whether n is prime, by trial division.
//
// Even inputs are rejected by a parity check (2 excepted). Odd inputs are
// divided by every odd integer from 3 up to ceil(sqrt(n)); the ceiling
// guards against the float sqrt rounding short. O(sqrt n) per call, which
// is the point: the benchmark stresses scheduling overhead, not arithmetic.
func IsPrime(n int64) bool {
	if n&1 == 0 {
		return n == 2
	}
	if n < 3 {
		// 1, -1 and other odd values below 3 are not prime.
		return false
	}

	limit := int64(math.Ceil(math.Sqrt(float64(n))))
	for divisor := int64(3); divisor <= limit; divisor += 2 {
		if n%divisor == 0 {
			return false
		}
	}
	return true
}
