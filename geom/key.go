// SPDX-License-Identifier: MIT
// Package: streetgen/geom
//
// key.go — fixed-precision quantized coordinate keys.
//
// Contract:
//   - digits ∈ [0, MaxDigits]; KeyOf panics outside that range because a
//     bad precision is a programmer error, not a runtime condition.
//   - Two points whose coordinates round to the same value at the given
//     precision produce identical Keys (and identical Round results).
//   - Scaling is exact in int64 for any coordinate a street map can hold.
//
// Determinism:
//   - math.Round half-away-from-zero, independent of platform FMA behavior.

package geom

import (
	"math"
	"strconv"
)

// MaxDigits is the largest supported quantization precision, in decimal
// digits after the point. Beyond this the int64 scale factor would start
// eating into the coordinate range itself.
const MaxDigits = 9

// pow10 holds 10^i for i in [0, MaxDigits].
var pow10 = [MaxDigits + 1]float64{1, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9}

// Key is an integer-quantized coordinate pair. Unlike a rounded float pair
// it is a well-behaved comparable map key: equality is exact.
type Key struct {
	X, Y int64
}

// KeyOf quantizes p to the given number of decimal digits.
// Panics if digits is outside [0, MaxDigits].
func KeyOf(p Point, digits int) Key {
	s := scale(digits)
	return Key{
		X: int64(math.Round(p.X * s)),
		Y: int64(math.Round(p.Y * s)),
	}
}

// Point converts the key back to the rounded coordinate it represents.
func (k Key) Point(digits int) Point {
	s := scale(digits)
	return Point{X: float64(k.X) / s, Y: float64(k.Y) / s}
}

// Round returns p with both coordinates rounded to the given precision.
// Round(p, d) == KeyOf(p, d).Point(d) for every p.
func Round(p Point, digits int) Point {
	return KeyOf(p, digits).Point(digits)
}

// scale validates digits and returns 10^digits.
func scale(digits int) float64 {
	if digits < 0 || digits > MaxDigits {
		panic("geom: precision digits out of range [0," + strconv.Itoa(MaxDigits) + "]")
	}
	return pow10[digits]
}
