package common

import "math"

// Lerp interpolates linearly from a to b by t.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// MoveToward steps v toward target by at most delta without passing it.
func MoveToward(v, target, delta float64) float64 {
	if math.Abs(target-v) <= delta {
		return target
	}
	if target > v {
		return v + delta
	}
	return v - delta
}
