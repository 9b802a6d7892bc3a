package physics

// Rand is the source of randomness used by spawning code.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Random returns a value in [0, max).
func Random(r Rand, max float64) float64 {
	return r.Float64() * max
}

// RandomRange returns a value in [min, max).
func RandomRange(r Rand, min, max float64) float64 {
	return min + r.Float64()*(max-min)
}
