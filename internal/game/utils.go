package game

import "time"

// defaultSeed seeds the production shuffle RNG from the wall clock, the
// same pattern the teacher's deck package uses for its default
// constructor. Deterministic tests inject their own *rand.Rand instead
// via NewTableWithRand.
func defaultSeed() int64 {
	return time.Now().UnixNano()
}
