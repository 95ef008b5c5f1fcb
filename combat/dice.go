package combat

import (
	"math"
	"math/rand"
	"time"
)

const (
	dieFaces = 6
	// a die showing this value or higher is a successful hit
	hitThreshold = 5
)

// Source is the randomness capability the engine rolls with.
// *rand.Rand satisfies it.
type Source interface {
	// Intn returns a random int in [0, n). n > 0.
	Intn(n int) int
}

// NewSource returns a seeded Source. A zero seed uses the current time.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// RollDice rolls max(modifier, 1) six-sided dice.
func RollDice(rng Source, modifier int) []int {
	n := modifier
	if n < 1 {
		n = 1
	}
	rolls := make([]int, n)
	for i := range rolls {
		rolls[i] = rng.Intn(dieFaces) + 1
	}
	return rolls
}

// IsAttackSuccessful reports whether any die shows 5 or 6.
func IsAttackSuccessful(rolls []int) bool {
	for _, roll := range rolls {
		if roll >= hitThreshold {
			return true
		}
	}
	return false
}

// RollDamage draws uniformly from the inclusive range. The range is assumed
// valid: 0 <= Low < High.
func RollDamage(rng Source, d DamageRange) int {
	span := d.High - d.Low
	if span < math.MaxInt {
		return d.Low + rng.Intn(span+1)
	}
	// [0, MaxInt] holds MaxInt+1 values: pick a half, then a value in it
	half := math.MaxInt/2 + 1
	return d.Low + rng.Intn(2)*half + rng.Intn(half)
}
