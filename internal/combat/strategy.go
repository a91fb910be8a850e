package combat

import "math/rand"

// AttackStrategy computes a raw damage roll from a base attack value.
// The roll is pre-mitigation: it may undershoot the target's defense or
// go negative, and Stats.TakeDamage floors the net result at zero.
// Strategies hold no per-character state and may be shared.
type AttackStrategy interface {
	CalculateDamage(baseAttack int) int
}

// StrategyFunc adapts a function to the AttackStrategy interface.
type StrategyFunc func(baseAttack int) int

// CalculateDamage calls the wrapped function.
func (f StrategyFunc) CalculateDamage(baseAttack int) int { return f(baseAttack) }

// basicNoise is the half-width of the basic strategy's damage jitter.
const basicNoise = 2

// BasicStrategy perturbs the base attack by a uniform offset in
// [-basicNoise, basicNoise].
type BasicStrategy struct {
	rng *rand.Rand
}

var _ AttackStrategy = (*BasicStrategy)(nil)

// NewBasicStrategy returns a strategy drawing its jitter from rng.
func NewBasicStrategy(rng *rand.Rand) *BasicStrategy {
	return &BasicStrategy{rng: rng}
}

// CalculateDamage returns baseAttack plus a uniform offset in [-2, 2].
func (s *BasicStrategy) CalculateDamage(baseAttack int) int {
	return baseAttack + s.rng.Intn(2*basicNoise+1) - basicNoise
}
