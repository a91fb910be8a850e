package combat

import (
	"math/rand"
	"testing"
)

func TestBasicStrategyStaysWithinJitterBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	strategy := NewBasicStrategy(rng)

	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		damage := strategy.CalculateDamage(10)
		if damage < 8 || damage > 12 {
			t.Fatalf("damage = %d, want within [8, 12]", damage)
		}
		seen[damage] = true
	}
	if len(seen) != 5 {
		t.Fatalf("observed %d distinct rolls, want all 5 offsets", len(seen))
	}
}

func TestBasicStrategyMayUndershootZero(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	strategy := NewBasicStrategy(rng)

	sawNegative := false
	for i := 0; i < 1000; i++ {
		if strategy.CalculateDamage(1) < 0 {
			sawNegative = true
			break
		}
	}
	if !sawNegative {
		t.Fatal("expected raw rolls below zero for base attack 1; mitigation, not the strategy, floors damage")
	}
}

func TestBasicStrategyIsDeterministicForSeed(t *testing.T) {
	first := NewBasicStrategy(rand.New(rand.NewSource(42)))
	second := NewBasicStrategy(rand.New(rand.NewSource(42)))

	for i := 0; i < 100; i++ {
		a := first.CalculateDamage(10)
		b := second.CalculateDamage(10)
		if a != b {
			t.Fatalf("roll %d diverged: %d vs %d", i, a, b)
		}
	}
}

func TestStrategyFuncAdapts(t *testing.T) {
	var got int
	strategy := StrategyFunc(func(baseAttack int) int {
		got = baseAttack
		return baseAttack
	})

	if damage := strategy.CalculateDamage(7); damage != 7 {
		t.Fatalf("damage = %d, want 7", damage)
	}
	if got != 7 {
		t.Fatalf("wrapped function received %d, want 7", got)
	}
}
