package combat

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/louisbranch/emberclash.quest/internal/event"
)

// ErrUnknownEnemyKind reports a kind outside the closed enumeration.
// Kinds are always drawn from the enumeration upstream, so hitting this
// is a programming-contract violation, not a user-facing error.
var ErrUnknownEnemyKind = errors.New("unknown enemy kind")

// EnemyKind enumerates the built-in enemy presets.
type EnemyKind int

const (
	// EnemyKindUnspecified is the zero value and not a valid preset.
	EnemyKindUnspecified EnemyKind = iota
	// EnemyKindGoblin is a weak early opponent.
	EnemyKindGoblin
	// EnemyKindSoldier is an even match for a fresh player.
	EnemyKindSoldier
	// EnemyKindSkeleton is fragile but hits hard.
	EnemyKindSkeleton
	// EnemyKindDragon is the toughest preset.
	EnemyKindDragon
)

// String returns the display name of the enemy kind.
func (k EnemyKind) String() string {
	switch k {
	case EnemyKindGoblin:
		return "Goblin"
	case EnemyKindSoldier:
		return "Soldier"
	case EnemyKindSkeleton:
		return "Skeleton"
	case EnemyKindDragon:
		return "Dragon"
	default:
		return "Unknown"
	}
}

// EnemyKinds returns every valid preset in stable order.
func EnemyKinds() []EnemyKind {
	return []EnemyKind{EnemyKindGoblin, EnemyKindSoldier, EnemyKindSkeleton, EnemyKindDragon}
}

// ParseEnemyKind maps a kind name back to its enum value. Matching is
// case-insensitive and ignores surrounding space.
func ParseEnemyKind(value string) (EnemyKind, error) {
	name := strings.TrimSpace(value)
	for _, kind := range EnemyKinds() {
		if strings.EqualFold(name, kind.String()) {
			return kind, nil
		}
	}
	return EnemyKindUnspecified, fmt.Errorf("%w: %q", ErrUnknownEnemyKind, value)
}

// RandomEnemyKind draws a kind uniformly from the closed enumeration.
func RandomEnemyKind(rng *rand.Rand) EnemyKind {
	kinds := EnemyKinds()
	return kinds[rng.Intn(len(kinds))]
}

type preset struct {
	maxHealth int
	attack    int
	defense   int
}

var playerPreset = preset{maxHealth: 100, attack: 10, defense: 5}

var enemyPresets = map[EnemyKind]preset{
	EnemyKindGoblin:   {maxHealth: 40, attack: 6, defense: 3},
	EnemyKindSoldier:  {maxHealth: 60, attack: 8, defense: 5},
	EnemyKindSkeleton: {maxHealth: 30, attack: 10, defense: 2},
	EnemyKindDragon:   {maxHealth: 80, attack: 20, defense: 10},
}

// NewPlayer builds the user combatant with the fixed player preset.
// Construction is pure: no randomness, no side effects beyond the
// character itself.
func NewPlayer(name string, strategy AttackStrategy, bus *event.Bus) (*Character, error) {
	stats, err := NewStats(playerPreset.maxHealth, playerPreset.attack, playerPreset.defense)
	if err != nil {
		return nil, fmt.Errorf("build player stats: %w", err)
	}
	return NewCharacter(CharacterConfig{
		Name:     name,
		Role:     RolePlayer,
		Stats:    stats,
		Strategy: strategy,
		Bus:      bus,
	})
}

// NewEnemy builds an opposing combatant from its kind's preset.
func NewEnemy(kind EnemyKind, strategy AttackStrategy, bus *event.Bus) (*Character, error) {
	p, ok := enemyPresets[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEnemyKind, int(kind))
	}
	stats, err := NewStats(p.maxHealth, p.attack, p.defense)
	if err != nil {
		return nil, fmt.Errorf("build %s stats: %w", kind, err)
	}
	return NewCharacter(CharacterConfig{
		Name:     kind.String(),
		Role:     RoleEnemy,
		Stats:    stats,
		Strategy: strategy,
		Bus:      bus,
	})
}
