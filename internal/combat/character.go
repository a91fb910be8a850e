package combat

import (
	"errors"
	"strings"

	"github.com/louisbranch/emberclash.quest/internal/event"
)

// Character construction failures.
var (
	ErrEmptyName       = errors.New("character name is required")
	ErrMissingStats    = errors.New("character stats are required")
	ErrMissingStrategy = errors.New("attack strategy is required")
	ErrMissingEventBus = errors.New("event bus is required")
)

// Role distinguishes the two combatant variants. Behavior never differs
// between them; the tag exists for presentation and bookkeeping.
type Role int

const (
	// RoleUnspecified is the zero value and never set on a built character.
	RoleUnspecified Role = iota
	// RolePlayer marks the user-controlled combatant.
	RolePlayer
	// RoleEnemy marks the opposing combatant.
	RoleEnemy
)

// String returns the lowercase role name.
func (r Role) String() string {
	switch r {
	case RolePlayer:
		return "player"
	case RoleEnemy:
		return "enemy"
	default:
		return "unspecified"
	}
}

// CharacterConfig carries the inputs to build a combatant.
type CharacterConfig struct {
	Name     string
	Role     Role
	Stats    *Stats
	Strategy AttackStrategy
	Bus      *event.Bus
}

// Character is a combatant: a named set of stats plus the strategy used
// to roll its attacks. A character exclusively owns its stats.
type Character struct {
	name     string
	role     Role
	stats    *Stats
	strategy AttackStrategy
	bus      *event.Bus

	// deathAnnounced keeps CharacterDied from re-firing when an already
	// dead character takes further damage.
	deathAnnounced bool
}

// NewCharacter builds a combatant. The name is trimmed and must be
// non-empty; stats, strategy, and bus are required.
func NewCharacter(cfg CharacterConfig) (*Character, error) {
	name := strings.TrimSpace(cfg.Name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if cfg.Stats == nil {
		return nil, ErrMissingStats
	}
	if cfg.Strategy == nil {
		return nil, ErrMissingStrategy
	}
	if cfg.Bus == nil {
		return nil, ErrMissingEventBus
	}
	return &Character{
		name:     name,
		role:     cfg.Role,
		stats:    cfg.Stats,
		strategy: cfg.Strategy,
		bus:      cfg.Bus,
	}, nil
}

// Name returns the display name.
func (c *Character) Name() string { return c.name }

// Role returns the combatant role tag.
func (c *Character) Role() Role { return c.role }

// Stats exposes the owned stats.
func (c *Character) Stats() *Stats { return c.stats }

// Alive reports whether the character can still act.
func (c *Character) Alive() bool { return c.stats.Alive() }

// Dead reports whether health has reached zero.
func (c *Character) Dead() bool { return c.stats.Dead() }

// AttackTarget rolls damage with the owned strategy and applies it to
// the target. A dead attacker does nothing and publishes nothing.
func (c *Character) AttackTarget(target *Character) {
	if c.Dead() {
		return
	}

	c.bus.Publish(event.AttackStarted{Attacker: c.name, Target: target.name})

	raw := c.strategy.CalculateDamage(c.stats.Attack())
	target.TakeDamage(raw)
}

// TakeDamage applies a raw damage roll, announces the mitigated result,
// and announces death exactly once when health first reaches zero.
// Further damage to a dead character still announces DamageTaken.
func (c *Character) TakeDamage(amount int) {
	net := c.stats.TakeDamage(amount)

	c.bus.Publish(event.DamageTaken{
		Target:    c.name,
		Damage:    net,
		Remaining: c.stats.Health(),
	})

	if c.Dead() && !c.deathAnnounced {
		c.deathAnnounced = true
		c.bus.Publish(event.CharacterDied{Name: c.name})
	}
}

// Heal restores health through the owned stats.
func (c *Character) Heal(amount int) error {
	return c.stats.Heal(amount)
}
