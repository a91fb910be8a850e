package combat

import "errors"

// Stat configuration and mutation failures.
var (
	ErrNonPositiveMaxHealth = errors.New("max health must be positive")
	ErrNegativeAttack       = errors.New("attack must be non-negative")
	ErrNegativeDefense      = errors.New("defense must be non-negative")
	ErrNegativeHeal         = errors.New("heal amount must be non-negative")
)

// Stats holds one character's combat attributes. Health is clamped into
// [0, max] on every mutation. Attack and defense are configuration, not
// simulation state, so they are validated once at construction instead.
type Stats struct {
	maxHealth int
	health    int
	attack    int
	defense   int
}

// NewStats validates the configuration values and returns stats at full
// health.
func NewStats(maxHealth, attack, defense int) (*Stats, error) {
	if maxHealth <= 0 {
		return nil, ErrNonPositiveMaxHealth
	}
	if attack < 0 {
		return nil, ErrNegativeAttack
	}
	if defense < 0 {
		return nil, ErrNegativeDefense
	}
	return &Stats{
		maxHealth: maxHealth,
		health:    maxHealth,
		attack:    attack,
		defense:   defense,
	}, nil
}

// MaxHealth returns the immutable health ceiling.
func (s *Stats) MaxHealth() int { return s.maxHealth }

// Health returns the current health.
func (s *Stats) Health() int { return s.health }

// Attack returns the attack power.
func (s *Stats) Attack() int { return s.attack }

// Defense returns the defense value.
func (s *Stats) Defense() int { return s.defense }

// Alive reports whether health is above zero.
func (s *Stats) Alive() bool { return s.health > 0 }

// Dead reports whether health has reached zero.
func (s *Stats) Dead() bool { return !s.Alive() }

// TakeDamage applies a raw damage roll and returns the net amount after
// mitigation: max(0, amount - defense). Negative amounts are absorbed by
// the floor rather than rejected.
func (s *Stats) TakeDamage(amount int) int {
	net := amount - s.defense
	if net < 0 {
		net = 0
	}
	s.health -= net
	if s.health < 0 {
		s.health = 0
	}
	return net
}

// Heal restores health up to the maximum. A negative amount is a usage
// error and leaves health untouched.
func (s *Stats) Heal(amount int) error {
	if amount < 0 {
		return ErrNegativeHeal
	}
	s.health += amount
	if s.health > s.maxHealth {
		s.health = s.maxHealth
	}
	return nil
}
