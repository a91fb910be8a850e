// Package event defines the closed set of battle occurrences and the
// synchronous bus that fans them out to observers.
//
// Events are immutable value records. Consumers dispatch with a type
// switch over the concrete variants, so adding a variant is a
// compile-time-visible change at every dispatch site.
package event

// Event is implemented only by the variants in this package.
type Event interface {
	isEvent()
}

// Welcome announces a new battle with the game title.
type Welcome struct {
	Title string
}

func (Welcome) isEvent() {}

// AttackStarted records an attacker declaring an attack on a target.
type AttackStarted struct {
	Attacker string
	Target   string
}

func (AttackStarted) isEvent() {}

// DamageTaken records mitigated damage applied to a character. Damage is
// the post-mitigation amount, never negative; Remaining is the target's
// health after clamping.
type DamageTaken struct {
	Target    string
	Damage    int
	Remaining int
}

func (DamageTaken) isEvent() {}

// CharacterDied announces a character's health reaching zero. It is
// published exactly once per character.
type CharacterDied struct {
	Name string
}

func (CharacterDied) isEvent() {}
