// Package combat implements the turn-based battle core: character stats
// and damage math, attack strategies, factory presets, and the engine
// that alternates attacks until one side falls.
//
// # Damage Resolution
//
// A strategy produces a raw roll from the attacker's base attack. The
// defender's stats mitigate the roll (net = raw minus defense, floored
// at zero) and clamp health into [0, max]. The raw roll may undershoot
// the defense or go negative; mitigation, not the strategy, is what
// keeps net damage non-negative.
//
// # Events
//
// Mutations publish battle events on the caller's stack. Presentation
// adapters subscribe and render; they never mutate combat state. Death
// is announced exactly once per character, the instant health first
// reaches zero.
package combat
