// Package chronicle persists battle transcripts. Every event published
// during a battle becomes one durable entry, so finished duels can be
// reviewed after the process exits. Transcripts are an artifact of play,
// not game state: nothing is ever loaded back into a running battle.
package chronicle

import (
	"context"
	"time"
)

// Entry kinds, one per battle event variant.
const (
	KindWelcome       = "WELCOME"
	KindAttackStarted = "ATTACK_STARTED"
	KindDamageTaken   = "DAMAGE_TAKEN"
	KindCharacterDied = "CHARACTER_DIED"
)

// Entry is one durable transcript row. SessionID groups the entries of
// one play session; a WELCOME entry marks each battle start within it.
// Actor holds the attacker, the dying character, or the battle title
// for WELCOME entries; Target, Damage, and Remaining are set only where
// the kind carries them.
type Entry struct {
	ID        int64
	SessionID  string
	Seq       int
	Kind      string
	Actor     string
	Target    string
	Damage    int
	Remaining int
	CreatedAt time.Time
}

// Store persists battle transcript entries.
type Store interface {
	AppendEntry(ctx context.Context, entry Entry) error
	ListEntries(ctx context.Context, limit int) ([]Entry, error)
}
