package chronicle

import (
	"context"
	"log"
	"time"

	"github.com/louisbranch/emberclash.quest/internal/event"
)

// Recorder subscribes to a session's event bus and appends one
// transcript entry per battle event. A nil store turns every call into
// a no-op, so callers can subscribe unconditionally and decide at
// startup whether battles are persisted.
//
// Appends never fail the battle: storage errors are logged and play
// continues.
type Recorder struct {
	store    Store
	sessionID string
	seq      int
	clock    func() time.Time
	logf     func(format string, args ...any)
}

var _ event.Observer = (*Recorder)(nil)

// NewRecorder returns a Recorder that appends entries for sessionID to
// store. A nil store is allowed and disables recording.
func NewRecorder(store Store, sessionID string) *Recorder {
	return &Recorder{
		store:    store,
		sessionID: sessionID,
		clock:    time.Now,
		logf:     log.Printf,
	}
}

// Notify maps one battle event to a transcript entry and appends it.
func (r *Recorder) Notify(e event.Event) {
	if r == nil || r.store == nil {
		return
	}

	entry := Entry{
		SessionID:  r.sessionID,
		CreatedAt: r.clock(),
	}

	switch ev := e.(type) {
	case event.Welcome:
		entry.Kind = KindWelcome
		entry.Actor = ev.Title
	case event.AttackStarted:
		entry.Kind = KindAttackStarted
		entry.Actor = ev.Attacker
		entry.Target = ev.Target
	case event.DamageTaken:
		entry.Kind = KindDamageTaken
		entry.Actor = ev.Target
		entry.Damage = ev.Damage
		entry.Remaining = ev.Remaining
	case event.CharacterDied:
		entry.Kind = KindCharacterDied
		entry.Actor = ev.Name
	default:
		return
	}

	r.seq++
	entry.Seq = r.seq

	if err := r.store.AppendEntry(context.Background(), entry); err != nil {
		r.logf("chronicle: append entry for session %s: %v", r.sessionID, err)
	}
}
