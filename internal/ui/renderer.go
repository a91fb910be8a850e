package ui

import (
	"golang.org/x/text/message"

	"github.com/louisbranch/emberclash.quest/internal/event"
)

// Renderer narrates battle events to the player in their locale. It is
// front-end agnostic: both the console and the TUI subscribe one to
// their own Output.
type Renderer struct {
	out     Output
	printer *message.Printer
}

var _ event.Observer = (*Renderer)(nil)

// NewRenderer returns a Renderer writing localized lines to out.
func NewRenderer(out Output, printer *message.Printer) *Renderer {
	return &Renderer{out: out, printer: printer}
}

// Notify writes one localized line per battle event.
func (r *Renderer) Notify(e event.Event) {
	switch ev := e.(type) {
	case event.Welcome:
		r.out.Write(r.printer.Sprintf("game.event.welcome", ev.Title))
	case event.AttackStarted:
		r.out.Write(r.printer.Sprintf("game.event.attack_started", ev.Attacker, ev.Target))
	case event.DamageTaken:
		r.out.Write(r.printer.Sprintf("game.event.damage_taken", ev.Target, ev.Damage, ev.Remaining))
	case event.CharacterDied:
		r.out.Write(r.printer.Sprintf("game.event.character_died", ev.Name))
	}
}
