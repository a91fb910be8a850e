package flow

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"golang.org/x/text/message"

	"github.com/louisbranch/emberclash.quest/internal/combat"
	"github.com/louisbranch/emberclash.quest/internal/event"
	"github.com/louisbranch/emberclash.quest/internal/ui"
)

// Session construction failures.
var (
	ErrMissingEventBus = errors.New("event bus is required")
	ErrMissingInput    = errors.New("input seam is required")
	ErrMissingOutput   = errors.New("output seam is required")
	ErrMissingPrinter  = errors.New("message printer is required")
	ErrMissingRandom   = errors.New("random source is required")
	ErrMissingStrategy = errors.New("attack strategy is required")
)

// Outcome is the result of a finished battle.
type Outcome int

// Battle outcomes.
const (
	OutcomeUnspecified Outcome = iota
	OutcomeWin
	OutcomeLose
)

// String returns the outcome name for logs.
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "WIN"
	case OutcomeLose:
		return "LOSE"
	default:
		return "UNSPECIFIED"
	}
}

// State is one screen of the session. Run performs the screen's
// interaction and hands off by calling Context.SetState; returning an
// error stops the session. Player input is never an error.
type State interface {
	Run(c *Context) error
}

// ContextConfig carries the collaborators a session needs.
type ContextConfig struct {
	Bus      *event.Bus
	Input    ui.Input
	Output   ui.Output
	Printer  *message.Printer
	Random   *rand.Rand
	Strategy combat.AttackStrategy
}

// Context is the session: the shared collaborators plus the battle in
// progress. States mutate it as the player moves through the game.
type Context struct {
	bus      *event.Bus
	in       ui.Input
	out      ui.Output
	printer  *message.Printer
	rng      *rand.Rand
	strategy combat.AttackStrategy

	player  *combat.Character
	enemy   *combat.Character
	game    *combat.Game
	outcome Outcome

	state State
}

// NewContext wires a session starting at the main menu.
func NewContext(cfg ContextConfig) (*Context, error) {
	if cfg.Bus == nil {
		return nil, ErrMissingEventBus
	}
	if cfg.Input == nil {
		return nil, ErrMissingInput
	}
	if cfg.Output == nil {
		return nil, ErrMissingOutput
	}
	if cfg.Printer == nil {
		return nil, ErrMissingPrinter
	}
	if cfg.Random == nil {
		return nil, ErrMissingRandom
	}
	if cfg.Strategy == nil {
		return nil, ErrMissingStrategy
	}
	return &Context{
		bus:      cfg.Bus,
		in:       cfg.Input,
		out:      cfg.Output,
		printer:  cfg.Printer,
		rng:      cfg.Random,
		strategy: cfg.Strategy,
		state:    &MainMenu{},
	}, nil
}

// SetState hands off to the next state. Setting nil ends the session.
func (c *Context) SetState(next State) {
	c.state = next
}

// Outcome returns the result of the most recent battle.
func (c *Context) Outcome() Outcome {
	return c.outcome
}

// Run drives states until one sets the next state to nil, the context
// is canceled, or a state fails.
func (c *Context) Run(ctx context.Context) error {
	for c.state != nil {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.state.Run(c); err != nil {
			return fmt.Errorf("run state: %w", err)
		}
	}
	return nil
}
