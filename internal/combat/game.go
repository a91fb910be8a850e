package combat

import (
	"errors"

	"github.com/louisbranch/emberclash.quest/internal/event"
)

// Battle construction failures.
var (
	ErrMissingPlayer = errors.New("player is required")
	ErrMissingEnemy  = errors.New("enemy is required")
)

// Game runs one battle between a player and an enemy to completion.
type Game struct {
	player *Character
	enemy  *Character
	bus    *event.Bus
	title  string
}

// NewGame wires a battle. Both combatants and the bus are required.
func NewGame(player, enemy *Character, bus *event.Bus, title string) (*Game, error) {
	if player == nil {
		return nil, ErrMissingPlayer
	}
	if enemy == nil {
		return nil, ErrMissingEnemy
	}
	if bus == nil {
		return nil, ErrMissingEventBus
	}
	return &Game{player: player, enemy: enemy, bus: bus, title: title}, nil
}

// Player returns the player combatant.
func (g *Game) Player() *Character { return g.player }

// Enemy returns the opposing combatant.
func (g *Game) Enemy() *Character { return g.enemy }

// Run announces the battle and alternates attacks until one side dies.
// The player strikes first each round. A kill ends combat immediately,
// even mid-round, so a slain enemy never retaliates.
func (g *Game) Run() {
	g.bus.Publish(event.Welcome{Title: g.title})

	for g.player.Alive() && g.enemy.Alive() {
		g.player.AttackTarget(g.enemy)
		if !g.enemy.Alive() {
			break
		}
		g.enemy.AttackTarget(g.player)
	}
}
