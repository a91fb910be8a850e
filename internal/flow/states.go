package flow

import (
	"fmt"
	"strings"

	"github.com/louisbranch/emberclash.quest/internal/combat"
	"github.com/louisbranch/emberclash.quest/internal/platform/branding"
)

// MainMenu offers a new game or exit.
type MainMenu struct{}

var _ State = (*MainMenu)(nil)

// Run renders the menu and routes the player's choice.
func (s *MainMenu) Run(c *Context) error {
	c.out.Write(c.printer.Sprintf("game.menu.header"))
	c.out.Write(c.printer.Sprintf("game.menu.option.new"))
	c.out.Write(c.printer.Sprintf("game.menu.option.exit"))

	choice, err := c.in.Read(c.printer.Sprintf("game.menu.prompt"))
	if err != nil {
		return fmt.Errorf("read menu choice: %w", err)
	}

	switch strings.TrimSpace(choice) {
	case "1":
		c.SetState(&CharacterCreation{})
	case "2":
		c.SetState(&Exit{})
	default:
		c.out.Write(c.printer.Sprintf("game.menu.invalid"))
	}
	return nil
}

// CharacterCreation names the player and rolls an enemy for the next
// battle. The previous battle's combatants are overwritten, never
// cleared, so a failed prompt leaves the session intact.
type CharacterCreation struct{}

var _ State = (*CharacterCreation)(nil)

// Run reads the player name and assembles the battle.
func (s *CharacterCreation) Run(c *Context) error {
	name, err := c.in.Read(c.printer.Sprintf("game.creation.name_prompt"))
	if err != nil {
		return fmt.Errorf("read character name: %w", err)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		c.out.Write(c.printer.Sprintf("game.creation.name_required"))
		return nil
	}

	player, err := combat.NewPlayer(name, c.strategy, c.bus)
	if err != nil {
		return fmt.Errorf("create player: %w", err)
	}
	enemy, err := combat.NewEnemy(combat.RandomEnemyKind(c.rng), c.strategy, c.bus)
	if err != nil {
		return fmt.Errorf("create enemy: %w", err)
	}
	game, err := combat.NewGame(player, enemy, c.bus, branding.GameTitle)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	c.player = player
	c.enemy = enemy
	c.game = game
	c.out.Write(c.printer.Sprintf("game.creation.matchup", player.Name(), enemy.Name()))
	c.SetState(&Play{})
	return nil
}

// Play runs the battle to its end and records the outcome.
type Play struct{}

var _ State = (*Play)(nil)

// Run executes the battle. Reaching Play without a battle assembled is
// a contract breach by an earlier state; the session recovers to the
// main menu instead of crashing mid-session.
func (s *Play) Run(c *Context) error {
	if c.game == nil {
		c.out.Write(c.printer.Sprintf("game.play.no_battle"))
		c.SetState(&MainMenu{})
		return nil
	}

	c.game.Run()

	if c.player.Alive() {
		c.outcome = OutcomeWin
	} else {
		c.outcome = OutcomeLose
	}
	c.SetState(&GameOver{})
	return nil
}

// GameOver announces the result and offers a rematch.
type GameOver struct{}

var _ State = (*GameOver)(nil)

// Run renders the outcome and routes the player's choice. Any choice
// other than returning to the menu exits.
func (s *GameOver) Run(c *Context) error {
	c.out.Write(c.printer.Sprintf("game.over.header"))
	if c.outcome == OutcomeWin {
		c.out.Write(c.printer.Sprintf("game.over.win"))
	} else {
		c.out.Write(c.printer.Sprintf("game.over.lose"))
	}
	c.out.Write(c.printer.Sprintf("game.over.option.menu"))
	c.out.Write(c.printer.Sprintf("game.over.option.exit"))

	choice, err := c.in.Read(c.printer.Sprintf("game.over.prompt"))
	if err != nil {
		return fmt.Errorf("read game over choice: %w", err)
	}

	if strings.TrimSpace(choice) == "1" {
		c.SetState(&MainMenu{})
	} else {
		c.SetState(&Exit{})
	}
	return nil
}

// Exit says goodbye and stops the machine.
type Exit struct{}

var _ State = (*Exit)(nil)

// Run writes the goodbye line and ends the session.
func (s *Exit) Run(c *Context) error {
	c.out.Write(c.printer.Sprintf("game.exit.goodbye"))
	c.SetState(nil)
	return nil
}
