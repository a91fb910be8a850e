// Package tui parses the TUI game's flags and runs a play session
// inside a bubbletea program.
package tui

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/louisbranch/emberclash.quest/internal/chronicle"
	chroniclesqlite "github.com/louisbranch/emberclash.quest/internal/chronicle/sqlite"
	"github.com/louisbranch/emberclash.quest/internal/combat"
	"github.com/louisbranch/emberclash.quest/internal/combat/script"
	"github.com/louisbranch/emberclash.quest/internal/event"
	"github.com/louisbranch/emberclash.quest/internal/flow"
	entrypoint "github.com/louisbranch/emberclash.quest/internal/platform/cmd"
	"github.com/louisbranch/emberclash.quest/internal/platform/i18n"
	"github.com/louisbranch/emberclash.quest/internal/platform/id"
	"github.com/louisbranch/emberclash.quest/internal/random"
	"github.com/louisbranch/emberclash.quest/internal/ui"
	uitui "github.com/louisbranch/emberclash.quest/internal/ui/tui"
)

// Config holds TUI command configuration.
type Config struct {
	Locale          string `env:"EMBERCLASH_LOCALE" envDefault:"en-US"`
	Seed            int64  `env:"EMBERCLASH_SEED"`
	ChronicleDBPath string `env:"EMBERCLASH_CHRONICLE_DB_PATH"`
	StrategyScript  string `env:"EMBERCLASH_STRATEGY_SCRIPT"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "The game locale (en-US or pt-BR)")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Deterministic random seed (0 draws one)")
	fs.StringVar(&cfg.ChronicleDBPath, "chronicle-db", cfg.ChronicleDBPath, "The chronicle SQLite database path (empty disables recording)")
	fs.StringVar(&cfg.StrategyScript, "strategy-script", cfg.StrategyScript, "Lua script overriding the basic attack strategy")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run plays a session inside a bubbletea program. The session loop runs
// on its own goroutine; quitting the program cancels any read it is
// blocked on.
func Run(ctx context.Context, cfg Config) error {
	printer := i18n.Printer(i18n.ResolveTag(cfg.Locale))

	var store *chroniclesqlite.Store
	if cfg.ChronicleDBPath != "" {
		opened, err := chroniclesqlite.Open(cfg.ChronicleDBPath)
		if err != nil {
			return fmt.Errorf("open chronicle store: %w", err)
		}
		store = opened
		defer func() { _ = store.Close() }()
	}

	rng, err := newRandom(cfg.Seed)
	if err != nil {
		return err
	}
	strategy, err := buildStrategy(cfg.StrategyScript, rng)
	if err != nil {
		return err
	}

	sessionCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	bridge := uitui.NewBridge(sessionCtx)
	program := tea.NewProgram(uitui.NewModel(bridge, printer))
	bridge.Attach(program)

	bus := event.NewBus()
	bus.Subscribe(ui.NewRenderer(bridge, printer))
	if store != nil {
		sessionID, err := id.NewID()
		if err != nil {
			return fmt.Errorf("new session id: %w", err)
		}
		bus.Subscribe(chronicle.NewRecorder(store, sessionID))
	}

	session, err := flow.NewContext(flow.ContextConfig{
		Bus:      bus,
		Input:    bridge,
		Output:   bridge,
		Printer:  printer,
		Random:   rng,
		Strategy: strategy,
	})
	if err != nil {
		return fmt.Errorf("new session: %w", err)
	}

	done := make(chan error, 1)
	go func() {
		err := session.Run(sessionCtx)
		bridge.Done(err)
		done <- err
	}()

	_, programErr := program.Run()
	cancel()
	sessionErr := <-done

	if programErr != nil {
		return fmt.Errorf("run program: %w", programErr)
	}
	if sessionErr != nil && !errors.Is(sessionErr, context.Canceled) {
		return fmt.Errorf("run session: %w", sessionErr)
	}
	return nil
}

func newRandom(seed int64) (*rand.Rand, error) {
	if seed == 0 {
		drawn, err := random.NewSeed()
		if err != nil {
			return nil, fmt.Errorf("draw random seed: %w", err)
		}
		seed = drawn
	}
	return rand.New(rand.NewSource(seed)), nil
}

func buildStrategy(scriptPath string, rng *rand.Rand) (combat.AttackStrategy, error) {
	if scriptPath == "" {
		return combat.NewBasicStrategy(rng), nil
	}
	strategy, err := script.Load(scriptPath)
	if err != nil {
		return nil, fmt.Errorf("load strategy script: %w", err)
	}
	return strategy, nil
}
