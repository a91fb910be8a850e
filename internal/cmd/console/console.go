// Package console parses the console game's flags and runs a play
// session on a plain terminal.
package console

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"

	"golang.org/x/text/message"

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
	uiconsole "github.com/louisbranch/emberclash.quest/internal/ui/console"
)

// Config holds console command configuration.
type Config struct {
	Locale          string `env:"EMBERCLASH_LOCALE" envDefault:"en-US"`
	Seed            int64  `env:"EMBERCLASH_SEED"`
	ChronicleDBPath string `env:"EMBERCLASH_CHRONICLE_DB_PATH"`
	StrategyScript  string `env:"EMBERCLASH_STRATEGY_SCRIPT"`
	History         int
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
	fs.IntVar(&cfg.History, "history", 0, "Print the last N chronicle entries and exit")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run plays a session on the process's terminal.
func Run(ctx context.Context, cfg Config) error {
	return run(ctx, cfg, os.Stdin, os.Stdout)
}

func run(ctx context.Context, cfg Config, stdin io.Reader, stdout io.Writer) error {
	printer := i18n.Printer(i18n.ResolveTag(cfg.Locale))
	out := uiconsole.NewOut(stdout)

	var store *chroniclesqlite.Store
	if cfg.ChronicleDBPath != "" {
		opened, err := chroniclesqlite.Open(cfg.ChronicleDBPath)
		if err != nil {
			return fmt.Errorf("open chronicle store: %w", err)
		}
		store = opened
		defer func() { _ = store.Close() }()
	}

	if cfg.History > 0 {
		return printHistory(ctx, store, printer, out, cfg.History)
	}

	rng, err := newRandom(cfg.Seed)
	if err != nil {
		return err
	}
	strategy, err := buildStrategy(cfg.StrategyScript, rng)
	if err != nil {
		return err
	}

	bus := event.NewBus()
	bus.Subscribe(ui.NewRenderer(out, printer))
	if store != nil {
		sessionID, err := id.NewID()
		if err != nil {
			return fmt.Errorf("new session id: %w", err)
		}
		bus.Subscribe(chronicle.NewRecorder(store, sessionID))
	}

	session, err := flow.NewContext(flow.ContextConfig{
		Bus:      bus,
		Input:    uiconsole.NewIn(stdin, stdout),
		Output:   out,
		Printer:  printer,
		Random:   rng,
		Strategy: strategy,
	})
	if err != nil {
		return fmt.Errorf("new session: %w", err)
	}
	if err := session.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("run session: %w", err)
	}
	return nil
}

func printHistory(ctx context.Context, store *chroniclesqlite.Store, printer *message.Printer, out ui.Output, limit int) error {
	if store == nil {
		return fmt.Errorf("chronicle database path is required")
	}
	entries, err := store.ListEntries(ctx, limit)
	if err != nil {
		return fmt.Errorf("list chronicle entries: %w", err)
	}
	if len(entries) == 0 {
		out.Write(printer.Sprintf("core.history.empty"))
		return nil
	}
	out.Write(printer.Sprintf("core.history.header"))
	for _, entry := range entries {
		out.Write(fmt.Sprintf("%s  %s", entry.CreatedAt.Format("2006-01-02 15:04:05"), formatEntry(printer, entry)))
	}
	return nil
}

func formatEntry(printer *message.Printer, entry chronicle.Entry) string {
	switch entry.Kind {
	case chronicle.KindWelcome:
		return printer.Sprintf("game.event.welcome", entry.Actor)
	case chronicle.KindAttackStarted:
		return printer.Sprintf("game.event.attack_started", entry.Actor, entry.Target)
	case chronicle.KindDamageTaken:
		return printer.Sprintf("game.event.damage_taken", entry.Actor, entry.Damage, entry.Remaining)
	case chronicle.KindCharacterDied:
		return printer.Sprintf("game.event.character_died", entry.Actor)
	default:
		return entry.Kind
	}
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
