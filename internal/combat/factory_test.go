package combat

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/louisbranch/emberclash.quest/internal/event"
)

func TestNewPlayerUsesFixedPreset(t *testing.T) {
	bus := event.NewBus()

	player, err := NewPlayer("Hero", flatDamage(), bus)
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}

	if player.Role() != RolePlayer {
		t.Fatalf("role = %v, want %v", player.Role(), RolePlayer)
	}
	stats := player.Stats()
	if stats.MaxHealth() != 100 || stats.Attack() != 10 || stats.Defense() != 5 {
		t.Fatalf("player stats = %d/%d/%d, want 100/10/5",
			stats.MaxHealth(), stats.Attack(), stats.Defense())
	}
	if stats.Health() != 100 {
		t.Fatalf("player health = %d, want full 100", stats.Health())
	}
}

func TestNewEnemyPresets(t *testing.T) {
	tests := []struct {
		kind        EnemyKind
		wantName    string
		wantHealth  int
		wantAttack  int
		wantDefense int
	}{
		{kind: EnemyKindGoblin, wantName: "Goblin", wantHealth: 40, wantAttack: 6, wantDefense: 3},
		{kind: EnemyKindSoldier, wantName: "Soldier", wantHealth: 60, wantAttack: 8, wantDefense: 5},
		{kind: EnemyKindSkeleton, wantName: "Skeleton", wantHealth: 30, wantAttack: 10, wantDefense: 2},
		{kind: EnemyKindDragon, wantName: "Dragon", wantHealth: 80, wantAttack: 20, wantDefense: 10},
	}

	for _, tt := range tests {
		t.Run(tt.wantName, func(t *testing.T) {
			enemy, err := NewEnemy(tt.kind, flatDamage(), event.NewBus())
			if err != nil {
				t.Fatalf("NewEnemy(%v): %v", tt.kind, err)
			}

			if enemy.Name() != tt.wantName {
				t.Fatalf("name = %q, want %q", enemy.Name(), tt.wantName)
			}
			if enemy.Role() != RoleEnemy {
				t.Fatalf("role = %v, want %v", enemy.Role(), RoleEnemy)
			}
			stats := enemy.Stats()
			if stats.MaxHealth() != tt.wantHealth || stats.Attack() != tt.wantAttack || stats.Defense() != tt.wantDefense {
				t.Fatalf("stats = %d/%d/%d, want %d/%d/%d",
					stats.MaxHealth(), stats.Attack(), stats.Defense(),
					tt.wantHealth, tt.wantAttack, tt.wantDefense)
			}
		})
	}
}

func TestParseEnemyKindRoundTripsNames(t *testing.T) {
	for _, kind := range EnemyKinds() {
		parsed, err := ParseEnemyKind(kind.String())
		if err != nil {
			t.Fatalf("ParseEnemyKind(%q): %v", kind.String(), err)
		}
		if parsed != kind {
			t.Fatalf("ParseEnemyKind(%q) = %v, want %v", kind.String(), parsed, kind)
		}
	}
}

func TestParseEnemyKindNormalizesInput(t *testing.T) {
	tests := []struct {
		value   string
		want    EnemyKind
		wantErr bool
	}{
		{value: "goblin", want: EnemyKindGoblin},
		{value: "  DRAGON  ", want: EnemyKindDragon},
		{value: "Unknown", wantErr: true},
		{value: "ghost", wantErr: true},
		{value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			parsed, err := ParseEnemyKind(tt.value)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownEnemyKind) {
					t.Fatalf("ParseEnemyKind(%q) error = %v, want %v", tt.value, err, ErrUnknownEnemyKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseEnemyKind(%q): %v", tt.value, err)
			}
			if parsed != tt.want {
				t.Fatalf("ParseEnemyKind(%q) = %v, want %v", tt.value, parsed, tt.want)
			}
		})
	}
}

func TestNewEnemyRejectsUnknownKind(t *testing.T) {
	_, err := NewEnemy(EnemyKindUnspecified, flatDamage(), event.NewBus())
	if !errors.Is(err, ErrUnknownEnemyKind) {
		t.Fatalf("NewEnemy error = %v, want %v", err, ErrUnknownEnemyKind)
	}

	_, err = NewEnemy(EnemyKind(99), flatDamage(), event.NewBus())
	if !errors.Is(err, ErrUnknownEnemyKind) {
		t.Fatalf("NewEnemy error = %v, want %v", err, ErrUnknownEnemyKind)
	}
}

func TestRandomEnemyKindCoversEnumeration(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	valid := make(map[EnemyKind]bool)
	for _, kind := range EnemyKinds() {
		valid[kind] = true
	}

	seen := make(map[EnemyKind]bool)
	for i := 0; i < 200; i++ {
		kind := RandomEnemyKind(rng)
		if !valid[kind] {
			t.Fatalf("drew invalid kind %v", kind)
		}
		seen[kind] = true
	}
	if len(seen) != len(valid) {
		t.Fatalf("drew %d distinct kinds, want all %d", len(seen), len(valid))
	}
}

// TestPresetsAllowLethalDamage pins the termination guarantee: in every
// matchup, the attacker's best roll (base attack plus maximum jitter)
// must exceed the defender's defense, so every battle can always make
// progress toward zero health.
func TestPresetsAllowLethalDamage(t *testing.T) {
	for kind, enemy := range enemyPresets {
		if playerPreset.attack+basicNoise <= enemy.defense {
			t.Errorf("player best roll %d cannot pierce %v defense %d",
				playerPreset.attack+basicNoise, kind, enemy.defense)
		}
		if enemy.attack+basicNoise <= playerPreset.defense {
			t.Errorf("%v best roll %d cannot pierce player defense %d",
				kind, enemy.attack+basicNoise, playerPreset.defense)
		}
	}
}
