package combat

import (
	"errors"
	"testing"
)

func TestNewStatsValidation(t *testing.T) {
	tests := []struct {
		name      string
		maxHealth int
		attack    int
		defense   int
		wantErr   error
	}{
		{name: "valid", maxHealth: 100, attack: 10, defense: 5},
		{name: "zero attack and defense are valid", maxHealth: 1, attack: 0, defense: 0},
		{name: "zero max health", maxHealth: 0, attack: 10, defense: 5, wantErr: ErrNonPositiveMaxHealth},
		{name: "negative max health", maxHealth: -10, attack: 10, defense: 5, wantErr: ErrNonPositiveMaxHealth},
		{name: "negative attack", maxHealth: 100, attack: -1, defense: 5, wantErr: ErrNegativeAttack},
		{name: "negative defense", maxHealth: 100, attack: 10, defense: -1, wantErr: ErrNegativeDefense},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats, err := NewStats(tt.maxHealth, tt.attack, tt.defense)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewStats error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewStats: %v", err)
			}
			if stats.Health() != tt.maxHealth {
				t.Fatalf("initial health = %d, want full health %d", stats.Health(), tt.maxHealth)
			}
		})
	}
}

func TestStatsTakeDamage(t *testing.T) {
	tests := []struct {
		name       string
		defense    int
		amount     int
		wantNet    int
		wantHealth int
	}{
		{name: "mitigated by defense", defense: 3, amount: 10, wantNet: 7, wantHealth: 33},
		{name: "fully absorbed", defense: 5, amount: 2, wantNet: 0, wantHealth: 40},
		{name: "exactly absorbed", defense: 5, amount: 5, wantNet: 0, wantHealth: 40},
		{name: "negative amount absorbed", defense: 0, amount: -5, wantNet: 0, wantHealth: 40},
		{name: "overkill clamps health at zero", defense: 0, amount: 999, wantNet: 999, wantHealth: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats, err := NewStats(40, 6, tt.defense)
			if err != nil {
				t.Fatalf("NewStats: %v", err)
			}

			net := stats.TakeDamage(tt.amount)

			if net != tt.wantNet {
				t.Fatalf("net damage = %d, want %d", net, tt.wantNet)
			}
			if stats.Health() != tt.wantHealth {
				t.Fatalf("health = %d, want %d", stats.Health(), tt.wantHealth)
			}
		})
	}
}

func TestStatsTakeDamageOnCorpseRecomputesNet(t *testing.T) {
	stats, err := NewStats(10, 5, 2)
	if err != nil {
		t.Fatalf("NewStats: %v", err)
	}

	stats.TakeDamage(100)
	if stats.Alive() || !stats.Dead() {
		t.Fatal("expected dead stats")
	}

	net := stats.TakeDamage(7)
	if net != 5 {
		t.Fatalf("net damage on corpse = %d, want 5", net)
	}
	if stats.Health() != 0 {
		t.Fatalf("health = %d, want 0", stats.Health())
	}
}

func TestStatsHeal(t *testing.T) {
	tests := []struct {
		name       string
		damage     int
		heal       int
		wantErr    error
		wantHealth int
	}{
		{name: "restores health", damage: 20, heal: 5, wantHealth: 25},
		{name: "clamps at max", damage: 5, heal: 50, wantHealth: 40},
		{name: "zero heal is valid", damage: 5, heal: 0, wantHealth: 35},
		{name: "negative heal is rejected", damage: 5, heal: -1, wantErr: ErrNegativeHeal, wantHealth: 35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats, err := NewStats(40, 6, 0)
			if err != nil {
				t.Fatalf("NewStats: %v", err)
			}
			stats.TakeDamage(tt.damage)

			err = stats.Heal(tt.heal)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Heal error = %v, want %v", err, tt.wantErr)
				}
			} else if err != nil {
				t.Fatalf("Heal: %v", err)
			}
			if stats.Health() != tt.wantHealth {
				t.Fatalf("health = %d, want %d", stats.Health(), tt.wantHealth)
			}
		})
	}
}
