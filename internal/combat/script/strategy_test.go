package script

import (
	"os"
	"path/filepath"
	"testing"
)

func writeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "strategy.lua")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

func TestLoadRunsScriptAndFindsFunction(t *testing.T) {
	path := writeScript(t, `function calculate_damage(base_attack)
  return base_attack * 2 - 1
end`)

	strategy, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := strategy.CalculateDamage(10); got != 19 {
		t.Fatalf("damage = %d, want 19", got)
	}
	if strategy.Path() != path {
		t.Fatalf("path = %q, want %q", strategy.Path(), path)
	}
}

func TestLoadRejectsScriptWithoutDamageFunction(t *testing.T) {
	path := writeScript(t, `x = 1`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for script without calculate_damage")
	}
}

func TestLoadRejectsBrokenScript(t *testing.T) {
	path := writeScript(t, `function calculate_damage(`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unparseable script")
	}
}

func TestLoadRejectsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.lua")

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for missing script file")
	}
}

func TestCalculateDamageFallsBackOnRuntimeError(t *testing.T) {
	path := writeScript(t, `function calculate_damage(base_attack)
  error("boom")
end`)

	strategy, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := strategy.CalculateDamage(10); got != 10 {
		t.Fatalf("damage = %d, want base attack fallback 10", got)
	}
	// Repeated failures keep falling back.
	if got := strategy.CalculateDamage(7); got != 7 {
		t.Fatalf("damage = %d, want base attack fallback 7", got)
	}
}

func TestCalculateDamageFallsBackOnNonIntegerResult(t *testing.T) {
	path := writeScript(t, `function calculate_damage(base_attack)
  return "lots"
end`)

	strategy, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := strategy.CalculateDamage(10); got != 10 {
		t.Fatalf("damage = %d, want base attack fallback 10", got)
	}
}
