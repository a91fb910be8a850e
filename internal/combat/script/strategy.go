// Package script loads attack strategies defined in Lua, so damage
// formulas can be tuned without recompiling the game.
//
// A strategy script must define a global function
//
//	function calculate_damage(base_attack)
//	  return base_attack + 1
//	end
//
// returning the raw damage roll as an integer. The roll is
// pre-mitigation, exactly like the built-in strategies.
package script

import (
	"fmt"
	"log"
	"sync"

	"github.com/Shopify/go-lua"

	"github.com/louisbranch/emberclash.quest/internal/combat"
)

const damageFunction = "calculate_damage"

// Strategy evaluates a Lua-defined damage formula. It is not safe for
// concurrent use; combat runs on a single logical thread.
type Strategy struct {
	state *lua.State
	path  string

	warnOnce sync.Once
}

var _ combat.AttackStrategy = (*Strategy)(nil)

// Load runs the script and verifies it defines calculate_damage.
func Load(path string) (*Strategy, error) {
	state := lua.NewState()
	lua.OpenLibraries(state)

	if err := lua.LoadFile(state, path, ""); err != nil {
		return nil, fmt.Errorf("load strategy script: %w", err)
	}
	if err := state.ProtectedCall(0, 0, 0); err != nil {
		return nil, fmt.Errorf("run strategy script: %w", err)
	}

	state.Global(damageFunction)
	defined := state.IsFunction(-1)
	state.Pop(1)
	if !defined {
		return nil, fmt.Errorf("strategy script %s must define %s", path, damageFunction)
	}

	return &Strategy{state: state, path: path}, nil
}

// Path returns the script location the strategy was loaded from.
func (s *Strategy) Path() string { return s.path }

// CalculateDamage evaluates the scripted formula. A failing script falls
// back to the base attack so a bad formula cannot stall combat; the
// first failure is logged.
func (s *Strategy) CalculateDamage(baseAttack int) int {
	s.state.Global(damageFunction)
	s.state.PushInteger(baseAttack)
	if err := s.state.ProtectedCall(1, 1, 0); err != nil {
		s.state.Pop(1) // error value
		s.warn("call %s: %v", damageFunction, err)
		return baseAttack
	}

	value, ok := s.state.ToInteger(-1)
	s.state.Pop(1)
	if !ok {
		s.warn("%s returned a non-integer value", damageFunction)
		return baseAttack
	}
	return value
}

func (s *Strategy) warn(format string, args ...any) {
	s.warnOnce.Do(func() {
		log.Printf("strategy script %s: %s; using base attack", s.path, fmt.Sprintf(format, args...))
	})
}
