package scripting

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Stats is a snapshot of a character's resource state passed to Lua
// hooks.
type Stats struct {
	HP      int
	MaxHP   int
	Mana    int
	MaxMana int
}

// Runner executes status-effect hook scripts inside a sandboxed Lua
// state. Game interactions go through the injected callback fields;
// nil callbacks make the corresponding Lua functions no-ops, so a
// Runner with no callbacks can still be used to validate scripts.
//
// Runner is not safe for concurrent use.
type Runner struct {
	logger    *zap.Logger
	instLimit int

	// GetStats returns the subject's current stats, or nil if unknown.
	GetStats func(subjectID string) *Stats
	// ApplyDamage subtracts amount from the subject's raw HP.
	ApplyDamage func(subjectID string, amount int)
	// ApplyHeal adds amount to the subject's HP.
	ApplyHeal func(subjectID string, amount int)
	// RestoreMana adds amount to the subject's mana.
	RestoreMana func(subjectID string, amount int)
}

// NewRunner creates a Runner with the default instruction limit.
//
// Precondition: logger must be non-nil.
func NewRunner(logger *zap.Logger) *Runner {
	return &Runner{logger: logger, instLimit: DefaultInstructionLimit}
}

// SetInstructionLimit overrides the per-hook opcode budget.
//
// Precondition: limit > 0.
func (r *Runner) SetInstructionLimit(limit int) {
	if limit > 0 {
		r.instLimit = limit
	}
}

// CheckScript compiles script without executing it, reporting syntax
// errors. Used by content validation to reject broken hooks at load
// time.
func (r *Runner) CheckScript(script string) error {
	L := newSandboxedState(r.instLimit)
	defer L.Close()
	if _, err := L.LoadString(script); err != nil {
		return fmt.Errorf("compiling hook script: %w", err)
	}
	return nil
}

// RunHook executes script with an `actor` API table bound to
// subjectID. The table exposes:
//
//	actor.hp()        current HP
//	actor.max_hp()    maximum HP
//	actor.mana()      current mana
//	actor.damage(n)   subtract n raw HP
//	actor.heal(n)     restore n HP
//	actor.restore_mana(n) restore n mana
//
// Each hook runs in a fresh sandboxed state; scripts cannot retain
// state between invocations.
//
// Postcondition: Returns nil on success, or the Lua runtime error
// (including instruction-limit termination).
func (r *Runner) RunHook(script, subjectID string) error {
	L := newSandboxedState(r.instLimit)
	defer L.Close()

	L.SetGlobal("actor", r.actorTable(L, subjectID))

	if err := L.DoString(script); err != nil {
		r.logger.Warn("effect hook failed",
			zap.String("subject", subjectID),
			zap.Error(err),
		)
		return fmt.Errorf("running hook script: %w", err)
	}
	return nil
}

// actorTable builds the `actor` API table for subjectID.
func (r *Runner) actorTable(L *lua.LState, subjectID string) *lua.LTable {
	t := L.NewTable()

	stats := func() *Stats {
		if r.GetStats == nil {
			return nil
		}
		return r.GetStats(subjectID)
	}

	L.SetField(t, "hp", L.NewFunction(func(L *lua.LState) int {
		if s := stats(); s != nil {
			L.Push(lua.LNumber(s.HP))
		} else {
			L.Push(lua.LNumber(0))
		}
		return 1
	}))
	L.SetField(t, "max_hp", L.NewFunction(func(L *lua.LState) int {
		if s := stats(); s != nil {
			L.Push(lua.LNumber(s.MaxHP))
		} else {
			L.Push(lua.LNumber(0))
		}
		return 1
	}))
	L.SetField(t, "mana", L.NewFunction(func(L *lua.LState) int {
		if s := stats(); s != nil {
			L.Push(lua.LNumber(s.Mana))
		} else {
			L.Push(lua.LNumber(0))
		}
		return 1
	}))
	L.SetField(t, "damage", L.NewFunction(func(L *lua.LState) int {
		amount := int(L.CheckNumber(1))
		if r.ApplyDamage != nil && amount > 0 {
			r.ApplyDamage(subjectID, amount)
		}
		return 0
	}))
	L.SetField(t, "heal", L.NewFunction(func(L *lua.LState) int {
		amount := int(L.CheckNumber(1))
		if r.ApplyHeal != nil && amount > 0 {
			r.ApplyHeal(subjectID, amount)
		}
		return 0
	}))
	L.SetField(t, "restore_mana", L.NewFunction(func(L *lua.LState) int {
		amount := int(L.CheckNumber(1))
		if r.RestoreMana != nil && amount > 0 {
			r.RestoreMana(subjectID, amount)
		}
		return 0
	}))

	return t
}
