// Package scripting provides a sandboxed GopherLua environment for
// status-effect hook scripts (lua_on_apply / lua_on_tick /
// lua_on_expire in effect definitions). It has no dependency on game
// domain packages; all game interactions are injected via Runner
// callback fields.
package scripting

import (
	"context"
	"sync/atomic"

	lua "github.com/yuin/gopher-lua"
)

// DefaultInstructionLimit is the maximum number of Lua opcodes allowed
// per hook execution when no override is configured. Effect hooks are
// expected to be tiny; the limit exists so a content bug cannot hang
// the turn loop.
const DefaultInstructionLimit = 100_000

// countingContext cancels itself after Done() has been called limit
// times. GopherLua's main loop calls Done() once per opcode, which
// makes this an exact instruction-count limit.
type countingContext struct {
	context.Context
	cancel    context.CancelFunc
	remaining *atomic.Int64
}

// Done returns the underlying cancellation channel, decrementing the
// remaining opcode budget; when the budget is exhausted the context
// cancels and the VM stops at the next opcode boundary.
func (c *countingContext) Done() <-chan struct{} {
	if c.remaining.Add(-1) <= 0 {
		c.cancel()
	}
	return c.Context.Done()
}

// newCountingContext returns a context that cancels after limit calls
// to Done().
//
// Precondition: limit > 0.
func newCountingContext(limit int) (context.Context, context.CancelFunc) {
	base, cancel := context.WithCancel(context.Background())
	rem := &atomic.Int64{}
	rem.Store(int64(limit))
	return &countingContext{
		Context:   base,
		cancel:    cancel,
		remaining: rem,
	}, cancel
}

// newSandboxedState creates a GopherLua LState with only the safe
// stdlib loaded (base, table, string, math), dangerous globals removed,
// and execution limited to at most instLimit opcodes.
//
// Precondition: instLimit >= 0; 0 uses DefaultInstructionLimit.
// Postcondition: Returns a non-nil LState; the caller owns it and must
// call Close when done.
func newSandboxedState(instLimit int) *lua.LState {
	limit := instLimit
	if limit <= 0 {
		limit = DefaultInstructionLimit
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "collectgarbage", "require"} {
		L.SetGlobal(name, lua.LNil)
	}

	ctx, _ := newCountingContext(limit) //nolint:govet // cancel fires automatically when the limit is reached
	L.SetContext(ctx)

	return L
}
