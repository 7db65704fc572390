package builder

import (
	"sync"

	"github.com/petermattis/goid"
)

// The registry maps goroutine IDs to their current session. Each goroutine
// only ever touches its own entry, so the lock protects the map structure,
// never session state.
var registry = struct {
	mu sync.RWMutex
	m  map[int64]*Session
}{m: make(map[int64]*Session)}

// Instance returns the calling goroutine's current session. Calling it
// without an active session is a programming error and panics: no sentinel
// can safely substitute for a missing build context.
func Instance() *Session {
	registry.mu.RLock()
	s := registry.m[goid.Get()]
	registry.mu.RUnlock()
	if s == nil {
		panic("builder: no active build session on this goroutine (missing Start?)")
	}
	return s
}

// SetInstance installs s as the calling goroutine's current session and
// returns the previous one (nil if none). Passing nil clears the entry.
func SetInstance(s *Session) *Session {
	id := goid.Get()
	registry.mu.Lock()
	prev := registry.m[id]
	if s == nil {
		delete(registry.m, id)
	} else {
		registry.m[id] = s
	}
	registry.mu.Unlock()
	return prev
}

// SessionGuard restores the previously current session when the build
// scope exits.
type SessionGuard struct {
	prev *Session
	done bool
}

// Start installs a fresh session for the calling goroutine and returns a
// guard that tears it down. Use it in scoped form so teardown runs on
// every exit path:
//
//	defer builder.Start(compiler).End()
func Start(c Compiler) *SessionGuard {
	prev := SetInstance(NewSession(c))
	return &SessionGuard{prev: prev}
}

// End uninstalls the session installed by the matching Start, restoring
// whatever was current before. Safe to call at most once; later calls are
// no-ops.
func (g *SessionGuard) End() {
	if g.done {
		return
	}
	g.done = true
	SetInstance(g.prev)
}
