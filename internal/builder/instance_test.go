package builder

import (
	"sync"
	"testing"
)

func TestInstancePanicsWithoutSession(t *testing.T) {
	expectPanic(t, func() { Instance() })
}

func TestStartEndRestoresPreviousSession(t *testing.T) {
	outer, _ := newTestSession(t)
	guard := Start(newTestCompiler())
	inner := Instance()
	if inner == outer {
		t.Fatalf("nested Start must install a fresh session")
	}
	guard.End()
	if Instance() != outer {
		t.Fatalf("End must restore the previous session")
	}
	guard.End() // second End is a no-op
	if Instance() != outer {
		t.Fatalf("repeated End must not clobber the restored session")
	}
}

func TestSessionsAreGoroutineLocal(t *testing.T) {
	newTestSession(t)
	mine := Instance()

	var wg sync.WaitGroup
	results := make([]*Session, 4)
	for i := 0; i < 4; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer Start(newTestCompiler()).End()
			s := Instance()
			s.Name("shared") // mutate freely; no other goroutine sees this mangler
			results[i] = s
		}()
	}
	wg.Wait()

	if Instance() != mine {
		t.Fatalf("other goroutines' sessions leaked into this one")
	}
	seen := make(map[*Session]struct{})
	for i, s := range results {
		if s == nil || s == mine {
			t.Fatalf("goroutine %d observed the wrong session", i)
		}
		if _, dup := seen[s]; dup {
			t.Fatalf("two goroutines shared a session")
		}
		seen[s] = struct{}{}
	}
}
