package builder

import "fmt"

// Mangler produces collision-free names for declarations within one build
// session. The same DSL code may be instantiated several times into one
// program, so a declared name can legitimately repeat; the mangler keeps
// output deterministic given the same request sequence so repeated builds
// of identical DSL code produce identical IR.
type Mangler struct {
	counters map[string]uint32
	used     map[string]struct{}
}

// NewMangler returns an empty mangler.
func NewMangler() Mangler {
	return Mangler{
		counters: make(map[string]uint32),
		used:     make(map[string]struct{}),
	}
}

// Mangle returns a name guaranteed to be distinct from every name this
// mangler has handed out. The first request for a base returns it
// unchanged; later requests append an increasing numeric suffix. A
// candidate is re-checked against all previous outputs, so a literal
// request that happens to look mangled ("tmp_1") can never collide with a
// generated one.
func (m *Mangler) Mangle(base string) string {
	if _, seen := m.counters[base]; !seen {
		m.counters[base] = 0
		// The base itself may already be taken by an earlier generated
		// name ("tmp_1" after two "tmp" requests); only an unclaimed
		// base passes through unchanged.
		if _, taken := m.used[base]; !taken {
			m.used[base] = struct{}{}
			return base
		}
	}
	for {
		m.counters[base]++
		candidate := fmt.Sprintf("%s_%d", base, m.counters[base])
		if _, taken := m.used[candidate]; !taken {
			m.used[candidate] = struct{}{}
			return candidate
		}
	}
}
