package builder

import "prism/internal/ir"

// modifierPool canonicalizes qualifier sets so that structurally equal
// sets share one pointer for the lifetime of the session. Type checking
// and code generation compare modifier sets constantly; interning turns
// those comparisons into pointer identity. The pool is append-only.
type modifierPool struct {
	canon map[ir.Modifiers]*ir.Modifiers
}

func newModifierPool() modifierPool {
	return modifierPool{canon: make(map[ir.Modifiers]*ir.Modifiers)}
}

func (p *modifierPool) intern(m ir.Modifiers) *ir.Modifiers {
	if existing, ok := p.canon[m]; ok {
		return existing
	}
	stored := new(ir.Modifiers)
	*stored = m
	p.canon[m] = stored
	return stored
}
