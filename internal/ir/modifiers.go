package ir

import "strings"

// ModifierFlag encodes declaration qualifiers as a bitmask.
type ModifierFlag uint16

const (
	ModifierNone  ModifierFlag = 0
	ModifierConst ModifierFlag = 1 << iota
	ModifierIn
	ModifierOut
	ModifierUniform
	ModifierFlat
	ModifierNoPerspective
	ModifierHighP
	ModifierMediumP
	ModifierLowP
)

// Layout carries uniform-binding layout qualifiers. The zero value means
// "unset" for every field; bindings use 1-based external numbering shifted
// by the builder so that 0 stays the natural default.
type Layout struct {
	Location int16
	Binding  int16
	Set      int16
	Offset   int16
}

// Modifiers is an immutable qualifier set attached to a declaration.
// Values are comparable; the builder's pool canonicalizes them so pointer
// identity doubles as structural equality everywhere downstream.
type Modifiers struct {
	Layout Layout
	Flags  ModifierFlag
}

var modifierNames = []struct {
	flag ModifierFlag
	name string
}{
	{ModifierConst, "const"},
	{ModifierIn, "in"},
	{ModifierOut, "out"},
	{ModifierUniform, "uniform"},
	{ModifierFlat, "flat"},
	{ModifierNoPerspective, "noperspective"},
	{ModifierHighP, "highp"},
	{ModifierMediumP, "mediump"},
	{ModifierLowP, "lowp"},
}

// Description renders the qualifier set in declaration order, e.g.
// "const highp". Empty for the zero value.
func (m Modifiers) Description() string {
	var parts []string
	for _, e := range modifierNames {
		if m.Flags&e.flag != 0 {
			parts = append(parts, e.name)
		}
	}
	return strings.Join(parts, " ")
}
