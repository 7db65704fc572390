package builder

// EmitTarget identifies the downstream code-generation unit IR
// construction is currently scoped to. The builder never inspects it
// beyond the name used in fatal messages.
type EmitTarget interface {
	TargetName() string
}

// Frame is one immutable entry of the emit-target stack: the target plus
// the opaque emission-argument bundle its code generator supplied.
type Frame struct {
	Target EmitTarget
	Args   any
}

// StartProcessor pushes a new target/args frame and returns a guard so the
// pop runs on every exit path:
//
//	defer s.StartProcessor(target, args).End()
//
// Frames nest strictly; a frame may only be popped by the code that pushed
// it.
func (s *Session) StartProcessor(target EmitTarget, args any) *ProcessorGuard {
	s.stack = append(s.stack, Frame{Target: target, Args: args})
	return &ProcessorGuard{s: s}
}

// EndProcessor pops the top frame. Calling it with an empty stack is a
// programming error and panics.
func (s *Session) EndProcessor() {
	if len(s.stack) == 0 {
		panic("builder: EndProcessor without a matching StartProcessor")
	}
	s.stack = s.stack[:len(s.stack)-1]
}

// CurrentProcessor returns the target on top of the stack. Using this
// feature without an active frame is a programming error and panics.
func (s *Session) CurrentProcessor() EmitTarget {
	if len(s.stack) == 0 {
		panic("builder: this feature requires an active emit target")
	}
	return s.stack[len(s.stack)-1].Target
}

// CurrentEmitArgs returns the emission arguments on top of the stack,
// panicking like CurrentProcessor when the stack is empty.
func (s *Session) CurrentEmitArgs() any {
	if len(s.stack) == 0 {
		panic("builder: this feature requires an active emit target")
	}
	return s.stack[len(s.stack)-1].Args
}

// ProcessorGuard pops the frame pushed by the matching StartProcessor.
type ProcessorGuard struct {
	s    *Session
	done bool
}

// End pops the frame. Safe to call at most once; later calls are no-ops.
func (g *ProcessorGuard) End() {
	if g.done {
		return
	}
	g.done = true
	g.s.EndProcessor()
}
