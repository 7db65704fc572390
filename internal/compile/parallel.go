package compile

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"prism/internal/builder"
)

// ProgramSpec names one program and the DSL recipe that builds it.
type ProgramSpec struct {
	Name  string
	Build func(*builder.Session)
}

// Build runs a single recipe to completion on the calling goroutine.
func Build(settings Settings, spec ProgramSpec) *Program {
	c := New(settings)
	guard := builder.Start(c)
	defer guard.End()

	s := builder.Instance()
	s.SetMangling(settings.MangleNames)
	spec.Build(s)
	return c.Finish(spec.Name, s.ProgramElements())
}

// BuildAll compiles the given recipes in parallel. Each recipe runs on
// its own goroutine with a fresh compiler and session, so builds never
// share mutable state. Result order matches the spec order.
func BuildAll(ctx context.Context, jobs int, settings Settings, specs []ProgramSpec) ([]*Program, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Each goroutine writes its own index, so no mutex is needed.
	results := make([]*Program, len(specs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(specs)))

	for i, spec := range specs {
		i, spec := i, spec
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = Build(settings, spec)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
