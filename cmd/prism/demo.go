package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"prism/internal/builder"
	"prism/internal/compile"
	"prism/internal/diag"
	"prism/internal/ir"
	"prism/internal/version"
)

var (
	demoJobs     int
	demoSettings string
	demoCache    bool
)

func init() {
	demoCmd.Flags().IntVar(&demoJobs, "jobs", 0, "parallel build jobs (0 = GOMAXPROCS)")
	demoCmd.Flags().StringVar(&demoSettings, "settings", "", "path to a prism.toml settings file")
	demoCmd.Flags().BoolVar(&demoCache, "cache", false, "store sealed programs in the user cache")
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Build the bundled example shaders and dump their IR",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := compile.DefaultSettings()
		if demoSettings != "" {
			var err error
			settings, err = compile.LoadSettings(demoSettings)
			if err != nil {
				return err
			}
		}

		programs, err := compile.BuildAll(cmd.Context(), demoJobs, settings, demoRecipes())
		if err != nil {
			return err
		}

		var cache *compile.Cache
		if demoCache {
			cache, err = compile.OpenCache(settings.CacheDir)
			if err != nil {
				return err
			}
		}

		failed := 0
		for _, p := range programs {
			fmt.Fprintf(cmd.OutOrStdout(), "== %s ==\n%s\n", p.Name, p.Dump())
			if !p.Succeeded() {
				failed++
				diag.RenderTo(os.Stderr, p.Diagnostics)
				continue
			}
			if err := cache.Put(compile.HashKey(p.Name, version.Version), p, p.Dump()); err != nil {
				return fmt.Errorf("cache %s: %w", p.Name, err)
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d programs failed", failed, len(programs))
		}
		return nil
	},
}

// demoRecipes returns the bundled example shaders. Each one leans on a
// different part of the DSL surface.
func demoRecipes() []compile.ProgramSpec {
	return []compile.ProgramSpec{
		{Name: "solid", Build: solidShader},
		{Name: "fade", Build: fadeShader},
		{Name: "average", Build: averageShader},
	}
}

// solidShader returns a uniform color unchanged.
func solidShader(s *builder.Session) {
	b := s.TypeContext().Builtins()
	tint := s.NewVar("tint", b.Vec4, ir.Modifiers{Flags: ir.ModifierUniform})
	s.DeclareGlobal(tint, nil)

	main := s.Function("main", b.Vec4)
	main.Define(func() []*ir.Stmt {
		return []*ir.Stmt{s.Return(s.Ref(tint))}
	})
}

// fadeShader scales a color by a scalar, exercising mixed-shape binary
// conversion and ternary clamping.
func fadeShader(s *builder.Session) {
	b := s.TypeContext().Builtins()
	tint := s.NewVar("tint", b.Vec4, ir.Modifiers{Flags: ir.ModifierUniform})
	fade := s.NewVar("fade", b.Float, ir.Modifiers{Flags: ir.ModifierUniform})
	s.DeclareGlobal(tint, nil)
	s.DeclareGlobal(fade, nil)

	main := s.Function("main", b.Vec4)
	main.Define(func() []*ir.Stmt {
		amount := s.NewVar("amount", b.Float, ir.Modifiers{})
		clamped := s.Ternary(
			s.ConvertBinary(s.Ref(fade), ir.BinGreater, s.Float(1)),
			s.Float(1),
			s.Ref(fade),
		)
		return []*ir.Stmt{
			s.Declare(amount, clamped),
			s.Return(s.ConvertBinary(s.Ref(tint), ir.BinMul, s.Ref(amount))),
		}
	})
}

// averageShader averages vector components through swizzles and a helper
// function call.
func averageShader(s *builder.Session) {
	b := s.TypeContext().Builtins()
	tint := s.NewVar("tint", b.Vec4, ir.Modifiers{Flags: ir.ModifierUniform})
	s.DeclareGlobal(tint, nil)

	luma := s.Function("luma", b.Float, ir.Param{Name: "c", Type: b.Vec4})
	luma.Define(func() []*ir.Stmt {
		sum := s.ConvertBinary(
			s.ConvertBinary(s.Swizzle(luma.Param(0), "x"), ir.BinAdd, s.Swizzle(luma.Param(0), "y")),
			ir.BinAdd,
			s.Swizzle(luma.Param(0), "z"),
		)
		return []*ir.Stmt{s.Return(s.ConvertBinary(sum, ir.BinDiv, s.Float(3)))}
	})

	main := s.Function("main", b.Vec4)
	main.Define(func() []*ir.Stmt {
		gray := s.NewVar("gray", b.Float, ir.Modifiers{})
		return []*ir.Stmt{
			s.Declare(gray, s.Call("luma", s.Ref(tint))),
			s.Return(s.Construct(b.Vec4, s.Ref(gray), s.Ref(gray), s.Ref(gray), s.Float(1))),
		}
	})
}
