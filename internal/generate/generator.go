package generate

import (
	"fmt"

	"migrt/internal/mapping"
	"migrt/internal/plsql"
)

// Generator turns one parsed migration spec into package source text. The
// deterministic synthesizer below is the always-available implementation;
// alternative generators (for example a model-assisted one) plug in through
// the same interface and can be chained in front of it with Fallback.
type Generator interface {
	Generate(spec *mapping.MigrationSpec) (plsql.Package, error)
}

// Deterministic renders packages through the plsql synthesizer.
type Deterministic struct {
	Config plsql.Config
}

// NewDeterministic returns the default generator with the given config.
func NewDeterministic(cfg plsql.Config) *Deterministic {
	return &Deterministic{Config: cfg}
}

func (g *Deterministic) Generate(spec *mapping.MigrationSpec) (plsql.Package, error) {
	return plsql.Synthesize(spec, g.Config)
}

// Fallback tries each generator in order and returns the first success. It
// fails only when every generator fails, with the last error.
type Fallback struct {
	Chain []Generator
}

func (f *Fallback) Generate(spec *mapping.MigrationSpec) (plsql.Package, error) {
	var lastErr error
	for _, g := range f.Chain {
		pkg, err := g.Generate(spec)
		if err == nil {
			return pkg, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no generators configured")
	}
	return plsql.Package{}, lastErr
}

var (
	_ Generator = (*Deterministic)(nil)
	_ Generator = (*Fallback)(nil)
)
