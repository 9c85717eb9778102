package emit

import (
	"fmt"

	"stub-generator/internal/model"
	"stub-generator/internal/naming"
	"stub-generator/internal/section"
)

// Config holds configuration for stub generation.
type Config struct {
	// Normalizer maps native identifiers to their public stub spelling.
	Normalizer *naming.Normalizer
	// CoreModule is the sibling module whose import is implied and
	// therefore skipped in import preludes.
	CoreModule string
	// SkipPi disables generation of the .pi dialect file.
	SkipPi bool
	// SkipPyi disables generation of the .pyi dialect file.
	SkipPyi bool
}

// DefaultConfig returns the default generator configuration: no prefix
// renaming and both dialects enabled.
func DefaultConfig() Config {
	return Config{
		Normalizer: naming.New("", ""),
		CoreModule: "core",
	}
}

// Generator renders modules and splices the result into destination
// stub files.
type Generator struct {
	cfg Config
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(cfg Config) *Generator {
	return &Generator{cfg: cfg}
}

// Render walks the module tree and returns the generated body text.
func (g *Generator) Render(m *model.Module) string {
	return NewEmitter(g.cfg).Module(m)
}

// dialect pairs a file extension with its boilerplate header.
type dialect struct {
	ext    string
	header string
	skip   bool
}

// Generate renders the module once and writes the shared body into both
// dialect files derived from destFile ("<destFile>.pi" and
// "<destFile>.pyi"). Each file carries a section for the typing import
// prelude and a section named after the module for the body, so
// repeated generation only touches generator-owned regions.
func (g *Generator) Generate(m *model.Module, destFile string) error {
	body := g.Render(m)

	dialects := []dialect{
		{ext: ".pi", header: HeaderPi, skip: g.cfg.SkipPi},
		{ext: ".pyi", header: HeaderPyi, skip: g.cfg.SkipPyi},
	}

	for _, d := range dialects {
		if d.skip {
			continue
		}

		dest := destFile + d.ext
		if err := section.EnsureFile(dest, d.header, m.Docstring); err != nil {
			return fmt.Errorf("module %s: %w", m.Name, err)
		}

		if err := section.Write(dest, TypingImportsSection, TypingImports, section.AfterHeader); err != nil {
			return fmt.Errorf("module %s: %w", m.Name, err)
		}

		if err := section.Write(dest, m.Name, body, section.AtEnd); err != nil {
			return fmt.Errorf("module %s: %w", m.Name, err)
		}
	}

	return nil
}
