package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"stub-generator/internal/emit"
	"stub-generator/internal/manifest"
	"stub-generator/internal/naming"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow)
	okColor   = color.New(color.FgGreen)
)

var (
	generateManifest string
	generateOutDir   string
	generateSkipPi   bool
	generateSkipPyi  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render a module manifest into .pi and .pyi stub files",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate()
	},
}

func init() {
	generateCmd.Flags().StringVarP(&generateManifest, "manifest", "m", "", "path to the YAML module manifest (required)")
	generateCmd.Flags().StringVarP(&generateOutDir, "out", "o", ".", "directory the stub files are written into")
	generateCmd.Flags().BoolVar(&generateSkipPi, "skip-pi", false, "do not write the .pi dialect file")
	generateCmd.Flags().BoolVar(&generateSkipPyi, "skip-pyi", false, "do not write the .pyi dialect file")
	_ = generateCmd.MarkFlagRequired("manifest")
}

func runGenerate() error {
	f, err := manifest.LoadFile(generateManifest)
	if err != nil {
		return err
	}

	diags := manifest.Validate(f)
	for _, w := range diags.Warnings {
		warnColor.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	if err := diags.Error(); err != nil {
		return fmt.Errorf("invalid manifest %s: %w", generateManifest, err)
	}

	module, err := f.Build()
	if err != nil {
		return fmt.Errorf("building tree from %s: %w", generateManifest, err)
	}

	cfg := emit.DefaultConfig()
	cfg.Normalizer = naming.New(f.Prefix, f.Package)
	cfg.SkipPi = generateSkipPi
	cfg.SkipPyi = generateSkipPyi

	// Destination files drop the native underscore prefix: module
	// "_core" becomes core.pi / core.pyi.
	dest := filepath.Join(generateOutDir, strings.TrimPrefix(module.Name, "_"))

	if err := emit.NewGenerator(cfg).Generate(module, dest); err != nil {
		return err
	}

	okColor.Printf("generated stubs for %s at %s[.pi|.pyi]\n", module.Name, dest)
	return nil
}
