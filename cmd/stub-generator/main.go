// Package main provides the CLI entrypoint for stub-generator.
//
// stub-generator renders API-description trees (YAML module manifests
// produced by an upstream extraction stage) into declaration-only
// Python interface stubs:
//   - Walks the tree and emits .pi / .pyi dialect text
//   - Splices the result into marker-bounded sections of destination
//     files, so regeneration coexists with hand-written content
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stub-generator",
	Short: "Generate Python interface stub files from module manifests",
	Long: `stub-generator renders an extracted API-description tree into
declaration-only .pi and .pyi stub files used by IDEs and type-aware
tooling. Destination files are updated through named marker-bounded
sections, so repeated generation is idempotent and preserves
hand-written content around the generated regions.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(dumpCmd)

	if err := rootCmd.Execute(); err != nil {
		errColor.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
