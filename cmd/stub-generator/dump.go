package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"stub-generator/internal/manifest"
)

var dumpManifest string

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Parse a module manifest and dump the resulting tree",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := manifest.LoadFile(dumpManifest)
		if err != nil {
			return err
		}

		module, err := f.Build()
		if err != nil {
			return fmt.Errorf("building tree from %s: %w", dumpManifest, err)
		}

		spew.Dump(module)
		return nil
	},
}

func init() {
	dumpCmd.Flags().StringVarP(&dumpManifest, "manifest", "m", "", "path to the YAML module manifest (required)")
	_ = dumpCmd.MarkFlagRequired("manifest")
}
