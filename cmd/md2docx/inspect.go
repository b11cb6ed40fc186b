// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/md2docx/internal/convert"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <input.md>",
	Short: "Print the segmented block sequence as YAML",
	Long: `Inspect runs only the block segmenter and dumps the resulting block
sequence to stdout as YAML. Useful for checking how a table (and the blank
lines inside it) will be reconstructed before converting.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}
		_, blocks, err := convert.Segment(source)
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(blocks)
		if err != nil {
			return fmt.Errorf("marshaling blocks: %w", err)
		}
		cmd.OutOrStdout().Write(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
