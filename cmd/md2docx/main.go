// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the md2docx CLI, a single-purpose
// converter from Markdown files to Word documents with native pipe-table
// rendering.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/md2docx/internal/convert"
	"github.com/pdiddy/md2docx/internal/docx"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd converts one Markdown file. The tool is single-purpose, so the
// conversion is the root command itself; version and inspect are the only
// subcommands.
var rootCmd = &cobra.Command{
	Use:   "md2docx <input.md>",
	Short: "Convert a Markdown file to a Word document",
	Long: `md2docx converts one Markdown file into one .docx document. Pipe-style
Markdown tables become native Word tables with grid borders and a bold,
centered header row, and blank lines inside a table do not split it.

Supported Markdown: headings (levels 1-3), paragraphs, bullet and numbered
lists, fenced code blocks, and pipe tables. Optional YAML frontmatter
(title, author, subject, keywords) becomes document metadata.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := optionsFromFlags(cmd)
		if err != nil {
			return err
		}
		_, err = convert.ConvertFile(args[0], opts, cmd.OutOrStdout())
		return err
	},
}

// optionsFromFlags merges command-line flags with viper config defaults.
// Flags win; the config file supplies out_dir and the font options.
func optionsFromFlags(cmd *cobra.Command) (convert.Options, error) {
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return convert.Options{}, err
	}
	outDir, err := cmd.Flags().GetString("out-dir")
	if err != nil {
		return convert.Options{}, err
	}
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return convert.Options{}, err
	}

	if outDir == "" {
		outDir = viper.GetString("out_dir")
	}

	fonts := docx.DefaultOptions()
	if v := viper.GetString("fonts.body"); v != "" {
		fonts.BodyFont = v
	}
	if v := viper.GetFloat64("fonts.body_size"); v > 0 {
		fonts.BodySize = v
	}
	if v := viper.GetString("fonts.code"); v != "" {
		fonts.CodeFont = v
	}
	if v := viper.GetFloat64("fonts.code_size"); v > 0 {
		fonts.CodeSize = v
	}

	return convert.Options{
		Output: output,
		OutDir: outDir,
		Force:  force,
		Docx:   fonts,
	}, nil
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./md2docx.yaml or ~/.config/md2docx/config.yaml)")
	rootCmd.Flags().StringP("output", "o", "", "output .docx path (default: input path with .docx extension)")
	rootCmd.Flags().String("out-dir", "", "directory for the default-named output, created if missing")
	rootCmd.Flags().BoolP("force", "f", false, "overwrite the output file if it exists")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("md2docx")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "md2docx"))
		}
	}

	viper.SetEnvPrefix("MD2DOCX")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
