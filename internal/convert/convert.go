// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert orchestrates a single Markdown-to-DOCX conversion: input
// checks, output path resolution, the segment/build/serialize pipeline, and
// an atomic write of the result.
package convert

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/pdiddy/md2docx/internal/document"
	"github.com/pdiddy/md2docx/internal/docx"
	"github.com/pdiddy/md2docx/internal/segment"
	"github.com/pdiddy/md2docx/pkg/types"
)

// Sentinel errors for the two user-facing precondition failures. Both abort
// the run before any byte is written.
var (
	ErrInputNotFound = errors.New("input file not found")
	ErrOutputExists  = errors.New("output file already exists")
)

// Options controls output placement and typography for one conversion.
type Options struct {
	// Output is an explicit output path. It wins over OutDir.
	Output string
	// OutDir places the default-named output (input basename with .docx) in
	// the given directory, creating it if missing.
	OutDir string
	// Force permits overwriting an existing output file.
	Force bool
	// Docx carries the font configuration for the serializer.
	Docx docx.Options
}

// ResolveOutput determines the output path for input per the options:
// explicit Output, then OutDir with the default name, then the input path
// with its extension replaced by .docx. It creates OutDir when needed.
func ResolveOutput(input string, opts Options) (string, error) {
	if opts.Output != "" {
		return opts.Output, nil
	}
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + ".docx"
	if opts.OutDir != "" {
		if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
			return "", fmt.Errorf("creating output directory %s: %w", opts.OutDir, err)
		}
		return filepath.Join(opts.OutDir, base), nil
	}
	return filepath.Join(filepath.Dir(input), base), nil
}

// ConvertFile converts the Markdown file at input into a .docx, returning the
// output path. The destination is written atomically: the archive is built
// fully in memory, written to a temp file in the destination directory, and
// renamed into place. An existing destination without Force aborts with
// ErrOutputExists and the destination untouched. A status line goes to w on
// success.
func ConvertFile(input string, opts Options, w io.Writer) (string, error) {
	info, err := os.Stat(input)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrInputNotFound, input)
	}

	output, err := ResolveOutput(input, opts)
	if err != nil {
		return "", err
	}
	if !opts.Force {
		if _, err := os.Stat(output); err == nil {
			return "", fmt.Errorf("%w: %s (use --force to overwrite)", ErrOutputExists, output)
		}
	}

	source, err := os.ReadFile(input)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", input, err)
	}

	doc, err := BuildDocument(source)
	if err != nil {
		return "", fmt.Errorf("converting %s: %w", input, err)
	}

	var buf bytes.Buffer
	if err := docx.Write(&buf, doc, opts.Docx); err != nil {
		return "", fmt.Errorf("serializing %s: %w", output, err)
	}
	if err := writeAtomic(output, buf.Bytes()); err != nil {
		return "", err
	}

	fmt.Fprintf(w, "converted: %s -> %s\n", input, output)
	return output, nil
}

// BuildDocument runs the pure core pipeline on raw Markdown source: split
// optional YAML frontmatter into document properties, segment the body, and
// build the document model.
func BuildDocument(source []byte) (*types.Document, error) {
	props, blocks, err := Segment(source)
	if err != nil {
		return nil, err
	}
	doc := document.Build(blocks)
	doc.Properties = props
	return doc, nil
}

// Segment strips optional YAML frontmatter from source and segments the body
// into its block sequence.
func Segment(source []byte) (types.Properties, []types.Block, error) {
	var props types.Properties
	body, err := frontmatter.Parse(bytes.NewReader(source), &props)
	if err != nil {
		return types.Properties{}, nil, fmt.Errorf("parsing frontmatter: %w", err)
	}
	return props, segment.Blocks(string(body)), nil
}

// writeAtomic writes data to path via a temp file and rename so the
// destination never holds a partial document.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".md2docx-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
