// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package segment splits raw Markdown text into an ordered sequence of typed
// blocks: headings, paragraphs, list items, code lines, and table rows.
//
// The segmenter recognizes a fixed subset of Markdown. Lines are classified
// one at a time by prefix rules; the only cross-line state is whether the
// scanner is inside a fenced code block. Blank lines never appear in the
// output: a blank sandwiched between table rows is absorbed so that a table
// split by stray empty lines still comes out as one table, and any other
// blank simply terminates the run that preceded it.
package segment

import (
	"regexp"
	"strings"

	"github.com/pdiddy/md2docx/pkg/types"
)

// orderedPattern matches a numbered list marker: "1. ", "42. ".
var orderedPattern = regexp.MustCompile(`^(\d+)\. +(.*)$`)

// separatorCell matches one cell of a table separator row: "---", ":--", "--:", ":-:".
var separatorCell = regexp.MustCompile(`^:?-+:?$`)

// Blocks segments text into its block sequence. It is a pure function: all
// scanning state lives in a local accumulator, so concurrent calls are safe.
func Blocks(text string) []types.Block {
	sc := scanner{}
	var raw []types.Block
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if b, ok := sc.classify(line); ok {
			raw = append(raw, b)
		}
	}
	return markTableHeaders(absorbBlanks(raw))
}

// scanner is the accumulator threaded through line classification. inCode
// tracks fenced-code mode: while set, every line except a closing fence is a
// code line, verbatim.
type scanner struct {
	inCode bool
}

// classify maps one source line to a block. The second return value is false
// for lines that produce no block (fence delimiters and separator rows).
// Classification precedence: heading, table row, fence toggle, list marker,
// blank, paragraph.
func (s *scanner) classify(line string) (types.Block, bool) {
	trimmed := strings.TrimSpace(line)

	if s.inCode {
		if isFence(trimmed) {
			s.inCode = false
			return types.Block{}, false
		}
		return types.Block{Kind: types.KindCodeLine, Text: line}, true
	}

	if level, text, ok := parseHeading(trimmed); ok {
		return types.Block{Kind: types.KindHeading, Level: level, Text: text}, true
	}

	if isPipeRow(trimmed) {
		cells := splitCells(trimmed)
		if isSeparatorRow(cells) {
			// Marks "the previous row was the header"; never materialized.
			return types.Block{}, false
		}
		return types.Block{Kind: types.KindTableRow, Cells: cells}, true
	}

	if isFence(trimmed) {
		s.inCode = true
		return types.Block{}, false
	}

	if ordered, text, ok := parseListItem(trimmed); ok {
		return types.Block{Kind: types.KindListItem, Ordered: ordered, Text: text}, true
	}

	if trimmed == "" {
		return types.Block{Kind: types.KindBlank}, true
	}

	return types.Block{Kind: types.KindParagraph, Text: trimmed}, true
}

// parseHeading recognizes ATX headings. Levels beyond 3 are clamped to 3,
// matching Word's three-level heading convention.
func parseHeading(line string) (level int, text string, ok bool) {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	if n == 0 || n > 6 || n >= len(line) || line[n] != ' ' {
		return 0, "", false
	}
	level = n
	if level > 3 {
		level = 3
	}
	return level, strings.TrimSpace(line[n+1:]), true
}

// isPipeRow reports whether a trimmed line is a table row candidate: it must
// start and end with a pipe and contain at least one cell.
func isPipeRow(line string) bool {
	return len(line) >= 2 && strings.HasPrefix(line, "|") && strings.HasSuffix(line, "|")
}

// splitCells splits a pipe row into trimmed cell texts. The outer pipes are
// stripped first, so "| a | b |" yields ["a", "b"].
func splitCells(line string) []string {
	inner := strings.TrimSuffix(strings.TrimPrefix(line, "|"), "|")
	parts := strings.Split(inner, "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}

// isSeparatorRow reports whether every cell is made of dashes with optional
// alignment colons, e.g. the "|---|:--:|" row under a table header.
func isSeparatorRow(cells []string) bool {
	for _, c := range cells {
		if !separatorCell.MatchString(c) {
			return false
		}
	}
	return len(cells) > 0
}

// isFence reports whether a trimmed line opens or closes a fenced code block.
// Both backtick and tilde fences are accepted; an info string after the
// opening fence ("```go") is ignored.
func isFence(line string) bool {
	return strings.HasPrefix(line, "```") || strings.HasPrefix(line, "~~~")
}

// parseListItem recognizes bullet ("-", "*", "+") and numbered ("1.") list
// markers. The stored text excludes the marker.
func parseListItem(line string) (ordered bool, text string, ok bool) {
	if len(line) >= 2 && strings.ContainsRune("-*+", rune(line[0])) && line[1] == ' ' {
		return false, strings.TrimSpace(line[2:]), true
	}
	if m := orderedPattern.FindStringSubmatch(line); m != nil {
		return true, strings.TrimSpace(m[2]), true
	}
	return false, "", false
}

// absorbBlanks removes every blank from the sequence. A blank immediately
// preceded by a table row and followed, skipping further blanks, by another
// table row is absorbed into the table rather than splitting it; any other
// blank only terminates the run before it. Either way no blank survives into
// the builder-visible sequence.
func absorbBlanks(blocks []types.Block) []types.Block {
	out := make([]types.Block, 0, len(blocks))
	for i, b := range blocks {
		if b.Kind != types.KindBlank {
			out = append(out, b)
			continue
		}
		if len(out) > 0 && out[len(out)-1].Kind == types.KindTableRow && nextNonBlankIsRow(blocks, i+1) {
			continue // interior table blank, absorbed
		}
		// Run terminator. Runs of different kinds are already distinct by
		// adjacency, so dropping the blank is sufficient.
	}
	return out
}

// nextNonBlankIsRow reports whether the first non-blank block at or after
// index i is a table row.
func nextNonBlankIsRow(blocks []types.Block, i int) bool {
	for ; i < len(blocks); i++ {
		if blocks[i].Kind == types.KindBlank {
			continue
		}
		return blocks[i].Kind == types.KindTableRow
	}
	return false
}

// markTableHeaders sets Header on the first row of each contiguous table-row
// run. The header is positional: with or without a separator row in the
// source, the first row of a table is its header.
func markTableHeaders(blocks []types.Block) []types.Block {
	for i := range blocks {
		if blocks[i].Kind != types.KindTableRow {
			continue
		}
		if i == 0 || blocks[i-1].Kind != types.KindTableRow {
			blocks[i].Header = true
		}
	}
	return blocks
}
