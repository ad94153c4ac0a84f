// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package grid

import (
	"sort"
	"strings"
)

// Parse builds a Grid from the raw lines of a grid block. Blank lines and
// lines that are neither border nor content lines are ignored. The only error
// returned is an *OperatorConflictError.
func Parse(lines []string) (*Grid, error) {
	block := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || !isGridLine(line) {
			continue
		}
		block = append(block, line)
	}

	bounds := boundaryOffsets(block)
	g := &Grid{Columns: make([]ColumnBoundary, len(bounds))}
	for i, pos := range bounds {
		g.Columns[i].Position = pos
	}
	if len(bounds) == 0 {
		g.Columns = nil
	}

	for i, line := range block {
		if !isBorder(line) {
			continue
		}
		g.RowBoundaries = append(g.RowBoundaries, RowBoundary{Line: i})
		attachOperators(g, bounds, line)
	}

	if len(bounds) >= 2 {
		for _, line := range block {
			if isBorder(line) {
				continue
			}
			if row, ok := parseContentLine(line, bounds); ok {
				g.Rows = append(g.Rows, row)
			}
		}
	}

	if err := Validate(g.Columns, g.RowBoundaries); err != nil {
		return nil, err
	}
	return g, nil
}

// IsGridLine reports whether a trimmed line belongs to a grid block.
func IsGridLine(line string) bool {
	return isGridLine(strings.TrimSpace(line))
}

func isGridLine(line string) bool {
	return line != "" && (line[0] == '+' || line[0] == '|')
}

func isBorder(line string) bool {
	return line[0] == '+'
}

func isSeparator(c byte) bool {
	return c == '+' || c == '|'
}

// boundaryOffsets unions separator offsets over every border line.
func boundaryOffsets(block []string) []int {
	seen := make(map[int]struct{})
	for _, line := range block {
		if !isBorder(line) {
			continue
		}
		for i := 0; i < len(line); i++ {
			if isSeparator(line[i]) {
				seen[i] = struct{}{}
			}
		}
	}
	offsets := make([]int, 0, len(seen))
	for pos := range seen {
		offsets = append(offsets, pos)
	}
	sort.Ints(offsets)
	return offsets
}

// boundaryIndex returns the index of the first boundary at or after pos,
// or -1 when pos lies beyond the last boundary.
func boundaryIndex(bounds []int, pos int) int {
	i := sort.SearchInts(bounds, pos)
	if i >= len(bounds) {
		return -1
	}
	return i
}

// attachOperators scans the segments of one border line. The line is split
// at its own separators so that operator text is never cut by a boundary that
// only exists on another line.
func attachOperators(g *Grid, bounds []int, line string) {
	var seps []int
	for i := 0; i < len(line); i++ {
		if isSeparator(line[i]) {
			seps = append(seps, i)
		}
	}
	for k, start := range seps {
		end := len(line)
		if k+1 < len(seps) {
			end = seps[k+1]
		}
		ops := parseOperators(line[start+1 : end])
		if len(ops) == 0 {
			continue
		}
		idx := boundaryIndex(bounds, start)
		// The closing boundary opens no column.
		if idx < 0 || idx >= len(bounds)-1 {
			continue
		}
		g.Columns[idx].Operators = append(g.Columns[idx].Operators, ops...)
	}
}

// parseContentLine splits a content line at literal pipes. ok is false when
// the line holds nothing but empty cells, which is vertical padding.
func parseContentLine(line string, bounds []int) (Row, bool) {
	var pipes []int
	for i := 0; i < len(line); i++ {
		if line[i] == '|' {
			pipes = append(pipes, i)
		}
	}
	if last := pipes[len(pipes)-1]; strings.TrimSpace(line[last+1:]) != "" {
		pipes = append(pipes, len(line))
	}

	var row Row
	named := false
	for k := 0; k+1 < len(pipes); k++ {
		for _, cell := range splitLiteral(line, pipes[k], pipes[k+1], bounds) {
			if cell.Name != EmptyCell {
				named = true
			}
			row.Cells = append(row.Cells, cell)
		}
	}
	return row, named && len(row.Cells) > 0
}

type word struct {
	text string
	col  int
}

// splitLiteral turns the text between two literal pipes into cells. The
// literal span covers one column per virtual boundary it crosses; repeated
// names across those virtual columns collapse into one spanning cell.
func splitLiteral(line string, start, end int, bounds []int) []Cell {
	columns := len(bounds) - 1
	firstCol := sort.SearchInts(bounds, start+1) - 1
	if firstCol < 0 {
		firstCol = 0
	}
	if firstCol >= columns {
		return nil
	}

	var interior []int
	for _, b := range bounds {
		if b > start && b < end {
			interior = append(interior, b)
		}
	}
	limit := len(interior) + 1
	if limit > columns-firstCol {
		limit = columns - firstCol
	}

	var words []word
	text := line[start+1 : end]
	for i := 0; i < len(text); {
		if text[i] == ' ' || text[i] == '\t' {
			i++
			continue
		}
		j := i
		for j < len(text) && text[j] != ' ' && text[j] != '\t' {
			j++
		}
		abs := start + 1 + i
		col := sort.SearchInts(interior, abs+1)
		words = append(words, word{text: text[i:j], col: col})
		i = j
	}

	type group struct {
		name  string
		start int
	}
	var groups []group
	for _, w := range words {
		if w.col >= limit {
			break
		}
		if len(groups) > 0 {
			last := groups[len(groups)-1]
			if last.name == w.text || last.start == w.col {
				continue
			}
		}
		groups = append(groups, group{name: w.text, start: w.col})
	}
	if len(groups) == 0 {
		return []Cell{{Name: EmptyCell, ColumnSpan: limit}}
	}
	groups[0].start = 0

	cells := make([]Cell, len(groups))
	for i, g := range groups {
		next := limit
		if i+1 < len(groups) {
			next = groups[i+1].start
		}
		cells[i] = Cell{Name: g.name, ColumnSpan: next - g.start}
	}
	return cells
}
