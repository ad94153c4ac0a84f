// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package grid

// EmptyCell is the name given to a cell with no slot name.
const EmptyCell = "."

// Grid is the parsed form of an ASCII grid block. It is never mutated after
// Parse returns.
type Grid struct {
	Rows    []Row
	Columns []ColumnBoundary
	// RowBoundaries records every border line. Row-level operators are not
	// parsed yet, so their operator lists are always empty.
	RowBoundaries []RowBoundary
}

// Row is a single content line of the grid.
type Row struct {
	Cells []Cell
}

// Cell is a named area occupying one or more adjacent columns.
type Cell struct {
	Name       string
	ColumnSpan int
}

// ColumnBoundary is a vertical separator. Operators attached to boundary i
// transform column i, the column that starts at this boundary.
type ColumnBoundary struct {
	Position  int
	Operators []Operator
}

// RowBoundary is a horizontal separator identified by its line index within
// the (blank-stripped) grid block.
type RowBoundary struct {
	Line      int
	Operators []Operator
}

// ColumnCount returns the number of columns declared by the boundaries.
func (g *Grid) ColumnCount() int {
	if g == nil || len(g.Columns) < 2 {
		return 0
	}
	return len(g.Columns) - 1
}

// SlotNames returns every named cell in order of first appearance.
// Empty cells are skipped.
func (g *Grid) SlotNames() []string {
	if g == nil {
		return nil
	}
	seen := make(map[string]struct{})
	var names []string
	for _, row := range g.Rows {
		for _, cell := range row.Cells {
			if cell.Name == EmptyCell {
				continue
			}
			if _, ok := seen[cell.Name]; ok {
				continue
			}
			seen[cell.Name] = struct{}{}
			names = append(names, cell.Name)
		}
	}
	return names
}

// OperatorsAt returns the operators of column boundary i declared for the
// given breakpoint.
func (g *Grid) OperatorsAt(i int, breakpoint string) []Operator {
	if g == nil || i < 0 || i >= len(g.Columns) {
		return nil
	}
	var ops []Operator
	for _, op := range g.Columns[i].Operators {
		if op.Breakpoint == breakpoint {
			ops = append(ops, op)
		}
	}
	return ops
}
