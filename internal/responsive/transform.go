package responsive

import (
	"strings"

	"github.com/specialistvlad/lytgrid/internal/grid"
)

// Transform derives the view of g at breakpoint. cumulative lists the
// breakpoints in effect, largest first; an empty list means just breakpoint.
func Transform(g *grid.Grid, breakpoint string, cumulative []string) *TransformedGrid {
	if len(cumulative) == 0 {
		cumulative = []string{breakpoint}
	}
	tg := &TransformedGrid{
		Breakpoint: breakpoint,
		Cumulative: append([]string(nil), cumulative...),
	}
	if g == nil {
		return tg
	}

	columns := g.ColumnCount()
	tg.Columns = cascade(g, columns, tg.Cumulative)

	resolved := make(map[int]bool)
	for _, row := range g.Rows {
		if isFullWidth(row, columns) {
			tg.Rows = append(tg.Rows, passThrough(row))
			continue
		}

		var out TransformedRow
		var folds []TransformedRow
		start := 0
		for i, cell := range row.Cells {
			col := start
			start += cell.ColumnSpan
			if col >= columns {
				break
			}

			state := tg.Columns[col]
			switch state.Disposition {
			case ColumnHidden:
			case ColumnNested:
				target := nestTarget(row.Cells, i, state)
				out.Cells = append(out.Cells, TransformedCell{
					Name:       cell.Name,
					ColumnSpan: cell.ColumnSpan,
					Type:       CellNest,
					Direction:  state.Direction,
					Target:     target,
				})
				if !resolved[col] {
					resolved[col] = true
					if tg.Columns[col].Target == "" {
						tg.Columns[col].Target = target
					}
				}
			case ColumnFolded:
				folds = append(folds, TransformedRow{
					FullWidth: true,
					Cells: []TransformedCell{{
						Name:       cell.Name,
						ColumnSpan: columns,
						Type:       CellFold,
						Direction:  state.Direction,
						Target:     state.Target,
					}},
				})
			default:
				span := 0
				for c := col; c < col+cell.ColumnSpan && c < columns; c++ {
					if tg.Columns[c].Disposition == ColumnVisible {
						span++
					}
				}
				if span == 0 {
					continue
				}
				out.Cells = append(out.Cells, TransformedCell{Name: cell.Name, ColumnSpan: span})
			}
		}

		if len(out.Cells) > 0 {
			tg.Rows = append(tg.Rows, out)
		}
		tg.Rows = append(tg.Rows, folds...)
	}
	return tg
}

// cascade computes the state of every column. Later breakpoints replace the
// state left by earlier ones.
func cascade(g *grid.Grid, columns int, cumulative []string) []ColumnState {
	states := make([]ColumnState, columns)
	for i := range states {
		states[i].Index = i
	}
	for _, bp := range cumulative {
		for i := range states {
			ops := g.OperatorsAt(i, bp)
			if len(ops) == 0 {
				continue
			}
			// Validation leaves at most one operator per breakpoint and boundary.
			states[i] = stateFor(i, ops[len(ops)-1])
		}
	}
	return states
}

func stateFor(i int, op grid.Operator) ColumnState {
	st := ColumnState{Index: i, Breakpoint: op.Breakpoint, Target: op.Target}
	switch op.Type {
	case grid.Hide:
		st.Disposition = ColumnHidden
		st.Target = ""
	case grid.NestRight:
		st.Disposition, st.Direction = ColumnNested, DirectionRight
	case grid.NestLeft:
		st.Disposition, st.Direction = ColumnNested, DirectionLeft
	case grid.FoldDown:
		st.Disposition, st.Direction = ColumnFolded, DirectionDown
	case grid.FoldUp:
		st.Disposition, st.Direction = ColumnFolded, DirectionUp
	}
	return st
}

func isFullWidth(row grid.Row, columns int) bool {
	return len(row.Cells) == 1 && row.Cells[0].ColumnSpan >= columns
}

func passThrough(row grid.Row) TransformedRow {
	out := TransformedRow{FullWidth: true}
	for _, c := range row.Cells {
		out.Cells = append(out.Cells, TransformedCell{Name: c.Name, ColumnSpan: c.ColumnSpan})
	}
	return out
}

// nestTarget returns the explicit target, or the neighbour the nest points
// at: the previous cell for a right nest, the next one for a left nest.
func nestTarget(cells []grid.Cell, i int, state ColumnState) string {
	if state.Target != "" {
		return state.Target
	}
	j := i - 1
	if state.Direction == DirectionLeft {
		j = i + 1
	}
	if j < 0 || j >= len(cells) || cells[j].Name == grid.EmptyCell {
		return ""
	}
	return cells[j].Name
}

// Column returns the state of column i. Out of range columns are visible.
func (tg *TransformedGrid) Column(i int) ColumnState {
	if i < 0 || i >= len(tg.Columns) {
		return ColumnState{Index: i}
	}
	return tg.Columns[i]
}

// ColumnCount returns the width of the derived grid. Only rows with more than
// one visible cell count; full-width rows never dictate the width.
func (tg *TransformedGrid) ColumnCount() int {
	multi, partial, full := 0, 0, 0
	for _, row := range tg.Rows {
		visible := row.visibleCells()
		width := 0
		for _, c := range visible {
			width += c.ColumnSpan
		}
		switch {
		case len(visible) > 1:
			multi = max(multi, width)
		case !row.FullWidth:
			partial = max(partial, width)
		default:
			full = max(full, width)
		}
	}
	switch {
	case multi > 0:
		return multi
	case partial > 0:
		return partial
	default:
		return full
	}
}

// TemplateAreas renders one area string per row in CSS grid-template-areas
// form. Short rows are padded with their last cell.
func (tg *TransformedGrid) TemplateAreas() []string {
	width := tg.ColumnCount()
	var areas []string
	for _, row := range tg.Rows {
		visible := row.visibleCells()
		if len(visible) == 0 {
			continue
		}
		names := make([]string, 0, width)
		for _, c := range visible {
			for n := 0; n < c.ColumnSpan; n++ {
				names = append(names, c.Name)
			}
		}
		for len(names) < width {
			names = append(names, names[len(names)-1])
		}
		areas = append(areas, strings.Join(names[:width], " "))
	}
	return areas
}

// VisibleSlotNames returns the rendered slot names in order of first
// appearance. Nested and empty cells are excluded.
func (tg *TransformedGrid) VisibleSlotNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, row := range tg.Rows {
		for _, c := range row.visibleCells() {
			if c.Name == grid.EmptyCell || seen[c.Name] {
				continue
			}
			seen[c.Name] = true
			names = append(names, c.Name)
		}
	}
	return names
}

// NestedRelationships lists every nested slot once with its target and
// direction.
func (tg *TransformedGrid) NestedRelationships() []NestedRelationship {
	seen := make(map[string]bool)
	var rels []NestedRelationship
	for _, row := range tg.Rows {
		for _, c := range row.Cells {
			if c.Type != CellNest || seen[c.Name] {
				continue
			}
			seen[c.Name] = true
			rels = append(rels, NestedRelationship{Slot: c.Name, Target: c.Target, Direction: c.Direction})
		}
	}
	return rels
}
