package responsive

// CellType classifies a transformed cell.
type CellType int

const (
	CellNormal CellType = iota
	CellNest
	CellFold
)

func (t CellType) String() string {
	switch t {
	case CellNest:
		return "nest"
	case CellFold:
		return "fold"
	default:
		return "normal"
	}
}

// Direction is where a nested or folded cell goes.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
	DirectionUp
	DirectionDown
)

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	default:
		return ""
	}
}

// Disposition is the state of a column after the cascade.
type Disposition int

const (
	ColumnVisible Disposition = iota
	ColumnHidden
	ColumnNested
	ColumnFolded
)

func (d Disposition) String() string {
	switch d {
	case ColumnHidden:
		return "hidden"
	case ColumnNested:
		return "nested"
	case ColumnFolded:
		return "folded"
	default:
		return "visible"
	}
}

// ColumnState is the winning operator state of one column.
type ColumnState struct {
	Index       int
	Disposition Disposition
	Direction   Direction
	// Target is the explicit ':target' of the winning operator, or, for a
	// nested column without one, the target resolved for its first cell.
	Target string
	// Breakpoint is where the winning operator was declared.
	Breakpoint string
}

// TransformedCell is a cell of the derived grid.
type TransformedCell struct {
	Name       string
	ColumnSpan int
	Type       CellType
	Direction  Direction
	// Target is set on nested cells (explicit or adjacent cell) and on folded
	// cells with an explicit target. Empty when there is none.
	Target string
}

// Visible reports whether the cell takes part in the rendered grid.
func (c TransformedCell) Visible() bool {
	return c.Type != CellNest
}

// TransformedRow is a row of the derived grid. FullWidth rows are either
// passed through unchanged or were created by a fold.
type TransformedRow struct {
	Cells     []TransformedCell
	FullWidth bool
}

func (r TransformedRow) visibleCells() []TransformedCell {
	var out []TransformedCell
	for _, c := range r.Cells {
		if c.Visible() {
			out = append(out, c)
		}
	}
	return out
}

// NestedRelationship records where a nested slot is rendered.
type NestedRelationship struct {
	Slot      string
	Target    string
	Direction Direction
}

// TransformedGrid is a grid as seen at one breakpoint.
type TransformedGrid struct {
	Breakpoint string
	Cumulative []string
	Rows       []TransformedRow
	// Columns holds one state per source column.
	Columns []ColumnState
}
