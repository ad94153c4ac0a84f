package responsive

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/lytgrid/internal/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGrid(t *testing.T, src string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(strings.Split(strings.Trim(src, "\n"), "\n"))
	require.NoError(t, err)
	return g
}

const navContentAside = `
+-----------|------------|>>sm-----+
| nav       | content    | aside   |
+-----------|------------|---------+
`

func TestTransform_NestRightTargetsPreviousCell(t *testing.T) {
	// --- Arrange ---
	g := mustGrid(t, navContentAside)

	// --- Act ---
	tg := Transform(g, "sm", []string{"sm"})

	// --- Assert ---
	col := tg.Column(2)
	assert.Equal(t, ColumnNested, col.Disposition)
	assert.Equal(t, DirectionRight, col.Direction)
	assert.Equal(t, "content", col.Target)
	assert.Equal(t, "sm", col.Breakpoint)

	assert.Equal(t, []string{"nav", "content"}, tg.VisibleSlotNames())
	assert.Equal(t, []NestedRelationship{{Slot: "aside", Target: "content", Direction: DirectionRight}}, tg.NestedRelationships())
	assert.Equal(t, 2, tg.ColumnCount())
	assert.Equal(t, []string{"nav content"}, tg.TemplateAreas())
}

func TestTransform_UnrelatedBreakpointIsIdentity(t *testing.T) {
	g := mustGrid(t, navContentAside)

	tg := Transform(g, "lg", []string{"lg"})

	assert.Equal(t, []string{"nav", "content", "aside"}, tg.VisibleSlotNames())
	assert.Empty(t, tg.NestedRelationships())
	assert.Equal(t, []string{"nav content aside"}, tg.TemplateAreas())
	for i := 0; i < 3; i++ {
		assert.Equal(t, ColumnVisible, tg.Column(i).Disposition)
	}
}

const cascadeGrid = `
+------|<<md!sm|<<md--+
| a    | b     | c    |
+------|-------|------+
`

func TestTransform_CumulativeOverride(t *testing.T) {
	g := mustGrid(t, cascadeGrid)

	t.Run("md alone nests both columns", func(t *testing.T) {
		tg := Transform(g, "md", []string{"md"})

		assert.Equal(t, ColumnNested, tg.Column(1).Disposition)
		assert.Equal(t, ColumnNested, tg.Column(2).Disposition)
		assert.Equal(t, []NestedRelationship{
			{Slot: "b", Target: "c", Direction: DirectionLeft},
			{Slot: "c", Target: "", Direction: DirectionLeft},
		}, tg.NestedRelationships())
		assert.Equal(t, []string{"a"}, tg.VisibleSlotNames())
	})

	t.Run("sm overrides md on its own column only", func(t *testing.T) {
		tg := Transform(g, "sm", []string{"md", "sm"})

		assert.Equal(t, ColumnHidden, tg.Column(1).Disposition)
		assert.Equal(t, "sm", tg.Column(1).Breakpoint)
		assert.Equal(t, ColumnNested, tg.Column(2).Disposition)
		assert.Equal(t, "md", tg.Column(2).Breakpoint)
		assert.Equal(t, []NestedRelationship{{Slot: "c", Direction: DirectionLeft}}, tg.NestedRelationships())
		assert.Equal(t, []string{"a"}, tg.VisibleSlotNames())
		assert.Equal(t, 1, tg.ColumnCount())
		assert.Equal(t, []string{"a"}, tg.TemplateAreas())
	})

	t.Run("order of the cumulative list decides", func(t *testing.T) {
		tg := Transform(g, "md", []string{"sm", "md"})
		assert.Equal(t, ColumnNested, tg.Column(1).Disposition)
	})

	t.Run("empty cumulative list means the breakpoint alone", func(t *testing.T) {
		tg := Transform(g, "sm", nil)
		assert.Equal(t, []string{"sm"}, tg.Cumulative)
		assert.Equal(t, ColumnHidden, tg.Column(1).Disposition)
		assert.Equal(t, ColumnVisible, tg.Column(2).Disposition)
	})
}

func TestTransform_IdentityKeepsStructure(t *testing.T) {
	testCases := []struct {
		name    string
		src     string
		areas   []string
		columns int
	}{
		{
			name:    "three columns",
			src:     navContentAside,
			areas:   []string{"nav content aside"},
			columns: 3,
		},
		{
			name: "header over two columns",
			src: `
+------------------+
| head             |
+--------+---------+
| left   | right   |
+--------+---------+
`,
			areas:   []string{"head head", "left right"},
			columns: 2,
		},
		{
			name: "spanning cell and empty cell",
			src: `
+------+------+------+
| top    top  | side |
+------+------+------+
| a    |      | side |
+------+------+------+
`,
			areas:   []string{"top top side", "a . side"},
			columns: 3,
		},
		{
			name: "single full-width row",
			src: `
+------+------+
| only        |
+------+------+
`,
			areas:   []string{"only only"},
			columns: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGrid(t, tc.src)
			tg := Transform(g, "none", nil)

			assert.Equal(t, tc.areas, tg.TemplateAreas())
			assert.Equal(t, tc.columns, tg.ColumnCount())
			assert.Equal(t, len(g.Columns)-1, tg.ColumnCount())
		})
	}
}

func TestTransform_FullWidthRowsPassThrough(t *testing.T) {
	g := mustGrid(t, `
+----------------------------------+
| header                           |
+-----------|------------|!sm------+
| nav       | content    | aside   |
+-----------|------------|---------+
`)

	tg := Transform(g, "sm", nil)

	expected := []TransformedRow{
		{FullWidth: true, Cells: []TransformedCell{{Name: "header", ColumnSpan: 3}}},
		{Cells: []TransformedCell{{Name: "nav", ColumnSpan: 1}, {Name: "content", ColumnSpan: 1}}},
	}
	if diff := cmp.Diff(expected, tg.Rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 2, tg.ColumnCount())
	assert.Equal(t, []string{"header header", "nav content"}, tg.TemplateAreas())
}

func TestTransform_FoldMovesCellToItsOwnRow(t *testing.T) {
	g := mustGrid(t, `
+------|>sm----+
| a    | b     |
+------|<md----+
| c    | d     |
+------|-------+
`)

	t.Run("fold down", func(t *testing.T) {
		tg := Transform(g, "sm", nil)

		expected := []TransformedRow{
			{Cells: []TransformedCell{{Name: "a", ColumnSpan: 1}}},
			{FullWidth: true, Cells: []TransformedCell{{Name: "b", ColumnSpan: 2, Type: CellFold, Direction: DirectionDown}}},
			{Cells: []TransformedCell{{Name: "c", ColumnSpan: 1}}},
			{FullWidth: true, Cells: []TransformedCell{{Name: "d", ColumnSpan: 2, Type: CellFold, Direction: DirectionDown}}},
		}
		if diff := cmp.Diff(expected, tg.Rows); diff != "" {
			t.Errorf("rows mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, 1, tg.ColumnCount())
		assert.Equal(t, []string{"a", "b", "c", "d"}, tg.TemplateAreas())
		assert.Equal(t, []string{"a", "b", "c", "d"}, tg.VisibleSlotNames())
	})

	t.Run("fold up", func(t *testing.T) {
		tg := Transform(g, "md", nil)
		assert.Equal(t, ColumnFolded, tg.Column(1).Disposition)
		assert.Equal(t, DirectionUp, tg.Rows[1].Cells[0].Direction)
	})
}

func TestTransform_NormalCellsAreRespanned(t *testing.T) {
	g := mustGrid(t, `
+------+------|!sm---+------+
| a    | b           | c    |
+------+------+------+------+
`)

	tg := Transform(g, "sm", nil)

	expected := []TransformedRow{{Cells: []TransformedCell{
		{Name: "a", ColumnSpan: 1},
		{Name: "b", ColumnSpan: 1},
		{Name: "c", ColumnSpan: 1},
	}}}
	if diff := cmp.Diff(expected, tg.Rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, ColumnHidden, tg.Column(2).Disposition)
	assert.Equal(t, []string{"a b c"}, tg.TemplateAreas())
}

func TestTransform_HiddenColumnDropsEveryStartingCell(t *testing.T) {
	g := mustGrid(t, `
+------|!sm----+
| a    | b     |
+------|-------+
| c    | d     |
+------|-------+
`)

	tg := Transform(g, "sm", nil)

	assert.Equal(t, []string{"a", "c"}, tg.VisibleSlotNames())
	assert.Equal(t, []string{"a", "c"}, tg.TemplateAreas())
	assert.Empty(t, tg.NestedRelationships())
}

func TestTransform_NestTargets(t *testing.T) {
	testCases := []struct {
		name     string
		border   string
		expected NestedRelationship
	}{
		{
			name:     "explicit target wins",
			border:   "+------|------|>>sm:a-+",
			expected: NestedRelationship{Slot: "c", Target: "a", Direction: DirectionRight},
		},
		{
			name:     "left nest targets the next cell",
			border:   "+------|<<sm--|-------+",
			expected: NestedRelationship{Slot: "b", Target: "c", Direction: DirectionLeft},
		},
		{
			name:     "right nest on the first column has no target",
			border:   "+>>sm--|------|-------+",
			expected: NestedRelationship{Slot: "a", Direction: DirectionRight},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGrid(t, tc.border+"\n| a    | b    | c     |\n+------|------|-------+")
			tg := Transform(g, "sm", nil)
			assert.Equal(t, []NestedRelationship{tc.expected}, tg.NestedRelationships())
		})
	}
}

func TestTransform_NilGrid(t *testing.T) {
	tg := Transform(nil, "sm", nil)
	require.NotNil(t, tg)
	assert.Empty(t, tg.Rows)
	assert.Equal(t, 0, tg.ColumnCount())
	assert.Empty(t, tg.TemplateAreas())
	assert.Equal(t, ColumnVisible, tg.Column(4).Disposition)
}

func TestTransform_DoesNotMutateGrid(t *testing.T) {
	g := mustGrid(t, cascadeGrid)
	before := mustGrid(t, cascadeGrid)

	Transform(g, "sm", []string{"md", "sm"})

	if diff := cmp.Diff(before, g); diff != "" {
		t.Errorf("grid was mutated (-want +got):\n%s", diff)
	}
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "nest", CellNest.String())
	assert.Equal(t, "fold", CellFold.String())
	assert.Equal(t, "normal", CellNormal.String())
	assert.Equal(t, "left", DirectionLeft.String())
	assert.Equal(t, "down", DirectionDown.String())
	assert.Equal(t, "", DirectionNone.String())
	assert.Equal(t, "hidden", ColumnHidden.String())
}
