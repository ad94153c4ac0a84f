package resolver

import (
	"github.com/specialistvlad/lytgrid/internal/grid"
	"github.com/specialistvlad/lytgrid/internal/model"
)

// ResolvedLayout is a layout with its whole ancestor chain merged in.
type ResolvedLayout struct {
	Name string
	// Chain lists the layouts that were merged, root-most ancestor first.
	Chain       []string
	Grid        *grid.Grid
	Slots       map[string]*ResolvedSlot
	Breakpoints map[string]model.Breakpoint
}

// ResolvedSlot is a slot after inheritance. Children holds the resolved slots
// named by NestedGrid; names never defined in the chain are absent.
//
// Every slot of the merged chain is built, whether or not the root grid
// reaches it. A single slot whose nested grid names itself or an enclosing
// slot therefore makes every Resolve of that layout fail with ErrNestingCycle.
type ResolvedSlot struct {
	Name        string
	Properties  *model.Properties
	NestedGrid  *grid.Grid
	IsContainer bool
	Children    map[string]*ResolvedSlot
}

// Component returns the slot's component property.
func (s *ResolvedSlot) Component() (string, bool) {
	return s.Properties.Component()
}
