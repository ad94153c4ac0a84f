package app

import (
	"sort"

	"github.com/specialistvlad/lytgrid/internal/model"
	"github.com/specialistvlad/lytgrid/internal/resolver"
	"github.com/specialistvlad/lytgrid/internal/responsive"
)

// Report is the compiled output of a run.
type Report struct {
	Layouts []LayoutReport `json:"layouts"`
}

// LayoutReport describes one resolved layout and its views.
type LayoutReport struct {
	Name        string             `json:"name"`
	Chain       []string           `json:"chain"`
	Breakpoints []BreakpointReport `json:"breakpoints,omitempty"`
	Slots       []SlotReport       `json:"slots,omitempty"`
	// Views holds the base view first, then one per breakpoint, largest first.
	Views []ViewReport `json:"views"`
}

type BreakpointReport struct {
	Name  string  `json:"name"`
	Value string  `json:"value"`
	Px    float64 `json:"px"`
}

type SlotReport struct {
	Name       string            `json:"name"`
	Component  string            `json:"component,omitempty"`
	Container  bool              `json:"container,omitempty"`
	Properties map[string]string `json:"properties,omitempty"`
	Children   []string          `json:"children,omitempty"`
}

// ViewReport is a layout seen at one breakpoint. The base view has no
// breakpoint.
type ViewReport struct {
	Breakpoint string              `json:"breakpoint,omitempty"`
	Cumulative []string            `json:"cumulative,omitempty"`
	Grid       GridView            `json:"grid"`
	Nested     map[string]GridView `json:"nested,omitempty"`
}

// GridView is the rendered form of a TransformedGrid.
type GridView struct {
	Columns int          `json:"columns"`
	Areas   []string     `json:"areas,omitempty"`
	Visible []string     `json:"visible,omitempty"`
	Changed []ColumnView `json:"changed,omitempty"`
	Nests   []NestView   `json:"nests,omitempty"`
}

// ColumnView reports a column that is not plainly visible.
type ColumnView struct {
	Index      int    `json:"index"`
	State      string `json:"state"`
	Direction  string `json:"direction,omitempty"`
	Target     string `json:"target,omitempty"`
	Breakpoint string `json:"breakpoint"`
}

type NestView struct {
	Slot      string `json:"slot"`
	Target    string `json:"target,omitempty"`
	Direction string `json:"direction"`
}

func newGridView(tg *responsive.TransformedGrid) GridView {
	v := GridView{
		Columns: tg.ColumnCount(),
		Areas:   tg.TemplateAreas(),
		Visible: tg.VisibleSlotNames(),
	}
	for _, c := range tg.Columns {
		if c.Disposition == responsive.ColumnVisible {
			continue
		}
		v.Changed = append(v.Changed, ColumnView{
			Index:      c.Index,
			State:      c.Disposition.String(),
			Direction:  c.Direction.String(),
			Target:     c.Target,
			Breakpoint: c.Breakpoint,
		})
	}
	for _, rel := range tg.NestedRelationships() {
		v.Nests = append(v.Nests, NestView{Slot: rel.Slot, Target: rel.Target, Direction: rel.Direction.String()})
	}
	return v
}

func newSlotReports(resolved *resolver.ResolvedLayout) []SlotReport {
	names := make([]string, 0, len(resolved.Slots))
	for name := range resolved.Slots {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]SlotReport, 0, len(names))
	for _, name := range names {
		slot := resolved.Slots[name]
		r := SlotReport{Name: name, Container: slot.IsContainer}
		r.Component, _ = slot.Component()
		for _, key := range slot.Properties.Keys() {
			if key == string(model.PropComponent) {
				continue
			}
			if r.Properties == nil {
				r.Properties = make(map[string]string)
			}
			r.Properties[key], _ = slot.Properties.Get(key)
		}
		for child := range slot.Children {
			r.Children = append(r.Children, child)
		}
		sort.Strings(r.Children)
		out = append(out, r)
	}
	return out
}
