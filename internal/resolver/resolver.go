package resolver

import (
	"sort"

	"github.com/specialistvlad/lytgrid/internal/grid"
	"github.com/specialistvlad/lytgrid/internal/model"
)

// Resolver resolves layouts from a fixed lookup table.
type Resolver struct {
	layouts map[string]*model.Layout
}

// New builds a Resolver. When several layouts share a name the last wins.
func New(layouts []*model.Layout) *Resolver {
	table := make(map[string]*model.Layout, len(layouts))
	for _, l := range layouts {
		table[l.Name] = l
	}
	return &Resolver{layouts: table}
}

// Names returns every known layout name, sorted.
func (r *Resolver) Names() []string {
	names := make([]string, 0, len(r.layouts))
	for name := range r.layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve merges the named layout with its ancestors. It fails on the first
// nesting cycle found in any slot, reachable from the root grid or not.
func (r *Resolver) Resolve(name string) (*ResolvedLayout, error) {
	chain, err := r.chain(name)
	if err != nil {
		return nil, err
	}

	acc := &accumulator{
		slots:       make(map[string]*mergedSlot),
		breakpoints: make(map[string]model.Breakpoint),
	}
	names := make([]string, 0, len(chain))
	for _, l := range chain {
		for _, s := range layoutStrategies {
			s.merge(acc, l)
		}
		names = append(names, l.Name)
	}

	out := &ResolvedLayout{
		Name:        name,
		Chain:       names,
		Grid:        acc.grid,
		Slots:       make(map[string]*ResolvedSlot, len(acc.slots)),
		Breakpoints: acc.breakpoints,
	}
	for slotName := range acc.slots {
		rs, err := acc.build(name, slotName, nil)
		if err != nil {
			return nil, err
		}
		out.Slots[slotName] = rs
	}
	return out, nil
}

// chain returns the ancestor chain of name, root-most first.
func (r *Resolver) chain(name string) ([]*model.Layout, error) {
	l, ok := r.layouts[name]
	if !ok {
		return nil, &ResolutionError{Kind: ErrLayoutNotFound, Name: name}
	}

	var chain []*model.Layout
	seen := make(map[string]bool)
	var path []string
	for cur := l; ; {
		path = append(path, cur.Name)
		if seen[cur.Name] {
			return nil, &ResolutionError{Kind: ErrInheritanceCycle, Name: name, Path: path}
		}
		seen[cur.Name] = true
		chain = append(chain, cur)

		if cur.Extends == "" {
			break
		}
		parent, ok := r.layouts[cur.Extends]
		if !ok {
			return nil, &ResolutionError{Kind: ErrParentNotFound, Name: cur.Extends, RequestedBy: cur.Name}
		}
		cur = parent
	}

	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain, nil
}

type mergedSlot struct {
	properties *model.Properties
	nestedGrid *grid.Grid
	container  bool
}

type accumulator struct {
	grid        *grid.Grid
	slots       map[string]*mergedSlot
	breakpoints map[string]model.Breakpoint
}

// layoutStrategies fold one layout of the chain into the accumulator.
var layoutStrategies = []struct {
	field string
	merge func(acc *accumulator, l *model.Layout)
}{
	{field: "grid", merge: func(acc *accumulator, l *model.Layout) {
		if l.Grid != nil {
			acc.grid = l.Grid
		}
	}},
	{field: "slots", merge: func(acc *accumulator, l *model.Layout) {
		for _, name := range l.SlotNames() {
			dst, ok := acc.slots[name]
			if !ok {
				dst = &mergedSlot{properties: model.NewProperties()}
				acc.slots[name] = dst
			}
			for _, s := range slotStrategies {
				s.merge(dst, l.Slots[name])
			}
		}
	}},
	{field: "breakpoints", merge: func(acc *accumulator, l *model.Layout) {
		for name, bp := range l.Breakpoints {
			acc.breakpoints[name] = bp
		}
	}},
}

// slotStrategies fold one slot definition into the merged slot.
var slotStrategies = []struct {
	field string
	merge func(dst *mergedSlot, src *model.SlotDefinition)
}{
	{field: "properties", merge: func(dst *mergedSlot, src *model.SlotDefinition) {
		dst.properties = dst.properties.Merge(src.Properties)
	}},
	{field: "nestedGrid", merge: func(dst *mergedSlot, src *model.SlotDefinition) {
		if src.NestedGrid != nil {
			dst.nestedGrid = src.NestedGrid
		}
	}},
	{field: "container", merge: func(dst *mergedSlot, src *model.SlotDefinition) {
		dst.container = dst.container || src.IsContainer
	}},
}

// build creates the resolved slot and, recursively, its children. path holds
// the slots whose nested grids led here; meeting one of them again is a cycle.
func (acc *accumulator) build(layout, name string, path []string) (*ResolvedSlot, error) {
	m := acc.slots[name]
	rs := &ResolvedSlot{
		Name:        name,
		Properties:  m.properties.Clone(),
		NestedGrid:  m.nestedGrid,
		IsContainer: m.container,
	}
	if m.nestedGrid == nil {
		return rs, nil
	}

	path = append(path[:len(path):len(path)], name)
	rs.Children = make(map[string]*ResolvedSlot)
	for _, child := range m.nestedGrid.SlotNames() {
		for _, seen := range path {
			if seen == child {
				cycle := append(path[:len(path):len(path)], child)
				return nil, &ResolutionError{Kind: ErrNestingCycle, Name: layout, Path: cycle}
			}
		}
		if _, ok := acc.slots[child]; !ok {
			continue
		}
		c, err := acc.build(layout, child, path)
		if err != nil {
			return nil, err
		}
		rs.Children[child] = c
	}
	return rs, nil
}
