// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Layout, SlotDefinition and Breakpoint nodes produced
// by the layout parser.
package model

import (
	"sort"

	"github.com/specialistvlad/lytgrid/internal/grid"
)

// Breakpoint is a named viewport threshold. Value is kept verbatim, e.g.
// "640px"; consumers decide how to interpret it.
type Breakpoint struct {
	Name  string
	Value string
}

// Layout is a parsed `@layout` block.
type Layout struct {
	Name string
	// Extends names the parent layout, empty for a root layout.
	Extends string
	// Grid is the root grid, nil when the layout inherits it.
	Grid        *grid.Grid
	Slots       map[string]*SlotDefinition
	Breakpoints map[string]Breakpoint
	// Line is the source line of the @layout keyword.
	Line int
}

// SlotDefinition is a parsed `[name]` block.
type SlotDefinition struct {
	Name       string
	Properties *Properties
	NestedGrid *grid.Grid
	// IsContainer marks a slot deliberately left without a component.
	IsContainer bool
}

// SlotNames returns the names of the layout's slots, sorted.
func (l *Layout) SlotNames() []string {
	names := make([]string, 0, len(l.Slots))
	for name := range l.Slots {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SortedBreakpoints returns the layout's breakpoints sorted by name.
func SortedBreakpoints(bps map[string]Breakpoint) []Breakpoint {
	out := make([]Breakpoint, 0, len(bps))
	for _, bp := range bps {
		out = append(out, bp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
