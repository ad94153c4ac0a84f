// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model holds the parsed, pre-resolution form of a .lyt source: the
// layouts, their slots and the breakpoints they declare.
//
// # Core Concepts
//
//   - Layout: a named page structure. It may extend a parent layout, own a
//     root grid and define slots and breakpoints.
//
//   - SlotDefinition: the properties attached to one named area of a grid.
//     A slot may carry its own nested grid, whose cells name further slots.
//
//   - Breakpoint: a named viewport threshold with an opaque size value.
//
//   - Properties: an ordered string map of the `key: value` lines of a slot.
//
// Values in this package are created once by the parser and never mutated
// afterwards. The resolver builds new values instead of updating these.
package model
