// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package grid parses ASCII box-drawing grids into a structured model of rows,
// cells and boundaries.
//
// A grid block is a run of border lines (starting with `+`) and content lines
// (starting with `|`):
//
//	+-----------|------------|>>sm-----+
//	| nav       | content    | aside   |
//	+-----------|------------|---------+
//
// Column boundaries are the union of every `+` and `|` offset found on any
// border line, so a full-width header row may sit on top of a row that has
// internal separators. Border text between two boundaries may carry responsive
// operators (`>>sm`, `<<md:content`, `>lg`, `<lg`, `!sm`); they are attached to
// the boundary that opens the decorated column.
//
// Content lines are split at literal `|` characters. A cell whose literal span
// crosses virtual boundaries spans several columns. Cells with no name are
// recorded as EmptyCell (`.`), matching the CSS grid-template-areas notation.
package grid
