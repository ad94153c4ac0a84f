// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package grid

import "fmt"

// OperatorConflictError reports mutually exclusive operators declared for the
// same breakpoint on the same boundary.
type OperatorConflictError struct {
	Breakpoint string
	Operators  []Operator
	// Boundary is the index of the boundary, Position its character offset
	// (column boundaries) or line index (row boundaries).
	Boundary int
	Position int
	Row      bool
}

// Error implements the error interface.
func (e *OperatorConflictError) Error() string {
	kind, where := "column", "offset"
	if e.Row {
		kind, where = "row", "line"
	}
	return fmt.Sprintf("conflicting operators at breakpoint %q on %s boundary %d (%s %d): %s",
		e.Breakpoint, kind, e.Boundary, where, e.Position, joinOperators(e.Operators))
}

// Validate checks every boundary for operator conflicts and returns the first
// one found. Per boundary and breakpoint at most one structural operator and
// at most one hide operator are allowed, and never both together.
func Validate(columns []ColumnBoundary, rows []RowBoundary) error {
	for i, b := range columns {
		if err := validateBoundary(b.Operators); err != nil {
			err.Boundary, err.Position = i, b.Position
			return err
		}
	}
	for i, b := range rows {
		if err := validateBoundary(b.Operators); err != nil {
			err.Boundary, err.Position, err.Row = i, b.Line, true
			return err
		}
	}
	return nil
}

func validateBoundary(ops []Operator) *OperatorConflictError {
	if len(ops) < 2 {
		return nil
	}

	var order []string
	byBreakpoint := make(map[string][]Operator)
	for _, op := range ops {
		if _, ok := byBreakpoint[op.Breakpoint]; !ok {
			order = append(order, op.Breakpoint)
		}
		byBreakpoint[op.Breakpoint] = append(byBreakpoint[op.Breakpoint], op)
	}

	for _, bp := range order {
		var structural, hides []Operator
		for _, op := range byBreakpoint[bp] {
			if op.Type.Structural() {
				structural = append(structural, op)
			} else {
				hides = append(hides, op)
			}
		}
		switch {
		case len(structural) > 1:
			return &OperatorConflictError{Breakpoint: bp, Operators: structural}
		case len(hides) > 1:
			return &OperatorConflictError{Breakpoint: bp, Operators: hides}
		case len(structural) == 1 && len(hides) == 1:
			return &OperatorConflictError{Breakpoint: bp, Operators: byBreakpoint[bp]}
		}
	}
	return nil
}
