// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package grid

import (
	"regexp"
	"strings"
)

// OperatorType is the kind of responsive transformation applied to a column.
type OperatorType int

const (
	NestRight OperatorType = iota // >>
	NestLeft                      // <<
	FoldDown                      // >
	FoldUp                        // <
	Hide                          // !
)

var operatorSymbols = map[OperatorType]string{
	NestRight: ">>",
	NestLeft:  "<<",
	FoldDown:  ">",
	FoldUp:    "<",
	Hide:      "!",
}

var symbolOperators = map[string]OperatorType{
	">>": NestRight,
	"<<": NestLeft,
	">":  FoldDown,
	"<":  FoldUp,
	"!":  Hide,
}

// Symbol returns the source notation of the operator type.
func (t OperatorType) Symbol() string {
	return operatorSymbols[t]
}

// Structural reports whether the operator moves the column somewhere else.
// Nest and fold operators are structural and exclude each other.
func (t OperatorType) Structural() bool {
	return t != Hide
}

// Operator is a responsive operator attached to a boundary.
type Operator struct {
	Type       OperatorType
	Breakpoint string
	// Target is the explicit slot named after ':', empty when absent.
	Target string
}

// String renders the operator in source notation, e.g. ">>sm:content".
func (o Operator) String() string {
	s := o.Type.Symbol() + o.Breakpoint
	if o.Target != "" {
		s += ":" + o.Target
	}
	return s
}

// operatorRegex matches one operator. Breakpoint names and targets may
// contain single hyphens between word characters; a run of '-' ends the name
// so the border that follows is never swallowed.
var operatorRegex = regexp.MustCompile(`(>>|<<|>|<|!)([A-Za-z0-9_]+(?:-[A-Za-z0-9_]+)*)(?::([A-Za-z_][A-Za-z0-9_]*(?:-[A-Za-z0-9_]+)*))?`)

// parseOperators extracts every operator found in a border segment.
func parseOperators(segment string) []Operator {
	if !strings.ContainsAny(segment, "<>!") {
		return nil
	}
	var ops []Operator
	for _, m := range operatorRegex.FindAllStringSubmatch(segment, -1) {
		ops = append(ops, Operator{
			Type:       symbolOperators[m[1]],
			Breakpoint: m[2],
			Target:     m[3],
		})
	}
	return ops
}

func joinOperators(ops []Operator) string {
	parts := make([]string, len(ops))
	for i, op := range ops {
		parts[i] = op.String()
	}
	return strings.Join(parts, ", ")
}
