package parser

import "fmt"

// SyntaxError reports a token found where another construct was expected.
type SyntaxError struct {
	Line     int
	Column   int
	Expected string
	Found    string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d, column %d: expected %s, found %s", e.Line, e.Column, e.Expected, e.Found)
}
