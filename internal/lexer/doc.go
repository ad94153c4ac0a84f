// Package lexer turns raw .lyt source into a flat token stream.
//
// The lexer is deliberately permissive: it never fails. Characters it does
// not understand are skipped, `#` comments are dropped and grid lines are
// captured verbatim so the grid parser can work on character offsets.
// Newlines are kept as tokens because the layout grammar is line oriented.
package lexer
