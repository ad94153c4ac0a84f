// Package parser turns .lyt source into layout AST nodes.
//
// It is a recursive-descent parser over the token stream produced by the
// lexer package. Grid-line runs are handed to the grid package as raw lines.
//
// Grammar sketch:
//
//	file        := { breakpoints | layout }
//	breakpoints := "@breakpoints" "{" { name ":" value } "}"
//	layout      := "@layout" name [ "extends" parent ] "{" { body } "}"
//	body        := grid-run | slot | breakpoints
//	slot        := "[" name "]" [ "{" grid-run "}" ] { key ":" value | "..." }
//
// Breakpoints declared at file level apply to every root layout of the
// source; a layout's own declarations win by name.
package parser
