// Package app wires the compiler pipeline into a runnable application: it
// discovers .lyt sources, parses and resolves every layout, derives the view
// of each grid at every breakpoint and writes the result as a report. It is
// decoupled from any entrypoint such as the CLI.
package app
