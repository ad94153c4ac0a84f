// Package responsive derives the per-breakpoint view of a grid.
//
// Breakpoints cascade desktop first: the caller passes the breakpoints in
// effect, largest viewport first and ending at the target. Walking that list,
// the operators of each breakpoint replace whatever state an earlier
// breakpoint left on the same column. Transform never fails; a breakpoint with
// no operators yields the grid unchanged.
package responsive
