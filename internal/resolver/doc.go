// Package resolver merges a layout with its ancestor chain into a single,
// self-contained ResolvedLayout.
//
// The chain is folded root first. Each field has one fixed merge rule:
//
//	grid         last non-nil grid wins
//	properties   per key, the descendant overwrites
//	nested grid  the descendant's grid replaces the ancestor's wholesale
//	container    OR over the chain
//	breakpoints  per name, the descendant overwrites
//
// After the fold, every slot with a nested grid gets its children resolved
// recursively from the merged slot table. A Resolver never mutates the layouts
// it was built from and is safe for concurrent use.
package resolver
