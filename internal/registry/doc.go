// Package registry holds the Comet reader's element registry: the fixed,
// ordered table of JavaScript export names bound to document lookups, and
// Registry, the snapshot of those lookups taken once against a document.
package registry
