// Package dom abstracts the two document lookups the element registry needs:
// find one element by id and find all elements matching a selector.
// HTMLDocument implements them over a parsed page, Static over an in-memory
// fixture.
package dom
