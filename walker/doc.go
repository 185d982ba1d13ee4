// Package walker provides traversal and lookup over parsed section trees.
//
// Traversal is always pre-order (a node before its children, siblings in
// document order), which is also the order that ties between duplicate titles
// are resolved in: the first node encountered wins.
package walker
