// Package variant implements the naming and deduplication engine: ordered
// variant properties, property extraction with a keyword fallback, name
// pattern rendering, and first-occurrence-wins deduplication by rendered
// name.
//
// Everything in this package is pure and call-scoped. Records are built
// fresh for every scan and never mutated; the surrounding pipeline owns
// all state.
package variant
