// Package document models the canvas document file as a typed node tree:
// loading and saving the JSON form, order-preserving variant properties,
// and the traversal helpers the scan pipeline needs (pages, typed
// children, bounds, id lookup).
//
// The node vocabulary is open: nodes with unknown types are kept in the
// tree and written back out, though only the attributes modeled on Node
// survive a round trip.
package document
