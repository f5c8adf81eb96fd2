package variant

// Record is one extracted variant of a component set. Immutable once built;
// a new scan constructs a fresh slice of records.
type Record struct {
	// Set is the name of the owning component set.
	Set string
	// Member is the name of the variant component itself.
	Member string
	// Props are the member's distinguishing attributes in insertion order.
	// Never empty after extraction (see ExtractProperties).
	Props PropertyList
	// MemberID is an opaque handle used only for later host lookup.
	MemberID string
}
