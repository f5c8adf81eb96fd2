package variant

import "strings"

// Property is a single key/value attribute of a variant.
type Property struct {
	Key   string
	Value string
}

// PropertyList is an ordered key/value mapping. Order is insertion order
// (the order the properties appear on the source node), which matters for
// the {allVariants} placeholder.
type PropertyList []Property

// Get returns the value for key and whether it is present.
func (pl PropertyList) Get(key string) (string, bool) {
	for _, p := range pl {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Keys returns the keys in insertion order.
func (pl PropertyList) Keys() []string {
	keys := make([]string, len(pl))
	for i, p := range pl {
		keys[i] = p.Key
	}
	return keys
}

// Pairs joins the properties as "key=value,key=value" in insertion order.
// This is the expansion of the {allVariants} placeholder.
func (pl PropertyList) Pairs() string {
	var b strings.Builder
	for i, p := range pl {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(p.Key)
		b.WriteByte('=')
		b.WriteString(p.Value)
	}
	return b.String()
}
