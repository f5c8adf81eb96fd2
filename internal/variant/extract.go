package variant

import (
	"sort"
	"strings"
)

// fallbackKey is the property key used when no structured properties exist
// and the member name has to be classified (or defaulted) instead.
const fallbackKey = "type"

// fallbackValue is used when classification finds no vocabulary keyword.
const fallbackValue = "default"

// RawProperty is a property as it arrives from the host document: key plus
// an untyped value. Non-string values are dropped during extraction.
type RawProperty struct {
	Key   string
	Value any
}

// MapProperties converts an unordered property mapping into a RawProperty
// slice sorted by key, so extraction stays deterministic for sources that
// cannot preserve insertion order.
func MapProperties(raw map[string]any) []RawProperty {
	if len(raw) == 0 {
		return nil
	}
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]RawProperty, 0, len(keys))
	for _, k := range keys {
		out = append(out, RawProperty{Key: k, Value: raw[k]})
	}
	return out
}

// ExtractProperties builds the never-empty property list for one variant.
//
// String entries from raw are copied in order with keys and values
// normalized to lower case (one casing policy everywhere: {Size: "Large"}
// extracts as size=large). Non-string values and empty keys are ignored.
// When nothing usable remains, fallbackName is classified against kw and
// the result becomes the single "type" property; if no keyword matches,
// the literal "default" is used. The rest of the pipeline therefore never
// sees an empty property list.
func ExtractProperties(raw []RawProperty, fallbackName string, kw Keywords) PropertyList {
	var props PropertyList
	for _, rp := range raw {
		key := strings.ToLower(strings.TrimSpace(rp.Key))
		if key == "" {
			continue
		}
		val, ok := rp.Value.(string)
		if !ok {
			continue
		}
		if _, dup := props.Get(key); dup {
			continue
		}
		props = append(props, Property{Key: key, Value: strings.ToLower(val)})
	}
	if len(props) > 0 {
		return props
	}

	if k, ok := kw.Classify(fallbackName); ok {
		return PropertyList{{Key: fallbackKey, Value: k}}
	}
	return PropertyList{{Key: fallbackKey, Value: fallbackValue}}
}
