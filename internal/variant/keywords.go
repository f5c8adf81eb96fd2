package variant

import "strings"

// Keywords is the closed vocabulary used to classify a variant by name when
// it carries no structured properties. The list is injectable (config) so
// the icon-library convention it encodes is not baked in.
type Keywords []string

// DefaultKeywords covers the common icon style vocabulary.
var DefaultKeywords = Keywords{"coloured", "filled", "outlined", "thinned", "universal"}

// Classify scans name case-insensitively for the first vocabulary keyword
// and returns it. Evaluation order is the vocabulary order; first match wins.
func (kw Keywords) Classify(name string) (string, bool) {
	lower := strings.ToLower(name)
	for _, k := range kw {
		if k == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(k)) {
			return strings.ToLower(k), true
		}
	}
	return "", false
}
