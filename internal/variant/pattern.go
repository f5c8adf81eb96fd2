package variant

import (
	"regexp"
	"sort"
	"strings"
)

// Reserved placeholder tokens resolved outside the per-property pass.
const (
	TokenSetName     = "componentSetName"
	TokenAllVariants = "allVariants"
)

// DefaultPattern is used when the operator has never edited the pattern.
const DefaultPattern = Pattern("{componentSetName}/{allVariants}")

// Pattern is a name template with zero or more {token} placeholders. A
// token is componentSetName, allVariants, or a property key of the record
// being rendered. Unknown tokens are left verbatim; they are not an error.
type Pattern string

// Render produces the instance name for one record. Pure: the output
// depends only on the pattern, the record's set name, and its properties.
//
// Substitution order: {componentSetName} first, then each property
// placeholder longest-key-first (ties broken by insertion order), then
// {allVariants}. Longest-first makes the outcome deterministic when one
// property key is a prefix of another (e.g. type and typeface).
func (p Pattern) Render(r Record) string {
	out := strings.ReplaceAll(string(p), "{"+TokenSetName+"}", r.Set)

	props := make(PropertyList, len(r.Props))
	copy(props, r.Props)
	sort.SliceStable(props, func(i, j int) bool {
		return len(props[i].Key) > len(props[j].Key)
	})
	for _, pr := range props {
		out = strings.ReplaceAll(out, "{"+pr.Key+"}", pr.Value)
	}

	return strings.ReplaceAll(out, "{"+TokenAllVariants+"}", r.Props.Pairs())
}

var reToken = regexp.MustCompile(`\{([A-Za-z0-9_-]+)\}`)

// Tokens returns the distinct placeholder tokens in the pattern, in first
// appearance order. Used by diagnostics to report which tokens will
// actually resolve against a scanned document.
func (p Pattern) Tokens() []string {
	seen := make(map[string]bool)
	var tokens []string
	for _, m := range reToken.FindAllStringSubmatch(string(p), -1) {
		if seen[m[1]] {
			continue
		}
		seen[m[1]] = true
		tokens = append(tokens, m[1])
	}
	return tokens
}
