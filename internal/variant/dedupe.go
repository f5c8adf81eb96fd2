package variant

// Deduplicate keeps one record per distinct rendered name, first occurrence
// wins. Relative order is preserved and the comparison is the exact,
// case-sensitive rendered string. Deterministic for a fixed input order;
// an empty input yields an empty result, not an error.
func Deduplicate(records []Record, p Pattern) []Record {
	seen := make(map[string]struct{}, len(records))
	var out []Record
	for _, r := range records {
		name := p.Render(r)
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, r)
	}
	return out
}
