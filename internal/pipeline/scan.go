package pipeline

import (
	"github.com/framefold/instancer/internal/document"
	"github.com/framefold/instancer/internal/host"
	"github.com/framefold/instancer/internal/variant"
)

// collectRecords walks the page's component sets and builds one variant
// record per member, in document order. Ordered variant properties on the
// node are used as-is; members without any fall back to name
// classification inside ExtractProperties.
func collectRecords(src host.ScanSource, page *document.Node, kw variant.Keywords) ([]variant.Record, int) {
	sets := src.ComponentSets(page)

	var records []variant.Record
	for _, set := range sets {
		for _, member := range set.ChildrenOfType(document.TypeComponent) {
			raw := make([]variant.RawProperty, 0, len(member.VariantProperties))
			for _, p := range member.VariantProperties {
				raw = append(raw, variant.RawProperty{Key: p.Key, Value: p.Value})
			}
			records = append(records, variant.Record{
				Set:      set.Name,
				Member:   member.Name,
				Props:    variant.ExtractProperties(raw, member.Name, kw),
				MemberID: member.ID,
			})
		}
	}
	return records, len(sets)
}
