package variant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func iconRecord() Record {
	return Record{
		Set:    "Icon",
		Member: "type=outlined, size=small",
		Props: PropertyList{
			{Key: "type", Value: "outlined"},
			{Key: "size", Value: "small"},
		},
		MemberID: "1:23",
	}
}

func TestPatternRender(t *testing.T) {
	cases := []struct {
		name    string
		pattern Pattern
		record  Record
		want    string
	}{
		{
			name: "no placeholders returns pattern unchanged",
			pattern: "plain-name", record: iconRecord(),
			want: "plain-name",
		},
		{
			name: "set name only",
			pattern: "{componentSetName}", record: iconRecord(),
			want: "Icon",
		},
		{
			name: "all variants joins pairs in insertion order",
			pattern: "{allVariants}", record: iconRecord(),
			want: "type=outlined,size=small",
		},
		{
			name: "property and set name combined",
			pattern: "{type}/{componentSetName}", record: iconRecord(),
			want: "outlined/Icon",
		},
		{
			name: "unknown placeholder left verbatim",
			pattern: "{componentSetName}-{nope}", record: iconRecord(),
			want: "Icon-{nope}",
		},
		{
			name: "repeated placeholder substituted everywhere",
			pattern: "{size}-{size}", record: iconRecord(),
			want: "small-small",
		},
		{
			name:    "empty pattern",
			pattern: "", record: iconRecord(),
			want: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.pattern.Render(tc.record))
		})
	}
}

// One key being a prefix of another must not change the outcome with
// iteration order: the longer key is always substituted first.
func TestPatternRenderLongestKeyFirst(t *testing.T) {
	rec := Record{
		Set: "Badge",
		Props: PropertyList{
			{Key: "type", Value: "solid"},
			{Key: "typeface", Value: "mono"},
		},
	}
	assert.Equal(t, "mono/solid", Pattern("{typeface}/{type}").Render(rec))

	// Same record with reversed insertion order renders identically.
	rev := Record{
		Set: "Badge",
		Props: PropertyList{
			{Key: "typeface", Value: "mono"},
			{Key: "type", Value: "solid"},
		},
	}
	assert.Equal(t, "mono/solid", Pattern("{typeface}/{type}").Render(rev))
}

// Render is pure: equal inputs give identical output across calls.
func TestPatternRenderPure(t *testing.T) {
	p := Pattern("{componentSetName}/{type}-{size}")
	first := p.Render(iconRecord())
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, p.Render(iconRecord()))
	}
}

func TestPatternTokens(t *testing.T) {
	cases := []struct {
		pattern Pattern
		want    []string
	}{
		{"{componentSetName}/{type}", []string{"componentSetName", "type"}},
		{"{a}{b}{a}", []string{"a", "b"}},
		{"no tokens here", nil},
		{"{unclosed", nil},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.pattern.Tokens(), "pattern %q", tc.pattern)
	}
}
