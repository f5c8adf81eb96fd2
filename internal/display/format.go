package display

import (
	"fmt"
	"strings"
	"time"
)

// Count returns "3 variants" style phrases with naive pluralization.
func Count(n int, singular string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", singular)
	}
	return fmt.Sprintf("%d %ss", n, singular)
}

// FormatDuration rounds d for display: sub-second runs show milliseconds,
// longer runs show tenths of a second.
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// Summary renders labeled rows as an aligned block, one row per line.
func Summary(title string, rows [][2]string) string {
	width := 0
	for _, r := range rows {
		if len(r[0]) > width {
			width = len(r[0])
		}
	}
	var b strings.Builder
	b.WriteString(HeaderStyle.Render(title))
	b.WriteByte('\n')
	for _, r := range rows {
		pad := strings.Repeat(" ", width-len(r[0]))
		b.WriteString("  ")
		b.WriteString(LabelStyle.Render(r[0] + pad))
		b.WriteString("  ")
		b.WriteString(ValueStyle.Render(r[1]))
		b.WriteByte('\n')
	}
	return b.String()
}
