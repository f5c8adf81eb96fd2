package display

import (
	"fmt"
	"os"
)

// PrintBanner prints the ASCII art banner, styled when colors are enabled.
func PrintBanner() {
	art := ` ___           _
|_ _|_ __  ___| |_ __ _ _ __   ___ ___ _ __
 | || '_ \/ __| __/ _` + "`" + ` | '_ \ / __/ _ \ '__|
 | || | | \__ \ || (_| | | | | (_|  __/ |
|___|_| |_|___/\__\__,_|_| |_|\___\___|_|
`
	fmt.Fprintln(os.Stdout, TitleStyle.Render(art))
}
