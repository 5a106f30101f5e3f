package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the posy ASCII banner with a soft petal gradient.
func PrintBanner() {
	p := termenv.ColorProfile()
	s1 := termenv.String(`                       `).Foreground(p.Color("#f9a8d4"))
	s2 := termenv.String(`  _ __   ___  ___ _   _ `).Foreground(p.Color("#f472b6"))
	s3 := termenv.String(` | '_ \ / _ \/ __| | | |`).Foreground(p.Color("#ec4899"))
	s4 := termenv.String(` | |_) | (_) \__ \ |_| |`).Foreground(p.Color("#db2777"))
	s5 := termenv.String(` | .__/ \___/|___/\__, |`).Foreground(p.Color("#be185d"))
	s6 := termenv.String(` |_|              |___/ `).Foreground(p.Color("#9d174d"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println(s6)
	fmt.Println()
}
