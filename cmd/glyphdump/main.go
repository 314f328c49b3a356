package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"softraster/internal/glyph"
)

func main() {
	on := flag.String("on", "#", "Character printed for a lit cell")
	off := flag.String("off", ".", "Character printed for an unlit cell")
	flag.Parse()

	text := strings.Join(flag.Args(), " ")
	if text == "" {
		text = "softraster"
	}

	prov := glyph.NewFontProvider()
	for _, line := range strings.Split(strings.ReplaceAll(text, `\n`, "\n"), "\n") {
		rows, err := prov.Bitmap(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		for _, row := range rows {
			var b strings.Builder
			for _, lit := range row {
				if lit {
					b.WriteString(*on)
				} else {
					b.WriteString(*off)
				}
			}
			fmt.Println(b.String())
		}
		fmt.Println()
	}
}
