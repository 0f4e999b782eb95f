package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []string{
	`    _         _`,
	`   / \   _ __| |__   ___  _ __`,
	`  / _ \ | '__| '_ \ / _ \| '__|`,
	` / ___ \| |  | |_) | (_) | |`,
	`/_/   \_\_|  |_.__/ \___/|_|`,
}

// Using a green-to-teal scheme, one color per line.
var bannerColors = []string{"#4ade80", "#34d399", "#2dd4bf", "#22d3ee", "#38bdf8"}

// PrintBanner outputs the Arbor ASCII art banner to w.
func PrintBanner(w io.Writer, opts ...termenv.OutputOption) {
	out := termenv.NewOutput(w, opts...)
	fmt.Fprintln(out)
	for i, line := range bannerLines {
		fmt.Fprintln(out, out.String(line).Foreground(out.Color(bannerColors[i])))
	}
	fmt.Fprintln(out)
}
