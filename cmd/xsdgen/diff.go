package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// printDiff writes a line diff between have and want, colored when
// forced or when writing to a terminal.
func printDiff(w io.Writer, have, want string, forceColor bool) {
	useColor := forceColor
	if !useColor {
		if f, ok := w.(*os.File); ok {
			useColor = isatty.IsTerminal(f.Fd())
		}
	}
	del := fmt.Sprintf
	ins := fmt.Sprintf
	if useColor {
		del = color.New(color.FgRed).Sprintf
		ins = color.New(color.FgGreen).Sprintf
	}

	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(have, want)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			writeLines(w, "-", d.Text, del)
		case diffpatch.DiffInsert:
			writeLines(w, "+", d.Text, ins)
		case diffpatch.DiffEqual:
			// Keep the output small: drift in generated code tends to
			// be localized, the unchanged bulk is noise.
		}
	}
}

func writeLines(w io.Writer, prefix, text string, render func(string, ...any) string) {
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		fmt.Fprintln(w, render("%s%s", prefix, line))
	}
}
