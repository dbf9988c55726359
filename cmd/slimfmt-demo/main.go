package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/clarete/slimfmt"
	"github.com/clarete/slimfmt/ascii"
)

type args struct {
	fmtStr   *string
	values   *string
	theme    *string
	color    *bool
	assert   *string
	trailing *bool
}

func readArgs() *args {
	a := &args{
		fmtStr: flag.String("fmt", "Hello, {}!", "Format string to render"),
		values: flag.String("args", "world", "Comma-separated argument list, substituted left to right"),

		theme:  flag.String("theme", "", "Path to a YAML theme file for STDERR_ASSERT diagnostics"),
		color:  flag.Bool("color", false, "Colorize diagnostics written to stderr"),
		assert: flag.String("assert", "off", "Assertion mode: off, debug, or stderr"),

		trailing: flag.Bool("newline", true, "Append a trailing newline to the rendered output"),
	}
	flag.Parse()
	return a
}

func parseAssertMode(name string) (slimfmt.AssertMode, error) {
	switch strings.ToLower(name) {
	case "off":
		return slimfmt.AssertOff, nil
	case "debug":
		return slimfmt.AssertDebug, nil
	case "stderr":
		return slimfmt.AssertStderr, nil
	default:
		return slimfmt.AssertOff, fmt.Errorf("unknown assert mode %q (want off, debug, or stderr)", name)
	}
}

func main() {
	a := readArgs()

	mode, err := parseAssertMode(*a.assert)
	if err != nil {
		log.Fatal(err)
	}
	slimfmt.SetAssertMode(mode)
	slimfmt.SetColorMode(*a.color)

	if *a.theme != "" {
		theme, err := ascii.LoadTheme(*a.theme)
		if err != nil {
			log.Fatal(err)
		}
		ascii.DefaultTheme = *theme
	}

	var vals []any
	if *a.values != "" {
		for _, v := range strings.Split(*a.values, ",") {
			vals = append(vals, v)
		}
	}

	if *a.trailing {
		slimfmt.PrintlnTo(os.Stdout, *a.fmtStr, vals...)
	} else {
		slimfmt.PrintTo(os.Stdout, *a.fmtStr, vals...)
	}
}
