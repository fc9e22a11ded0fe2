package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	j "github.com/goccy/go-json"

	vdom "github.com/reoring/govdom"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "validate":
		validateCmd(os.Args[2:])
	case "render":
		renderCmd(os.Args[2:])
	case "bundle":
		bundleCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "vdom CLI\n\nUsage:\n  vdom validate [-yaml] [file]\n  vdom render   [-yaml] [file]\n  vdom bundle   [-yaml] [file]\n\nReads a structured element document (JSON by default) from the file or stdin.")
}

func inputFlags(fs *flag.FlagSet) *bool {
	return fs.Bool("yaml", false, "treat input as YAML instead of JSON")
}

func readInput(fs *flag.FlagSet) ([]byte, error) {
	if fs.NArg() > 0 && fs.Arg(0) != "-" {
		return os.ReadFile(fs.Arg(0))
	}
	return io.ReadAll(os.Stdin)
}

func load(args []string, name string) *vdom.Element {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	asYAML := inputFlags(fs)
	_ = fs.Parse(args)
	data, err := readInput(fs)
	if err != nil {
		fatal(err)
	}
	var src vdom.Source
	if *asYAML {
		src = vdom.YAMLBytes(data)
	} else {
		src = vdom.JSONBytes(data)
	}
	el, err := vdom.Parse(src)
	if err != nil {
		report(err)
		os.Exit(1)
	}
	return el
}

func validateCmd(args []string) {
	_ = load(args, "validate")
	color.New(color.FgGreen).Fprintln(os.Stderr, "ok")
}

func renderCmd(args []string) {
	el := load(args, "render")
	fmt.Println(el.HTML())
}

func bundleCmd(args []string) {
	el := load(args, "bundle")
	out, err := j.MarshalIndent(el.MIMEBundle(), "", "  ")
	if err != nil {
		fatal(err)
	}
	fmt.Println(string(out))
}

func report(err error) {
	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)
	if iss, ok := vdom.AsIssues(err); ok {
		red.Fprintf(os.Stderr, "invalid document (%d issue(s))\n", len(iss))
		for _, it := range iss {
			yellow.Fprintf(os.Stderr, "  %s", it.Path)
			fmt.Fprintf(os.Stderr, "  %s", it.Code)
			if it.Message != "" {
				fmt.Fprintf(os.Stderr, "  %s", it.Message)
			}
			fmt.Fprintln(os.Stderr)
		}
		return
	}
	red.Fprintln(os.Stderr, strings.TrimSpace(err.Error()))
}

func fatal(err error) {
	color.New(color.FgRed).Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}
