package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	j "github.com/goccy/go-json"

	egml "github.com/envis-space/egml"
	"github.com/envis-space/egml/codec/geojson"
	"github.com/envis-space/egml/i18n"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "convert":
		convertCmd(os.Args[2:])
	case "validate":
		validateCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "egml CLI\n\nUsage:\n  egml convert [-opts options.yaml] [-o out.json] in.gml\n  egml validate in.gml\n\nNotes:\n  - convert reads one gml:MultiSurface document and writes a GeoJSON Feature.\n  - validate parses the document and reports issues as JSON on stderr.")
}

// convertOptions is the YAML shape of the -opts file.
type convertOptions struct {
	Precision  int    `yaml:"precision"`  // decimal places for ordinates, 0 = keep
	Indent     bool   `yaml:"indent"`     // pretty-print the GeoJSON output
	Lang       string `yaml:"lang"`       // issue message language: en, de
	MaxMembers int    `yaml:"maxMembers"` // surfaceMember cap, 0 = unlimited
}

func loadOptions(path string) (convertOptions, error) {
	var opts convertOptions
	if path == "" {
		return opts, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, err
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("parse %s: %w", path, err)
	}
	return opts, nil
}

func convertCmd(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	var optsPath string
	var out string
	fs.StringVar(&optsPath, "opts", "", "YAML options file")
	fs.StringVar(&out, "o", "", "output filename (default stdout)")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}

	opts, err := loadOptions(optsPath)
	if err != nil {
		fatalf("options: %v", err)
	}
	if opts.Lang != "" {
		i18n.SetLanguage(opts.Lang)
	}

	text, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fatalf("read input: %v", err)
	}
	ms, err := egml.ParseMultiSurface(string(text), egml.ParseOpt{MaxMembers: opts.MaxMembers})
	if err != nil {
		printIssues(err)
		os.Exit(1)
	}
	doc, err := geojson.Encode(ms, geojson.EncodeOpt{Precision: opts.Precision, Indent: opts.Indent})
	if err != nil {
		fatalf("encode: %v", err)
	}

	if out == "" {
		fmt.Println(string(doc))
		return
	}
	if err := os.WriteFile(out, append(doc, '\n'), 0o644); err != nil {
		fatalf("write output: %v", err)
	}
}

func validateCmd(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	var lang string
	fs.StringVar(&lang, "lang", "", "issue message language: en, de")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}
	if lang != "" {
		i18n.SetLanguage(lang)
	}

	text, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fatalf("read input: %v", err)
	}
	ms, err := egml.ParseMultiSurface(string(text))
	if err != nil {
		printIssues(err)
		os.Exit(1)
	}
	fmt.Printf("ok: id=%s members=%d\n", ms.Id(), ms.Len())
}

func printIssues(err error) {
	if iss, ok := egml.AsIssues(err); ok {
		b, merr := j.MarshalIndent(map[string]any{"issues": iss}, "", "  ")
		if merr == nil {
			fmt.Fprintln(os.Stderr, string(b))
			return
		}
	}
	fmt.Fprintln(os.Stderr, err)
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, "egml: "+format+"\n", a...)
	os.Exit(1)
}
