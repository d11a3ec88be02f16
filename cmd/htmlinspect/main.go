package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/htmlinspect"
	"github.com/fwojciec/htmlinspect/goquery"
	hislog "github.com/fwojciec/htmlinspect/slog"
)

func main() {
	m := NewMain()

	if err := m.Run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// CLI defines the command-line interface.
type CLI struct {
	File     string `arg:"" help:"HTML file to inspect."`
	Location string `required:"" help:"Document location URL used as the resolution base."`

	Links      bool `help:"Collect link relations."`
	Meta       bool `help:"Collect meta tags (classic, names, raw)."`
	References bool `help:"Collect URL references."`
	Opengraph  bool `help:"Collect OpenGraph properties."`

	HTTPOnly   bool   `name:"http-only" help:"Keep only http/https reference URLs."`
	MailtoOnly bool   `name:"mailto-only" help:"Keep only mailto reference URLs."`
	Max        int    `help:"Truncate each reference sequence to its first N entries."`
	Matching   string `help:"Keep only reference URLs matching the regular expression."`

	Verbose bool `short:"v" help:"Log construction details to stderr."`
}

// Output is the JSON document printed to stdout. Sections are present
// only when their collector was requested.
type Output struct {
	Location    string                     `json:"location"`
	Base        string                     `json:"base"`
	ContentHash string                     `json:"contentHash"`
	Links       htmlinspect.LinkTable      `json:"links,omitempty"`
	MetaClassic *htmlinspect.MetaClassic   `json:"metaClassic,omitempty"`
	MetaNames   htmlinspect.MetaNames      `json:"metaNames,omitempty"`
	MetaRaw     htmlinspect.MetaRaw        `json:"metaRaw,omitempty"`
	References  htmlinspect.ReferenceTable `json:"references,omitempty"`
	OpenGraph   htmlinspect.OpenGraph      `json:"opengraph,omitempty"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("htmlinspect"),
		kong.Description("Extract link, meta, OpenGraph, and URL reference metadata from an HTML file"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 || (len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help")) {
		_, _ = parser.Parse([]string{"--help"})
		if len(args) == 0 {
			return fmt.Errorf("no arguments provided")
		}
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	// No section flags means all sections.
	if !cli.Links && !cli.Meta && !cli.References && !cli.Opengraph {
		cli.Links, cli.Meta, cli.References, cli.Opengraph = true, true, true, true
	}

	filter := &htmlinspect.Filter{
		HTTPOnly:   cli.HTTPOnly,
		MailtoOnly: cli.MailtoOnly,
		MaximumSet: cli.Max,
	}
	if cli.Matching != "" {
		pattern, err := regexp.Compile(cli.Matching)
		if err != nil {
			return fmt.Errorf("invalid --matching pattern: %w", err)
		}
		filter.Matching = pattern
	}

	data, err := os.ReadFile(cli.File)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", cli.File, err)
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	constructor := hislog.NewLoggingConstructor(goquery.NewConstructor(), logger)
	doc, err := constructor.New(string(data), cli.Location)
	if err != nil {
		return err
	}

	inspector := htmlinspect.NewInspector(doc)
	out := Output{
		Location:    doc.Location(),
		Base:        doc.Base(),
		ContentHash: fmt.Sprintf("%016x", doc.ContentHash()),
	}
	if cli.Links {
		out.Links = inspector.Links()
	}
	if cli.Meta {
		classic := inspector.MetaClassic()
		out.MetaClassic = &classic
		out.MetaNames = inspector.MetaNames()
		out.MetaRaw = inspector.MetaRaw()
	}
	if cli.References {
		out.References = inspector.References(filter)
	}
	if cli.Opengraph {
		out.OpenGraph = inspector.OpenGraph()
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
