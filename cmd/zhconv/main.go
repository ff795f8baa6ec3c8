// Command zhconv converts Chinese text between regional variants.
//
//	zhconv convert -l zh-tw article.txt
//	zhconv convert -l zh-Hans --markup < wikitext.txt
//	zhconv locales
//
// Without option -l the target variant is taken from the user's
// environment.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/zhconv"
	"github.com/npillmayer/zhconv/locale"
	"github.com/npillmayer/zhconv/tables"
)

// Globals are flags shared by all commands.
type Globals struct {
	Trace  string `help:"Trace level (Debug, Info, Error)." default:"Error" enum:"Debug,Info,Error"`
	Tables string `help:"Conversion tables (JSON, plain or xz-compressed) to use instead of the built-in ones." type:"existingfile"`

	stdin  io.Reader `kong:"-"`
	stdout io.Writer `kong:"-"`
}

// CLI is the command line of zhconv.
type CLI struct {
	Globals

	Convert ConvertCmd `cmd:"" help:"Convert text to a Chinese variant."`
	Locales LocalesCmd `cmd:"" help:"List the supported variants."`
}

// ConvertCmd converts files or standard input to standard output.
type ConvertCmd struct {
	Locale    string   `short:"l" help:"Target variant, e.g. zh-tw or zh-Hant-TW."`
	Markup    bool     `short:"m" help:"Interpret MediaWiki conversion markup."`
	Normalize bool     `help:"Normalize input to NFC before conversion."`
	Files     []string `arg:"" optional:"" type:"existingfile" help:"Input files. Standard input is read if none are given."`
}

// Run executes the convert command.
func (c *ConvertCmd) Run(g *Globals) error {
	loc, err := c.target()
	if err != nil {
		return err
	}
	opts := []zhconv.Option{zhconv.Normalize(c.Normalize)}
	if g.Tables != "" {
		t, err := tables.LoadFile(g.Tables)
		if err != nil {
			return err
		}
		opts = append(opts, zhconv.WithTables(t))
	}
	conv, err := zhconv.New(opts...)
	if err != nil {
		return err
	}
	tracer().Infof("converting to %v", loc)
	if len(c.Files) == 0 {
		return c.convert(conv, loc, g.stdin, g.stdout)
	}
	for _, name := range c.Files {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		err = c.convert(conv, loc, f, g.stdout)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// environmentLocale determines the target variant if option -l is missing.
var environmentLocale = locale.FromEnvironment

func (c *ConvertCmd) target() (locale.Locale, error) {
	if c.Locale == "" {
		return environmentLocale(), nil
	}
	return locale.Parse(c.Locale)
}

func (c *ConvertCmd) convert(conv *zhconv.Converter, loc locale.Locale, r io.Reader, w io.Writer) error {
	if !c.Markup {
		_, err := io.Copy(w, conv.NewReader(r, loc, nil))
		return err
	}
	// rules declared by markup are in effect until the end of the document
	text, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	out, err := conv.ConvertAnnotated(string(text), loc, nil)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// LocalesCmd lists the supported variants with their fallback chains.
type LocalesCmd struct{}

// Run executes the locales command.
func (c *LocalesCmd) Run(g *Globals) error {
	for _, l := range locale.All {
		chain := locale.Chain(l)
		fallbacks := make([]string, len(chain)-1)
		for i, f := range chain[1:] {
			fallbacks[i] = f.String()
		}
		if _, err := fmt.Fprintf(g.stdout, "%-8s %s\t→ %s\n", l, l.Name(), strings.Join(fallbacks, ", ")); err != nil {
			return err
		}
	}
	return nil
}

// tracer traces with key 'zhconv.cli'.
func tracer() tracing.Trace {
	return tracing.Select("zhconv.cli")
}

func (g *Globals) setupTracing() {
	gtrace.CoreTracer = gologadapter.New()
	switch g.Trace {
	case "Debug":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	case "Info":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	default:
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("zhconv"),
		kong.Description("Convert Chinese text between Simplified, Traditional and regional variants."),
		kong.UsageOnError(),
		kong.Writers(stdout, os.Stderr),
	)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cli.Globals.stdin, cli.Globals.stdout = stdin, stdout
	cli.Globals.setupTracing()
	return ctx.Run(&cli.Globals)
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "zhconv: %v\n", err)
		os.Exit(1)
	}
}
