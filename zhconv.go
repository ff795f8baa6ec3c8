package zhconv

import (
	"fmt"
	"io"
	"sync"

	"github.com/npillmayer/zhconv/dict"
	"github.com/npillmayer/zhconv/locale"
	"github.com/npillmayer/zhconv/markup"
	"github.com/npillmayer/zhconv/match"
	"github.com/npillmayer/zhconv/tables"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Converter converts Chinese text between variants. Converters are safe
// for concurrent use.
type Converter struct {
	tables    tables.Tables
	normalize bool
	maxDepth  int
	matcher   *match.Matcher
	interp    *markup.Interpreter
}

// Option configures a converter.
type Option func(c *Converter)

// WithTables makes a converter use the given conversion tables instead of
// the embedded ones.
func WithTables(t tables.Tables) Option {
	return func(c *Converter) {
		c.tables = t
	}
}

// Normalize makes a converter normalize input text to NFC before conversion.
// Conversion tables contain composed characters only, thus text containing
// compatibility ideographs or decomposed sequences will not convert
// properly without normalization.
func Normalize(b bool) Option {
	return func(c *Converter) {
		c.normalize = b
	}
}

// MaxDepth sets the maximum nesting depth of conversion markup.
func MaxDepth(n int) Option {
	return func(c *Converter) {
		c.maxDepth = n
	}
}

// New creates a converter. Without option WithTables, the tables embedded
// in package tables are used.
func New(opts ...Option) (*Converter, error) {
	c := &Converter{maxDepth: markup.DefaultMaxDepth}
	for _, opt := range opts {
		opt(c)
	}
	if c.tables == nil {
		t, err := tables.Embedded()
		if err != nil {
			return nil, fmt.Errorf("embedded conversion tables: %w", err)
		}
		c.tables = t
	}
	c.matcher = match.NewMatcher(dict.NewStore(c.tables))
	c.interp = markup.NewInterpreter(c.matcher, markup.MaxDepth(c.maxDepth))
	return c, nil
}

// Convert converts text to locale l. Entries of override take precedence
// over the conversion dictionary. For locale "zh" and for unrecognized
// locales text is returned as-is.
func (c *Converter) Convert(text string, l locale.Locale, override map[string]string) string {
	return c.matcher.Convert(c.prepare(text), l, override)
}

// ConvertAnnotated converts text containing conversion markup to locale l.
// It fails only for markup nested deeper than the converter's maximum
// depth.
func (c *Converter) ConvertAnnotated(text string, l locale.Locale, override map[string]string) (string, error) {
	return c.interp.Interpret(c.prepare(text), l, override)
}

// NewReader returns a reader which converts the text read from r to locale
// l. Conversion markup is not interpreted.
func (c *Converter) NewReader(r io.Reader, l locale.Locale, override map[string]string) io.Reader {
	var t transform.Transformer = c.matcher.Transformer(l, override)
	if c.normalize {
		t = transform.Chain(norm.NFC, t)
	}
	return transform.NewReader(r, t)
}

func (c *Converter) prepare(text string) string {
	if c.normalize {
		return norm.NFC.String(text)
	}
	return text
}

// --- Default converter -----------------------------------------------------

var defaultConverter struct {
	once sync.Once
	conv *Converter
}

// Default returns a converter for the embedded tables. It panics if the
// embedded tables are broken.
func Default() *Converter {
	defaultConverter.once.Do(func() {
		c, err := New()
		if err != nil {
			panic(err)
		}
		defaultConverter.conv = c
	})
	return defaultConverter.conv
}

// Convert converts text to locale l, using the default converter.
func Convert(text string, l locale.Locale, override map[string]string) string {
	return Default().Convert(text, l, override)
}

// ConvertAnnotated converts text containing conversion markup to locale l,
// using the default converter.
func ConvertAnnotated(text string, l locale.Locale, override map[string]string) (string, error) {
	return Default().ConvertAnnotated(text, l, override)
}
