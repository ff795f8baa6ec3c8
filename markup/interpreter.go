/*
Package markup interprets MediaWiki manual conversion markup in Chinese text.

Annotated text may contain blocks of the form

	-{ [flags |] mapping }-

where mapping is a list of rules separated by ';'. A rule is either a bare
text (meaning the text for the neutral locale "zh"), a text prefixed by a
locale, as in "zh-tw:部落格", or either one prefixed by a unified key, as in
"巨集=>zh-cn:宏". Blocks may be nested within the texts of rules.

Without flags, a block is replaced by the text of its rule which is most
appropriate for the target locale. Flags are either directives:

	A   add the rules to the rule table and output the block
	H   add the rules to the rule table silently
	-   remove the rules from the rule table
	R   output the mapping text unchanged
	D   output a description of the block's rule
	N   output the native name of the variant named by the mapping
	T   title conversion (ignored)

or a list of locales, which restricts the rules in effect to texts for these
locales while converting the mapping text. All text outside of blocks is
converted with the locale's dictionary, where rules from the rule table take
precedence.

Malformed markup is never an error: a stray "}-" is copied to the output and
unclosed blocks are closed at the end of input. The only error condition is
markup nested deeper than a configurable maximum.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package markup

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/gorgo/lr/scanner"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/zhconv/dict"
	"github.com/npillmayer/zhconv/locale"
)

// tracer traces with key 'zhconv.markup'.
func tracer() tracing.Trace {
	return tracing.Select("zhconv.markup")
}

// ErrNestingTooDeep is returned for markup nested deeper than the maximum
// depth of an interpreter.
var ErrNestingTooDeep = errors.New("markup nested too deeply")

// DefaultMaxDepth is the maximum nesting depth of blocks, if not configured
// otherwise.
const DefaultMaxDepth = 63

// Interpreter converts annotated text. Interpreters do not hold state
// between calls and are safe for concurrent use.
type Interpreter struct {
	conv     Converter
	maxDepth int
}

// Option configures an interpreter.
type Option func(ip *Interpreter)

// MaxDepth sets the maximum nesting depth of blocks. Values < 1 are ignored.
func MaxDepth(n int) Option {
	return func(ip *Interpreter) {
		if n > 0 {
			ip.maxDepth = n
		}
	}
}

// NewInterpreter creates an interpreter which uses conv for the conversion
// of text.
func NewInterpreter(conv Converter, opts ...Option) *Interpreter {
	ip := &Interpreter{conv: conv, maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(ip)
	}
	return ip
}

// Interpret converts annotated text to locale l. Entries of override take
// precedence over the locale's dictionary, and rules declared by the text
// take precedence over override.
func (ip *Interpreter) Interpret(text string, l locale.Locale, override map[string]string) (string, error) {
	return ip.interpret(text, l, override, nil, 0)
}

// interpret converts text with base as override. ov is base as a dictionary,
// if the caller has built one already, or nil.
func (ip *Interpreter) interpret(text string, l locale.Locale, base map[string]string, ov *dict.Dictionary,
	depth int) (string, error) {
	//
	if depth > ip.maxDepth {
		tracer().Errorf("markup nesting depth %d exceeds maximum of %d", depth, ip.maxDepth)
		return "", fmt.Errorf("depth %d: %w", depth, ErrNestingTooDeep)
	}
	s := &session{
		ip:       ip,
		loc:      l,
		base:     base,
		table:    NewRuleTable(),
		ruledict: base,
		ov:       ov,
		depth:    depth,
	}
	lx := NewLexer(text)
	nested := 0
	var pending strings.Builder
	for {
		tokval, lexeme, pos, _ := lx.NextToken(scanner.AnyToken)
		if tokval == scanner.EOF {
			break
		}
		frag := lexeme.(string)
		switch tokval {
		case TokOpen:
			nested++
			pending.WriteString(frag)
		case TokClose:
			if nested == 0 {
				tracer().Debugf("stray %q at position %d", frag, pos)
				s.out.WriteString(frag)
				continue
			}
			pending.WriteString(frag)
			if nested--; nested > 0 {
				continue
			}
			raw := pending.String()
			pending.Reset()
			body := raw[len(openDelim) : len(raw)-len(closeDelim)]
			if err := s.block(body); err != nil {
				return "", err
			}
		default:
			if nested > 0 {
				pending.WriteString(frag)
			} else {
				s.out.WriteString(ip.conv.ConvertWith(frag, l, s.override()))
			}
		}
	}
	if nested > 0 {
		tracer().Debugf("closing %d unbalanced block(s) at end of input", nested)
		pending.WriteString(strings.Repeat(closeDelim, nested))
		rest, err := ip.interpret(pending.String(), l, s.ruledict, s.override(), depth)
		if err != nil {
			return "", err
		}
		s.out.WriteString(rest)
	}
	return s.out.String(), nil
}

// session holds the state of interpreting one text.
type session struct {
	ip       *Interpreter
	loc      locale.Locale
	base     map[string]string // caller's override, never modified
	table    *RuleTable
	ruledict map[string]string // rules of table as override, on top of base
	ov       *dict.Dictionary  // ruledict as a dictionary, built on demand
	depth    int
	out      strings.Builder
}

func (s *session) override() *dict.Dictionary {
	if s.ov == nil && len(s.ruledict) > 0 {
		s.ov = dict.NewDictionary(s.ruledict)
	}
	return s.ov
}

func (s *session) block(body string) error {
	b := parseBlock(body)
	rules, err := s.rules(parseSegments(b.mapping))
	if err != nil {
		return err
	}
	conv := s.ip.conv
	if !b.flagged {
		s.out.WriteString(Resolve(conv, s.loc, rules[0].Variants()))
		return nil
	}
	directives, ok := parseDirectives(b.flags)
	if !ok { // an empty flag limits to no locale at all
		allowed := make([]locale.Locale, len(b.flags))
		for i, f := range b.flags {
			allowed[i] = locale.Locale(f)
		}
		tracer().Debugf("block limited to %v", allowed)
		ov := limitOverride(conv, s.table.Rules(), s.loc, allowed, s.base)
		s.out.WriteString(conv.ConvertWith(b.mapping, s.loc, dict.NewDictionary(ov)))
		return nil
	}
	changed := false
	for _, d := range directives {
		tracer().Debugf("block directive %v", d)
		switch d {
		case Append, Hidden:
			for _, r := range rules {
				changed = s.table.Add(r) || changed
			}
			if d == Append {
				s.out.WriteString(s.appended(rules))
			}
		case Remove:
			for _, r := range rules {
				if s.table.Remove(r) {
					changed = true
				} else {
					tracer().Debugf("no rule %v to remove", r.Variants().Values())
				}
			}
		case Raw:
			s.out.WriteString(b.mapping)
		case Describe:
			rules[0].Variants().Each(func(l locale.Locale, text string) {
				name := l.Name()
				if name == "" {
					name = l.String()
				}
				s.out.WriteString(name + "：" + text + "；")
			})
		case VariantName:
			s.out.WriteString(locale.Locale(strings.TrimSpace(b.mapping)).Name())
		}
	}
	if changed {
		s.ruledict = BuildOverride(conv, s.table.Rules(), s.loc, s.base)
		s.ov = nil
	}
	return nil
}

// appended is the output of a block with directive A.
func (s *session) appended(rules []Rule) string {
	if u, ok := rules[len(rules)-1].(*UnifiedRule); ok {
		if text, ok := u.Texts.Get(s.loc); ok {
			return text
		}
		return s.ip.conv.ConvertWith(u.Key, s.loc, nil)
	}
	return Resolve(s.ip.conv, s.loc, rules[0].Variants())
}

// rules creates the rules of a block from its segments. The text of every
// segment is interpreted for the segment's locale first, which may depend on
// the rules in effect. Rules remember their texts as written, so that
// directive '-' finds them regardless. Consecutive
// segments with the same unified key form a single rule, as do consecutive
// bare segments.
func (s *session) rules(segments []segment) ([]Rule, error) {
	var rules []Rule
	var current Rule
	ov := s.override()
	for _, seg := range segments {
		text, err := s.ip.interpret(seg.text, seg.loc, s.ruledict, ov, s.depth+1)
		if err != nil {
			return nil, err
		}
		if seg.unified {
			if u, ok := current.(*UnifiedRule); !ok || u.Key != seg.key {
				if current != nil {
					rules = append(rules, current)
				}
				current = &UnifiedRule{Key: seg.key}
			}
		} else if current == nil {
			current = &BareRule{}
		}
		current.Variants().Set(seg.loc, text)
		declared(current).Set(seg.loc, seg.text)
	}
	return append(rules, current), nil
}

func declared(r Rule) *Variants {
	switch r := r.(type) {
	case *UnifiedRule:
		return &r.declared
	case *BareRule:
		return &r.declared
	}
	return nil
}
