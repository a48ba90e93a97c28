// Package parser chains the scanner, balancer, implicit-multiplication
// inserter and tree builder into the four public entry points spec
// §6 describes, following well/syntax/parser.Parser's shape
// (NewParser/SetDebug/Parse) even though the pipeline underneath is a
// rewrite sequence rather than a Pratt descent.
package parser

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/siadat/grapheme/ast"
	"github.com/siadat/grapheme/balancer"
	"github.com/siadat/grapheme/builder"
	"github.com/siadat/grapheme/implicitmul"
	"github.com/siadat/grapheme/scanner"
	"github.com/siadat/grapheme/token"
)

// Options configures the parts of the pipeline that are not purely
// structural (§6's option table). The zero value is the table's
// default for every field: implicit multiplication on
// (DisableImplicitMultiplication false), template depth
// scanner.DefaultMaxTemplateDepth, expression depth unbounded.
type Options struct {
	// DisableImplicitMultiplication turns off inserting a synthetic `*`
	// between adjacent value-like tokens. Named so the zero value
	// matches the table's "true" default without a separate "was this
	// set" flag.
	DisableImplicitMultiplication bool `yaml:"disableImplicitMultiplication"`
	// MaxTemplateDepth bounds the scanner's template-specialization
	// nesting. Zero means scanner.DefaultMaxTemplateDepth; values above
	// scanner.HardMaxTemplateDepth are clamped down to it.
	MaxTemplateDepth int `yaml:"maxTemplateDepth"`
	// MaxExpressionDepth bounds the finished tree's nesting depth. Zero
	// means unbounded.
	MaxExpressionDepth int `yaml:"maxExpressionDepth"`
	// Debug, when true, yaml-dumps the token stream to stderr at each
	// pipeline stage, mirroring well/newsh's yaml.Encoder debug dumps;
	// for ParseString/ParseExpression it also prints the resulting tree
	// to stderr as ast.ToString text.
	Debug bool `yaml:"debug"`
}

// LoadOptionsYAML reads an Options value from a YAML document, for
// callers (like the CLI's --options-file flag) that would rather point
// at a config file than repeat several flags, mirroring well/newsh.go's
// use of yaml.v3 for structured config/debug data.
func LoadOptionsYAML(r io.Reader) (Options, error) {
	var opts Options
	var dec = yaml.NewDecoder(r)
	if err := dec.Decode(&opts); err != nil {
		return Options{}, fmt.Errorf("loading options: %w", err)
	}
	return opts, nil
}

// Expression pairs a parsed root with the source text it came from, so
// error messages and re-stringification downstream don't need the
// caller to keep the original string around separately.
type Expression struct {
	Source string
	Root   ast.Item
}

// Parser holds Options across repeated calls and optionally dumps
// intermediate pipeline state to stderr, the way well's Parser wraps
// its scanner and a debug flag.
type Parser struct {
	opts  Options
	debug bool
}

// NewParser builds a Parser from opts; the zero value of Options is
// every option at its table default (see Options' doc comment).
func NewParser(opts Options) *Parser {
	return &Parser{opts: opts, debug: opts.Debug}
}

func (p *Parser) SetDebug(debug bool) {
	p.debug = debug
}

func (p *Parser) Parse(src string) (ast.Item, error) {
	return parseString(src, p.opts, p.debug)
}

func (p *Parser) ParseExpr(src string) (*Expression, error) {
	return parseExpression(src, p.opts, p.debug)
}

// ParseString is the top-level entry point: scan, balance, optionally
// insert implicit multiplication, then build. It returns the finished
// root node, or nil for an empty (all-whitespace) source.
func ParseString(src string, opts Options) (ast.Item, error) {
	return parseString(src, opts, opts.Debug)
}

// ParseExpression wraps ParseString's result together with the source
// text it was parsed from.
func ParseExpression(src string, opts Options) (*Expression, error) {
	return parseExpression(src, opts, opts.Debug)
}

// Tokenize runs only the scanner, for callers that want the raw token
// stream without building a tree (e.g. the `tokenize` CLI subcommand).
// It does not run the balancer or implicit-multiplication inserter:
// both require a position in the pipeline the caller hasn't committed
// to yet.
func Tokenize(src string, opts Options) ([]token.Token, error) {
	var toks, err = scanner.Scan(src, opts.MaxTemplateDepth)
	if opts.Debug {
		dumpYAML("tokens", toks)
	}
	return toks, err
}

// NodeToString pretty-prints node back to source text, for use in
// error messages and the `fmt` CLI subcommand.
func NodeToString(node ast.Item) string {
	return ast.ToString(node)
}

func parseString(src string, opts Options, debug bool) (ast.Item, error) {
	var toks, err = scanner.Scan(src, opts.MaxTemplateDepth)
	if err != nil {
		return nil, err
	}
	if debug {
		dumpYAML("scanned", toks)
	}

	if err := balancer.Balance(src, toks); err != nil {
		return nil, err
	}
	if debug {
		dumpYAML("balanced", toks)
	}

	if !opts.DisableImplicitMultiplication {
		toks = implicitmul.Insert(toks)
		if debug {
			dumpYAML("implicit-mul", toks)
		}
	}

	var root, buildErr = builder.Build(src, toks, builder.Options{MaxExpressionDepth: opts.MaxExpressionDepth})
	if buildErr != nil {
		return nil, buildErr
	}
	if debug && root != nil {
		fmt.Fprintf(os.Stderr, "--- tree ---\n%s\n", ast.ToString(root))
	}
	return root, nil
}

func parseExpression(src string, opts Options, debug bool) (*Expression, error) {
	var root, err = parseString(src, opts, debug)
	if err != nil {
		return nil, err
	}
	return &Expression{Source: src, Root: root}, nil
}

func dumpYAML(label string, v interface{}) {
	var enc = yaml.NewEncoder(os.Stderr)
	fmt.Fprintf(os.Stderr, "--- %s ---\n", label)
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "(yaml dump failed: %v)\n", err)
	}
}
