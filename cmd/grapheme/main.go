package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/siadat/grapheme/parser"
)

func main() {
	var app = &cli.App{
		Name:  "grapheme",
		Usage: "tokenize, parse, and reformat Grapheme expressions",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "dump intermediate pipeline state (tokens, tree) to stderr",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "tokenize",
				Usage: "print the token stream for an expression",
				Flags: exprFlags(),
				Action: func(cmdCtx *cli.Context) error {
					var src, readErr = readExpr(cmdCtx)
					if readErr != nil {
						return readErr
					}
					var opts, optsErr = loadOptions(cmdCtx)
					if optsErr != nil {
						return optsErr
					}
					var toks, err = parser.Tokenize(src, opts)
					if err != nil {
						return err
					}
					for _, t := range toks {
						fmt.Printf("%s\n", t.Kind())
					}
					return nil
				},
			},
			{
				Name:  "parse",
				Usage: "parse an expression and print its tree back out",
				Flags: exprFlags(),
				Action: func(cmdCtx *cli.Context) error {
					var src, readErr = readExpr(cmdCtx)
					if readErr != nil {
						return readErr
					}
					var opts, optsErr = loadOptions(cmdCtx)
					if optsErr != nil {
						return optsErr
					}
					var root, err = parser.ParseString(src, opts)
					if err != nil {
						return err
					}
					fmt.Println(parser.NodeToString(root))
					return nil
				},
			},
			{
				Name:  "fmt",
				Usage: "parse an expression and print its canonical form",
				Flags: exprFlags(),
				Action: func(cmdCtx *cli.Context) error {
					var src, readErr = readExpr(cmdCtx)
					if readErr != nil {
						return readErr
					}
					var opts, optsErr = loadOptions(cmdCtx)
					if optsErr != nil {
						return optsErr
					}
					var root, err = parser.ParseString(src, opts)
					if err != nil {
						return err
					}
					fmt.Println(parser.NodeToString(root))
					return nil
				},
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func exprFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "expr",
			Aliases: []string{"e"},
			Usage:   "expression source (reads stdin if omitted)",
		},
		&cli.IntFlag{
			Name:  "max-template-depth",
			Usage: "maximum template specialization nesting (0 = default)",
		},
		&cli.IntFlag{
			Name:  "max-expression-depth",
			Usage: "maximum tree nesting depth (0 = unbounded)",
		},
		&cli.BoolFlag{
			Name:  "no-implicit-mul",
			Usage: "disable implicit multiplication between adjacent values",
		},
		&cli.StringFlag{
			Name:  "options-file",
			Usage: "load Options from a YAML file instead of the flags above",
		},
	}
}

func readExpr(cmdCtx *cli.Context) (string, error) {
	if e := cmdCtx.String("expr"); e != "" {
		return e, nil
	}
	var byts, err = io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading expression from stdin: %w", err)
	}
	return string(byts), nil
}

// loadOptions builds Options either from --options-file, when given, or
// from the individual flags otherwise.
func loadOptions(cmdCtx *cli.Context) (parser.Options, error) {
	if path := cmdCtx.String("options-file"); path != "" {
		var f, err = os.Open(path)
		if err != nil {
			return parser.Options{}, fmt.Errorf("opening options file: %w", err)
		}
		defer f.Close()
		var opts, loadErr = parser.LoadOptionsYAML(f)
		if loadErr != nil {
			return parser.Options{}, loadErr
		}
		opts.Debug = opts.Debug || cmdCtx.Bool("debug")
		return opts, nil
	}
	return parser.Options{
		DisableImplicitMultiplication: cmdCtx.Bool("no-implicit-mul"),
		MaxTemplateDepth:              cmdCtx.Int("max-template-depth"),
		MaxExpressionDepth:            cmdCtx.Int("max-expression-depth"),
		Debug:                         cmdCtx.Bool("debug"),
	}, nil
}
