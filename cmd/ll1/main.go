package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/ll1/ll"
	"github.com/npillmayer/ll1/ll/automaton"
	"github.com/npillmayer/ll1/ll/generator"
	"github.com/npillmayer/ll1/ll/grammars"
	"github.com/npillmayer/ll1/ll/predictive"
	"github.com/npillmayer/ll1/ll/scanner"
	"github.com/npillmayer/ll1/ll/scanner/lexmach"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// Trace keys of all packages of this module. The --trace flag sets the level
// for all of them.
var traceKeys = []string{"ll1.ll", "ll1.scanner", "ll1.cli"}

type options struct {
	trace     string
	grammar   string
	json      bool
	html      bool
	script    string
	save      string
	init      string
	autoReset bool
	tokenizer string
}

func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "ll1",
		Short:        "LL(1) stack automaton: recognize and generate sentences",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := tracing.TraceLevelFromString(opts.trace)
			for _, key := range traceKeys {
				tracing.Select(key).SetTraceLevel(level)
			}
			tracer().Infof("Trace level is %s", opts.trace)
		},
	}
	root.SetOut(out)
	flags := root.PersistentFlags()
	flags.StringVar(&opts.trace, "trace", "Error", "Trace level [Debug|Info|Error]")
	flags.StringVarP(&opts.grammar, "grammar", "g", "G",
		fmt.Sprintf("grammar to use %v", grammars.Names()))
	root.AddCommand(newParseCmd(opts), newTableCmd(opts), newGenerateCmd(opts), newReplCmd(opts))
	return root
}

func loadGrammar(opts *options) (*grammars.Definition, error) {
	def, err := grammars.ByName(opts.grammar)
	if err != nil {
		return nil, err
	}
	def.G.Dump() // only visible in debug mode
	return def, nil
}

// --- parse -----------------------------------------------------------------

func newParseCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <sentence>",
		Short: "Recognize a sentence and print the trace of the derivation",
		Long: `Recognize a sentence with the predictive parser of a grammar.
White space between terminals is optional: "abdd" and "a b d d" denote
the same input. An empty argument list denotes the empty sentence.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := loadGrammar(opts)
			if err != nil {
				return err
			}
			result, trace, err := parse(def, strings.Join(args, " "), opts.tokenizer)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if opts.json {
				return writeJSON(out, derivation{Result: result, Trace: trace.Steps()})
			}
			renderTrace(out, trace.Steps(), true)
			renderResult(out, result)
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.json, "json", false, "print result and trace as JSON")
	cmd.Flags().StringVar(&opts.tokenizer, "tokenizer", "lex",
		"tokenizer for the input [lex|go]; 'go' splits Go-like tokens and needs blanks between identifiers")
	return cmd
}

// parse tokenizes input and runs the recognizer on it. Tokenizer "lex"
// uses a lexer for the terminals of the grammar, "go" a tokenizer for
// Go-like tokens.
func parse(def *grammars.Definition, input string, tokenizer string) (automaton.Result, *automaton.Trace, error) {
	tracer().Infof("Input argument is \"%s\"", input)
	var tok scanner.Tokenizer
	switch tokenizer {
	case "", "lex":
		lm, err := lexmach.ForGrammar(def.G)
		if err != nil {
			return automaton.Result{}, nil, fmt.Errorf("cannot create lexer: %w", err)
		}
		scan, err := lm.Scanner(strings.TrimSpace(input))
		if err != nil {
			return automaton.Result{}, nil, fmt.Errorf("cannot scan input: %w", err)
		}
		tok = scan
	case "go":
		tok = scanner.GoTokenizer(def.G.Name, strings.NewReader(input))
	default:
		return automaton.Result{}, nil, fmt.Errorf("unknown tokenizer %q, use 'lex' or 'go'", tokenizer)
	}
	return predictive.NewParser(def.Table).Parse(tok)
}

// derivation is the JSON form of a derivation.
type derivation struct {
	Result automaton.Result `json:"result"`
	Trace  []automaton.Step `json:"trace"`
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// --- table -----------------------------------------------------------------

func newTableCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print grammar, FIRST- and FOLLOW-sets and the parsing table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := loadGrammar(opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch {
			case opts.json:
				return writeJSON(out, def.Export())
			case opts.html:
				ll.TableAsHTML(def.Table, out)
				return nil
			}
			renderGrammar(out, def)
			renderTable(out, def.Table, "")
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.json, "json", false, "export grammar, sets and table as JSON")
	cmd.Flags().BoolVar(&opts.html, "html", false, "print the parsing table as HTML")
	return cmd
}

// --- generate --------------------------------------------------------------

func newGenerateCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [N:t ...]",
		Short: "Generate a sentence by selecting table cells",
		Long: `Generate a sentence by selecting cells M[N,t] of the parsing table,
in the order given. Selecting a production cell expands the non-terminal
on top of the stack, selecting an error cell rejects the derivation.
With --script, the choices of a recorded script are replayed first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := loadGrammar(opts)
			if err != nil {
				return err
			}
			session, err := generate(def, opts.script, args)
			if err != nil {
				return err
			}
			if opts.save != "" {
				if err := saveScript(session, opts.save); err != nil {
					return err
				}
			}
			out := cmd.OutOrStdout()
			if opts.json {
				return writeJSON(out, derivation{Result: session.Result(), Trace: session.Steps()})
			}
			renderTrace(out, session.Steps(), false)
			renderResult(out, session.Result())
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.json, "json", false, "print result and trace as JSON")
	cmd.Flags().StringVar(&opts.script, "script", "", "replay choices from a script file")
	cmd.Flags().StringVar(&opts.save, "save", "", "save the choices to a script file")
	return cmd
}

// generate starts a session, optionally replays a script, and then selects
// the cells given as "N:t" arguments.
func generate(def *grammars.Definition, script string, cells []string) (*generator.Session, error) {
	session := generator.NewSession(def.Table)
	if script != "" {
		var err error
		if session, err = loadScript(def.Table, script); err != nil {
			return nil, err
		}
	}
	for _, arg := range cells {
		N, t, err := parseCell(arg)
		if err != nil {
			return nil, err
		}
		if err := session.Select(N, t); err != nil {
			return nil, fmt.Errorf("cannot select %s: %w", arg, err)
		}
	}
	return session, nil
}

// parseCell splits a cell argument "N:t" into non-terminal and terminal.
func parseCell(arg string) (ll.Symbol, ll.Symbol, error) {
	parts := strings.SplitN(arg, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("illegal cell %q, expected N:t", arg)
	}
	return ll.Symbol(parts[0]), ll.Symbol(parts[1]), nil
}

func loadScript(table *ll.Table, filename string) (*generator.Session, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("unable to open script: %w", err)
	}
	defer f.Close()
	sc, err := generator.ReadScript(f)
	if err != nil {
		return nil, err
	}
	return sc.Replay(table)
}

func saveScript(session *generator.Session, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("unable to create script: %w", err)
	}
	if err := generator.Record(session).Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// --- repl ------------------------------------------------------------------

func newReplCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Generate sentences interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := loadGrammar(opts)
			if err != nil {
				return err
			}
			intp := NewIntp(def, cmd.OutOrStdout())
			intp.autoReset = opts.autoReset || gconf.GetBool("ll1-auto-reset")
			if opts.script != "" {
				if err := intp.load(opts.script); err != nil {
					return err
				}
			}
			if opts.init != "" {
				if err := intp.loadInitFile(opts.init); err != nil {
					return err
				}
			}
			pterm.Info.Println("Welcome to the LL(1) generator")
			tracer().Infof("Quit with <ctrl>D")
			return intp.REPL()
		},
	}
	cmd.Flags().BoolVar(&opts.autoReset, "auto-reset", false,
		"treat a choice after a terminated derivation as a reset")
	cmd.Flags().StringVar(&opts.script, "script", "", "replay choices from a script file")
	cmd.Flags().StringVar(&opts.init, "init", "", "execute REPL commands from a file")
	return cmd
}
