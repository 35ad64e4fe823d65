package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/ll1/ll"
	"github.com/npillmayer/ll1/ll/generator"
	"github.com/npillmayer/ll1/ll/grammars"
	"github.com/pterm/pterm"
)

const replHelp = `Commands:
  select N t    select cell M[N,t] of the parsing table
  rule i        apply production number i to the top of stack
  error N t     reject the derivation at error cell M[N,t]
  reset         start a new derivation
  table         show the parsing table, the top of stack highlighted
  trace         show the trace of the derivation
  grammar       show grammar, FIRST- and FOLLOW-sets
  save file     save the choices made so far to a script
  load file     replay a script
  help          show this text
  quit          leave`

// Intp is our interpreter object. It holds a single generation session at
// a time.
type Intp struct {
	def       *grammars.Definition
	session   *generator.Session
	out       io.Writer
	repl      *readline.Instance
	autoReset bool
}

// NewIntp creates an interpreter for a grammar, writing its output to out.
func NewIntp(def *grammars.Definition, out io.Writer) *Intp {
	return &Intp{
		def:     def,
		session: generator.NewSession(def.Table),
		out:     out,
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() error {
	repl, err := readline.New("ll1> ")
	if err != nil {
		tracer().Errorf("%v", err)
		return err
	}
	defer repl.Close()
	intp.repl = repl
	intp.showState()
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
	return nil
}

// Eval executes a single REPL command, given on a line by itself. It returns
// true if the user wants to quit.
func (intp *Intp) Eval(line string) (bool, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return false, nil
	}
	tracer().Debugf("command %v", args)
	cmd, args := args[0], args[1:]
	switch cmd {
	case "quit", "exit":
		return true, nil
	case "help":
		fmt.Fprintln(intp.out, replHelp)
	case "select", "s":
		if len(args) != 2 {
			return false, fmt.Errorf("usage: select N t")
		}
		return false, intp.choose(func(s *generator.Session) error {
			return s.Select(ll.Symbol(args[0]), ll.Symbol(args[1]))
		})
	case "rule", "r":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: rule i")
		}
		i, err := strconv.Atoi(args[0])
		if err != nil || intp.def.G.Rule(i) == nil {
			return false, fmt.Errorf("no production number %q", args[0])
		}
		return false, intp.choose(func(s *generator.Session) error {
			return s.ChooseProduction(intp.def.G.Rule(i))
		})
	case "error", "e":
		if len(args) != 2 {
			return false, fmt.Errorf("usage: error N t")
		}
		return false, intp.choose(func(s *generator.Session) error {
			return s.ChooseError(ll.Symbol(args[0]), ll.Symbol(args[1]))
		})
	case "reset":
		intp.session = intp.session.Reset()
		intp.showState()
	case "table":
		top, _ := intp.session.Top()
		renderTable(intp.out, intp.def.Table, top)
	case "trace":
		renderTrace(intp.out, intp.session.Steps(), false)
	case "grammar":
		renderGrammar(intp.out, intp.def)
	case "save":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: save file")
		}
		return false, saveScript(intp.session, args[0])
	case "load":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: load file")
		}
		return false, intp.load(args[0])
	default:
		return false, fmt.Errorf("unknown command %q, try 'help'", cmd)
	}
	return false, nil
}

// choose applies a choice to the current session. With auto-reset enabled,
// a choice after a terminated derivation starts a new one first.
func (intp *Intp) choose(f func(*generator.Session) error) error {
	if intp.session.Terminated() && intp.autoReset {
		tracer().Infof("derivation has terminated, starting over")
		intp.session = intp.session.Reset()
	}
	if err := f(intp.session); err != nil {
		return err
	}
	intp.showState()
	return nil
}

// load replays a script onto a new session. If replaying fails, the session
// is kept as far as the script could be applied.
func (intp *Intp) load(filename string) error {
	session, err := loadScript(intp.def.Table, filename)
	if session != nil {
		intp.session = session
		intp.showState()
	}
	return err
}

// loadInitFile executes REPL commands from a file, one per line.
func (intp *Intp) loadInitFile(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("unable to open init file: %w", err)
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, err := intp.Eval(line); err != nil {
			tracer().Errorf("Error line %d: %v", lineno, err)
		}
	}
	return scanner.Err()
}

// showState prints the trace, and either the verdict or the table with the
// next non-terminal to expand highlighted.
func (intp *Intp) showState() {
	renderTrace(intp.out, intp.session.Steps(), false)
	if intp.session.Terminated() {
		renderResult(intp.out, intp.session.Result())
		return
	}
	top, _ := intp.session.Top()
	fmt.Fprintf(intp.out, "Sentence: %s\n", sentenceText(intp.session.Sentence()))
	renderTable(intp.out, intp.def.Table, top)
}
