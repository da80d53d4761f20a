package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/leonardinius/gomango/internal/config"
	"github.com/leonardinius/gomango/internal/interpreter"
	"github.com/leonardinius/gomango/internal/mangoerrors"
	"github.com/leonardinius/gomango/internal/parser"
	"github.com/leonardinius/gomango/internal/scanner"
	"github.com/leonardinius/gomango/internal/token"
)

var ErrUsage = errors.New("Usage: gomango [script]")

type MangoApp struct {
	err         error
	cfg         *config.Config
	stdout      io.Writer
	stderr      io.Writer
	reporter    mangoerrors.ErrReporter
	interpreter interpreter.Interpreter
	printer     *parser.AstPrinter
}

func NewMangoApp(cfg *config.Config, stdout, stderr io.Writer) *MangoApp {
	return &MangoApp{
		cfg:         cfg,
		stdout:      stdout,
		stderr:      stderr,
		reporter:    mangoerrors.NewErrReporter(stderr),
		interpreter: interpreter.NewInterpreter(interpreter.WithStdout(stdout)),
		printer:     parser.NewAstPrinter(),
	}
}

func (app *MangoApp) reportError(err error) {
	app.reporter.ReportPanic(err)
	app.err = err
}

func (app *MangoApp) Main(args []string) int {
	var err error
	switch len(args) {
	case 1:
		err = app.runFile(args[0])
	case 0:
		err = app.runPrompt()
	default:
		err = ErrUsage
	}

	if err != nil {
		app.reportError(err)
	}

	return mangoerrors.ExitCode(app.err)
}

func (app *MangoApp) resetError() {
	app.err = nil
}

func (app *MangoApp) runPrompt() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          app.cfg.Prompt,
		HistoryFile:     app.cfg.HistoryFile,
		AutoComplete:    keywordCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdout:          app.stdout,
		Stderr:          app.stderr,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "exit" {
			return nil
		}

		if err = app.runLine(line); err != nil {
			app.reportError(err)
			app.resetError()
		}
	}
}

func (app *MangoApp) runFile(scriptPath string) error {
	bytes, err := os.ReadFile(scriptPath)
	if err != nil {
		return err
	}

	return app.timed(func(ctx context.Context) error {
		return app.run(ctx, string(bytes))
	})
}

// runLine echoes the value of a bare expression, anything else runs as a program.
func (app *MangoApp) runLine(line string) error {
	return app.timed(func(ctx context.Context) error {
		tokens, err := scanner.NewScanner(line).Scan()
		if err != nil {
			return err
		}

		if expr, err := parser.NewParser(tokens).ParseExpression(); err == nil {
			app.dump(expr)
			value, err := app.interpreter.Evaluate(ctx, expr)
			if err != nil {
				return err
			}
			fmt.Fprintln(app.stdout, app.stringify(value))
			return nil
		}

		return app.interpret(ctx, tokens)
	})
}

func (app *MangoApp) run(ctx context.Context, input string) error {
	tokens, err := scanner.NewScanner(input).Scan()
	if err != nil {
		return err
	}

	return app.interpret(ctx, tokens)
}

func (app *MangoApp) interpret(ctx context.Context, tokens []token.Token) error {
	program, err := parser.NewParser(tokens).Parse()
	if err != nil {
		return err
	}

	app.dump(program)
	return app.interpreter.Interpret(ctx, program)
}

// timed runs fn interruptible by SIGINT, reporting the elapsed time when configured.
func (app *MangoApp) timed(fn func(ctx context.Context) error) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	err := fn(ctx)
	if app.cfg.Timing {
		fmt.Fprintf(app.stderr, "elapsed: %s\n", time.Since(start))
	}
	return err
}

func (app *MangoApp) dump(node any) {
	if app.cfg.Dump != config.DumpAst {
		return
	}

	switch node := node.(type) {
	case parser.Expr:
		fmt.Fprintln(app.stderr, app.printer.Print(node))
	case parser.Stmt:
		fmt.Fprintln(app.stderr, app.printer.PrintStmt(node))
	}
}

// stringify quotes strings so the REPL echo tells "1" from 1.
func (app *MangoApp) stringify(value token.Value) string {
	return fmt.Sprintf("%#v", value)
}

func keywordCompleter() *readline.PrefixCompleter {
	keywords := scanner.Keywords()
	items := make([]readline.PrefixCompleterInterface, 0, len(keywords))
	for _, keyword := range keywords {
		items = append(items, readline.PcItem(keyword))
	}
	return readline.NewPrefixCompleter(items...)
}
