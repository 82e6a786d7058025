// Package repl implements an interactive read-eval-print session on top of
// an interpreter. Definitions persist from one entry to the next and a
// failing entry never ends the session.
package repl

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/text/language"

	"github.com/xiam/miischeme"
	"github.com/xiam/miischeme/config"
	"github.com/xiam/miischeme/errs"
	"github.com/xiam/miischeme/parser"
)

const helpText = `Enter an expression to evaluate it, e.g. (+ 1 2).
An expression may span several lines.

  :help          Show this help
  :lang <tag>    Switch the language of error messages (en, rn)
  :env           List the global definitions
  :quit          Exit the session

Ctrl+C cancels the current input, Ctrl+D exits.`

var logger = log.New(io.Discard, "", 0)

// SetLogger sets the logger used to trace session input. A nil logger
// disables tracing, which is the default.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	logger = l
}

// LineReader reads one line of input after showing a prompt. It returns
// io.EOF when the input is exhausted. *liner.State satisfies it.
type LineReader interface {
	Prompt(prompt string) (string, error)
}

// historyAppender is implemented by readers that keep a history of entries.
type historyAppender interface {
	AppendHistory(item string)
}

var errQuit = errors.New("quit")

// Session evaluates entries read from a LineReader against one interpreter.
type Session struct {
	Interpreter *miischeme.Interpreter

	// Language selects the language of error messages.
	Language language.Tag

	Prompt       string
	Continuation string

	Out io.Writer
	Err io.Writer
}

// NewSession creates a session that evaluates entries with ip and writes
// to the standard streams.
func NewSession(ip *miischeme.Interpreter) *Session {
	return &Session{
		Interpreter:  ip,
		Language:     errs.MatchLanguage(config.DefaultLanguage),
		Prompt:       config.DefaultPrompt,
		Continuation: config.DefaultContinuation,
		Out:          os.Stdout,
		Err:          os.Stderr,
	}
}

// Configure applies the front end settings in conf to the session.
func (s *Session) Configure(conf *config.Config) {
	s.Language = errs.MatchLanguage(conf.Language)
	s.Prompt = conf.Prompt
	s.Continuation = conf.Continuation
}

// Run reads and evaluates entries until the input ends or :quit is entered.
// It only returns an error when the reader fails.
func (s *Session) Run(r LineReader) error {
	for {
		entry, err := s.read(r)
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(s.Out)
				return nil
			}
			return err
		}

		if h, ok := r.(historyAppender); ok {
			h.AppendHistory(strings.ReplaceAll(entry, "\n", " "))
		}

		if err := s.Exec(entry); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			return err
		}
	}
}

// read returns the next complete entry, prompting for more lines while the
// input so far is an unfinished expression. An aborted prompt drops any
// pending input.
func (s *Session) read(r LineReader) (string, error) {
	var b strings.Builder

	for {
		prompt := s.Prompt
		if b.Len() > 0 {
			prompt = s.Continuation
		}

		line, err := r.Prompt(prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				logger.Printf("repl: input aborted")
				b.Reset()
				continue
			}
			return "", err
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		entry := b.String()
		if strings.TrimSpace(entry) == "" {
			b.Reset()
			continue
		}

		if isCommand(entry) {
			return entry, nil
		}

		if _, err := s.Interpreter.Parse(entry); parser.IsIncomplete(err) {
			continue
		}
		return entry, nil
	}
}

func isCommand(entry string) bool {
	return strings.HasPrefix(strings.TrimSpace(entry), ":")
}

// Exec evaluates one entry, or runs it when it is a command, and prints
// the result.
func (s *Session) Exec(entry string) error {
	logger.Printf("repl: %q", entry)

	if isCommand(entry) {
		return s.command(strings.Fields(strings.TrimSpace(entry)))
	}

	node, err := s.Interpreter.Parse(entry)
	if err != nil {
		if errors.Is(err, parser.ErrEmptyInput) {
			return nil
		}
		s.printError(err)
		return nil
	}

	value, err := s.Interpreter.Eval(node)
	if err != nil {
		s.printError(err)
		return nil
	}

	fmt.Fprintln(s.Out, value.String())
	return nil
}

func (s *Session) printError(err error) {
	logger.Printf("repl: error: %v", err)
	fmt.Fprintln(s.Err, errs.Localize(err, s.Language))
}

func (s *Session) command(fields []string) error {
	switch strings.ToLower(fields[0]) {
	case ":quit", ":q":
		return errQuit

	case ":help":
		fmt.Fprintln(s.Out, helpText)

	case ":lang":
		if len(fields) > 1 {
			s.Language = errs.MatchLanguage(fields[1])
		}
		fmt.Fprintln(s.Out, s.Language)

	case ":env":
		global := s.Interpreter.Global()
		for _, name := range global.Names() {
			value, _ := global.Lookup(name)
			fmt.Fprintf(s.Out, "%s = %s\n", name, value)
		}

	default:
		fmt.Fprintf(s.Err, "unknown command %q, type :help for a list of commands\n", fields[0])
	}

	return nil
}
