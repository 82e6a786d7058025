package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/peterh/liner"

	"github.com/xiam/miischeme"
	"github.com/xiam/miischeme/config"
	"github.com/xiam/miischeme/errs"
	"github.com/xiam/miischeme/repl"
)

const appName = "miischeme"

var banner = fmt.Sprintf("miischeme %s\nCtrl+C cancels input, Ctrl+D exits. Type :help for help.", miischeme.Version)

func main() {
	os.Exit(run(os.Args[1:]))
}

func isHelp(arg string) bool {
	switch arg {
	case "-h", "-help", "--help", "help":
		return true
	}
	return false
}

func run(args []string) int {
	cmd := "repl"
	if len(args) > 0 && (isHelp(args[0]) || len(args[0]) == 0 || args[0][0] != '-') {
		cmd, args = args[0], args[1:]
	}

	switch {
	case cmd == "repl":
		return cmdRepl(args)
	case cmd == "run":
		return cmdRun(args)
	case cmd == "config":
		return cmdConfig(args)
	case cmd == "version":
		fmt.Println(miischeme.Version)
		return 0
	case isHelp(cmd):
		usage()
		return 0
	}

	fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
	usage()
	return 2
}

// exitStatus maps the error returned by setup to the status of the
// process. Asking for help is not a failure.
func exitStatus(err error) int {
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
	return 2
}

func usage() {
	fmt.Printf(`miischeme %s

Usage:
  %s [repl] [flags]          Start an interactive session (default)
  %s run [flags] <file>      Evaluate every expression in a file
  %s config [flags]          Print the effective configuration
  %s version                 Print the version

Flags:
  -config <path>    Configuration file (default %s)
  -lang <tag>       Language of error messages: en, rn
  -debug            Trace evaluation on stderr

`, miischeme.Version, appName, appName, appName, appName, config.DefaultPath)
}

// setup parses the flags shared by every command, loads the configuration
// and applies the flags on top of it.
func setup(name string, args []string) (*config.Config, []string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	configPath := fs.String("config", config.DefaultPath, "configuration file")
	lang := fs.String("lang", "", "language of error messages")
	debug := fs.Bool("debug", false, "trace evaluation on stderr")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	conf, err := config.Load(*configPath)
	if err != nil {
		return nil, nil, err
	}

	if *lang != "" {
		conf.Language = *lang
	}
	if *debug {
		conf.Debug = true
	}

	if conf.Debug {
		miischeme.SetLogger(log.New(os.Stderr, "miischeme: ", log.Lmicroseconds))
		repl.SetLogger(log.New(os.Stderr, "repl: ", log.Lmicroseconds))
	}

	return conf, fs.Args(), nil
}

func newInterpreter(conf *config.Config) *miischeme.Interpreter {
	return miischeme.NewInterpreter(miischeme.WithMaxDepth(conf.MaxDepth))
}

// -----------------------------------------------------------------------------
// run
// -----------------------------------------------------------------------------

func cmdRun(args []string) int {
	conf, args, err := setup("run", args)
	if err != nil {
		return exitStatus(err)
	}
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s run [flags] <file>\n", appName)
		return 2
	}

	file := args[0]
	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, file, err)
		return 1
	}

	value, err := newInterpreter(conf).EvalProgram(string(src))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", file, errs.Localize(err, errs.MatchLanguage(conf.Language)))
		return 1
	}

	fmt.Println(value)
	return 0
}

// -----------------------------------------------------------------------------
// config
// -----------------------------------------------------------------------------

func cmdConfig(args []string) int {
	conf, _, err := setup("config", args)
	if err != nil {
		return exitStatus(err)
	}

	if conf.Path != "" {
		fmt.Printf("# %s\n", conf.Path)
	}
	if err := conf.Write(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		return 1
	}
	return 0
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl(args []string) int {
	conf, _, err := setup("repl", args)
	if err != nil {
		return exitStatus(err)
	}

	histPath, err := conf.HistoryPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: history: %v\n", appName, err)
		histPath = ""
	}

	fmt.Println(banner)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	var once sync.Once
	save := func() {
		once.Do(func() {
			if err := saveHistory(ln, histPath); err != nil {
				fmt.Fprintf(os.Stderr, "%s: history: %v\n", appName, err)
			}
		})
	}

	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}
	defer save()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		sig := <-sigc
		save()
		ln.Close()
		os.Exit(signalStatus(sig))
	}()

	session := repl.NewSession(newInterpreter(conf))
	session.Configure(conf)

	if err := session.Run(ln); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		return 1
	}
	return 0
}

type historyWriter interface {
	WriteHistory(w io.Writer) (int, error)
}

// saveHistory writes the session history to path. An empty path keeps no
// history.
func saveHistory(h historyWriter, path string) error {
	if path == "" {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := h.WriteHistory(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// signalStatus is the conventional exit status of a process terminated by
// sig.
func signalStatus(sig os.Signal) int {
	if s, ok := sig.(syscall.Signal); ok {
		return 128 + int(s)
	}
	return 1
}
