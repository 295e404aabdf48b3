// Package cmd implements the CLI command structure for henhouse.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/nibzard/henhouse/internal/config"
	"github.com/nibzard/henhouse/internal/kv"
	"github.com/nibzard/henhouse/internal/logging"
	"github.com/nibzard/henhouse/internal/store"
	"github.com/nibzard/henhouse/internal/tracker"
	"github.com/nibzard/henhouse/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the henhouse CLI.
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, os.Stdout, os.Stderr)
}

// app carries what every subcommand needs.
type app struct {
	cfg    *config.Config
	stdout io.Writer
	stderr io.Writer
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Create a flag set for global options
	fs := flag.NewFlagSet("henhouse", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		printUsage(fs, stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a := &app{cfg: cfg, stdout: stdout, stderr: stderr}
	if *help {
		printUsage(fs, stdout)
		return nil
	}
	if *showVersion {
		return a.versionCommand()
	}

	// No args or a leading flag means the default command.
	subcommand := "tui"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 && !strings.HasPrefix(remainingArgs[0], "-") {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	switch subcommand {
	case "tui":
		return a.tuiCommand(ctx, remainingArgs)
	case "status":
		return a.statusCommand(ctx, remainingArgs)
	case "check":
		return a.toggleCommand(ctx, "check", remainingArgs, true)
	case "uncheck":
		return a.toggleCommand(ctx, "uncheck", remainingArgs, false)
	case "reset":
		return a.resetCommand(ctx, remainingArgs)
	case "export":
		return a.exportCommand(ctx, remainingArgs)
	case "tail":
		return a.tailCommand(ctx, remainingArgs)
	case "config":
		fmt.Fprint(stdout, config.ExampleConfig())
		return nil
	case "version":
		return a.versionCommand()
	case "help":
		printUsage(fs, stdout)
		return nil
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// logger returns a logger writing to w with the configured level and format.
func (a *app) logger(w io.Writer) *log.Logger {
	return logging.NewFromConfig(w, a.cfg.LogLevel, a.cfg.LogFormat, a.cfg.LogTimestamps, a.cfg.LogCaller)
}

// openStore opens the configured backend. The returned close func releases
// the backend.
func (a *app) openStore(ctx context.Context, logger *log.Logger) (*store.Store, func() error, error) {
	opts, err := a.cfg.StorageOptions()
	if err != nil {
		return nil, nil, err
	}
	storage, err := kv.Open(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s storage: %w", opts.Driver, err)
	}
	logger.Debug("storage opened", "driver", storage.Driver(), "path", opts.Path)
	st := store.New(storage, store.WithKey(a.cfg.StorageKey), store.WithLogger(logger))
	return st, storage.Close, nil
}

func noArgs(name string, fs *flag.FlagSet) error {
	if fs.NArg() > 0 {
		return fmt.Errorf("%s: unexpected arguments: %v", name, fs.Args())
	}
	return nil
}

// tuiCommand launches the interactive checklist.
func (a *app) tuiCommand(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("henhouse tui", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	inline := fs.Bool("inline", false, "Render inline instead of using the alternate screen")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := noArgs("tui", fs); err != nil {
		return err
	}
	if !ui.IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY (use 'henhouse status' for plain output)")
	}

	// The program owns the terminal, so logs go to a per-run file.
	runLog, err := logging.NewRunLog(a.cfg.DataDir)
	if err != nil {
		return fmt.Errorf("creating run log: %w", err)
	}
	defer runLog.Close()
	logger := a.logger(runLog.Writer())

	st, closeStore, err := a.openStore(ctx, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	logger.Info("tui started", "key", st.Key(), "storage", a.cfg.Storage)
	return ui.RunTUI(ctx, st,
		ui.WithBarWidth(a.cfg.BarWidth),
		ui.WithLogger(logger),
		ui.WithAltScreen(!*inline),
	)
}

// statusCommand prints overall and per-step progress.
func (a *app) statusCommand(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("henhouse status", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	showTasks := fs.Bool("tasks", false, "List every task under its step")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := noArgs("status", fs); err != nil {
		return err
	}

	st, closeStore, err := a.openStore(ctx, a.logger(a.stderr))
	if err != nil {
		return err
	}
	defer closeStore()

	state := st.Load(ctx)
	printStatus(a.stdout, state, *showTasks)
	return nil
}

// toggleCommand marks one task done or not done.
func (a *app) toggleCommand(ctx context.Context, name string, args []string, done bool) error {
	fs := flag.NewFlagSet("henhouse "+name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("usage: henhouse %s <step-id> <task-id>", name)
	}
	stepID, taskID := fs.Arg(0), fs.Arg(1)

	st, closeStore, err := a.openStore(ctx, a.logger(a.stderr))
	if err != nil {
		return err
	}
	defer closeStore()

	state := st.Load(ctx)
	task, ok := tracker.FindTask(state, stepID, taskID)
	if !ok {
		fmt.Fprintf(a.stderr, "warning: no task %s in step %s, nothing changed\n", taskID, stepID)
		return nil
	}

	next, err := st.Toggle(ctx, state, stepID, taskID, done)
	if err != nil {
		return err
	}
	step, _ := next.Step(stepID)
	mark := " "
	if done {
		mark = "x"
	}
	fmt.Fprintf(a.stdout, "[%s] %s  %s\n", mark, taskID, task.Label)
	fmt.Fprintf(a.stdout, "%s: %d%%  Overall: %d%%\n",
		step.Title, step.Progress, tracker.OverallProgress(next).Percent)
	return nil
}

// resetCommand restores the built-in checklist.
func (a *app) resetCommand(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("henhouse reset", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := noArgs("reset", fs); err != nil {
		return err
	}

	st, closeStore, err := a.openStore(ctx, a.logger(a.stderr))
	if err != nil {
		return err
	}
	defer closeStore()

	if _, err := st.Reset(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, "Checklist reset to defaults.")
	return nil
}

// exportCommand writes the checklist as JSON or YAML.
func (a *app) exportCommand(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("henhouse export", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	format := fs.String("format", "json", "Output format (json|yaml)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := noArgs("export", fs); err != nil {
		return err
	}

	st, closeStore, err := a.openStore(ctx, a.logger(a.stderr))
	if err != nil {
		return err
	}
	defer closeStore()

	state := st.Load(ctx)
	switch strings.ToLower(*format) {
	case "json":
		data, err := tracker.EncodeIndent(state)
		if err != nil {
			return err
		}
		_, err = a.stdout.Write(data)
		return err
	case "yaml", "yml":
		enc := yaml.NewEncoder(a.stdout)
		enc.SetIndent(2)
		if err := enc.Encode(state); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown export format: %s (use json or yaml)", *format)
	}
}

// tailCommand prints the latest TUI run log.
func (a *app) tailCommand(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("henhouse tail", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	follow := fs.Bool("f", false, "Follow the log (like tail -f)")
	fs.BoolVar(follow, "follow", false, "Follow the log (like tail -f)")
	n := fs.Int("n", 0, "Number of lines to show (0 = all)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := noArgs("tail", fs); err != nil {
		return err
	}

	logPath, err := logging.FindLatestLog(logging.LogDir(a.cfg.DataDir))
	if err != nil {
		return fmt.Errorf("finding latest log: %w", err)
	}
	if logPath == "" {
		fmt.Fprintln(a.stdout, "No log files found.")
		return nil
	}

	fmt.Fprintf(a.stderr, "Tailing: %s\n", logPath)
	if *follow {
		fmt.Fprintln(a.stderr, "(Ctrl+C to stop)")
	}
	return logging.TailLog(ctx, a.stdout, logPath, *n, *follow)
}

// versionCommand prints version information.
func (a *app) versionCommand() error {
	fmt.Fprintf(a.stdout, "henhouse version %s\n", Version)
	return nil
}

func printStatus(w io.Writer, state tracker.State, showTasks bool) {
	o := tracker.OverallProgress(state)
	fmt.Fprintf(w, "Overall: %d%% (%d/%d tasks)\n\n", o.Percent, o.DoneTasks, o.TotalTasks)
	for _, step := range state {
		fmt.Fprintf(w, "%-4s %3d%%  %d/%d  %s", step.ID, step.Progress, step.DoneCount(), len(step.Tasks), step.Title)
		if step.Deadline != "" {
			fmt.Fprintf(w, "  (due %s)", step.Deadline)
		}
		fmt.Fprintln(w)
		if !showTasks {
			continue
		}
		for _, t := range step.Tasks {
			mark := " "
			if t.Done {
				mark = "x"
			}
			fmt.Fprintf(w, "       [%s] %-6s %s\n", mark, t.ID, t.Label)
		}
	}
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Hen House Tracker - a launch checklist with saved progress")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  henhouse [options] [command]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  tui                     Interactive checklist (default command)")
	fmt.Fprintln(w, "  status [-tasks]         Show overall and per-step progress")
	fmt.Fprintln(w, "  check <step> <task>     Mark a task done")
	fmt.Fprintln(w, "  uncheck <step> <task>   Mark a task not done")
	fmt.Fprintln(w, "  reset                   Restore the default checklist")
	fmt.Fprintln(w, "  export [-format f]      Print the checklist as json or yaml")
	fmt.Fprintln(w, "  tail [-n N] [-f]        Show the latest TUI log")
	fmt.Fprintln(w, "  config                  Print an example config file")
	fmt.Fprintln(w, "  version                 Show version information")
	fmt.Fprintln(w, "  help                    Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "TUI Options (use with 'tui' command):")
	fmt.Fprintln(w, "  -inline")
	fmt.Fprintln(w, "        Render inline instead of using the alternate screen")
}
