// Package ui provides the interactive terminal checklist.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/nibzard/henhouse/internal/logging"
	"github.com/nibzard/henhouse/internal/store"
)

// TUIOption configures the TUI behavior.
type TUIOption func(*tuiConfig)

// tuiConfig holds TUI configuration.
type tuiConfig struct {
	barWidth  int
	logger    *log.Logger
	altScreen bool
}

// WithBarWidth sets the progress bar width in columns.
func WithBarWidth(width int) TUIOption {
	return func(c *tuiConfig) {
		if width > 0 {
			c.barWidth = width
		}
	}
}

// WithLogger sets the logger used for save failures and intents.
func WithLogger(logger *log.Logger) TUIOption {
	return func(c *tuiConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithAltScreen controls whether the program takes over the full terminal.
func WithAltScreen(enabled bool) TUIOption {
	return func(c *tuiConfig) {
		c.altScreen = enabled
	}
}

func newTUIConfig(opts []TUIOption) *tuiConfig {
	c := &tuiConfig{
		barWidth:  30,
		logger:    logging.Discard(),
		altScreen: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RunTUI loads the checklist from st and runs the interactive view until
// the user quits or ctx is cancelled.
func RunTUI(ctx context.Context, st *store.Store, opts ...TUIOption) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}
	c := newTUIConfig(opts)
	model := NewModel(ctx, st, opts...)

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if c.altScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	program := tea.NewProgram(model, programOpts...)
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
