// Package cmd wires the flightboard command tree.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bjaus/flightboard"
	"github.com/bjaus/flightboard/internal/config"
	"github.com/bjaus/flightboard/internal/logging"
	"github.com/bjaus/flightboard/internal/menu"
)

// App holds the process I/O the commands run against.
type App struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Terminal reports whether Stdout is an interactive terminal. The menu
	// only clears the screen on a terminal.
	Terminal bool

	Version string

	cfg *config.Config
}

// NewApp returns an App bound to the process's standard streams.
func NewApp() *App {
	return &App{
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Terminal: term.IsTerminal(int(os.Stdout.Fd())),
		Version:  "dev",
	}
}

// Execute runs the command named by args.
func (a *App) Execute(ctx context.Context, args []string) error {
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(a.Stdin)
	root.SetOut(a.Stdout)
	root.SetErr(a.Stderr)
	return root.ExecuteContext(ctx)
}

// ExitCode maps a command error to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return 130
	default:
		return 1
	}
}

func newRootCmd(app *App) *cobra.Command {
	var (
		debugMode  bool
		configPath string
	)

	rootCmd := &cobra.Command{
		Use:     "flightboard",
		Short:   "Track and display a flight schedule",
		Long:    "An interactive console for viewing and updating a small in-memory flight schedule.",
		Version: app.Version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceErrors = true
			cmd.SilenceUsage = true

			logging.Setup(debugMode, app.Stderr)

			cfg, err := loadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			app.cfg = cfg
			slog.Debug("config loaded", "path", configPath, "columns", len(cfg.Columns), "flights", len(cfg.Flights))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd.Context(), app)
		},
	}

	addGlobalFlags(rootCmd.PersistentFlags(), &debugMode, &configPath)

	rootCmd.AddCommand(newScheduleCmd(app))
	rootCmd.AddCommand(newFormatsCmd(app))
	rootCmd.AddCommand(newWrapCmd(app))
	return rootCmd
}

func addGlobalFlags(fs *pflag.FlagSet, debugMode *bool, configPath *string) {
	fs.BoolVar(debugMode, "debug", false, "Enable debug logging")
	fs.StringVar(configPath, "config", "", "Path to config file (default ~/.config/flightboard/config.yaml)")
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFromPath(path)
}

func runInteractive(ctx context.Context, app *App) error {
	cols, err := app.cfg.TableColumns()
	if err != nil {
		return err
	}
	session := menu.New(app.cfg.Repository(), cols, app.Stdin, app.Stdout,
		menu.WithLineLength(app.cfg.LineLength),
		menu.WithClearScreen(app.Terminal),
	)
	return session.Run(ctx)
}

func newScheduleCmd(app *App) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the configured flight schedule",
		Example: `  flightboard schedule
  flightboard schedule --format csv
  flightboard schedule --format 'go-template={{.id}} {{.date}}'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := flightboard.ParseFormat(format)
			if err != nil {
				return err
			}
			cols, err := app.cfg.TableColumns()
			if err != nil {
				return err
			}
			return flightboard.WriteIter(app.Stdout, f, cols, app.cfg.Repository().Records())
		},
	}
	addFormatFlag(cmd.Flags(), &format)
	return cmd
}

func addFormatFlag(fs *pflag.FlagSet, format *string) {
	names := make([]string, 0, len(flightboard.Formats()))
	for _, f := range flightboard.Formats() {
		names = append(names, f.String())
	}
	fs.StringVarP(format, "format", "f", flightboard.Table.String(),
		"Output format ("+strings.Join(names, ", ")+", go-template=<tmpl>)")
}

func newFormatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported output formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, f := range flightboard.Formats() {
				if _, err := fmt.Fprintln(app.Stdout, f); err != nil {
					return err
				}
			}
			_, err := fmt.Fprintln(app.Stdout, flightboard.GoTemplate("<template>"))
			return err
		},
	}
}

func newWrapCmd(app *App) *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "wrap [text...]",
		Short: "Wrap text to a fixed width, hyphenating long words",
		Long:  "Wrap the given text (or standard input when no text is given) so that no line is wider than --width.",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if len(args) == 0 {
				data, err := io.ReadAll(app.Stdin)
				if err != nil {
					return err
				}
				text = string(data)
			}
			if !cmd.Flags().Changed("width") {
				width = app.cfg.LineLength
			}
			wrapped, err := flightboard.Wrap(text, width)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(app.Stdout, wrapped)
			return err
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", config.DefaultLineLength, "Maximum line width")
	return cmd
}
