package main

import (
	"context"
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/curvedit/internal/cli"
	"github.com/aretw0/curvedit/internal/config"
	"github.com/aretw0/curvedit/internal/presentation/tui"
)

var rootCmd = &cobra.Command{
	Use:   "curvedit",
	Short: "curvedit inspects and edits curve table files",
	Long: `curvedit reads curve tables (.tbl, .tbm), evaluates and plots their curves,
and applies edits such as renaming a curve or moving a keyframe, writing the
tables back in canonical form.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		tui.PrintBanner(os.Stdout)
		return cmd.Help()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if current == nil || current.Metrics == nil {
			return nil
		}
		return current.Metrics.WriteText(os.Stderr)
	},
}

// current is the session created by the running command, if any.
var current *cli.Session

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	sc := cli.NewSignalContext(context.Background())
	defer sc.Cancel()

	err := rootCmd.ExecuteContext(sc)
	if code := exitCode(err, sc.Signal()); code != 0 {
		fmt.Fprintln(os.Stderr, describeFailure(err, sc.Signal()))
		os.Exit(code)
	}
}

// exitCode maps a command failure to the process status, 128+n when a signal
// interrupted the command.
func exitCode(err error, sig os.Signal) int {
	if s, ok := sig.(syscall.Signal); ok {
		return 128 + int(s)
	}
	if sig != nil {
		return 130
	}
	if err != nil {
		return 1
	}
	return 0
}

func describeFailure(err error, sig os.Signal) string {
	if sig == nil {
		return err.Error()
	}
	if err == nil {
		return fmt.Sprintf("interrupted by %v", sig)
	}
	return fmt.Sprintf("interrupted by %v: %v", sig, err)
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("dir", ".", "Directory containing the table files")
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path to the config file (YAML or JSON)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (overrides config)")
	rootCmd.PersistentFlags().Bool("metrics", false, "Print Prometheus metrics to stderr on exit")
}

// newSession builds the editor session from the persistent flags.
func newSession(cmd *cobra.Command) (*cli.Session, error) {
	flags := cmd.Flags()
	dir, _ := flags.GetString("dir")
	cfgPath, _ := flags.GetString("config")
	level, _ := flags.GetString("log-level")
	metrics, _ := flags.GetBool("metrics")

	s, err := cli.NewSession(cli.Options{Dir: dir, ConfigPath: cfgPath, LogLevel: level, Metrics: metrics})
	if err != nil {
		return nil, err
	}
	current = s
	return s, nil
}

// openSession creates a session and opens the named tables (all tables when
// names is empty). Any table failing to parse aborts the command.
func openSession(cmd *cobra.Command, names []string) (*cli.Session, error) {
	s, err := newSession(cmd)
	if err != nil {
		return nil, err
	}
	if err := s.OpenAll(cmd.Context(), names); err != nil {
		return nil, err
	}
	return s, nil
}
