// Package cmd implements the CLI commands for ansilog.
package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/xdg/ansilog/internal/clog"
	"github.com/xdg/ansilog/internal/config"
	"github.com/xdg/ansilog/internal/term"
	"github.com/xdg/ansilog/internal/version"
)

// app holds what the root command resolves before any subcommand runs.
type app struct {
	v      *viper.Viper
	cfg    *config.Config
	logCfg clog.Config
	logger *clog.Logger
}

// newRootCmd builds the command tree. Each call returns a fresh tree so
// flag state never leaks between executions.
func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "ansilog",
		Short: "Leveled, colored console logging for shell scripts",
		Long: `ansilog writes severity-colored, timestamped log lines to stdout.

Each line has the form:

  YYYY-MM-DD HH:MM:SS [system]	[component] (subcategory) message

Severities, lowest to highest: debug, info, warning, error, special.
Color is disabled automatically when stdout is not a terminal, when
NO_COLOR is set, or when TERM=dumb.

Settings are read from the config file, then ANSILOG_* environment
variables, then flags.`,
		Version:           version.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default "+config.Path()+")")
	flags.String("level", "", "minimum severity to emit (debug, info, warning, error, special)")
	flags.Bool("no-color", false, "disable ANSI color")
	flags.String("system", "", "system label bound to every line")
	flags.String("component", "", "component label bound to every line")
	flags.BoolP("quiet", "q", false, "suppress log output")
	flags.Bool("verbose", false, "report ansilog's own activity on stderr")

	for _, name := range []string{"config", "level", "no-color", "system", "component", "quiet", "verbose"} {
		_ = a.v.BindPFlag(name, flags.Lookup(name))
	}
	a.v.SetEnvPrefix(config.EnvPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	for _, sev := range clog.Severities() {
		rootCmd.AddCommand(newSeverityCmd(a, sev))
	}
	rootCmd.AddCommand(newPipeCmd(a))
	rootCmd.AddCommand(newDemoCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))

	return rootCmd
}

// setup resolves configuration and builds the logger.
// Precedence: flags, then environment, then config file, then defaults.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	toolLevel := clog.SeverityInfo
	if a.v.GetBool("verbose") {
		toolLevel = clog.SeverityDebug
	}
	// ansilog's own messages go to stderr, away from the log stream.
	clog.Configure(&clog.Config{Level: toolLevel}, "ansilog", "",
		clog.WithColorCapable(term.ColorSupported(term.Stderr())),
		clog.WithWriter(term.Stderr()),
	)
	log.SetFlags(0)
	log.SetOutput(clog.Writer(clog.SeverityDebug, "ansilog", "stdlib"))

	cfg, err := config.Load(a.v.GetString("config"))
	if err != nil {
		return err
	}

	cfg = a.applyOverrides(cfg)

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	logCfg, err := cfg.LoggerConfig()
	if err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	term.SetSilent(a.v.GetBool("quiet"))

	a.cfg = cfg
	a.logCfg = logCfg
	a.logger = a.newLogger(cfg.System, cfg.Component)
	clog.Debug("Setup", "level="+a.logger.Level().String()+" colors="+fmt.Sprint(a.logger.Colors()))
	return nil
}

// applyOverrides returns cfg with every flag or ANSILOG_* variable that
// is set applied on top. A label set to "" clears the one from the file.
func (a *app) applyOverrides(cfg *config.Config) *config.Config {
	merged := *cfg
	if a.v.IsSet("level") && a.v.GetString("level") != "" {
		merged.LogLevel = a.v.GetString("level")
	}
	if a.v.IsSet("no-color") && a.v.GetBool("no-color") {
		noColor := false
		merged.LogColors = &noColor
	}
	if a.v.IsSet("system") {
		merged.System = a.v.GetString("system")
	}
	if a.v.IsSet("component") {
		merged.Component = a.v.GetString("component")
	}
	return &merged
}

// newLogger returns a logger with the resolved settings and the given
// bound labels, writing to the term sink.
func (a *app) newLogger(system, component string) *clog.Logger {
	cfg := a.logCfg
	return clog.New(&cfg, system, component,
		clog.WithColorCapable(term.ColorSupported(term.Stdout())),
	)
}

// Execute runs the root command and returns any error.
// Errors are reported on stderr before returning.
func Execute() error {
	err := newRootCmd().Execute()
	if err != nil {
		term.Error("%v", err)
	}
	return err
}
