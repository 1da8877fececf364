package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xdg/ansilog/internal/ansi"
	"github.com/xdg/ansilog/internal/clog"
)

var severityAliases = map[clog.Severity][]string{
	clog.SeverityWarning: {"warn"},
	clog.SeverityError:   {"err"},
}

// newSeverityCmd returns the command that writes one line at sev.
func newSeverityCmd(a *app, sev clog.Severity) *cobra.Command {
	return &cobra.Command{
		Use:     sev.String() + " [system] [component] <text> [subcategory]",
		Aliases: severityAliases[sev],
		Short:   fmt.Sprintf("Write a %s line", sev),
		Long: fmt.Sprintf(`Write one line at severity %s.

Arguments are positional:
  1 arg:  <text>                                system is the bound --system,
                                                or %q when none is bound
  2 args: <system> <text>                       without a bound system
          <component> <text>                    with a bound system
  3 args: <system> <component> <text>
  4 args: <system> <component> <text> <subcategory>

Any other count exits with status 2, unless the severity is below the
configured level, in which case nothing is checked or written.`, sev, sev.Title()),
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.logger.Enabled(sev) {
				return nil
			}
			entry, err := a.logger.Resolve(sev, args...)
			if err != nil {
				return NewExitCodeError(exitUsage, fmt.Errorf("%s: %w", sev, err))
			}
			a.logger.Log(sev, entry)
			return nil
		},
	}
}

// newPipeCmd returns the command that logs stdin line by line.
func newPipeCmd(a *app) *cobra.Command {
	var severity string

	cmd := &cobra.Command{
		Use:   "pipe",
		Short: "Log each line read from stdin",
		Long: `Read stdin and write each line as a log line at --severity.

The bound --system and --component labels apply. When color is off,
escape sequences already present in the input are removed so the output
stays plain.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sev, err := clog.ParseSeverity(severity)
			if err != nil {
				return NewExitCodeError(exitUsage, fmt.Errorf("--severity: %w", err))
			}
			if !a.logger.Enabled(sev) {
				clog.Debug("Pipe", "severity "+sev.String()+" is filtered, discarding input")
			}

			r := bufio.NewReader(cmd.InOrStdin())
			for {
				line, err := r.ReadString('\n')
				if len(line) > 0 {
					a.logLine(sev, trimEOL(line))
				}
				if errors.Is(err, io.EOF) {
					return nil
				}
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			}
		},
	}

	cmd.Flags().StringVarP(&severity, "severity", "s", "info", "severity of every line")
	return cmd
}

// logLine writes one piped line at sev with the bound labels.
func (a *app) logLine(sev clog.Severity, text string) {
	if !a.logger.Colors() {
		text = ansi.Strip(text)
	}
	entry, err := a.logger.Resolve(sev, text)
	if err != nil {
		return
	}
	a.logger.Log(sev, entry)
}

// trimEOL drops a trailing "\n" or "\r\n".
func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// newDemoCmd returns the command that shows each call form.
func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Show every severity and argument form",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			unbound := a.newLogger("", "")
			bound := a.newLogger("Main", "")
			mainFunc := a.newLogger("Main2", "MainFunc")

			unbound.Debug("this is test")

			bound.Debug("this is test")
			bound.Info("this is test")
			bound.Warning("this is test")
			bound.Error("this is test")
			bound.Special("this is test")

			mainFunc.Debug("this is test")

			bound.Debug("Main", "MainFunc2", "this is test")
			bound.Debug("Main", "MainFunc3", "this is test", "subtest")
			bound.Warning("Main", "MainFunc", "this is warning")
		},
	}
}
