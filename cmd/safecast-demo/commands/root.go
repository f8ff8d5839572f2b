// Package commands cmd/safecast-demo/commands/root.go
package commands

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"go.dw1.io/safecast/internal/filter"
	"go.dw1.io/safecast/internal/report"
	"go.dw1.io/safecast/internal/scenario"
)

var (
	runPattern string
	printJSON  bool
	pause      bool
	verbose    bool
)

func init() {
	RootCmd.Flags().StringVarP(&runPattern, "run", "r", "", "run only scenarios whose name matches the regular expression")
	RootCmd.Flags().BoolVarP(&printJSON, "json", "j", false, "output json format")
	RootCmd.Flags().BoolVar(&pause, "pause", stdinIsTerminal(), "wait for Enter before exiting")
	RootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	var helpflag bool
	RootCmd.SetUsageTemplate(help)
	RootCmd.PersistentFlags().BoolVarP(&helpflag, "help", "h", false, "help for "+RootCmd.Use)
	RootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
	RootCmd.PersistentFlags().MarkHidden("help") //nolint
}

// RootCmd runs the reinterpretation scenarios.
var RootCmd = &cobra.Command{
	Use:   "safecast-demo",
	Short: "demonstrate size-checked reinterpretation",
	Long: `safecast-demo runs each reinterpretation scenario and prints its
outcome: numeric conversion, reversed-field overlays, scalar and
tuple views, size-mismatch rejection and memory-mapped records.`,
	SilenceErrors:         true,
	SilenceUsage:          true,
	DisableSuggestions:    true,
	DisableFlagsInUseLine: true,
	Args:                  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger := newLogger(cmd.ErrOrStderr(), verbose)

		f, err := filter.Compile(runPattern)
		if err != nil {
			return fmt.Errorf("invalid --run pattern: %w", err)
		}

		selected := scenario.Select(f)
		logger.WithField("count", len(selected)).WithField("filter", f.String()).Debug("running scenarios")

		out := cmd.OutOrStdout()
		reports := runAll(selected, out, logger)

		if printJSON {
			data, err := report.MarshalIndent(reports, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(data))
		}

		if pause {
			waitForEnter(cmd.InOrStdin(), cmd.ErrOrStderr())
		}

		return nil
	},
}

// Execute executes root CLI command
func Execute() {
	cc.Init(&cc.Config{
		RootCmd:         RootCmd,
		Headings:        cc.HiBlue + cc.Bold,
		Commands:        cc.HiBlue + cc.Bold,
		CmdShortDescr:   cc.HiBlue,
		Example:         cc.HiBlue + cc.Italic,
		ExecName:        cc.HiBlue + cc.Bold,
		Flags:           cc.HiBlue + cc.Bold,
		FlagsDescr:      cc.HiBlue,
		NoExtraNewlines: true,
		NoBottomNewline: true,
	})
	if err := RootCmd.Execute(); err != nil {
		log.Fatal("Failed to execute command: ", err)
	}
}

// runAll runs every scenario. Text output goes to out unless JSON was
// requested; failures are logged and never change the exit status.
func runAll(selected []scenario.Scenario, out io.Writer, logger logrus.FieldLogger) []report.Report {
	echo := out
	if printJSON {
		echo = nil
	}

	reports := make([]report.Report, 0, len(selected))
	for _, s := range selected {
		rep := s.Run(echo)

		entry := logger.WithField("scenario", s.Name)
		switch {
		case rep.Err != "":
			entry.WithField("error", rep.Err).Warn("scenario failed")
		case !rep.Passed():
			entry.WithField("checks", rep.Checks).Warn("scenario checks did not hold")
		default:
			entry.WithField("fingerprint", fmt.Sprintf("%016x", rep.Fingerprint)).Debug("scenario held")
		}

		reports = append(reports, rep)
	}

	return reports
}

func newLogger(w io.Writer, debug bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	return logger
}

func waitForEnter(in io.Reader, prompt io.Writer) {
	fmt.Fprint(prompt, "Press Enter to exit...")
	_, _ = bufio.NewReader(in).ReadString('\n')
}

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

const help = "Usage:\r\n" +
	"  {{.UseLine}}{{if .HasAvailableSubCommands}}{{end}} {{if gt (len .Aliases) 0}}\r\n\r\n" +
	"{{.NameAndAliases}}{{end}}{{if .HasAvailableSubCommands}}\r\n\r\n" +
	"Available Commands:{{range .Commands}}{{if (or .IsAvailableCommand)}}\r\n  " +
	"{{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}\r\n\r\n" +
	"Flags:\r\n" +
	"{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}\r\n\r\n" +
	"Global Flags:\r\n" +
	"{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}\r\n\r\n"
