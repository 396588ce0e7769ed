package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/bitlake/adr/internal/adr"
	"github.com/bitlake/adr/internal/command"
	"github.com/bitlake/adr/internal/config"
	adrerrors "github.com/bitlake/adr/internal/errors"
	"github.com/bitlake/adr/internal/fsops"
	"github.com/bitlake/adr/internal/ui"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "adr <init PATH | new TITLE | list>",
		Short: "Manage Architecture Decision Records",
		Long: `adr keeps numbered Architecture Decision Records in a directory of your choice.

Commands:
  init PATH   Start tracking ADRs in PATH (recorded in .adr_file)
  new TITLE   Create the next record, e.g. 3_use_event_sourcing.md
  list        Print the names of all records

Templates are copied from resources/init.md and resources/template.md
in the current directory.

Flags must come before the command. Everything after the command word is
taken literally, so titles and paths may start with a dash.

Examples:
  adr init docs/architecture
  adr new "Use event sourcing"
  adr new "-1 Rollback plan"
  adr --format yaml list`,
		Version:       Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args)
		},
	}

	cmd.SetVersionTemplate("adr version {{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", adrerrors.ErrInvalidCommand, err)
	})

	flags := cmd.Flags()
	flags.SetInterspersed(false)
	flags.Bool("verbose", false, "Enable verbose output")
	flags.Bool("dry-run", false, "Preview operations without writing to disk")
	flags.Bool("interactive", false, "Prompt for the title when 'new' is given without one")
	flags.Bool("embedded-templates", false, "Use built-in templates when resources are missing")
	flags.String("resources", config.DefaultResources, "Directory holding init.md and template.md")
	flags.String("marker", config.DefaultMarker, "Name of the marker file in the working directory")
	flags.String("format", config.FormatText, "Output format for list (text, yaml)")
	flags.StringSlice("ignore", nil, "File names to leave out of numbering and listing")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	base := afero.NewOsFs()
	cfg, err := config.Load(base, workDir, cmd.Flags())
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
	printer := ui.NewPrinter(cmd.ErrOrStderr(), isTerminalWriter(cmd.ErrOrStderr()))

	fs := base
	if cfg.DryRun {
		fs = fsops.DryRun(base)
		printer.Warning("Dry run: nothing will be written to disk")
	}

	argv, err := withPromptedTitle(cfg, append([]string{cmd.Name()}, args...))
	if err != nil {
		return err
	}

	resolved, err := command.Resolve(argv)
	if err != nil {
		return err
	}
	logger.Debug("resolved command", "command", fmt.Sprintf("%#v", resolved))

	fsys := fsops.New(fs)
	dispatcher := &adr.Dispatcher{
		Config:  cfg,
		WorkDir: workDir,
		FS:      fsys,
		Store:   config.NewMarkerStore(fsys, filepath.Join(workDir, cfg.Marker)),
		Out:     cmd.OutOrStdout(),
		UI:      printer,
		Logger:  logger,
	}

	return dispatcher.Run(resolved)
}

// withPromptedTitle fills in the title for a bare "new" when interactive
// mode is on and stdin is a terminal.
func withPromptedTitle(cfg *config.Config, argv []string) ([]string, error) {
	if !cfg.Interactive || len(argv) != 2 || argv[1] != "new" || !ui.IsTerminal(os.Stdin) {
		return argv, nil
	}

	title, err := ui.PromptTitle()
	if err != nil {
		return nil, err
	}
	return append(argv, title), nil
}

func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && ui.IsTerminal(f)
}

// Execute runs the adr command line.
func Execute() error {
	err := newRootCmd().Execute()
	report(ui.StderrPrinter(), err)
	return err
}

// report prints err for the user. An aborted prompt is not an error worth
// spelling out.
func report(p *ui.Printer, err error) {
	switch {
	case err == nil:
	case ui.IsAbort(err):
		p.Warning("Aborted")
	default:
		p.Error(err.Error())
	}
}
