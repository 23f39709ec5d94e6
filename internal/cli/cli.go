// Package cli provides the command-line interface for triage.
package cli

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/AndreyAkinshin/triage/internal/config"
	"github.com/AndreyAkinshin/triage/internal/errors"
	"github.com/AndreyAkinshin/triage/internal/logging"
	"github.com/AndreyAkinshin/triage/internal/output"
)

// Version is set at build time.
var Version = "dev"

// defaultDebounce is how long watch mode waits for writes to settle.
const defaultDebounce = 500 * time.Millisecond

// env carries what a command needs from the outside world.
type env struct {
	out      *output.Writer
	stderr   io.Writer
	workDir  string // Base for relative paths; empty means the process working directory
	now      func() time.Time
	debounce time.Duration
}

// options holds the parsed flags shared by every command.
type options struct {
	configPath    string
	dir           string
	pattern       string
	outDir        string
	noSpreadsheet bool
	noDocument    bool
	quiet         bool
	verbose       bool
	logFile       string
	top           int
}

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e := &env{
		out:      output.New(),
		stderr:   os.Stderr,
		now:      time.Now,
		debounce: defaultDebounce,
	}
	return run(ctx, args, e)
}

func run(ctx context.Context, args []string, e *env) int {
	defer func() { _ = logging.Close() }()

	root := newRootCmd(e)
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		return e.fail(err)
	}
	return errors.ExitSuccess
}

func newRootCmd(e *env) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "triage [file]",
		Short: "Triage PHPUnit console output into prioritized reports",
		Long: `triage reads PHPUnit console output, groups errors and failures by test class,
ranks classes by severity and writes a spreadsheet and a Markdown TODO list.

Without a file argument the most recently modified file matching the input
pattern (output-test-*.txt by default) is analyzed.`,
		Args:          usageArgs(cobra.MaximumNArgs(1)),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := e.setup(cmd, opts)
			if err != nil {
				return err
			}
			file := ""
			if len(args) == 1 {
				file = e.resolve(args[0])
			}
			_, err = e.analyze(cfg, file)
			return err
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (default: .triage.{json,yaml,yml,toml} in the working directory)")
	flags.StringVarP(&opts.dir, "dir", "d", "", "directory searched for test output")
	flags.StringVarP(&opts.pattern, "pattern", "p", "", "file name pattern of test output")
	flags.StringVarP(&opts.outDir, "out", "o", "", "directory receiving the artifacts")
	flags.BoolVar(&opts.noSpreadsheet, "no-xlsx", false, "skip the spreadsheet artifact")
	flags.BoolVar(&opts.noDocument, "no-markdown", false, "skip the Markdown artifact")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "print only errors and the final result")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "write debug logs to stderr")
	flags.StringVar(&opts.logFile, "log-file", "", "append JSON debug logs to this file")
	flags.IntVar(&opts.top, "top", 0, "number of classes listed in the console summary")

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.WrapConfig(err, "invalid flags")
	})

	root.AddCommand(newWatchCmd(e, opts))
	root.AddCommand(newVersionCmd(e))
	return root
}

func newVersionCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the triage version",
		Args:  usageArgs(cobra.NoArgs),
		Run: func(_ *cobra.Command, _ []string) {
			e.out.Println("triage %s", Version)
		},
	}
}

// usageArgs turns argument validation failures into configuration errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return errors.WrapConfig(err, "invalid arguments")
		}
		return nil
	}
}

// setup loads the configuration, applies flag overrides and starts logging.
func (e *env) setup(cmd *cobra.Command, opts *options) (*config.Config, error) {
	e.out.SetQuiet(opts.quiet)

	configPath := opts.configPath
	if configPath != "" {
		configPath = e.resolve(configPath)
	}
	cfg, path, err := config.LoadOrDefault(e.resolve("."), configPath)
	if err != nil {
		return nil, configError(err, path)
	}

	opts.applyTo(cmd, cfg)
	if err := config.Validate(cfg); err != nil {
		return nil, errors.WrapValidation(err, "invalid flags")
	}

	logFile := cfg.LogFile
	if logFile != "" {
		logFile = e.resolve(logFile)
	}
	if err := logging.Init(logging.Options{File: logFile, Verbose: opts.verbose, Stderr: e.stderr}); err != nil {
		return nil, &errors.TriageError{
			Kind:    errors.KindConfig,
			Message: "cannot open log file",
			Path:    logFile,
			Cause:   err,
		}
	}
	if path != "" {
		logging.Debug("loaded config", "path", path)
	}
	return cfg, nil
}

// configError classifies a failure to load the config file at path. Failed
// semantic checks are validation errors, anything else is a config error.
func configError(err error, path string) error {
	var te *errors.TriageError
	if stderrors.As(err, &te) {
		return err
	}
	kind := errors.KindConfig
	var ve *config.ValidationError
	if stderrors.As(err, &ve) {
		kind = errors.KindValidation
	}
	return &errors.TriageError{
		Kind:    kind,
		Message: "invalid configuration",
		Path:    path,
		Cause:   err,
	}
}

// applyTo overrides cfg with the flags set on the command line.
func (o *options) applyTo(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("dir") {
		cfg.Input.Directory = o.dir
	}
	if changed("pattern") {
		cfg.Input.Pattern = o.pattern
	}
	if changed("out") {
		cfg.Output.Directory = o.outDir
	}
	if o.noSpreadsheet {
		disabled := false
		cfg.Output.Spreadsheet = &disabled
	}
	if o.noDocument {
		disabled := false
		cfg.Output.Document = &disabled
	}
	if changed("log-file") {
		cfg.LogFile = o.logFile
	}
	if changed("top") {
		top := o.top
		cfg.Report.TopClasses = &top
	}
}

// resolve anchors a relative path at the working directory.
func (e *env) resolve(path string) string {
	if e.workDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(e.workDir, path)
}

// fail reports err and returns its exit code.
func (e *env) fail(err error) int {
	var te *errors.TriageError
	if !stderrors.As(err, &te) {
		// Only cobra itself returns untyped errors (unknown command and the like).
		err = errors.WrapConfig(err, "invalid usage")
	}

	e.out.ErrorPrefix("%v", err)
	switch {
	case errors.Is(err, errors.KindNoInput):
		e.out.Hint("hint: save PHPUnit output as output-test-<name>.txt or pass the file explicitly")
	case errors.Is(err, errors.KindEmptyResult):
		e.out.Hint("hint: the file has no \"There were N errors/failures:\" section")
	case errors.Is(err, errors.KindValidation):
		var ve *config.ValidationError
		if stderrors.As(err, &ve) {
			e.out.Hint("hint: fix %s in the config file or the matching flag", ve.Field)
		}
	case errors.Is(err, errors.KindConfig):
		e.out.Hint("hint: run 'triage --help' for usage")
	}
	return errors.GetExitCode(err)
}
