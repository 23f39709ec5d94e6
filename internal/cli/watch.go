package cli

import (
	"context"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/AndreyAkinshin/triage/internal/config"
	"github.com/AndreyAkinshin/triage/internal/errors"
	"github.com/AndreyAkinshin/triage/internal/input"
	"github.com/AndreyAkinshin/triage/internal/logging"
)

func newWatchCmd(e *env, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Re-run the analysis whenever a matching test output file changes",
		Long: `watch monitors the input directory and analyzes every file matching the
input pattern as soon as it is created or rewritten. Runs that find no errors
or failures are reported and watching continues. Stop with Ctrl+C.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := e.setup(cmd, opts)
			if err != nil {
				return err
			}
			return e.watch(cmd.Context(), cfg)
		},
	}
}

// watch blocks until ctx is cancelled, analyzing each matching file once its
// writes have settled for e.debounce.
func (e *env) watch(ctx context.Context, cfg *config.Config) error {
	dir := e.resolve(cfg.Input.Directory)
	pattern := cfg.Input.Pattern

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "cannot start file watcher")
	}
	defer func() { _ = w.Close() }()

	if err := w.Add(dir); err != nil {
		return &errors.TriageError{
			Kind:    errors.KindRuntime,
			Message: "cannot watch directory",
			Path:    dir,
			Cause:   err,
		}
	}

	log := logging.With("dir", dir, "pattern", pattern)
	log.InfoContext(ctx, "watching for test output")
	e.out.Info("Watching %s for %s (Ctrl+C to stop)", dir, pattern)

	// pending holds files written since the last run, keyed by path.
	pending := make(map[string]struct{})
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.InfoContext(ctx, "watch stopped", "dir", dir)
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
				continue
			}
			if !input.Matches(pattern, ev.Name) {
				continue
			}
			log.DebugContext(ctx, "input changed", "file", ev.Name, "op", ev.Op.String())
			pending[ev.Name] = struct{}{}
			timer.Reset(e.debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.WarnContext(ctx, "watcher error", "error", err)
			e.out.Warning("watch: %v", err)

		case <-timer.C:
			for file := range pending {
				delete(pending, file)
				e.rerun(cfg, file)
			}
		}
	}
}

// rerun analyzes file from scratch and reports the outcome without stopping
// the watch.
func (e *env) rerun(cfg *config.Config, file string) {
	_, err := e.analyze(cfg, file)
	switch {
	case err == nil:
	case errors.Is(err, errors.KindEmptyResult):
		logging.Warn("no problems found", "file", file)
		e.out.Warning("%v", err)
	default:
		logging.Error("analysis failed", "file", file, "error", err)
		e.out.ErrorPrefix("%v", err)
	}
}
