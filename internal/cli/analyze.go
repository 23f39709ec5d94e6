package cli

import (
	"os"
	"strconv"

	"github.com/AndreyAkinshin/triage/internal/config"
	"github.com/AndreyAkinshin/triage/internal/errors"
	"github.com/AndreyAkinshin/triage/internal/input"
	"github.com/AndreyAkinshin/triage/internal/logging"
	"github.com/AndreyAkinshin/triage/internal/report"
	"github.com/AndreyAkinshin/triage/internal/testparser"
	"github.com/AndreyAkinshin/triage/internal/triage"
)

// analyze runs one full pass: locate (unless file is given), read, parse,
// aggregate, write the enabled artifacts and print the summary.
func (e *env) analyze(cfg *config.Config, file string) (report.Artifacts, error) {
	if file == "" {
		latest, err := input.FindLatest(e.resolve(cfg.Input.Directory), cfg.Input.Pattern)
		if err != nil {
			return report.Artifacts{}, err
		}
		file = latest
	}

	e.out.Action("Analyzing %s", file)
	text, err := input.Read(file)
	if err != nil {
		return report.Artifacts{}, err
	}

	a := triage.Analyze(text, &testparser.PHPUnitParser{})
	if a.Empty() {
		return report.Artifacts{}, errors.EmptyResult(file)
	}

	artifacts, err := e.writeArtifacts(cfg, a)
	if err != nil {
		return artifacts, err
	}

	stats := a.Stats()
	logging.Info("analysis complete", "file", file, "classes", stats.Classes, "problems", stats.Problems)
	e.printSummary(cfg, a, artifacts)
	return artifacts, nil
}

// writeArtifacts writes the enabled artifacts. Disabled ones are left blank in
// the returned paths.
func (e *env) writeArtifacts(cfg *config.Config, a *triage.Analysis) (report.Artifacts, error) {
	dir := e.resolve(cfg.Output.Directory)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return report.Artifacts{}, &errors.TriageError{
			Kind:    errors.KindRuntime,
			Message: "cannot create output directory",
			Path:    dir,
			Cause:   err,
		}
	}

	artifacts := report.ArtifactPaths(dir, e.now(), cfg.Output.TimestampFormat)
	opts := report.Options{
		TopPatterns:    cfg.Report.TopPatterns,
		MessagePreview: cfg.Report.MessagePreview,
	}

	if cfg.Output.SpreadsheetEnabled() {
		if err := report.WriteSpreadsheet(artifacts.Spreadsheet, a); err != nil {
			return report.Artifacts{}, writeError(artifacts.Spreadsheet, err)
		}
		logging.Debug("wrote spreadsheet", "path", artifacts.Spreadsheet)
	} else {
		artifacts.Spreadsheet = ""
	}

	if cfg.Output.DocumentEnabled() {
		if err := report.WriteMarkdown(artifacts.Document, a, opts); err != nil {
			return report.Artifacts{}, writeError(artifacts.Document, err)
		}
		logging.Debug("wrote document", "path", artifacts.Document)
	} else {
		artifacts.Document = ""
	}

	return artifacts, nil
}

func writeError(path string, err error) error {
	return &errors.TriageError{
		Kind:    errors.KindRuntime,
		Message: "cannot write artifact",
		Path:    path,
		Cause:   err,
	}
}

func (e *env) printSummary(cfg *config.Config, a *triage.Analysis, artifacts report.Artifacts) {
	stats := a.Stats()

	e.out.SummaryHeader("Statistics")
	e.out.SummaryItem("Classes with problems", strconv.Itoa(stats.Classes))
	e.out.SummaryFailed("Errors", strconv.Itoa(stats.Errors))
	e.out.SummaryFailed("Failures", strconv.Itoa(stats.Failures))
	e.out.SummaryItem("Total problems", strconv.Itoa(stats.Problems))

	if artifacts.Spreadsheet != "" || artifacts.Document != "" {
		e.out.Println("")
		e.out.SummarySectionLabel("Artifacts:")
		for _, path := range []string{artifacts.Spreadsheet, artifacts.Document} {
			if path != "" {
				e.out.StepDetail("%s", path)
			}
		}
	}

	top := config.DefaultTopClasses
	if cfg.Report.TopClasses != nil {
		top = *cfg.Report.TopClasses
	}
	sorted := a.Sorted()
	if top > len(sorted) {
		top = len(sorted)
	}
	if top > 0 {
		e.out.SummaryHeader("Top Classes")
		rows := make([][]string, 0, top)
		for i, c := range sorted[:top] {
			tier := c.Tier()
			rows = append(rows, []string{
				strconv.Itoa(i + 1),
				c.ShortName(),
				strconv.Itoa(c.ErrorCount()),
				strconv.Itoa(c.FailureCount()),
				strconv.Itoa(c.TotalCount()),
				e.out.Badge(tier.String(), tier.Color()),
			})
		}
		e.out.Table([]string{"#", "Class", "Errors", "Failures", "Total", "Priority"}, rows)
	}

	e.out.FinalSuccess("%d problems in %d classes", stats.Problems, stats.Classes)
}
