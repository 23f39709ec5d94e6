package report

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/AndreyAkinshin/triage/internal/triage"
)

// recommendedActions lists the follow-up advice printed for each tier.
var recommendedActions = map[triage.Tier][]string{
	triage.TierCritical: {
		"Fix critical classes immediately",
		"Isolate failing tests and fix them one by one",
	},
	triage.TierHigh: {
		"Schedule the fixes in the current sprint",
		"Look for shared root causes",
	},
	triage.TierMedium: {
		"Fix progressively while refactoring",
		"Improve test coverage",
	},
	triage.TierLow: {
		"Handle during routine maintenance",
		"Tidy up the existing tests",
	},
}

// WriteMarkdown writes the Markdown report to path.
func WriteMarkdown(path string, a *triage.Analysis, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := RenderMarkdown(f, a, opts); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// RenderMarkdown renders the Markdown report: overview, prioritized classes,
// recurring messages and recommended actions.
func RenderMarkdown(w io.Writer, a *triage.Analysis, opts Options) error {
	bw := bufio.NewWriter(w)
	p := func(format string, args ...interface{}) {
		fmt.Fprintf(bw, format+"\n", args...)
	}

	stats := a.Stats()
	// A Caser is stateful, so each render gets its own.
	titleCase := cases.Title(language.English)

	p("# 📋 PHPUnit Test Analysis - TODO List")
	p("")
	p("## 📊 Overview")
	p("")
	p("- **Classes with problems:** %d", stats.Classes)
	p("- **Total errors:** %d", stats.Errors)
	p("- **Total failures:** %d", stats.Failures)
	p("- **Total problems:** %d", stats.Problems)
	p("")

	p("## 🎯 Priority Classes (by problem count)")
	p("")
	for i, c := range a.Sorted() {
		tier := c.Tier()
		p("### %d. %s %s - **%d problems**", i+1, tier.Icon(), c.ShortName(), c.TotalCount())
		p("")
		p("- **Priority:** %s", titleCase.String(tier.String()))
		p("- **Namespace:** `%s`", c.Name)
		p("- **Errors:** %d", c.ErrorCount())
		p("- **Failures:** %d", c.FailureCount())
		p("")
	}

	p("## 🔍 Identified Patterns")
	p("")
	freqs := a.MessageFrequencies()
	common := triage.CommonPatterns(freqs, opts.TopPatterns)
	if len(common) > 0 {
		p("### Most frequent messages")
		p("")
		for _, pc := range common {
			p("- **%dx:** %s", pc.Count, truncate(pc.Message, opts.MessagePreview))
		}
	} else {
		p("_No recurring message._")
	}
	p("")
	p("%d unique messages occur only once.", len(triage.UniqueMessages(freqs)))
	p("")

	p("## 📝 Recommended Actions")
	for _, tier := range triage.Tiers() {
		p("")
		p("### %s %s priority (%s problems)", tier.Icon(), tier.String(), tier.Range())
		for _, action := range recommendedActions[tier] {
			p("- %s", action)
		}
	}

	return bw.Flush()
}
