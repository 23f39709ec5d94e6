package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndreyAkinshin/triage/internal/triage"
)

func TestRenderMarkdown(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, RenderMarkdown(&buf, sampleAnalysis(), DefaultOptions()))
	got := buf.String()

	assert.True(t, strings.HasPrefix(got, "# 📋 PHPUnit Test Analysis - TODO List\n"))
	assert.Contains(t, got, "- **Classes with problems:** 2\n")
	assert.Contains(t, got, "- **Total errors:** 13\n")
	assert.Contains(t, got, "- **Total failures:** 2\n")
	assert.Contains(t, got, "- **Total problems:** 15\n")

	assert.Contains(t, got, "### 1. 🟠 UserTest - **12 problems**\n")
	assert.Contains(t, got, "- **Priority:** High\n")
	assert.Contains(t, got, "- **Namespace:** `Tests\\Unit\\UserTest`\n")
	assert.Contains(t, got, "### 2. 🟢 OrderTest - **3 problems**\n")
	assert.Less(t, strings.Index(got, "UserTest - "), strings.Index(got, "OrderTest - "))

	assert.Contains(t, got, "- **13x:** db down\n")
	assert.NotContains(t, got, "x:** expected 1")
	assert.Contains(t, got, "2 unique messages occur only once.\n")

	for _, tier := range triage.Tiers() {
		assert.Contains(t, got, tier.Icon()+" "+tier.String()+" priority ("+tier.Range()+" problems)")
	}
}

func TestRenderMarkdown_NoRecurringMessage(t *testing.T) {
	t.Parallel()
	agg := triage.NewAggregator()
	var buf bytes.Buffer
	require.NoError(t, RenderMarkdown(&buf, agg.Analysis(), DefaultOptions()))

	assert.Contains(t, buf.String(), "_No recurring message._")
	assert.Contains(t, buf.String(), "0 unique messages occur only once.")
}

func TestRenderMarkdown_TruncatesLongMessages(t *testing.T) {
	t.Parallel()
	opts := DefaultOptions()
	opts.MessagePreview = 4

	var buf bytes.Buffer
	require.NoError(t, RenderMarkdown(&buf, sampleAnalysis(), opts))

	assert.Contains(t, buf.String(), "- **13x:** db d...\n")
}

func TestWriteMarkdown(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "report.md")

	require.NoError(t, WriteMarkdown(path, sampleAnalysis(), DefaultOptions()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "## 📝 Recommended Actions")
}

func TestWriteMarkdown_BadDirectory(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "missing", "report.md")
	assert.Error(t, WriteMarkdown(path, sampleAnalysis(), DefaultOptions()))
}
