package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()
	cfg := Default()

	assert.Equal(t, DefaultInputDirectory, cfg.Input.Directory)
	assert.Equal(t, DefaultInputPattern, cfg.Input.Pattern)
	assert.Equal(t, DefaultOutputDirectory, cfg.Output.Directory)
	assert.Equal(t, DefaultTimestampFormat, cfg.Output.TimestampFormat)
	assert.True(t, cfg.Output.SpreadsheetEnabled())
	assert.True(t, cfg.Output.DocumentEnabled())
	assert.Equal(t, DefaultTopPatterns, cfg.Report.TopPatterns)
	require.NotNil(t, cfg.Report.TopClasses)
	assert.Equal(t, DefaultTopClasses, *cfg.Report.TopClasses)
	assert.Equal(t, DefaultMessagePreview, cfg.Report.MessagePreview)
	assert.NoError(t, Validate(cfg))
}

func TestLoad_FormatsAreEquivalent(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	files := map[string]string{
		"config.json": `{
			"input": {"directory": "build", "pattern": "phpunit-*.log"},
			"output": {"directory": "reports", "spreadsheet": false, "timestamp_format": "2006-01-02_15-04"},
			"report": {"top_patterns": 8, "top_classes": 0, "message_preview": 60}
		}`,
		"config.yaml": `
input:
  directory: build
  pattern: phpunit-*.log
output:
  directory: reports
  spreadsheet: false
  timestamp_format: "2006-01-02_15-04"
report:
  top_patterns: 8
  top_classes: 0
  message_preview: 60
`,
		"config.toml": `
[input]
directory = "build"
pattern = "phpunit-*.log"

[output]
directory = "reports"
spreadsheet = false
timestamp_format = "2006-01-02_15-04"

[report]
top_patterns = 8
top_classes = 0
message_preview = 60
`,
	}

	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, dir, name, content))
			require.NoError(t, err)

			assert.Equal(t, "build", cfg.Input.Directory)
			assert.Equal(t, "phpunit-*.log", cfg.Input.Pattern)
			assert.Equal(t, "reports", cfg.Output.Directory)
			assert.False(t, cfg.Output.SpreadsheetEnabled())
			assert.True(t, cfg.Output.DocumentEnabled())
			assert.Equal(t, "2006-01-02_15-04", cfg.Output.TimestampFormat)
			assert.Equal(t, 8, cfg.Report.TopPatterns)
			require.NotNil(t, cfg.Report.TopClasses)
			assert.Equal(t, 0, *cfg.Report.TopClasses)
			assert.Equal(t, 60, cfg.Report.MessagePreview)
		})
	}
}

func TestLoad_EmptyYAMLUsesDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := Load(writeFile(t, t.TempDir(), ".triage.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"unknown key json", "a.json", `{"inputs": {}}`},
		{"unknown key yaml", "b.yaml", "outputs:\n  directory: x\n"},
		{"wrong type toml", "c.toml", "[report]\ntop_patterns = \"five\"\n"},
		{"malformed json", "d.json", `{"input": `},
		{"malformed toml", "e.toml", "[input\n"},
		{"bad glob", "f.json", `{"input": {"pattern": "output-[.txt"}}`},
		{"pattern with directory", "g.json", `{"input": {"pattern": "logs/output-*.txt"}}`},
		{"timestamp without fields", "h.json", `{"output": {"timestamp_format": "latest"}}`},
		{"timestamp with separators", "i.json", `{"output": {"timestamp_format": "2006/01/02"}}`},
		{"unsupported extension", "j.ini", `x=1`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, dir, tt.file, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()
	_, err := Load("/nonexistent/path/.triage.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestValidate_ErrorField(t *testing.T) {
	t.Parallel()
	cfg := Default()
	cfg.Input.Pattern = "["

	err := Validate(cfg)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "input.pattern", verr.Field)
}

func TestValidate_FlagSettableFields(t *testing.T) {
	t.Parallel()
	negative := -1
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"empty pattern", func(c *Config) { c.Input.Pattern = "" }, "input.pattern"},
		{"pattern with directory", func(c *Config) { c.Input.Pattern = "logs/*.txt" }, "input.pattern"},
		{"negative top classes", func(c *Config) { c.Report.TopClasses = &negative }, "report.top_classes"},
		{"layout without fields", func(c *Config) { c.Output.TimestampFormat = "latest" }, "output.timestamp_format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.modify(cfg)

			var verr *ValidationError
			require.ErrorAs(t, Validate(cfg), &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestDiscover(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	_, ok := Discover(dir)
	assert.False(t, ok)

	writeFile(t, dir, ".triage.toml", "")
	path, ok := Discover(dir)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, ".triage.toml"), path)

	writeFile(t, dir, ".triage.json", "{}")
	path, ok = Discover(dir)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, ".triage.json"), path, "json takes priority")
}

func TestLoadOrDefault(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	cfg, path, err := LoadOrDefault(dir, "")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, Default(), cfg)

	writeFile(t, dir, ".triage.yml", "report:\n  top_patterns: 3\n")
	cfg, path, err = LoadOrDefault(dir, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".triage.yml"), path)
	assert.Equal(t, 3, cfg.Report.TopPatterns)

	explicit := writeFile(t, dir, "custom.json", `{"report": {"top_patterns": 7}}`)
	cfg, path, err = LoadOrDefault(dir, explicit)
	require.NoError(t, err)
	assert.Equal(t, explicit, path)
	assert.Equal(t, 7, cfg.Report.TopPatterns)
}

func TestFormatFromPath(t *testing.T) {
	t.Parallel()
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{".triage.json", FormatJSON, false},
		{"x.YAML", FormatYAML, false},
		{"x.yml", FormatYAML, false},
		{"x.toml", FormatTOML, false},
		{"x.ini", "", true},
		{"noext", "", true},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if tt.wantErr {
			assert.Error(t, err, tt.path)
			continue
		}
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, got)
	}
}
