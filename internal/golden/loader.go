package golden

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LoadSuite loads all cases from a suite directory, sorted by name.
func LoadSuite(dir, suite string) ([]Case, error) {
	suiteDir := filepath.Join(dir, suite)

	if _, err := os.Stat(suiteDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("golden suite directory not found: %s", suiteDir)
	}

	matches, err := filepath.Glob(filepath.Join(suiteDir, "*.json"))
	if err != nil {
		return nil, err
	}

	cases := make([]Case, 0, len(matches))
	for _, path := range matches {
		c, err := LoadCase(path)
		if err != nil {
			return nil, fmt.Errorf("golden suite %q: %w (file: %s)", suite, err, path)
		}
		c.Suite = suite
		cases = append(cases, *c)
	}

	sort.Slice(cases, func(i, j int) bool {
		return cases[i].Name < cases[j].Name
	})
	return cases, nil
}

// LoadAllSuites loads cases from every suite directory under dir.
func LoadAllSuites(dir string) (map[string][]Case, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read golden directory: %w", err)
	}

	suites := make(map[string][]Case)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		cases, err := LoadSuite(dir, entry.Name())
		if err != nil {
			return nil, err
		}
		if len(cases) > 0 {
			suites[entry.Name()] = cases
		}
	}
	return suites, nil
}

// caseFile is the on-disk layout of a case. Input is either a JSON string or
// {"$file": "name.txt"} relative to the case file.
type caseFile struct {
	Input    json.RawMessage `json:"input"`
	Expected *Snapshot       `json:"expected"`
}

// LoadCase loads a single case from a JSON file.
func LoadCase(path string) (*Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw caseFile
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	if raw.Input == nil {
		return nil, fmt.Errorf("missing required field \"input\"")
	}
	if raw.Expected == nil {
		return nil, fmt.Errorf("missing required field \"expected\"")
	}

	input, err := resolveInput(raw.Input, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}

	return &Case{
		Name:     strings.TrimSuffix(filepath.Base(path), ".json"),
		Path:     path,
		Input:    input,
		Expected: *raw.Expected,
	}, nil
}

func resolveInput(raw json.RawMessage, baseDir string) (string, error) {
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text, nil
	}

	var ref struct {
		File string `json:"$file"`
	}
	if err := json.Unmarshal(raw, &ref); err != nil || ref.File == "" {
		return "", fmt.Errorf("must be a string or a {\"$file\": ...} reference")
	}
	return loadFileRef(ref.File, baseDir)
}

// loadFileRef reads a file referenced by $file, which must stay inside baseDir.
func loadFileRef(ref, baseDir string) (string, error) {
	if strings.Contains(ref, "..") {
		return "", fmt.Errorf("$file path contains \"..\": %s", ref)
	}

	path := filepath.Join(baseDir, ref)

	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return "", err
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(absPath, absBase+string(filepath.Separator)) {
		return "", fmt.Errorf("$file path escapes golden directory: %s", ref)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("$file %q: %w", ref, err)
	}
	return string(data), nil
}
