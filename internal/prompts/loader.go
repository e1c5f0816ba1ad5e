// Package prompts provides externalized oracle prompt templates. Templates
// live in JSON files embedded at compile time, keyed by name, with {{.Key}}
// placeholders substituted at call sites.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"
	"sync"
)

//go:embed *.json
var promptFiles embed.FS

var (
	parseOnce sync.Once
	parsed    map[string]map[string]string
	parseErr  error
)

func load() (map[string]map[string]string, error) {
	parseOnce.Do(func() {
		parsed = make(map[string]map[string]string)
		parseErr = fs.WalkDir(promptFiles, ".", func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}
			data, err := promptFiles.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read prompt file %s: %w", path, err)
			}
			var entries map[string]string
			if err := json.Unmarshal(data, &entries); err != nil {
				return fmt.Errorf("failed to parse prompt file %s: %w", path, err)
			}
			parsed[path] = entries
			return nil
		})
	})
	return parsed, parseErr
}

// Get retrieves a prompt template by filename (no path) and key.
func Get(filename, key string) (string, error) {
	files, err := load()
	if err != nil {
		return "", err
	}
	entries, ok := files[filename]
	if !ok {
		return "", fmt.Errorf("prompt file %q not found", filename)
	}
	template, ok := entries[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found in %s", key, filename)
	}
	return template, nil
}

// MustGet is Get for prompts required at initialization; a missing prompt
// is a packaging bug, not a runtime condition.
func MustGet(filename, key string) string {
	template, err := Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return template
}

// Format substitutes {{.Key}} placeholders with values from data.
func Format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		result = strings.ReplaceAll(result, "{{."+key+"}}", value)
	}
	return result
}
