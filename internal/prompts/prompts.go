package prompts

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Template is one prompt template from the project's prompt catalog.
type Template struct {
	Description string `yaml:"description"`
	System      string `yaml:"system"`
	Template    string `yaml:"template"`
}

// Load parses the prompt catalog at path. A missing catalog is not an error;
// the Python side owns the file and sp only uses it for name validation.
func Load(path string) (map[string]Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var catalog map[string]Template
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return catalog, nil
}

// Names returns the sorted template names from the catalog at path.
func Names(path string) ([]string, error) {
	catalog, err := Load(path)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
