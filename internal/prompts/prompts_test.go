package prompts

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const catalog = `summary:
  description: One paragraph summary
  template: Summarize {paper}
phd_analysis:
  description: Deep methodological review
  template: Analyze {paper}
`

func TestNamesSorted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.yaml")
	if err := os.WriteFile(path, []byte(catalog), 0o644); err != nil {
		t.Fatal(err)
	}

	names, err := Names(path)
	if err != nil {
		t.Fatalf("Names: %v", err)
	}
	if want := []string{"phd_analysis", "summary"}; !reflect.DeepEqual(names, want) {
		t.Fatalf("Names = %v, want %v", names, want)
	}
}

func TestLoadFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.yaml")
	if err := os.WriteFile(path, []byte(catalog), 0o644); err != nil {
		t.Fatal(err)
	}

	templates, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if templates["summary"].Description != "One paragraph summary" {
		t.Fatalf("summary = %+v", templates["summary"])
	}
}

func TestMissingCatalogIsNotAnError(t *testing.T) {
	names, err := Names(filepath.Join(t.TempDir(), "prompts.yaml"))
	if err != nil {
		t.Fatalf("Names: %v", err)
	}
	if len(names) != 0 {
		t.Fatalf("Names = %v", names)
	}
}

func TestMalformedCatalogIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.yaml")
	if err := os.WriteFile(path, []byte(":\t not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load accepted a malformed catalog")
	}
}
