package models

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thoreinstein/ddx/pkg/frontmatter"
)

func writeModels(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, contents := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte(contents), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestLoader_Load(t *testing.T) {
	root := writeModels(t, map[string]string{
		"models/orders.sql": "---\nmaterialized: table\n---\nselect * from raw.orders\n",
		"models/plain.sql":  "select 1\n",
		"models/notes.md":   "not a model",
		"models/.wip.sql":   "hidden",
	})

	loader := NewLoader(frontmatter.PolicyWarnOrError, nil)
	models, err := loader.Load("shop", root, []string{"models"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(models) != 2 {
		t.Fatalf("got %d models, want 2: %+v", len(models), models)
	}

	orders := models[0]
	if orders.Name != "orders" {
		t.Errorf("Name = %q, want orders", orders.Name)
	}
	if orders.PackageName != "shop" {
		t.Errorf("PackageName = %q, want shop", orders.PackageName)
	}
	if orders.OriginalPath != filepath.Join("models", "orders.sql") {
		t.Errorf("OriginalPath = %q", orders.OriginalPath)
	}
	if got := orders.Config["materialized"]; got != "table" {
		t.Errorf("Config[materialized] = %v, want table", got)
	}
	if orders.Body != "select * from raw.orders\n" {
		t.Errorf("Body = %q", orders.Body)
	}

	plain := models[1]
	if plain.Name != "plain" {
		t.Errorf("Name = %q, want plain", plain.Name)
	}
	if plain.Config != nil {
		t.Errorf("Config = %v, want nil for a file without frontmatter", plain.Config)
	}
	if plain.Body != "select 1\n" {
		t.Errorf("Body = %q, want the file unchanged", plain.Body)
	}
}

const malformedModel = "---\nmaterialized: [unclosed\n---\nselect 1\n"

func TestLoader_Load_MalformedIgnored(t *testing.T) {
	root := writeModels(t, map[string]string{"models/bad.sql": malformedModel})

	loader := NewLoader(frontmatter.PolicyIgnore, nil)
	models, err := loader.Load("shop", root, []string{"models"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(models) != 1 {
		t.Fatalf("got %d models, want 1", len(models))
	}
	if models[0].Config != nil {
		t.Errorf("Config = %v, want nil", models[0].Config)
	}
	if models[0].Body != malformedModel {
		t.Errorf("Body = %q, want the original file under the ignore policy", models[0].Body)
	}
}

func TestLoader_Load_MalformedWarned(t *testing.T) {
	root := writeModels(t, map[string]string{"models/bad.sql": malformedModel})

	var warned []error
	esc := frontmatter.EscalatorFunc(func(err error) error {
		warned = append(warned, err)
		return nil
	})

	loader := NewLoader(frontmatter.PolicyWarnOrError, esc)
	models, err := loader.Load("shop", root, []string{"models"})
	if err != nil {
		t.Fatalf("Load() error = %v, want nil when the escalator warns", err)
	}
	if len(models) != 1 {
		t.Fatalf("got %d models, want 1", len(models))
	}
	if len(warned) != 1 {
		t.Fatalf("escalator called %d times, want 1", len(warned))
	}
	if !strings.Contains(warned[0].Error(), "Error parsing YAML frontmatter!") {
		t.Errorf("escalated error %q lacks the frontmatter banner", warned[0])
	}
}

func TestLoader_Load_MalformedEscalated(t *testing.T) {
	root := writeModels(t, map[string]string{"models/bad.sql": malformedModel})

	esc := frontmatter.EscalatorFunc(func(err error) error { return err })

	loader := NewLoader(frontmatter.PolicyWarnOrError, esc)
	_, err := loader.Load("shop", root, []string{"models"})
	if err == nil {
		t.Fatal("Load() error = nil, want escalated frontmatter error")
	}
	if !strings.Contains(err.Error(), filepath.Join("models", "bad.sql")) {
		t.Errorf("error %q does not name the model file", err)
	}
}

func TestLoader_Load_FrontmatterNotAtTop(t *testing.T) {
	contents := "select 1\n---\nmaterialized: table\n---\nselect 2\n"
	root := writeModels(t, map[string]string{"models/m.sql": contents})

	loader := NewLoader(frontmatter.PolicyWarnOrError, nil)
	models, err := loader.Load("shop", root, []string{"models"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if models[0].Config != nil {
		t.Errorf("Config = %v, want nil when text precedes the delimiter", models[0].Config)
	}
	if models[0].Body != contents {
		t.Errorf("Body = %q, want the file unchanged", models[0].Body)
	}
}
