package models

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/ddx/cmd/ddx/commands/flags"
)

const testProjectYML = "name: analytics\nversion: \"1.0\"\n"

func writeProject(t *testing.T, files map[string]string) {
	t.Helper()

	dir := t.TempDir()
	for rel, contents := range files {
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", rel, err)
		}
		if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}

	flags.SetProjectDir(dir)
	t.Cleanup(func() { flags.SetProjectDir(".") })
}

func newCaptureCmd() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	cmd := &cobra.Command{Use: "list"}
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	return cmd, &buf
}

func TestRunList_Table(t *testing.T) {
	writeProject(t, map[string]string{
		"ddx_project.yml":   testProjectYML,
		"models/orders.sql": "---\nmaterialized: table\n---\nselect 1\n",
		"models/raw.sql":    "select * from source\n",
	})

	cmd, buf := newCaptureCmd()
	if err := runList(cmd, nil); err != nil {
		t.Fatalf("runList() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{"NAME", "FILE", "CONFIG", "orders", "raw"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q\nGot:\n%s", want, output)
		}
	}
	if !strings.Contains(output, "1 keys") {
		t.Errorf("orders should show its config key count\nGot:\n%s", output)
	}
	if !strings.Contains(output, "-") {
		t.Errorf("raw should show a placeholder config\nGot:\n%s", output)
	}
}

func TestRunList_JSON(t *testing.T) {
	writeProject(t, map[string]string{
		"ddx_project.yml":   testProjectYML,
		"models/orders.sql": "---\nmaterialized: table\ntags: [nightly]\n---\nselect 1\n",
	})

	origJSON := listJSON
	t.Cleanup(func() { listJSON = origJSON })
	listJSON = true

	cmd, buf := newCaptureCmd()
	if err := runList(cmd, nil); err != nil {
		t.Fatalf("runList() error = %v", err)
	}

	var infos []modelInfo
	if err := json.Unmarshal(buf.Bytes(), &infos); err != nil {
		t.Fatalf("output is not valid JSON: %v\nGot:\n%s", err, buf.String())
	}
	if len(infos) != 1 {
		t.Fatalf("got %d models, want 1", len(infos))
	}
	if infos[0].Name != "orders" {
		t.Errorf("Name = %q, want %q", infos[0].Name, "orders")
	}
	if infos[0].Package != "analytics" {
		t.Errorf("Package = %q, want %q", infos[0].Package, "analytics")
	}
	if infos[0].Config["materialized"] != "table" {
		t.Errorf("Config = %v, want materialized: table", infos[0].Config)
	}
}

func TestRunList_EmptyProject(t *testing.T) {
	writeProject(t, map[string]string{
		"ddx_project.yml": testProjectYML,
	})

	cmd, buf := newCaptureCmd()
	if err := runList(cmd, nil); err != nil {
		t.Fatalf("runList() error = %v", err)
	}

	if !strings.Contains(buf.String(), "No model files found") {
		t.Errorf("output should report the empty project\nGot:\n%s", buf.String())
	}
}

func TestRunList_IgnoreInvalid(t *testing.T) {
	writeProject(t, map[string]string{
		"ddx_project.yml": testProjectYML,
		"models/bad.sql":  "---\n{broken\n---\nselect 2\n",
	})

	origIgnore := listIgnoreInvalid
	t.Cleanup(func() { listIgnoreInvalid = origIgnore })
	listIgnoreInvalid = true

	cmd, buf := newCaptureCmd()
	if err := runList(cmd, nil); err != nil {
		t.Fatalf("runList() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "bad") {
		t.Errorf("the model should still be listed\nGot:\n%s", output)
	}
	if !strings.Contains(output, "-") {
		t.Errorf("the undecodable config should be dropped\nGot:\n%s", output)
	}
}

func TestRunList_WarnErrorFails(t *testing.T) {
	writeProject(t, map[string]string{
		"ddx_project.yml": testProjectYML,
		"models/bad.sql":  "---\n{broken\n---\nselect 2\n",
	})

	flags.SetWarnError(true)
	t.Cleanup(func() { flags.SetWarnError(false) })

	cmd, _ := newCaptureCmd()
	err := runList(cmd, nil)
	if err == nil {
		t.Fatal("expected an error with --warn-error set")
	}
	if !strings.Contains(err.Error(), "loading model") {
		t.Errorf("error = %v, want a model loading failure", err)
	}
}

func TestConfigSummary(t *testing.T) {
	tests := []struct {
		name string
		cfg  map[string]any
		want string
	}{
		{"nil config", nil, "-"},
		{"empty config", map[string]any{}, "-"},
		{"one key", map[string]any{"materialized": "table"}, "1 keys"},
		{"several keys", map[string]any{"a": 1, "b": 2, "c": 3}, "3 keys"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := configSummary(tt.cfg); got != tt.want {
				t.Errorf("configSummary() = %q, want %q", got, tt.want)
			}
		})
	}
}
