package docs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunRender_AbsoluteOut(t *testing.T) {
	writeProject(t, map[string]string{
		"ddx_project.yml":  testProjectYML,
		"docs/overview.md": "{% docs orders %}\n# Orders\n\nOne row per *order*.\n{% enddocs %}\n",
	})

	outDir := filepath.Join(t.TempDir(), "site")
	origOut := renderOut
	t.Cleanup(func() { renderOut = origOut })
	renderOut = outDir

	cmd, buf := newCaptureCmd("render")
	if err := runRender(cmd, nil); err != nil {
		t.Fatalf("runRender() error = %v", err)
	}

	if !strings.Contains(buf.String(), "Rendered 1 blocks to "+outDir) {
		t.Errorf("missing render summary\nGot:\n%s", buf.String())
	}

	data, err := os.ReadFile(filepath.Join(outDir, "analytics.orders.html"))
	if err != nil {
		t.Fatalf("reading rendered file: %v", err)
	}
	html := string(data)
	if !strings.Contains(html, "<h1") {
		t.Errorf("markdown heading should render as HTML\nGot:\n%s", html)
	}
	if !strings.Contains(html, "<em>order</em>") {
		t.Errorf("markdown emphasis should render as HTML\nGot:\n%s", html)
	}
}

func TestRunRender_RelativeOutJoinsProject(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"ddx_project.yml":  testProjectYML,
		"docs/overview.md": "{% docs orders %}\nOrders.\n{% enddocs %}\n",
	})

	origOut := renderOut
	t.Cleanup(func() { renderOut = origOut })
	renderOut = "target/docs"

	cmd, _ := newCaptureCmd("render")
	if err := runRender(cmd, nil); err != nil {
		t.Fatalf("runRender() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "target", "docs", "analytics.orders.html")); err != nil {
		t.Errorf("rendered file should land under the project directory: %v", err)
	}
}

func TestRenderCommand_Metadata(t *testing.T) {
	if renderCmd.Use != "render" {
		t.Errorf("Use = %q, want %q", renderCmd.Use, "render")
	}

	if renderCmd.Flags().Lookup("out") == nil {
		t.Error("--out flag should be defined")
	}
}
