package docs

import (
	"strings"
	"testing"

	"github.com/thoreinstein/ddx/internal/errors"
)

func sourceFile(path, contents string) SourceFile {
	return SourceFile{
		RootPath:     "/project",
		Path:         path,
		OriginalPath: "docs/" + path,
		PackageName:  "analytics",
		Contents:     contents,
	}
}

func TestBuilder_Parse(t *testing.T) {
	b := NewBuilder()

	file := sourceFile("overview.md", "{% docs foo %}hello{% enddocs %}")
	blocks, err := b.Parse(file)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}

	got := blocks[0]
	if got.UniqueID != "analytics.foo" {
		t.Errorf("UniqueID = %q, want %q", got.UniqueID, "analytics.foo")
	}
	if got.Name != "foo" {
		t.Errorf("Name = %q, want %q", got.Name, "foo")
	}
	if got.BlockContents != "hello" {
		t.Errorf("BlockContents = %q, want %q", got.BlockContents, "hello")
	}
	if got.ResourceType != ResourceTypeDocumentation {
		t.Errorf("ResourceType = %q, want %q", got.ResourceType, ResourceTypeDocumentation)
	}
	if got.RootPath != file.RootPath || got.Path != file.Path ||
		got.OriginalPath != file.OriginalPath || got.PackageName != file.PackageName {
		t.Errorf("provenance not copied: %+v", got)
	}
	if got.FileContents != file.Contents {
		t.Errorf("FileContents = %q, want the raw file text", got.FileContents)
	}
}

func TestBuilder_Parse_IgnoresPlainMacros(t *testing.T) {
	b := NewBuilder()

	src := `{% macro helper(x) %}not documentation{% endmacro %}
{% docs real %}documentation{% enddocs %}`
	blocks, err := b.Parse(sourceFile("mixed.sql", src))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	if blocks[0].Name != "real" {
		t.Errorf("Name = %q, want %q", blocks[0].Name, "real")
	}
}

func TestBuilder_Parse_NoBlocks(t *testing.T) {
	b := NewBuilder()

	blocks, err := b.Parse(sourceFile("plain.md", "# Heading\n\nOrdinary markdown.\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(blocks) != 0 {
		t.Errorf("got %d blocks, want 0", len(blocks))
	}
}

func TestBuilder_Parse_ContentsRule(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "literal body",
			src:  "{% docs a %}plain text{% enddocs %}",
			want: "plain text",
		},
		{
			name: "empty body",
			src:  "{% docs a %}{% enddocs %}",
			want: "",
		},
		{
			name: "body opens with control flow",
			src:  "{% docs a %}{% if x %}text{% endif %}{% enddocs %}",
			want: "",
		},
		{
			name: "body opens with an expression",
			src:  "{% docs a %}{{ column }} is a column{% enddocs %}",
			want: "",
		},
		{
			name: "only the first text node is read",
			src:  "{% docs a %}first {{ ref }} second{% enddocs %}",
			want: "first ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks, err := NewBuilder().Parse(sourceFile("f.md", tt.src))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if len(blocks) != 1 {
				t.Fatalf("got %d blocks, want 1", len(blocks))
			}
			if blocks[0].BlockContents != tt.want {
				t.Errorf("BlockContents = %q, want %q", blocks[0].BlockContents, tt.want)
			}
		})
	}
}

func TestBuilder_Parse_SyntaxError(t *testing.T) {
	b := NewBuilder()

	_, err := b.Parse(sourceFile("broken.md", "{% docs foo %}never closed"))
	if err == nil {
		t.Fatal("Parse() error = nil, want syntax error")
	}
	if !strings.Contains(err.Error(), "docs/broken.md") {
		t.Errorf("error %q does not name the file", err)
	}
}

func TestBuilder_Build(t *testing.T) {
	b := NewBuilder()

	files := []SourceFile{
		sourceFile("one.md", "{% docs first %}1{% enddocs %}{% docs second %}2{% enddocs %}"),
		sourceFile("two.md", "{% docs third %}3{% enddocs %}"),
	}
	registry, err := b.Build(files)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	wantIDs := []string{"analytics.first", "analytics.second", "analytics.third"}
	gotIDs := registry.IDs()
	if len(gotIDs) != len(wantIDs) {
		t.Fatalf("IDs() = %v, want %v", gotIDs, wantIDs)
	}
	for i := range wantIDs {
		if gotIDs[i] != wantIDs[i] {
			t.Errorf("IDs()[%d] = %q, want %q", i, gotIDs[i], wantIDs[i])
		}
	}
}

func TestBuilder_Build_DuplicateFailsFast(t *testing.T) {
	b := NewBuilder()

	files := []SourceFile{
		sourceFile("one.md", "{% docs shared %}from one{% enddocs %}"),
		sourceFile("two.md", "{% docs shared %}from two{% enddocs %}"),
	}
	_, err := b.Build(files)
	if err == nil {
		t.Fatal("Build() error = nil, want duplicate error")
	}

	var dup *DuplicateBlockError
	if !errors.As(err, &dup) {
		t.Fatalf("error type = %T, want *DuplicateBlockError", err)
	}
	if dup.Existing.OriginalPath != "docs/one.md" {
		t.Errorf("Existing.OriginalPath = %q, want docs/one.md", dup.Existing.OriginalPath)
	}
	if dup.New.OriginalPath != "docs/two.md" {
		t.Errorf("New.OriginalPath = %q, want docs/two.md", dup.New.OriginalPath)
	}
	if dup.Existing.BlockContents != "from one" {
		t.Errorf("Existing.BlockContents = %q, the first insertion must win", dup.Existing.BlockContents)
	}

	msg := err.Error()
	for _, want := range []string{
		"- analytics.shared (docs/one.md)",
		"- analytics.shared (docs/two.md)",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message missing %q:\n%s", want, msg)
		}
	}
}

func TestBuilder_Build_FreshRegistryPerCall(t *testing.T) {
	b := NewBuilder()

	files := []SourceFile{sourceFile("one.md", "{% docs solo %}x{% enddocs %}")}

	first, err := b.Build(files)
	if err != nil {
		t.Fatalf("first Build() error = %v", err)
	}
	second, err := b.Build(files)
	if err != nil {
		t.Fatalf("second Build() error = %v, the builder must not retain state", err)
	}
	if len(first) != 1 || len(second) != 1 {
		t.Errorf("registry sizes = %d, %d; want 1, 1", len(first), len(second))
	}
}
