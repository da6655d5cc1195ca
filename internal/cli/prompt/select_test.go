package prompt

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/thoreinstein/ddx/internal/docs"
)

func block(pkg, name, path string) *docs.Block {
	return &docs.Block{
		UniqueID:     pkg + "." + name,
		Name:         name,
		OriginalPath: path,
		PackageName:  pkg,
	}
}

func TestSelectBlock_EmptyList(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := NewSelectorWithIO(strings.NewReader(""), &buf)

	_, err := s.SelectBlock("orders", nil)
	if err == nil {
		t.Fatal("expected error for empty list")
	}
	if !strings.Contains(err.Error(), "no blocks") {
		t.Errorf("expected ErrNoBlocks, got: %v", err)
	}
}

func TestSelectBlock_SingleItem(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := NewSelectorWithIO(strings.NewReader(""), &buf)

	blocks := []*docs.Block{
		block("analytics", "orders", "docs/orders.md"),
	}

	result, err := s.SelectBlock("orders", blocks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.UniqueID != "analytics.orders" {
		t.Errorf("expected 'analytics.orders', got %q", result.UniqueID)
	}
	// Should not prompt for single item
	if buf.Len() > 0 {
		t.Errorf("expected no output for single item, got: %s", buf.String())
	}
}

func TestSelectBlock_ValidSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantIdx int
	}{
		{
			name:    "explicit first",
			input:   "1\n",
			wantIdx: 0,
		},
		{
			name:    "explicit second",
			input:   "2\n",
			wantIdx: 1,
		},
		{
			name:    "default on empty",
			input:   "\n",
			wantIdx: 0,
		},
		{
			name:    "whitespace trimmed",
			input:   "  2  \n",
			wantIdx: 1,
		},
	}

	blocks := []*docs.Block{
		block("analytics", "orders", "docs/orders.md"),
		block("finance", "orders", "docs/billing.md"),
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			s := NewSelectorWithIO(strings.NewReader(tt.input), &buf)

			result, err := s.SelectBlock("orders", blocks)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.UniqueID != blocks[tt.wantIdx].UniqueID {
				t.Errorf("expected %q, got %q", blocks[tt.wantIdx].UniqueID, result.UniqueID)
			}
		})
	}
}

func TestSelectBlock_InvalidSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "too low",
			input:   "0\n",
			wantErr: "out of range",
		},
		{
			name:    "too high",
			input:   "3\n",
			wantErr: "out of range",
		},
		{
			name:    "negative",
			input:   "-1\n",
			wantErr: "out of range",
		},
		{
			name:    "not a number",
			input:   "abc\n",
			wantErr: "not a number",
		},
	}

	blocks := []*docs.Block{
		block("analytics", "orders", "docs/orders.md"),
		block("finance", "orders", "docs/billing.md"),
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			s := NewSelectorWithIO(strings.NewReader(tt.input), &buf)

			_, err := s.SelectBlock("orders", blocks)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got: %v", tt.wantErr, err)
			}
		})
	}
}

func TestSelectBlock_Cancelled(t *testing.T) {
	t.Parallel()

	// Empty reader simulates EOF (Ctrl+D)
	var buf bytes.Buffer
	r := &eofReader{}
	s := NewSelectorWithIO(r, &buf)

	blocks := []*docs.Block{
		block("analytics", "orders", "docs/orders.md"),
		block("finance", "orders", "docs/billing.md"),
	}

	_, err := s.SelectBlock("orders", blocks)
	if err == nil {
		t.Fatal("expected error for EOF")
	}
	if !strings.Contains(err.Error(), "cancelled") {
		t.Errorf("expected ErrSelectionCancelled, got: %v", err)
	}
}

func TestSelectBlock_OutputFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := NewSelectorWithIO(strings.NewReader("1\n"), &buf)

	blocks := []*docs.Block{
		block("analytics", "orders", "docs/orders.md"),
		block("finance", "orders", "docs/billing.md"),
	}

	_, err := s.SelectBlock("orders", blocks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := buf.String()

	// Verify output format
	if !strings.Contains(output, `Multiple blocks found for "orders":`) {
		t.Errorf("missing header in output: %s", output)
	}
	if !strings.Contains(output, "[1] analytics.orders (docs/orders.md)") {
		t.Errorf("missing first option in output: %s", output)
	}
	if !strings.Contains(output, "[2] finance.orders (docs/billing.md)") {
		t.Errorf("missing second option in output: %s", output)
	}
	if !strings.Contains(output, "Select [1]:") {
		t.Errorf("missing prompt in output: %s", output)
	}
}

func TestResolveRef(t *testing.T) {
	t.Parallel()

	registry := make(docs.Registry)
	for _, b := range []*docs.Block{
		block("analytics", "orders", "docs/orders.md"),
		block("finance", "orders", "docs/billing.md"),
		block("analytics", "customers", "docs/customers.md"),
	} {
		if err := registry.Insert(b); err != nil {
			t.Fatal(err)
		}
	}

	t.Run("unique id resolves without prompting", func(t *testing.T) {
		var buf bytes.Buffer
		s := NewSelectorWithIO(strings.NewReader(""), &buf)

		b, err := s.ResolveRef(registry, "finance.orders")
		if err != nil {
			t.Fatalf("ResolveRef() error = %v", err)
		}
		if b.OriginalPath != "docs/billing.md" {
			t.Errorf("ResolveRef() = %+v, want the finance block", b)
		}
		if buf.Len() > 0 {
			t.Errorf("unexpected prompt output: %s", buf.String())
		}
	})

	t.Run("unambiguous bare name resolves without prompting", func(t *testing.T) {
		var buf bytes.Buffer
		s := NewSelectorWithIO(strings.NewReader(""), &buf)

		b, err := s.ResolveRef(registry, "customers")
		if err != nil {
			t.Fatalf("ResolveRef() error = %v", err)
		}
		if b.UniqueID != "analytics.customers" {
			t.Errorf("ResolveRef() = %q, want analytics.customers", b.UniqueID)
		}
	})

	t.Run("ambiguous bare name prompts", func(t *testing.T) {
		var buf bytes.Buffer
		s := NewSelectorWithIO(strings.NewReader("2\n"), &buf)

		b, err := s.ResolveRef(registry, "orders")
		if err != nil {
			t.Fatalf("ResolveRef() error = %v", err)
		}
		if b.UniqueID != "finance.orders" {
			t.Errorf("ResolveRef() = %q, want finance.orders", b.UniqueID)
		}
		if !strings.Contains(buf.String(), `Multiple blocks found for "orders":`) {
			t.Errorf("missing prompt header in output: %s", buf.String())
		}
	})

	t.Run("unknown ref passes the error through", func(t *testing.T) {
		var buf bytes.Buffer
		s := NewSelectorWithIO(strings.NewReader(""), &buf)

		_, err := s.ResolveRef(registry, "nope")
		if err == nil {
			t.Fatal("ResolveRef() error = nil, want not-found error")
		}
		if !strings.Contains(err.Error(), "not found") {
			t.Errorf("error = %v, want a not-found error", err)
		}
	})
}

// eofReader simulates immediate EOF (like Ctrl+D).
type eofReader struct{}

func (r *eofReader) Read(_ []byte) (int, error) {
	return 0, io.EOF
}
