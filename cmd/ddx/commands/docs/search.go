package docs

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/ddx/internal/docs"
	"github.com/thoreinstein/ddx/internal/errors"
	"github.com/thoreinstein/ddx/internal/logging"
)

func init() {
	Cmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search documentation blocks",
	Long: `Search documentation blocks by name and contents.

With a query, prints every block whose unique id or contents contain
it, case-insensitively. Without a query on a terminal, opens an
interactive fuzzy finder with a block-contents preview; otherwise all
blocks are listed.

Examples:
  # Find blocks mentioning revenue
  ddx docs search revenue

  # Pick a block interactively
  ddx docs search`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	registry, err := loadRegistry(cmd)
	if err != nil {
		return err
	}

	if len(args) == 0 && logging.IsTTY(os.Stdout) {
		return runInteractiveSearch(cmd.OutOrStdout(), registry)
	}

	var query string
	if len(args) > 0 {
		query = args[0]
	}
	return outputMatches(cmd.OutOrStdout(), registry, query)
}

// outputMatches prints the blocks matching query, all blocks when the
// query is empty.
func outputMatches(w io.Writer, registry docs.Registry, query string) error {
	needle := strings.ToLower(query)

	var ids []string
	for _, id := range registry.IDs() {
		b := registry[id]
		if needle == "" ||
			strings.Contains(strings.ToLower(id), needle) ||
			strings.Contains(strings.ToLower(b.BlockContents), needle) {
			ids = append(ids, id)
		}
	}

	if len(ids) == 0 {
		fmt.Fprintln(w, "No matching blocks found")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "UNIQUE ID\tFILE\n")
	for _, id := range ids {
		fmt.Fprintf(tw, "%s\t%s\n", id, registry[id].OriginalPath)
	}
	return tw.Flush()
}

func runInteractiveSearch(w io.Writer, registry docs.Registry) error {
	ids := registry.IDs()
	if len(ids) == 0 {
		fmt.Fprintln(w, "No documentation blocks found")
		return nil
	}

	idx, err := fuzzyfinder.Find(
		ids,
		func(i int) string {
			return ids[i]
		},
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			b := registry[ids[i]]
			return fmt.Sprintf("File: %s\n\n%s", b.OriginalPath, b.BlockContents)
		}),
	)

	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		return errors.Wrap(err, "interactive search failed")
	}

	b := registry[ids[idx]]
	fmt.Fprintf(w, "%s (%s)\n\n%s\n", b.UniqueID, b.OriginalPath, b.BlockContents)
	return nil
}
