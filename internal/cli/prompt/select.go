// Package prompt implements the interactive questions ddx asks on a
// terminal. Today that is the picker shown when a bare block name is
// claimed by more than one package.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/thoreinstein/ddx/internal/docs"
	"github.com/thoreinstein/ddx/internal/errors"
)

// Errors surfaced by the picker. Callers match them with errors.Is.
var (
	ErrNoBlocks           = errors.New("no blocks to select from")
	ErrInvalidSelection   = errors.New("invalid selection")
	ErrSelectionCancelled = errors.New("selection cancelled")
)

// Selector asks the user to pick one documentation block from a short
// candidate list.
type Selector struct {
	in  io.Reader
	out io.Writer
}

// NewSelector returns a Selector wired to stdin and stdout.
func NewSelector() *Selector {
	return NewSelectorWithIO(os.Stdin, os.Stdout)
}

// NewSelectorWithIO returns a Selector that reads answers from r and
// writes the menu to w. Tests use it to script the exchange.
func NewSelectorWithIO(r io.Reader, w io.Writer) *Selector {
	return &Selector{in: r, out: w}
}

// ResolveRef looks ref up in the registry, prompting the user to pick
// one candidate when a bare name is carried by several packages. Other
// lookup failures pass through unchanged.
func (s *Selector) ResolveRef(registry docs.Registry, ref string) (*docs.Block, error) {
	b, err := registry.Lookup(ref)
	if err == nil {
		return b, nil
	}

	var amb *docs.AmbiguousRefError
	if errors.As(err, &amb) {
		return s.SelectBlock(ref, amb.Matches)
	}
	return nil, err
}

// SelectBlock prompts for one of blocks, which all answer to query. A
// single candidate is returned without prompting. An empty answer
// picks the first entry, and EOF means the user backed out, which maps
// to ErrSelectionCancelled.
func (s *Selector) SelectBlock(query string, blocks []*docs.Block) (*docs.Block, error) {
	switch len(blocks) {
	case 0:
		return nil, ErrNoBlocks
	case 1:
		return blocks[0], nil
	}

	fmt.Fprintf(s.out, "Multiple blocks found for %q:\n", query)
	for i, b := range blocks {
		fmt.Fprintf(s.out, "  [%d] %s (%s)\n", i+1, b.UniqueID, b.OriginalPath)
	}
	fmt.Fprint(s.out, "Select [1]: ")

	answer, err := s.readAnswer()
	if err != nil {
		return nil, err
	}
	if answer == "" {
		return blocks[0], nil
	}

	choice, err := parseChoice(answer, len(blocks))
	if err != nil {
		return nil, err
	}
	return blocks[choice-1], nil
}

func (s *Selector) readAnswer() (string, error) {
	line, err := bufio.NewReader(s.in).ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", ErrSelectionCancelled
		}
		return "", errors.Wrap(err, "reading selection")
	}
	return strings.TrimSpace(line), nil
}

// parseChoice converts a 1-indexed menu answer into its position,
// rejecting anything outside [1, n].
func parseChoice(answer string, n int) (int, error) {
	choice, err := strconv.Atoi(answer)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidSelection, "%q is not a number", answer)
	}
	if choice < 1 || choice > n {
		return 0, errors.Wrapf(ErrInvalidSelection, "%d is out of range [1-%d]", choice, n)
	}
	return choice, nil
}
