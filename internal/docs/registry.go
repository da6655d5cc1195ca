package docs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/thoreinstein/ddx/internal/errors"
)

// Registry maps unique ids to documentation blocks. It is built fresh
// per Build call and owned by the caller; merging registries from
// several packages means re-inserting and re-checking collisions.
type Registry map[string]*Block

// Insert adds b to the registry. It never overwrites: if the unique id
// is already taken, the stored block stays and a *DuplicateBlockError
// naming both is returned.
func (r Registry) Insert(b *Block) error {
	if existing, ok := r[b.UniqueID]; ok {
		return &DuplicateBlockError{Existing: existing, New: b}
	}
	r[b.UniqueID] = b
	return nil
}

// IDs returns every unique id in sorted order.
func (r Registry) IDs() []string {
	ids := make([]string, 0, len(r))
	for id := range r {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Lookup resolves ref first as a unique id, then as a bare block name.
// A bare name carried by more than one package is ambiguous and needs
// the package-qualified id instead.
func (r Registry) Lookup(ref string) (*Block, error) {
	if b, ok := r[ref]; ok {
		return b, nil
	}

	var found []*Block
	for _, id := range r.IDs() {
		if r[id].Name == ref {
			found = append(found, r[id])
		}
	}
	switch len(found) {
	case 0:
		return nil, errors.Wrapf(errors.ErrNotFound, "%q", ref)
	case 1:
		return found[0], nil
	default:
		return nil, &AmbiguousRefError{Ref: ref, Matches: found}
	}
}

// AmbiguousRefError reports a bare block name carried by more than one
// package. Matches holds every candidate, in unique-id order.
type AmbiguousRefError struct {
	Ref     string
	Matches []*Block
}

func (e *AmbiguousRefError) Error() string {
	ids := make([]string, len(e.Matches))
	for i, b := range e.Matches {
		ids[i] = b.UniqueID
	}
	return fmt.Sprintf("block name %q is ambiguous, use one of: %s", e.Ref, strings.Join(ids, ", "))
}

// DuplicateBlockError reports two documentation blocks that computed
// the same unique id. Existing is the block already in the registry,
// New the one whose insertion failed.
type DuplicateBlockError struct {
	Existing *Block
	New      *Block
}

func (e *DuplicateBlockError) Error() string {
	return fmt.Sprintf(
		"found two documentation blocks named %q; block names must be unique:\n- %s (%s)\n- %s (%s)",
		e.New.Name,
		e.Existing.UniqueID, e.Existing.OriginalPath,
		e.New.UniqueID, e.New.OriginalPath,
	)
}
