package wangtile

import (
	"fmt"
	"sort"
)

// Resolver picks the tile whose corner signature exactly matches a query.
// There is no partial matching: all four corners match or it's a miss.
// A Resolver is immutable once built and safe for concurrent reads.
type Resolver struct {
	index map[uint32]TileID
}

// NewResolver indexes every record that carries a signature. Two different
// tiles with the same signature fail the build with
// ErrConflictingSignature rather than one being picked silently.
func NewResolver(records []TileRecord) (*Resolver, error) {
	r := &Resolver{index: map[uint32]TileID{}}
	problems := &BuildError{}
	seen := map[TileID]bool{}

	for _, rec := range records {
		if rec.Signature == nil {
			continue
		}
		if seen[rec.ID] {
			problems.add(rec.ID, ErrDuplicateTileID)
			continue
		}
		seen[rec.ID] = true

		key := rec.Signature.Key()
		if other, ok := r.index[key]; ok {
			problems.add(rec.ID, fmt.Errorf("%w: %v already used by tile %d", ErrConflictingSignature, *rec.Signature, other))
			continue
		}
		r.index[key] = rec.ID
	}

	if err := problems.err(); err != nil {
		return nil, err
	}
	return r, nil
}

// Resolve returns the tile with exactly this signature, or
// ErrNoMatchingTile.
func (r *Resolver) Resolve(sig CornerSignature) (TileID, error) {
	id, ok := r.index[sig.Key()]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrNoMatchingTile, sig)
	}
	return id, nil
}

// ResolveOrDefault is Resolve, returning fallback on a miss.
func (r *Resolver) ResolveOrDefault(sig CornerSignature, fallback TileID) TileID {
	id, ok := r.index[sig.Key()]
	if !ok {
		return fallback
	}
	return id
}

// Complement flips every Empty corner to Filled and vice versa.
func (r *Resolver) Complement(sig CornerSignature) CornerSignature {
	return sig.Complement()
}

// Len returns the number of indexed signatures.
func (r *Resolver) Len() int {
	return len(r.index)
}

// Signatures returns every indexed signature, ordered by packed key.
func (r *Resolver) Signatures() []CornerSignature {
	keys := make([]uint32, 0, len(r.index))
	for k := range r.index {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	out := make([]CornerSignature, len(keys))
	for i, k := range keys {
		out[i] = SignatureFromKey(k)
	}
	return out
}
