package wangtile

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownTile is returned when a query names a tile id the table was
	// not built with.
	ErrUnknownTile = errors.New("unknown tile")

	// ErrNoMatchingTile is returned by a strict resolve when no tile carries
	// the exact corner signature asked for.
	ErrNoMatchingTile = errors.New("no matching tile")

	ErrDuplicateTileID      = errors.New("duplicate tile id")
	ErrConflictingSignature = errors.New("conflicting corner signature")
	ErrInvalidShape         = errors.New("invalid collision shape")

	// ErrUnsupportedWangSet is returned for wang sets we can't model
	// (edge or mixed sets, or more than one set per tileset).
	ErrUnsupportedWangSet = errors.New("unsupported wang set")
)

// Problem is a single data integrity failure found while building a table.
type Problem struct {
	TileID TileID
	Err    error
}

func (p Problem) Error() string {
	return fmt.Sprintf("tile %d: %v", p.TileID, p.Err)
}

func (p Problem) Unwrap() error {
	return p.Err
}

// BuildError gathers every problem found while building a table so the
// caller sees all offending tiles at once.
type BuildError struct {
	Problems []Problem
}

func (e *BuildError) Error() string {
	msgs := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		msgs[i] = p.Error()
	}
	return fmt.Sprintf("build failed with %d problem(s): %s", len(e.Problems), strings.Join(msgs, "; "))
}

// Unwrap allows errors.Is / errors.As to match any of the problems.
func (e *BuildError) Unwrap() []error {
	errs := make([]error, len(e.Problems))
	for i, p := range e.Problems {
		errs[i] = p
	}
	return errs
}

// TileIDs returns the offending tile ids in the order they were found.
func (e *BuildError) TileIDs() []TileID {
	ids := make([]TileID, len(e.Problems))
	for i, p := range e.Problems {
		ids[i] = p.TileID
	}
	return ids
}

func (e *BuildError) add(id TileID, err error) {
	e.Problems = append(e.Problems, Problem{TileID: id, Err: err})
}

// err returns nil when nothing went wrong.
func (e *BuildError) err() error {
	if len(e.Problems) == 0 {
		return nil
	}
	return e
}

// mergeBuildErrors flattens several build errors (nil entries allowed)
// into one.
func mergeBuildErrors(errs ...error) error {
	merged := &BuildError{}
	for _, err := range errs {
		if err == nil {
			continue
		}
		var be *BuildError
		if errors.As(err, &be) {
			merged.Problems = append(merged.Problems, be.Problems...)
			continue
		}
		return err
	}
	return merged.err()
}
