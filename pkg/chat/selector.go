package chat

import (
	"context"
	"errors"
	"fmt"

	"github.com/umair-qsols/hazwoper-knowledge-base/pkg/docstore"
	"github.com/umair-qsols/hazwoper-knowledge-base/pkg/session"
)

var (
	// ErrNoActiveFile blocks a single-mode turn before any document has been
	// uploaded or selected.
	ErrNoActiveFile = errors.New("chat: no active document selected")

	// ErrNoDocuments blocks an all-mode turn when the store listing is empty.
	ErrNoDocuments = errors.New("chat: no documents available in the store")
)

// Lister is the slice of the document store the selector depends on.
type Lister interface {
	ListAll(ctx context.Context) ([]docstore.FileHandle, error)
}

// ResolveContext returns the document handles to attach to the next model
// request. Single mode uses exactly the active file; all mode re-lists the
// store on every call so newly uploaded files show up without a refresh.
// An empty resolution is an error and the turn must not be submitted.
func ResolveContext(ctx context.Context, mode session.Mode, active *docstore.FileHandle, lister Lister) ([]docstore.FileHandle, error) {
	switch mode {
	case session.ModeSingle:
		if active == nil {
			return nil, ErrNoActiveFile
		}
		return []docstore.FileHandle{*active}, nil
	case session.ModeAll:
		files, err := lister.ListAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("resolve context: %w", err)
		}
		if len(files) == 0 {
			return nil, ErrNoDocuments
		}
		return files, nil
	default:
		return nil, fmt.Errorf("chat: unknown context mode %d", mode)
	}
}
