package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/umair-qsols/hazwoper-knowledge-base/pkg/docstore"
	"github.com/umair-qsols/hazwoper-knowledge-base/pkg/session"
)

func TestResolveSingleModeRequiresActiveFile(t *testing.T) {
	_, err := ResolveContext(context.Background(), session.ModeSingle, nil, &fakeLister{})
	if !errors.Is(err, ErrNoActiveFile) {
		t.Fatalf("expected ErrNoActiveFile, got %v", err)
	}
}

func TestResolveSingleModeReturnsExactlyActive(t *testing.T) {
	active := docstore.FileHandle{ID: "files/h", DisplayName: "h.pdf"}
	lister := &fakeLister{files: []docstore.FileHandle{{ID: "files/other"}}}

	got, err := ResolveContext(context.Background(), session.ModeSingle, &active, lister)
	if err != nil {
		t.Fatalf("ResolveContext returned error: %v", err)
	}
	if len(got) != 1 || got[0] != active {
		t.Fatalf("expected [active], got %+v", got)
	}
	if lister.calls != 0 {
		t.Fatal("single mode must not list the store")
	}
}

func TestResolveAllModeReturnsListing(t *testing.T) {
	listing := []docstore.FileHandle{{ID: "files/a"}, {ID: "files/b"}}
	active := docstore.FileHandle{ID: "files/stale"}

	got, err := ResolveContext(context.Background(), session.ModeAll, &active, &fakeLister{files: listing})
	if err != nil {
		t.Fatalf("ResolveContext returned error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "files/a" || got[1].ID != "files/b" {
		t.Fatalf("expected the store listing unaffected by the active file, got %+v", got)
	}
}

func TestResolveAllModeEmptyListingFails(t *testing.T) {
	_, err := ResolveContext(context.Background(), session.ModeAll, nil, &fakeLister{})
	if !errors.Is(err, ErrNoDocuments) {
		t.Fatalf("expected ErrNoDocuments, got %v", err)
	}
}

func TestResolveAllModePropagatesListingError(t *testing.T) {
	boom := errors.New("store unreachable")
	_, err := ResolveContext(context.Background(), session.ModeAll, nil, &fakeLister{err: boom})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped listing error, got %v", err)
	}
}
