package docstore

import (
	"context"
	"fmt"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
)

// State is the processing state of a remote document.
type State int

const (
	StateUnknown State = iota
	StatePending
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FileHandle is the opaque server-side reference to an uploaded document.
// It is created by the store on upload and only its State changes, and only
// through polling.
type FileHandle struct {
	ID          string
	DisplayName string
	URI         string
	MIMEType    string
	State       State
}

// Store is the remote document store surface: upload a local file, re-fetch
// a handle for polling, list everything currently stored.
type Store interface {
	Upload(ctx context.Context, path, displayName string) (FileHandle, error)
	Get(ctx context.Context, id string) (FileHandle, error)
	List(ctx context.Context) ([]FileHandle, error)
}

// GeminiStore backs Store with the Gemini file API.
type GeminiStore struct {
	Client *genai.Client
}

func NewGeminiStore(client *genai.Client) *GeminiStore {
	return &GeminiStore{Client: client}
}

func (s *GeminiStore) Upload(ctx context.Context, path, displayName string) (FileHandle, error) {
	f, err := s.Client.UploadFileFromPath(ctx, path, &genai.UploadFileOptions{DisplayName: displayName})
	if err != nil {
		return FileHandle{}, fmt.Errorf("gemini upload: %w", err)
	}
	return fromGeminiFile(f), nil
}

func (s *GeminiStore) Get(ctx context.Context, id string) (FileHandle, error) {
	f, err := s.Client.GetFile(ctx, id)
	if err != nil {
		return FileHandle{}, fmt.Errorf("gemini get file: %w", err)
	}
	return fromGeminiFile(f), nil
}

func (s *GeminiStore) List(ctx context.Context) ([]FileHandle, error) {
	var out []FileHandle
	it := s.Client.ListFiles(ctx)
	for {
		f, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("gemini list files: %w", err)
		}
		out = append(out, fromGeminiFile(f))
	}
	return out, nil
}

func fromGeminiFile(f *genai.File) FileHandle {
	h := FileHandle{
		ID:          f.Name,
		DisplayName: f.DisplayName,
		URI:         f.URI,
		MIMEType:    f.MIMEType,
	}
	switch f.State {
	case genai.FileStateProcessing:
		h.State = StatePending
	case genai.FileStateActive:
		h.State = StateReady
	case genai.FileStateFailed:
		h.State = StateFailed
	default:
		h.State = StateUnknown
	}
	if h.DisplayName == "" {
		h.DisplayName = f.Name
	}
	return h
}

var _ Store = (*GeminiStore)(nil)
