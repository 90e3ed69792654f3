package models

import (
	"context"

	"github.com/umair-qsols/hazwoper-knowledge-base/pkg/docstore"
)

// Agent is the text-completion surface the chat engine talks to.
// GenerateWithFiles attaches remote document-store handles as content parts
// ahead of the prompt text.
type Agent interface {
	Generate(ctx context.Context, prompt string) (string, error)
	GenerateWithFiles(ctx context.Context, prompt string, files []docstore.FileHandle) (string, error)
}
