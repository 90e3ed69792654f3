// Package chat orchestrates one conversation turn: resolve document
// context, assemble the prompt, call the model, record the reply.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/umair-qsols/hazwoper-knowledge-base/pkg/models"
	"github.com/umair-qsols/hazwoper-knowledge-base/pkg/session"
)

// Engine runs chat turns against a model and a document store listing.
type Engine struct {
	Model models.Agent
	Files Lister
	Log   *zap.Logger
}

func NewEngine(model models.Agent, files Lister, log *zap.Logger) (*Engine, error) {
	if model == nil {
		return nil, errors.New("chat: engine requires a model")
	}
	if files == nil {
		return nil, errors.New("chat: engine requires a document lister")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{Model: model, Files: files, Log: log}, nil
}

// Ask runs one turn. Context is resolved before anything is recorded, so a
// blocked turn (no active file, empty store) leaves the conversation
// untouched. A generation failure leaves the user's question in the log but
// records no assistant turn; the error is for inline display only.
func (e *Engine) Ask(ctx context.Context, sess *session.Session, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", errors.New("chat: empty message")
	}

	files, err := ResolveContext(ctx, sess.Mode, sess.ActiveFile, e.Files)
	if err != nil {
		return "", err
	}

	prompt := BuildPrompt(sess.History(), text)
	sess.Append(session.RoleUser, text)

	e.Log.Info("submitting turn",
		zap.String("session", sess.ID),
		zap.String("mode", sess.Mode.String()),
		zap.Int("documents", len(files)),
		zap.Int("history_turns", sess.Len()-1))

	reply, err := e.Model.GenerateWithFiles(ctx, prompt, files)
	if err != nil {
		e.Log.Warn("generation failed", zap.String("session", sess.ID), zap.Error(err))
		return "", fmt.Errorf("generate: %w", err)
	}

	sess.Append(session.RoleAssistant, reply)
	return reply, nil
}
