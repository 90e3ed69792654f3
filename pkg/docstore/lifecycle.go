package docstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

var (
	// ErrProcessingFailed means the store accepted the file but could not
	// process it. The handle must never become the session's active file.
	ErrProcessingFailed = errors.New("docstore: file processing failed")

	// ErrPollTimeout means the file was still pending when the poll budget
	// ran out.
	ErrPollTimeout = errors.New("docstore: timed out waiting for file to become ready")

	ErrTypeNotAllowed = errors.New("docstore: file type not allowed")
	ErrTooLarge       = errors.New("docstore: file exceeds the upload size cap")

	errStillPending = errors.New("docstore: file still processing")
)

// Manager drives a single uploaded document from submitted to ready and
// exposes the store listing. One Manager serves one interactive session;
// calls are strictly sequential.
type Manager struct {
	Store Store

	// PollInterval is the initial delay between status polls; subsequent
	// polls back off exponentially up to MaxPollWait total.
	PollInterval time.Duration
	MaxPollWait  time.Duration

	MaxBytes    int64
	AllowedExts map[string]struct{}
	TempDir     string // defaults to the OS temp dir

	Log *zap.Logger
}

func NewManager(store Store, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		Store:        store,
		PollInterval: 2 * time.Second,
		MaxPollWait:  5 * time.Minute,
		MaxBytes:     10 << 20,
		AllowedExts: map[string]struct{}{
			".pdf": {}, ".txt": {}, ".md": {}, ".csv": {},
			".json": {}, ".py": {}, ".js": {}, ".html": {},
		},
		Log: log,
	}
}

// Upload writes data to a transient local file, submits it to the store and
// polls until the handle reaches a terminal state. The transient copy is
// removed whether or not the upload succeeds.
func (m *Manager) Upload(ctx context.Context, data []byte, displayName string) (FileHandle, error) {
	ext := strings.ToLower(filepath.Ext(displayName))
	if m.AllowedExts != nil {
		if _, ok := m.AllowedExts[ext]; !ok {
			return FileHandle{}, fmt.Errorf("%w: %q", ErrTypeNotAllowed, ext)
		}
	}
	if m.MaxBytes > 0 && int64(len(data)) > m.MaxBytes {
		return FileHandle{}, fmt.Errorf("%w: %d bytes", ErrTooLarge, len(data))
	}

	tmp, err := os.CreateTemp(m.TempDir, "kbchat-upload-*"+ext)
	if err != nil {
		return FileHandle{}, fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return FileHandle{}, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return FileHandle{}, fmt.Errorf("close temp file: %w", err)
	}

	handle, err := m.Store.Upload(ctx, tmp.Name(), displayName)
	if err != nil {
		return FileHandle{}, fmt.Errorf("upload %s: %w", displayName, err)
	}
	m.Log.Info("file submitted",
		zap.String("id", handle.ID),
		zap.String("display_name", handle.DisplayName),
		zap.String("state", handle.State.String()))

	ready, err := m.waitReady(ctx, handle)
	if err != nil {
		return FileHandle{}, err
	}
	m.Log.Info("file ready", zap.String("id", ready.ID))
	return ready, nil
}

// ListAll is a passthrough to the store's listing call.
func (m *Manager) ListAll(ctx context.Context) ([]FileHandle, error) {
	files, err := m.Store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	return files, nil
}

// waitReady polls the handle until it is ready or failed. The poll is
// bounded: exponential backoff starting at PollInterval, giving up with
// ErrPollTimeout once MaxPollWait has elapsed.
func (m *Manager) waitReady(ctx context.Context, h FileHandle) (FileHandle, error) {
	switch h.State {
	case StateReady:
		return h, nil
	case StateFailed:
		return FileHandle{}, fmt.Errorf("%w: %s", ErrProcessingFailed, h.DisplayName)
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = m.PollInterval
	policy.MaxElapsedTime = m.MaxPollWait

	poll := func() error {
		cur, err := m.Store.Get(ctx, h.ID)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("poll %s: %w", h.ID, err))
		}
		h = cur
		switch cur.State {
		case StateReady:
			return nil
		case StateFailed:
			return backoff.Permanent(fmt.Errorf("%w: %s", ErrProcessingFailed, cur.DisplayName))
		default:
			return errStillPending
		}
	}

	if err := backoff.Retry(poll, backoff.WithContext(policy, ctx)); err != nil {
		if errors.Is(err, errStillPending) {
			return FileHandle{}, fmt.Errorf("%w: %s after %s", ErrPollTimeout, h.DisplayName, m.MaxPollWait)
		}
		return FileHandle{}, err
	}
	return h, nil
}
