package ytdlp

import (
	"context"
	"fmt"
	"os/exec"
	"sync"
)

// Handle is a shared reference to the yt-dlp binary. Callers hold the
// handle rather than a resolved path, so an in-place upgrade followed by
// Reload is visible to everyone without rebinding anything.
type Handle struct {
	mu   sync.RWMutex
	name string
	path string
}

// NewHandle wraps a binary name or path; empty means "yt-dlp" on PATH.
func NewHandle(name string) *Handle {
	if name == "" {
		name = "yt-dlp"
	}
	return &Handle{name: name, path: name}
}

// Bin returns the current binary path to invoke.
func (h *Handle) Bin() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.path
}

// Reload re-resolves the configured binary name on PATH.
func (h *Handle) Reload() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	p, err := exec.LookPath(h.name)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", h.name, err)
	}
	h.path = p
	return nil
}

// Upgrade runs the binary's self-update and then re-resolves it.
func (h *Handle) Upgrade(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, h.Bin(), "-U")
	b, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("upgrade yt-dlp: %w\n%s", err, string(b))
	}
	return h.Reload()
}
