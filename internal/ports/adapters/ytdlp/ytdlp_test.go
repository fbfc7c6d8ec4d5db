package ytdlp

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ytclip/internal/types"
)

func testRequest() types.ClipRequest {
	return types.ClipRequest{
		URL:            "https://example.test/v/abc",
		Window:         types.ClipWindow{Start: 5, End: 15},
		OutputTemplate: "clip.%(ext)s",
		MergeFormat:    "mp4",
	}
}

func TestNewestPayload(t *testing.T) {
	dir := t.TempDir()
	older := filepath.Join(dir, "older.json3")
	newer := filepath.Join(dir, "newer.json3")
	require.NoError(t, os.WriteFile(older, []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(newer, []byte("{}"), 0o644))

	base := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(older, base, base))
	require.NoError(t, os.Chtimes(newer, base.Add(time.Minute), base.Add(time.Minute)))

	got, err := newestPayload(dir)
	require.NoError(t, err)
	assert.Equal(t, newer, got)
}

func TestNewestPayload_NoneStaged(t *testing.T) {
	_, err := newestPayload(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no subtitles")
}

func TestClipArgs(t *testing.T) {
	a := New(NewHandle(""), false)
	req := testRequest()

	args := a.clipArgs(req)
	assert.Contains(t, args, "--force-keyframes-at-cuts")
	assert.Contains(t, args, "--merge-output-format")
	assert.Contains(t, args, "mp4")
	assert.Contains(t, args, "-q")
	assert.NotContains(t, args, "-f", "empty format selector must not be forwarded")

	req.Format = "bestvideo+bestaudio/best"
	args = a.clipArgs(req)
	assert.Contains(t, args, "-f")
	assert.Contains(t, args, "bestvideo+bestaudio/best")

	verbose := New(NewHandle(""), true)
	args = verbose.clipArgs(req)
	assert.NotContains(t, args, "-q")
	assert.NotContains(t, args, "--no-warnings")
}

func TestHandle_Defaults(t *testing.T) {
	h := NewHandle("")
	assert.Equal(t, "yt-dlp", h.Bin())
}

func TestHandle_ReloadMissingBinary(t *testing.T) {
	h := NewHandle("definitely-not-a-real-binary-name")
	err := h.Reload()
	require.Error(t, err)
	// A failed reload keeps the previous binary usable.
	assert.Equal(t, "definitely-not-a-real-binary-name", h.Bin())
}
