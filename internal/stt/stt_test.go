package stt

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailable(t *testing.T) {
	assert.Equal(t, []string{"stub"}, Available())
}

func TestNew_Stub(t *testing.T) {
	p, err := New("stub")
	require.NoError(t, err)
	assert.Equal(t, "stub", p.Name())
	assert.True(t, p.Placeholder())

	_, err = p.Transcribe(context.Background(), "audio.wav", "en")
	require.ErrorIs(t, err, ErrNotImplemented)
}

func TestNew_Unknown(t *testing.T) {
	_, err := New("whisper")
	var unknownErr *UnknownProviderError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "whisper", unknownErr.Name)
	assert.Contains(t, unknownErr.Available, "stub")
	assert.Contains(t, err.Error(), "stub")
}
