package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"ytclip/internal/clip"
	"ytclip/internal/usecase"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"fetch failure", &usecase.FetchError{Err: errors.New("network")}, 1},
		{"wrapped fetch failure", fmt.Errorf("run: %w", &usecase.FetchError{Err: errors.New("x")}), 1},
		{"no match", usecase.ErrNoMatch, 2},
		{"acquisition failure", &clip.AcquisitionError{Err: errors.New("down")}, 3},
		{"trim failure", &clip.TrimError{Err: errors.New("exit status 1")}, 3},
		{"anything else", errors.New("config: url is empty"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}
