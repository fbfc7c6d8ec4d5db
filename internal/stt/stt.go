// Package stt is the pluggable speech-to-text boundary. Providers are
// selected by name from a static table; there is no runtime registration.
package stt

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"ytclip/internal/ports"
	"ytclip/internal/types"
)

// ErrNotImplemented is returned by placeholder providers that document the
// plug-in point but cannot transcribe.
var ErrNotImplemented = errors.New("speech-to-text provider is not implemented")

// Provider transcribes audio at a path, in a language, to timed segments.
type Provider interface {
	ports.Transcriber

	// Name is the selector the provider is registered under.
	Name() string
	// Placeholder reports whether the provider is a stub that cannot
	// actually transcribe.
	Placeholder() bool
}

// UnknownProviderError names an unregistered selector and what is
// available instead.
type UnknownProviderError struct {
	Name      string
	Available []string
}

func (e *UnknownProviderError) Error() string {
	options := strings.Join(e.Available, ", ")
	if options == "" {
		options = "none"
	}
	return fmt.Sprintf("unknown speech-to-text provider %q; available providers: %s", e.Name, options)
}

var providers = map[string]func() Provider{
	"stub": func() Provider { return stubProvider{} },
}

// Available returns the registered provider names, sorted.
func Available() []string {
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New instantiates a provider by name.
func New(name string) (Provider, error) {
	ctor, ok := providers[name]
	if !ok {
		return nil, &UnknownProviderError{Name: name, Available: Available()}
	}
	return ctor(), nil
}

// stubProvider marks where a real engine (a whisper.cpp adapter, a hosted
// API) would plug in.
type stubProvider struct{}

func (stubProvider) Name() string      { return "stub" }
func (stubProvider) Placeholder() bool { return true }

func (stubProvider) Transcribe(_ context.Context, _, _ string) ([]types.Segment, error) {
	return nil, fmt.Errorf("%w: select a real provider via --stt-provider", ErrNotImplemented)
}
