package stt

import "context"

// Provider converts audio bytes into plain transcript text. Implementations
// make exactly one attempt per call; retry policy belongs to the caller.
type Provider interface {
	Transcribe(ctx context.Context, audio []byte, language string) (string, error)
	Close() error
}
