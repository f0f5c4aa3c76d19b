package llm

import "context"

// Provider produces a single non-streaming markdown completion from one
// system instruction and one user turn. One attempt per call.
type Provider interface {
	Complete(ctx context.Context, system, user string) (string, error)
	Close() error
}
