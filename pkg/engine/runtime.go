package engine

import "context"

// Runtime executes layout and rendering over serialized graph source. Both
// methods take canonical DOT text; the boundary is deliberately string
// typed so implementations stay interchangeable.
//
// Implementations must be safe for concurrent use.
type Runtime interface {
	// Layout runs the named engine over DOT source and returns the same
	// graph with position attributes attached.
	Layout(ctx context.Context, src []byte, engine string) ([]byte, error)

	// Render draws already positioned DOT source in the named output
	// format. Positions present in the source are honored, not recomputed.
	Render(ctx context.Context, src []byte, format string) ([]byte, error)

	// Close releases whatever the runtime holds. Close is idempotent;
	// callers must not use the runtime afterwards.
	Close() error
}
