package stopwatch

import "context"

type contextKey struct{}

// NewContext returns a copy of ctx carrying sw. Wrappers use it to hand each
// request its own Stopwatch, which keeps timers from different requests apart
// without any locking.
func NewContext(ctx context.Context, sw *Stopwatch) context.Context {
	return context.WithValue(ctx, contextKey{}, sw)
}

// FromContext retrieves the Stopwatch put there by NewContext, or nil.
func FromContext(ctx context.Context) *Stopwatch {
	if ctx != nil {
		if sw, ok := ctx.Value(contextKey{}).(*Stopwatch); ok {
			return sw
		}
	}
	return nil
}
