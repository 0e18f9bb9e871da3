package settings

import "context"

// runParamsKey is the context key under which a *Run travels.
type runParamsKey struct{}

// IntoContext attaches the run parameters to ctx so code below the CLI
// entry point can recover them without an extra argument.
func IntoContext(ctx context.Context, r *Run) context.Context {
	return context.WithValue(ctx, runParamsKey{}, r)
}

// FromContext retrieves the run parameters, reporting whether any were
// attached.
func FromContext(ctx context.Context) (*Run, bool) {
	r, ok := ctx.Value(runParamsKey{}).(*Run)
	return r, ok
}
