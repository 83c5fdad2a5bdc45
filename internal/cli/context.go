package cli

import (
	"context"

	"github.com/thenoetrevino/tasknest/internal/app"
)

type contextKey struct{}

// WithApp returns a context carrying a, picked up by GetCLIFromContext
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, contextKey{}, a)
}

// AppFromContext returns the app stored by WithApp
func AppFromContext(ctx context.Context) (*app.App, bool) {
	a, ok := ctx.Value(contextKey{}).(*app.App)
	return a, ok && a != nil
}
