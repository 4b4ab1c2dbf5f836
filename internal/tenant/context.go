package tenant

import "context"

type establishmentContextKey struct{}

// WithEstablishment exposes the session's tenant to every downstream handler.
func WithEstablishment(ctx context.Context, e Establishment) context.Context {
	return context.WithValue(ctx, establishmentContextKey{}, e)
}

func FromContext(ctx context.Context) (Establishment, bool) {
	e, ok := ctx.Value(establishmentContextKey{}).(Establishment)
	return e, ok
}
