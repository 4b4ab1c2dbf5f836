package session

import (
	"context"
	"errors"
	"net/http"

	"github.com/vetrovegor/storefront/internal/config"
	"go.uber.org/zap"
)

var ErrNoSession = errors.New("no session bound to request")

type sessionContextKey struct{}

//go:generate mockgen -source=middleware.go -destination=mocks/mock.go -package=mocksession
type TokenManager interface {
	GenerateToken(claims Claims) (string, error)
	ParseToken(tokenStr string) (*Claims, error)
}

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, s)
}

func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionContextKey{}).(*Session)
	return s, ok
}

// NewMiddleware binds the request to the session named by the cookie, opening
// a new session (and issuing a new cookie) when the cookie is missing,
// invalid, expired, or bound to a different tenant. slugOf extracts the
// tenant slug from the request.
func NewMiddleware(
	logger *zap.Logger,
	tokenManager TokenManager,
	sessions *Manager,
	cfg config.Session,
	slugOf func(r *http.Request) string,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			slug := slugOf(r)

			var sessionID string
			if cookie, err := r.Cookie(cfg.CookieName); err == nil && cookie.Value != "" {
				claims, err := tokenManager.ParseToken(cookie.Value)
				if err != nil {
					logger.Warn("error when parsing session cookie", zap.Error(err))
				} else {
					sessionID = claims.SessionID
				}
			}

			sess, created := sessions.Resolve(sessionID, slug)
			if created {
				token, err := tokenManager.GenerateToken(Claims{SessionID: sess.ID, Tenant: slug})
				if err != nil {
					logger.Error("unexpected error when generating session cookie", zap.Error(err))
					w.WriteHeader(http.StatusInternalServerError)
					return
				}

				http.SetCookie(w, &http.Cookie{
					Name:     cfg.CookieName,
					Value:    token,
					Path:     "/",
					MaxAge:   int(cfg.TTL.Seconds()),
					HttpOnly: true,
					Secure:   cfg.Secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}

// Require returns the request's session or ErrNoSession when the route was
// not mounted behind the session middleware.
func Require(ctx context.Context) (*Session, error) {
	s, ok := FromContext(ctx)
	if !ok {
		return nil, ErrNoSession
	}
	return s, nil
}
