package tenanthandler

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/vetrovegor/storefront/internal/apperror"
	"github.com/vetrovegor/storefront/internal/handlers"
	"github.com/vetrovegor/storefront/internal/lib/api/response"
	"github.com/vetrovegor/storefront/internal/schedule"
	"github.com/vetrovegor/storefront/internal/session"
	"github.com/vetrovegor/storefront/internal/tenant"
	"go.uber.org/zap"
)

const slugParam = "tenant"

//go:generate mockgen -destination=mocks/mock.go -package=mocktenantloader . Loader
type Loader interface {
	Load(ctx context.Context, slug string, gate *schedule.Gate) tenant.Establishment
}

// EstablishmentResponse is shared by the about and closed views.
type EstablishmentResponse struct {
	View          string               `json:"view"`
	Establishment tenant.Establishment `json:"establishment"`
	Status        schedule.Status      `json:"status"`
	Schedule      []schedule.Entry     `json:"schedule"`
	Copyright     string               `json:"copyright"`
}

func Slug(r *http.Request) string {
	raw := chi.URLParam(r, slugParam)
	if unescaped, err := url.PathUnescape(raw); err == nil {
		raw = unescaped
	}
	return strings.TrimSpace(raw)
}

// RequireSlug sends requests without a tenant back to the root route.
func RequireSlug(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if Slug(r) == "" {
			response.SeeOther(w, r, "/")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// NewContextMiddleware loads the session's establishment on first use and
// exposes it to every handler below through the request context.
func NewContextMiddleware(loader Loader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return apperror.Middleware(func(w http.ResponseWriter, r *http.Request) error {
			sess, err := session.Require(r.Context())
			if err != nil {
				return err
			}

			est := sess.Load(func(ctx context.Context) tenant.Establishment {
				return loader.Load(ctx, sess.Tenant, sess.Gate)
			})

			next.ServeHTTP(w, r.WithContext(tenant.WithEstablishment(r.Context(), est)))

			return nil
		})
	}
}

// Gate renders the closed view instead of the route while the tenant is
// closed. Pending and open gates let the request through.
func Gate(next http.Handler) http.Handler {
	return apperror.Middleware(func(w http.ResponseWriter, r *http.Request) error {
		sess, err := session.Require(r.Context())
		if err != nil {
			return err
		}

		if sess.Gate.Allows() {
			next.ServeHTTP(w, r)
			return nil
		}

		render.JSON(w, r, establishmentResponse(r, sess, response.ViewClosed))

		return nil
	})
}

type handler struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) handlers.Handler {
	return &handler{
		logger: logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Get("/about", apperror.Middleware(h.aboutHandler))
}

// @Tags		tenant
// @Produce	json
// @Param		tenant	path		string	true	"tenant slug"
// @Success	200		{object}	EstablishmentResponse
// @Failure	500		{object}	apperror.AppError
// @Router		/{tenant}/about [get]
func (h *handler) aboutHandler(w http.ResponseWriter, r *http.Request) error {
	sess, err := session.Require(r.Context())
	if err != nil {
		return err
	}

	render.JSON(w, r, establishmentResponse(r, sess, response.ViewAbout))

	return nil
}

func establishmentResponse(r *http.Request, sess *session.Session, view string) EstablishmentResponse {
	est, ok := tenant.FromContext(r.Context())
	if !ok {
		est, _ = sess.Establishment()
	}

	entries := sess.Gate.Schedule()
	if entries == nil {
		entries = []schedule.Entry{}
	}

	return EstablishmentResponse{
		View:          view,
		Establishment: est,
		Status:        sess.Gate.Status(),
		Schedule:      entries,
		Copyright:     est.Copyright(time.Now().Year()),
	}
}
