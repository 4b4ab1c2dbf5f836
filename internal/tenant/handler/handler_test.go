package tenanthandler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vetrovegor/storefront/internal/schedule"
	"github.com/vetrovegor/storefront/internal/session"
	"github.com/vetrovegor/storefront/internal/tenant"
	mocktenantloader "github.com/vetrovegor/storefront/internal/tenant/handler/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// Monday
var monday = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

func newRouter(sess *session.Session, loader Loader) chi.Router {
	router := chi.NewRouter()
	router.Route("/{tenant}", func(r chi.Router) {
		r.Use(
			RequireSlug,
			func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), sess)))
				})
			},
			NewContextMiddleware(loader),
			Gate,
		)
		New(zap.NewNop()).Register(r)
		r.Get("/", displayName)
		r.Get("/cart", displayName)
	})
	return router
}

func displayName(w http.ResponseWriter, r *http.Request) {
	est, _ := tenant.FromContext(r.Context())
	w.Write([]byte(est.DisplayName))
}

func TestGateAndContext(t *testing.T) {
	type mockBehavior func(loader *mocktenantloader.MockLoader)

	tests := []struct {
		name               string
		path               string
		mockBehavior       mockBehavior
		expectedStatusCode int
		expectedView       string
		expectedBody       string
	}{
		{
			name: "open tenant reaches the route",
			path: "/acme",
			mockBehavior: func(loader *mocktenantloader.MockLoader) {
				loader.EXPECT().Load(gomock.Any(), "acme", gomock.Any()).
					DoAndReturn(func(ctx context.Context, slug string, gate *schedule.Gate) tenant.Establishment {
						gate.Apply([]schedule.Entry{{Day: "monday", Open: "08:00", Close: "18:00"}}, monday)
						return tenant.Establishment{Slug: slug, DisplayName: "Acme"}
					})
			},
			expectedStatusCode: http.StatusOK,
			expectedBody:       "Acme",
		},
		{
			name: "pending gate reaches the route",
			path: "/acme",
			mockBehavior: func(loader *mocktenantloader.MockLoader) {
				loader.EXPECT().Load(gomock.Any(), "acme", gomock.Any()).
					Return(tenant.Establishment{Slug: "acme", DisplayName: "Acme"})
			},
			expectedStatusCode: http.StatusOK,
			expectedBody:       "Acme",
		},
		{
			name: "closed tenant renders the closed view",
			path: "/acme/cart",
			mockBehavior: func(loader *mocktenantloader.MockLoader) {
				loader.EXPECT().Load(gomock.Any(), "acme", gomock.Any()).
					DoAndReturn(func(ctx context.Context, slug string, gate *schedule.Gate) tenant.Establishment {
						gate.Apply([]schedule.Entry{{Day: "tuesday", Open: "08:00", Close: "18:00"}}, monday)
						return tenant.Establishment{Slug: slug, DisplayName: "Acme"}
					})
			},
			expectedStatusCode: http.StatusOK,
			expectedView:       "closed",
		},
		{
			name: "about view",
			path: "/acme/about",
			mockBehavior: func(loader *mocktenantloader.MockLoader) {
				loader.EXPECT().Load(gomock.Any(), "acme", gomock.Any()).
					Return(tenant.Establishment{Slug: "acme", DisplayName: "Acme"})
			},
			expectedStatusCode: http.StatusOK,
			expectedView:       "about",
		},
		{
			name:               "blank tenant goes back to root",
			path:               "/%20",
			mockBehavior:       func(loader *mocktenantloader.MockLoader) {},
			expectedStatusCode: http.StatusSeeOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			loader := mocktenantloader.NewMockLoader(ctrl)
			tt.mockBehavior(loader)

			sess := session.New(context.Background(), "s1", "acme", monday)
			router := newRouter(sess, loader)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatusCode, w.Code)

			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, w.Body.String())
			}

			if tt.expectedView != "" {
				var body EstablishmentResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tt.expectedView, body.View)
				assert.Equal(t, "Acme", body.Establishment.DisplayName)
			}
		})
	}
}

func TestContextMiddleware_LoadsOncePerSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader := mocktenantloader.NewMockLoader(ctrl)
	loader.EXPECT().Load(gomock.Any(), "acme", gomock.Any()).
		Return(tenant.Establishment{Slug: "acme", DisplayName: "Acme"}).
		Times(1)

	sess := session.New(context.Background(), "s1", "acme", monday)
	router := newRouter(sess, loader)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/acme", nil))
		assert.Equal(t, "Acme", w.Body.String())
	}
}
