package logging

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestID(t *testing.T) {
	existing := uuid.NewString()

	tests := []struct {
		name       string
		header     string
		expectSame bool
	}{
		{name: "generated", header: ""},
		{name: "not a uuid", header: "abc"},
		{name: "propagated", header: existing, expectSame: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = RequestIDFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(RequestIDHeader, tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			_, err := uuid.Parse(seen)
			require.NoError(t, err)
			assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
			if tt.expectSame {
				assert.Equal(t, existing, seen)
			}
		})
	}
}

func TestMiddleware_LogsStatus(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	h := Middleware(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/acme/cart", nil))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, int64(http.StatusTeapot), fields["status"])
	assert.Equal(t, "/acme/cart", fields["path"])
}

func TestLogBackendCall_DropsQuery(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	u, _ := url.Parse("http://backend/clientes/buscar?nombre=ana")

	LogBackendCall(zap.New(core), http.MethodGet, u, 200, time.Millisecond)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "http://backend/clientes/buscar", logs.All()[0].ContextMap()["url"])
	assert.Equal(t, "nombre=ana", u.RawQuery)
}
