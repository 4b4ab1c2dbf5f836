package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/vetrovegor/storefront/internal/backend"
	"github.com/vetrovegor/storefront/internal/config"
	"go.uber.org/zap"
)

const (
	OpenTenant   = "acme"
	ClosedTenant = "cerrado"
)

type orderRequest struct {
	Tenant         string
	IdempotencyKey string
	FullName       string `json:"nombre_completo"`
	Phone          string `json:"numero_telefono"`
	Email          string `json:"correo_electronico"`
	Products       string `json:"productos"`
	SalespersonID  string `json:"comercial_id"`
	NIT            string `json:"nit"`
	WarehouseID    string `json:"bodega_id"`
}

// fakeBackend serves the order-management endpoints the storefront consumes.
type fakeBackend struct {
	mu     sync.Mutex
	orders []orderRequest
}

func (b *fakeBackend) handler() http.Handler {
	week := []map[string]string{}
	for _, day := range []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"} {
		week = append(week, map[string]string{"dia": day, "apertura": "00:00", "cierre": "23:59"})
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /logo", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{
			"establecimiento": r.URL.Query().Get("establecimiento") + " store",
			"logo_url":        "https://cdn.test/logo.png",
			"banner1_url":     "https://cdn.test/b1.png",
			"whatsapp_url":    "https://wa.me/573001234567",
			"primary_color":   "#111111",
		})
	})
	mux.HandleFunc("GET /horarios_establecimiento", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("establecimiento") == ClosedTenant {
			writeJSON(w, []any{})
			return
		}
		writeJSON(w, week)
	})
	mux.HandleFunc("GET /bodegas_public", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []map[string]any{{"id": 1, "nombre": "Centro"}})
	})
	mux.HandleFunc("GET /productos/disponibles", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("bodega_id") != "1" {
			writeJSON(w, []any{})
			return
		}
		writeJSON(w, []map[string]any{
			{"id": "p1", "nombre": "Cafe", "precio": 30000, "descuento": 0, "categoria": "Bebidas", "stocks": map[string]any{"1": 8}},
			{"id": "p2", "nombre": "Pan", "precio": "10000", "descuento": 50, "categoria": "Panaderia", "stocks": map[string]any{"1": 3}},
		})
	})
	mux.HandleFunc("GET /clientes/buscar", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []map[string]any{
			{"nombre": "Ana Gomez", "nit": 900123, "telefono": 3001234567, "correo": "ana@example.com"},
		})
	})
	mux.HandleFunc("GET /clientes/detalles", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"lista_precios": map[string]any{"descuento": 10}})
	})
	mux.HandleFunc("GET /comerciales/sin_auth", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []map[string]any{{"idComercial": 7}, {"idComercial": "8"}})
	})
	mux.HandleFunc("POST /pedido", func(w http.ResponseWriter, r *http.Request) {
		var order orderRequest
		if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		order.Tenant = r.URL.Query().Get("establecimiento")
		order.IdempotencyKey = r.Header.Get(backend.IdempotencyKeyHeader)

		b.mu.Lock()
		b.orders = append(b.orders, order)
		b.mu.Unlock()

		w.WriteHeader(http.StatusCreated)
	})

	return mux
}

func (b *fakeBackend) Orders() []orderRequest {
	b.mu.Lock()
	defer b.mu.Unlock()

	return append([]orderRequest(nil), b.orders...)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

type AppTestSuite struct {
	suite.Suite
	backend       *fakeBackend
	backendServer *httptest.Server
	app           *App
	server        *httptest.Server
	client        *http.Client
}

func TestSuite(t *testing.T) {
	suite.Run(t, &AppTestSuite{})
}

func (s *AppTestSuite) SetupSuite() {
	s.backend = &fakeBackend{}
	s.backendServer = httptest.NewServer(s.backend.handler())

	cfg := config.Config{
		Env: "test",
		HTTPServer: config.HTTPServer{
			Address:          ":0",
			Timeout:          5 * time.Second,
			AllowedOrigins:   []string{"*"},
			AllowCredentials: true,
		},
		Backend: config.Backend{
			BaseURL: s.backendServer.URL,
			Timeout: 2 * time.Second,
		},
		Session: config.Session{
			CookieName:    "storefront_session",
			Secret:        "test-secret",
			TTL:           10 * time.Minute,
			SweepInterval: time.Minute,
		},
		Schedule: config.Schedule{
			Timezone:       "UTC",
			LoadingTimeout: 2 * time.Second,
		},
		Storefront: config.Storefront{
			DefaultTheme: config.Theme{
				Primary:     "#5E55FF",
				Secondary:   "#5E55FE",
				CustomLight: "#e2dac7",
				CustomDark:  "#333",
				CustomHover: "#9541f7",
			},
			SupportMessage: "Hola, quiero saber de mi orden",
		},
	}

	s.app = NewApp(zap.NewNop(), cfg)
	s.server = httptest.NewServer(s.app.HTTPServer.Handler)
}

func (s *AppTestSuite) TearDownSuite() {
	s.server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s.Require().NoError(s.app.Shutdown(ctx))
	s.backendServer.Close()
}

func (s *AppTestSuite) SetupTest() {
	jar, err := cookiejar.New(nil)
	s.Require().NoError(err)

	s.client = &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func (s *AppTestSuite) do(method, path string, body any) (*http.Response, map[string]any) {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, s.server.URL+path, reader)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	decoded := map[string]any{}
	_ = json.NewDecoder(resp.Body).Decode(&decoded)

	return resp, decoded
}

func (s *AppTestSuite) TestPing() {
	resp, err := s.client.Get(s.server.URL + "/ping")
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *AppTestSuite) TestRoot() {
	resp, body := s.do(http.MethodGet, "/", nil)

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("root", body["view"])
}

func (s *AppTestSuite) TestBlankTenantRedirectsToRoot() {
	resp, _ := s.do(http.MethodGet, "/%20/cart", nil)

	s.Equal(http.StatusSeeOther, resp.StatusCode)
	s.Equal("/", resp.Header.Get("Location"))
}

func (s *AppTestSuite) TestHealth() {
	s.do(http.MethodGet, "/"+OpenTenant+"/about", nil)

	resp, body := s.do(http.MethodGet, "/healthz", nil)

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("ok", body["status"])
	s.GreaterOrEqual(body["sessions"], float64(1))
	s.Contains(body, "pending_requests")
}

func (s *AppTestSuite) TestMetrics() {
	s.do(http.MethodGet, "/"+OpenTenant+"/about", nil)

	resp, err := s.client.Get(s.server.URL + "/metrics")
	s.Require().NoError(err)
	defer resp.Body.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	s.Require().NoError(err)

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Contains(buf.String(), "backend_requests_total")
	s.Contains(buf.String(), "storefront_active_sessions")
}

func (s *AppTestSuite) TestAbout() {
	resp, body := s.do(http.MethodGet, "/"+OpenTenant+"/about", nil)

	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Equal("about", body["view"])
	s.Equal("open", body["status"])

	est := body["establishment"].(map[string]any)
	s.Equal("Acme Store", est["displayName"])
	s.Equal("Comercial Acme Store", est["page"].(map[string]any)["title"])
	s.Equal("#111111", est["theme"].(map[string]any)["primary"])
	s.Equal("#5E55FE", est["theme"].(map[string]any)["secondary"])
	s.Len(body["schedule"], 7)

	s.NotEmpty(resp.Cookies())
}

func (s *AppTestSuite) TestClosedTenant() {
	for _, path := range []string{"", "/cart", "/checkout", "/about"} {
		resp, body := s.do(http.MethodGet, "/"+ClosedTenant+path, nil)

		s.Equal(http.StatusOK, resp.StatusCode, path)
		s.Equal("closed", body["view"], path)
	}
}

func (s *AppTestSuite) TestShoppingFlow() {
	resp, body := s.do(http.MethodGet, "/"+OpenTenant, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Equal("1", body["selectedWarehouse"])
	s.Len(body["products"], 2)
	s.Equal([]any{"Todos", "Bebidas", "Panaderia"}, body["categories"])

	resp, _ = s.do(http.MethodGet, "/"+OpenTenant+"/cart", nil)
	s.Require().Equal(http.StatusSeeOther, resp.StatusCode)
	s.Equal("/"+OpenTenant, resp.Header.Get("Location"))

	resp, _ = s.do(http.MethodPost, "/"+OpenTenant+"/cart/items", map[string]any{"productId": "p1", "quantity": "2"})
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	resp, body = s.do(http.MethodPost, "/"+OpenTenant+"/cart/items", map[string]any{"productId": "p2"})
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Equal("2 x Cafe, 1 x Pan", body["summary"])
	s.Equal(float64(3), body["totalItems"])

	resp, body = s.do(http.MethodGet, "/"+OpenTenant+"/checkout/customers?nombre=an", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Len(body["candidates"], 1)

	resp, body = s.do(http.MethodPost, "/"+OpenTenant+"/checkout/customer", map[string]any{"nit": "900123"})
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Equal("Ana Gomez", body["customer"].(map[string]any)["name"])

	resp, body = s.do(http.MethodGet, "/"+OpenTenant+"/checkout", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Equal(true, body["salespeopleAvailable"])
	s.Equal("editing", body["state"])

	resp, body = s.do(http.MethodPost, "/"+OpenTenant+"/checkout", map[string]any{
		"name":          "Ana Gomez",
		"email":         "ana@example.com",
		"phone":         "3001234567",
		"nit":           "900123",
		"salespersonId": "9",
	})
	s.Require().Equal(http.StatusUnprocessableEntity, resp.StatusCode)
	s.Equal("invalid_salesperson", body["code"])

	resp, body = s.do(http.MethodPost, "/"+OpenTenant+"/checkout", map[string]any{
		"name":          "Ana Gomez",
		"email":         "ana@example.com",
		"phone":         "3001234567",
		"nit":           "900123",
		"salespersonId": "7",
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	s.Equal("/"+OpenTenant+"/success", resp.Header.Get("Location"))
	s.Equal("Ana Gomez", body["confirmation"].(map[string]any)["customerName"])
	s.True(strings.HasPrefix(body["supportLink"].(string), "https://wa.me/573001234567?text=Hola%2C%20quiero"))

	orders := s.backend.Orders()
	s.Require().Len(orders, 1)
	order := orders[0]
	s.Equal(OpenTenant, order.Tenant)
	s.NotEmpty(order.IdempotencyKey)
	s.Equal("7", order.SalespersonID)
	s.Equal("1", order.WarehouseID)

	var lines []struct {
		ID       string          `json:"id"`
		Price    decimal.Decimal `json:"price"`
		Quantity int             `json:"quantity"`
	}
	s.Require().NoError(json.Unmarshal([]byte(order.Products), &lines))
	s.Require().Len(lines, 2)
	s.True(lines[0].Price.Equal(decimal.NewFromInt(27000)), lines[0].Price.String())
	s.Equal(2, lines[0].Quantity)
	s.True(lines[1].Price.Equal(decimal.NewFromInt(4500)), lines[1].Price.String())

	resp, _ = s.do(http.MethodGet, "/"+OpenTenant+"/cart", nil)
	s.Equal(http.StatusSeeOther, resp.StatusCode)

	resp, body = s.do(http.MethodGet, "/"+OpenTenant+"/success", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Equal("success", body["view"])
}

func (s *AppTestSuite) TestTenantSwitchStartsNewSession() {
	resp, _ := s.do(http.MethodPost, "/"+OpenTenant+"/cart/items", map[string]any{"productId": "p1"})
	s.Require().Equal(http.StatusNotFound, resp.StatusCode)

	s.do(http.MethodGet, "/"+OpenTenant, nil)
	resp, _ = s.do(http.MethodPost, "/"+OpenTenant+"/cart/items", map[string]any{"productId": "p1"})
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	s.do(http.MethodGet, "/otra", nil)

	resp, _ = s.do(http.MethodGet, "/"+OpenTenant+"/cart", nil)
	s.Equal(http.StatusSeeOther, resp.StatusCode)
}
