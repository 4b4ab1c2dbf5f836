package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/vetrovegor/storefront/internal/backend"
	carthandler "github.com/vetrovegor/storefront/internal/cart/handler"
	cartservice "github.com/vetrovegor/storefront/internal/cart/service"
	cataloghandler "github.com/vetrovegor/storefront/internal/catalog/handler"
	catalogservice "github.com/vetrovegor/storefront/internal/catalog/service"
	checkouthandler "github.com/vetrovegor/storefront/internal/checkout/handler"
	checkoutservice "github.com/vetrovegor/storefront/internal/checkout/service"
	"github.com/vetrovegor/storefront/internal/config"
	customerhandler "github.com/vetrovegor/storefront/internal/customer/handler"
	customerservice "github.com/vetrovegor/storefront/internal/customer/service"
	"github.com/vetrovegor/storefront/internal/handlers"
	"github.com/vetrovegor/storefront/internal/lib/api/response"
	"github.com/vetrovegor/storefront/internal/logging"
	"github.com/vetrovegor/storefront/internal/session"
	"github.com/vetrovegor/storefront/internal/tenant"
	tenantcache "github.com/vetrovegor/storefront/internal/tenant/cache"
	tenanthandler "github.com/vetrovegor/storefront/internal/tenant/handler"
	tenantservice "github.com/vetrovegor/storefront/internal/tenant/service"
	redisclient "github.com/vetrovegor/storefront/pkg/client/redis"
	"github.com/vetrovegor/storefront/pkg/metrics"
	"go.uber.org/zap"

	"github.com/swaggo/http-swagger/v2"
	_ "github.com/vetrovegor/storefront/docs"
)

type App struct {
	HTTPServer *http.Server
	Sessions   *session.Manager

	log    *zap.Logger
	redis  *redis.Client
	cancel context.CancelFunc
	done   chan struct{}
}

func NewApp(log *zap.Logger, cfg config.Config) *App {
	ctx, cancel := context.WithCancel(context.Background())

	location, err := time.LoadLocation(cfg.Schedule.Timezone)
	if err != nil {
		log.Fatal("unknown schedule timezone", zap.String("timezone", cfg.Schedule.Timezone), zap.Error(err))
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	backendMetrics := metrics.NewBackendMetrics(registry)
	storefrontMetrics := metrics.NewStorefrontMetrics(registry)

	backendClient, err := backend.NewClient(cfg.Backend, backendMetrics, log)
	if err != nil {
		log.Fatal("invalid backend configuration", zap.Error(err))
	}

	a := &App{
		log:    log,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	// the branding cache is optional; without redis every session asks the backend
	var brandingCache tenantservice.Cache
	if cfg.Redis.Address != "" {
		client, err := redisclient.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Warn("branding cache disabled", zap.Error(err))
		} else {
			a.redis = client
			brandingCache = tenantcache.NewBrandingCache(client, cfg.Redis.BrandingTTL)
		}
	}

	defaults := tenant.ThemeColors{
		Primary:     cfg.Storefront.DefaultTheme.Primary,
		Secondary:   cfg.Storefront.DefaultTheme.Secondary,
		CustomLight: cfg.Storefront.DefaultTheme.CustomLight,
		CustomDark:  cfg.Storefront.DefaultTheme.CustomDark,
		CustomHover: cfg.Storefront.DefaultTheme.CustomHover,
	}

	a.Sessions = session.NewManager(ctx, cfg.Session.TTL, storefrontMetrics, log)

	router := chi.NewRouter()

	router.Use(
		logging.RequestID,
		logging.Middleware(log),
		cors.Handler(cors.Options{
			AllowedOrigins:   cfg.HTTPServer.AllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Content-Type", logging.RequestIDHeader},
			ExposedHeaders:   []string{"Location", logging.RequestIDHeader},
			AllowCredentials: cfg.HTTPServer.AllowCredentials,
		}),
		middleware.Recoverer,
	)

	router.Get("/", RootHandler)
	router.Get("/ping", PingHandler)
	router.Get("/healthz", a.HealthHandler)
	router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	router.Get("/swagger/*", httpSwagger.Handler())

	tenantService := tenantservice.NewService(
		backendClient,
		brandingCache,
		tenantservice.Options{
			Defaults:       defaults,
			LoadingTimeout: cfg.Schedule.LoadingTimeout,
			Location:       location,
		},
		log,
	)

	tokenManager := session.NewTokenManager(cfg.Session)

	router.Route("/{tenant}", func(r chi.Router) {
		r.Use(
			tenanthandler.RequireSlug,
			session.NewMiddleware(log, tokenManager, a.Sessions, cfg.Session, tenanthandler.Slug),
			tenanthandler.NewContextMiddleware(tenantService),
			tenanthandler.Gate,
		)

		tenantHandlers := []handlers.Handler{
			tenanthandler.New(log),
			cataloghandler.New(catalogservice.NewService(backendClient, log), log),
			carthandler.New(cartservice.NewService(log), log),
			customerhandler.New(customerservice.NewService(backendClient, log), log),
			checkouthandler.New(
				checkoutservice.NewService(backendClient, storefrontMetrics, log),
				cfg.Storefront.SupportMessage,
				log,
			),
		}

		log.Info("register tenant handlers", zap.Int("count", len(tenantHandlers)))

		for _, h := range tenantHandlers {
			h.Register(r)
		}
	})

	go func() {
		defer close(a.done)
		a.Sessions.Run(ctx, cfg.Session.SweepInterval)
	}()

	a.HTTPServer = &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	return a
}

func (a *App) MustRun() {
	if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic("failed to start server: " + err.Error())
	}
}

// Shutdown stops accepting requests, waits for in-flight ones and then closes
// every session, which cancels their pending backend calls.
func (a *App) Shutdown(ctx context.Context) error {
	err := a.HTTPServer.Shutdown(ctx)

	a.cancel()
	<-a.done
	a.Sessions.CloseAll()

	if a.redis != nil {
		if cerr := a.redis.Close(); cerr != nil {
			a.log.Warn("error when closing redis", zap.Error(cerr))
		}
	}

	return err
}

type HealthResponse struct {
	Status          string `json:"status"`
	Sessions        int    `json:"sessions"`
	PendingRequests int    `json:"pending_requests"`
}

// @Tags		other
// @Produce	json
// @Success	200	{object}	HealthResponse
// @Router		/healthz [get]
func (a *App) HealthHandler(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, HealthResponse{
		Status:          "ok",
		Sessions:        a.Sessions.Len(),
		PendingRequests: a.Sessions.PendingRequests(),
	})
}

type RootResponse struct {
	View    string `json:"view"`
	Message string `json:"message"`
}

// @Tags		other
// @Produce	json
// @Success	200	{object}	RootResponse
// @Router		/ [get]
func RootHandler(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, RootResponse{
		View:    response.ViewRoot,
		Message: "open a store through its link, e.g. /<establishment>",
	})
}

// @Tags		other
// @Success	200		{string}	string
// @Failure	400,500	{object}	apperror.AppError
// @Router		/ping [get]
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("pong"))
}
