package main

import (
	"context"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/shopspring/decimal"
	"github.com/vetrovegor/storefront/internal/app"
	"github.com/vetrovegor/storefront/internal/config"
	"go.uber.org/zap"
)

const envLocal = "local"

//	@title			Storefront API
//	@version		1.0
//	@description	Multi-tenant storefront sessions: catalog, cart and checkout per establishment.
//	@BasePath		/
func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)
	defer log.Sync()

	// prices go to the front end as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application := app.NewApp(log, *cfg)

	go func() {
		log.Info("starting server", zap.String("addr", cfg.HTTPServer.Address), zap.String("env", cfg.Env))
		application.MustRun()
	}()

	<-ctx.Done()

	log.Info("stopping server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()

	if err := application.Shutdown(shutdownCtx); err != nil {
		log.Error("error when stopping server", zap.Error(err))
		return
	}

	log.Info("server stopped")
}

func setupLogger(env string) *zap.Logger {
	var (
		log *zap.Logger
		err error
	)

	if env == envLocal {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		panic("failed to build logger: " + err.Error())
	}

	return log
}
