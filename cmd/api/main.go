package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"shopfront/internal/backend"
	"shopfront/internal/config"
	"shopfront/internal/httpserver"
	cartsvc "shopfront/internal/service/cart"
	offersvc "shopfront/internal/service/offer"
	productsvc "shopfront/internal/service/product"
	"shopfront/internal/store"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := buildLogger(cfg.Debug)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	client, err := backend.New(cfg.BackendURL, cfg.RequestTimeout, logger)
	if err != nil {
		logger.Fatal("init backend client", zap.Error(err))
	}

	st := store.New()
	carts := cartsvc.NewManager()

	productService := productsvc.New(client, st, logger)
	offerService := offersvc.New(client, st, logger)
	cartService := cartsvc.New(carts, client, st, logger)

	srv, err := httpserver.New(cfg, logger, httpserver.Deps{
		Products: productService,
		Offers:   offerService,
		Cart:     cartService,
		Store:    st,
	})
	if err != nil {
		logger.Fatal("init server", zap.Error(err))
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting http server", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Info("received signal, shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		logger.Error("server error", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	} else {
		logger.Info("server stopped")
	}
}

func buildLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
