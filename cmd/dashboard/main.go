package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"github.com/rookgm/orderdash/config"
	"github.com/rookgm/orderdash/internal/auth"
	"github.com/rookgm/orderdash/internal/client"
	"github.com/rookgm/orderdash/internal/dashboard"
	handler "github.com/rookgm/orderdash/internal/handler/http"
	"github.com/rookgm/orderdash/internal/logger"
	"github.com/rookgm/orderdash/internal/service"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const (
	sessionSweepInterval = time.Minute
	shutdownTimeout      = 10 * time.Second
)

// sessionKey decodes hex key, empty key gives a random one
func sessionKey(hexKey string) ([]byte, error) {
	if hexKey != "" {
		return hex.DecodeString(hexKey)
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	return key, nil
}

func main() {

	// create new config
	cfg, err := config.New(os.Args[1:])
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// initialize logger
	lg, err := logger.Initialize(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer lg.Sync()

	// create context
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	key, err := sessionKey(cfg.SessionKey)
	if err != nil {
		lg.Fatal("Error extracting session key", zap.Error(err))
	}
	if cfg.SessionKey == "" {
		lg.Warn("Session key is not set, sessions will not survive a restart")
	}
	tokens := auth.NewSessionToken(key, cfg.SessionTTL)

	// dependency injection
	// backend clients
	orderClient := client.NewOrderClient(cfg.OrderServiceURL, cfg.RequestTimeout)
	paymentClient := client.NewPaymentClient(cfg.PaymentServiceURL, cfg.RequestTimeout)

	// dashboard
	registry := dashboard.NewRegistry(ctx, cfg.SessionTTL, cfg.MaxSessions, func() *dashboard.Shell {
		return dashboard.NewShell(orderClient, paymentClient, cfg.RefreshInterval)
	})
	renderer, err := handler.NewRenderer(cfg.CurrencySymbol, cfg.RefreshInterval)
	if err != nil {
		lg.Fatal("Error parsing templates", zap.Error(err))
	}
	dashboardHandler := handler.NewDashboardHandler(registry, renderer, lg)

	// lookups
	lookupService := service.NewLookupService(orderClient, paymentClient)
	lookupHandler := handler.NewLookupHandler(lookupService, lg)

	srv := &http.Server{
		Addr:    cfg.RunAddr,
		Handler: handler.NewRouter(lg, tokens, cfg.SessionTTL, dashboardHandler, lookupHandler),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		lg.Info("Running server",
			zap.String("addr", cfg.RunAddr),
			zap.String("orders", cfg.OrderServiceURL),
			zap.String("payments", cfg.PaymentServiceURL))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		registry.Run(gctx, sessionSweepInterval)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		lg.Error("Server stopped with error", zap.Error(err))
		return
	}
	lg.Info("Server stopped")
}
