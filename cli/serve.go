package cli

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"bank-documents/auth"
	"bank-documents/config"
	httpLayer "bank-documents/http"
	"bank-documents/repository"
	"bank-documents/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger := log.New(os.Stdout, "", log.LstdFlags)

	clientRepo := repository.NewMemoryClientRepository()
	orderRepo := repository.NewMemoryOrderRepository()
	if cfg.SeedDemoData {
		if err := repository.SeedDemoData(cmd.Context(), clientRepo, orderRepo, time.Now()); err != nil {
			return err
		}
	}

	var cache repository.CacheRepository = repository.NewMemoryCache()
	if cfg.RedisAddr != "" {
		redisCache := repository.NewRedisCache(cfg.RedisAddr)
		defer redisCache.Close()
		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Second)
		if err := redisCache.Ping(ctx); err != nil {
			logger.Printf("Warning: redis at %s unreachable, using in-memory cache: %v", cfg.RedisAddr, err)
		} else {
			cache = redisCache
		}
		cancel()
	}

	users, err := auth.NewDemoUserStore(bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	tokens := auth.NewTokenIssuer([]byte(cfg.JWTSecret), cfg.TokenTTL)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	defer rateLimiter.Stop()
	metrics := httpLayer.NewMetrics()

	credit := service.CreditDefaults{
		TermMonths:        cfg.CreditDefaults.TermMonths,
		AnnualRatePercent: cfg.CreditRate(),
	}

	router := httpLayer.NewRouter(httpLayer.Handlers{
		Auth:    httpLayer.NewAuthHandler(users, tokens),
		Clients: httpLayer.NewClientHandler(service.NewClientService(clientRepo)),
		Orders: httpLayer.NewOrderHandler(
			service.NewOrderService(clientRepo, orderRepo, service.DefaultClock, credit)),
		Documents: httpLayer.NewDocumentHandler(
			service.NewDocumentService(service.DefaultClock, clientRepo), metrics),
		Loans: httpLayer.NewLoanHandler(
			service.NewLoanService(cache, cfg.CacheTTL), service.NewTermOptionsService(), metrics),
		Tokens:      tokens,
		RateLimiter: rateLimiter,
		Metrics:     metrics,
	})

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorLog:     logger,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("API listening on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Printf("Error starting server: %v", err)
		return err
	case <-quit:
		logger.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Printf("Error during server shutdown: %v", err)
	}

	logger.Println("Server exited")
	return nil
}
