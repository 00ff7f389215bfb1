package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/shop-inventory/internal/api/handlers"
	"github.com/donaldgifford/shop-inventory/internal/api/middleware"
	"github.com/donaldgifford/shop-inventory/internal/config"
	"github.com/donaldgifford/shop-inventory/internal/ebay"
	"github.com/donaldgifford/shop-inventory/internal/httpclient"
	"github.com/donaldgifford/shop-inventory/internal/publish"
	"github.com/donaldgifford/shop-inventory/internal/scheduler"
	"github.com/donaldgifford/shop-inventory/internal/telemetry"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and scheduler",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, secrets, err := bootstrap()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := telemetry.Setup(ctx, cfg.Telemetry, Version)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(flushCtx); err != nil {
			log.Warn("telemetry shutdown failed", "err", err)
		}
	}()

	st, err := openStore(ctx, cfg, secrets)
	if err != nil {
		return err
	}
	defer st.Close()

	clientSecret, err := secrets.DecryptString(cfg.Ebay.ClientSecretName)
	if err != nil {
		return fmt.Errorf("decrypting eBay client secret: %w", err)
	}

	hc := httpclient.New(
		httpclient.WithConnectTimeout(cfg.Ebay.ConnectTimeout),
		httpclient.WithTimeout(cfg.Ebay.RequestTimeout),
	)
	tokens := ebay.NewTokenManager(
		cfg.Ebay.ClientID, clientSecret, cfg.Ebay.RuName,
		ebay.WithTokenURL(cfg.Ebay.TokenURL()),
		ebay.WithAuthorizeURL(cfg.Ebay.AuthURL),
		ebay.WithHTTPClient(hc),
		ebay.WithTokenLogger(log),
	)
	limiter := ebay.NewRateLimiter(
		cfg.Ebay.RateLimit.PerSecond,
		cfg.Ebay.RateLimit.Burst,
		cfg.Ebay.RateLimit.DailyLimit,
	)
	adapter := ebay.NewAdapter(hc,
		ebay.WithBaseURL(cfg.Ebay.BaseURL),
		ebay.WithReauthURL(tokens.AuthorizationURL()),
		ebay.WithMarketplace(cfg.Ebay.MarketplaceID),
		ebay.WithContentLanguage(cfg.Ebay.ContentLanguage),
		ebay.WithImageHost(cfg.Images.BaseURL, cfg.Images.Subpath),
		ebay.WithRateLimiter(limiter),
		ebay.WithLogger(log),
	)

	publisher, err := publish.NewPublisher(ctx, st, adapter,
		ebay.Policies{
			FulfillmentPolicyID: cfg.Ebay.Policies.Fulfillment,
			PaymentPolicyID:     cfg.Ebay.Policies.Payment,
			ReturnPolicyID:      cfg.Ebay.Policies.Return,
		},
		publish.WithLogger(log),
		publish.WithRetry(cfg.Ebay.Retry.MaxAttempts, cfg.Ebay.Retry.Delay),
		publish.WithItemURLBase(cfg.Ebay.ItemURLBase),
	)
	if err != nil {
		return fmt.Errorf("creating publisher: %w", err)
	}

	analytics := ebay.NewAnalyticsClient(tokens,
		ebay.WithAnalyticsURL(cfg.Ebay.AnalyticsURL()),
		ebay.WithAnalyticsHTTPClient(hc),
	)

	if cfg.Scheduler.Enabled {
		sched, err := scheduler.New(
			tokens, analytics,
			cfg.Scheduler.TokenWarmInterval, cfg.Scheduler.QuotaInterval,
			log,
		)
		if err != nil {
			return fmt.Errorf("creating scheduler: %w", err)
		}
		sched.Start()
		defer func() {
			<-sched.Stop().Done()
			log.Info("scheduler stopped")
		}()
	}

	e := newEcho(cfg)
	e.Use(middleware.Recovery(log))
	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Metrics())
	e.Use(echomw.ContextTimeout(cfg.Server.RequestTimeout))

	handlers.RegisterHealthRoutes(e, handlers.NewHealthHandler(st))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("Shop Inventory API", Version))
	handlers.RegisterAuthRoutes(api, handlers.NewAuthHandler(tokens, handlers.CookieOptions{
		Path:   cfg.Cookies.Path,
		Domain: cfg.Cookies.Domain,
	}))
	handlers.RegisterEbayRoutes(api, handlers.NewEbayHandler(st, publisher, adapter, tokens.AuthorizationURL(), log))
	handlers.RegisterListingRoutes(api, handlers.NewListingsHandler(st))
	handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(analytics, limiter))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server",
		"addr", addr,
		"environment", cfg.Environment,
		"ebay_base_url", cfg.Ebay.BaseURL,
	)

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

func newEcho(cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	return e
}
