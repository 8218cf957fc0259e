package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/aboldguess/Nichifier/internal/api"
	"github.com/aboldguess/Nichifier/internal/api/handler/v1handler"
	"github.com/aboldguess/Nichifier/internal/auth"
	"github.com/aboldguess/Nichifier/internal/billing"
	"github.com/aboldguess/Nichifier/internal/config"
	"github.com/aboldguess/Nichifier/internal/newsletter"
	"github.com/aboldguess/Nichifier/internal/niche"
	"github.com/aboldguess/Nichifier/internal/subscription"
	"github.com/aboldguess/Nichifier/internal/worker"
	"github.com/aboldguess/Nichifier/pkg/logger"
	"github.com/aboldguess/Nichifier/pkg/newsfeed/jsonfeed"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const feedUserAgent = "nichifier/1.0"

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// setupGenerator creates the Gemini-backed issue generator, or returns nil
// when no API key is configured and issue bodies fall back to the
// deterministic composer.
func setupGenerator(ctx context.Context, cfg *config.Config) newsletter.Generator {
	if cfg.Newsletter.GeminiAPIKey == "" {
		logger.Warn(ctx, "no gemini API key configured, composing issues without AI drafts")

		return nil
	}

	generator, err := newsletter.NewGeminiGenerator(ctx,
		cfg.Newsletter.GeminiAPIKey,
		cfg.Newsletter.GeminiModel)
	if err != nil {
		logger.Fatal(ctx, "could not create gemini generator", zap.Error(err))
	}

	return generator
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			authSvc, err := auth.New(strg, auth.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create auth service", zap.Error(err))
			}

			billingOptions, err := billing.NewOptions(cfg)
			if err != nil {
				logger.Fatal(ctx, "could not parse billing options", zap.Error(err))
			}
			billingSvc := billing.New(strg, billingOptions)

			feed := jsonfeed.New(&http.Client{Timeout: cfg.Newsletter.FetchTimeout}, feedUserAgent)
			newsletterSvc := newsletter.New(strg, feed, setupGenerator(ctx, cfg), newsletter.NewOptions(cfg))

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					Auth:          authSvc,
					Billing:       billingSvc,
					Niches:        niche.New(strg, billingSvc),
					Subscriptions: subscription.New(strg, billingSvc),
					Newsletters:   newsletterSvc,
				},
			})

			riverClient, err := worker.Start(ctx, strg.Pool, strg, newsletterSvc)
			if err != nil {
				logger.Fatal(ctx, "could not start worker", zap.Error(err))
			}

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(ctx, "stopping worker...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop worker", zap.Error(err))
			}
		},
	}

	return cmd
}
