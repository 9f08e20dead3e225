package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/atodeyomu/pkg/cli/config"
	controller "github.com/secmon-lab/atodeyomu/pkg/controller/http"
	slackCtrl "github.com/secmon-lab/atodeyomu/pkg/controller/slack"
	"github.com/secmon-lab/atodeyomu/pkg/service/emoji"
	"github.com/secmon-lab/atodeyomu/pkg/usecase"
	"github.com/secmon-lab/atodeyomu/pkg/utils/metrics"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg    config.Server
		slackCfg     config.Slack
		firestoreCfg config.Firestore
		cryptoCfg    config.Crypto
	)

	flags := joinFlags(
		serverCfg.Flags(),
		slackCfg.Flags(),
		firestoreCfg.Flags(),
		cryptoCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting atodeyomu server",
				slog.Any("server", serverCfg),
				slog.Any("slack", slackCfg),
				slog.Any("firestore", firestoreCfg),
				slog.Any("crypto", cryptoCfg),
			)

			if err := slackCfg.Validate(); err != nil {
				return err
			}

			repo, err := openRepository(ctx, &firestoreCfg, &cryptoCfg)
			if err != nil {
				return err
			}
			defer repo.Close()

			clients := slackCfg.ClientFactory()
			m := metrics.New()

			emojiSet := usecase.NewEmojiSet(repo, clients, emoji.New())
			slackHandler := slackCtrl.NewHandler(
				slackCfg.Verifier(),
				usecase.NewAction(repo, clients, emojiSet),
				usecase.NewEvent(repo, clients),
				m,
			)
			installHandler := controller.NewInstallHandler(usecase.NewInstall(repo, slackCfg.OAuth()))

			server := controller.NewServer(ctx, serverCfg.Addr, slackHandler, installHandler, m)

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			if err := runServer(ctx, server.Server, sigChan); err != nil {
				return err
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}

// runServer serves until the context is cancelled, a signal arrives or the listener fails,
// then shuts the server down gracefully
func runServer(ctx context.Context, server *http.Server, sigChan <-chan os.Signal) error {
	logger := ctxlog.From(ctx)
	errChan := make(chan error, 1)

	go func() {
		logger.Info("HTTP server starting", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return goerr.Wrap(err, "HTTP server failed", goerr.V("addr", server.Addr))
	case <-ctx.Done():
		logger.Info("Context cancelled, shutting down...")
	case sig := <-sigChan:
		logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return goerr.Wrap(err, "failed to shutdown server gracefully")
	}
	return nil
}
