package cli

import (
	"context"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tsumugi/pkg/cli/config"
	server "github.com/m-mizutani/tsumugi/pkg/controller/http"
	slack_controller "github.com/m-mizutani/tsumugi/pkg/controller/slack"
	"github.com/m-mizutani/tsumugi/pkg/repository/state"
	"github.com/m-mizutani/tsumugi/pkg/usecase"
	"github.com/m-mizutani/tsumugi/pkg/utils/async"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 30 * time.Second

func cmdServe() *cli.Command {
	var (
		appCfg     config.App
		slackCfg   config.Slack
		notionCfg  config.Notion
		storageCfg config.Storage
		metricsCfg config.Metrics
	)

	var flags []cli.Flag
	flags = append(flags, appCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)
	flags = append(flags, notionCfg.Flags()...)
	flags = append(flags, storageCfg.Flags()...)
	flags = append(flags, metricsCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Run server",
		Flags:   flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger := ctxlog.From(ctx)
			logger.Info("starting server",
				"app", appCfg,
				"slack", slackCfg,
				"notion", notionCfg,
				"storage", storageCfg,
				"metrics", metricsCfg.Enabled,
			)

			if err := appCfg.Validate(); err != nil {
				return err
			}
			if err := notionCfg.Validate(); err != nil {
				return err
			}

			recorder, metricsHandler := metricsCfg.Configure()

			adapter, cleanup, err := storageCfg.CreateAdapter(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			slackSvc, err := slackCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure slack service")
			}

			catalog, err := notionCfg.Catalog()
			if err != nil {
				return err
			}

			oauthSvc := notionCfg.BuildOAuthService(appCfg.URL(server.NotionCallbackPath), recorder)
			notionClient := notionCfg.BuildClient(recorder)

			tokens := state.NewTokenStore(adapter)
			states := state.NewInteractionStore(adapter)

			flow := usecase.NewAuthorizationFlow(oauthSvc, slackSvc, slackSvc, tokens, states,
				usecase.WithAuthorizationTTL(notionCfg.AuthorizationTTL),
				usecase.WithAuthorizationRecorder(recorder),
			)
			uc := usecase.New(flow, func(prompter usecase.ConnectPrompter) *usecase.ModalSession {
				return usecase.NewModalSession(slackSvc, notionClient, tokens, states, prompter,
					usecase.WithCatalog(catalog),
					usecase.WithModalRecorder(recorder),
				)
			})

			serverOptions := []server.Options{
				server.WithSlackController(slack_controller.New(uc)),
				server.WithSlackVerifier(slackCfg.Verifier()),
				server.WithOAuthUseCases(uc),
			}
			if metricsHandler != nil {
				serverOptions = append(serverOptions, server.WithMetricsHandler(metricsHandler))
			}

			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			httpServer := &http.Server{
				Addr:              appCfg.Addr,
				Handler:           server.New(serverOptions...),
				ReadTimeout:       30 * time.Second,
				ReadHeaderTimeout: 10 * time.Second,
				BaseContext: func(l net.Listener) context.Context {
					return ctx
				},
			}

			eg, ctx := errgroup.WithContext(ctx)
			eg.Go(func() error {
				logger.Info("server started", "addr", appCfg.Addr, "bot_user_id", slackSvc.BotUserID())
				if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					return goerr.Wrap(err, "failed to listen", goerr.V("addr", appCfg.Addr))
				}
				return nil
			})
			eg.Go(func() error {
				<-ctx.Done()
				logger.Info("shutting down server...")

				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				if err := httpServer.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
				// slash commands acknowledged before shutdown still post their results
				return async.Wait(shutdownCtx)
			})

			return eg.Wait()
		},
	}
}
