package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tsumugi/pkg/domain/model/slack"
	slackSvc "github.com/m-mizutani/tsumugi/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

type Slack struct {
	OAuthToken    string `masq:"secret"`
	SigningSecret string `masq:"secret"`
}

func (x *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Category:    "slack",
			Usage:       "Slack bot OAuth token",
			Sources:     cli.EnvVars("TSUMUGI_SLACK_OAUTH_TOKEN"),
			Destination: &x.OAuthToken,
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "slack-signing-secret",
			Category:    "slack",
			Usage:       "Slack signing secret for request verification",
			Sources:     cli.EnvVars("TSUMUGI_SLACK_SIGNING_SECRET"),
			Destination: &x.SigningSecret,
			Required:    true,
		},
	}
}

func (x *Slack) Configure(ctx context.Context) (*slackSvc.Service, error) {
	if x.OAuthToken == "" {
		return nil, goerr.New("slack oauth token is required")
	}
	if x.SigningSecret == "" {
		return nil, goerr.New("slack signing secret is required")
	}

	return slackSvc.New(ctx, x.OAuthToken)
}

func (x *Slack) Verifier() slack.PayloadVerifier {
	return slack.NewVerifier(x.SigningSecret)
}

func (x Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("oauth_token", x.OAuthToken != ""),
		slog.Bool("signing_secret", x.SigningSecret != ""),
	)
}
