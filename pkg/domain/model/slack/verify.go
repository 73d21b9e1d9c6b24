package slack

import (
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tsumugi/pkg/domain/types/apperr"
	"github.com/slack-go/slack"
)

// PayloadVerifier checks the signature of a request from Slack
type PayloadVerifier interface {
	Verify(header http.Header, body []byte) error
}

// Verifier validates X-Slack-Signature with the app's signing secret
type Verifier struct {
	signingSecret string
}

// NewVerifier creates a new Slack signature verifier
func NewVerifier(signingSecret string) *Verifier {
	return &Verifier{
		signingSecret: signingSecret,
	}
}

// Verify checks the signature and rejects requests older than five minutes
func (v *Verifier) Verify(header http.Header, body []byte) error {
	sv, err := slack.NewSecretsVerifier(header, v.signingSecret)
	if err != nil {
		return goerr.Wrap(err, "invalid slack signature headers",
			goerr.T(apperr.ErrTagUnauthorized),
			goerr.V("timestamp", header.Get("X-Slack-Request-Timestamp")))
	}
	if _, err := sv.Write(body); err != nil {
		return goerr.Wrap(err, "failed to hash slack request body")
	}
	if err := sv.Ensure(); err != nil {
		return goerr.Wrap(err, "slack signature mismatch", goerr.T(apperr.ErrTagUnauthorized))
	}
	return nil
}
