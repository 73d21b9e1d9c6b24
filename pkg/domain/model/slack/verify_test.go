package slack_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/tsumugi/pkg/domain/model/slack"
)

func signedHeader(secret string, body []byte, ts time.Time) http.Header {
	timestamp := strconv.FormatInt(ts.Unix(), 10)
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte("v0:" + timestamp + ":" + string(body)))

	header := http.Header{}
	header.Set("X-Slack-Request-Timestamp", timestamp)
	header.Set("X-Slack-Signature", "v0="+hex.EncodeToString(h.Sum(nil)))
	return header
}

func TestVerifier(t *testing.T) {
	secret := "test-signing-secret"
	body := []byte("command=%2Fnotion&text=connect")
	verifier := slack.NewVerifier(secret)

	t.Run("accepts valid signature", func(t *testing.T) {
		gt.NoError(t, verifier.Verify(signedHeader(secret, body, time.Now()), body))
	})

	t.Run("rejects tampered body", func(t *testing.T) {
		header := signedHeader(secret, body, time.Now())
		gt.Error(t, verifier.Verify(header, []byte("command=%2Fnotion&text=disconnect")))
	})

	t.Run("rejects wrong secret", func(t *testing.T) {
		gt.Error(t, verifier.Verify(signedHeader("other", body, time.Now()), body))
	})

	t.Run("rejects old timestamp", func(t *testing.T) {
		gt.Error(t, verifier.Verify(signedHeader(secret, body, time.Now().Add(-10*time.Minute)), body))
	})

	t.Run("rejects missing headers", func(t *testing.T) {
		gt.Error(t, verifier.Verify(http.Header{}, body))
	})
}
