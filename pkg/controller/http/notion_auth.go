package http

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tsumugi/pkg/domain/interfaces"
	"github.com/m-mizutani/tsumugi/pkg/domain/model/auth"
	"github.com/m-mizutani/tsumugi/pkg/utils/errors"
	"github.com/m-mizutani/tsumugi/pkg/utils/safe"
)

var callbackPage = template.Must(template.New("callback").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{ .Title }}</title>
<style>
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif; max-width: 32rem; margin: 4rem auto; padding: 0 1rem; color: #1d1c1d; }
h1 { font-size: 1.4rem; }
p { line-height: 1.5; }
</style>
</head>
<body>
<h1>{{ .Title }}</h1>
<p>{{ .Message }}</p>
<p>You can close this window and return to Slack.</p>
</body>
</html>
`))

type callbackView struct {
	Title   string
	Message string
}

func newCallbackView(result *auth.CallbackResult) callbackView {
	if result.Succeeded() {
		return callbackView{
			Title:   "Notion connected",
			Message: "Your Notion workspace " + result.WorkspaceName + " is connected.",
		}
	}

	view := callbackView{Title: "Notion connection failed"}
	switch result.Reason {
	case auth.ReasonUserAborted:
		view.Title = "Notion connection cancelled"
		view.Message = "The authorization was cancelled. Run /notion connect in Slack to try again."
	case auth.ReasonStaleCallback:
		view.Message = "This link has expired or was already used. Run /notion connect in Slack to start again."
	case auth.ReasonBadRequest:
		view.Message = "The request from Notion was incomplete."
	case auth.ReasonNotAllowed:
		view.Message = "The Notion workspace " + result.WorkspaceName + " is not allowed for this app."
	case auth.ReasonProviderError:
		view.Message = "Notion did not accept the authorization. Check the message in Slack for details."
	default:
		view.Message = "Something went wrong while saving the connection. Please try again later."
	}
	return view
}

// notionCallbackHandler completes the Notion OAuth flow and renders a result page
func notionCallbackHandler(uc interfaces.OAuthUseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		result := uc.HandleAuthorizationCallback(r.Context(), &auth.CallbackRequest{
			Code:  query.Get("code"),
			State: query.Get("state"),
			Error: query.Get("error"),
		})

		var buf bytes.Buffer
		if err := callbackPage.Execute(&buf, newCallbackView(result)); err != nil {
			errors.Handle(r.Context(), goerr.Wrap(err, "failed to render callback page"))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(result.StatusCode)
		safe.Write(r.Context(), w, buf.Bytes())
	}
}
