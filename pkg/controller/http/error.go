package http

import (
	"net/http"

	"github.com/m-mizutani/tsumugi/pkg/domain/types/apperr"
	"github.com/m-mizutani/tsumugi/pkg/utils/errors"
)

// handleError logs err and responds with the status derived from its tags
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	errors.Handle(r.Context(), err)

	status := apperr.HTTPStatusFromError(err)
	http.Error(w, http.StatusText(status), status)
}
