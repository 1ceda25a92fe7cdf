package handlers

import (
	"context"
	"net/http"
)

// Activator defines the interface that the service must implement.
type Activator interface {
	Activate(ctx context.Context, token string) error
}

// NewActivateHandler returns an HTTP handler that activates a parent from
// the link sent by email.
// @Summary Activate a parent account
// @Description Verifies the activation token and marks the parent active.
// @Tags auth
// @Produce json
// @Param token query string true "Activation token"
// @Success 200 {object} handlers.MessageResponse "Account verified"
// @Failure 400 {object} handlers.ErrorResponse "Invalid or expired token / already active"
// @Failure 404 {object} handlers.ErrorResponse "Parent not found"
// @Router /activate [get]
func NewActivateHandler(svc Activator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Activate(r.Context(), r.URL.Query().Get("token")); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Account verified successfully"})
	}
}
