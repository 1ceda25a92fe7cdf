package handlers

import (
	"context"
	"net/http"
)

// VerificationResender defines the interface that the service must implement.
type VerificationResender interface {
	ResendVerification(ctx context.Context, email string) error
}

// NewResendVerificationHandler returns an HTTP handler that re-sends the
// activation email.
// @Summary Resend the activation email
// @Tags auth
// @Produce json
// @Param email query string true "Registered email"
// @Success 200 {object} handlers.MessageResponse "Verification email sent"
// @Failure 400 {object} handlers.ErrorResponse "Account already verified"
// @Failure 404 {object} handlers.ErrorResponse "Parent not found"
// @Router /resend-verification [post]
func NewResendVerificationHandler(svc VerificationResender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.ResendVerification(r.Context(), r.URL.Query().Get("email")); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Verification email sent"})
	}
}
