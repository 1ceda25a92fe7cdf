package handlers

import (
	"context"
	"encoding/json"
	"net/http"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, email, password string) error
}

// RegisterRequest represents the JSON body for parent registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Email
	// required: true
	// default: parent@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

const registeredMessage = "Parent Added Successfully, For Activating your account please verify your email from email address"

// NewRegisterHandler returns an HTTP handler for parent registration.
// @Summary Register a new parent
// @Description Creates an inactive parent account and emails an activation link.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "Parent registration request"
// @Success 200 {object} handlers.MessageResponse "Parent registered"
// @Failure 400 {object} handlers.ErrorResponse "Email already registered / invalid request"
// @Failure 500 {object} handlers.ErrorResponse "Internal error"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeDetail(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := svc.Register(r.Context(), req.Email, req.Password); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: registeredMessage})
	}
}
