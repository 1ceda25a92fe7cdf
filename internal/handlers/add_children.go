package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-parent-profile/internal/models"
)

// ChildAdder defines the interface that the service must implement.
type ChildAdder interface {
	AddChild(ctx context.Context, callerID int64, child models.ChildCreate) (*models.Child, error)
}

// AddChildRequest represents the JSON body for adding a child
// swagger:model AddChildRequest
type AddChildRequest struct {
	// required: true
	// default: Sam
	Name string `json:"name"`

	// RFC 3339 datetime, YYYY-MM-DDTHH:MM:SS or YYYY-MM-DD
	// required: true
	// default: 2015-06-01
	DateOfBirth *Timestamp `json:"date_of_birth" swaggertype:"string"`

	// required: true
	// default: 1
	ParentID int64 `json:"parent_id"`
}

// NewAddChildrenHandler returns an HTTP handler that adds a child to the
// caller and alerts the administrator.
// @Summary Add a child
// @Tags children
// @Accept json
// @Produce json
// @Param addChildRequest body handlers.AddChildRequest true "Child"
// @Success 200 {object} handlers.MessageResponse "Child added"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 403 {object} handlers.ErrorResponse "Not the caller's parent id"
// @Router /addChildren [post]
// @Security BearerAuth
func NewAddChildrenHandler(svc ChildAdder, caller CallerGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, ok := requireCaller(w, r, caller)
		if !ok {
			return
		}

		var req AddChildRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeDetail(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.DateOfBirth == nil {
			writeDetail(w, http.StatusBadRequest, "date_of_birth is required")
			return
		}

		_, err := svc.AddChild(r.Context(), callerID, models.ChildCreate{
			ParentID:    req.ParentID,
			Name:        req.Name,
			DateOfBirth: req.DateOfBirth.Time,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Child Added Successfully"})
	}
}
