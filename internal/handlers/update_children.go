package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/gw-parent-profile/internal/models"
)

// ChildUpdater defines the interface that the service must implement.
type ChildUpdater interface {
	UpdateChild(ctx context.Context, callerID, parentID, childID int64, patch models.ChildPatch) (*models.Child, error)
}

// UpdateChildRequest represents the JSON body for editing a child; absent
// fields keep their value
// swagger:model UpdateChildRequest
type UpdateChildRequest struct {
	// required: true
	// default: 1
	ID int64 `json:"id"`

	// default: Samuel
	Name *string `json:"name,omitempty"`

	// default: 2015-06-01
	DateOfBirth *Timestamp `json:"date_of_birth,omitempty" swaggertype:"string"`

	// required: true
	// default: 1
	ParentID int64 `json:"parent_id"`
}

// NewUpdateChildrenHandler returns an HTTP handler that edits one of the
// caller's children.
// @Summary Update a child
// @Tags children
// @Accept json
// @Produce json
// @Param updateChildRequest body handlers.UpdateChildRequest true "Child patch"
// @Success 200 {object} handlers.MessageResponse "Child updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 403 {object} handlers.ErrorResponse "Not the caller's parent id"
// @Failure 404 {object} handlers.ErrorResponse "Child not found"
// @Router /updateChildren [put]
// @Security BearerAuth
func NewUpdateChildrenHandler(svc ChildUpdater, caller CallerGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, ok := requireCaller(w, r, caller)
		if !ok {
			return
		}

		var req UpdateChildRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeDetail(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		patch := models.ChildPatch{Name: req.Name}
		if req.DateOfBirth != nil {
			dob := req.DateOfBirth.Time
			patch.DateOfBirth = &dob
		}

		if _, err := svc.UpdateChild(r.Context(), callerID, req.ParentID, req.ID, patch); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{
			Message: fmt.Sprintf("Child Updated Successfully under parent %d", req.ParentID),
		})
	}
}
