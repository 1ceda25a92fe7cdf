package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-parent-profile/internal/models"
)

// ParentGetter defines the interface that the service must implement.
type ParentGetter interface {
	GetParent(ctx context.Context, callerID, id int64) (*models.Parent, error)
}

// NewGetParentHandler returns an HTTP handler for reading the caller's profile.
// @Summary Get the parent profile
// @Tags parents
// @Produce json
// @Param id query int true "Parent id"
// @Success 200 {object} models.Parent "Parent"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 403 {object} handlers.ErrorResponse "Not the caller's profile"
// @Failure 404 {object} handlers.ErrorResponse "Parent not found"
// @Router /getParent [get]
// @Security BearerAuth
func NewGetParentHandler(svc ParentGetter, caller CallerGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, ok := requireCaller(w, r, caller)
		if !ok {
			return
		}

		id, err := parseID(r, "id")
		if err != nil {
			writeDetail(w, http.StatusBadRequest, err.Error())
			return
		}

		parent, err := svc.GetParent(r.Context(), callerID, id)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, parent)
	}
}
