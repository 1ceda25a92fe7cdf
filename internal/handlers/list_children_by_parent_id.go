package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-parent-profile/internal/models"
)

// ParentChildrenLister defines the interface that the service must implement.
type ParentChildrenLister interface {
	ListChildrenByParentID(ctx context.Context, callerID, parentID int64) (*models.ParentWithChildren, error)
}

// NewListChildrenByParentIDHandler returns an HTTP handler that returns the
// caller's profile with every child.
// @Summary Get a parent with its children
// @Tags children
// @Produce json
// @Param parent_id query int true "Parent id"
// @Success 200 {object} models.ParentWithChildren "Parent with children"
// @Failure 400 {object} handlers.ErrorResponse "Invalid parent id"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 403 {object} handlers.ErrorResponse "Not the caller's parent id"
// @Failure 404 {object} handlers.ErrorResponse "Parent not found"
// @Router /listChildrenByParentId [get]
// @Security BearerAuth
func NewListChildrenByParentIDHandler(svc ParentChildrenLister, caller CallerGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, ok := requireCaller(w, r, caller)
		if !ok {
			return
		}

		parentID, err := parseID(r, "parent_id")
		if err != nil {
			writeDetail(w, http.StatusBadRequest, err.Error())
			return
		}

		parent, err := svc.ListChildrenByParentID(r.Context(), callerID, parentID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, parent)
	}
}
