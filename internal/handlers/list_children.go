package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-parent-profile/internal/models"
)

// ChildLister defines the interface that the service must implement.
type ChildLister interface {
	ListChildren(ctx context.Context, callerID int64, filter models.ChildFilter) ([]models.Child, error)
}

// NewListChildrenHandler returns an HTTP handler that lists the caller's
// children, optionally filtered by name and creation time.
// @Summary List children
// @Tags children
// @Produce json
// @Param parent_id query int true "Parent id"
// @Param name query string false "Case-insensitive name substring"
// @Param added_after query string false "Created at or after (datetime)"
// @Param added_before query string false "Created at or before (datetime)"
// @Success 200 {array} models.Child "Children"
// @Failure 400 {object} handlers.ErrorResponse "Invalid filter"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 403 {object} handlers.ErrorResponse "Not the caller's parent id"
// @Router /listChildren [get]
// @Security BearerAuth
func NewListChildrenHandler(svc ChildLister, caller CallerGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, ok := requireCaller(w, r, caller)
		if !ok {
			return
		}

		filter, err := parseChildFilter(r)
		if err != nil {
			writeDetail(w, http.StatusBadRequest, err.Error())
			return
		}

		children, err := svc.ListChildren(r.Context(), callerID, filter)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, children)
	}
}

func parseChildFilter(r *http.Request) (models.ChildFilter, error) {
	parentID, err := parseID(r, "parent_id")
	if err != nil {
		return models.ChildFilter{}, err
	}
	after, err := optionalTime(r, "added_after")
	if err != nil {
		return models.ChildFilter{}, err
	}
	before, err := optionalTime(r, "added_before")
	if err != nil {
		return models.ChildFilter{}, err
	}
	return models.ChildFilter{
		ParentID:    parentID,
		Name:        optionalString(r, "name"),
		AddedAfter:  after,
		AddedBefore: before,
	}, nil
}
