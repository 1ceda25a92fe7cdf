package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/sbilibin2017/gw-parent-profile/internal/models"
	"github.com/sbilibin2017/gw-parent-profile/internal/services"
)

// ProfileUpdater defines the interface that the service must implement.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, callerID int64, patch models.ParentPatch, photo *services.PhotoUpload) (*models.Parent, error)
}

// NewUpdateParentProfileHandler returns an HTTP handler that edits the
// caller's profile. Fields come from the query string or a multipart form;
// only the fields present are changed.
// @Summary Update the parent profile
// @Tags parents
// @Accept multipart/form-data
// @Produce json
// @Param id query int true "Parent id"
// @Param first_name query string false "First name"
// @Param last_name query string false "Last name"
// @Param age query int false "Age"
// @Param address query string false "Address"
// @Param city query string false "City"
// @Param country query string false "Country"
// @Param pincode query string false "Pincode"
// @Param profile_photo formData file false "Profile photo"
// @Success 200 {object} models.Parent "Updated parent"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 403 {object} handlers.ErrorResponse "Not the caller's profile"
// @Failure 404 {object} handlers.ErrorResponse "Parent not found"
// @Failure 413 {object} handlers.ErrorResponse "Upload too large"
// @Router /updateParentProfile [put]
// @Security BearerAuth
func NewUpdateParentProfileHandler(svc ProfileUpdater, caller CallerGetter, maxUploadSize int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, ok := requireCaller(w, r, caller)
		if !ok {
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
		if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			if err := r.ParseMultipartForm(maxUploadSize); err != nil {
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) || strings.Contains(err.Error(), "request body too large") {
					writeDetail(w, http.StatusRequestEntityTooLarge, "Upload too large")
					return
				}
				writeDetail(w, http.StatusBadRequest, "Invalid multipart form")
				return
			}
			defer r.MultipartForm.RemoveAll()
		}

		patch, err := parseParentPatch(r)
		if err != nil {
			writeDetail(w, http.StatusBadRequest, err.Error())
			return
		}

		var photo *services.PhotoUpload
		file, header, err := r.FormFile("profile_photo")
		switch {
		case err == nil:
			defer file.Close()
			photo = &services.PhotoUpload{Filename: header.Filename, Content: file}
		case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		default:
			writeDetail(w, http.StatusBadRequest, "Invalid profile photo")
			return
		}

		parent, err := svc.UpdateProfile(r.Context(), callerID, patch, photo)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, parent)
	}
}

func parseParentPatch(r *http.Request) (models.ParentPatch, error) {
	id, err := parseID(r, "id")
	if err != nil {
		return models.ParentPatch{}, err
	}

	patch := models.ParentPatch{
		ID:        id,
		FirstName: optionalString(r, "first_name"),
		LastName:  optionalString(r, "last_name"),
		Address:   optionalString(r, "address"),
		City:      optionalString(r, "city"),
		Country:   optionalString(r, "country"),
		Pincode:   optionalString(r, "pincode"),
	}

	if v := r.FormValue("age"); v != "" {
		age, err := strconv.Atoi(v)
		if err != nil || age < 0 {
			return models.ParentPatch{}, errors.New("age must be a non-negative integer")
		}
		patch.Age = &age
	}
	return patch, nil
}
