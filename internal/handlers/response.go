package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/sbilibin2017/gw-parent-profile/internal/logger"
	"github.com/sbilibin2017/gw-parent-profile/internal/middlewares"
	"github.com/sbilibin2017/gw-parent-profile/internal/services"
)

// CallerGetter returns the id of the authenticated parent stored in the
// request context.
type CallerGetter func(r *http.Request) (int64, bool)

// MessageResponse is returned by endpoints that only confirm an action.
// swagger:model MessageResponse
type MessageResponse struct {
	// default: Child Added Successfully
	Message string `json:"message"`
}

// ErrorResponse carries the reason a request failed.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// default: Parent not found
	Detail string `json:"detail"`
}

const internalErrorDetail = "Something went wrong, try again"

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, code int, detail string) {
	if code == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	writeJSON(w, code, ErrorResponse{Detail: detail})
}

// writeError maps a service error to its status code. Unknown errors are
// logged and hidden behind a generic 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var svcErr *services.Error
	if !errors.As(err, &svcErr) {
		logger.Log.Errorw("internal server error",
			"request_id", middlewares.RequestIDFromContext(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"err", err,
		)
		writeDetail(w, http.StatusInternalServerError, internalErrorDetail)
		return
	}

	code := http.StatusInternalServerError
	switch svcErr.Kind {
	case services.KindValidation:
		code = http.StatusBadRequest
	case services.KindAuth:
		code = http.StatusUnauthorized
	case services.KindForbidden:
		code = http.StatusForbidden
	case services.KindNotFound:
		code = http.StatusNotFound
	}
	writeDetail(w, code, svcErr.Message)
}

func requireCaller(w http.ResponseWriter, r *http.Request, getter CallerGetter) (int64, bool) {
	id, ok := getter(r)
	if !ok {
		writeDetail(w, http.StatusUnauthorized, services.ErrUnauthorized.Message)
	}
	return id, ok
}

// Layouts accepted for date and datetime inputs.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid datetime %q", s)
}

// Timestamp is a JSON datetime accepting RFC 3339, a zone-less datetime or
// a plain date.
type Timestamp struct {
	time.Time
}

func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	t, err := parseTime(s)
	if err != nil {
		return err
	}
	ts.Time = t
	return nil
}

func parseID(r *http.Request, key string) (int64, error) {
	v := r.FormValue(key)
	if v == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	return id, nil
}

func optionalString(r *http.Request, key string) *string {
	if v := r.FormValue(key); v != "" {
		return &v
	}
	return nil
}

func optionalTime(r *http.Request, key string) (*time.Time, error) {
	v := r.FormValue(key)
	if v == "" {
		return nil, nil
	}
	t, err := parseTime(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return &t, nil
}
