package middlewares

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-parent-profile/internal/logger"
)

// TxMiddleware runs each request inside a database transaction. The response
// is held back until the outcome is known: a status below 400 commits, any
// other status or a panic rolls back. Hooks registered with OnCommit run
// only after a successful commit, once the response has been flushed.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.BeginTxx(r.Context(), nil)
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				writeInternalError(w)
				return
			}

			committed := false
			defer func() {
				if committed {
					return
				}
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to rollback transaction", "error", err)
				}
			}()

			state := &txState{tx: tx}
			bw := &bufferedResponseWriter{header: make(http.Header), statusCode: http.StatusOK}

			next.ServeHTTP(bw, r.WithContext(context.WithValue(r.Context(), txKey, state)))

			if bw.statusCode >= http.StatusBadRequest {
				bw.flushTo(w)
				return
			}

			if err := tx.Commit(); err != nil {
				committed = true // a failed commit cannot be rolled back
				logger.Log.Errorw("failed to commit transaction", "error", err)
				writeInternalError(w)
				return
			}
			committed = true

			// The client has the full response before any hook runs.
			bw.flushTo(w)
			_ = http.NewResponseController(w).Flush()

			hookCtx := context.WithoutCancel(r.Context())
			for _, hook := range state.hooks {
				hook(hookCtx)
			}
		})
	}
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

type txState struct {
	tx    *sqlx.Tx
	hooks []func(context.Context)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	if state, ok := ctx.Value(txKey).(*txState); ok {
		return state.tx
	}
	return nil
}

// OnCommit schedules fn to run once the request transaction commits. Without
// a transaction in ctx, fn runs immediately.
func OnCommit(ctx context.Context, fn func(context.Context)) {
	if state, ok := ctx.Value(txKey).(*txState); ok {
		state.hooks = append(state.hooks, fn)
		return
	}
	fn(ctx)
}

type bufferedResponseWriter struct {
	header      http.Header
	body        bytes.Buffer
	statusCode  int
	wroteHeader bool
}

func (bw *bufferedResponseWriter) Header() http.Header { return bw.header }

func (bw *bufferedResponseWriter) WriteHeader(code int) {
	if bw.wroteHeader {
		return
	}
	bw.statusCode = code
	bw.wroteHeader = true
}

func (bw *bufferedResponseWriter) Write(b []byte) (int, error) {
	bw.wroteHeader = true
	return bw.body.Write(b)
}

func (bw *bufferedResponseWriter) flushTo(w http.ResponseWriter) {
	for k, v := range bw.header {
		w.Header()[k] = v
	}
	w.Header().Set("Content-Length", strconv.Itoa(bw.body.Len()))
	w.WriteHeader(bw.statusCode)
	_, _ = w.Write(bw.body.Bytes())
}

func writeInternalError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(map[string]string{"detail": "Something went wrong, try again"})
}
