package health

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"sort"
	"time"

	"github.com/sbilibin2017/gw-parent-profile/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// CheckFunc checks one dependency.
type CheckFunc func(ctx context.Context) error

const checkTimeout = 2 * time.Second

// Server reports liveness over HTTP and the gRPC health protocol.
type Server struct {
	checks map[string]CheckFunc
	grpc   *grpc.Server
	health *health.Server
}

// NewServer returns a server running checks. The empty service name of the
// gRPC health service reflects the combined result.
func NewServer(checks map[string]CheckFunc) *Server {
	s := &Server{
		checks: checks,
		grpc:   grpc.NewServer(),
		health: health.NewServer(),
	}
	healthpb.RegisterHealthServer(s.grpc, s.health)
	return s
}

// Check runs every check and returns a per-name status plus whether all passed.
func (s *Server) Check(ctx context.Context) (map[string]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	result := make(map[string]string, len(s.checks))
	ok := true
	for name, check := range s.checks {
		if err := check(ctx); err != nil {
			logger.Log.Warnw("health check failed", "check", name, "error", err)
			result[name] = "unavailable"
			ok = false
			continue
		}
		result[name] = "ok"
	}
	return result, ok
}

// Refresh runs the checks and publishes the result to gRPC clients.
func (s *Server) Refresh(ctx context.Context) bool {
	_, ok := s.Check(ctx)
	status := healthpb.HealthCheckResponse_SERVING
	if !ok {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	s.health.SetServingStatus("", status)
	return ok
}

// Watch refreshes the gRPC status every interval until ctx is done.
func (s *Server) Watch(ctx context.Context, interval time.Duration) {
	s.Refresh(ctx)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Refresh(ctx)
		}
	}
}

// Serve serves the gRPC health service on lis until Stop.
func (s *Server) Serve(lis net.Listener) error {
	return s.grpc.Serve(lis)
}

// Stop marks the service as not serving and stops the gRPC server.
func (s *Server) Stop() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
}

type response struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Handler godoc
// @Summary Health check
// @Description Reports whether the service and its dependencies are reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /healthz [get]
func (s *Server) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks, ok := s.Check(r.Context())

		resp := response{Status: "ok", Checks: checks}
		code := http.StatusOK
		if !ok {
			resp.Status = "unavailable"
			code = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		json.NewEncoder(w).Encode(resp)
	}
}

// Names returns the registered check names in order.
func (s *Server) Names() []string {
	names := make([]string, 0, len(s.checks))
	for name := range s.checks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
