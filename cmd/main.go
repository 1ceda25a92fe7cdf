package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-parent-profile/internal/config"
	"github.com/sbilibin2017/gw-parent-profile/internal/handlers"
	"github.com/sbilibin2017/gw-parent-profile/internal/health"
	"github.com/sbilibin2017/gw-parent-profile/internal/jwt"
	"github.com/sbilibin2017/gw-parent-profile/internal/logger"
	"github.com/sbilibin2017/gw-parent-profile/internal/mailer"
	"github.com/sbilibin2017/gw-parent-profile/internal/middlewares"
	"github.com/sbilibin2017/gw-parent-profile/internal/notifications"
	"github.com/sbilibin2017/gw-parent-profile/internal/queue"
	"github.com/sbilibin2017/gw-parent-profile/internal/repositories"
	"github.com/sbilibin2017/gw-parent-profile/internal/services"
	"github.com/sbilibin2017/gw-parent-profile/internal/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/gw-parent-profile/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// Process roles selected with -mode.
const (
	modeAll    = "all"
	modeAPI    = "api"
	modeWorker = "worker"
)

const (
	shutdownTimeout     = 10 * time.Second
	healthWatchInterval = 10 * time.Second
)

// @title gw-parent-profile API
// @version 1.0.0
// @description Parent accounts, profiles and children with queued email notifications
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath, mode := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg, mode); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path and
// the process mode.
func parseFlags() (string, string) {
	c := flag.String("c", "config.env", "Path to configuration file")
	m := flag.String("mode", modeAll, "Process role: all, api or worker")
	flag.Parse()
	return *c, *m
}

// roles reports which parts of the process mode enables.
func roles(mode string) (api, worker bool, err error) {
	switch mode {
	case modeAll:
		return true, true, nil
	case modeAPI:
		return true, false, nil
	case modeWorker:
		return false, true, nil
	default:
		return false, false, fmt.Errorf("unknown mode %q", mode)
	}
}

// jobQueue is what the API publishes to and the worker consumes from.
type jobQueue interface {
	notifications.Publisher
	notifications.Consumer
	Close() error
}

// run initializes the logger, database, job queue, HTTP API, email worker
// and gRPC health service according to mode, then blocks until ctx is
// cancelled or a signal arrives.
func run(ctx context.Context, cfg *config.Config, mode string) error {
	runAPI, runWorker, err := roles(mode)
	if err != nil {
		return err
	}

	if err := logger.Initialize(cfg.LogLevel, mode); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infow("Logger initialized", "level", cfg.LogLevel, "mode", mode)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	checks := map[string]health.CheckFunc{}

	var (
		db     *sqlx.DB
		photos *storage.LocalPhotoStore
	)
	if runAPI {
		if photos, err = storage.NewLocalPhotoStore(cfg.PhotoDir); err != nil {
			return fmt.Errorf("photo store: %w", err)
		}
		db, err = connectPostgres(ctx, cfg)
		if err != nil {
			return err
		}
		defer db.Close()
		checks["postgres"] = db.PingContext
	}

	q, err := openQueue(ctx, cfg, runWorker, checks)
	if err != nil {
		return err
	}
	defer q.Close()

	healthSrv := health.NewServer(checks)
	logger.Log.Infow("Health checks registered", "checks", healthSrv.Names())

	errChan := make(chan error, 3)
	var wg sync.WaitGroup

	lis, err := net.Listen("tcp", ":"+cfg.GRPCHealthPort)
	if err != nil {
		return fmt.Errorf("gRPC health listen failed: %w", err)
	}
	wg.Add(2)
	go func() {
		defer wg.Done()
		logger.Log.Infof("gRPC health server listening on %s", lis.Addr())
		if err := healthSrv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("gRPC health server failed: %w", err)
		}
	}()
	go func() {
		defer wg.Done()
		healthSrv.Watch(ctx, healthWatchInterval)
	}()

	var srv *http.Server
	if runAPI {
		srv = &http.Server{
			Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
			Handler: newRouter(cfg, db, q, photos, healthSrv),
		}
		go func() {
			logger.Log.Infof("HTTP server listening on %s", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errChan <- fmt.Errorf("HTTP server failed: %w", err)
			}
		}()
	}

	workerCtx, stopWorker := context.WithCancel(context.WithoutCancel(ctx))
	defer stopWorker()
	if runWorker {
		worker := notifications.NewWorker(
			q,
			mailer.NewSMTPMailer(cfg.SMTPAddr(), cfg.MailFrom, cfg.SMTPUsername, cfg.SMTPPassword),
			notifications.NewRenderer(cfg.PublicURL, cfg.AdminEmail),
			notifications.WithConcurrency(cfg.WorkerConcurrency),
			notifications.WithMaxAttempts(cfg.QueueMaxAttempts),
			notifications.WithRetryBackoff(cfg.QueueRetryBackoff),
		)
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := worker.Run(workerCtx); err != nil && !errors.Is(err, context.Canceled) {
				errChan <- fmt.Errorf("email worker failed: %w", err)
			}
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		logger.Log.Info("Shutdown signal received, stopping...")
	case runErr = <-errChan:
		logger.Log.Errorw("Component failed, stopping...", "error", runErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if srv != nil {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Log.Errorw("HTTP server shutdown error", "error", err)
		}
	}
	stopWorker()
	stop()
	healthSrv.Stop()
	wg.Wait()

	logger.Log.Info("Service stopped gracefully")
	return runErr
}

// connectPostgres opens the pool, applies pool limits and migrates the schema.
func connectPostgres(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		return nil, fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if err := repositories.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("schema migration failed: %w", err)
	}
	return db, nil
}

// openQueue connects the configured job queue backend and registers its
// health check. The Kafka reader and dead-letter writer are only opened
// when this process consumes.
func openQueue(ctx context.Context, cfg *config.Config, consume bool, checks map[string]health.CheckFunc) (jobQueue, error) {
	switch cfg.QueueBackend {
	case config.QueueBackendKafka:
		var (
			reader queue.KafkaReader
			dead   queue.KafkaWriter
		)
		if consume {
			reader = queue.NewKafkaReader(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.KafkaGroupID)
			dead = queue.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaDeadLetterTopic)
		}
		checks["kafka"] = kafkaCheck(cfg.KafkaBrokers)
		return queue.NewKafkaQueue(queue.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic), reader, dead), nil

	default:
		rdb := redis.NewClient(&redis.Options{
			Addr:         cfg.RedisAddr(),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return nil, fmt.Errorf("Redis connection error: %w", err)
		}
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }

		q := queue.NewRedisQueue(rdb, cfg.QueueName, cfg.WorkerID)
		if consume {
			n, err := q.Recover(ctx)
			if err != nil {
				rdb.Close()
				return nil, fmt.Errorf("requeue unfinished jobs: %w", err)
			}
			if n > 0 {
				logger.Log.Infow("Requeued unfinished jobs", "count", n, "worker_id", cfg.WorkerID)
			}
		}
		return &redisJobQueue{RedisQueue: q, client: rdb}, nil
	}
}

// redisJobQueue closes the Redis client together with the queue.
type redisJobQueue struct {
	*queue.RedisQueue
	client *redis.Client
}

func (q *redisJobQueue) Close() error {
	return errors.Join(q.RedisQueue.Close(), q.client.Close())
}

// kafkaCheck reports whether any broker accepts a TCP connection.
func kafkaCheck(brokers []string) health.CheckFunc {
	return func(ctx context.Context) error {
		var d net.Dialer
		var errs []error
		for _, addr := range brokers {
			conn, err := d.DialContext(ctx, "tcp", addr)
			if err == nil {
				return conn.Close()
			}
			errs = append(errs, err)
		}
		return errors.Join(errs...)
	}
}

// newRouter wires repositories, services and handlers into the chi router.
func newRouter(cfg *config.Config, db *sqlx.DB, publisher notifications.Publisher, photos services.PhotoStore, healthSrv *health.Server) http.Handler {
	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(cfg.JWTExp),
		jwt.WithActivationExpiration(cfg.ActivationExp),
	)

	// Initialize repositories
	parentReadRepo := repositories.NewParentReadRepository(db, middlewares.GetTxFromContext)
	parentWriteRepo := repositories.NewParentWriteRepository(db, middlewares.GetTxFromContext)
	childReadRepo := repositories.NewChildReadRepository(db, middlewares.GetTxFromContext)
	childWriteRepo := repositories.NewChildWriteRepository(db, middlewares.GetTxFromContext)

	// Emails are published only after the request's transaction commits
	dispatcher := notifications.NewDispatcher(publisher, middlewares.OnCommit, cfg.NewChildAlertWait)

	// Initialize services
	authService := services.NewAuthService(parentReadRepo, parentWriteRepo, tokens, dispatcher)
	profileService := services.NewProfileService(parentReadRepo, parentWriteRepo, photos)
	childService := services.NewChildService(parentReadRepo, childReadRepo, childWriteRepo, dispatcher)

	caller := func(r *http.Request) (int64, bool) {
		return middlewares.ParentIDFromContext(r.Context())
	}

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Get("/healthz", healthSrv.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("%s/swagger/doc.json", cfg.PublicURL)),
	))

	r.Group(func(r chi.Router) {
		r.Use(middlewares.TxMiddleware(db))

		// Public routes
		r.Post("/register", handlers.NewRegisterHandler(authService))
		r.Get("/activate", handlers.NewActivateHandler(authService))
		r.Post("/resend-verification", handlers.NewResendVerificationHandler(authService))
		r.Post("/login", handlers.NewLoginHandler(authService))

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokens, authService))
			r.Put("/updateParentProfile", handlers.NewUpdateParentProfileHandler(profileService, caller, cfg.MaxUploadSize))
			r.Get("/getParent", handlers.NewGetParentHandler(profileService, caller))
			r.Post("/addChildren", handlers.NewAddChildrenHandler(childService, caller))
			r.Put("/updateChildren", handlers.NewUpdateChildrenHandler(childService, caller))
			r.Get("/listChildren", handlers.NewListChildrenHandler(childService, caller))
			r.Get("/listChildrenByParentId", handlers.NewListChildrenByParentIDHandler(childService, caller))
		})
	})

	return r
}
