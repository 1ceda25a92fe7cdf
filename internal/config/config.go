package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Queue backends supported by the notification worker.
const (
	QueueBackendRedis = "redis"
	QueueBackendKafka = "kafka"
)

// Config holds every setting the service needs. It is built once at startup
// and passed to constructors explicitly.
type Config struct {
	// Application
	AppHost       string
	AppPort       string
	LogLevel      string
	PublicURL     string // base URL used in activation links
	PhotoDir      string
	MaxUploadSize int64 // bytes

	// PostgreSQL
	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	// Redis
	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	// Job queue
	QueueBackend      string
	QueueName         string
	QueueMaxAttempts  int
	QueueRetryBackoff time.Duration
	WorkerConcurrency int
	WorkerID          string

	// Kafka
	KafkaBrokers         []string
	KafkaTopic           string
	KafkaDeadLetterTopic string
	KafkaGroupID         string

	// Mail
	SMTPHost          string
	SMTPPort          int
	SMTPUsername      string
	SMTPPassword      string
	MailFrom          string
	AdminEmail        string
	NewChildAlertWait time.Duration

	// JWT
	JWTSecretKey  string
	JWTExp        time.Duration
	ActivationExp time.Duration

	// gRPC health
	GRPCHealthPort string
}

// Load reads the env file at path, if present, and builds a Config from
// environment variables, falling back to defaults.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	hostname, _ := os.Hostname()
	if hostname == "" {
		hostname = "worker"
	}

	cfg := &Config{
		AppHost:   getEnv("APP_HOST", "localhost"),
		AppPort:   getEnv("APP_PORT", "8080"),
		LogLevel:  getEnv("APP_LOG_LEVEL", "info"),
		PublicURL: strings.TrimRight(getEnv("APP_PUBLIC_URL", "http://localhost:8080"), "/"),
		PhotoDir:  getEnv("PHOTO_DIR", "profile_photos"),

		PGHost:     getEnv("POSTGRES_HOST", "localhost"),
		PGUser:     getEnv("POSTGRES_USER", "postgres"),
		PGPassword: getEnv("POSTGRES_PASSWORD", "admin"),
		PGDB:       getEnv("POSTGRES_DB", "parent_child_management"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		QueueBackend: strings.ToLower(getEnv("QUEUE_BACKEND", QueueBackendRedis)),
		QueueName:    getEnv("QUEUE_NAME", "email"),
		WorkerID:     getEnv("WORKER_ID", hostname),

		KafkaBrokers:         getList("KAFKA_BROKERS", []string{"localhost:9092"}),
		KafkaTopic:           getEnv("KAFKA_TOPIC", "email-jobs"),
		KafkaDeadLetterTopic: getEnv("KAFKA_DEAD_LETTER_TOPIC", "email-jobs-dead"),
		KafkaGroupID:         getEnv("KAFKA_GROUP_ID", "email-workers"),

		SMTPHost:     getEnv("SMTP_HOST", "localhost"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		MailFrom:     getEnv("MAIL_FROM", "admin@cloudifyapps.com"),
		AdminEmail:   getEnv("ADMIN_EMAIL", "admin@cloudifyapps.com"),

		JWTSecretKey: getEnv("JWT_SECRET_KEY", "my_super_secret_key"),

		GRPCHealthPort: getEnv("GRPC_HEALTH_PORT", "50051"),
	}

	var err error
	ints := []struct {
		key string
		def string
		dst *int
	}{
		{"POSTGRES_PORT", "5432", &cfg.PGPort},
		{"POSTGRES_MAX_OPEN_CONNS", "16", &cfg.PGMaxOpenConns},
		{"POSTGRES_MAX_IDLE_CONNS", "8", &cfg.PGMaxIdleConns},
		{"REDIS_PORT", "6379", &cfg.RedisPort},
		{"REDIS_DB", "0", &cfg.RedisDB},
		{"REDIS_POOL_SIZE", "10", &cfg.RedisPoolSize},
		{"REDIS_MIN_IDLE_CONNS", "2", &cfg.RedisMinIdleConns},
		{"QUEUE_MAX_ATTEMPTS", "5", &cfg.QueueMaxAttempts},
		{"WORKER_CONCURRENCY", "4", &cfg.WorkerConcurrency},
		{"SMTP_PORT", "25", &cfg.SMTPPort},
	}
	for _, v := range ints {
		if *v.dst, err = strconv.Atoi(getEnv(v.key, v.def)); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", v.key, err)
		}
	}

	durations := []struct {
		key  string
		def  string
		unit time.Duration
		dst  *time.Duration
	}{
		{"QUEUE_RETRY_BACKOFF_MS", "1000", time.Millisecond, &cfg.QueueRetryBackoff},
		{"NEW_CHILD_ALERT_DELAY_SECOND", "10", time.Second, &cfg.NewChildAlertWait},
		{"JWT_EXP_SECOND", "1800", time.Second, &cfg.JWTExp},
		{"ACTIVATION_EXP_SECOND", "1800", time.Second, &cfg.ActivationExp},
	}
	for _, v := range durations {
		n, err := strconv.Atoi(getEnv(v.key, v.def))
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", v.key, err)
		}
		*v.dst = time.Duration(n) * v.unit
	}

	maxUploadMB, err := strconv.Atoi(getEnv("MAX_UPLOAD_MB", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_UPLOAD_MB: %w", err)
	}
	cfg.MaxUploadSize = int64(maxUploadMB) << 20

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.QueueBackend {
	case QueueBackendRedis, QueueBackendKafka:
	default:
		return fmt.Errorf("unsupported QUEUE_BACKEND %q", c.QueueBackend)
	}
	if c.QueueMaxAttempts < 1 {
		return fmt.Errorf("QUEUE_MAX_ATTEMPTS must be at least 1")
	}
	if c.WorkerConcurrency < 1 {
		return fmt.Errorf("WORKER_CONCURRENCY must be at least 1")
	}
	if c.JWTSecretKey == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	return nil
}

// PostgresDSN returns the pgx connection string.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDB)
}

// RedisAddr returns host:port of the Redis server.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// SMTPAddr returns host:port of the SMTP relay.
func (c *Config) SMTPAddr() string {
	return fmt.Sprintf("%s:%d", c.SMTPHost, c.SMTPPort)
}

func getEnv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}

func getList(key string, def []string) []string {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
