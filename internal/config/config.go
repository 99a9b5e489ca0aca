package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	// filesPerUploadRequest sizes the default MAX_UPLOAD_REQUEST_SIZE.
	filesPerUploadRequest = 20

	BackendSupabase = "supabase"
	BackendMinio    = "minio"
)

type Config struct {
	// Database
	DatabaseDriver      string
	DatabaseURL         string
	DBUser              string
	DBPassword          string
	DBHost              string
	DBPort              string
	DBName              string
	DBSSLMode           string
	DBConnectRetries    int
	DBConnectRetryDelay time.Duration

	// Object store
	StorageBackend     string
	StorageBucket      string
	SupabaseURL        string
	SupabaseServiceKey string
	MinioEndpoint      string
	MinioAccessKey     string
	MinioSecretKey     string
	MinioUseSSL        bool
	MinioPublicURL     string

	// Portfolio
	StoragePrefix         string
	ReindexCleanupOrphans bool
	MaxUploadSize         int64
	MaxUploadRequestSize  int64
	AllowedExtensions     []string

	// Enrichment and search
	GeocoderURL       string
	GeocoderUserAgent string
	GCPProjectID      string
	GCPLocation       string
	VisionModel       string
	EmbeddingAPIURL   string
	EmbeddingAPIKey   string
	EmbeddingModel    string

	// Background tasks
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	TaskQueue         string
	WorkerConcurrency int

	// Server
	Port        string
	Environment string
	BaseURL     string
	JWTSecret   string
	CORSOrigins []string
}

func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseDriver:      getEnv("DATABASE_DRIVER", DriverPostgres),
		DatabaseURL:         getEnv("DATABASE_URL", ""),
		DBUser:              getEnv("DB_USER", "postgres"),
		DBPassword:          getEnv("DB_PASSWORD", ""),
		DBHost:              getEnv("DB_HOST", "localhost"),
		DBPort:              getEnv("DB_PORT", "5432"),
		DBName:              getEnv("DB_NAME", "photo_portfolio"),
		DBSSLMode:           getEnv("DB_SSLMODE", "disable"),
		DBConnectRetries:    getEnvInt("DB_CONNECT_RETRIES", 5),
		DBConnectRetryDelay: getEnvDuration("DB_CONNECT_RETRY_DELAY", 2*time.Second),

		StorageBackend:     getEnv("STORAGE_BACKEND", BackendSupabase),
		StorageBucket:      getEnv("STORAGE_BUCKET", getEnv("GCS_BUCKET", "")),
		SupabaseURL:        getEnv("SUPABASE_URL", ""),
		SupabaseServiceKey: getEnv("SUPABASE_SERVICE_KEY", ""),
		MinioEndpoint:      getEnv("MINIO_ENDPOINT", "localhost:9000"),
		MinioAccessKey:     getEnv("MINIO_ACCESS_KEY", ""),
		MinioSecretKey:     getEnv("MINIO_SECRET_KEY", ""),
		MinioUseSSL:        getEnvBool("MINIO_USE_SSL", false),
		MinioPublicURL:     getEnv("MINIO_PUBLIC_URL", ""),

		StoragePrefix:         getEnv("STORAGE_PREFIX", "folders/"),
		ReindexCleanupOrphans: getEnvBool("REINDEX_CLEANUP_ORPHANS", false),
		MaxUploadSize:         int64(getEnvInt("MAX_UPLOAD_SIZE", 10<<20)),
		MaxUploadRequestSize:  int64(getEnvInt("MAX_UPLOAD_REQUEST_SIZE", 0)),
		AllowedExtensions:     getEnvList("ALLOWED_EXTENSIONS", []string{"jpg", "jpeg", "png", "gif", "webp"}),

		GeocoderURL:       getEnv("GEOCODER_URL", "https://nominatim.openstreetmap.org"),
		GeocoderUserAgent: getEnv("GEOCODER_USER_AGENT", "photo-portfolio-backend/1.0"),
		GCPProjectID:      getEnv("GCP_PROJECT_ID", ""),
		GCPLocation:       getEnv("GCP_LOCATION", "us-central1"),
		VisionModel:       getEnv("VISION_MODEL", "gemini-1.5-flash"),
		EmbeddingAPIURL:   getEnv("EMBEDDING_API_URL", ""),
		EmbeddingAPIKey:   getEnv("EMBEDDING_API_KEY", ""),
		EmbeddingModel:    getEnv("EMBEDDING_MODEL", "all-MiniLM-L6-v2"),

		RedisAddr:         getEnv("REDIS_ADDR", ""),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisDB:           getEnvInt("REDIS_DB", 0),
		TaskQueue:         getEnv("TASK_QUEUE", "portfolio"),
		WorkerConcurrency: getEnvInt("WORKER_CONCURRENCY", 2),

		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		CORSOrigins: getEnvList("CORS_ORIGINS", []string{"*"}),
	}

	if cfg.MaxUploadRequestSize <= 0 {
		cfg.MaxUploadRequestSize = filesPerUploadRequest * cfg.MaxUploadSize
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.DatabaseDriver {
	case DriverPostgres:
		if c.DatabaseURL == "" && (c.DBUser == "" || c.DBHost == "" || c.DBName == "") {
			return fmt.Errorf("DATABASE_URL or DB_USER, DB_HOST and DB_NAME are required")
		}
	case DriverSQLite:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.DatabaseDriver)
	}

	if c.StorageBucket == "" {
		return fmt.Errorf("STORAGE_BUCKET is required")
	}
	switch c.StorageBackend {
	case BackendSupabase:
		if c.SupabaseURL == "" {
			return fmt.Errorf("SUPABASE_URL is required")
		}
		if c.SupabaseServiceKey == "" {
			return fmt.Errorf("SUPABASE_SERVICE_KEY is required")
		}
	case BackendMinio:
		if c.MinioAccessKey == "" || c.MinioSecretKey == "" {
			return fmt.Errorf("MINIO_ACCESS_KEY and MINIO_SECRET_KEY are required")
		}
	default:
		return fmt.Errorf("unsupported STORAGE_BACKEND %q", c.StorageBackend)
	}

	if c.MaxUploadSize <= 0 {
		return fmt.Errorf("MAX_UPLOAD_SIZE must be positive")
	}
	return nil
}

// DSN returns the connection string for the configured driver. For postgres
// without DATABASE_URL it is assembled from the DB_* parts.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" || c.DatabaseDriver != DriverPostgres {
		return c.DatabaseURL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.DBSSLMode),
	}
	return u.String()
}

// AllowedExtension reports whether ext (with or without the dot) is accepted for upload.
func (c *Config) AllowedExtension(ext string) bool {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	for _, allowed := range c.AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.ToLower(strings.TrimSpace(part)); part != "" {
			out = append(out, part)
		}
	}
	return out
}
