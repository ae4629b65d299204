package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// FallbackSecretKey is used when SECRET_KEY is unset. It is a known-insecure
// default; deployments must override it.
const FallbackSecretKey = "fallback_secret_key"

// Config holds all configuration values from environment.
type Config struct {
	AppPort string

	DBDriver   string // "postgres" or "sqlite"
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	SQLitePath string

	SecretKey  string
	TokenTTL   time.Duration
	BcryptCost int

	// OpenRegistration keeps /register-admin/ open even after the first admin
	// exists. When false, registration closes once an admin row is present.
	OpenRegistration bool

	UploadDir      string
	StorageBackend string // "local" or "minio"
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioSSL       bool
}

// LoadConfig loads configuration from a .env file (if present) and environment variables.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	tokenTTL := 30 * time.Minute
	if ttlEnv := os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES"); ttlEnv != "" {
		val, err := strconv.Atoi(ttlEnv)
		if err != nil {
			return nil, fmt.Errorf("invalid ACCESS_TOKEN_EXPIRE_MINUTES value: %v", err)
		}
		tokenTTL = time.Duration(val) * time.Minute
	}
	bcryptCost := bcrypt.DefaultCost
	if costEnv := os.Getenv("BCRYPT_COST"); costEnv != "" {
		val, err := strconv.Atoi(costEnv)
		if err == nil && val >= bcrypt.MinCost && val <= bcrypt.MaxCost {
			bcryptCost = val
		}
	}
	openRegistration := false
	if regEnv := os.Getenv("OPEN_REGISTRATION"); regEnv != "" {
		val, err := strconv.ParseBool(regEnv)
		if err == nil {
			openRegistration = val
		}
	}
	minioSSL := false
	if sslEnv := os.Getenv("MINIO_SSL"); sslEnv != "" {
		val, err := strconv.ParseBool(sslEnv)
		if err != nil {
			return nil, fmt.Errorf("invalid MINIO_SSL value: %v", err)
		}
		minioSSL = val
	}

	secretKey := os.Getenv("SECRET_KEY")
	if secretKey == "" {
		secretKey = FallbackSecretKey
		log.Println("WARNING: SECRET_KEY not set, using insecure fallback key")
	}

	driver := os.Getenv("DB_DRIVER")
	if driver == "" {
		driver = "sqlite"
	}
	sqlitePath := os.Getenv("SQLITE_PATH")
	if sqlitePath == "" {
		sqlitePath = "portfolio.db"
	}
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	backend := os.Getenv("STORAGE_BACKEND")
	if backend == "" {
		backend = "local"
	}

	cfg := &Config{
		AppPort:    os.Getenv("APP_PORT"),
		DBDriver:   driver,
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		SQLitePath: sqlitePath,

		SecretKey:  secretKey,
		TokenTTL:   tokenTTL,
		BcryptCost: bcryptCost,

		OpenRegistration: openRegistration,

		UploadDir:      uploadDir,
		StorageBackend: backend,
		MinioEndpoint:  os.Getenv("MINIO_ENDPOINT"),
		MinioAccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey: os.Getenv("MINIO_SECRET_KEY"),
		MinioBucket:    os.Getenv("MINIO_BUCKET"),
		MinioSSL:       minioSSL,
	}
	// Basic validation for required fields
	if cfg.DBDriver == "postgres" && (cfg.DBHost == "" || cfg.DBUser == "" || cfg.DBName == "") {
		return nil, fmt.Errorf("database configuration is incomplete")
	}
	if cfg.DBDriver != "postgres" && cfg.DBDriver != "sqlite" {
		return nil, fmt.Errorf("unsupported DB_DRIVER: %s", cfg.DBDriver)
	}
	if cfg.StorageBackend == "minio" && (cfg.MinioEndpoint == "" || cfg.MinioAccessKey == "" || cfg.MinioSecretKey == "" || cfg.MinioBucket == "") {
		return nil, fmt.Errorf("minio configuration is incomplete")
	}
	if cfg.StorageBackend != "local" && cfg.StorageBackend != "minio" {
		return nil, fmt.Errorf("unsupported STORAGE_BACKEND: %s", cfg.StorageBackend)
	}
	return cfg, nil
}

// ConnectDatabase initializes a GORM database connection for the configured driver.
func ConnectDatabase(cfg *Config) (*gorm.DB, error) {
	if cfg.DBDriver == "sqlite" {
		return gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
	}
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}
