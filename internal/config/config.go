package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type DB struct {
	DbHOST     string
	DbPORT     string
	DbUSER     string
	DbPASSWORD string
	DbNAME     string
	DbSSLMODE  string
}

// Storage points at an S3-compatible bucket (Cloudflare R2 in
// production, MinIO locally).
type Storage struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	BucketName string
	UseSSL     bool
	Region     string
	PublicURL  string
}

// Identity is the external auth provider that owns user ids. Bearer
// tokens are forwarded to it unchanged; this service never decodes them.
type Identity struct {
	BaseURL string
	AnonKey string
	Timeout time.Duration
}

type Config struct {
	ServerPort    int
	DB            DB
	Storage       Storage
	Identity      Identity
	MaxUploadSize int64
	FrontendURL   string
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return duration
}

func parseMaxUploadSize(value string) int64 {
	size, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 10 * 1024 * 1024
	}
	return size
}

func LoadDB() DB {
	return DB{
		DbHOST:     getEnv("DB_HOST", "localhost"),
		DbPORT:     getEnv("DB_PORT", "5432"),
		DbUSER:     getEnv("DB_USER", "postgres"),
		DbPASSWORD: getEnv("DB_PASSWORD", "password"),
		DbNAME:     getEnv("DB_NAME", "snuggle"),
		DbSSLMODE:  getEnv("DB_SSLMODE", "disable"),
	}
}

func LoadStorage() Storage {
	return Storage{
		Endpoint:   getEnv("R2_ENDPOINT", "localhost:9000"),
		AccessKey:  getEnv("R2_ACCESS_KEY", "minioadmin"),
		SecretKey:  getEnv("R2_SECRET_KEY", "minioadmin"),
		BucketName: getEnv("R2_BUCKET_NAME", "uploads"),
		UseSSL:     getEnvBool("R2_USE_SSL", false),
		Region:     getEnv("R2_REGION", "auto"),
		PublicURL:  getEnv("R2_PUBLIC_URL", "http://localhost:9000/uploads"),
	}
}

func LoadIdentity() Identity {
	return Identity{
		BaseURL: getEnv("SUPABASE_URL", "http://localhost:54321"),
		AnonKey: getEnv("SUPABASE_ANON_KEY", ""),
		Timeout: parseDuration(getEnv("AUTH_TIMEOUT", "10s"), 10*time.Second),
	}
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		ServerPort:    getEnvAsInt("SERVER_PORT", 4000),
		DB:            LoadDB(),
		Storage:       LoadStorage(),
		Identity:      LoadIdentity(),
		MaxUploadSize: parseMaxUploadSize(getEnv("MAX_UPLOAD_SIZE", "10485760")),
		FrontendURL:   getEnv("FRONTEND_URL", "http://localhost:3000"),
	}
}
