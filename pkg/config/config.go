package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Database DatabaseConfig
	Redis    RedisConfig
	CORS     CORSConfig
	Log      LogConfig
	QA       QAConfig
	Exports  ExportsConfig
}

type DatabaseConfig struct {
	Path         string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// QAConfig governs manual retrieval and answer generation.
type QAConfig struct {
	Enabled             bool
	GenAIAPIKey         string
	EmbeddingModel      string
	AnswerModel         string
	EmbeddingDims       int
	MaxChunks           int
	SimilarityThreshold float64
	CacheTTL            time.Duration
}

// ExportsConfig controls review export artifacts and their download links.
type ExportsConfig struct {
	StorageDir      string
	SignedURLSecret string
	SignedURLTTL    time.Duration
	CleanupInterval time.Duration
	// PDFDateOffsetMinutes is the fixed UTC offset stamped into markup
	// archive PDF dates. The desktop tool this feeds expects a constant
	// offset, so it is configured, not derived from the host timezone.
	PDFDateOffsetMinutes int
	AuthorFallback       string
	// Workers and QueueSize bound the background export queue.
	Workers   int
	QueueSize int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Database = DatabaseConfig{
		Path:         v.GetString("DB_PATH"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.Redis = RedisConfig{
		Enabled:  v.GetBool("REDIS_ENABLED"),
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.QA = QAConfig{
		Enabled:             v.GetBool("ENABLE_QA"),
		GenAIAPIKey:         v.GetString("GENAI_API_KEY"),
		EmbeddingModel:      v.GetString("QA_EMBEDDING_MODEL"),
		AnswerModel:         v.GetString("QA_ANSWER_MODEL"),
		EmbeddingDims:       v.GetInt("QA_EMBEDDING_DIMS"),
		MaxChunks:           v.GetInt("QA_MAX_CHUNKS"),
		SimilarityThreshold: v.GetFloat64("QA_SIMILARITY_THRESHOLD"),
		CacheTTL:            parseDuration(v.GetString("QA_CACHE_TTL"), time.Hour),
	}

	cfg.Exports = ExportsConfig{
		StorageDir:           v.GetString("EXPORTS_STORAGE_DIR"),
		SignedURLSecret:      v.GetString("EXPORTS_SIGNED_URL_SECRET"),
		SignedURLTTL:         parseDuration(v.GetString("EXPORTS_SIGNED_URL_TTL"), 24*time.Hour),
		CleanupInterval:      parseDuration(v.GetString("EXPORTS_CLEANUP_INTERVAL"), time.Hour),
		PDFDateOffsetMinutes: v.GetInt("EXPORTS_PDF_DATE_OFFSET_MINUTES"),
		AuthorFallback:       v.GetString("EXPORTS_AUTHOR_FALLBACK"),
		Workers:              v.GetInt("EXPORTS_WORKERS"),
		QueueSize:            v.GetInt("EXPORTS_QUEUE_SIZE"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("DB_PATH", "./data/plan_review.db")
	v.SetDefault("DB_MAX_OPEN_CONNS", 1)
	v.SetDefault("DB_MAX_IDLE_CONNS", 1)

	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("ENABLE_QA", false)
	v.SetDefault("QA_EMBEDDING_MODEL", "gemini-embedding-001")
	v.SetDefault("QA_ANSWER_MODEL", "gemini-2.0-flash")
	v.SetDefault("QA_EMBEDDING_DIMS", 768)
	v.SetDefault("QA_MAX_CHUNKS", 5)
	v.SetDefault("QA_SIMILARITY_THRESHOLD", 0.6)
	v.SetDefault("QA_CACHE_TTL", "1h")

	v.SetDefault("EXPORTS_STORAGE_DIR", "./exports")
	v.SetDefault("EXPORTS_SIGNED_URL_SECRET", "dev_exports_secret")
	v.SetDefault("EXPORTS_SIGNED_URL_TTL", "24h")
	v.SetDefault("EXPORTS_CLEANUP_INTERVAL", "1h")
	v.SetDefault("EXPORTS_PDF_DATE_OFFSET_MINUTES", -360)
	v.SetDefault("EXPORTS_AUTHOR_FALLBACK", "")
	v.SetDefault("EXPORTS_WORKERS", 1)
	v.SetDefault("EXPORTS_QUEUE_SIZE", 16)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
