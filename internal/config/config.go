package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

type AppConfig struct {
	Env                Environment
	LogLevel           string
	LogFile            string
	ServerPort         string
	HttpTimeoutSeconds int
}

type RedditConfig struct {
	BaseURL         string
	UserAgent       string
	TimeoutSeconds  int
	CacheTTLSeconds int
	DefaultQuery    string
	DefaultLimit    int
}

type DatasetConfig struct {
	Path string
}

type TextConfig struct {
	ResourcesFile string
	Reducer       string
	SplitItems    bool
	TopK          int
}

type Config struct {
	App     AppConfig
	Reddit  RedditConfig
	Dataset DatasetConfig
	Text    TextConfig
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	appEnv := getEnv("APP_ENV", "development")
	env := parseEnvironment(appEnv)

	logLevel := getLogLevel(env)

	return &Config{
		App: AppConfig{
			Env:                env,
			LogLevel:           logLevel,
			LogFile:            getEnv("APP_LOG_FILE", ""),
			ServerPort:         getEnv("APP_SERVER_PORT", "8080"),
			HttpTimeoutSeconds: getEnvInt("APP_HTTP_TIMEOUT_SECONDS", 30),
		},
		Reddit: RedditConfig{
			BaseURL:         strings.TrimRight(getEnv("REDDIT_BASE_URL", "https://www.reddit.com"), "/"),
			UserAgent:       getEnv("REDDIT_USER_AGENT", "Mozilla/5.0"),
			TimeoutSeconds:  getEnvInt("REDDIT_TIMEOUT_SECONDS", 10),
			CacheTTLSeconds: getEnvInt("REDDIT_CACHE_TTL_SECONDS", 600),
			DefaultQuery:    getEnv("REDDIT_DEFAULT_QUERY", "rent vs buy"),
			DefaultLimit:    getEnvInt("REDDIT_DEFAULT_LIMIT", 20),
		},
		Dataset: DatasetConfig{
			Path: getEnv("DATASET_PATH", "data.csv"),
		},
		Text: TextConfig{
			ResourcesFile: getEnv("TEXT_RESOURCES_FILE", ""),
			Reducer:       strings.ToLower(getEnv("TEXT_REDUCER", "lemma")),
			SplitItems:    getEnvBool("TEXT_NGRAM_SPLIT_ITEMS", false),
			TopK:          getEnvInt("TEXT_TOP_K", 10),
		},
	}, nil
}

func (c *Config) Validate() error {
	if c.Reddit.BaseURL == "" {
		return fmt.Errorf("REDDIT_BASE_URL is required")
	}
	if c.Reddit.TimeoutSeconds <= 0 {
		return fmt.Errorf("REDDIT_TIMEOUT_SECONDS must be positive")
	}
	if c.Reddit.CacheTTLSeconds < 0 {
		return fmt.Errorf("REDDIT_CACHE_TTL_SECONDS must not be negative")
	}
	if c.Text.Reducer != "lemma" && c.Text.Reducer != "stem" {
		return fmt.Errorf("TEXT_REDUCER must be 'lemma' or 'stem', got '%s'", c.Text.Reducer)
	}
	if c.Text.TopK <= 0 {
		return fmt.Errorf("TEXT_TOP_K must be positive")
	}
	if c.Dataset.Path == "" {
		return fmt.Errorf("DATASET_PATH is required")
	}
	return nil
}

func parseEnvironment(envStr string) Environment {
	env := Environment(strings.ToLower(envStr))

	switch env {
	case Development, Production:
		return env
	default:
		return Development
	}
}

func getLogLevel(env Environment) string {
	if env == Production {
		return getEnv("APP_LOG_LEVEL", "info")
	}

	return getEnv("APP_LOG_LEVEL", "debug")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value == "true" {
		return true
	}
	return defaultValue
}
