package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	_ "time/tzdata"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/studysaathi/studysaathi/internal/strength"
)

type Config struct {
	Env       string          `mapstructure:"env" validate:"required"`
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	OpenAI    OpenAIConfig    `mapstructure:"openai"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Scoring   strength.Config `mapstructure:"scoring"`
	Streak    StreakConfig    `mapstructure:"streak"`
	Templates TemplatesConfig `mapstructure:"templates"`
	Outputs   OutputsConfig   `mapstructure:"outputs"`
}

type ServerConfig struct {
	Port      int             `mapstructure:"port" validate:"min=1,max=65535"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// RateLimitConfig limits requests to the LLM backed routes per user.
type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second" validate:"gte=0"`
	Burst             int     `mapstructure:"burst" validate:"gte=0"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

type OpenAIConfig struct {
	APIKey           string  `mapstructure:"api_key"`
	Model            string  `mapstructure:"model"`
	BaseURL          string  `mapstructure:"base_url" validate:"omitempty,url"`
	MaxRetryAttempts uint    `mapstructure:"max_retry_attempts" validate:"max=10"`
	Temperature      float32 `mapstructure:"temperature" validate:"gte=0,lte=2"`
}

// RedisConfig enables the generated content cache when Addr is set.
type RedisConfig struct {
	Addr       string `mapstructure:"addr"`
	Password   string `mapstructure:"password"`
	DB         int    `mapstructure:"db"`
	KeyPrefix  string `mapstructure:"key_prefix"`
	TTLSeconds int    `mapstructure:"ttl_seconds" validate:"gte=0"`
}

func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

type StreakConfig struct {
	Timezone string `mapstructure:"timezone" validate:"required,timezone"`
}

type TemplatesConfig struct {
	StudyPlanTemplate string `mapstructure:"study_plan_template" validate:"omitempty,file"`
}

type OutputsConfig struct {
	PlanDirectory string `mapstructure:"plan_directory"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/studysaathi")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	// A missing .env file is fine; the variables may come from the environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := loader.viper
	scoring := strength.DefaultConfig()

	v.SetDefault("env", "local")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors.allowed_origins", []string{"http://localhost:5173", "http://localhost:3000"})
	v.SetDefault("server.rate_limit.requests_per_second", 2)
	v.SetDefault("server.rate_limit.burst", 10)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "studysaathi")
	v.SetDefault("database.username", "user")
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("openai.base_url", "https://api.openai.com/v1")
	v.SetDefault("openai.max_retry_attempts", 2)
	v.SetDefault("openai.temperature", 0.7)
	v.SetDefault("redis.key_prefix", "studysaathi:")
	v.SetDefault("redis.ttl_seconds", 6*60*60)
	v.SetDefault("scoring.time_saturation_minutes", scoring.TimeSaturationMinutes)
	v.SetDefault("scoring.notes_saturation", scoring.NotesSaturation)
	v.SetDefault("scoring.default_confidence", scoring.DefaultConfidence)
	v.SetDefault("scoring.strong_threshold", scoring.StrongThreshold)
	v.SetDefault("scoring.medium_threshold", scoring.MediumThreshold)
	v.SetDefault("scoring.weights.time", scoring.Weights.Time)
	v.SetDefault("scoring.weights.notes", scoring.Weights.Notes)
	v.SetDefault("scoring.weights.confidence", scoring.Weights.Confidence)
	v.SetDefault("scoring.weights.quiz", scoring.Weights.Quiz)
	v.SetDefault("streak.timezone", "UTC")
	// Template is optional - if not specified, will use embedded fallback template
	v.SetDefault("templates.study_plan_template", "")
	v.SetDefault("outputs.plan_directory", filepath.Join("outputs", "plans"))

	bindings := map[string]string{
		"env":               "APP_ENV",
		"server.port":       "PORT",
		"openai.api_key":    "OPENAI_API_KEY",
		"openai.model":      "OPENAI_MODEL",
		"openai.base_url":   "OPENAI_BASE_URL",
		"database.password": "DB_PASSWORD",
		"redis.addr":        "REDIS_ADDR",
		"redis.password":    "REDIS_PASSWORD",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s environment variable: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}

// IsProduction reports whether the service runs in a production environment.
func (c *Config) IsProduction() bool {
	switch strings.ToLower(c.Env) {
	case "prod", "production":
		return true
	default:
		return false
	}
}
