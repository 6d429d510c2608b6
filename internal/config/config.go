// Package config loads application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/caarlos0/env/v9"
	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the service.
// It is built once at startup and must not be mutated afterwards.
type Config struct {
	Host   string `env:"HOST" envDefault:"0.0.0.0"`
	Port   string `env:"PORT" envDefault:"80"`
	AppEnv string `env:"APP_ENV" envDefault:"development"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"https://yuri.localhost.com,https://yuri.iqiyi.com"`
	MaxUploadSize      int64    `env:"MAX_UPLOAD_SIZE" envDefault:"10485760"`

	// Doubao (Volcengine Ark) image generation
	DoubaoAPIKey  string `env:"DOUBAO_API_KEY"`
	DoubaoBaseURL string `env:"DOUBAO_BASE_URL" envDefault:"https://ark.cn-beijing.volces.com/api/v3/images/generations"`
	DoubaoModel   string `env:"DOUBAO_MODEL" envDefault:"doubao-seedream-4-0-250828"`

	// DeepSeek chat completions
	DeepSeekAPIKey  string `env:"DEEPSEEK_API_KEY"`
	DeepSeekBaseURL string `env:"DEEPSEEK_BASE_URL" envDefault:"https://api.deepseek.com/chat/completions"`
	DeepSeekModel   string `env:"DEEPSEEK_MODEL" envDefault:"deepseek-chat"`

	// Object storage (Volcengine TOS). TOSEndpoint is the public host used to
	// build object URLs; TOSS3Endpoint is the S3-compatible API host.
	TOSAccessKey  string `env:"TOS_ACCESS_KEY"`
	TOSSecretKey  string `env:"TOS_SECRET_KEY"`
	TOSEndpoint   string `env:"TOS_ENDPOINT" envDefault:"tos-cn-beijing.volces.com"`
	TOSS3Endpoint string `env:"TOS_S3_ENDPOINT" envDefault:"tos-s3-cn-beijing.volces.com"`
	TOSRegion     string `env:"TOS_REGION" envDefault:"cn-beijing"`
	TOSBucketName string `env:"TOS_BUCKET_NAME"`
}

var (
	once    sync.Once
	current *Config
	loadErr error
)

// Load reads configuration from a .env file (if present) and environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading from environment")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}
	return cfg, nil
}

// Get returns the process-wide configuration, loading it on first use.
func Get() (*Config, error) {
	once.Do(func() {
		current, loadErr = Load()
	})
	return current, loadErr
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

// StorageMissing reports every storage setting needed to upload into bucket
// that is not configured. It returns nil when uploads can proceed.
func (c *Config) StorageMissing(bucket string) error {
	var result *multierror.Error
	if c.TOSAccessKey == "" {
		result = multierror.Append(result, errors.New("TOS_ACCESS_KEY"))
	}
	if c.TOSSecretKey == "" {
		result = multierror.Append(result, errors.New("TOS_SECRET_KEY"))
	}
	if bucket == "" {
		result = multierror.Append(result, errors.New("TOS_BUCKET_NAME"))
	}
	if result == nil {
		return nil
	}
	result.ErrorFormat = func(errs []error) string {
		names := make([]string, len(errs))
		for i, err := range errs {
			names[i] = err.Error()
		}
		return fmt.Sprintf("TOS configuration missing: %v", names)
	}
	return result
}
