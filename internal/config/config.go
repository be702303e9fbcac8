// Package config loads process configuration from an optional YAML file,
// a .env file and the environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FileEnv names the environment variable pointing at a YAML config file.
const FileEnv = "RESUMECLF_CONFIG"

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	Artifacts ArtifactsConfig `yaml:"artifacts"`
	R2        R2Config        `yaml:"r2"`
	RabbitMQ  RabbitMQConfig  `yaml:"rabbitmq"`
	Classify  ClassifyConfig  `yaml:"classify"`
}

type ServerConfig struct {
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	Mode           string `yaml:"mode"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ArtifactsConfig locates the model. When Bucket is set the artifacts are
// read from the R2 bucket under Prefix, otherwise from Dir.
type ArtifactsConfig struct {
	Dir    string `yaml:"dir"`
	Bucket string `yaml:"bucket"`
	Prefix string `yaml:"prefix"`
}

type R2Config struct {
	AccountID string `yaml:"account_id"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
}

// Configured reports whether enough is set to build an R2 client.
func (c R2Config) Configured() bool {
	return c.AccountID != "" && c.AccessKey != "" && c.SecretKey != ""
}

type RabbitMQConfig struct {
	URL         string `yaml:"url"`
	Queue       string `yaml:"queue"`
	Exchange    string `yaml:"exchange"`
	WorkerCount int    `yaml:"worker_count"`
}

type ClassifyConfig struct {
	MinResumeChars  int `yaml:"min_resume_chars"`
	SessionCapacity int `yaml:"session_capacity"`
}

// Defaults returns the configuration used when nothing overrides it.
func Defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Host:           "0.0.0.0",
			Port:           8080,
			Mode:           "release",
			MaxUploadBytes: 10 << 20,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Artifacts: ArtifactsConfig{
			Dir: "./artifacts",
		},
		RabbitMQ: RabbitMQConfig{
			Queue:       "analyses",
			Exchange:    "session_updates",
			WorkerCount: 3,
		},
		Classify: ClassifyConfig{
			MinResumeChars:  50,
			SessionCapacity: 1024,
		},
	}
}

// Load reads .env if present, then the YAML file named by path or by
// RESUMECLF_CONFIG, then the environment. An empty path with no
// RESUMECLF_CONFIG skips the file layer.
func Load(path ...string) (*Config, error) {
	// A missing .env is normal outside development.
	_ = godotenv.Load()

	cfg := Defaults()

	file := os.Getenv(FileEnv)
	if len(path) > 0 && path[0] != "" {
		file = path[0]
	}
	if file != "" {
		if err := cfg.loadFile(file); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	setString(&c.Server.Host, "HOST")
	setString(&c.Server.Mode, "GIN_MODE")
	setString(&c.Log.Level, "LOG_LEVEL")
	setString(&c.Log.Format, "LOG_FORMAT")
	setString(&c.Artifacts.Dir, "ARTIFACTS_DIR")
	setString(&c.Artifacts.Bucket, "ARTIFACTS_BUCKET")
	setString(&c.Artifacts.Prefix, "ARTIFACTS_PREFIX")
	setString(&c.R2.AccountID, "R2_ACCOUNT_ID")
	setString(&c.R2.AccessKey, "R2_ACCESS_KEY")
	setString(&c.R2.SecretKey, "R2_SECRET_KEY")
	setString(&c.R2.Bucket, "R2_BUCKET")
	setString(&c.RabbitMQ.URL, "RABBITMQ_URL")

	var errs []error
	errs = append(errs,
		setInt(&c.Server.Port, "PORT"),
		setInt64(&c.Server.MaxUploadBytes, "MAX_UPLOAD_BYTES"),
		setInt(&c.RabbitMQ.WorkerCount, "WORKER_COUNT"),
		setInt(&c.Classify.MinResumeChars, "MIN_RESUME_CHARS"),
		setInt(&c.Classify.SessionCapacity, "SESSION_CAPACITY"),
	)
	return errors.Join(errs...)
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server port %d out of range", c.Server.Port))
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		errs = append(errs, fmt.Errorf("unknown gin mode %q", c.Server.Mode))
	}
	if c.Server.MaxUploadBytes <= 0 {
		errs = append(errs, errors.New("max upload bytes must be positive"))
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.Log.Format))
	}
	if c.Artifacts.Dir == "" && c.Artifacts.Bucket == "" {
		errs = append(errs, errors.New("either an artifacts dir or an artifacts bucket is required"))
	}
	if c.Artifacts.Bucket != "" && !c.R2.Configured() {
		errs = append(errs, errors.New("artifacts bucket requires R2 credentials"))
	}
	if c.RabbitMQ.WorkerCount <= 0 {
		errs = append(errs, errors.New("worker count must be positive"))
	}
	if c.Classify.MinResumeChars < 0 {
		errs = append(errs, errors.New("min resume chars must not be negative"))
	}
	if c.Classify.SessionCapacity <= 0 {
		errs = append(errs, errors.New("session capacity must be positive"))
	}
	return errors.Join(errs...)
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		*dst = strings.TrimSpace(v)
	}
}

func setInt(dst *int, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

func setInt64(dst *int64, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}
