package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Deployment DeploymentConfig `yaml:"deployment"`
	Auth       AuthConfig       `yaml:"auth"`
	Log        LogConfig        `yaml:"log"`
	DynamoDB   DynamoDBConfig   `yaml:"dynamodb"`
	Minio      MinioConfig      `yaml:"minio"`
	Redis      RedisConfig      `yaml:"redis"`
	Ledger     LedgerConfig     `yaml:"ledger"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

// DeploymentConfig identifies the municipal deployment (e.g. Jashpur, Raipur).
type DeploymentConfig struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

type AuthConfig struct {
	JWTSecret        string `yaml:"jwt_secret"`
	TokenExpireHours int    `yaml:"token_expire_hours"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type DynamoDBConfig struct {
	Region          string `yaml:"region"`
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	ProposalsTable  string `yaml:"proposals_table"`
	UsersTable      string `yaml:"users_table"`
	CountersTable   string `yaml:"counters_table"`
}

type MinioConfig struct {
	Endpoint   string `yaml:"endpoint"`
	AccessKey  string `yaml:"access_key"`
	SecretKey  string `yaml:"secret_key"`
	Bucket     string `yaml:"bucket"`
	Region     string `yaml:"region"`
	UseSSL     bool   `yaml:"use_ssl"`
	ExpireDays int    `yaml:"expire_days"`
}

type RedisConfig struct {
	Addr       string `yaml:"addr"`
	Password   string `yaml:"password"`
	DB         int    `yaml:"db"`
	TTLMinutes int    `yaml:"ttl_minutes"`
}

type LedgerConfig struct {
	// MaxUpdateAttempts bounds the read-modify-write retries on version conflicts.
	MaxUpdateAttempts int `yaml:"max_update_attempts"`
	// EnforceCeilingOnProgress applies the sanctioned-amount ceiling to
	// installments recorded through a progress update.
	EnforceCeilingOnProgress *bool `yaml:"enforce_ceiling_on_progress"`
}

// CeilingOnProgress reports whether progress-update installments are ceiling checked.
func (l LedgerConfig) CeilingOnProgress() bool {
	return l.EnforceCeilingOnProgress == nil || *l.EnforceCeilingOnProgress
}

// Load reads the YAML file at path (a missing file is fine), applies
// environment overrides and fills defaults.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, err
			}
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, err
		}
	}

	applyEnv(&cfg)
	applyDefaults(&cfg)
	return &cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Server.Port = getenvInt("PORT", cfg.Server.Port)
	cfg.Deployment.Code = getenvDefault("DEPLOYMENT_CODE", cfg.Deployment.Code)
	cfg.Deployment.Name = getenvDefault("DEPLOYMENT_NAME", cfg.Deployment.Name)

	cfg.Auth.JWTSecret = getenvDefault("JWT_SECRET", cfg.Auth.JWTSecret)
	cfg.Auth.TokenExpireHours = getenvInt("TOKEN_EXPIRE_HOURS", cfg.Auth.TokenExpireHours)

	cfg.Log.Level = getenvDefault("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = getenvDefault("LOG_FORMAT", cfg.Log.Format)

	cfg.DynamoDB.Region = getenvDefault("AWS_REGION", cfg.DynamoDB.Region)
	cfg.DynamoDB.Endpoint = getenvDefault("DYNAMODB_ENDPOINT", cfg.DynamoDB.Endpoint)
	cfg.DynamoDB.AccessKeyID = getenvDefault("AWS_ACCESS_KEY_ID", cfg.DynamoDB.AccessKeyID)
	cfg.DynamoDB.SecretAccessKey = getenvDefault("AWS_SECRET_ACCESS_KEY", cfg.DynamoDB.SecretAccessKey)
	cfg.DynamoDB.ProposalsTable = getenvDefault("PROPOSALS_TABLE", cfg.DynamoDB.ProposalsTable)
	cfg.DynamoDB.UsersTable = getenvDefault("USERS_TABLE", cfg.DynamoDB.UsersTable)
	cfg.DynamoDB.CountersTable = getenvDefault("COUNTERS_TABLE", cfg.DynamoDB.CountersTable)

	cfg.Minio.Endpoint = getenvDefault("MINIO_ENDPOINT", cfg.Minio.Endpoint)
	cfg.Minio.AccessKey = getenvDefault("MINIO_ACCESS_KEY", cfg.Minio.AccessKey)
	cfg.Minio.SecretKey = getenvDefault("MINIO_SECRET_KEY", cfg.Minio.SecretKey)
	cfg.Minio.Bucket = getenvDefault("MINIO_BUCKET", cfg.Minio.Bucket)
	cfg.Minio.Region = getenvDefault("MINIO_REGION", cfg.Minio.Region)
	cfg.Minio.UseSSL = getenvBool("MINIO_USE_SSL", cfg.Minio.UseSSL)

	cfg.Redis.Addr = getenvDefault("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = getenvDefault("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = getenvInt("REDIS_DB", cfg.Redis.DB)

	cfg.Ledger.MaxUpdateAttempts = getenvInt("LEDGER_MAX_UPDATE_ATTEMPTS", cfg.Ledger.MaxUpdateAttempts)
	if v, ok := os.LookupEnv("LEDGER_ENFORCE_CEILING_ON_PROGRESS"); ok && strings.TrimSpace(v) != "" {
		b := parseBool(v)
		cfg.Ledger.EnforceCeilingOnProgress = &b
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Deployment.Code == "" {
		cfg.Deployment.Code = "JSP"
	}
	if cfg.Deployment.Name == "" {
		cfg.Deployment.Name = "Jashpur"
	}
	if cfg.Auth.TokenExpireHours == 0 {
		cfg.Auth.TokenExpireHours = 24
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
	if cfg.DynamoDB.Region == "" {
		cfg.DynamoDB.Region = "us-east-1"
	}
	if cfg.DynamoDB.ProposalsTable == "" {
		cfg.DynamoDB.ProposalsTable = "work_proposals"
	}
	if cfg.DynamoDB.UsersTable == "" {
		cfg.DynamoDB.UsersTable = "users"
	}
	if cfg.DynamoDB.CountersTable == "" {
		cfg.DynamoDB.CountersTable = "counters"
	}
	if cfg.Minio.Bucket == "" {
		cfg.Minio.Bucket = "nirman-documents"
	}
	if cfg.Minio.Region == "" {
		cfg.Minio.Region = "us-east-1"
	}
	if cfg.Minio.ExpireDays == 0 {
		cfg.Minio.ExpireDays = 7
	}
	if cfg.Redis.TTLMinutes == 0 {
		cfg.Redis.TTLMinutes = 10
	}
	if cfg.Ledger.MaxUpdateAttempts <= 0 {
		cfg.Ledger.MaxUpdateAttempts = 3
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getenvBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return parseBool(v)
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
