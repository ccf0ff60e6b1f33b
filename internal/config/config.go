package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"gopkg.in/yaml.v3"
)

var (
	ErrMissingGatewayURL = errors.New("gateway.base_url is required")
	ErrMissingJWTSecret  = errors.New("auth.jwt_secret is required")
)

// Config is shared by both binaries; each one reads the sections it needs.
// Values come from an optional YAML file, then environment variables, then
// defaults for whatever is still unset.
type Config struct {
	Server    ServerConfig    `yaml:"server" envPrefix:"SERVER_"`
	Log       LogConfig       `yaml:"log" envPrefix:"LOG_"`
	Gateway   GatewayConfig   `yaml:"gateway" envPrefix:"GATEWAY_"`
	Orders    OrdersConfig    `yaml:"orders" envPrefix:"ORDERS_"`
	Geocoding GeocodingConfig `yaml:"geocoding" envPrefix:"GEOCODING_"`
	Auth      AuthConfig      `yaml:"auth" envPrefix:"AUTH_"`
	DynamoDB  DynamoDBConfig  `yaml:"dynamodb"`
	Users     []User          `yaml:"users"`
	SeedDemo  bool            `yaml:"seed_demo" env:"SEED_DEMO"`
}

type ServerConfig struct {
	Port int `yaml:"port" env:"PORT"`
}

type LogConfig struct {
	Level  string `yaml:"level" env:"LEVEL"`
	Format string `yaml:"format" env:"FORMAT"`
}

// GatewayConfig points the technician API at the remote REST API.
type GatewayConfig struct {
	BaseURL string        `yaml:"base_url" env:"BASE_URL"`
	Timeout time.Duration `yaml:"timeout" env:"TIMEOUT"`
}

type OrdersConfig struct {
	MinimumDurationSeconds int           `yaml:"minimum_duration_seconds" env:"MINIMUM_DURATION_SECONDS"`
	Timezone               string        `yaml:"timezone" env:"TIMEZONE"`
	NotificationTTL        time.Duration `yaml:"notification_ttl" env:"NOTIFICATION_TTL"`
}

// Location resolves Timezone; an empty value is the process local zone.
func (c OrdersConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

type GeocodingConfig struct {
	Enabled           bool          `yaml:"enabled" env:"ENABLED"`
	BaseURL           string        `yaml:"base_url" env:"BASE_URL"`
	UserAgent         string        `yaml:"user_agent" env:"USER_AGENT"`
	Email             string        `yaml:"email" env:"EMAIL"`
	Timeout           time.Duration `yaml:"timeout" env:"TIMEOUT"`
	RequestsPerSecond float64       `yaml:"requests_per_second" env:"REQUESTS_PER_SECOND"`
	Concurrency       int           `yaml:"concurrency" env:"CONCURRENCY"`
	MaxRetries        uint64        `yaml:"max_retries" env:"MAX_RETRIES"`
}

// AuthConfig holds the reference gateway session settings.
type AuthConfig struct {
	JWTSecret    string        `yaml:"jwt_secret" env:"JWT_SECRET"`
	TokenTTL     time.Duration `yaml:"token_ttl" env:"TOKEN_TTL"`
	RequestIDTTL time.Duration `yaml:"request_id_ttl" env:"REQUEST_ID_TTL"`
	// LoginPerMinute caps login attempts per client IP.
	LoginPerMinute int  `yaml:"login_per_minute" env:"LOGIN_PER_MINUTE"`
	SecureCookie   bool `yaml:"secure_cookie" env:"SECURE_COOKIE"`
}

type DynamoDBConfig struct {
	Region          string `yaml:"region" env:"AWS_REGION"`
	AccessKeyID     string `yaml:"access_key_id" env:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey string `yaml:"secret_access_key" env:"AWS_SECRET_ACCESS_KEY"`
	Endpoint        string `yaml:"endpoint" env:"DYNAMODB_ENDPOINT"`
	ServiceOrders   string `yaml:"service_orders_table" env:"SERVICE_ORDERS_TABLE"`
	Clients         string `yaml:"clients_table" env:"CLIENTS_TABLE"`
	RequestIDs      string `yaml:"request_ids_table" env:"REQUEST_IDS_TABLE"`
	CreateTables    bool   `yaml:"create_tables" env:"DYNAMODB_CREATE_TABLES"`
}

type User struct {
	ID       int64  `yaml:"id"`
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

// Load reads path (skipped when empty), overlays the environment and fills
// defaults.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	cfg.applyDefaults()
	if _, err := cfg.Orders.Location(); err != nil {
		return nil, fmt.Errorf("orders.timezone: %w", err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "json"
	}
	if c.Gateway.Timeout == 0 {
		c.Gateway.Timeout = 15 * time.Second
	}
	if c.Orders.MinimumDurationSeconds == 0 {
		c.Orders.MinimumDurationSeconds = 300
	}
	if c.Orders.NotificationTTL == 0 {
		c.Orders.NotificationTTL = 3 * time.Second
	}
	if c.Geocoding.BaseURL == "" {
		c.Geocoding.BaseURL = "https://nominatim.openstreetmap.org"
	}
	if c.Geocoding.UserAgent == "" {
		c.Geocoding.UserAgent = "fieldtech/1.0"
	}
	if c.Geocoding.Timeout == 0 {
		c.Geocoding.Timeout = 10 * time.Second
	}
	if c.Geocoding.RequestsPerSecond == 0 {
		c.Geocoding.RequestsPerSecond = 1
	}
	if c.Geocoding.Concurrency == 0 {
		c.Geocoding.Concurrency = 2
	}
	if c.Geocoding.MaxRetries == 0 {
		c.Geocoding.MaxRetries = 3
	}
	if c.Auth.TokenTTL == 0 {
		c.Auth.TokenTTL = 12 * time.Hour
	}
	if c.Auth.RequestIDTTL == 0 {
		c.Auth.RequestIDTTL = 24 * time.Hour
	}
	if c.Auth.LoginPerMinute == 0 {
		c.Auth.LoginPerMinute = 10
	}
	if c.DynamoDB.Region == "" {
		c.DynamoDB.Region = "us-east-1"
	}
	// Local DynamoDB ignores credentials but the SDK requires some.
	if c.DynamoDB.AccessKeyID == "" {
		c.DynamoDB.AccessKeyID = "local"
	}
	if c.DynamoDB.SecretAccessKey == "" {
		c.DynamoDB.SecretAccessKey = "local"
	}
	if c.DynamoDB.ServiceOrders == "" {
		c.DynamoDB.ServiceOrders = "service_orders"
	}
	if c.DynamoDB.Clients == "" {
		c.DynamoDB.Clients = "clients"
	}
	if c.DynamoDB.RequestIDs == "" {
		c.DynamoDB.RequestIDs = "request_ids"
	}
}

// ValidateAPI checks what the technician API cannot start without.
func (c *Config) ValidateAPI() error {
	if c.Gateway.BaseURL == "" {
		return ErrMissingGatewayURL
	}
	return nil
}

// ValidateGateway checks what the reference gateway cannot start without.
func (c *Config) ValidateGateway() error {
	if c.Auth.JWTSecret == "" {
		return ErrMissingJWTSecret
	}
	return nil
}

// FindUser finds a user by email.
func (c *Config) FindUser(email string) *User {
	for i := range c.Users {
		if c.Users[i].Email == email {
			return &c.Users[i]
		}
	}
	return nil
}
