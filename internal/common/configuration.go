/*******************************************************************************
* Copyright (C) 2026 the Eclipse BaSyx Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

// Package common provides configuration management, paging cursors
// and HTTP endpoint utilities for the BaSyx submodel template converter. It includes
// support for YAML configuration files, environment variable overrides, CORS setup,
// health endpoints, Swagger UI and the shared error helpers.
// nolint:all
package common

import (
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/viper"
)

const redacted = "****"

// PrintSplash displays the BaSyx Go ASCII art logo to the console.
// This function is typically called during application startup to provide
// visual branding and confirm the service is starting.
func PrintSplash() {
	log.Printf(`
	██████╗  █████╗ ███████╗██╗   ██╗██╗  ██╗     ██████╗  ██████╗
	██╔══██╗██╔══██╗██╔════╝╚██╗ ██╔╝╚██╗██╔╝    ██╔════╝ ██╔═══██╗
	██████╔╝███████║███████╗ ╚████╔╝  ╚███╔╝     ██║  ███╗██║   ██║
	██╔══██╗██╔══██║╚════██║  ╚██╔╝   ██╔██╗     ██║   ██║██║   ██║
	██████╔╝██║  ██║███████║   ██║   ██╔╝ ██╗    ╚██████╔╝╚██████╔╝
	╚═════╝ ╚═╝  ╚═╝╚══════╝   ╚═╝   ╚═╝  ╚═╝     ╚═════╝  ╚═════╝
	            Submodel Template Converter
	`)
}

// Config represents the complete configuration of the converter service.
type Config struct {
	Server     ServerConfig    `mapstructure:"server" json:"server"`       // HTTP server configuration
	Postgres   PostgresConfig  `mapstructure:"postgres" json:"postgres"`   // PostgreSQL database settings
	CorsConfig CorsConfig      `mapstructure:"cors" json:"cors"`           // CORS policy configuration
	OIDC       OIDCConfig      `mapstructure:"oidc" json:"oidc"`           // OpenID Connect authentication
	Converter  ConverterConfig `mapstructure:"converter" json:"converter"` // Conversion settings
	Storage    StorageConfig   `mapstructure:"storage" json:"storage"`     // Conversion store and artifacts
	Events     EventsConfig    `mapstructure:"events" json:"events"`       // Conversion notifications
	Swagger    SwaggerConfig   `mapstructure:"swagger" json:"swagger"`     // Swagger UI
}

// ServerConfig contains HTTP server configuration parameters.
type ServerConfig struct {
	Host        string `mapstructure:"host" json:"host"`               // Listen address
	Port        int    `mapstructure:"port" json:"port"`               // HTTP server port (default: 5080)
	ContextPath string `mapstructure:"contextPath" json:"contextPath"` // Base path for all endpoints

	// MaxUploadBytes limits the size of uploaded documents.
	MaxUploadBytes int64 `mapstructure:"maxUploadBytes" json:"maxUploadBytes"`
}

// PostgresConfig contains PostgreSQL database connection parameters.
// It includes connection pooling settings for optimal performance.
type PostgresConfig struct {
	Host                   string `mapstructure:"host" json:"host"`                                     // Database host address
	Port                   int    `mapstructure:"port" json:"port"`                                     // Database port (default: 5432)
	User                   string `mapstructure:"user" json:"user"`                                     // Database username
	Password               string `mapstructure:"password" json:"password"`                             // Database password
	DBName                 string `mapstructure:"dbname" json:"dbname"`                                 // Database name
	Driver                 string `mapstructure:"driver" json:"driver"`                                 // database/sql driver: postgres or pgx
	SchemaFile             string `mapstructure:"schemaFile" json:"schemaFile"`                         // Schema applied at startup
	MaxOpenConnections     int    `mapstructure:"maxOpenConnections" json:"maxOpenConnections"`         // Maximum open connections
	MaxIdleConnections     int    `mapstructure:"maxIdleConnections" json:"maxIdleConnections"`         // Maximum idle connections
	ConnMaxLifetimeMinutes int    `mapstructure:"connMaxLifetimeMinutes" json:"connMaxLifetimeMinutes"` // Connection lifetime in minutes
}

// DSN returns the connection string of the database.
func (p PostgresConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.User, p.Password),
		Host:     fmt.Sprintf("%s:%d", p.Host, p.Port),
		Path:     "/" + p.DBName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// CorsConfig contains Cross-Origin Resource Sharing (CORS) policy settings.
type CorsConfig struct {
	AllowedOrigins   []string `mapstructure:"allowedOrigins" json:"allowedOrigins"`     // Allowed origin domains
	AllowedMethods   []string `mapstructure:"allowedMethods" json:"allowedMethods"`     // Allowed HTTP methods
	AllowedHeaders   []string `mapstructure:"allowedHeaders" json:"allowedHeaders"`     // Allowed request headers
	AllowCredentials bool     `mapstructure:"allowCredentials" json:"allowCredentials"` // Allow credentials in requests
}

// OIDCConfig contains OpenID Connect authentication provider settings.
type OIDCConfig struct {
	Enabled  bool     `mapstructure:"enabled" json:"enabled"`   // Require bearer tokens on mutating endpoints
	Issuer   string   `mapstructure:"issuer" json:"issuer"`     // OIDC issuer URL
	Audience string   `mapstructure:"audience" json:"audience"` // Expected token audience
	JWKSURL  string   `mapstructure:"jwksURL" json:"jwksURL"`   // JSON Web Key Set URL
	Scopes   []string `mapstructure:"scopes" json:"scopes"`     // Scopes required on mutating endpoints
}

// ConverterConfig contains the settings of the conversion pipeline.
type ConverterConfig struct {
	NamePrefix string           `mapstructure:"namePrefix" json:"namePrefix"` // Prefix of emitted type names
	Workers    int              `mapstructure:"workers" json:"workers"`       // Parallel conversions of a batch
	LogLevel   string           `mapstructure:"logLevel" json:"logLevel"`     // DEBUG, INFO, WARN or ERROR
	VerifyAAS  bool             `mapstructure:"verifyAAS" json:"verifyAAS"`   // Verify AAS environments against the metamodel
	Heuristics HeuristicsConfig `mapstructure:"heuristics" json:"heuristics"`
}

// HeuristicsConfig switches the extraction heuristics.
type HeuristicsConfig struct {
	OrAlternatives           bool `mapstructure:"orAlternatives" json:"orAlternatives"`
	GenericFieldPairing      bool `mapstructure:"genericFieldPairing" json:"genericFieldPairing"`
	MaxSplitContinuationRows int  `mapstructure:"maxSplitContinuationRows" json:"maxSplitContinuationRows"`
	StrictHeaders            bool `mapstructure:"strictHeaders" json:"strictHeaders"`
}

// StorageConfig selects the conversion store and the artifact bucket.
type StorageConfig struct {
	Backend string      `mapstructure:"backend" json:"backend"` // memory, postgres or mongodb
	Mongo   MongoConfig `mapstructure:"mongo" json:"mongo"`
	S3      S3Config    `mapstructure:"s3" json:"s3"`
}

// MongoConfig contains the MongoDB connection settings.
type MongoConfig struct {
	URI        string `mapstructure:"uri" json:"uri"`
	Database   string `mapstructure:"database" json:"database"`
	Collection string `mapstructure:"collection" json:"collection"`
}

// S3Config contains the settings of the artifact bucket.
type S3Config struct {
	Enabled      bool   `mapstructure:"enabled" json:"enabled"`
	Bucket       string `mapstructure:"bucket" json:"bucket"`
	Region       string `mapstructure:"region" json:"region"`
	Endpoint     string `mapstructure:"endpoint" json:"endpoint"`
	AccessKey    string `mapstructure:"accessKey" json:"accessKey"`
	SecretKey    string `mapstructure:"secretKey" json:"secretKey"`
	Prefix       string `mapstructure:"prefix" json:"prefix"`
	UsePathStyle bool   `mapstructure:"usePathStyle" json:"usePathStyle"`
}

// EventsConfig contains the NATS notification settings.
type EventsConfig struct {
	Enabled bool   `mapstructure:"enabled" json:"enabled"`
	NatsURL string `mapstructure:"natsURL" json:"natsURL"`
	Subject string `mapstructure:"subject" json:"subject"`
}

// SwaggerConfig contains the Swagger UI settings.
type SwaggerConfig struct {
	Enabled   bool   `mapstructure:"enabled" json:"enabled"`
	ServerURL string `mapstructure:"serverURL" json:"serverURL"` // Server URL written into the served OpenAPI document
}

// LoadConfig loads the configuration from YAML files and environment variables.
//
// The function supports multiple configuration sources with the following precedence:
// 1. Environment variables (highest priority)
// 2. Configuration file (if provided)
// 3. Default values (lowest priority)
//
// Environment variables should use underscore notation (e.g., SERVER_PORT for server.port).
//
// Example:
//
//	config, err := LoadConfig("config/app.yaml")
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	if configPath != "" {
		log.Printf("📁 Loading config from file: %s", configPath)
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		log.Println("📁 No config file provided — loading from environment variables only")
	}

	// Override config with environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Println("✅ Configuration loaded successfully")
	PrintConfiguration(cfg)
	return cfg, nil
}

// Validate checks the values which have no usable fallback.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case "memory", "postgres", "mongodb":
	default:
		return NewErrBadRequest(fmt.Sprintf("unknown storage backend %q", c.Storage.Backend))
	}
	switch c.Postgres.Driver {
	case "postgres", "pgx":
	default:
		return NewErrBadRequest(fmt.Sprintf("unknown postgres driver %q", c.Postgres.Driver))
	}
	if c.Storage.S3.Enabled && c.Storage.S3.Bucket == "" {
		return NewErrBadRequest("storage.s3.bucket is required when S3 is enabled")
	}
	if c.OIDC.Enabled && c.OIDC.Issuer == "" {
		return NewErrBadRequest("oidc.issuer is required when OIDC is enabled")
	}
	if c.Converter.Workers < 0 {
		return NewErrBadRequest("converter.workers must not be negative")
	}
	return nil
}

// setDefaults configures sensible default values for all configuration options.
//
// Defaults allow the service to run in development environments with the in-memory
// store and without authentication, events or artifact bucket.
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5080)
	v.SetDefault("server.contextPath", "")
	v.SetDefault("server.maxUploadBytes", 32<<20)

	// PostgreSQL defaults
	v.SetDefault("postgres.host", "db")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "admin")
	v.SetDefault("postgres.password", "admin123")
	v.SetDefault("postgres.dbname", "basyxTestDB")
	v.SetDefault("postgres.driver", "postgres")
	v.SetDefault("postgres.schemaFile", "resources/sql/smtconverterschema.sql")
	v.SetDefault("postgres.maxOpenConnections", 50)
	v.SetDefault("postgres.maxIdleConnections", 50)
	v.SetDefault("postgres.connMaxLifetimeMinutes", 5)

	// CORS defaults
	v.SetDefault("cors.allowedOrigins", []string{"*"})
	v.SetDefault("cors.allowedMethods", []string{"GET", "POST", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowedHeaders", []string{"*"})
	v.SetDefault("cors.allowCredentials", true)

	v.SetDefault("oidc.enabled", false)
	v.SetDefault("oidc.issuer", "http://localhost:8080/realms/basyx")
	v.SetDefault("oidc.audience", "smtconverter-service")
	v.SetDefault("oidc.jwksURL", "")

	// Converter defaults
	v.SetDefault("converter.namePrefix", "")
	v.SetDefault("converter.workers", 4)
	v.SetDefault("converter.logLevel", "INFO")
	v.SetDefault("converter.verifyAAS", false)
	v.SetDefault("converter.heuristics.orAlternatives", true)
	v.SetDefault("converter.heuristics.genericFieldPairing", true)
	v.SetDefault("converter.heuristics.maxSplitContinuationRows", 2)
	v.SetDefault("converter.heuristics.strictHeaders", true)

	// Storage defaults
	v.SetDefault("storage.backend", "memory")
	v.SetDefault("storage.mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("storage.mongo.database", "basyx")
	v.SetDefault("storage.mongo.collection", "conversions")
	v.SetDefault("storage.s3.enabled", false)
	v.SetDefault("storage.s3.region", "us-east-1")
	v.SetDefault("storage.s3.prefix", "smtconverter/")
	v.SetDefault("storage.s3.usePathStyle", true)

	v.SetDefault("events.enabled", false)
	v.SetDefault("events.natsURL", "nats://localhost:4222")
	v.SetDefault("events.subject", "basyx.smtconverter.conversions")

	v.SetDefault("swagger.enabled", true)
	v.SetDefault("swagger.serverURL", "")
}

// PrintConfiguration prints the current configuration to the console with sensitive data redacted.
//
// The output is formatted as pretty-printed JSON with the following redactions:
//   - Database host, username, and password
//   - MongoDB URI
//   - S3 access and secret key
//   - user info of the NATS URL
func PrintConfiguration(cfg *Config) {
	// Create a copy of the config to avoid modifying the original
	cfgCopy := *cfg

	if cfg.Postgres.Host != "" {
		cfgCopy.Postgres.Host = redacted
		cfgCopy.Postgres.User = redacted
		cfgCopy.Postgres.Password = redacted
	}
	if cfg.Storage.Mongo.URI != "" {
		cfgCopy.Storage.Mongo.URI = redacted
	}
	if cfg.Storage.S3.AccessKey != "" {
		cfgCopy.Storage.S3.AccessKey = redacted
	}
	if cfg.Storage.S3.SecretKey != "" {
		cfgCopy.Storage.S3.SecretKey = redacted
	}
	cfgCopy.Events.NatsURL = redactUserInfo(cfg.Events.NatsURL)

	configJSON, err := jsoniter.MarshalIndent(cfgCopy, "", "  ")
	if err != nil {
		log.Printf("Unable to marshal configuration to JSON: %v", err)
		return
	}

	log.Printf("📜 Loaded configuration:\n%s", string(configJSON))
}

func redactUserInfo(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	u.User = url.User(redacted)
	return u.String()
}

// AddCors configures Cross-Origin Resource Sharing (CORS) middleware for the router.
//
// Example:
//
//	router := chi.NewRouter()
//	AddCors(router, config)
//	// Router now accepts cross-origin requests according to config
func AddCors(r *chi.Mux, config *Config) {
	c := cors.New(cors.Options{
		AllowedOrigins:   config.CorsConfig.AllowedOrigins,
		AllowedMethods:   config.CorsConfig.AllowedMethods,
		AllowedHeaders:   config.CorsConfig.AllowedHeaders,
		AllowCredentials: config.CorsConfig.AllowCredentials,
	})
	r.Use(c.Handler)
}
