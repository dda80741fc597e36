package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:nudger.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Auth AuthConfig `yaml:"auth" json:"auth" jsonschema:"description=Viewer authentication and authorization"`

	Subjects []SubjectConfig `yaml:"subjects" json:"subjects" jsonschema:"description=Tracked subjects registered at startup"`
}

// AuthConfig holds viewer authentication settings
type AuthConfig struct {
	Secret      string              `yaml:"secret" json:"secret" jsonschema:"description=HS256 signing secret for viewer tokens (can use environment variable)"`
	DebugHeader bool                `yaml:"debug_header" json:"debug_header" jsonschema:"default=false,description=Accept X-Nudger-Viewer header instead of a token, development only"`
	Viewers     map[string][]string `yaml:"viewers" json:"viewers" jsonschema:"description=Viewer id to authorization levels held"`
}

// SubjectConfig holds one tracked subject declaration
type SubjectConfig struct {
	Slug           string        `yaml:"slug" json:"slug" jsonschema:"required,description=Unique subject identifier"`
	Name           string        `yaml:"name" json:"name" jsonschema:"required,description=Display name"`
	Prefix         string        `yaml:"prefix" json:"prefix" jsonschema:"description=Storage key prefix, derived from slug when empty"`
	SnoozeInterval time.Duration `yaml:"snooze_interval" json:"snooze_interval" jsonschema:"default=168h,description=Base duration for the initial threshold and the later extension"`
	Screens        []string      `yaml:"screens" json:"screens" jsonschema:"description=Allowed viewing contexts, empty means unrestricted"`
	RequiredLevel  string        `yaml:"required_level" json:"required_level" jsonschema:"default=admin,description=Authorization level required to see the nudge"`
	Classes        string        `yaml:"classes" json:"classes" jsonschema:"description=Extra presentation classes"`
	Message        string        `yaml:"message" json:"message" jsonschema:"description=Nudge message text, limited HTML allowed"`
	ReviewLabel    string        `yaml:"review_label" json:"review_label" jsonschema:"description=Label for the review link, empty suppresses it"`
	LaterLabel     string        `yaml:"later_label" json:"later_label" jsonschema:"description=Label for the snooze action, empty suppresses it"`
	DismissLabel   string        `yaml:"dismiss_label" json:"dismiss_label" jsonschema:"description=Label for the dismiss action, empty suppresses it"`
	TextDomain     string        `yaml:"text_domain" json:"text_domain" jsonschema:"description=Translation text domain, cosmetic"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:nudger.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	// validate auth config
	if cfg.Auth.Secret == "" && !cfg.Auth.DebugHeader {
		return fmt.Errorf("auth.secret is required unless auth.debug_header is enabled")
	}

	// validate subjects, empty slug or name is legal (the subject stays
	// inert) but negative intervals and duplicate slugs are config mistakes
	seen := map[string]bool{}
	for i, subj := range cfg.Subjects {
		if subj.SnoozeInterval < 0 {
			return fmt.Errorf("subjects[%d]: snooze_interval must not be negative", i)
		}
		if subj.Slug != "" && seen[subj.Slug] {
			return fmt.Errorf("subjects[%d]: duplicate slug %q", i, subj.Slug)
		}
		seen[subj.Slug] = true
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetAuthConfig returns viewer authentication configuration
func (c *Config) GetAuthConfig() AuthConfig {
	return c.Auth
}

// GetSubjects returns the configured subjects
func (c *Config) GetSubjects() []SubjectConfig {
	return c.Subjects
}
