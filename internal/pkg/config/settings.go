package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DatabaseSettings holds configuration for the database connection
type DatabaseSettings struct {
	Type string `mapstructure:"type" validate:"required,oneof=sqlite postgres"`
	DSN  string `mapstructure:"dsn" validate:"required"`
	Name string `mapstructure:"name"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}
	return nil
}

// SMTPSettings holds configuration for outbound email delivery
type SMTPSettings struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from" validate:"omitempty,email"`
}

// Validate checks that all fields in SMTPSettings are valid
func (s *SMTPSettings) Validate() error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for SMTPSettings: %w", err)
	}
	if s.Host != "" && (s.Port < 1 || s.Port > 65535) {
		return fmt.Errorf("smtp port must be between 1 and 65535")
	}
	return nil
}

// AnthropicSettings holds configuration for the Anthropic Messages API
type AnthropicSettings struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model" validate:"required"`
}

// OpenAISettings holds configuration for the OpenAI transcription API
type OpenAISettings struct {
	APIKey string `mapstructure:"api_key"`
}

// AuthSettings holds lifetimes for sessions and one-time codes
type AuthSettings struct {
	SessionExpireDays  int `mapstructure:"session_expire_days" validate:"required,min=1,max=365"`
	CodeExpireMinutes  int `mapstructure:"code_expire_minutes" validate:"required,min=1,max=1440"`
	PruneIntervalHours int `mapstructure:"prune_interval_hours" validate:"required,min=1,max=168"`
}

// ServerConfig holds the complete configuration for the API server
type ServerConfig struct {
	Port      string            `mapstructure:"port" validate:"required"`
	StaticDir string            `mapstructure:"static_dir"`
	Database  DatabaseSettings  `mapstructure:"database"`
	Logger    LoggerSettings    `mapstructure:"logger"`
	SMTP      SMTPSettings      `mapstructure:"smtp"`
	Anthropic AnthropicSettings `mapstructure:"anthropic"`
	OpenAI    OpenAISettings    `mapstructure:"openai"`
	Auth      AuthSettings      `mapstructure:"auth"`
}

// Validate checks that the server configuration is complete and consistent
func (c *ServerConfig) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for ServerConfig: %w", err)
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.SMTP.Validate(); err != nil {
		return err
	}
	return nil
}

// InitializeServerConfig loads the server configuration from a YAML file with
// environment variable overrides. A .env file in the working directory is
// loaded first when present, so container and local runs share the same
// override mechanism (e.g. ANTHROPIC_API_KEY, SMTP_PASSWORD, DATABASE_DSN).
func InitializeServerConfig(configPath string) (*ServerConfig, error) {
	// Missing .env is not an error; environment variables may come from the runtime.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(configPath)

	v.SetDefault("port", "8000")
	v.SetDefault("static_dir", "./static")
	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "/app/data/scribe.db")
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("anthropic.model", "claude-sonnet-4-20250514")
	v.SetDefault("auth.session_expire_days", 30)
	v.SetDefault("auth.code_expire_minutes", 15)
	v.SetDefault("auth.prune_interval_hours", 1)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg ServerConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
