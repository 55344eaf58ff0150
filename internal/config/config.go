package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	LLM      LLMConfig
	Server   ServerConfig
	Database DatabaseConfig
}

// LLMConfig holds the Perplexity API configuration
type LLMConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
}

// ServerConfig holds the HTTP server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// DatabaseConfig holds the session database configuration
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// Load reads config.yaml if present, then environment variables (a local
// .env file is honored). Environment wins over the file.
func Load() (*Config, error) {
	_ = godotenv.Load() // best effort, env vars may come from elsewhere

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("llm.base_url", "https://api.perplexity.ai")
	v.SetDefault("llm.model", "sonar")
	v.SetDefault("server.host", "")
	v.SetDefault("server.port", "8080")
	v.SetDefault("database.path", "advisor-session.db")

	_ = v.BindEnv("llm.api_key", "PERPLEXITY_API_KEY")
	_ = v.BindEnv("llm.base_url", "PERPLEXITY_BASE_URL")
	_ = v.BindEnv("llm.model", "PERPLEXITY_MODEL")
	_ = v.BindEnv("server.port", "HTTP_PORT")
	_ = v.BindEnv("database.path", "ADVISOR_DB")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
