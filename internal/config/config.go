package config

import (
	"log"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv         = "NEWSLENS_CONFIG"
	newsAPIKeyEnv         = "NEWSAPI_KEY"
	geminiAPIKeyEnv       = "GEMINI_API_KEY"
	realSummarizationEnv  = "ENABLE_REAL_SUMMARIZATION"
	debateFormatEnv       = "ENABLE_DEBATE_FORMAT"
	realVerificationEnv   = "ENABLE_REAL_VERIFICATION"
	logLevelEnv           = "LOG_LEVEL"
	portEnv               = "PORT"
	geminiKeyPlaceholder  = "your_gemini_key_here"
	newsAPIKeyPlaceholder = "your_newsapi_key_here"
)

// Config holds high-level settings required across the application.
type Config struct {
	Server   ServerConfig  `yaml:"server"`
	Logging  LoggingConfig `yaml:"logging"`
	NewsAPI  NewsAPIConfig `yaml:"newsapi"`
	Gemini   GeminiConfig  `yaml:"gemini"`
	Features FeatureFlags  `yaml:"features"`
}

// ServerConfig describes the inbound HTTP listener.
type ServerConfig struct {
	Port        string `yaml:"port"`
	Environment string `yaml:"environment"`
}

// LoggingConfig selects console log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// NewsAPIConfig defines how to contact the article search provider.
type NewsAPIConfig struct {
	Name     string        `yaml:"name"`
	APIKey   string        `yaml:"apiKey"`
	BaseURL  string        `yaml:"baseUrl"`
	PageSize int           `yaml:"pageSize"`
	Timeout  time.Duration `yaml:"timeout"`
}

// Configured reports whether the provider carries a usable credential.
func (n NewsAPIConfig) Configured() bool {
	return n.APIKey != "" && n.APIKey != newsAPIKeyPlaceholder
}

// GeminiConfig defines how to contact the LLM provider.
type GeminiConfig struct {
	APIKey          string        `yaml:"apiKey"`
	BaseURL         string        `yaml:"baseUrl"`
	Model           string        `yaml:"model"`
	Timeout         time.Duration `yaml:"timeout"`
	Temperature     float64       `yaml:"temperature"`
	MaxOutputTokens int           `yaml:"maxOutputTokens"`
}

// Configured reports whether a real credential is present. The documented
// placeholder value counts as unconfigured.
func (g GeminiConfig) Configured() bool {
	return g.APIKey != "" && g.APIKey != geminiKeyPlaceholder
}

// FeatureFlags gate mock vs. live behavior. Flags are read once at load time
// and fixed for the process lifetime.
type FeatureFlags struct {
	RealSummarization bool `yaml:"realSummarization"`
	EnhancedDebate    bool `yaml:"enhancedDebate"`
	RealVerification  bool `yaml:"realVerification"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(newsAPIKeyEnv); v != "" {
		c.NewsAPI.APIKey = v
	}
	if v := os.Getenv(geminiAPIKeyEnv); v != "" {
		c.Gemini.APIKey = v
	}
	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(portEnv); v != "" {
		c.Server.Port = v
	}

	if _, ok := os.LookupEnv(realSummarizationEnv); ok {
		c.Features.RealSummarization = FlagEnabled(os.Getenv(realSummarizationEnv))
	}
	if _, ok := os.LookupEnv(debateFormatEnv); ok {
		c.Features.EnhancedDebate = FlagEnabled(os.Getenv(debateFormatEnv))
	}
	if _, ok := os.LookupEnv(realVerificationEnv); ok {
		c.Features.RealVerification = FlagEnabled(os.Getenv(realVerificationEnv))
	}
}

// FlagEnabled parses a feature-flag literal. Only case-insensitive
// {true,1,yes,on} count as enabled; anything else, including absence, is off.
func FlagEnabled(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes", "on":
		return true
	default:
		return false
	}
}

func mergeConfig(base, override Config) Config {
	if override.Server.Port != "" {
		base.Server.Port = override.Server.Port
	}
	if override.Server.Environment != "" {
		base.Server.Environment = override.Server.Environment
	}
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	if override.NewsAPI.Name != "" {
		base.NewsAPI.Name = override.NewsAPI.Name
	}
	if override.NewsAPI.APIKey != "" {
		base.NewsAPI.APIKey = override.NewsAPI.APIKey
	}
	if override.NewsAPI.BaseURL != "" {
		base.NewsAPI.BaseURL = override.NewsAPI.BaseURL
	}
	if override.NewsAPI.PageSize != 0 {
		base.NewsAPI.PageSize = override.NewsAPI.PageSize
	}
	if override.NewsAPI.Timeout != 0 {
		base.NewsAPI.Timeout = override.NewsAPI.Timeout
	}

	if override.Gemini.APIKey != "" {
		base.Gemini.APIKey = override.Gemini.APIKey
	}
	if override.Gemini.BaseURL != "" {
		base.Gemini.BaseURL = override.Gemini.BaseURL
	}
	if override.Gemini.Model != "" {
		base.Gemini.Model = override.Gemini.Model
	}
	if override.Gemini.Timeout != 0 {
		base.Gemini.Timeout = override.Gemini.Timeout
	}
	if override.Gemini.Temperature != 0 {
		base.Gemini.Temperature = override.Gemini.Temperature
	}
	if override.Gemini.MaxOutputTokens != 0 {
		base.Gemini.MaxOutputTokens = override.Gemini.MaxOutputTokens
	}

	base.Features = override.Features

	return base
}

func defaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:        "8080",
			Environment: "development",
		},
		Logging: LoggingConfig{Level: "info"},
		NewsAPI: NewsAPIConfig{
			Name:     "NewsAPI.org",
			APIKey:   "",
			BaseURL:  "https://newsapi.org/v2",
			PageSize: 20,
			Timeout:  8 * time.Second,
		},
		Gemini: GeminiConfig{
			APIKey:          "",
			BaseURL:         "https://generativelanguage.googleapis.com/v1beta/models",
			Model:           "gemini-1.5-flash",
			Timeout:         12 * time.Second,
			Temperature:     0.7,
			MaxOutputTokens: 1500,
		},
		Features: FeatureFlags{},
	}
}
