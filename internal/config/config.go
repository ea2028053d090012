package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type LLM struct {
	// Empty key switches the whole process to fallback mode.
	APIKey           string `yaml:"api_key" env:"GROQ_API_KEY"`
	BaseURL          string `yaml:"base_url" env:"GROQ_BASE_URL" env-default:"https://api.groq.com/openai/v1"`
	Model            string `yaml:"model" env:"GROQ_MODEL" env-default:"llama-3.3-70b-versatile"`
	MaxHistoryTokens int    `yaml:"max_history_tokens" env:"MAX_HISTORY_TOKENS" env-default:"6000"`
}

// Configured reports whether a model credential is present.
func (l LLM) Configured() bool {
	return l.APIKey != ""
}

type HTTP struct {
	Port           string   `yaml:"port" env:"PORT" env-default:"8080"`
	AllowedOrigins []string `yaml:"allowed_origins" env:"ALLOWED_ORIGINS" env-separator:"," env-default:"*"`
}

type RateLimit struct {
	PerMinute int    `yaml:"per_minute" env:"RATE_LIMIT_PER_MINUTE" env-default:"0"`
	RedisURL  string `yaml:"redis_url" env:"REDIS_URL"`
}

func (r RateLimit) Enabled() bool {
	return r.PerMinute > 0
}

type Log struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

type Config struct {
	HTTP      HTTP      `yaml:"http"`
	LLM       LLM       `yaml:"llm"`
	RateLimit RateLimit `yaml:"rate_limit"`
	Log       Log       `yaml:"log"`
}

// Load reads .env (if present), then an optional YAML file named by
// CONFIG_PATH, then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, errors.Wrap(err, "read env")
	}
	return &cfg, nil
}
