package config

import (
	"os"
	"strconv"
	"time"
)

// Config is the service configuration, read from the environment.
type Config struct {
	Port        string
	DatasetPath string
	Environment string
	LogLevel    string
	DemoLimit   int

	Sentiment SentimentConfig
}

// SentimentConfig configures the downstream sentiment hand-off.
type SentimentConfig struct {
	GatewayURL   string        `json:"gateway_url"`
	APIKey       string        `json:"-"`
	Model        string        `json:"model"`
	UseMock      bool          `json:"use_mock"`
	HTTPTimeout  time.Duration `json:"http_timeout"`
	MaxRetryTime time.Duration `json:"max_retry_time"`
}

// Enabled reports whether sentiment analysis can run.
func (c SentimentConfig) Enabled() bool {
	return c.UseMock || (c.GatewayURL != "" && c.APIKey != "")
}

func Load() Config {
	return Config{
		Port:        envOr("PORT", "8080"),
		DatasetPath: envOr("DATASET_PATH", "survey_responses.xlsx"),
		Environment: os.Getenv("ENVIRONMENT"),
		LogLevel:    os.Getenv("LOG_LEVEL"),
		DemoLimit:   envInt("DEMO_LIMIT", 5),
		Sentiment: SentimentConfig{
			GatewayURL:   os.Getenv("LLM_GATEWAY_URL"),
			APIKey:       os.Getenv("LLM_API_KEY"),
			Model:        os.Getenv("LLM_MODEL"),
			UseMock:      os.Getenv("USE_MOCK_LLM") == "true",
			HTTPTimeout:  time.Duration(envInt("SENTIMENT_TIMEOUT_SEC", 25)) * time.Second,
			MaxRetryTime: time.Duration(envInt("SENTIMENT_MAX_RETRY_SEC", 45)) * time.Second,
		},
	}
}

// SentimentEnabled reports whether the sentiment hand-off is usable.
func (c Config) SentimentEnabled() bool { return c.Sentiment.Enabled() }

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
