package gemini

import (
	"log/slog"
	"net/http"
	"os"
	"time"
)

// Config for the analyze-endpoint client.
type Config struct {
	URL     string        // full endpoint URL; falls back to env ANALYZE_URL
	APIKey  string        // optional; sent as x-goog-api-key when set
	Timeout time.Duration // http client timeout
}

// Client sends purchase-order documents to the remote multimodal extraction
// endpoint and decodes the loosely-shaped response into POFields.
type Client struct {
	cfg Config
	hc  *http.Client
	log *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.URL == "" {
		cfg.URL = os.Getenv("ANALYZE_URL")
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("ANALYZE_API_KEY")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg: cfg,
		hc:  &http.Client{Timeout: cfg.Timeout},
		log: logger,
	}
}
