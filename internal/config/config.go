package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"
)

// Config aggregates all service configuration.
type Config struct {
	Server   ServerConfig
	AI       AIConfig
	Catalog  CatalogConfig
	Stylist  StylistConfig
	LogLevel string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	catalog, err := loadCatalogConfig()
	if err != nil {
		return nil, err
	}

	stylist, err := loadStylistConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server:   server,
		AI:       ai,
		Catalog:  catalog,
		Stylist:  stylist,
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
	}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8000"
	}

	if strings.Contains(port, ":") {
		// Accept ":8000" or "127.0.0.1:8000" verbatim.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// AIConfig describes the classifier model backend.
type AIConfig struct {
	APIKey      string
	Model       string
	BaseURL     string
	Region      string
	Temperature *float64
	MaxTokens   *int
}

// Enabled reports whether the model backend is configured. The service
// runs fine without it; classification falls back to rules.
func (c AIConfig) Enabled() bool {
	return c.Model != "" && c.APIKey != ""
}

// NewChatModel creates the configured chat model instance.
func (c AIConfig) NewChatModel(ctx context.Context) (model.ChatModel, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("model backend not configured: set ARK_API_KEY and MODEL_NAME")
	}

	var temperature *float32
	if c.Temperature != nil {
		val := float32(*c.Temperature)
		temperature = &val
	}

	cfg := &ark.ChatModelConfig{
		BaseURL:     c.BaseURL,
		Region:      c.Region,
		APIKey:      c.APIKey,
		Model:       c.Model,
		MaxTokens:   c.MaxTokens,
		Temperature: temperature,
	}

	return ark.NewChatModel(ctx, cfg)
}

func loadAIConfig() (AIConfig, error) {
	temperature, err := parseOptionalFloatEnv("MODEL_TEMPERATURE")
	if err != nil {
		return AIConfig{}, err
	}

	maxTokens, err := parseOptionalIntEnv("MODEL_MAX_TOKENS")
	if err != nil {
		return AIConfig{}, err
	}

	return AIConfig{
		APIKey:      strings.TrimSpace(os.Getenv("ARK_API_KEY")),
		Model:       strings.TrimSpace(os.Getenv("MODEL_NAME")),
		BaseURL:     getEnvOrDefault("ARK_BASE_URL", "https://ark.cn-beijing.volces.com/api/v3"),
		Region:      getEnvOrDefault("ARK_REGION", "cn-beijing"),
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}, nil
}

// CatalogConfig describes the external catalog dependency.
type CatalogConfig struct {
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	InitialBackoff time.Duration
	// MockMode serves deterministic canned items instead of calling
	// the live catalog.
	MockMode bool
}

func loadCatalogConfig() (CatalogConfig, error) {
	mock, err := parseBoolEnv("DEV_MODE", true)
	if err != nil {
		return CatalogConfig{}, err
	}

	timeoutSeconds := 10
	if override, err := parseOptionalIntEnv("REQUEST_TIMEOUT"); err != nil {
		return CatalogConfig{}, err
	} else if override != nil && *override > 0 {
		timeoutSeconds = *override
	}

	retries := 3
	if override, err := parseOptionalIntEnv("RETRIES"); err != nil {
		return CatalogConfig{}, err
	} else if override != nil && *override >= 0 {
		retries = *override
	}

	return CatalogConfig{
		BaseURL:        getEnvOrDefault("CATALOG_BASE_URL", "https://catalog.roblox.com"),
		Timeout:        time.Duration(timeoutSeconds) * time.Second,
		MaxRetries:     retries,
		InitialBackoff: 200 * time.Millisecond,
		MockMode:       mock,
	}, nil
}

// StylistConfig tunes outfit assembly.
type StylistConfig struct {
	MaxOutfitSlots int
}

func loadStylistConfig() (StylistConfig, error) {
	maxSlots := 6
	if override, err := parseOptionalIntEnv("MAX_OUTFIT_SLOTS"); err != nil {
		return StylistConfig{}, err
	} else if override != nil && *override > 0 {
		maxSlots = *override
	}

	return StylistConfig{MaxOutfitSlots: maxSlots}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}

func parseOptionalFloatEnv(key string) (*float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
