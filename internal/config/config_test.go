package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "LOG_LEVEL", "ARK_API_KEY", "MODEL_NAME",
		"CATALOG_BASE_URL", "REQUEST_TIMEOUT", "RETRIES", "DEV_MODE",
		"MAX_OUTFIT_SLOTS", "MODEL_TEMPERATURE", "MODEL_MAX_TOKENS",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Addr != ":8000" {
		t.Errorf("Addr %q, want :8000", cfg.Server.Addr)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel %q, want info", cfg.LogLevel)
	}
	if cfg.AI.Enabled() {
		t.Error("AI backend should be disabled without credentials")
	}
	if !cfg.Catalog.MockMode {
		t.Error("MockMode should default to true")
	}
	if cfg.Catalog.BaseURL != "https://catalog.roblox.com" {
		t.Errorf("catalog BaseURL %q", cfg.Catalog.BaseURL)
	}
	if cfg.Catalog.Timeout != 10*time.Second {
		t.Errorf("Timeout %v, want 10s", cfg.Catalog.Timeout)
	}
	if cfg.Catalog.MaxRetries != 3 {
		t.Errorf("MaxRetries %d, want 3", cfg.Catalog.MaxRetries)
	}
	if cfg.Stylist.MaxOutfitSlots != 6 {
		t.Errorf("MaxOutfitSlots %d, want 6", cfg.Stylist.MaxOutfitSlots)
	}
}

func TestLoadServerConfig(t *testing.T) {
	cases := []struct {
		port    string
		want    string
		wantErr bool
	}{
		{"", ":8000", false},
		{"9090", ":9090", false},
		{":9090", ":9090", false},
		{"127.0.0.1:9090", "127.0.0.1:9090", false},
		{"bad port", "", true},
	}

	for _, tc := range cases {
		t.Run("PORT="+tc.port, func(t *testing.T) {
			t.Setenv("PORT", tc.port)

			server, err := loadServerConfig()
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", server)
				}
				return
			}
			if err != nil {
				t.Fatalf("loadServerConfig: %v", err)
			}
			if server.Addr != tc.want {
				t.Fatalf("Addr %q, want %q", server.Addr, tc.want)
			}
		})
	}
}

func TestLoadCatalogConfigOverrides(t *testing.T) {
	t.Setenv("DEV_MODE", "false")
	t.Setenv("REQUEST_TIMEOUT", "5")
	t.Setenv("RETRIES", "1")

	catalog, err := loadCatalogConfig()
	if err != nil {
		t.Fatalf("loadCatalogConfig: %v", err)
	}
	if catalog.MockMode {
		t.Error("DEV_MODE=false should disable mock mode")
	}
	if catalog.Timeout != 5*time.Second {
		t.Errorf("Timeout %v, want 5s", catalog.Timeout)
	}
	if catalog.MaxRetries != 1 {
		t.Errorf("MaxRetries %d, want 1", catalog.MaxRetries)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct{ key, value string }{
		{"DEV_MODE", "sometimes"},
		{"RETRIES", "many"},
		{"MODEL_TEMPERATURE", "warm"},
		{"MAX_OUTFIT_SLOTS", "lots"},
	}

	for _, tc := range cases {
		t.Run(tc.key, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", tc.key, tc.value)
			}
		})
	}
}

func TestAIConfigEnabled(t *testing.T) {
	if (AIConfig{Model: "doubao"}).Enabled() {
		t.Error("model without key must not be enabled")
	}
	if (AIConfig{APIKey: "secret"}).Enabled() {
		t.Error("key without model must not be enabled")
	}
	if !(AIConfig{Model: "doubao", APIKey: "secret"}).Enabled() {
		t.Error("model plus key should be enabled")
	}
}
