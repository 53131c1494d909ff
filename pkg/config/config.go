package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const (
	AppName    = "LyricsTranslator"
	ConfigName = "config.toml"
)

// AppConfig represents the persistent application configuration.
type AppConfig struct {
	LLM       LLMConfig       `toml:"llm"`
	Translate TranslateConfig `toml:"translate"`
	Memory    MemoryConfig    `toml:"memory"`
}

// LLMConfig configures the remote chat-completion engine.
type LLMConfig struct {
	BaseURL string `toml:"base_url"`
	APIKey  string `toml:"api_key"`
	Model   string `toml:"model"`
}

// TranslateConfig holds default engine and target language selections.
type TranslateConfig struct {
	Engine   string `toml:"engine"`
	Language string `toml:"language"`
}

// MemoryConfig configures the optional translation-memory cache.
// Disabled by default; when enabled, results are reused across runs.
type MemoryConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		LLM: LLMConfig{
			BaseURL: "https://open.bigmodel.cn/api/paas/v4",
			APIKey:  os.Getenv("GLM_API_KEY"),
			Model:   "glm-4-flash",
		},
		Translate: TranslateConfig{
			Engine:   "GLM-4-Flash",
			Language: "Chinese",
		},
		Memory: MemoryConfig{
			Enabled: false,
		},
	}
}

// Path returns the full path to the configuration file, creating the
// configuration directory if needed.
func Path() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}

	appConfigDir := filepath.Join(configDir, AppName)
	if err := os.MkdirAll(appConfigDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config dir: %w", err)
	}

	return filepath.Join(appConfigDir, ConfigName), nil
}

// Load reads the configuration from the config file. If the file does not
// exist the defaults are returned.
func Load() (*AppConfig, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return loadFrom(path)
}

// Save writes the configuration to the config file.
func Save(cfg *AppConfig) error {
	path, err := Path()
	if err != nil {
		return err
	}
	return saveTo(path, cfg)
}

func loadFrom(path string) (*AppConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

func saveTo(path string, cfg *AppConfig) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// 0600: the file carries the API key
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
