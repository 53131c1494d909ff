package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"lyrictranslator/pkg/config"
	"lyrictranslator/pkg/engine"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage stored settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		path, err := config.Path()
		if err != nil {
			return err
		}

		fmt.Printf("config file:    %s\n", path)
		fmt.Printf("engine:         %s\n", cfg.Translate.Engine)
		fmt.Printf("language:       %s\n", cfg.Translate.Language)
		fmt.Printf("base_url:       %s\n", cfg.LLM.BaseURL)
		fmt.Printf("model:          %s\n", cfg.LLM.Model)
		fmt.Printf("api_key:        %s\n", maskKey(cfg.LLM.APIKey))
		fmt.Printf("memory.enabled: %t\n", cfg.Memory.Enabled)
		if cfg.Memory.Path != "" {
			fmt.Printf("memory.path:    %s\n", cfg.Memory.Path)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Update one setting",
	Long: `Update one setting and persist it.

Keys: api_key, base_url, model, engine, language, memory.enabled, memory.path`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		key, value := args[0], args[1]
		switch key {
		case "api_key":
			cfg.LLM.APIKey = strings.TrimSpace(value)
		case "base_url":
			cfg.LLM.BaseURL = value
		case "model":
			cfg.LLM.Model = value
		case "engine":
			found := false
			for _, id := range engine.IDs() {
				if id == value {
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("unknown engine %q (choose one of: %s)",
					value, strings.Join(engine.IDs(), ", "))
			}
			cfg.Translate.Engine = value
		case "language":
			lang, ok := engine.CanonicalLanguage(value)
			if !ok {
				return fmt.Errorf("unsupported language %q (choose one of: %s)",
					value, strings.Join(engine.Languages(), ", "))
			}
			cfg.Translate.Language = lang
		case "memory.enabled":
			enabled, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("memory.enabled must be true or false")
			}
			cfg.Memory.Enabled = enabled
		case "memory.path":
			cfg.Memory.Path = value
		default:
			return fmt.Errorf("unknown setting %q", key)
		}

		if err := config.Save(cfg); err != nil {
			return err
		}
		fmt.Printf("%s updated\n", key)
		return nil
	},
}

// maskKey hides all but a short prefix of the credential; the full key is
// never printed or logged.
func maskKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 6 {
		return "******"
	}
	return key[:4] + strings.Repeat("*", 8)
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
