package llmprovider

import (
	"fmt"
	"sort"
	"strings"

	"studybuddy/config"
	"studybuddy/pkg/deepseek"
	"studybuddy/pkg/gemini"
	"studybuddy/pkg/qwen"
)

// InitializeProviders creates Provider instances from config.LLMConfig.
// Returns providers sorted by priority (ascending) with disabled providers
// filtered out. Providers that fail to initialize are skipped instead of
// failing the entire service.
func InitializeProviders(cfg *config.LLMConfig) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}
	if len(cfg.Providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	if len(enabled) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.Slice(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	var providers []Provider
	var initErrors []string

	for _, p := range enabled {
		provider, err := createProvider(p)
		if err != nil {
			initErrors = append(initErrors,
				fmt.Sprintf("failed to initialize provider %s (priority %d): %v", p.Name, p.Priority, err))
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}

	return providers, nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}

	switch strings.ToLower(cfg.Name) {
	case "gemini":
		client, err := gemini.New(gemini.Config{
			APIKey: cfg.APIKey,
			Model:  cfg.Model,
			APIURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, err
		}
		return NewGeminiAdapter(client), nil

	case "qwen":
		client, err := qwen.New(qwen.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, err
		}
		return NewQwenAdapter(client), nil

	case "deepseek":
		client, err := deepseek.New(deepseek.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, err
		}
		return NewDeepSeekAdapter(client), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}
