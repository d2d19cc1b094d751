package pricefeed

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"agrilink-api/pkg/confkit"
)

// Config describes the external price feed providers and their fallback
// order.
type Config struct {
	// Chain lists provider names in priority order; the next provider is
	// consulted only when the previous one yielded nothing.
	Chain     []string                   `yaml:"chain"`
	Providers map[string]*ProviderConfig `yaml:"providers"`
}

// ProviderConfig configures a single feed adapter.
type ProviderConfig struct {
	Type string `yaml:"type"`

	BaseURL string `yaml:"base_url"`
	// APIKey gates the adapter: an empty value (after env expansion) means
	// the provider is skipped entirely.
	APIKey string `yaml:"api_key"`

	HTTPTimeoutRaw string        `yaml:"http_timeout"`
	HTTPTimeout    time.Duration `yaml:"-"`
}

// ProviderBuilder constructs a Provider from configuration.
type ProviderBuilder func(name string, cfg *ProviderConfig) (Provider, error)

var (
	builderRegistry   = make(map[string]ProviderBuilder)
	builderRegistryMu sync.RWMutex
)

// RegisterProvider registers a feed adapter constructor under a type name.
func RegisterProvider(typeName string, builder ProviderBuilder) {
	builderRegistryMu.Lock()
	defer builderRegistryMu.Unlock()
	builderRegistry[strings.ToLower(strings.TrimSpace(typeName))] = builder
}

func lookupBuilder(typeName string) (ProviderBuilder, bool) {
	builderRegistryMu.RLock()
	defer builderRegistryMu.RUnlock()
	builder, ok := builderRegistry[strings.ToLower(strings.TrimSpace(typeName))]
	return builder, ok
}

// LoadConfig reads feed configuration from disk.
func LoadConfig(path string) (*Config, error) {
	confkit.LoadDotenvOnce()
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pricefeed config: %w", err)
	}
	defer file.Close()
	return LoadConfigFromReader(file)
}

// MustLoad reads feed configuration from the default project location and
// panics on error.
func MustLoad() *Config {
	path := confkit.MustProjectPath("etc/pricefeed.yaml")
	cfg, err := LoadConfig(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// LoadConfigFromReader constructs a Config from an io.Reader.
func LoadConfigFromReader(r io.Reader) (*Config, error) {
	confkit.LoadDotenvOnce()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read pricefeed config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal pricefeed config: %w", err)
	}
	if err := cfg.normalise(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) normalise() error {
	if c.Providers == nil {
		c.Providers = make(map[string]*ProviderConfig)
	}
	for name, provider := range c.Providers {
		if provider == nil {
			provider = &ProviderConfig{}
			c.Providers[name] = provider
		}
		provider.expandEnv()
		if err := provider.parseDurations(name); err != nil {
			return err
		}
	}
	return nil
}

func (p *ProviderConfig) expandEnv() {
	p.Type = strings.TrimSpace(os.ExpandEnv(p.Type))
	p.BaseURL = strings.TrimSpace(os.ExpandEnv(p.BaseURL))
	p.APIKey = strings.TrimSpace(os.ExpandEnv(p.APIKey))
	p.HTTPTimeoutRaw = strings.TrimSpace(os.ExpandEnv(p.HTTPTimeoutRaw))
}

func (p *ProviderConfig) parseDurations(name string) error {
	if p.HTTPTimeoutRaw == "" {
		return nil
	}
	d, err := time.ParseDuration(p.HTTPTimeoutRaw)
	if err != nil {
		return fmt.Errorf("pricefeed provider %s: invalid http_timeout %q: %w", name, p.HTTPTimeoutRaw, err)
	}
	if d <= 0 {
		return fmt.Errorf("pricefeed provider %s: http_timeout must be positive, got %s", name, d)
	}
	p.HTTPTimeout = d
	return nil
}

// Validate ensures the configuration is structurally sound.
func (c *Config) Validate() error {
	for _, name := range c.Chain {
		if _, ok := c.Providers[name]; !ok {
			return fmt.Errorf("pricefeed config: chain references undefined provider %q", name)
		}
	}
	for name, provider := range c.Providers {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("pricefeed config: provider name cannot be empty")
		}
		if provider == nil {
			return fmt.Errorf("pricefeed config: provider %s is nil", name)
		}
		if strings.TrimSpace(provider.Type) == "" {
			return fmt.Errorf("pricefeed config: provider %s must specify type", name)
		}
		if _, ok := lookupBuilder(provider.Type); !ok {
			return fmt.Errorf("pricefeed config: provider %s has unsupported type %q", name, provider.Type)
		}
	}
	return nil
}

// BuildChain instantiates the configured fallback chain. Providers without a
// credential are skipped; a config with no usable providers still yields a
// valid (always-empty) chain.
func (c *Config) BuildChain() (*Chain, error) {
	providers := make([]Provider, 0, len(c.Chain))
	for _, name := range c.Chain {
		providerCfg := c.Providers[name]
		if providerCfg.APIKey == "" {
			continue
		}
		builder, ok := lookupBuilder(providerCfg.Type)
		if !ok {
			return nil, fmt.Errorf("pricefeed provider %s: unsupported type %q", name, providerCfg.Type)
		}
		provider, err := builder(name, providerCfg)
		if err != nil {
			return nil, fmt.Errorf("pricefeed provider %s: %w", name, err)
		}
		providers = append(providers, provider)
	}
	return NewChain(providers...), nil
}
