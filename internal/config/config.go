package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultOutput  = "js/comet-dom.js"
	DefaultWorkers = 4
)

type Config struct {
	Output  string   `yaml:"output"`
	Pages   []string `yaml:"pages"`
	Minify  bool     `yaml:"minify"`
	Debug   bool     `yaml:"debug"`
	Strict  bool     `yaml:"strict"`
	Workers int      `yaml:"workers"`

	Cookie     string `yaml:"cookie"`
	CookieFile string `yaml:"cookie_file"`
	UserAgent  string `yaml:"user_agent"`
}

// Options carries command line overrides. Zero values leave the loaded
// config untouched.
type Options struct {
	IgnoreConfig bool
	Debug        bool
	Output       string
	Pages        []string
	Minify       bool
	Strict       bool
	Workers      int
	Cookie       string
	CookieFile   string
	UserAgent    string
}

func DefaultConfig() *Config {
	return &Config{
		Output:  DefaultOutput,
		Pages:   []string{"index.html"},
		Workers: DefaultWorkers,
	}
}

func SaveYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func loadYAML(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	return &c, nil
}

// LoadMerged resolves the effective config: CLI options over the active
// profile over defaults. The second value says where the config came from.
func LoadMerged(opts Options) (*Config, string, error) {
	if opts.IgnoreConfig {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(ignored config)", nil
	}

	activePath, err := ActiveConfigPath()
	if err == ErrNoConfig || activePath == "" {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(default config in memory)", nil
	}
	if err != nil {
		return nil, "", err
	}

	cfg, err := loadYAML(activePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config %s: %w", activePath, err)
	}

	mergeConfig(cfg, opts)
	normalizeDefaults(cfg)

	return cfg, activePath, nil
}

func mergeConfig(c *Config, o Options) {
	if o.Output != "" {
		c.Output = o.Output
	}
	if len(o.Pages) > 0 {
		c.Pages = o.Pages
	}
	if o.Workers != 0 {
		c.Workers = o.Workers
	}
	if o.Minify {
		c.Minify = true
	}
	if o.Debug {
		c.Debug = true
	}
	if o.Strict {
		c.Strict = true
	}
	if o.Cookie != "" {
		c.Cookie = o.Cookie
	}
	if o.CookieFile != "" {
		c.CookieFile = o.CookieFile
	}
	if o.UserAgent != "" {
		c.UserAgent = o.UserAgent
	}
}

func normalizeDefaults(c *Config) {
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Workers <= 0 {
		c.Workers = DefaultWorkers
	}
}

func (c *Config) Print() {
	fmt.Printf(" -output: %s\n", c.Output)
	if len(c.Pages) > 0 {
		fmt.Printf(" -pages: %s\n", strings.Join(c.Pages, ", "))
	}
	fmt.Printf(" -workers: %d\n", c.Workers)
	if c.Minify {
		fmt.Printf(" -minify: %t\n", c.Minify)
	}
	if c.Strict {
		fmt.Printf(" -strict: %t\n", c.Strict)
	}
	if c.Debug {
		fmt.Printf(" -debug: %t\n", c.Debug)
	}
	if c.CookieFile != "" {
		fmt.Printf(" -cookie_file: %s\n", c.CookieFile)
	}
	if c.UserAgent != "" {
		fmt.Printf(" -user_agent: %s\n", c.UserAgent)
	}
}
