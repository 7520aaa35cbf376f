package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Store  StoreConfig  `yaml:"store"`
	Render RenderConfig `yaml:"render"`
	List   ListConfig   `yaml:"list"`
	Index  IndexConfig  `yaml:"index"`
	Watch  WatchConfig  `yaml:"watch"`
}

type StoreConfig struct {
	File string `yaml:"file"`
}

type RenderConfig struct {
	DefaultStyle string `yaml:"default_style"`
	BodyLimit    int    `yaml:"body_limit"`
}

type ListConfig struct {
	Limit      int `yaml:"limit"`
	TitleWidth int `yaml:"title_width"`
}

type IndexConfig struct {
	File string `yaml:"file"`
}

// WatchConfig holds the accounts and keywords a collector would follow.
// Nothing reads it yet; it is kept so existing config files stay valid.
type WatchConfig struct {
	KOLs     []string `yaml:"kols"`
	Keywords []string `yaml:"keywords"`
}

func Default() *Config {
	return &Config{
		Store: StoreConfig{
			File: "cursor_content.json",
		},
		Render: RenderConfig{
			DefaultStyle: "xiaohongshu",
			BodyLimit:    500,
		},
		List: ListConfig{
			Limit:      10,
			TitleWidth: 50,
		},
		Index: IndexConfig{
			File: "index.db",
		},
		Watch: WatchConfig{
			KOLs:     []string{"cursor_ai", "cursor_sh", "AnysphereHQ"},
			Keywords: []string{"cursor", "cursor ai", "cursor editor", "cursor tips", "cursor tricks", "ai coding", "vscode"},
		},
	}
}

func Dir() string {
	if dir := os.Getenv("CURATOR_HOME"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, "awesome-cursor-cn", "data")
}

func (c *Config) StorePath() string {
	return filepath.Join(Dir(), c.Store.File)
}

func (c *Config) IndexPath() string {
	return filepath.Join(Dir(), c.Index.File)
}

func configPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

func Load() (*Config, error) {
	data, err := os.ReadFile(configPath())
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(cfg *Config) error {
	if err := os.MkdirAll(Dir(), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath(), data, 0644)
}
