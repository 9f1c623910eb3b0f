package config

import (
	"fmt"
	"os"

	"shortlist/pkg/common"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Index   IndexConfig     `yaml:"index"`
	Filter  FilterConfig    `yaml:"filter"`
	Log     LogConfig       `yaml:"log"`
	Display DisplayConfig   `yaml:"display"`
	Seed    []common.Record `yaml:"seed"`
}

type IndexConfig struct {
	Kind        string `yaml:"kind"`         // "avl" or "btree"
	BTreeDegree int    `yaml:"btree_degree"` // only used by "btree"
}

type FilterConfig struct {
	ExpectedTags  uint    `yaml:"expected_tags"`
	FalsePositive float64 `yaml:"false_positive"`
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

type DisplayConfig struct {
	NameWidth  int `yaml:"name_width"`
	TagWidth   int `yaml:"tag_width"`
	ScoreWidth int `yaml:"score_width"`
}

// DefaultSeed is the sample candidate list loaded when no seed is configured.
func DefaultSeed() []common.Record {
	return []common.Record{
		{Name: "Ravi", Tag: "Python", Score: 85},
		{Name: "Amit", Tag: "Java", Score: 92},
		{Name: "Priya", Tag: "C++", Score: 78},
		{Name: "Anjali", Tag: "Python", Score: 88},
		{Name: "Rahul", Tag: "JavaScript", Score: 90},
		{Name: "Sonia", Tag: "Java", Score: 82},
		{Name: "Pooja", Tag: "C++", Score: 95},
		{Name: "Dhruv", Tag: "Python", Score: 88},
	}
}

func Default() *Config {
	cfg := &Config{
		Index: IndexConfig{
			Kind:        "avl",
			BTreeDegree: 32,
		},
		Filter: FilterConfig{
			ExpectedTags:  1024,
			FalsePositive: 0.01,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Display: DisplayConfig{
			NameWidth:  25,
			TagWidth:   20,
			ScoreWidth: 6,
		},
	}
	cfg.Seed = DefaultSeed()
	return cfg
}

func Load(configPath string) (*Config, error) {
	cfg := Default()

	if configPath == "" {
		for _, p := range []string{"configs/shortlist.yaml", "shortlist.yaml"} {
			data, err := os.ReadFile(p)
			if err == nil {
				if err := parse(data, cfg); err != nil {
					return cfg, fmt.Errorf("parse %s: %w", p, err)
				}
				return cfg, nil
			}
		}
		applyDefaults(cfg)
		return cfg, nil // no file found: use defaults
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := parse(data, cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", configPath, err)
	}
	return cfg, nil
}

func parse(data []byte, cfg *Config) error {
	// a "seed:" key replaces the sample list, "seed: []" disables seeding
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}
	applyDefaults(cfg)
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Index.Kind == "" {
		cfg.Index.Kind = "avl"
	}
	if cfg.Index.BTreeDegree < 2 {
		cfg.Index.BTreeDegree = 32
	}
	if cfg.Filter.ExpectedTags == 0 {
		cfg.Filter.ExpectedTags = 1024
	}
	if cfg.Filter.FalsePositive <= 0 || cfg.Filter.FalsePositive >= 1 {
		cfg.Filter.FalsePositive = 0.01
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
	if cfg.Display.NameWidth <= 0 {
		cfg.Display.NameWidth = 25
	}
	if cfg.Display.TagWidth <= 0 {
		cfg.Display.TagWidth = 20
	}
	if cfg.Display.ScoreWidth <= 0 {
		cfg.Display.ScoreWidth = 6
	}
}
