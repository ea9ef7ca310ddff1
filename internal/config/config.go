package config

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	RuleDeparted               = "departed"
	RuleArrivalBeforeDeparture = "arrival_before_departure"
	RuleGroundTime             = "ground_time"
	RuleExpression             = "expression"
)

type Config struct {
	Env      string         `yaml:"env" env:"ENV" env-default:"local"`
	Jaeger   string         `yaml:"jaeger" env:"JAEGER"`
	NoColor  bool           `yaml:"no_color" env:"NO_COLOR"`
	Log      LogConfig      `yaml:"log"`
	Fixtures FixturesConfig `yaml:"fixtures"`
	Filters  FiltersConfig  `yaml:"filters"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

type FixturesConfig struct {
	Path string `yaml:"path" env:"FIXTURES_PATH"`
}

type FiltersConfig struct {
	Now   string       `yaml:"now" env:"FILTERS_NOW"`
	Rules []RuleConfig `yaml:"rules"`
}

// RuleConfig describes one entry of the rule chain. Only the fields relevant
// to Type are read.
type RuleConfig struct {
	Type          string        `yaml:"type"`
	Name          string        `yaml:"name"`
	MaxGroundTime time.Duration `yaml:"max_ground_time"`
	Precision     time.Duration `yaml:"precision"`
	Expression    string        `yaml:"expression"`
}

// DefaultRules is the rule chain used when the config lists no rules.
func DefaultRules() []RuleConfig {
	return []RuleConfig{
		{Type: RuleDeparted},
		{Type: RuleArrivalBeforeDeparture},
		{Type: RuleGroundTime, MaxGroundTime: 2 * time.Hour, Precision: time.Hour},
	}
}

func (c FiltersConfig) RuleChain() []RuleConfig {
	if len(c.Rules) == 0 {
		return DefaultRules()
	}
	return c.Rules
}

// EvaluationTime returns the pinned evaluation instant, if one is configured.
func (c FiltersConfig) EvaluationTime() (time.Time, bool, error) {
	raw := strings.TrimSpace(c.Now)
	if raw == "" {
		return time.Time{}, false, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parse filters.now: %w", err)
	}
	return t, true, nil
}

func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		panic("config path is empty")
	}
	return MustLoadByPath(path)
}

func MustLoadByPath(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(err.Error())
	}
	return cfg
}

func Load(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exists: %s", configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read the config: %w", err)
	}
	if _, _, err := cfg.Filters.EvaluationTime(); err != nil {
		return nil, fmt.Errorf("cannot read the config: %w", err)
	}

	return &cfg, nil
}

func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	if res == "" {
		res = "config/local.yaml"
	}

	return res
}
