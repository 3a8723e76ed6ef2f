package config

import (
	"fmt"
	"os"
	"time"

	"agoraverse/internal/domain/econ"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so policy files can say "30s" or "2m".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config is the world policy file. Every field has a compiled-in default so
// the server runs with no file at all; the file overrides selectively.
type Config struct {
	HTTPAddr      string   `yaml:"http_addr"`
	MigrationsDir string   `yaml:"migrations_dir"`
	TickPeriod    Duration `yaml:"tick_period"`

	Economy struct {
		RentByTier  map[string]float64 `yaml:"rent_by_tier"`
		Subsistence float64            `yaml:"subsistence"`
		TaxRate     float64            `yaml:"tax_rate"`
	} `yaml:"economy"`

	Policy struct {
		MaxAbsAmount float64 `yaml:"max_abs_amount"`
	} `yaml:"policy"`
}

func Default() Config {
	cfg := Config{
		HTTPAddr:      ":8080",
		MigrationsDir: "./migrations",
		TickPeriod:    Duration(time.Minute),
	}
	cfg.Economy.RentByTier = map[string]float64{}
	for tier, rent := range econ.DefaultRentByTier {
		cfg.Economy.RentByTier[string(tier)] = rent
	}
	cfg.Economy.Subsistence = econ.DefaultSubsistenceCost
	cfg.Economy.TaxRate = econ.DefaultTaxRate
	cfg.Policy.MaxAbsAmount = econ.DefaultPatchPolicy().MaxAbsAmount
	return cfg
}

// Load reads the policy file at path into the defaults. A missing path is
// not an error; a malformed file is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.TickPeriod <= 0 {
		return fmt.Errorf("tick_period must be positive")
	}
	if c.Economy.TaxRate < 0 || c.Economy.TaxRate >= 1 {
		return fmt.Errorf("tax_rate must be in [0, 1)")
	}
	if c.Policy.MaxAbsAmount <= 0 {
		return fmt.Errorf("max_abs_amount must be positive")
	}
	for tier, rent := range c.Economy.RentByTier {
		if rent < 0 {
			return fmt.Errorf("rent for tier %q must not be negative", tier)
		}
	}
	return nil
}

// RentByTier converts the string-keyed yaml table to domain keys.
func (c Config) RentByTier() map[econ.HousingTier]float64 {
	out := make(map[econ.HousingTier]float64, len(c.Economy.RentByTier))
	for tier, rent := range c.Economy.RentByTier {
		out[econ.HousingTier(tier)] = rent
	}
	return out
}

// PatchPolicy builds the update guardrails from the configured cap.
func (c Config) PatchPolicy() econ.PatchPolicy {
	policy := econ.DefaultPatchPolicy()
	policy.MaxAbsAmount = c.Policy.MaxAbsAmount
	return policy
}
