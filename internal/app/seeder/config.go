package seeder

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config describes the demo account the seeder creates.
type Config struct {
	UserName  string   `yaml:"user_name"  env:"SEEDER_USER_NAME"  env-default:"Demo Patient"`
	UserEmail string   `yaml:"user_email" env:"SEEDER_USER_EMAIL" env-default:"demo@healthhub.local"`
	Tracks    []string `yaml:"tracks"     env:"SEEDER_TRACKS"     env-default:"Knee Rehab,Sleep,Blood Pressure" env-separator:","`
	DryRun    bool     `yaml:"dry_run"    env:"SEEDER_DRY_RUN"`
}

// LoadConfig reads seeder settings from a YAML file when path is set,
// otherwise from the environment. ENV overrides YAML.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("seeder config: file %s not found", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("seeder config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.UserEmail == "" {
		return fmt.Errorf("user_email is required")
	}
	if len(c.Tracks) == 0 {
		return fmt.Errorf("at least one track is required")
	}
	return nil
}
