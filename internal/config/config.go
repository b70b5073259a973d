package config

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vancomm/minesweeper-engine/mines"
)

const EnvPrefix = "MINES"

type Log struct {
	Level string
	File  string
}

type Config struct {
	Development bool
	Log         Log
	Difficulty  mines.Difficulty
	Custom      mines.Settings
	Seed        uint64
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("development", false)
	v.SetDefault("log.level", "")
	v.SetDefault("log.file", "")
	v.SetDefault("difficulty", string(mines.Beginner))
	v.SetDefault("custom", mines.Custom.Settings().String())
	v.SetDefault("seed", 0)
}

// Load reads MINES_* environment variables on top of the optional
// config file at path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config %s: %w", path, err)
		}
	}

	difficulty, err := mines.ParseDifficulty(v.GetString("difficulty"))
	if err != nil {
		return nil, err
	}

	custom, err := mines.ParseSettings(v.GetString("custom"))
	if err != nil {
		return nil, fmt.Errorf("unable to parse custom settings: %w", err)
	}

	cfg := &Config{
		Development: v.GetBool("development"),
		Log: Log{
			Level: v.GetString("log.level"),
			File:  v.GetString("log.file"),
		},
		Difficulty: difficulty,
		Custom:     custom,
		Seed:       v.GetUint64("seed"),
	}

	return cfg, nil
}

// Settings resolves the board to play. Custom boards are clamped to the
// playable range.
func (c Config) Settings() mines.Settings {
	if c.Difficulty == mines.Custom {
		return c.Custom.Clamp()
	}
	return c.Difficulty.Settings()
}

func (c Config) LogLevel() (logrus.Level, error) {
	if c.Log.Level == "" {
		if c.Development {
			return logrus.DebugLevel, nil
		}
		return logrus.InfoLevel, nil
	}
	return logrus.ParseLevel(c.Log.Level)
}

// Rand returns a seeded source when Seed is set and a random one
// otherwise.
func (c Config) Rand() *rand.Rand {
	if c.Seed == 0 {
		return mines.NewRand()
	}
	return rand.New(rand.NewPCG(c.Seed, c.Seed))
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"development": c.Development,
		"log_level":   c.Log.Level,
		"log_file":    c.Log.File,
		"difficulty":  c.Difficulty,
		"settings":    c.Settings().String(),
		"seed":        c.Seed,
	}
}
