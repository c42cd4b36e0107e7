package config

import (
	"fmt"
	"os"
	"strconv"

	// this will automatically load your .env file:
	_ "github.com/joho/godotenv/autoload"
	"gridchess/engine"
)

type Config struct {
	Logs   LogConfig
	Engine EngineConfig
}

type LogConfig struct {
	Style string // "console" or "json"
	Level string
}

// EngineConfig holds the search settings that may be overridden from the
// environment. Unset variables keep the engine defaults.
type EngineConfig struct {
	Depth          int
	LateDepthBonus int
	SafetyFraction float64
	Seed           uint64
	MemoLimit      int
}

// LoadConfig reads LOG_* and ENGINE_* variables. Empty variables count as
// unset; a value that cannot be parsed is an error.
func LoadConfig() (*Config, error) {
	def := engine.DefaultConfig()
	cfg := &Config{
		Logs: LogConfig{
			Style: os.Getenv("LOG_STYLE"),
			Level: os.Getenv("LOG_LEVEL"),
		},
		Engine: EngineConfig{
			Depth:          def.Depth,
			LateDepthBonus: def.LateDepthBonus,
			SafetyFraction: def.SafetyFraction,
			Seed:           def.Seed,
			MemoLimit:      def.MemoLimit,
		},
	}

	if err := intEnv("ENGINE_DEPTH", &cfg.Engine.Depth); err != nil {
		return nil, err
	}
	if err := intEnv("ENGINE_LATE_DEPTH_BONUS", &cfg.Engine.LateDepthBonus); err != nil {
		return nil, err
	}
	if err := intEnv("ENGINE_MEMO_LIMIT", &cfg.Engine.MemoLimit); err != nil {
		return nil, err
	}
	if v, ok := lookupEnv("ENGINE_SAFETY_FRACTION"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("error parsing ENGINE_SAFETY_FRACTION: %w", err)
		}
		cfg.Engine.SafetyFraction = f
	}
	if v, ok := lookupEnv("ENGINE_SEED"); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("error parsing ENGINE_SEED: %w", err)
		}
		cfg.Engine.Seed = seed
	}
	return cfg, nil
}

// lookupEnv treats an empty variable as unset.
func lookupEnv(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	return v, ok && v != ""
}

func intEnv(key string, dst *int) error {
	v, ok := lookupEnv(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("error converting string to int: %s: %w", key, err)
	}
	*dst = n
	return nil
}

// Apply overlays the environment settings onto an engine configuration.
func (ec EngineConfig) Apply(cfg *engine.Config) {
	cfg.Depth = ec.Depth
	cfg.LateDepthBonus = ec.LateDepthBonus
	cfg.SafetyFraction = ec.SafetyFraction
	cfg.Seed = ec.Seed
	cfg.MemoLimit = ec.MemoLimit
}
