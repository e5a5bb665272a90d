// Package config defines the configuration schema for the kupu command line
// tool and the logic for loading it from YAML files.
package config

import (
	"github.com/MrWong99/kupu/pkg/lexicon"
	"github.com/MrWong99/kupu/pkg/types"
)

// LogLevel controls log verbosity for the kupu CLI.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// Defaults applied by [Config.WithDefaults] to unset fields.
const (
	DefaultLogLevel     = LogInfo
	DefaultSafetyFloor  = 80
	DefaultBatchWorkers = 4
)

// Config is the root configuration structure.
type Config struct {
	// LogLevel controls verbosity.
	LogLevel LogLevel `yaml:"log_level"`

	// Engine holds the default session context and engine tuning.
	Engine EngineConfig `yaml:"engine"`

	// Lexicon configures additional vocabulary on top of the built-in tables.
	Lexicon LexiconConfig `yaml:"lexicon"`

	// Batch tunes the batch subcommand.
	Batch BatchConfig `yaml:"batch"`

	// Metrics configures the Prometheus endpoint.
	Metrics MetricsConfig `yaml:"metrics"`
}

// EngineConfig holds the defaults used when a command does not override them.
type EngineConfig struct {
	// Region focuses place-name and business lookups. Unknown regions are
	// accepted with a warning and treated as no focus.
	Region string `yaml:"region"`

	// UserLevel selects which tiers are active. Empty activates all tiers.
	UserLevel types.UserLevel `yaml:"user_level"`

	// DemoMode selects the auto-apply confidence threshold.
	DemoMode types.DemoMode `yaml:"demo_mode"`

	// SafetyFloor is the minimum protection score for a safe verdict.
	// Nil means [DefaultSafetyFloor]; zero is a legal floor.
	SafetyFloor *int `yaml:"safety_floor"`

	// AutoApplyOnly leaves low-confidence corrections as suggestions.
	AutoApplyOnly bool `yaml:"auto_apply_only"`
}

// LexiconConfig lists flat record files merged over the built-in lexicon.
type LexiconConfig struct {
	// Overlays are paths to record files, applied in order.
	Overlays []string `yaml:"overlays"`
}

// BatchConfig tunes batch correction.
type BatchConfig struct {
	// Workers is the number of lines corrected concurrently. Zero means
	// [DefaultBatchWorkers].
	Workers int `yaml:"workers"`
}

// MetricsConfig configures the metrics endpoint.
type MetricsConfig struct {
	// ListenAddr is the TCP address for the /metrics endpoint, e.g. ":9090".
	// Empty disables the endpoint.
	ListenAddr string `yaml:"listen_addr"`
}

// WithDefaults returns a copy of cfg with unset fields filled in.
func (cfg Config) WithDefaults() Config {
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.Engine.SafetyFloor == nil {
		floor := DefaultSafetyFloor
		cfg.Engine.SafetyFloor = &floor
	}
	if cfg.Batch.Workers == 0 {
		cfg.Batch.Workers = DefaultBatchWorkers
	}
	return cfg
}

// EngineContext converts the engine defaults to a session context.
func (e EngineConfig) EngineContext() types.EngineContext {
	return types.EngineContext{
		Region:    lexicon.Region(e.Region),
		UserLevel: e.UserLevel,
		DemoMode:  e.DemoMode,
	}
}
