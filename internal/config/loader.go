package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MrWong99/kupu/pkg/lexicon"
)

// Load reads the YAML configuration file at path and returns a validated [Config].
// It is a convenience wrapper around [LoadFromReader] and [Validate].
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes a YAML config from r and validates the result.
// An empty document yields the zero [Config].
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that cfg contains a coherent set of values.
// It returns a joined error listing all validation failures found.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.LogLevel != "" && !cfg.LogLevel.IsValid() {
		errs = append(errs, fmt.Errorf("log_level %q is invalid; valid values: debug, info, warn, error", cfg.LogLevel))
	}

	// Engine
	if r := cfg.Engine.Region; r != "" && !lexicon.Region(r).IsValid() {
		slog.Warn("unknown region; lookups will not be region-focused",
			"region", r,
			"valid", regionNames(),
		)
	}
	if l := cfg.Engine.UserLevel; l != "" && !l.IsValid() {
		errs = append(errs, fmt.Errorf("engine.user_level %q is invalid; valid values: tourist, business, expert", l))
	}
	if m := cfg.Engine.DemoMode; m != "" && !m.IsValid() {
		errs = append(errs, fmt.Errorf("engine.demo_mode %q is invalid; valid values: general, curated, advanced", m))
	}
	if f := cfg.Engine.SafetyFloor; f != nil && (*f < 0 || *f > 100) {
		errs = append(errs, fmt.Errorf("engine.safety_floor %d is out of range [0, 100]", *f))
	}

	// Lexicon
	for i, path := range cfg.Lexicon.Overlays {
		if strings.TrimSpace(path) == "" {
			errs = append(errs, fmt.Errorf("lexicon.overlays[%d] is empty", i))
		}
	}

	// Batch
	switch w := cfg.Batch.Workers; {
	case w < 0:
		errs = append(errs, fmt.Errorf("batch.workers %d must not be negative", w))
	case w > 256:
		slog.Warn("batch.workers is unusually high", "workers", w)
	}

	return errors.Join(errs...)
}

// LoadOverlays reads every overlay file listed in cfg, in order. The entries
// are not validated here; [lexicon.NewStore] rejects bad ones.
func LoadOverlays(cfg *Config) ([][]lexicon.Entry, error) {
	out := make([][]lexicon.Entry, 0, len(cfg.Lexicon.Overlays))
	for _, path := range cfg.Lexicon.Overlays {
		entries, err := lexicon.LoadRecords(path)
		if err != nil {
			return nil, fmt.Errorf("config: load overlay: %w", err)
		}
		out = append(out, entries)
	}
	return out, nil
}

func regionNames() []string {
	names := make([]string, len(lexicon.Regions))
	for i, r := range lexicon.Regions {
		names[i] = string(r)
	}
	return names
}
