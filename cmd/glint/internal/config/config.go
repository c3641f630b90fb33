// Package config loads the optional glint.yaml next to the binary's working
// directory and resolves it into the wordmark and disclosure configurations.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/glint-ui/glint/pkg/disclosure"
	"github.com/glint-ui/glint/pkg/wordmark"
)

// DefaultText is the wordmark shown when no config overrides it.
const DefaultText = "glint"

// DefaultItems are the labels shown in the expanded panel.
var DefaultItems = []string{"developer", "designer", "photographer"}

// Config represents the optional glint.yaml configuration.
type Config struct {
	Text          string   `yaml:"text,omitempty"`
	Items         []string `yaml:"items,omitempty"`
	Motion        string   `yaml:"motion,omitempty"` // "expo" (default) or "spring"
	ReducedMotion bool     `yaml:"reduced_motion,omitempty"`
	Timing        Timing   `yaml:"timing,omitempty"`
}

// Timing overrides individual schedule constants, in milliseconds.
// Zero fields keep their defaults.
type Timing struct {
	InitialDelayMS int `yaml:"initial_delay_ms,omitempty"`
	StaggerMS      int `yaml:"stagger_ms,omitempty"`
	CharDurationMS int `yaml:"char_duration_ms,omitempty"`
	SettleMS       int `yaml:"settle_ms,omitempty"`
	BlinkMS        int `yaml:"blink_ms,omitempty"`
	HintDelayMS    int `yaml:"hint_delay_ms,omitempty"`
}

// Resolved contains the fully resolved component configurations.
type Resolved struct {
	Wordmark   wordmark.Config
	Disclosure disclosure.Config
}

// LoadOptional reads glint.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "glint.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read glint.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse glint.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads glint.yaml (if present) and fills in defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	return cfg.Resolve()
}

// Resolve fills in defaults and maps the file schema onto the component
// configurations.
func (cfg *Config) Resolve() (*Resolved, error) {
	text := strings.TrimSpace(cfg.Text)
	if text == "" {
		text = DefaultText
	}

	items := cfg.Items
	if len(items) == 0 {
		items = DefaultItems
	}

	wm := wordmark.DefaultConfig(text)
	switch strings.ToLower(strings.TrimSpace(cfg.Motion)) {
	case "", "expo":
		wm.Motion = wordmark.MotionExpo
	case "spring":
		wm.Motion = wordmark.MotionSpring
	default:
		return nil, fmt.Errorf("unknown motion preset %q (use expo or spring)", cfg.Motion)
	}
	wm.ReducedMotion = cfg.ReducedMotion

	applyMS := func(dst *time.Duration, ms int) {
		if ms > 0 {
			*dst = time.Duration(ms) * time.Millisecond
		}
	}
	applyMS(&wm.InitialDelay, cfg.Timing.InitialDelayMS)
	applyMS(&wm.StaggerDelay, cfg.Timing.StaggerMS)
	applyMS(&wm.CharDuration, cfg.Timing.CharDurationMS)
	applyMS(&wm.SettleDelay, cfg.Timing.SettleMS)
	applyMS(&wm.BlinkPeriod, cfg.Timing.BlinkMS)

	dc := disclosure.DefaultConfig(items...)
	dc.ReducedMotion = cfg.ReducedMotion
	applyMS(&dc.HintDelay, cfg.Timing.HintDelayMS)

	return &Resolved{Wordmark: wm, Disclosure: dc}, nil
}
