package lightsource

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window, tick rate and input of Run.
type RunConfig struct {
	Title      string `json:"title"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Fullscreen bool   `json:"fullscreen"`
	TPS        int    `json:"tps"`
	Debug      bool   `json:"debug"`
	ShowFPS    bool   `json:"showFPS"`

	// ScreenshotDir overrides Stage.ScreenshotDir when set.
	ScreenshotDir string `json:"screenshotDir,omitempty"`

	// Key repeat timing in ticks. Zero interval disables repeat.
	RepeatDelay    int `json:"repeatDelay"`
	RepeatInterval int `json:"repeatInterval"`

	// Keys adds or replaces keyboard bindings: ebiten key name to key name,
	// e.g. {"W": "up"}. Applied on top of DefaultMapping.
	Keys map[string]string `json:"keys,omitempty"`
}

// DefaultRunConfig returns a 1280x720 windowed 60 TPS configuration.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:          "lightsource",
		Width:          1280,
		Height:         720,
		TPS:            60,
		RepeatDelay:    defaultRepeatDelay,
		RepeatInterval: defaultRepeatInterval,
	}
}

// LoadRunConfig parses a JSON configuration. Fields absent from the JSON
// keep their DefaultRunConfig values.
func LoadRunConfig(jsonData []byte) (RunConfig, error) {
	cfg := DefaultRunConfig()
	if err := json.Unmarshal(jsonData, &cfg); err != nil {
		return RunConfig{}, fmt.Errorf("parse run config: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return RunConfig{}, fmt.Errorf("parse run config: invalid size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.TPS <= 0 {
		return RunConfig{}, fmt.Errorf("parse run config: invalid tps %d", cfg.TPS)
	}
	if cfg.RepeatDelay < 0 || cfg.RepeatInterval < 0 {
		return RunConfig{}, fmt.Errorf("parse run config: negative key repeat timing")
	}
	if _, err := cfg.Mapping(); err != nil {
		return RunConfig{}, err
	}
	return cfg, nil
}

// Mapping returns DefaultMapping with the Keys overrides applied.
func (cfg RunConfig) Mapping() (Mapping, error) {
	m := DefaultMapping()
	if len(cfg.Keys) == 0 {
		return m, nil
	}

	names := make([]string, 0, len(cfg.Keys))
	for name := range cfg.Keys {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		var ek ebiten.Key
		if err := ek.UnmarshalText([]byte(name)); err != nil {
			return Mapping{}, fmt.Errorf("parse run config: keyboard key %q: %w", name, err)
		}
		mapped, err := ParseKey(cfg.Keys[name])
		if err != nil {
			return Mapping{}, fmt.Errorf("parse run config: %w", err)
		}
		replaced := false
		for i := range m.Keyboard {
			if m.Keyboard[i].Key == ek {
				m.Keyboard[i].Mapped = mapped
				replaced = true
			}
		}
		if !replaced {
			m.Keyboard = append(m.Keyboard, KeyBinding{Key: ek, Mapped: mapped})
		}
	}
	return m, nil
}
