package tilt

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the YAML-decodable tuning for a board and its cards.
//
// Durations are expressed in milliseconds.
//
//	smoothing:
//	  fast_tau_ms: 140
//	  initial_tau_ms: 600
//	  epsilon: 0.05
//	  policy: focused
//	card:
//	  intro_ms: 1200
//	  intro_x: 290
//	  intro_y: 60
//	  enter_ms: 180
//	  glow_ms: 300
//	  settle_epsilon: 0.6
//	  perspective: 500
type Config struct {
	Smoothing SmoothingConfig `yaml:"smoothing"`
	Card      CardConfig      `yaml:"card"`
}

// SmoothingConfig mirrors Smoothing in YAML form.
type SmoothingConfig struct {
	FastTauMs    float64 `yaml:"fast_tau_ms"`
	InitialTauMs float64 `yaml:"initial_tau_ms"`
	Epsilon      float64 `yaml:"epsilon"`
	// Policy is "focused" (keep animating while focused) or "converge".
	Policy string `yaml:"policy"`
}

// CardConfig holds the host-side timings of a card.
type CardConfig struct {
	IntroMs float64 `yaml:"intro_ms"`
	// IntroX, IntroY is where the card starts before settling to center.
	IntroX float64 `yaml:"intro_x"`
	IntroY float64 `yaml:"intro_y"`
	// EnterMs is how long the card stays flagged as entering after
	// the pointer arrives.
	EnterMs float64 `yaml:"enter_ms"`
	GlowMs  float64 `yaml:"glow_ms"`
	// SettleEpsilon is the distance below which a card that the pointer has
	// left is considered back at rest and loses its active state.
	SettleEpsilon float64 `yaml:"settle_epsilon"`
	Perspective   float64 `yaml:"perspective"`
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		Smoothing: SmoothingConfig{
			FastTauMs:    ms(DefaultFastTau),
			InitialTauMs: ms(DefaultInitialTau),
			Epsilon:      DefaultEpsilon,
			Policy:       "focused",
		},
		Card: CardConfig{
			IntroMs:       1200,
			IntroX:        290,
			IntroY:        60,
			EnterMs:       180,
			GlowMs:        300,
			SettleEpsilon: 0.6,
			Perspective:   500,
		},
	}
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML on top of DefaultConfig, so omitted fields keep
// their defaults, and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	s := c.Smoothing
	if s.FastTauMs <= 0 {
		return fmt.Errorf("smoothing.fast_tau_ms must be positive, got %v", s.FastTauMs)
	}
	if s.InitialTauMs <= 0 {
		return fmt.Errorf("smoothing.initial_tau_ms must be positive, got %v", s.InitialTauMs)
	}
	if s.Epsilon <= 0 {
		return fmt.Errorf("smoothing.epsilon must be positive, got %v", s.Epsilon)
	}
	if _, err := parsePolicy(s.Policy); err != nil {
		return err
	}
	k := c.Card
	if k.IntroMs < 0 || k.EnterMs < 0 || k.GlowMs < 0 {
		return fmt.Errorf("card durations must not be negative")
	}
	if k.SettleEpsilon < 0 {
		return fmt.Errorf("card.settle_epsilon must not be negative, got %v", k.SettleEpsilon)
	}
	if k.Perspective <= 0 {
		return fmt.Errorf("card.perspective must be positive, got %v", k.Perspective)
	}
	return nil
}

// EngineSmoothing converts the YAML smoothing block to engine settings.
// The config is assumed valid; an unknown policy falls back to the default.
func (c Config) EngineSmoothing() Smoothing {
	p, _ := parsePolicy(c.Smoothing.Policy)
	return Smoothing{
		FastTau:    fromMs(c.Smoothing.FastTauMs),
		InitialTau: fromMs(c.Smoothing.InitialTauMs),
		Epsilon:    c.Smoothing.Epsilon,
		Policy:     p,
	}
}

func parsePolicy(s string) (ContinuePolicy, error) {
	switch s {
	case "", "focused":
		return ContinueWhileFocused, nil
	case "converge":
		return ContinueUntilConverged, nil
	default:
		return ContinueWhileFocused, fmt.Errorf("smoothing.policy: unknown policy %q (want focused or converge)", s)
	}
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func fromMs(v float64) time.Duration {
	return time.Duration(v * float64(time.Millisecond))
}
