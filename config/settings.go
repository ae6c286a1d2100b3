package config

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/samber/mo"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"github.com/taskframe/taskframe/color"
	"github.com/taskframe/taskframe/key"
	"github.com/taskframe/taskframe/log"
)

// ErrInvalidDelay is returned when exec.delay_ms is not a positive integer.
var ErrInvalidDelay = errors.New("exec delay must be a positive number of milliseconds")

// ErrInvalidColor is returned when color.enable is not a boolean.
var ErrInvalidColor = errors.New("color enable must be a boolean")

// MaxExecDelayMs is the largest delay that still fits a time.Duration.
const MaxExecDelayMs = math.MaxInt64 / int64(time.Millisecond)

// Settings is the resolved, immutable view of the output settings.
// It is passed by value to whatever renders or paces output.
type Settings struct {
	ColorEnabled bool
	ExecDelayMs  int
}

// ExecDelay returns ExecDelayMs as a duration.
func (s Settings) ExecDelay() time.Duration {
	return time.Duration(s.ExecDelayMs) * time.Millisecond
}

// Palette returns the color palette, empty when color is disabled.
func (s Settings) Palette() mo.Option[color.Palette] {
	return color.Available(s.ColorEnabled)
}

// Load resolves Settings from the current configuration.
// Values are taken as-is: fractional, oversized or malformed input is an error, never rounded.
func Load() (Settings, error) {
	enabled, err := cast.ToBoolE(viper.Get(key.ColorEnable))
	if err != nil {
		return Settings{}, fmt.Errorf("%w: got %v", ErrInvalidColor, viper.Get(key.ColorEnable))
	}

	delay, err := delayMs(viper.Get(key.ExecDelayMs))
	if err != nil {
		return Settings{}, err
	}

	s := Settings{ColorEnabled: enabled, ExecDelayMs: delay}

	if s.ColorEnabled && !color.Compiled() {
		log.Warn("color requested but this build has no color codes, disabling")
		s.ColorEnabled = false
	}

	return s, nil
}

func delayMs(raw any) (int, error) {
	invalid := fmt.Errorf("%w: got %v", ErrInvalidDelay, raw)

	switch v := raw.(type) {
	case bool:
		return 0, invalid
	case string:
		ms, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, invalid
		}
		raw = ms
	case float32:
		if float64(v) != math.Trunc(float64(v)) {
			return 0, invalid
		}
	case float64:
		if v != math.Trunc(v) {
			return 0, invalid
		}
	}

	ms, err := cast.ToInt64E(raw)
	if err != nil || ms <= 0 || ms > MaxExecDelayMs {
		return 0, invalid
	}
	return int(ms), nil
}
