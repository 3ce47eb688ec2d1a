package logging

import (
	"os"
	"strconv"
	"strings"
	"sync"
)

const (
	EnvLogLevel     = "TLVKIT_LOG_LEVEL"
	EnvLogTimestamp = "TLVKIT_LOG_TIMESTAMP"
	EnvLogNoColor   = "TLVKIT_LOG_NOCOLOR"
	EnvLogBypass    = "TLVKIT_LOG_BYPASS"
)

// Profile selects the base settings before file and env overrides.
type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

// Overrides carries logger settings from a settings file. Nil fields keep the
// profile value.
type Overrides struct {
	Level     *Level
	Timestamp *bool
	NoColor   *bool
	Bypass    *bool
}

var configureOnce sync.Once

// ConfigureRuntime applies the runtime profile unless a profile is already in
// place.
func ConfigureRuntime() {
	configureOnce.Do(func() {
		Configure(Resolve(ProfileRuntime, Overrides{}))
	})
}

// ConfigureTests applies the test profile unless a profile is already in
// place.
func ConfigureTests() {
	configureOnce.Do(func() {
		Configure(Resolve(ProfileTest, Overrides{}))
	})
}

// ConfigureProfile replaces the logger with profile settings, file overrides
// and then env overrides applied in that order. Later ConfigureRuntime and
// ConfigureTests calls become no-ops.
func ConfigureProfile(profile Profile, o Overrides) {
	configureOnce.Do(func() {})
	Configure(Resolve(profile, o))
}

// Resolve computes the logger Config for profile. Env variables win over o.
func Resolve(profile Profile, o Overrides) Config {
	cfg := DefaultConfig()
	switch profile {
	case ProfileTest:
		cfg.Level = DebugLevel
		cfg.Timestamp = false
	default:
		cfg.Level = InfoLevel
		cfg.Timestamp = true
	}
	o.apply(&cfg)
	envOverrides().apply(&cfg)
	return cfg
}

func (o Overrides) apply(cfg *Config) {
	if o.Level != nil {
		cfg.Level = *o.Level
	}
	if o.Timestamp != nil {
		cfg.Timestamp = *o.Timestamp
	}
	if o.NoColor != nil {
		cfg.NoColor = *o.NoColor
	}
	if o.Bypass != nil {
		cfg.Bypass = *o.Bypass
	}
}

func envOverrides() Overrides {
	var o Overrides
	if lvl, ok := ParseLevel(os.Getenv(EnvLogLevel)); ok {
		o.Level = &lvl
	}
	o.Timestamp = envBool(EnvLogTimestamp)
	o.NoColor = envBool(EnvLogNoColor)
	o.Bypass = envBool(EnvLogBypass)
	return o
}

func envBool(key string) *bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

// ParseLevel maps a level name to a Level. ok is false for empty or unknown
// names.
func ParseLevel(raw string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return InfoLevel, false
	case "trace", "diagnostics":
		return TraceLevel, true
	case "debug":
		return DebugLevel, true
	case "info":
		return InfoLevel, true
	case "warn", "warning":
		return WarnLevel, true
	case "error":
		return ErrorLevel, true
	case "disabled", "disable", "off", "none", "inactive":
		return Disabled, true
	default:
		return InfoLevel, false
	}
}
