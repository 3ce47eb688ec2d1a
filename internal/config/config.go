package config

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/danmuck/tlvkit/internal/logging"
	"github.com/danmuck/tlvkit/internal/protocol/frame"
	"github.com/danmuck/tlvkit/internal/protocol/tlv"
)

// Settings is the resolved tool configuration.
type Settings struct {
	Codec tlv.Config
	Frame frame.Limits
	Log   LogSettings
}

// LogSettings holds the [log] section. Nil switches were absent from the file
// and fall back to the logging profile.
type LogSettings struct {
	Level     string
	Timestamp *bool
	NoColor   *bool
	Bypass    *bool
}

// Overrides converts the section for logging.ConfigureProfile.
func (s LogSettings) Overrides() logging.Overrides {
	o := logging.Overrides{
		Timestamp: s.Timestamp,
		NoColor:   s.NoColor,
		Bypass:    s.Bypass,
	}
	if lvl, ok := logging.ParseLevel(s.Level); ok {
		o.Level = &lvl
	}
	return o
}

type fileConfig struct {
	Codec codecSection `toml:"codec"`
	Frame frameSection `toml:"frame"`
	Log   logSection   `toml:"log"`
}

type codecSection struct {
	AttrLen   int    `toml:"attr_len"`
	TagLen    int    `toml:"tag_len"`
	LenLen    int    `toml:"len_len"`
	ByteOrder string `toml:"byte_order"`
}

type frameSection struct {
	MaxPayloadBytes uint64 `toml:"max_payload_bytes"`
}

type logSection struct {
	Level     string `toml:"level"`
	Timestamp bool   `toml:"timestamp"`
	NoColor   bool   `toml:"no_color"`
	Bypass    bool   `toml:"bypass"`
}

func Default() Settings {
	return Settings{
		Codec: tlv.DefaultConfig(),
		Frame: frame.DefaultLimits(),
		Log:   LogSettings{Level: "info"},
	}
}

// Load reads a TOML file. Keys absent from the file keep their defaults.
func Load(path string) (Settings, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Settings{}, errors.Wrapf(err, "config parse failed (%s)", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		logging.Warnf("config %s: ignoring unknown keys %v", path, undecoded)
	}

	cfg := Default()
	if meta.IsDefined("codec", "attr_len") {
		cfg.Codec.AttrLen = raw.Codec.AttrLen
	}
	if meta.IsDefined("codec", "tag_len") {
		cfg.Codec.TagLen = raw.Codec.TagLen
	}
	if meta.IsDefined("codec", "len_len") {
		cfg.Codec.LenLen = raw.Codec.LenLen
	}
	if meta.IsDefined("codec", "byte_order") {
		order, err := tlv.ParseByteOrder(raw.Codec.ByteOrder)
		if err != nil {
			return Settings{}, errors.Wrapf(err, "config %s", path)
		}
		cfg.Codec.Order = order
	}
	if meta.IsDefined("frame", "max_payload_bytes") {
		cfg.Frame.MaxPayloadBytes = raw.Frame.MaxPayloadBytes
	}
	if meta.IsDefined("log", "level") {
		cfg.Log.Level = raw.Log.Level
	}
	if meta.IsDefined("log", "timestamp") {
		cfg.Log.Timestamp = &raw.Log.Timestamp
	}
	if meta.IsDefined("log", "no_color") {
		cfg.Log.NoColor = &raw.Log.NoColor
	}
	if meta.IsDefined("log", "bypass") {
		cfg.Log.Bypass = &raw.Log.Bypass
	}

	if err := Validate(cfg); err != nil {
		return Settings{}, errors.Wrapf(err, "config %s", path)
	}
	logging.Debugf("config loaded path=%s codec=%+v", path, cfg.Codec)
	return cfg, nil
}

func Validate(cfg Settings) error {
	if err := cfg.Codec.Validate(); err != nil {
		return errors.Wrap(err, "codec")
	}
	if cfg.Codec.AttrLen > 0xff || cfg.Codec.TagLen > 0xff {
		return errors.Newf("codec widths must fit in one byte: attr_len=%d tag_len=%d", cfg.Codec.AttrLen, cfg.Codec.TagLen)
	}
	if cfg.Frame.MaxPayloadBytes == 0 {
		return errors.New("frame max_payload_bytes must be positive")
	}
	if strings.TrimSpace(cfg.Log.Level) == "" {
		return errors.New("log level is required")
	}
	if _, ok := logging.ParseLevel(cfg.Log.Level); !ok {
		return errors.Newf("unknown log level %q", cfg.Log.Level)
	}
	return nil
}
