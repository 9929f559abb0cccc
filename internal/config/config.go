// Package config loads the equalizer host configuration from defaults, an
// optional config file, EQ_* environment variables and command-line flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/eq"
	"github.com/cwbudde/algo-eq/param"
)

// EnvPrefix is the prefix of environment overrides, e.g. EQ_SAMPLE_RATE.
const EnvPrefix = "EQ"

// Errors returned by Load and Validate.
var (
	ErrInvalidConfig = errors.New("config: invalid configuration")
	ErrInvalidParam  = errors.New("config: invalid parameter override")
)

// Config holds all the configuration of an equalizer host.
type Config struct {
	SampleRate  float64            `mapstructure:"sample_rate"`
	BlockSize   int                `mapstructure:"block_size"`
	Channels    int                `mapstructure:"channels"`
	ChannelMode string             `mapstructure:"channel_mode"`
	Log         LogConfig          `mapstructure:"log"`
	Control     ControlConfig      `mapstructure:"control"`
	Params      map[string]float64 `mapstructure:"params"`
}

// LogConfig selects the log level and handler format.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ControlConfig configures the HTTP control surface. An empty Addr
// disables it.
type ControlConfig struct {
	Addr string `mapstructure:"addr"`
}

// New returns a Config with default values.
func New() *Config {
	pc := core.DefaultProcessorConfig()
	cfg := &Config{
		SampleRate:  pc.SampleRate,
		BlockSize:   pc.BlockSize,
		Channels:    pc.Channels,
		ChannelMode: eq.ModeStereo.String(),
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Params: make(map[string]float64),
	}
	for _, p := range param.NewEQLayout().All() {
		cfg.Params[p.ID] = p.Default
	}
	return cfg
}

// BindFlags registers the configuration flags on fs.
func BindFlags(fs *pflag.FlagSet) {
	def := New()
	fs.String("config", "", "path to a YAML, TOML or JSON config file")
	fs.Float64("sample-rate", def.SampleRate, "processing sample rate in Hz")
	fs.Int("block-size", def.BlockSize, "maximum block size in frames")
	fs.Int("channels", def.Channels, "channel count (1 or 2)")
	fs.String("channel-mode", def.ChannelMode, "stereo or dual-mono")
	fs.String("log-level", def.Log.Level, "log level (debug, info, warn, error)")
	fs.String("log-format", def.Log.Format, "log format (text or json)")
	fs.String("control-addr", def.Control.Addr, "HTTP control listen address, empty to disable")
	fs.StringToString("param", nil, "initial parameter values, e.g. --param peak_gain=6")
}

var flagKeys = map[string]string{
	"sample-rate":  "sample_rate",
	"block-size":   "block_size",
	"channels":     "channels",
	"channel-mode": "channel_mode",
	"log-level":    "log.level",
	"log-format":   "log.format",
	"control-addr": "control.addr",
}

// Load builds a Config. fs may be nil; when set, its --config flag names
// the config file and changed flags override every other source.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v, New())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("config: bind flag %s: %w", name, err)
				}
			}
		}
		if path, _ := fs.GetString("config"); path != "" {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("config: read %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}

	if fs != nil {
		overrides, err := fs.GetStringToString("param")
		if err == nil {
			for id, raw := range overrides {
				val, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
				if err != nil {
					return nil, fmt.Errorf("%w: %s=%q", ErrInvalidParam, id, raw)
				}
				cfg.Params[id] = val
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, def *Config) {
	v.SetDefault("sample_rate", def.SampleRate)
	v.SetDefault("block_size", def.BlockSize)
	v.SetDefault("channels", def.Channels)
	v.SetDefault("channel_mode", def.ChannelMode)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)
	v.SetDefault("control.addr", def.Control.Addr)
	for id, val := range def.Params {
		v.SetDefault("params."+id, val)
	}
}

// Validate checks the processor settings and parameter ids.
func (c *Config) Validate() error {
	if !(c.SampleRate > 0) {
		return fmt.Errorf("%w: sample_rate %v", ErrInvalidConfig, c.SampleRate)
	}
	if c.BlockSize <= 0 {
		return fmt.Errorf("%w: block_size %d", ErrInvalidConfig, c.BlockSize)
	}
	if c.Channels != 1 && c.Channels != 2 {
		return fmt.Errorf("%w: channels %d", ErrInvalidConfig, c.Channels)
	}
	if _, err := c.Mode(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	layout := param.NewEQLayout()
	for id := range c.Params {
		if layout.Get(id) == nil {
			return fmt.Errorf("%w: unknown id %q", ErrInvalidParam, id)
		}
	}
	return nil
}

// Mode parses ChannelMode.
func (c *Config) Mode() (eq.ChannelMode, error) {
	return eq.ParseChannelMode(c.ChannelMode)
}

// ProcessorConfig returns the prepare-time settings.
func (c *Config) ProcessorConfig() core.ProcessorConfig {
	return core.ApplyProcessorOptions(
		core.WithSampleRate(c.SampleRate),
		core.WithBlockSize(c.BlockSize),
		core.WithChannels(c.Channels),
	)
}

// ApplyParams writes the configured initial values into store.
func (c *Config) ApplyParams(store *param.Store) error {
	return store.Apply(c.Params)
}
