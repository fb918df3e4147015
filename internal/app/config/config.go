package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/picoscope-go/picoscope/internal/domain"
)

type Config struct {
	Device   DeviceConfig    `yaml:"device"`
	Channels []ChannelConfig `yaml:"channels"`
	Trigger  TriggerConfig   `yaml:"trigger"`
	Capture  CaptureConfig   `yaml:"capture"`
	SigGen   SigGenConfig    `yaml:"siggen"`
	Archive  ArchiveConfig   `yaml:"archive"`
	Metrics  MetricsConfig   `yaml:"metrics"`
}

type DeviceConfig struct {
	Generation   string        `yaml:"generation"`
	Serial       string        `yaml:"serial"`
	Resolution   string        `yaml:"resolution"`
	PollInterval time.Duration `yaml:"poll_interval"`
	WaitTimeout  time.Duration `yaml:"wait_timeout"`
}

type ChannelConfig struct {
	Channel     string  `yaml:"channel"`
	Range       string  `yaml:"range"`
	Coupling    string  `yaml:"coupling"`
	OffsetVolts float64 `yaml:"offset_volts"`
	Bandwidth   string  `yaml:"bandwidth"`
}

type TriggerConfig struct {
	Channel       string  `yaml:"channel"`
	ThresholdMV   float64 `yaml:"threshold_mv"`
	Direction     string  `yaml:"direction"`
	DelaySamples  uint64  `yaml:"delay_samples"`
	AutoTriggerMS int32   `yaml:"auto_trigger_ms"`
}

type CaptureConfig struct {
	Timebase          uint32 `yaml:"timebase"`
	Samples           int    `yaml:"samples"`
	PreTriggerPercent int    `yaml:"pre_trigger_percent"`
	Segment           uint32 `yaml:"segment"`
	DataType          string `yaml:"datatype"`
}

type SigGenConfig struct {
	Enabled     bool    `yaml:"enabled"`
	FrequencyHz float64 `yaml:"frequency_hz"`
	Pk2PkMV     float64 `yaml:"pk2pk_mv"`
	OffsetMV    float64 `yaml:"offset_mv"`
	Waveform    string  `yaml:"waveform"`
}

type ArchiveConfig struct {
	ConnString string `yaml:"conn_string"`
	Table      string `yaml:"table"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Device.Generation == "" {
		c.Device.Generation = "typed"
	}
	if c.Device.Resolution == "" {
		c.Device.Resolution = "8bit"
	}
	if c.Device.PollInterval == 0 {
		c.Device.PollInterval = time.Millisecond
	}
	if c.Device.WaitTimeout == 0 {
		c.Device.WaitTimeout = 5 * time.Second
	}
	if c.Capture.Samples == 0 {
		c.Capture.Samples = 1000
	}
	if c.Capture.PreTriggerPercent == 0 {
		c.Capture.PreTriggerPercent = 50
	}
	if c.Capture.DataType == "" {
		c.Capture.DataType = "int16"
	}
	if c.Trigger.AutoTriggerMS == 0 {
		c.Trigger.AutoTriggerMS = 3000
	}
	if c.Archive.Table == "" {
		c.Archive.Table = "captures"
	}
	if c.Metrics.Addr == "" {
		c.Metrics.Addr = ":9100"
	}
	for i := range c.Channels {
		if c.Channels[i].Coupling == "" {
			c.Channels[i].Coupling = "dc"
		}
		if c.Channels[i].Bandwidth == "" {
			c.Channels[i].Bandwidth = "full"
		}
	}
}

func (c *Config) validate() error {
	if _, err := domain.ParseGeneration(c.Device.Generation); err != nil {
		return fmt.Errorf("device config: %w", err)
	}
	if _, err := domain.ParseResolution(c.Device.Resolution); err != nil {
		return fmt.Errorf("device config: %w", err)
	}
	if len(c.Channels) == 0 {
		return fmt.Errorf("at least one channel must be configured")
	}
	for _, ch := range c.Channels {
		if _, err := domain.ParseChannel(ch.Channel); err != nil {
			return fmt.Errorf("channel config: %w", err)
		}
		if _, err := domain.ParseRange(ch.Range); err != nil {
			return fmt.Errorf("channel %s: %w", ch.Channel, err)
		}
		if _, err := domain.ParseCoupling(ch.Coupling); err != nil {
			return fmt.Errorf("channel %s: %w", ch.Channel, err)
		}
		if _, err := domain.ParseBandwidth(ch.Bandwidth); err != nil {
			return fmt.Errorf("channel %s: %w", ch.Channel, err)
		}
	}
	if c.Trigger.Channel != "" {
		if _, err := domain.ParseChannel(c.Trigger.Channel); err != nil {
			return fmt.Errorf("trigger config: %w", err)
		}
		if _, err := domain.ParseTriggerDirection(c.Trigger.Direction); err != nil {
			return fmt.Errorf("trigger config: %w", err)
		}
	}
	if _, err := domain.ParseDataType(c.Capture.DataType); err != nil {
		return fmt.Errorf("capture config: %w", err)
	}
	if c.Capture.Samples <= 0 {
		return fmt.Errorf("capture.samples must be > 0")
	}
	if c.Capture.PreTriggerPercent < 0 || c.Capture.PreTriggerPercent > 100 {
		return fmt.Errorf("capture.pre_trigger_percent must be in [0,100]")
	}
	if c.SigGen.Enabled {
		if _, err := domain.ParseWaveform(c.SigGen.Waveform); err != nil {
			return fmt.Errorf("siggen config: %w", err)
		}
		if c.SigGen.FrequencyHz <= 0 {
			return fmt.Errorf("siggen.frequency_hz must be > 0")
		}
	}
	return nil
}
