package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/womat/debug"
	"gopkg.in/yaml.v2"
)

// ErrInvalidConfig is returned by LoadConfig for values the board cannot use.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the application configuration. Attention!
// Only the board wiring and the ambient settings are configurable, the
// measurement constants are compiled in.
// Config defines the struct of global config and the struct of the configuration file
type Config struct {
	Gpio     GpioConfig    `yaml:"gpio"`
	Display  DisplayConfig `yaml:"display"`
	Simulate int           `yaml:"simulate"`
	Flag     FlagConfig    `yaml:"-"`
	Debug    DebugConfig   `yaml:"debug"`
}

// FlagConfig defines the configured flags (parameters)
type FlagConfig struct {
	Debug      string
	ConfigFile string
}

// GpioConfig defines the gpiod lines of the sensor and the LED
type GpioConfig struct {
	Chip   string `yaml:"chip"`
	Sensor int    `yaml:"sensor"`
	Edge   string `yaml:"edge"`
	Bias   string `yaml:"bias"`
	LED    int    `yaml:"led"`
}

// DisplayConfig defines the SPI port and the BCM pins of the display
type DisplayConfig struct {
	SPI       string `yaml:"spi"`
	Frequency int    `yaml:"frequency"`
	CS        int    `yaml:"cs"`
	MOSI      int    `yaml:"mosi"`
	SCLK      int    `yaml:"sclk"`
}

// DebugConfig defines the struct of the debug configuration and configuration file
type DebugConfig struct {
	File       io.WriteCloser `yaml:"-"`
	Flag       int            `yaml:"-"`
	FlagString string         `yaml:"flag"`
	FileString string         `yaml:"file"`
}

func NewConfig() *Config {
	return &Config{
		Gpio: GpioConfig{
			Chip:   "gpiochip0",
			Sensor: 17,
			Edge:   "falling",
			Bias:   "pullup",
			LED:    27,
		},
		Display: DisplayConfig{
			Frequency: 1000,
			CS:        8,
			MOSI:      10,
			SCLK:      11,
		},
		Flag: FlagConfig{},
		Debug: DebugConfig{
			FileString: "stderr",
			FlagString: "standard",
		},
	}
}

func (c *Config) LoadConfig() error {
	if err := c.readConfigFile(); err != nil {
		return fmt.Errorf("error reading config file %q: %w", c.Flag.ConfigFile, err)
	}

	if err := c.validate(); err != nil {
		return err
	}

	if c.Flag.Debug != "" {
		c.Debug.FlagString = c.Flag.Debug
	}
	if err := c.setDebugConfig(); err != nil {
		return fmt.Errorf("unable to open debug file %q: %w", c.Debug.FileString, err)
	}

	return nil
}

func (c *Config) readConfigFile() error {
	file, err := os.Open(c.Flag.ConfigFile)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	decoder := yaml.NewDecoder(file)
	if err = decoder.Decode(c); err != nil {
		return err
	}

	return nil
}

func (c *Config) validate() error {
	switch c.Gpio.Edge {
	case "rising", "falling", "both":
	default:
		return fmt.Errorf("%w: gpio.edge %q", ErrInvalidConfig, c.Gpio.Edge)
	}

	switch c.Gpio.Bias {
	case "pullup", "pulldown", "none":
	default:
		return fmt.Errorf("%w: gpio.bias %q", ErrInvalidConfig, c.Gpio.Bias)
	}

	if c.Display.Frequency <= 0 {
		return fmt.Errorf("%w: display.frequency %d", ErrInvalidConfig, c.Display.Frequency)
	}
	if c.Simulate < 0 {
		return fmt.Errorf("%w: simulate %d", ErrInvalidConfig, c.Simulate)
	}

	return nil
}

func (c *Config) setDebugConfig() (err error) {
	// defines Debug section of global.Config
	switch c.Debug.FlagString {
	case "trace", "full":
		c.Debug.Flag = debug.Full
	case "debug":
		c.Debug.Flag = debug.Warning | debug.Info | debug.Error | debug.Fatal | debug.Debug
	case "standard":
		c.Debug.Flag = debug.Standard
	}

	switch c.Debug.FileString {
	case "stderr":
		c.Debug.File = os.Stderr
	case "stdout":
		c.Debug.File = os.Stdout
	default:
		if c.Debug.File, err = os.OpenFile(c.Debug.FileString, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666); err != nil {
			return
		}
	}

	return
}
