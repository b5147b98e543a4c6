package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"

	"planet-sim/internal/simulation"
	"planet-sim/internal/telemetry"
)

// Front-ends.
const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
	FrontendHeadless = "headless"
)

// Config holds the command-line configuration.
type Config struct {
	Scenario      string        // JSON scenario path; empty for the built-in solar system
	Frontend      string        // window, terminal or headless
	Steps         int           // headless run length in days
	FrameInterval time.Duration // terminal refresh interval
	TrailCap      int           // 0 keeps full trails
	MinDistance   float64       // force distance floor in meters; 0 disables
	Scheme        string        // sequential or synchronized
	RedisAddr     string        // empty disables telemetry
	RedisChannel  string
	PublishEvery  int
	SampleEvery   int // headless report sampling
	LogLevel      string
}

// Default returns the reference configuration.
func Default() Config {
	return Config{
		Frontend:      FrontendWindow,
		Steps:         365,
		FrameInterval: time.Second / 30,
		Scheme:        simulation.Sequential.String(),
		RedisChannel:  telemetry.DefaultChannel,
		PublishEvery:  1,
		SampleEvery:   1,
		LogLevel:      "info",
	}
}

// Bind registers the configuration flags on fs, using the current values
// as defaults.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Scenario, "scenario", c.Scenario, "path to a JSON scenario file (default: built-in solar system)")
	fs.StringVar(&c.Frontend, "frontend", c.Frontend, "front-end: window, terminal or headless")
	fs.IntVar(&c.Steps, "steps", c.Steps, "number of days to simulate in headless mode")
	fs.DurationVar(&c.FrameInterval, "frame", c.FrameInterval, "terminal refresh interval")
	fs.IntVar(&c.TrailCap, "trail-cap", c.TrailCap, "keep only the last N trail points per body (0 keeps all)")
	fs.Float64Var(&c.MinDistance, "min-distance", c.MinDistance, "minimum separation in meters for force evaluation (0 treats coincident bodies as a fault)")
	fs.StringVar(&c.Scheme, "scheme", c.Scheme, "update scheme: sequential or synchronized")
	fs.StringVar(&c.RedisAddr, "redis", c.RedisAddr, "redis address for step telemetry (empty disables)")
	fs.StringVar(&c.RedisChannel, "redis-channel", c.RedisChannel, "redis pub/sub channel for step telemetry")
	fs.IntVar(&c.PublishEvery, "publish-every", c.PublishEvery, "publish telemetry every N steps")
	fs.IntVar(&c.SampleEvery, "sample-every", c.SampleEvery, "sample the headless report every N steps")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: trace, debug, info, warn, error")
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var result *multierror.Error

	switch c.Frontend {
	case FrontendWindow, FrontendTerminal, FrontendHeadless:
	default:
		result = multierror.Append(result, fmt.Errorf("unknown frontend %q", c.Frontend))
	}
	if c.Frontend == FrontendHeadless && c.Steps <= 0 {
		result = multierror.Append(result, fmt.Errorf("steps must be positive in headless mode, got %d", c.Steps))
	}
	if c.FrameInterval <= 0 {
		result = multierror.Append(result, fmt.Errorf("frame interval must be positive, got %s", c.FrameInterval))
	}
	if c.TrailCap < 0 {
		result = multierror.Append(result, fmt.Errorf("trail cap must be non-negative, got %d", c.TrailCap))
	}
	if c.MinDistance < 0 {
		result = multierror.Append(result, fmt.Errorf("min distance must be non-negative, got %g", c.MinDistance))
	}
	if _, err := simulation.ParseScheme(c.Scheme); err != nil {
		result = multierror.Append(result, err)
	}
	if c.PublishEvery < 1 {
		result = multierror.Append(result, fmt.Errorf("publish-every must be at least 1, got %d", c.PublishEvery))
	}
	if c.SampleEvery < 1 {
		result = multierror.Append(result, fmt.Errorf("sample-every must be at least 1, got %d", c.SampleEvery))
	}
	if hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		result = multierror.Append(result, fmt.Errorf("unknown log level %q", c.LogLevel))
	}

	return result.ErrorOrNil()
}

// Logger builds the root logger for the configured level.
func (c Config) Logger() hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:  "planetsim",
		Level: hclog.LevelFromString(c.LogLevel),
	})
}
