package engine

import (
	"errors"
	"io/fs"
	"os"
	"reflect"
	"time"

	jlconfig "github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of an Orchestrator and of the engine systems.
//
// Values are layered: DefaultConfig, then an optional YAML file, then the
// environment. Environment keys are the config tags below, for example
//
//	KUMIKI_DELTA_TIME=50ms
//	KUMIKI_LOG_LEVEL=trace
type Config struct {
	// DeltaTime is the fixed simulation step.
	DeltaTime time.Duration `yaml:"delta_time" config:"KUMIKI_DELTA_TIME"`
	// MaxFrameTime caps the wall-clock time accounted to a single frame.
	MaxFrameTime time.Duration `yaml:"max_frame_time" config:"KUMIKI_MAX_FRAME_TIME"`
	// Debug enables the debug console and shell.
	Debug bool `yaml:"debug" config:"KUMIKI_DEBUG"`
	// ResourcePath is the root of the resource tree used by Orchestrator.File.
	ResourcePath string `yaml:"resource_path" config:"KUMIKI_RESOURCE_PATH"`
	// MaxDispatchDepth bounds immediate event recursion. Zero is unbounded.
	MaxDispatchDepth int `yaml:"max_dispatch_depth" config:"KUMIKI_MAX_DISPATCH_DEPTH"`
	// ConsoleBuffer is the capacity of the console hand-off channel.
	ConsoleBuffer int `yaml:"console_buffer" config:"KUMIKI_CONSOLE_BUFFER"`
	// IdleSleep is slept after a frame that ran no fixed update. Zero spins.
	IdleSleep time.Duration `yaml:"idle_sleep" config:"KUMIKI_IDLE_SLEEP"`
	// WatchExtensions restricts which files trigger a resource reload.
	WatchExtensions []string `yaml:"watch_extensions" config:"KUMIKI_WATCH_EXTENSIONS"`

	LogLevel  string `yaml:"log_level" config:"KUMIKI_LOG_LEVEL"`
	LogPretty bool   `yaml:"log_pretty" config:"KUMIKI_LOG_PRETTY"`

	// StatsdAddress enables telemetry when set, e.g. "localhost:8125".
	StatsdAddress string   `yaml:"statsd_address" config:"KUMIKI_STATSD_ADDRESS"`
	StatsdTags    []string `yaml:"statsd_tags" config:"KUMIKI_STATSD_TAGS"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		DeltaTime:       100 * time.Millisecond,
		MaxFrameTime:    250 * time.Millisecond,
		ResourcePath:    "resources",
		IdleSleep:       time.Millisecond,
		ConsoleBuffer:   16,
		WatchExtensions: []string{".yaml", ".yml", ".tengo"},
		LogLevel:        "info",
	}
}

// LoadConfig builds a Config from the defaults, the YAML file at path (if path
// is not empty and the file exists) and the environment, then validates it.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, eris.Wrapf(err, "read config %s", path)
		default:
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return cfg, eris.Wrapf(err, "parse config %s", path)
			}
		}
	}
	resetOverriddenLists(&cfg)
	if err := jlconfig.FromEnv().To(&cfg); err != nil {
		return cfg, eris.Wrap(err, "load config from environment")
	}
	return cfg, cfg.Validate()
}

// resetOverriddenLists clears every list field whose environment key is set,
// so that the environment replaces the list instead of extending it.
func resetOverriddenLists(cfg *Config) {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()
	for i := range t.NumField() {
		field := t.Field(i)
		if field.Type.Kind() != reflect.Slice {
			continue
		}
		if key := field.Tag.Get("config"); key != "" {
			if _, ok := os.LookupEnv(key); ok {
				v.Field(i).SetZero()
			}
		}
	}
}

// Validate checks the invariants the loop relies on.
func (c Config) Validate() error {
	switch {
	case c.DeltaTime <= 0:
		return eris.Wrapf(ErrInvalidConfig, "delta_time must be positive, got %s", c.DeltaTime)
	case c.MaxFrameTime < c.DeltaTime:
		return eris.Wrapf(ErrInvalidConfig, "max_frame_time %s is below delta_time %s", c.MaxFrameTime, c.DeltaTime)
	case c.MaxDispatchDepth < 0:
		return eris.Wrapf(ErrInvalidConfig, "max_dispatch_depth must not be negative, got %d", c.MaxDispatchDepth)
	case c.IdleSleep < 0:
		return eris.Wrapf(ErrInvalidConfig, "idle_sleep must not be negative, got %s", c.IdleSleep)
	case c.ConsoleBuffer < 0:
		return eris.Wrapf(ErrInvalidConfig, "console_buffer must not be negative, got %d", c.ConsoleBuffer)
	}
	return nil
}
