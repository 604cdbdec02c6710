// Package config resolves runtime settings for the tetris binaries.
//
// Values are layered, later sources winning: built-in defaults, an optional
// dotenv file, TETRIS_* environment variables and finally command-line flags.
// Every setting has one flag name (e.g. -gravity-interval) and one variable
// name derived from it (TETRIS_GRAVITY_INTERVAL).
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// EnvPrefix is prepended to the upper-cased flag name to form a variable name.
const EnvPrefix = "TETRIS_"

// DefaultEnvFile is read when present; a missing default file is not an error.
const DefaultEnvFile = ".env"

// ErrInvalid wraps every validation failure returned by Load and Validate.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	// TPS is the number of host frames per second.
	TPS             int
	GravityInterval time.Duration
	RestartDelay    time.Duration
	// BlockSize is the on-screen size of one board cell in pixels.
	BlockSize int
	// Seed fixes the piece sequence. Zero draws from the global source.
	Seed        uint64
	Debug       bool
	MetricsAddr string
	LogLevel    string
	LogFile     string
	EnvFile     string
}

// Default returns the reference settings.
func Default() Config {
	return Config{
		TPS:             30,
		GravityInterval: 500 * time.Millisecond,
		RestartDelay:    2 * time.Second,
		BlockSize:       20,
		LogLevel:        "info",
		EnvFile:         DefaultEnvFile,
	}
}

// Load resolves the configuration from args (without the program name) and
// the environment seen through lookup, usually os.LookupEnv.
func Load(args []string, lookup func(string) (string, bool)) (*Config, error) {
	if lookup == nil {
		lookup = func(string) (string, bool) { return "", false }
	}

	// The flags are parsed once up front only to learn where the dotenv file is.
	probe := Default()
	probeFlags := newFlagSet(&probe)
	if err := probeFlags.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	envFile, explicit := DefaultEnvFile, false
	if v, ok := lookup(EnvName("env-file")); ok {
		envFile, explicit = v, true
	}
	probeFlags.Visit(func(f *flag.Flag) {
		if f.Name == "env-file" {
			envFile, explicit = probe.EnvFile, true
		}
	})

	cfg := Default()
	flags := newFlagSet(&cfg)

	if envFile != "" {
		values, err := godotenv.Read(envFile)
		switch {
		case errors.Is(err, fs.ErrNotExist) && !explicit:
		case err != nil:
			return nil, fmt.Errorf("read env file %s: %w", envFile, err)
		default:
			if err := apply(flags, envFile, func(k string) (string, bool) {
				v, ok := values[k]
				return v, ok
			}); err != nil {
				return nil, err
			}
		}
	}

	if err := apply(flags, "environment", lookup); err != nil {
		return nil, err
	}
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}
	cfg.EnvFile = envFile

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first out-of-range setting, wrapped in ErrInvalid.
func (c *Config) Validate() error {
	switch {
	case c.TPS < 1 || c.TPS > 240:
		return fmt.Errorf("%w: tps %d outside 1..240", ErrInvalid, c.TPS)
	case c.GravityInterval <= 0:
		return fmt.Errorf("%w: gravity interval must be positive, got %s", ErrInvalid, c.GravityInterval)
	case c.RestartDelay < 0:
		return fmt.Errorf("%w: restart delay must not be negative, got %s", ErrInvalid, c.RestartDelay)
	case c.BlockSize < 4 || c.BlockSize > 64:
		return fmt.Errorf("%w: block size %d outside 4..64", ErrInvalid, c.BlockSize)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level: %v", ErrInvalid, err)
	}
	return nil
}

// FrameDelta is the simulated time of one host frame in seconds.
func (c *Config) FrameDelta() float64 {
	return 1 / float64(c.TPS)
}

// EnvName maps a flag name to its environment variable.
func EnvName(flagName string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
}

// Usage writes the flag reference to w.
func Usage(w io.Writer) {
	cfg := Default()
	newFlagSet(&cfg).VisitAll(func(f *flag.Flag) {
		fmt.Fprintf(w, "  -%s (%s, default %q)\n\t%s\n", f.Name, EnvName(f.Name), f.DefValue, f.Usage)
	})
}

func newFlagSet(cfg *Config) *flag.FlagSet {
	set := flag.NewFlagSet("tetris", flag.ContinueOnError)
	set.SetOutput(io.Discard)
	set.IntVar(&cfg.TPS, "tps", cfg.TPS, "Host frames per second.")
	set.DurationVar(&cfg.GravityInterval, "gravity-interval", cfg.GravityInterval, "Time between gravity steps.")
	set.DurationVar(&cfg.RestartDelay, "restart-delay", cfg.RestartDelay, "Time a finished game stays on screen before restarting.")
	set.IntVar(&cfg.BlockSize, "block-size", cfg.BlockSize, "Cell size in pixels for the window frontend.")
	set.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Piece sequence seed; 0 picks a random sequence.")
	set.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Show the debug overlay.")
	set.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "Serve prometheus metrics on this address when set.")
	set.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Minimum log level (trace, debug, info, warn, error).")
	set.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Write logs to this file instead of stderr.")
	set.StringVar(&cfg.EnvFile, "env-file", cfg.EnvFile, "Dotenv file with TETRIS_* settings.")
	return set
}

// apply sets every flag whose variable get knows about.
func apply(flags *flag.FlagSet, source string, get func(string) (string, bool)) error {
	var err error
	flags.VisitAll(func(f *flag.Flag) {
		if err != nil {
			return
		}
		name := EnvName(f.Name)
		if v, ok := get(name); ok {
			if setErr := flags.Set(f.Name, v); setErr != nil {
				err = fmt.Errorf("%w: %s %s: %v", ErrInvalid, source, name, setErr)
			}
		}
	})
	return err
}
