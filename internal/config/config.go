// Package config holds the configuration structures for the surrealorm CLI.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/madeindigio/surrealorm/pkg/version"
)

// Config holds the configuration shared by every surrealorm subcommand.
type Config struct {
	SurrealDBURL       string `mapstructure:"db"`
	SurrealDBUser      string `mapstructure:"user"`
	SurrealDBPass      string `mapstructure:"pass"`
	SurrealDBNamespace string `mapstructure:"ns"`
	SurrealDBDatabase  string `mapstructure:"db-name"`

	MigrationsDir string `mapstructure:"migrations-dir"`
	// Mode controls how unresolved schema ambiguities (e.g. multi-candidate
	// field renames) are handled. "strict" refuses to guess and fails the
	// command; "relaxed" falls back to an interactive prompt.
	Mode string `mapstructure:"mode"`

	LogFile string `mapstructure:"log"`
	// When true, disables all logging output to stdout/stderr.
	// Logs will only be written to the configured log file (if any).
	DisableOutputLog bool `mapstructure:"disable-output-log"`
	Verbose          bool `mapstructure:"verbose"`
}

// Load loads the configuration from CLI flags and environment variables.
func Load() (*Config, error) {
	// Define flags
	// To add a new CLI flag:
	// 1) Register it here with pflag (or pflag.String/PBool/etc)
	// 2) Call pflag.Parse() (done below)
	// 3) Bind pflags to viper via v.BindPFlags(pflag.CommandLine)
	// 4) Read the value from the returned Config or via v.GetXXX
	// Note: flags that should cause the process to exit early (like --version)
	// can be handled immediately after parsing, before continuing with config
	// initialization.

	pflag.String("config", "", "Path to YAML configuration file")

	pflag.String("db", "memory", "URL for the SurrealDB instance (use \"memory\" for an embedded in-memory instance)")
	pflag.String("user", "root", "Username for SurrealDB")
	pflag.String("pass", "root", "Password for SurrealDB")
	pflag.String("ns", "test", "Namespace for SurrealDB")
	pflag.String("db-name", "test", "Database for SurrealDB")

	pflag.String("migrations-dir", "./migrations", "Directory holding migration files")
	pflag.String("mode", "strict", "Ambiguity resolution mode: strict or relaxed")

	pflag.String("log", "", "Path to the log file (logs will be written to both stderr and file)")
	pflag.Bool("disable-output-log", false, "Disable logging to stdout/stderr; only write to log file if configured")
	pflag.BoolP("verbose", "v", false, "Enable verbose logging")

	// Version flag is handled here so config package can manage early-exit flags
	// Also register a version flag with the standard library's flag set so
	// packages that use the stdlib flag package (or call flag.Parse)
	// won't error when users pass --version to this binary.
	flag.Bool("version", false, "Print version and exit")

	// Make any flags registered with the stdlib visible to pflag so a single
	// unified parse will work for both kinds of flags.
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)

	// Do not re-register the "version" flag with pflag here — it is
	// registered via the standard library flag set above and copied into
	// pflag by AddGoFlagSet. Registering it twice causes a "flag redefined"
	// panic when parsing.
	pflag.Parse()

	// Handle early-exit flags (version) before binding to viper
	if ver := pflag.Lookup("version"); ver != nil && ver.Value.String() == "true" {
		fmt.Println(version.Describe())
		os.Exit(0)
	}

	// Initialize viper
	v := viper.New()

	// Read YAML/TOML config file if provided via --config flag
	configPath := pflag.Lookup("config").Value.String()
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		// No --config flag provided, try to find .surrealorm.toml in standard locations
		configFound := false

		if cwdPath := ".surrealorm.toml"; fileExists(cwdPath) {
			v.SetConfigFile(cwdPath)
			if err := v.ReadInConfig(); err == nil {
				configFound = true
				slog.Info("Using configuration file from working directory", "path", cwdPath)
			}
		}

		if !configFound {
			if homeDir, err := os.UserHomeDir(); err == nil {
				var standardConfigPath string

				// Use OS-specific standard location
				if runtime.GOOS == "darwin" {
					standardConfigPath = filepath.Join(homeDir, "Library", "Application Support", "surrealorm", "config.toml")
				} else {
					standardConfigPath = filepath.Join(homeDir, ".config", "surrealorm", "config.toml")
				}

				if fileExists(standardConfigPath) {
					v.SetConfigFile(standardConfigPath)
					if err := v.ReadInConfig(); err == nil {
						configFound = true
						slog.Info("Using configuration file from standard location", "path", standardConfigPath)
					}
				}
			}
		}

		// If no config file found in standard locations, continue without it
		// (environment variables and defaults will be used)
		if !configFound {
			slog.Info("No configuration file found, using environment variables and defaults")
		}
	}

	// Bind flags to viper
	if err := v.BindPFlags(pflag.CommandLine); err != nil {
		return nil, fmt.Errorf("failed to bind pflags: %w", err)
	}

	// Configure viper to read environment variables
	v.SetEnvPrefix("SURREALORM")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	// Unmarshal the configuration
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate the configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.SurrealDBURL == "" {
		return errors.New("a SurrealDB URL (or \"memory\") must be provided via --db")
	}

	if c.MigrationsDir == "" {
		return errors.New("a migrations directory must be provided via --migrations-dir")
	}

	switch c.Mode {
	case "strict", "relaxed":
	default:
		return fmt.Errorf("invalid --mode %q: must be \"strict\" or \"relaxed\"", c.Mode)
	}

	return nil
}

// GetSurrealDBNamespace returns the SurrealDB namespace.
func (c *Config) GetSurrealDBNamespace() string {
	if c.SurrealDBNamespace == "" {
		return "test"
	}
	return c.SurrealDBNamespace
}

// GetSurrealDBDatabase returns the SurrealDB database.
func (c *Config) GetSurrealDBDatabase() string {
	if c.SurrealDBDatabase == "" {
		return "test"
	}
	return c.SurrealDBDatabase
}

// Relaxed reports whether ambiguity resolution should fall back to an
// interactive prompt rather than failing the command outright.
func (c *Config) Relaxed() bool {
	return c.Mode == "relaxed"
}

// Getenv reads an environment variable or returns a default value.
func Getenv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// SetupLogging configures slog output.
func (c *Config) SetupLogging() error {
	var writers []io.Writer

	if !c.DisableOutputLog {
		writers = append(writers, os.Stderr)
	}

	// If log file is specified, also write to file
	if c.LogFile != "" {
		logFile, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file %s: %w", c.LogFile, err)
		}
		writers = append(writers, logFile)
	}

	// If nothing is configured (disable-output-log=true and no file), discard logs.
	if len(writers) == 0 {
		writers = append(writers, io.Discard)
	}

	multiWriter := io.MultiWriter(writers...)

	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(multiWriter, &slog.HandlerOptions{
		Level:     level,
		AddSource: false,
	})

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return nil
}
