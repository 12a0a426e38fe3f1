package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ispmail/userctl/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envDatabase  = "ISPMAIL_USERCTL_DB"
	envBlocklist = "ISPMAIL_USERCTL_BLOCKLIST"
	envRebuild   = "ISPMAIL_USERCTL_POSTMAP"
	envWidth     = "ISPMAIL_USERCTL_WIDTH"
	envHeight    = "ISPMAIL_USERCTL_HEIGHT"
	envTrace     = "ISPMAIL_USERCTL_TRACE"
	envLogFile   = "ISPMAIL_USERCTL_LOG_FILE"
)

const (
	defaultDatabase  = "mailserver.sqlite"
	defaultBlocklist = "/etc/postfix/access"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("ispmail-userctl", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	database := fs.String("db", envOrDefault(env, envDatabase, defaultDatabase), "path to the mailserver sqlite database")
	blocklist := fs.String("blocklist", envOrDefault(env, envBlocklist, defaultBlocklist), "path to the postfix access blocklist file")
	rebuild := fs.String("postmap", envOrDefault(env, envRebuild, ""), "command rebuilding the postfix lookup index (default: postmap hash:<blocklist>)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "fixed viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "fixed viewport height in rows (0 uses terminal height)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	rebuildCmd := strings.TrimSpace(*rebuild)
	if rebuildCmd == "" {
		rebuildCmd = "postmap hash:" + *blocklist
	}

	cfg := Config{
		App: app.Config{
			DatabasePath:   *database,
			BlocklistPath:  *blocklist,
			RebuildCommand: rebuildCmd,
			Width:          *width,
			Height:         *height,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"db":        *database,
			"blocklist": *blocklist,
			"postmap":   rebuildCmd,
			"width":     strconv.Itoa(*width),
			"height":    strconv.Itoa(*height),
			"trace":     strconv.FormatBool(*trace),
			"logFile":   *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.DatabasePath) == "" {
		return fmt.Errorf("database path must not be empty")
	}
	if strings.TrimSpace(cfg.App.BlocklistPath) == "" {
		return fmt.Errorf("blocklist path must not be empty")
	}
	return nil
}
