package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     App
	Logging Logging
	Flags   map[string]string
	Args    []string
}

// App holds the options the UI program is started with.
type App struct {
	StartDir     string
	SettingsPath string
	Width        int
	Height       int
	Watch        bool
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envDir      = "DUALPANE_DIR"
	envSettings = "DUALPANE_SETTINGS"
	envWidth    = "DUALPANE_WIDTH"
	envHeight   = "DUALPANE_HEIGHT"
	envWatch    = "DUALPANE_WATCH"
	envTrace    = "DUALPANE_TRACE"
	envLogFile  = "DUALPANE_LOG_FILE"
)

// Options are the raw flag values bound to a FlagSet.
type Options struct {
	dir      *string
	settings *string
	width    *int
	height   *int
	watch    *bool
	trace    *bool
	logFile  *string
}

// Bind registers the command line flags on fs. Defaults come from environ so
// that flags override the environment.
func Bind(fs *pflag.FlagSet, environ []string) *Options {
	env := parseEnv(environ)
	return &Options{
		dir:      fs.String("dir", envOrDefault(env, envDir, ""), "directory to open in both panes (defaults to the working directory)"),
		settings: fs.String("settings", envOrDefault(env, envSettings, ""), "path to the settings file"),
		width:    fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)"),
		height:   fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)"),
		watch:    fs.Bool("watch", envOrBool(env, envWatch, true), "refresh panes when their directories change"),
		trace:    fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging"),
		logFile:  fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file"),
	}
}

// Config validates the parsed values. A positional directory argument takes
// precedence over --dir.
func (o *Options) Config(args, positional []string) (Config, error) {
	if *o.width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *o.width)
	}
	if *o.height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *o.height)
	}
	if len(positional) > 1 {
		return Config{}, fmt.Errorf("expected at most one directory, got %d", len(positional))
	}
	dir := *o.dir
	if len(positional) == 1 {
		dir = positional[0]
	}
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("resolve working directory: %w", err)
		}
		dir = cwd
	}

	cfg := Config{
		App: App{
			StartDir:     dir,
			SettingsPath: *o.settings,
			Width:        *o.width,
			Height:       *o.height,
			Watch:        *o.watch,
		},
		Logging: Logging{
			FilePath: *o.logFile,
			Trace:    *o.trace,
		},
		Flags: map[string]string{
			"dir":      dir,
			"settings": *o.settings,
			"width":    strconv.Itoa(*o.width),
			"height":   strconv.Itoa(*o.height),
			"watch":    strconv.FormatBool(*o.watch),
			"trace":    strconv.FormatBool(*o.trace),
			"logFile":  *o.logFile,
		},
		Args: append([]string(nil), args...),
	}
	return cfg, nil
}

// LoadArgs parses args on a private FlagSet. The cobra root command binds the
// same flags itself; this entry point serves tests and embedding.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("dualpane", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	opts := Bind(fs, environ)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return opts.Config(args, fs.Args())
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

// Validate checks that the start directory exists and is a directory.
func Validate(cfg Config) error {
	info, err := os.Stat(cfg.App.StartDir)
	if err != nil {
		return fmt.Errorf("start directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("start directory %s is not a directory", cfg.App.StartDir)
	}
	return nil
}
