// Package config holds runtime configuration: defaults, config-file loading,
// and validation. Values are resolved with the priority
// flags > environment > config file > defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// DefaultPrefix is the export-folder name prefix the locator matches
// timestamps against (folders look like voicenotes_<YYYYMMDDHHMM>_...).
const DefaultPrefix = "voicenotes"

// ConfigFileName is the optional per-root config file.
const ConfigFileName = ".notesift.yaml"

// Config holds all runtime settings. It is populated by [Load] and passed
// (by pointer) to packages that need it.
type Config struct {
	// Paths.
	RootDir    string // Base directory; history and output default beneath it.
	HistoryDir string // Default: "<root>/history".
	TargetDir  string // Default: "<root>/new".

	// Snapshot discovery.
	FolderPrefix string // Default: "voicenotes".

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Default: "<root>/notesift_<YYYYMMDD_HHMMSS>.log".
}

// Overrides carries values captured from CLI flags. Zero-valued fields fall
// through to the environment, the config file, and finally the defaults.
type Overrides struct {
	RootDir    string
	HistoryDir string
	TargetDir  string
	Prefix     string
	ConfigFile string
	LogFile    string
	Verbose    bool
	Color      string // "", "always", or "never".
}

// fileConfig is the YAML config file schema. Empty fields keep the value
// resolved so far.
type fileConfig struct {
	HistoryDir   string `yaml:"history_dir"`
	TargetDir    string `yaml:"target_dir"`
	FolderPrefix string `yaml:"folder_prefix"`
	LogFile      string `yaml:"log_file"`
	Color        string `yaml:"color"`
}

// DefaultConfig returns a Config with defaults matching the original tool:
// everything is anchored at the current directory until a root is given.
func DefaultConfig() Config {
	return Config{
		RootDir:      ".",
		FolderPrefix: DefaultPrefix,
		ColorMode:    ColorAuto,
	}
}

// Load resolves the effective configuration from o, the NOTESIFT_* env vars,
// the config file, and the defaults. Derived paths (history, target, log
// file) are filled in last so a root override moves all of them together.
func Load(o Overrides) (*Config, error) {
	cfg := DefaultConfig()

	if o.RootDir != "" {
		cfg.RootDir = o.RootDir
	} else if env := os.Getenv("NOTESIFT_ROOT"); env != "" {
		cfg.RootDir = env
	}
	cfg.RootDir = NormalizeDirArg(cfg.RootDir)

	if err := loadFile(&cfg, o.ConfigFile); err != nil {
		return nil, err
	}

	if env := os.Getenv("NOTESIFT_TARGET"); env != "" {
		cfg.TargetDir = env
	}

	// Flags win over everything resolved so far.
	if o.HistoryDir != "" {
		cfg.HistoryDir = o.HistoryDir
	}
	if o.TargetDir != "" {
		cfg.TargetDir = o.TargetDir
	}
	if o.Prefix != "" {
		cfg.FolderPrefix = o.Prefix
	}
	if o.LogFile != "" {
		cfg.LogFile = o.LogFile
	}
	if o.Color != "" {
		cfg.ColorMode = ColorMode(o.Color)
	}
	cfg.Verbose = cfg.Verbose || o.Verbose

	if cfg.HistoryDir == "" {
		cfg.HistoryDir = filepath.Join(cfg.RootDir, "history")
	}
	if cfg.TargetDir == "" {
		cfg.TargetDir = filepath.Join(cfg.RootDir, "new")
	}
	if cfg.LogFile == "" {
		stamp := time.Now().Format("20060102_150405")
		cfg.LogFile = filepath.Join(cfg.RootDir, fmt.Sprintf("notesift_%s.log", stamp))
	}
	cfg.HistoryDir = NormalizeDirArg(cfg.HistoryDir)
	cfg.TargetDir = NormalizeDirArg(cfg.TargetDir)

	return &cfg, nil
}

// loadFile merges the YAML config file into cfg. An explicit path that does
// not exist is an error; the default per-root file is optional.
func loadFile(cfg *Config, explicit string) error {
	path := explicit
	if path == "" {
		path = filepath.Join(cfg.RootDir, ConfigFileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if explicit == "" && os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.HistoryDir != "" {
		cfg.HistoryDir = fc.HistoryDir
	}
	if fc.TargetDir != "" {
		cfg.TargetDir = fc.TargetDir
	}
	if fc.FolderPrefix != "" {
		cfg.FolderPrefix = fc.FolderPrefix
	}
	if fc.LogFile != "" {
		cfg.LogFile = fc.LogFile
	}
	if fc.Color != "" {
		cfg.ColorMode = ColorMode(fc.Color)
	}
	return nil
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks that enum fields hold valid values and required paths are
// non-empty.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.FolderPrefix == "" {
		return errors.New("folder prefix must not be empty")
	}
	if c.HistoryDir == "" || c.TargetDir == "" {
		return errors.New("history and target directories must not be empty")
	}
	return nil
}

// ValidatePaths ensures the resolved target directory is not inside (or equal
// to) the resolved history directory, so the copy pass can never feed on its
// own output. Both arguments must be absolute paths.
func (c *Config) ValidatePaths(historyAbs, targetAbs string) error {
	sep := string(filepath.Separator)
	if targetAbs == historyAbs || strings.HasPrefix(targetAbs+sep, historyAbs+sep) {
		return errors.New("target directory must not be inside history directory")
	}
	return nil
}
