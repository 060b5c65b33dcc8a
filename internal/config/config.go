package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Case discovery
	TestPath      string
	SubPath       string
	PathsToIgnore []string

	// Output settings
	NoColor        bool
	OutputJSONFile string
	OutputJSONDir  string

	// Engine and editor
	EngineCommand string
	Editor        string
	Timeout       time.Duration

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	TestPath       string
	SubPath        string
	NoColor        bool
	Editor         string
	Engine         string
	Timeout        time.Duration
	NameFilter     string
	Ignore         []string
	NonInteractive bool
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		SubPath:        DefaultSubPath,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
		Timeout:        DefaultTimeout,
		Editor:         os.Getenv(EnvEditor),
		EngineCommand:  os.Getenv(EnvEngine),
	}
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)
	return cfg
}

// LoadEnv loads variables from an .env file without overriding the real
// environment. A missing file is not an error.
func LoadEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return nil
}

// Apply overrides defaults with explicitly given flags
func (c *Config) Apply(flags Flags) {
	c.Flags = flags
	c.TestPath = flags.TestPath
	c.NoColor = flags.NoColor
	if flags.SubPath != "" {
		c.SubPath = flags.SubPath
	}
	if flags.Editor != "" {
		c.Editor = flags.Editor
	}
	if flags.Engine != "" {
		c.EngineCommand = flags.Engine
	}
	if flags.Timeout > 0 {
		c.Timeout = flags.Timeout
	}
	if len(flags.Ignore) > 0 {
		c.PathsToIgnore = append(c.PathsToIgnore, flags.Ignore...)
	}
}

// GetOutputPath returns the full path to the output JSON file.
// Resolves to an absolute path so run and results always use the same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// Colored reports whether styled output is wanted
func (c *Config) Colored() bool {
	return !c.NoColor
}
