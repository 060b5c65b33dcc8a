package cli

import (
	"time"

	"syntaxtest/internal/config"
)

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

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		TestPath:       f.TestPath,
		SubPath:        f.SubPath,
		NoColor:        f.NoColor,
		Editor:         f.Editor,
		Engine:         f.Engine,
		Timeout:        f.Timeout,
		NameFilter:     f.NameFilter,
		Ignore:         f.Ignore,
		NonInteractive: f.NonInteractive,
	}
}
