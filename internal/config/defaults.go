package config

import "time"

const (
	// DefaultSubPath is traversed below the test path when no subpath is given
	DefaultSubPath = ""
	// DefaultOutputJSONFile is the default output JSON file name
	DefaultOutputJSONFile = "results.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = ".syntaxtest"
	// DefaultTimeout bounds a single engine invocation
	DefaultTimeout = 30 * time.Second
	// DefaultEnvFile is loaded before reading environment defaults
	DefaultEnvFile = ".env"
)

// Environment variables consulted for defaults
const (
	EnvEditor = "EDITOR"
	EnvEngine = "SYNTAXTEST_ENGINE"
)

// DefaultPathsToIgnore are the directories skipped during traversal. Every
// file below the test path is a case, so nothing is skipped by default.
var DefaultPathsToIgnore = []string{}
