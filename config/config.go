// Package config provides host configuration from command-line and the
// calculator parameter set from a YAML parameter file.
package config

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// Config represents host process configuration.
type Config struct {
	ParamsFile string

	LoggingLevel string
}

// Read config from command-line.
// It calls os.Exit, if config is incorrect.
func Read() Config {
	config := Config{}

	flag.StringVar(&config.ParamsFile, "params", "", "calculator parameter file (YAML); empty selects built-in defaults")
	flag.StringVar(&config.LoggingLevel, "logging-level", "info", "logging level, one of: "+availableLoggingLevelsString)
	flag.Parse()

	config.LoggingLevel = strings.ToLower(config.LoggingLevel)

	invalidConfig := false
	if !validateLoggingLevel(config.LoggingLevel) {
		fmt.Fprintf(os.Stderr, "Invalid loggingLevel: \"%s\"\n", config.LoggingLevel)
		invalidConfig = true
	}

	if config.ParamsFile != "" {
		if _, err := os.Stat(config.ParamsFile); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid params file: %s\n", err.Error())
			invalidConfig = true
		}
	}

	if invalidConfig {
		fmt.Fprintf(os.Stderr, "\n")
		flag.Usage()
		os.Exit(1)
	}

	return config
}

var availableLoggingLevels = []string{"panic", "fatal", "error", "warn", "info", "debug"}
var availableLoggingLevelsString = strings.Join(availableLoggingLevels, ", ")

func validateLoggingLevel(loggingLevel string) bool {
	for _, l := range availableLoggingLevels {
		if l == loggingLevel {
			return true
		}
	}
	return false
}
