package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultTargetPackage is the crate this tool was originally built to
// report on. It is used when neither the CLI argument nor the config
// file names a package.
const DefaultTargetPackage = "glyphs-exchange"

// Settings is the top-level configuration for cratever.
type Settings struct {
	Package string `yaml:"package"` // Default target package name
	Output  string `yaml:"output"`  // Default output format for list: table, json, markdown
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() *Settings {
	return &Settings{Output: "table"}
}

// NewSettings reads and parses a configuration file, expanding ${ENV_VAR}
// placeholders before unmarshaling.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	expanded := envVarPattern.ReplaceAllStringFunc(string(data), func(match string) string {
		name := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(name)
	})

	settings := DefaultSettings()
	if unmarshalErr := yaml.Unmarshal([]byte(expanded), settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	if validateErr := validate(settings); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".cratever.yaml",
		".cratever.yml",
		"cratever.yaml",
		"cratever.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

func validate(settings *Settings) error {
	if strings.ContainsAny(settings.Package, " \t\n") {
		return fmt.Errorf("invalid package name %q: must not contain whitespace", settings.Package)
	}

	switch settings.Output {
	case "", "table", "json", "markdown":
	default:
		return fmt.Errorf("invalid output format %q: must be table, json, or markdown", settings.Output)
	}

	return nil
}
