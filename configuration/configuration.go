// Package configuration loads layered settings (defaults, config files, environment variables and
// command line flags) into a single lower-cased key space.
package configuration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	flag "github.com/spf13/pflag"
)

var (
	// ErrUnknownConfigFormat is returned if the format of the config file is unknown.
	ErrUnknownConfigFormat = errors.New("unknown config file format")
)

// Configuration holds config parameters from several sources (defaults, file, env vars, flags).
// Sources loaded later overwrite the values of sources loaded earlier.
type Configuration struct {
	config *koanf.Koanf
}

// New returns a new, empty configuration.
func New() *Configuration {
	return &Configuration{
		config: koanf.New("."),
	}
}

// LoadDefaults merges the given nested or dotted default values into the configuration.
func (c *Configuration) LoadDefaults(defaults map[string]interface{}) error {
	lowered := make(map[string]interface{}, len(defaults))
	for key, value := range defaults {
		lowered[strings.ToLower(key)] = value
	}

	return errors.Wrap(c.config.Load(confmap.Provider(lowered, "."), nil), "unable to load default values")
}

// LoadFile loads parameters from a JSON, YAML or TOML file and merges them into the loaded config.
// Existing keys will be overwritten.
func (c *Configuration) LoadFile(filePath string) error {
	if _, err := os.Stat(filePath); err != nil {
		return errors.Wrapf(err, "unable to load config file %s", filePath)
	}

	parser, err := parserForFile(filePath)
	if err != nil {
		return err
	}

	if err := c.config.Load(file.Provider(filePath), parser); err != nil {
		return errors.Wrapf(err, "unable to parse config file %s", filePath)
	}

	return nil
}

// LoadFlagSet loads parameters from a FlagSet (spf13/pflag lib) including default values and
// merges them into the loaded config.
// Existing keys will only be overwritten, if they were set via command line.
// If not given via command line, default values will only be used if they did not exist beforehand.
func (c *Configuration) LoadFlagSet(flagSet *flag.FlagSet) error {
	return errors.Wrap(c.config.Load(lowerPosflagProvider(flagSet, ".", c.config), nil), "unable to load flags")
}

// LoadEnvironmentVars loads parameters from env vars and merges them into the loaded config.
// The prefix is used to filter the env vars, "_" separates the levels of a key
// (PREFIX_LOGGER_LEVEL sets logger.level).
// Only existing keys will be overwritten, all other keys are ignored.
func (c *Configuration) LoadEnvironmentVars(prefix string) error {
	if prefix != "" {
		prefix += "_"
	}

	return errors.Wrap(c.config.Load(env.Provider(prefix, ".", func(s string) string {
		mapKey := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, prefix)), "_", ".")
		if !c.config.Exists(mapKey) {
			// only accept values from env vars that already exist in the config
			return ""
		}

		return mapKey
	}), nil), "unable to load environment variables")
}

// Koanf returns the underlying Koanf instance.
func (c *Configuration) Koanf() *koanf.Koanf {
	return c.config
}

// Exists returns true if the given key exists in the configuration.
func (c *Configuration) Exists(key string) bool {
	return c.config.Exists(strings.ToLower(key))
}

// String returns the string value of a given key path or "" if the path does not exist.
func (c *Configuration) String(key string) string {
	return c.config.String(strings.ToLower(key))
}

// Bool returns the bool value of a given key path or false if the path does not exist.
func (c *Configuration) Bool(key string) bool {
	return c.config.Bool(strings.ToLower(key))
}

// Int returns the int value of a given key path or 0 if the path does not exist.
func (c *Configuration) Int(key string) int {
	return c.config.Int(strings.ToLower(key))
}

// Strings returns the []string value of a given key path or nil if the path does not exist.
// Plain string values (e.g. from env vars) are split at commas.
func (c *Configuration) Strings(key string) []string {
	value := c.config.Get(strings.ToLower(key))
	if s, isString := value.(string); isString {
		if s == "" {
			return []string{}
		}

		parts := strings.Split(s, ",")
		for i, part := range parts {
			parts[i] = strings.TrimSpace(part)
		}

		return parts
	}

	return cast.ToStringSlice(value)
}

// Print returns the current configuration as indented JSON.
func (c *Configuration) Print() string {
	settings, err := json.MarshalIndent(c.config.Raw(), "", "  ")
	if err != nil {
		return err.Error()
	}

	return string(settings)
}

func parserForFile(filePath string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".json":
		return &JSONLowerParser{}, nil
	case ".yaml", ".yml":
		return &YAMLLowerParser{}, nil
	case ".toml":
		return &TOMLLowerParser{}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownConfigFormat, "unable to load config file %s", filePath)
	}
}
