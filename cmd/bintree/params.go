package main

import (
	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"

	"github.com/dainf/bintree/configuration"
	"github.com/dainf/bintree/logger"
)

const (
	// envPrefix is the prefix of the environment variables that override configuration keys.
	envPrefix = "BINTREE"

	flagConfig = "config"

	keyTreeLiteral      = "tree.literal"
	keyOutputFormat     = "output.format"
	keyOutputTraversals = "output.traversals"
)

func newFlagSet() *flag.FlagSet {
	flagSet := flag.NewFlagSet("bintree", flag.ContinueOnError)
	flagSet.SortFlags = false

	flagSet.StringP(flagConfig, "c", "", "path to a JSON, YAML or TOML config file")
	flagSet.StringP(keyTreeLiteral, "t", "", "the tree in level-order notation of decimal integers, e.g. [1,null,2] (default: the example tree)")
	flagSet.StringP(keyOutputFormat, "f", formatText, "the output format (text, dot or tree)")
	flagSet.StringSlice(keyOutputTraversals, traversalNames(), "the traversals printed by the text format")

	flagSet.String(logger.ConfigurationKeyLevel, logger.DefaultCfg.Level, "the minimum enabled logging level")
	flagSet.String(logger.ConfigurationKeyEncoding, logger.DefaultCfg.Encoding, "the logger's encoding (console or json)")
	flagSet.StringSlice(logger.ConfigurationKeyOutputPaths, logger.DefaultCfg.OutputPaths, "where log lines are written to")
	flagSet.Bool(logger.ConfigurationKeyDisableCaller, logger.DefaultCfg.DisableCaller, "stops annotating logs with the calling function's file name and line number")
	flagSet.Bool(logger.ConfigurationKeyDisableStacktrace, logger.DefaultCfg.DisableStacktrace, "disables automatic stacktrace capturing")

	return flagSet
}

// loadConfiguration merges, in increasing priority, the defaults, the config file, the
// environment and the command line.
func loadConfiguration(args []string) (*configuration.Configuration, error) {
	flagSet := newFlagSet()
	if err := flagSet.Parse(args); err != nil {
		return nil, errors.Wrap(err, "unable to parse command line")
	}

	config := configuration.New()
	if err := config.LoadDefaults(map[string]interface{}{
		keyTreeLiteral:      "",
		keyOutputFormat:     formatText,
		keyOutputTraversals: traversalNames(),
	}); err != nil {
		return nil, err
	}
	if err := config.LoadDefaults(logger.Defaults()); err != nil {
		return nil, err
	}

	if path, _ := flagSet.GetString(flagConfig); path != "" {
		if err := config.LoadFile(path); err != nil {
			return nil, err
		}
	}

	if err := config.LoadEnvironmentVars(envPrefix); err != nil {
		return nil, err
	}

	if err := config.LoadFlagSet(flagSet); err != nil {
		return nil, err
	}

	return config, nil
}

// settings are the values of the configuration that control the output.
type settings struct {
	literal    string
	format     string
	traversals []string
}

func newSettings(config *configuration.Configuration) settings {
	return settings{
		literal:    config.String(keyTreeLiteral),
		format:     config.String(keyOutputFormat),
		traversals: config.Strings(keyOutputTraversals),
	}
}
