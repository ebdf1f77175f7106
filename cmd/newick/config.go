package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/mstoykov/envconfig"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/guregu/null.v3"
)

// Config is the consolidated configuration of the command. Values are taken
// from, in increasing order of priority: the defaults, the TOML config file,
// NEWICK_* environment variables and command line flags. A layer only
// overrides the values it sets, including an explicit false or empty string.
type Config struct {
	LogLevel  null.String `toml:"log_level" envconfig:"NEWICK_LOG_LEVEL"`
	LogFormat null.String `toml:"log_format" envconfig:"NEWICK_LOG_FORMAT"`
	NoColor   null.Bool   `toml:"no_color" envconfig:"NEWICK_NO_COLOR"`

	// Output format of the show command: text, yaml or json.
	Format null.String `toml:"format" envconfig:"NEWICK_FORMAT"`
}

var (
	logFormats  = []string{"text", "json"}
	showFormats = []string{"text", "yaml", "json"}
)

func defaultConfig() Config {
	return Config{
		LogLevel:  null.NewString("info", false),
		LogFormat: null.NewString("text", false),
		NoColor:   null.NewBool(false, false),
		Format:    null.NewString("text", false),
	}
}

// Apply overrides the values of c with the valid values of cfg.
func (c Config) Apply(cfg Config) Config {
	if cfg.LogLevel.Valid {
		c.LogLevel = cfg.LogLevel
	}
	if cfg.LogFormat.Valid {
		c.LogFormat = cfg.LogFormat
	}
	if cfg.NoColor.Valid {
		c.NoColor = cfg.NoColor
	}
	if cfg.Format.Valid {
		c.Format = cfg.Format
	}
	return c
}

// Validate checks that every value is one the command understands.
func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel.String); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	if !contains(logFormats, c.LogFormat.String) {
		return fmt.Errorf("invalid log format '%s', must be one of %v",
			c.LogFormat.String, logFormats)
	}
	if !contains(showFormats, c.Format.String) {
		return fmt.Errorf("invalid output format '%s', must be one of %v",
			c.Format.String, showFormats)
	}
	return nil
}

// readDiskConfig reads the TOML config file at path. An empty path means no
// config file was requested.
func readDiskConfig(fs afero.Fs, path string) (Config, error) {
	var conf Config
	if path == "" {
		return conf, nil
	}
	data, err := afero.ReadFile(fs, path)
	if errors.Is(err, os.ErrNotExist) {
		return conf, fmt.Errorf("config file '%s' does not exist", path)
	} else if err != nil {
		return conf, fmt.Errorf("could not read config file '%s': %w", path, err)
	}
	md, err := toml.Decode(string(data), &conf)
	if err != nil {
		return conf, fmt.Errorf("could not parse config file '%s': %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return conf, fmt.Errorf("unknown keys in config file '%s': %v",
			path, undecoded)
	}
	return conf, nil
}

func readEnvConfig(env map[string]string) (Config, error) {
	var conf Config
	err := envconfig.Process("", &conf, func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})
	return conf, err
}

// readFlagConfig picks up the flags that were explicitly set.
func readFlagConfig(cmd *cobra.Command, flags globalFlags) Config {
	var conf Config
	if cmd.Flags().Changed("verbose") && flags.verbose {
		conf.LogLevel = null.StringFrom("debug")
	}
	if cmd.Flags().Changed("log-format") {
		conf.LogFormat = null.StringFrom(flags.logFormat)
	}
	if cmd.Flags().Changed("no-color") {
		conf.NoColor = null.BoolFrom(flags.noColor)
	}
	if f := cmd.Flags().Lookup("format"); f != nil && f.Changed {
		conf.Format = null.StringFrom(f.Value.String())
	}
	return conf
}

func loadConfig(gs *globalState, cmd *cobra.Command) (Config, error) {
	fileConf, err := readDiskConfig(gs.fs, gs.flags.configFilePath)
	if err != nil {
		return Config{}, err
	}
	envConf, err := readEnvConfig(gs.env)
	if err != nil {
		return Config{}, fmt.Errorf("invalid environment: %w", err)
	}
	// https://no-color.org/: any value, even an empty one, disables color.
	if _, ok := gs.env["NO_COLOR"]; ok {
		envConf.NoColor = null.BoolFrom(true)
	}

	conf := defaultConfig().
		Apply(fileConf).
		Apply(envConf).
		Apply(readFlagConfig(cmd, gs.flags))
	return conf, conf.Validate()
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
